package huffman

import (
	"math"

	"github.com/pkg/errors"
)

// DefaultTolerance is the largest accepted difference between the sum of a
// Distribution's weights and 1.
const DefaultTolerance = 1e-9

// WeightedSymbol pairs a caller-defined symbol with its probability.
type WeightedSymbol[S any] struct {
	Weight float64
	Symbol S
}

// Distribution is an ordered list of weighted symbols whose weights form a
// probability distribution.
type Distribution[S any] []WeightedSymbol[S]

// Sum returns the total of all weights.
func (dist Distribution[S]) Sum() float64 {
	var sum float64
	for _, ws := range dist {
		sum += ws.Weight
	}
	return sum
}

// Validate checks that dist is non-empty, that every weight is finite and
// non-negative, and that the weights sum to 1 within tolerance.  The
// returned error wraps ErrInvalidDistribution.
func (dist Distribution[S]) Validate(tolerance float64) error {
	if err := dist.checkWeights(); err != nil {
		return err
	}
	if sum := dist.Sum(); math.Abs(sum-1) > tolerance {
		return errors.Wrapf(ErrInvalidDistribution, "weights sum to %g, not 1", sum)
	}
	return nil
}

// Normalized returns a copy of dist with every weight divided by the sum of
// all weights.
func (dist Distribution[S]) Normalized() (Distribution[S], error) {
	if err := dist.checkWeights(); err != nil {
		return nil, err
	}
	sum := dist.Sum()
	if sum <= 0 || math.IsInf(sum, 0) {
		return nil, errors.Wrapf(ErrInvalidDistribution, "cannot normalize weights summing to %g", sum)
	}
	out := make(Distribution[S], len(dist))
	for index, ws := range dist {
		out[index] = WeightedSymbol[S]{Weight: ws.Weight / sum, Symbol: ws.Symbol}
	}
	return out, nil
}

func (dist Distribution[S]) checkWeights() error {
	if len(dist) == 0 {
		return errors.Wrap(ErrInvalidDistribution, "no symbols")
	}
	for index, ws := range dist {
		w := ws.Weight
		if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
			return errors.Wrapf(ErrInvalidDistribution, "weight %g at index %d", w, index)
		}
	}
	return nil
}

// FromCounts builds a Distribution from occurrence counts: symbols[i]
// occurred counts[i] times.  Symbols with a count of zero are kept, with a
// weight of zero.
func FromCounts[S any](symbols []S, counts []uint64) (Distribution[S], error) {
	if len(symbols) != len(counts) {
		return nil, errors.Wrapf(ErrInvalidDistribution, "%d symbols but %d counts", len(symbols), len(counts))
	}

	var total float64
	for _, count := range counts {
		total += float64(count)
	}
	if total == 0 {
		return nil, errors.Wrap(ErrInvalidDistribution, "all counts are zero")
	}

	dist := make(Distribution[S], len(symbols))
	for index, symbol := range symbols {
		dist[index] = WeightedSymbol[S]{Weight: float64(counts[index]) / total, Symbol: symbol}
	}
	return dist, nil
}
