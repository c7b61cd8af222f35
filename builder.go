package huffman

import (
	"math"

	"github.com/chronos-tachyon/assert"

	"github.com/chronos-tachyon/huffman/v2/minheap"
)

// Options configures Build.
//
// Tolerance – largest accepted |sum(weights) − 1|.  Default DefaultTolerance.
// Normalize – rescale the weights to sum to 1 instead of rejecting them.
type Options struct {
	Tolerance float64
	Normalize bool
}

// Option is a functional option for Build.
type Option func(*Options)

// DefaultOptions returns the Options used when Build is given none.
func DefaultOptions() Options {
	return Options{
		Tolerance: DefaultTolerance,
		Normalize: false,
	}
}

// WithTolerance sets the accepted difference between the sum of the weights
// and 1.  A negative tolerance panics with ErrBadTolerance.
func WithTolerance(tolerance float64) Option {
	if tolerance < 0 || math.IsNaN(tolerance) {
		panic(ErrBadTolerance.Error())
	}
	return func(o *Options) {
		o.Tolerance = tolerance
	}
}

// WithNormalize makes Build divide every weight by the sum of all weights,
// so that raw frequencies are accepted.  The weights must still be finite,
// non-negative, and not all zero.
func WithNormalize() Option {
	return func(o *Options) {
		o.Normalize = true
	}
}

// Build constructs a Huffman code tree for dist.
//
// Each symbol becomes a Leaf.  The two lowest-weight nodes are repeatedly
// merged under a new Internal node whose weight is their sum, until a single
// root remains.  The depth of each Leaf is the length of that symbol's code.
//
// A distribution with exactly one symbol yields that symbol's Leaf as the
// root, i.e. a code of length 0.  Encoders that need at least one bit per
// symbol must handle this case themselves.
//
// Among equal weights the merge order is unspecified, so the shape of the
// tree is not unique when weights repeat; its AverageLength is.
//
// If dist is empty, has a negative or non-finite weight, or (without
// WithNormalize) does not sum to 1, Build returns an error wrapping
// ErrInvalidDistribution and does no further work.
func Build[S any](dist Distribution[S], opts ...Option) (Node[S], error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.Normalize {
		normalized, err := dist.Normalized()
		if err != nil {
			return nil, err
		}
		dist = normalized
	} else if err := dist.Validate(cfg.Tolerance); err != nil {
		return nil, err
	}

	q := minheap.New[float64, Node[S]](len(dist))
	for _, ws := range dist {
		q.Insert(ws.Weight, NewLeaf(ws.Symbol, ws.Weight))
	}

	for q.Len() > 1 {
		p1, left := mustExtract(q)
		p2, right := mustExtract(q)
		sum := p1 + p2
		q.Insert(sum, &Internal[S]{Left: left, Right: right, weight: sum})
	}

	_, root := mustExtract(q)
	assert.Assertf(q.Len() == 0, "queue still holds %d entries after Build", q.Len())
	return root, nil
}

func mustExtract[S any](q *minheap.Queue[float64, Node[S]]) (float64, Node[S]) {
	p, n, err := q.ExtractMin()
	assert.Assertf(err == nil, "ExtractMin failed: %v", err)
	return p, n
}
