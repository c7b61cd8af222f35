package main

import (
	"fmt"
	"io"
	"log"
	"math"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/chronos-tachyon/huffman/v2"
)

// result holds the statistics for one word length.
type result struct {
	Length            int
	Words             int
	MaxCodeLength     int
	AvgPathLength     float64
	DerivativeEntropy float64
	BaseEntropy       float64
	WordsTime         time.Duration
	DistributionTime  time.Duration
	CodeBookTime      time.Duration
	AvgPathLengthTime time.Duration
	ElapsedTime       time.Duration
}

// sequences returns every sequence of n indexes into an alphabet of size k,
// in lexicographic order.
func sequences(k int, n int) [][]int {
	seqs := [][]int{{}}
	for i := 0; i < n; i++ {
		next := make([][]int, 0, len(seqs)*k)
		for x := 0; x < k; x++ {
			for _, y := range seqs {
				seq := make([]int, 0, len(y)+1)
				seq = append(seq, x)
				seq = append(seq, y...)
				next = append(next, seq)
			}
		}
		seqs = next
	}
	return seqs
}

// entropy returns the Shannon entropy, in bits, of the probabilities ps.
func entropy(ps []float64) float64 {
	var h float64
	for _, p := range ps {
		if p > 0 {
			h -= p * math.Log2(p)
		}
	}
	return h
}

func timeit(d *time.Duration, fn func() error) error {
	start := time.Now()
	err := fn()
	*d = time.Since(start)
	return err
}

// measure builds a Huffman code over all words of length n whose letters are
// drawn independently from letters.
func measure(letters huffman.Distribution[string], n int, tolerance float64) (result, error) {
	res := result{Length: n}
	start := time.Now()

	var seqs [][]int
	_ = timeit(&res.WordsTime, func() error {
		seqs = sequences(len(letters), n)
		return nil
	})
	res.Words = len(seqs)

	var dist huffman.Distribution[string]
	_ = timeit(&res.DistributionTime, func() error {
		dist = make(huffman.Distribution[string], 0, len(seqs))
		var sb strings.Builder
		for _, seq := range seqs {
			sb.Reset()
			p := 1.0
			for _, index := range seq {
				sb.WriteString(letters[index].Symbol)
				p *= letters[index].Weight
			}
			dist = append(dist, huffman.WeightedSymbol[string]{Weight: p, Symbol: sb.String()})
		}
		return nil
	})

	var root huffman.Node[string]
	err := timeit(&res.CodeBookTime, func() error {
		var err error
		root, err = huffman.Build(dist, huffman.WithTolerance(tolerance))
		return err
	})
	if err != nil {
		return res, err
	}

	_ = timeit(&res.AvgPathLengthTime, func() error {
		res.AvgPathLength = huffman.AverageLength(root) / float64(n)
		res.MaxCodeLength = huffman.MaxDepth(root)
		return nil
	})

	wordPs := make([]float64, 0, len(dist))
	for _, ws := range dist {
		wordPs = append(wordPs, ws.Weight)
	}
	letterPs := make([]float64, 0, len(letters))
	for _, ws := range letters {
		letterPs = append(letterPs, ws.Weight)
	}
	res.DerivativeEntropy = entropy(wordPs) / float64(n)
	res.BaseEntropy = entropy(letterPs)
	res.ElapsedTime = time.Since(start)
	return res, nil
}

// run measures every configured word length and writes a report to w.
func run(cfg config, w io.Writer) error {
	if err := cfg.validate(); err != nil {
		return err
	}
	letters, err := cfg.letterDistribution()
	if err != nil {
		return err
	}

	r := report{w: w, width: cfg.Width}
	for n := cfg.MinLength; n <= cfg.MaxLength; n++ {
		log.Printf("building code book for words of length %d", n)
		res, err := measure(letters, n, cfg.Tolerance)
		if err != nil {
			return err
		}
		r.write(res)
	}
	return nil
}

// report formats results in columns filling a terminal of the given width.
// Widths count runes, since durations print with a multi-byte "µs" unit.
type report struct {
	w     io.Writer
	width int
}

func (r report) header(text string, fill string, align string) {
	pad := r.width - utf8.RuneCountInString(text)
	if pad < 0 {
		pad = 0
	}
	var line string
	switch align {
	case "left":
		line = text + strings.Repeat(fill, pad)
	case "center":
		line = strings.Repeat(fill, pad/2) + text + strings.Repeat(fill, pad-pad/2)
	default:
		line = strings.Repeat(fill, pad) + text
	}
	fmt.Fprintln(r.w, line)
}

func (r report) stat(name string, value string) {
	nameWidth := r.width / 2
	valueWidth := r.width - nameWidth
	if pad := nameWidth - utf8.RuneCountInString(name); pad > 0 {
		name += strings.Repeat(".", pad)
	}
	if pad := valueWidth - utf8.RuneCountInString(value); pad > 0 {
		value = strings.Repeat(".", pad) + value
	}
	fmt.Fprintln(r.w, name+value)
}

func (r report) write(res result) {
	fmt.Fprintln(r.w)
	r.header(fmt.Sprintf("=== WORD LENGTH: %d ===", res.Length), "=", "left")
	r.stat("words time ", fmt.Sprintf(" %v", res.WordsTime))
	r.stat("lookups time ", fmt.Sprintf(" %v", res.DistributionTime))
	r.stat("code book time ", fmt.Sprintf(" %v", res.CodeBookTime))
	r.stat("avg. path length time ", fmt.Sprintf(" %v", res.AvgPathLengthTime))
	r.header(fmt.Sprintf("=== elapsed time: %v ===", res.ElapsedTime), "=", "right")
	r.header("-- totals: --", "-", "center")
	r.stat("words ", fmt.Sprintf(" %d", res.Words))
	r.stat("max. code length ", fmt.Sprintf(" %d", res.MaxCodeLength))
	r.stat("avg. path length ", fmt.Sprintf(" %g", res.AvgPathLength))
	r.stat("derivative alphabet entropy ", fmt.Sprintf(" %g", res.DerivativeEntropy))
	r.stat("base alphabet entropy ", fmt.Sprintf(" %g", res.BaseEntropy))
}
