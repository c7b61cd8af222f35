package huffman

import (
	"bytes"
	"fmt"
	"io"

	"github.com/pkg/errors"
)

// Encoder maps each symbol of a Huffman code tree to its Code.
//
// The codes are read straight off the tree; they are not canonicalized.
type Encoder[S comparable] struct {
	codes   map[S]Code
	order   []S
	minSize byte
	maxSize byte
}

// NewEncoder builds an Encoder for the tree rooted at root.  Every Leaf must
// hold a distinct symbol, and no Leaf may lie more than MaxCodeSize levels
// deep.
func NewEncoder[S comparable](root Node[S]) (*Encoder[S], error) {
	if depth := MaxDepth(root); depth > MaxCodeSize {
		return nil, errors.Wrapf(ErrCodeTooLong, "tree has depth %d", depth)
	}

	e := &Encoder[S]{codes: make(map[S]Code)}
	first := true
	for symbol, hc := range Codes(root) {
		if _, found := e.codes[symbol]; found {
			return nil, errors.Wrapf(ErrDuplicateSymbol, "%v", symbol)
		}
		e.codes[symbol] = hc
		e.order = append(e.order, symbol)

		if first {
			first = false
			e.minSize = hc.Size
			e.maxSize = hc.Size
		}
		if e.minSize > hc.Size {
			e.minSize = hc.Size
		}
		if e.maxSize < hc.Size {
			e.maxSize = hc.Size
		}
	}
	return e, nil
}

// Encode returns the Code for symbol, and false if symbol is not in the
// tree.
func (e *Encoder[S]) Encode(symbol S) (Code, bool) {
	hc, found := e.codes[symbol]
	return hc, found
}

// Len returns the number of symbols in the code.
func (e *Encoder[S]) Len() int {
	return len(e.order)
}

// MinSize is the bit length of the shortest legal code.
func (e *Encoder[S]) MinSize() byte {
	return e.minSize
}

// MaxSize is the bit length of the longest legal code.
func (e *Encoder[S]) MaxSize() byte {
	return e.maxSize
}

// Symbols returns the symbols of the code in tree pre-order.
func (e *Encoder[S]) Symbols() []S {
	out := make([]S, len(e.order))
	copy(out, e.order)
	return out
}

// SizeBySymbol returns the bit length of every symbol's code.
func (e *Encoder[S]) SizeBySymbol() map[S]byte {
	out := make(map[S]byte, len(e.codes))
	for symbol, hc := range e.codes {
		out[symbol] = hc.Size
	}
	return out
}

// Dump writes a programmer-readable debugging dump of the Encoder's current
// state to the given writer.
func (e *Encoder[S]) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Encoder{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", e.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", e.maxSize)
	for _, symbol := range e.order {
		fmt.Fprintf(&buf, "\tEncode(%v) = %s\n", symbol, e.codes[symbol])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
