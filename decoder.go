package huffman

import (
	"bytes"
	"fmt"
	"io"

	"github.com/pkg/errors"
	"golang.org/x/exp/slices"
)

// Decoder maps Codes, and prefixes of Codes, back to the symbols of a
// Huffman code tree.
type Decoder[S any] struct {
	table   map[Code]decoderData
	symbols []S
	minSize byte
	maxSize byte
}

// NewDecoder builds a Decoder for the tree rooted at root.  No Leaf may lie
// more than MaxCodeSize levels deep.
//
// A tree consisting of a single Leaf is accepted; its symbol decodes from
// the empty Code.
func NewDecoder[S any](root Node[S]) (*Decoder[S], error) {
	if depth := MaxDepth(root); depth > MaxCodeSize {
		return nil, errors.Wrapf(ErrCodeTooLong, "tree has depth %d", depth)
	}

	d := &Decoder[S]{}
	first := true
	for symbol, hc := range Codes(root) {
		d.symbols = append(d.symbols, symbol)
		if first {
			first = false
			d.minSize = hc.Size
			d.maxSize = hc.Size
		}
		if d.minSize > hc.Size {
			d.minSize = hc.Size
		}
		if d.maxSize < hc.Size {
			d.maxSize = hc.Size
		}
	}

	// len(table) is approximately n×log2(n) when filled.
	numSymbols := len(d.symbols)
	d.table = make(map[Code]decoderData, numSymbols*log2int(numSymbols))

	index := 0
	for _, hc := range Codes(root) {
		fillTable(d.table, index, hc)
		index++
	}
	return d, nil
}

// Decode attempts to decode a Huffman code into a symbol.
//
// If the Decode is completely successful, ok is true and minSize == maxSize
// == hc.Size.
//
// If hc is a proper prefix of one or more codes, ok is false and at least
// (minSize - hc.Size) additional bits are required to decode a symbol.  No
// more than (maxSize - hc.Size) additional bits will be required.
//
// If hc is not a prefix of any code, ok is false and minSize == maxSize == 0.
func (d *Decoder[S]) Decode(hc Code) (symbol S, ok bool, minSize byte, maxSize byte) {
	dd, found := d.table[hc]
	if !found {
		return symbol, false, 0, 0
	}
	if dd.index < 0 {
		return symbol, false, dd.minSize, dd.maxSize
	}
	return d.symbols[dd.index], true, dd.minSize, dd.maxSize
}

// MinSize is the bit length of the shortest legal code.
func (d *Decoder[S]) MinSize() byte {
	return d.minSize
}

// MaxSize is the bit length of the longest legal code.
func (d *Decoder[S]) MaxSize() byte {
	return d.maxSize
}

// Dump writes a programmer-readable debugging dump of the Decoder's current
// state to the given writer.
func (d *Decoder[S]) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Decoder{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", d.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", d.maxSize)
	keys := make([]Code, 0, len(d.table))
	for hc := range d.table {
		keys = append(keys, hc)
	}
	slices.SortFunc(keys, compareCodes)
	for _, hc := range keys {
		dd := d.table[hc]
		if dd.index < 0 {
			fmt.Fprintf(&buf, "\tDecode(%s) = {-, %d, %d}\n", hc, dd.minSize, dd.maxSize)
		} else {
			fmt.Fprintf(&buf, "\tDecode(%s) = {%v, %d, %d}\n", hc, d.symbols[dd.index], dd.minSize, dd.maxSize)
		}
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// decoderData is a table entry.  index is the position of the symbol in
// Decoder.symbols, or -1 for a proper prefix.
type decoderData struct {
	index   int
	minSize byte
	maxSize byte
}

func fillTable(table map[Code]decoderData, index int, hc Code) {
	dd := decoderData{index, hc.Size, hc.Size}
	table[hc] = dd

	for hc.Size != 0 {
		// For each hc "...xxxa", compute "...xxxA" where A = NOT a.

		bit := uint64(1) << (hc.Size - 1)
		hc.Bits ^= bit

		// Merge the dd's from "...xxxa" (dd) and "...xxxA" (ddSibling)
		// into ddNew (the new parent for dd and ddSibling).

		ddNew := decoderData{-1, dd.minSize, dd.maxSize}
		if ddSibling, found := table[hc]; found {
			if ddNew.minSize > ddSibling.minSize {
				ddNew.minSize = ddSibling.minSize
			}
			if ddNew.maxSize < ddSibling.maxSize {
				ddNew.maxSize = ddSibling.maxSize
			}
		}

		// Mutate hc from "...xxxA" to "...xxx".

		hc.Size--
		hc.Bits &^= bit

		// If table[hc] already equals ddNew, we can stop recursing.

		if ddOld, found := table[hc]; found && ddOld == ddNew {
			break
		}

		// Update table[hc] with ddNew and continue recursing.

		table[hc] = ddNew
		dd = ddNew
	}
}
