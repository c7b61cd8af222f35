package huffman

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/chronos-tachyon/assert"
)

// Node is a node of a Huffman code tree.  It is implemented by exactly two
// types: *Leaf and *Internal.
type Node[S any] interface {
	// Weight returns the priority this node carried while the tree was
	// being built: the symbol's weight for a Leaf, the sum of both
	// children's weights for an Internal node.
	Weight() float64

	// IsLeaf reports whether this node is a *Leaf.
	IsLeaf() bool

	node(S)
}

// Leaf is a terminal node holding one symbol.
type Leaf[S any] struct {
	Symbol S
	weight float64
}

// NewLeaf constructs a Leaf.
func NewLeaf[S any](symbol S, weight float64) *Leaf[S] {
	return &Leaf[S]{Symbol: symbol, weight: weight}
}

func (leaf *Leaf[S]) Weight() float64 { return leaf.weight }
func (leaf *Leaf[S]) IsLeaf() bool    { return true }
func (leaf *Leaf[S]) node(S)          {}

// Internal is a non-terminal node with exactly two children.  Taking the
// Left child appends a 0 bit to the code; taking the Right child appends a 1.
type Internal[S any] struct {
	Left   Node[S]
	Right  Node[S]
	weight float64
}

// NewInternal joins two subtrees under a new Internal node whose weight is
// the sum of theirs.  Neither child may be nil, and neither may already
// belong to another tree.
func NewInternal[S any](left, right Node[S]) *Internal[S] {
	assert.Assertf(left != nil, "left child is nil")
	assert.Assertf(right != nil, "right child is nil")
	return &Internal[S]{Left: left, Right: right, weight: left.Weight() + right.Weight()}
}

func (in *Internal[S]) Weight() float64 { return in.weight }
func (in *Internal[S]) IsLeaf() bool    { return false }
func (in *Internal[S]) node(S)          {}

var (
	_ Node[int] = (*Leaf[int])(nil)
	_ Node[int] = (*Internal[int])(nil)
)

// Dump writes an indented, programmer-readable rendering of the tree rooted
// at root to the given writer.
func Dump[S any](w io.Writer, root Node[S]) (int64, error) {
	var buf bytes.Buffer
	dumpNode(&buf, root, "")
	return buf.WriteTo(w)
}

func dumpNode[S any](buf *bytes.Buffer, n Node[S], prefix string) {
	switch x := n.(type) {
	case *Leaf[S]:
		fmt.Fprintf(buf, "%sLeaf(%v, %g)\n", prefix, x.Symbol, x.weight)
	case *Internal[S]:
		fmt.Fprintf(buf, "%sInternal(%g):\n", prefix, x.weight)
		dumpNode(buf, x.Left, prefix+"   |")
		dumpNode(buf, x.Right, prefix+"   |")
	default:
		panic(fmt.Errorf("unknown node type %T", n))
	}
}

// String renders the tree on a single line, e.g. "(a (b c))".
func String[S any](root Node[S]) string {
	var sb strings.Builder
	var write func(Node[S])
	write = func(n Node[S]) {
		switch x := n.(type) {
		case *Leaf[S]:
			fmt.Fprint(&sb, x.Symbol)
		case *Internal[S]:
			sb.WriteByte('(')
			write(x.Left)
			sb.WriteByte(' ')
			write(x.Right)
			sb.WriteByte(')')
		}
	}
	write(root)
	return sb.String()
}
