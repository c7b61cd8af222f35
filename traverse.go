package huffman

import (
	"fmt"
	"iter"

	"github.com/chronos-tachyon/assert"
)

// Lengths returns a sequence of (symbol, code length) pairs, one per Leaf of
// the tree, in pre-order.  The length of a code is the depth of its Leaf;
// a tree that is a single Leaf yields a length of 0.
//
// The sequence may be iterated any number of times.
func Lengths[S any](root Node[S]) iter.Seq2[S, int] {
	return func(yield func(S, int) bool) {
		walk(root, func(leaf *Leaf[S], depth int, _ uint64) bool {
			return yield(leaf.Symbol, depth)
		})
	}
}

// Codes returns a sequence of (symbol, Code) pairs, one per Leaf of the
// tree, in pre-order.  Taking the Left child of an Internal node appends a
// 0 bit and taking the Right child appends a 1 bit.  A tree that is a single
// Leaf yields the empty Code.
//
// Codes panics upon reaching a Leaf more than MaxCodeSize levels deep.  Use
// Lengths for such trees.
func Codes[S any](root Node[S]) iter.Seq2[S, Code] {
	return func(yield func(S, Code) bool) {
		walk(root, func(leaf *Leaf[S], depth int, bits uint64) bool {
			assert.Assertf(depth <= MaxCodeSize, "leaf at depth %d: %v", depth, ErrCodeTooLong)
			return yield(leaf.Symbol, Code{Size: byte(depth), Bits: bits})
		})
	}
}

// AverageLength returns the weighted average code length of the tree: the
// sum, over all leaves, of the leaf's weight times its depth.
func AverageLength[S any](root Node[S]) float64 {
	var sum float64
	walk(root, func(leaf *Leaf[S], depth int, _ uint64) bool {
		sum += leaf.weight * float64(depth)
		return true
	})
	return sum
}

// MaxDepth returns the depth of the deepest Leaf.
func MaxDepth[S any](root Node[S]) int {
	var deepest int
	walk(root, func(_ *Leaf[S], depth int, _ uint64) bool {
		if depth > deepest {
			deepest = depth
		}
		return true
	})
	return deepest
}

// walk visits every Leaf below root in pre-order, stopping early if visit
// returns false.  bits holds the code of the Leaf, first bit in the least
// significant position; only the first MaxCodeSize bits are tracked.
//
// The walk uses an explicit stack, so arbitrarily deep trees do not grow
// the goroutine stack.
func walk[S any](root Node[S], visit func(leaf *Leaf[S], depth int, bits uint64) bool) {
	type stackItem struct {
		n     Node[S]
		depth int
		bits  uint64
	}

	stack := []stackItem{{n: root}}
	for len(stack) != 0 {
		top := stack[len(stack)-1]
		stack[len(stack)-1] = stackItem{}
		stack = stack[:len(stack)-1]

		switch x := top.n.(type) {
		case *Leaf[S]:
			if !visit(x, top.depth, top.bits) {
				return
			}
		case *Internal[S]:
			rightBits := top.bits
			if top.depth < MaxCodeSize {
				rightBits |= uint64(1) << top.depth
			}
			// Push right first so that left is visited first.
			stack = append(stack,
				stackItem{n: x.Right, depth: top.depth + 1, bits: rightBits},
				stackItem{n: x.Left, depth: top.depth + 1, bits: top.bits},
			)
		default:
			panic(fmt.Errorf("unknown node type %T", top.n))
		}
	}
}
