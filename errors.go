package huffman

import (
	"github.com/pkg/errors"
)

// Sentinel errors.  Errors returned by this package wrap one of these and
// can be matched with errors.Is.
var (
	// ErrInvalidDistribution indicates that a Distribution is empty, has a
	// negative or non-finite weight, or does not sum to 1.
	ErrInvalidDistribution = errors.New("huffman: invalid distribution")

	// ErrBadTolerance indicates a negative tolerance passed to
	// WithTolerance.
	ErrBadTolerance = errors.New("huffman: tolerance must be non-negative")

	// ErrCodeTooLong indicates a code longer than MaxCodeSize bits.
	ErrCodeTooLong = errors.New("huffman: code is longer than MaxCodeSize bits")

	// ErrDuplicateSymbol indicates that the same symbol appears on more
	// than one leaf of a tree.
	ErrDuplicateSymbol = errors.New("huffman: duplicate symbol")
)
