// Package huffman builds optimal binary prefix codes (Huffman codes) for a
// weighted alphabet.
//
// Build consumes a Distribution of (weight, symbol) pairs and greedily merges
// the two lowest-weight subtrees, using the priority queue from package
// minheap, until a single tree remains.  The depth of each Leaf in that tree
// is the length of its symbol's code.
//
// Lengths and Codes walk a tree to produce per-symbol code lengths and
// bit-strings.  Encoder and Decoder turn those into lookup tables.  The codes
// are taken from the tree as built; they are not canonical Huffman codes, and
// this package does no bit-level I/O.
//
// References:
//
//	<https://en.wikipedia.org/wiki/Huffman_coding>
package huffman
