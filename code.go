package huffman

import (
	"fmt"
	mathbits "math/bits"
	"strconv"
	"strings"

	"github.com/chronos-tachyon/assert"
	"github.com/pkg/errors"
)

// MaxCodeSize is the longest Code, in bits, that can be represented.
const MaxCodeSize = 64

// Code represents a sequence of bits.
type Code struct {
	// Size holds the number of valid bits.
	Size byte

	// Bits holds the actual values of the bits.  The least significant bit
	// of Bits is the first bit.
	Bits uint64
}

// MakeCode is a convenience function that constructs a Code.
func MakeCode(size byte, bits uint64) Code {
	assert.Assertf(size <= MaxCodeSize, "size %d > MaxCodeSize %d", size, MaxCodeSize)
	return Code{Size: size, Bits: bits}
}

// MakeReversedCode constructs a Code from a sequence of bits that's in the
// wrong order, i.e. the least significant bit is the *last* bit in the
// sequence, instead of the first.
func MakeReversedCode(size byte, bits uint64) Code {
	return MakeCode(size, reverseBits(size, bits))
}

// ParseCode parses a string of '0' and '1' characters, first bit first.
func ParseCode(str string) (Code, error) {
	if len(str) > MaxCodeSize {
		return Code{}, errors.Wrapf(ErrCodeTooLong, "%d bits", len(str))
	}
	var bits uint64
	for _, ch := range str {
		bits <<= 1
		switch ch {
		case '0':
		case '1':
			bits |= 1
		default:
			return Code{}, errors.Errorf("huffman: invalid character %q in code %q", ch, str)
		}
	}
	return MakeReversedCode(byte(len(str)), bits), nil
}

// Reversed returns the corresponding Code with the bits in reverse order.
func (hc Code) Reversed() Code {
	return MakeReversedCode(hc.Size, hc.Bits)
}

// Bit returns the i'th bit of the code, counting from the first bit.
func (hc Code) Bit(i byte) uint {
	assert.Assertf(i < hc.Size, "bit index %d out of range for %d-bit code", i, hc.Size)
	return uint(hc.Bits>>i) & 1
}

// Append returns the Code extended by one more bit.
func (hc Code) Append(bit uint) Code {
	assert.Assertf(hc.Size < MaxCodeSize, "cannot extend a %d-bit code", hc.Size)
	return Code{Size: hc.Size + 1, Bits: hc.Bits | uint64(bit&1)<<hc.Size}
}

// String returns the string representation of this Code, first bit first.
func (hc Code) String() string {
	var sb strings.Builder
	sb.Grow(int(hc.Size))
	for i := byte(0); i < hc.Size; i++ {
		sb.WriteByte('0' + byte(hc.Bits>>i)&1)
	}
	return strconv.Quote(sb.String())
}

var _ fmt.Stringer = Code{}

func reverseBits(size byte, bits uint64) uint64 {
	return mathbits.Reverse64(bits) >> (64 - uint(size))
}

func compareCodes(a, b Code) int {
	switch {
	case a.Size != b.Size:
		if a.Size < b.Size {
			return -1
		}
		return 1
	case a.Bits < b.Bits:
		return -1
	case a.Bits > b.Bits:
		return 1
	default:
		return 0
	}
}
