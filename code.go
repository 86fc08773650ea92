package huffman

import (
	"strings"

	"github.com/chronos-tachyon/assert"
)

const codeWords = (MaxCodeSize + 63) / 64

// Code represents a sequence of bits.
type Code struct {
	// Size holds the number of valid bits.
	Size uint16

	// bits holds the actual values of the bits.  The most significant bit
	// of bits[0] is the first bit.
	bits [codeWords]uint64
}

// MakeCode is a convenience function that constructs a Code of up to 64
// bits.  The most significant of the low size bits of bits is the first
// bit.
func MakeCode(size byte, bits uint64) Code {
	assert.Assertf(size <= 64, "size %d > 64", size)
	var hc Code
	if size != 0 {
		hc.Size = uint16(size)
		hc.bits[0] = bits << (64 - size)
	}
	return hc
}

// Append returns a copy of this Code with one more bit at the end.
func (hc Code) Append(bit uint) Code {
	assert.Assertf(hc.Size < MaxCodeSize, "code already holds %d bits", hc.Size)
	if bit != 0 {
		hc.bits[hc.Size/64] |= uint64(1) << (63 - hc.Size%64)
	}
	hc.Size++
	return hc
}

// Bit returns the i'th bit of this Code, counting from 0.
func (hc Code) Bit(i uint16) uint {
	assert.Assertf(i < hc.Size, "bit %d out of range for %d-bit code", i, hc.Size)
	return uint(hc.bits[i/64]>>(63-i%64)) & 1
}

// Uint64 returns the bits of a Code no longer than 64 bits, right-aligned.
func (hc Code) Uint64() uint64 {
	assert.Assertf(hc.Size <= 64, "code of %d bits does not fit in 64", hc.Size)
	if hc.Size == 0 {
		return 0
	}
	return hc.bits[0] >> (64 - hc.Size)
}

// HasPrefix returns true if p is a prefix of this Code.  Every Code is a
// prefix of itself.
func (hc Code) HasPrefix(p Code) bool {
	if p.Size > hc.Size {
		return false
	}
	remain := p.Size
	for i := 0; remain > 0; i++ {
		n := remain
		if n > 64 {
			n = 64
		}
		mask := ^uint64(0) << (64 - n)
		if hc.bits[i]&mask != p.bits[i]&mask {
			return false
		}
		remain -= n
	}
	return true
}

// WriteBitsTo writes this Code to w, first bit first.
func (hc Code) WriteBitsTo(w BitWriter) error {
	remain := hc.Size
	for i := 0; remain > 0; i++ {
		n := remain
		if n > 64 {
			n = 64
		}
		if err := w.WriteBits(hc.bits[i]>>(64-n), uint8(n)); err != nil {
			return err
		}
		remain -= n
	}
	return nil
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	var sb strings.Builder
	sb.Grow(int(hc.Size) + 2)
	sb.WriteByte('"')
	for i := uint16(0); i < hc.Size; i++ {
		sb.WriteByte(byte('0' + hc.Bit(i)))
	}
	sb.WriteByte('"')
	return sb.String()
}
