package huffman

import (
	"bytes"
	"fmt"
	"io"

	"github.com/icza/bitio"
)

// Frequencies holds the number of occurrences of each Symbol.
type Frequencies [NumSymbols]uint64

// CountFrequencies reads r to exhaustion and counts each byte value.
// PseudoEOF is always counted exactly once, whatever the input.
func CountFrequencies(r io.Reader) (Frequencies, error) {
	var freq Frequencies
	freq[PseudoEOF] = 1

	br := bitio.NewReader(r)
	for {
		value, err := br.ReadBits(BitsPerWord)
		if isEOF(err) {
			return freq, nil
		}
		if err != nil {
			return freq, err
		}
		freq[value]++
	}
}

// Distinct returns the number of symbols with a non-zero count.
func (freq *Frequencies) Distinct() int {
	var n int
	for _, count := range freq {
		if count != 0 {
			n++
		}
	}
	return n
}

// Total returns the sum of all counts.
func (freq *Frequencies) Total() uint64 {
	var sum uint64
	for _, count := range freq {
		sum += count
	}
	return sum
}

// String returns a programmer-readable list of the non-zero counts.
func (freq *Frequencies) String() string {
	var buf bytes.Buffer
	buf.WriteByte('{')
	first := true
	for symbol, count := range freq {
		if count == 0 {
			continue
		}
		if !first {
			buf.WriteString(", ")
		}
		first = false
		fmt.Fprintf(&buf, "%d: %d", symbol, count)
	}
	buf.WriteByte('}')
	return buf.String()
}
