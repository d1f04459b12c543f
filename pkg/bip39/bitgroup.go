package bip39

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// BitsPerWord is the width of a word index.
const BitsPerWord = 11

// WordIndex selects one of the WordListSize words.
type WordIndex uint16

// bitCursor reads a byte buffer as a big-endian bit stream.
// Bit i of the bitset is bit i of the stream counting from the MSB of byte 0.
type bitCursor struct {
	bits *bitset.BitSet
	pos  uint
}

func newBitCursor(buf []byte) *bitCursor {
	bs := bitset.New(uint(len(buf) * bitsPerByte))
	for i, b := range buf {
		for j := 0; j < bitsPerByte; j++ {
			if b&(0x80>>j) != 0 {
				bs.Set(uint(i*bitsPerByte + j))
			}
		}
	}
	return &bitCursor{bits: bs}
}

// remaining returns the number of unread bits.
func (c *bitCursor) remaining() uint {
	return c.bits.Len() - c.pos
}

// readUint16 reads n bits (n <= 16) MSB-first.
func (c *bitCursor) readUint16(n uint) (uint16, error) {
	if n > 16 {
		return 0, fmt.Errorf("%w: cannot read %d bits into uint16", ErrBitRead, n)
	}
	if c.remaining() < n {
		return 0, fmt.Errorf("%w: requested %d bits at position %d, %d available",
			ErrBitRead, n, c.pos, c.remaining())
	}
	var v uint16
	for i := uint(0); i < n; i++ {
		v <<= 1
		if c.bits.Test(c.pos + i) {
			v |= 1
		}
	}
	c.pos += n
	return v, nil
}

// GroupIndices splits buf into floor(bits/11) consecutive 11-bit indices.
// Bits past the last whole group are not read.
func GroupIndices(buf []byte) ([]WordIndex, error) {
	cur := newBitCursor(buf)
	n := len(buf) * bitsPerByte / BitsPerWord

	indices := make([]WordIndex, 0, n)
	for i := 0; i < n; i++ {
		v, err := cur.readUint16(BitsPerWord)
		if err != nil {
			return nil, fmt.Errorf("group %d: %w", i, err)
		}
		indices = append(indices, WordIndex(v))
	}
	return indices, nil
}

// WordIndices returns the word indices of the mnemonic for e.
func (e Entropy) WordIndices() ([]WordIndex, error) {
	return GroupIndices(concatWithChecksum(e))
}
