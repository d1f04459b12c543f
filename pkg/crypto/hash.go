// Package crypto provides the hashing and key primitives used around mnemonics.
package crypto

import (
	"encoding/binary"

	"github.com/Klingon-tech/klingnet-mnemonic/pkg/types"
	"github.com/zeebo/blake3"
)

// Hash computes a BLAKE3-256 hash of the input data.
func Hash(data []byte) types.Hash {
	return blake3.Sum256(data)
}

// HashParts hashes the length-prefixed concatenation of parts, so that
// ("ab","c") and ("a","bc") hash differently.
func HashParts(parts ...[]byte) types.Hash {
	h := blake3.New()
	var lenBuf [4]byte
	for _, p := range parts {
		binary.BigEndian.PutUint32(lenBuf[:], uint32(len(p)))
		h.Write(lenBuf[:])
		h.Write(p)
	}
	var out types.Hash
	copy(out[:], h.Sum(nil))
	return out
}
