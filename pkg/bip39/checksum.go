package bip39

import (
	"github.com/minio/sha256-simd"
)

// ChecksumSize is the digest length in bytes.
const ChecksumSize = sha256.Size

// Checksum returns the full SHA-256 digest of the entropy.
func Checksum(e Entropy) [ChecksumSize]byte {
	return sha256.Sum256(e.b)
}

// ChecksumBits returns how many checksum bits end up in the mnemonic.
func ChecksumBits(e Entropy) int {
	return e.Bits() / EntropyMultiple
}

// concatWithChecksum returns entropy followed by the first digest byte.
// The appended byte is always a whole byte; GroupIndices floors the total
// bit length to whole words, which keeps exactly ChecksumBits of it.
func concatWithChecksum(e Entropy) []byte {
	digest := Checksum(e)
	buf := make([]byte, 0, len(e.b)+1)
	buf = append(buf, e.b...)
	return append(buf, digest[0])
}
