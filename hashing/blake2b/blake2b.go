package blake2b

import (
	"github.com/multiversx/mx-chain-contract-sdk-go/hashing"
	"golang.org/x/crypto/blake2b"
)

var _ = hashing.Hasher(&Blake2b{})

// Blake2b is the hasher used to fingerprint loaded contract ABI definitions
type Blake2b struct {
	hashSize int
}

// NewBlake2b creates a 32 bytes Blake2b hasher
func NewBlake2b() *Blake2b {
	return &Blake2b{
		hashSize: blake2b.Size256,
	}
}

// NewBlake2bWithSize creates a Blake2b hasher with the provided digest size
func NewBlake2bWithSize(size int) (*Blake2b, error) {
	if size < 1 || size > blake2b.Size {
		return nil, hashing.ErrInvalidHashSize
	}

	return &Blake2b{
		hashSize: size,
	}, nil
}

// Compute takes a string, and returns its Blake2b digest
func (b2b *Blake2b) Compute(s string) []byte {
	h, err := blake2b.New(b2b.hashSize, nil)
	if err != nil {
		return nil
	}

	_, _ = h.Write([]byte(s))
	return h.Sum(nil)
}

// Size returns the size, in bytes, of the digest
func (b2b *Blake2b) Size() int {
	return b2b.hashSize
}

// IsInterfaceNil returns true if there is no value under the interface
func (b2b *Blake2b) IsInterfaceNil() bool {
	return b2b == nil
}
