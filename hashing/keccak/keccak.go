package keccak

import (
	"github.com/multiversx/mx-chain-contract-sdk-go/hashing"
	"golang.org/x/crypto/sha3"
)

var _ = hashing.Hasher(&Keccak{})

const hashSize = 32

// Keccak is the legacy Keccak-256 hasher used for function selectors and event topics
type Keccak struct {
}

// NewKeccak creates a Keccak-256 hasher
func NewKeccak() *Keccak {
	return &Keccak{}
}

// Compute takes a string, and returns its Keccak-256 digest
func (k *Keccak) Compute(s string) []byte {
	h := sha3.NewLegacyKeccak256()
	_, _ = h.Write([]byte(s))

	return h.Sum(nil)
}

// Size returns the size, in bytes, of the digest
func (k *Keccak) Size() int {
	return hashSize
}

// IsInterfaceNil returns true if there is no value under the interface
func (k *Keccak) IsInterfaceNil() bool {
	return k == nil
}
