package hashing

// Hasher defines the behaviour of a component that computes fixed size digests
type Hasher interface {
	Compute(string) []byte
	Size() int
	IsInterfaceNil() bool
}
