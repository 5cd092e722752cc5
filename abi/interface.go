package abi

// LeafCodec encodes and decodes single scalar leaves to and from their word padded form
type LeafCodec interface {
	EncodeLeaf(value *ValueObject) ([]byte, error)
	DecodeLeaf(template *ValueObject, data []byte, offset int) (*ValueObject, error)
	IsInterfaceNil() bool
}

// Hasher computes the digests used for function selectors and event topics
type Hasher interface {
	Compute(string) []byte
	Size() int
	IsInterfaceNil() bool
}

type valuesCodec interface {
	Encode(node AbiObject) ([]byte, error)
	Decode(template AbiObject, data []byte, offset int) (AbiObject, error)
	DecodeSequence(templates []AbiObject, data []byte) ([]AbiObject, error)
}
