package abi

import (
	"fmt"
)

// wordCodec is the default leaf codec: every scalar takes one 32 bytes word,
// bytes and string take a length word followed by the right padded content
type wordCodec struct {
}

// NewWordCodec creates the default leaf codec
func NewWordCodec() *wordCodec {
	return &wordCodec{}
}

// EncodeLeaf returns the word padded encoding of a populated leaf
func (wc *wordCodec) EncodeLeaf(value *ValueObject) ([]byte, error) {
	if !value.kind.IsSupported() {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedValueKind, value.describe())
	}
	if !value.IsSet() {
		return nil, fmt.Errorf("%w, %w: %s", ErrSchemaMismatch, ErrValueNotSet, value.describe())
	}

	switch value.kind {
	case BoolKind:
		return wc.encodeBool(value)
	case UintKind, IntKind:
		return wc.encodeInteger(value)
	case AddressKind:
		return wc.encodeAddress(value)
	case FixedBytesKind:
		return wc.encodeFixedBytes(value)
	case DynamicBytesKind:
		return wc.encodeDynamicBytes(value)
	case StringKind:
		return wc.encodeString(value)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedValueKind, value.describe())
	}
}

// DecodeLeaf reads the leaf described by the template at the provided offset and returns a new populated leaf
func (wc *wordCodec) DecodeLeaf(template *ValueObject, data []byte, offset int) (*ValueObject, error) {
	if !template.kind.IsSupported() {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedValueKind, template.describe())
	}

	decoded := CloneAsTemplate(template).(*ValueObject)

	var err error
	switch template.kind {
	case BoolKind:
		err = wc.decodeBool(data, offset, decoded)
	case UintKind, IntKind:
		err = wc.decodeInteger(data, offset, decoded)
	case AddressKind:
		err = wc.decodeAddress(data, offset, decoded)
	case FixedBytesKind:
		err = wc.decodeFixedBytes(data, offset, decoded)
	case DynamicBytesKind:
		err = wc.decodeDynamicBytes(data, offset, decoded)
	case StringKind:
		err = wc.decodeString(data, offset, decoded)
	default:
		err = fmt.Errorf("%w: %s", ErrUnsupportedValueKind, template.describe())
	}
	if err != nil {
		return nil, err
	}

	return decoded, nil
}

// IsInterfaceNil returns true if there is no value under the interface
func (wc *wordCodec) IsInterfaceNil() bool {
	return wc == nil
}
