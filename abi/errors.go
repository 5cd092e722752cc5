package abi

import "errors"

// ErrUnsupportedValueKind signals that a node uses a scalar kind the codec cannot handle
var ErrUnsupportedValueKind = errors.New("unsupported value kind")

// ErrBufferUnderrun signals that a decode operation tried to read past the end of the buffer
var ErrBufferUnderrun = errors.New("buffer underrun")

// ErrSchemaMismatch signals that a value tree does not conform to the schema driving the operation
var ErrSchemaMismatch = errors.New("schema mismatch")

// ErrValueNotSet signals that a leaf node holds no value
var ErrValueNotSet = errors.New("value not set")

// ErrValueOutOfRange signals that a value does not fit the bit size or byte length of its node
var ErrValueOutOfRange = errors.New("value out of range")

// ErrInvalidEncoding signals that an encoded word is malformed for the expected kind
var ErrInvalidEncoding = errors.New("invalid encoding")

// ErrInvalidAbiType signals that an ABI type string could not be parsed
var ErrInvalidAbiType = errors.New("invalid abi type")

// ErrInvalidContractAbi signals that a contract ABI definition could not be parsed
var ErrInvalidContractAbi = errors.New("invalid contract abi")

// ErrFunctionNotFound signals that the requested function is not part of the contract ABI
var ErrFunctionNotFound = errors.New("function not found")

// ErrEventNotFound signals that the requested event is not part of the contract ABI
var ErrEventNotFound = errors.New("event not found")

// ErrInvalidJSONValue signals that a JSON value cannot populate the provided template
var ErrInvalidJSONValue = errors.New("invalid json value")

// ErrNilHasher signals that a nil hasher has been provided
var ErrNilHasher = errors.New("nil hasher")

// ErrNilLeafCodec signals that a nil leaf codec has been provided
var ErrNilLeafCodec = errors.New("nil leaf codec")
