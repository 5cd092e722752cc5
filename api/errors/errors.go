package errors

import (
	"errors"
)

// ErrValidation signals an error in validation
var ErrValidation = errors.New("validation error")

// ErrEmptyContract signals that an empty contract name was provided
var ErrEmptyContract = errors.New("contract is empty")

// ErrEmptyFunction signals that an empty function name or signature was provided
var ErrEmptyFunction = errors.New("function is empty")

// ErrEmptyEvent signals that an empty event name or signature was provided
var ErrEmptyEvent = errors.New("event is empty")

// ErrInvalidHexData signals that a data field is not a valid 0x hex string
var ErrInvalidHexData = errors.New("invalid hex data")

// ErrGetFunctions signals an error in listing the functions of a contract
var ErrGetFunctions = errors.New("get functions error")

// ErrEncodeCall signals an error in encoding call data
var ErrEncodeCall = errors.New("encode call error")

// ErrDecodeOutput signals an error in decoding return data
var ErrDecodeOutput = errors.New("decode output error")

// ErrDecodeInput signals an error in decoding call data
var ErrDecodeInput = errors.New("decode input error")

// ErrDecodeEvent signals an error in decoding a receipt log
var ErrDecodeEvent = errors.New("decode event error")

// ErrNilFacadeHandler signals that a nil facade handler has been provided
var ErrNilFacadeHandler = errors.New("nil facade handler")

// ErrFacadeWrongTypeAssertion signals that a type conversion to a facade type failed
var ErrFacadeWrongTypeAssertion = errors.New("facade - wrong type assertion")

// ErrNilMetricsGatherer signals that a nil metrics gatherer has been provided
var ErrNilMetricsGatherer = errors.New("nil metrics gatherer")

// ErrNilHttpServer signals that a nil http server has been provided
var ErrNilHttpServer = errors.New("nil http server")
