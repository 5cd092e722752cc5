package hashing

import "errors"

// ErrInvalidHashSize signals that an invalid digest size has been provided
var ErrInvalidHashSize = errors.New("invalid hash size")
