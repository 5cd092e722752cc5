package facade

import "errors"

// ErrNilHasher signals that a nil hasher has been provided
var ErrNilHasher = errors.New("nil hasher")

// ErrNilFingerprintHasher signals that a nil fingerprint hasher has been provided
var ErrNilFingerprintHasher = errors.New("nil fingerprint hasher")

// ErrNilStatusHandler signals that a nil status handler has been provided
var ErrNilStatusHandler = errors.New("nil status handler")

// ErrEmptyContractName signals that an empty contract name has been provided
var ErrEmptyContractName = errors.New("empty contract name")

// ErrContractNotFound signals that no contract abi is registered under the provided name
var ErrContractNotFound = errors.New("contract not found")

// ErrContractAlreadyRegistered signals that a contract abi is already registered under the provided name
var ErrContractAlreadyRegistered = errors.New("contract already registered")
