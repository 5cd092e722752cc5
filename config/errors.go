package config

import "errors"

var errEmptyContractName = errors.New("empty contract name")

var errEmptyContractFile = errors.New("empty contract abi file")

var errDuplicatedContractName = errors.New("duplicated contract name")

var errInvalidSimultaneousRequests = errors.New("invalid number of simultaneous requests")
