package abi

import (
	"bytes"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// Equal reports whether two trees have the same shape, the same names and the same leaf values
func Equal(first AbiObject, second AbiObject) bool {
	if first == nil || second == nil {
		return first == nil && second == nil
	}
	if first.Name() != second.Name() {
		return false
	}

	switch a := first.(type) {
	case *ValueObject:
		b, ok := second.(*ValueObject)
		return ok && sameShape(a, b) && equalPayloads(a.payload, b.payload)
	case *StructObject:
		b, ok := second.(*StructObject)
		return ok && equalChildren(a.fields, b.fields)
	case *ListObject:
		b, ok := second.(*ListObject)
		return ok && sameShape(a, b) && equalChildren(a.items, b.items)
	default:
		return false
	}
}

func equalChildren(first []AbiObject, second []AbiObject) bool {
	if len(first) != len(second) {
		return false
	}
	for i := range first {
		if !Equal(first[i], second[i]) {
			return false
		}
	}

	return true
}

func equalPayloads(first any, second any) bool {
	if first == nil || second == nil {
		return first == nil && second == nil
	}

	switch a := first.(type) {
	case *big.Int:
		b, ok := second.(*big.Int)
		return ok && a.Cmp(b) == 0
	case []byte:
		b, ok := second.([]byte)
		return ok && bytes.Equal(a, b)
	case common.Address:
		b, ok := second.(common.Address)
		return ok && a == b
	case bool:
		b, ok := second.(bool)
		return ok && a == b
	case string:
		b, ok := second.(string)
		return ok && a == b
	default:
		return false
	}
}
