package abi

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// CloneAsTemplate deep copies the shape of a tree and drops every leaf value.
// Fixed lists keep their length in template items, dynamic lists come out empty
func CloneAsTemplate(node AbiObject) AbiObject {
	switch obj := node.(type) {
	case *ValueObject:
		return &ValueObject{
			name:     obj.name,
			kind:     obj.kind,
			size:     obj.size,
			decimals: obj.decimals,
		}
	case *StructObject:
		fields := make([]AbiObject, 0, len(obj.fields))
		for _, field := range obj.fields {
			fields = append(fields, CloneAsTemplate(field))
		}
		return &StructObject{
			name:   obj.name,
			fields: fields,
		}
	case *ListObject:
		items := make([]AbiObject, 0, obj.length)
		for i := 0; i < obj.length; i++ {
			items = append(items, CloneAsTemplate(obj.element))
		}
		return &ListObject{
			name:    obj.name,
			kind:    obj.kind,
			length:  obj.length,
			element: CloneAsTemplate(obj.element),
			items:   items,
		}
	default:
		return nil
	}
}

// CloneWithValue deep copies the shape and every leaf value of a tree
func CloneWithValue(node AbiObject) AbiObject {
	switch obj := node.(type) {
	case *ValueObject:
		return &ValueObject{
			name:     obj.name,
			kind:     obj.kind,
			size:     obj.size,
			decimals: obj.decimals,
			payload:  clonePayload(obj.payload),
		}
	case *StructObject:
		fields := make([]AbiObject, 0, len(obj.fields))
		for _, field := range obj.fields {
			fields = append(fields, CloneWithValue(field))
		}
		return &StructObject{
			name:   obj.name,
			fields: fields,
		}
	case *ListObject:
		items := make([]AbiObject, 0, len(obj.items))
		for _, item := range obj.items {
			items = append(items, CloneWithValue(item))
		}
		return &ListObject{
			name:    obj.name,
			kind:    obj.kind,
			length:  obj.length,
			element: CloneAsTemplate(obj.element),
			items:   items,
		}
	default:
		return nil
	}
}

func clonePayload(payload any) any {
	switch value := payload.(type) {
	case *big.Int:
		return new(big.Int).Set(value)
	case []byte:
		return common.CopyBytes(value)
	default:
		return payload
	}
}
