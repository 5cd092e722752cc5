package abi

import (
	"fmt"
	"strings"
)

// TypeString returns the canonical ABI type of a node, as used in function and event signatures
func TypeString(node AbiObject) string {
	return typeString(node)
}

func typeString(node AbiObject) string {
	switch obj := node.(type) {
	case *ValueObject:
		return valueTypeString(obj)
	case *StructObject:
		parts := make([]string, 0, len(obj.fields))
		for _, field := range obj.fields {
			parts = append(parts, typeString(field))
		}
		return "(" + strings.Join(parts, ",") + ")"
	case *ListObject:
		if obj.kind == DynamicList {
			return typeString(obj.element) + "[]"
		}
		return fmt.Sprintf("%s[%d]", typeString(obj.element), obj.length)
	default:
		return "unknown"
	}
}

func valueTypeString(vo *ValueObject) string {
	switch vo.kind {
	case UintKind:
		return fmt.Sprintf("uint%d", vo.size)
	case IntKind:
		return fmt.Sprintf("int%d", vo.size)
	case FixedBytesKind:
		return fmt.Sprintf("bytes%d", vo.size)
	case FixedKind:
		return fmt.Sprintf("fixed%dx%d", vo.size, vo.decimals)
	case UFixedKind:
		return fmt.Sprintf("ufixed%dx%d", vo.size, vo.decimals)
	default:
		return vo.kind.String()
	}
}
