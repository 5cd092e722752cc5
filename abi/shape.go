package abi

import "fmt"

// IsDynamic tells whether the encoding of a node has no schema-known length. Only the schema is consulted
func IsDynamic(node AbiObject) bool {
	switch obj := node.(type) {
	case *ValueObject:
		return obj.kind.IsDynamic()
	case *ListObject:
		if obj.kind == DynamicList {
			return true
		}
		return IsDynamic(obj.element)
	case *StructObject:
		for _, field := range obj.fields {
			if IsDynamic(field) {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// HeadWords returns the number of words a node occupies in the head region of its parent.
// A dynamic node only takes the pointer word, its payload lives in the tail region
func HeadWords(node AbiObject) int {
	if IsDynamic(node) {
		return 1
	}

	switch obj := node.(type) {
	case *StructObject:
		total := 0
		for _, field := range obj.fields {
			total += HeadWords(field)
		}
		return total
	case *ListObject:
		return obj.length * HeadWords(obj.element)
	default:
		return 1
	}
}

// HeadSize returns HeadWords in bytes
func HeadSize(node AbiObject) int {
	return HeadWords(node) * WordSize
}

// IsTemplate returns true if no leaf of the tree holds a value
func IsTemplate(node AbiObject) bool {
	switch obj := node.(type) {
	case *ValueObject:
		return !obj.IsSet()
	case *StructObject:
		return allChildren(obj.fields, IsTemplate)
	case *ListObject:
		return allChildren(obj.items, IsTemplate)
	default:
		return false
	}
}

// IsPopulated returns true if every leaf holds a value and every fixed list has its schema length
func IsPopulated(node AbiObject) bool {
	return checkPopulated(node) == nil
}

func checkPopulated(node AbiObject) error {
	switch obj := node.(type) {
	case *ValueObject:
		if !obj.IsSet() {
			return fmt.Errorf("%w: %s", ErrValueNotSet, obj.describe())
		}
		return nil
	case *StructObject:
		for _, field := range obj.fields {
			err := checkPopulated(field)
			if err != nil {
				return err
			}
		}
		return nil
	case *ListObject:
		err := checkListItems(obj)
		if err != nil {
			return err
		}
		for _, item := range obj.items {
			err = checkPopulated(item)
			if err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("%w: unknown node %T", ErrSchemaMismatch, node)
	}
}

func checkListItems(list *ListObject) error {
	if list.kind == FixedList && len(list.items) != list.length {
		return fmt.Errorf("%w: %s holds %d items", ErrSchemaMismatch, typeString(list), len(list.items))
	}

	for index, item := range list.items {
		if !sameShape(list.element, item) {
			return fmt.Errorf("%w: item %d of %s is %s", ErrSchemaMismatch, index, typeString(list), typeString(item))
		}
	}

	return nil
}

func allChildren(children []AbiObject, predicate func(AbiObject) bool) bool {
	for _, child := range children {
		if !predicate(child) {
			return false
		}
	}

	return true
}

func checkSameShape(expected AbiObject, actual AbiObject) error {
	if actual == nil {
		return fmt.Errorf("%w: nil node where %s is expected", ErrSchemaMismatch, typeString(expected))
	}
	if !sameShape(expected, actual) {
		return fmt.Errorf("%w: expected %s, got %s", ErrSchemaMismatch, typeString(expected), typeString(actual))
	}

	return nil
}

// sameShape compares kinds, sizes and list lengths. Names are ignored
func sameShape(first AbiObject, second AbiObject) bool {
	switch a := first.(type) {
	case *ValueObject:
		b, ok := second.(*ValueObject)
		return ok && a.kind == b.kind && a.size == b.size && a.decimals == b.decimals
	case *StructObject:
		b, ok := second.(*StructObject)
		if !ok || len(a.fields) != len(b.fields) {
			return false
		}
		for i := range a.fields {
			if !sameShape(a.fields[i], b.fields[i]) {
				return false
			}
		}
		return true
	case *ListObject:
		b, ok := second.(*ListObject)
		return ok && a.kind == b.kind && a.length == b.length && sameShape(a.element, b.element)
	default:
		return false
	}
}
