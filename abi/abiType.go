package abi

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var typeRegex = regexp.MustCompile(`^([a-z]+)([0-9]*)(x([0-9]+))?$`)

const (
	maxFixedDecimals = 80
	tupleType        = "tuple"
)

// Argument is the JSON description of a function, constructor or event parameter
type Argument struct {
	Name         string     `json:"name"`
	Type         string     `json:"type"`
	InternalType string     `json:"internalType,omitempty"`
	Components   []Argument `json:"components,omitempty"`
	Indexed      bool       `json:"indexed,omitempty"`
}

// NewTemplate builds the schema template of a parameter from its ABI type string. Tuple types,
// including arrays of tuples, take their fields from components
func NewTemplate(name string, abiType string, components []Argument) (AbiObject, error) {
	if strings.Count(abiType, "[") != strings.Count(abiType, "]") {
		return nil, fmt.Errorf("%w: unbalanced brackets in %q", ErrInvalidAbiType, abiType)
	}

	if strings.HasSuffix(abiType, "]") {
		return newListTemplate(name, abiType, components)
	}
	if abiType == tupleType {
		return newStructTemplate(name, components)
	}

	return newValueTemplate(name, abiType)
}

func newListTemplate(name string, abiType string, components []Argument) (AbiObject, error) {
	openIndex := strings.LastIndex(abiType, "[")
	if openIndex <= 0 {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAbiType, abiType)
	}

	element, err := NewTemplate("", abiType[:openIndex], components)
	if err != nil {
		return nil, err
	}

	sizeString := abiType[openIndex+1 : len(abiType)-1]
	if len(sizeString) == 0 {
		return NewDynamicList(name, element), nil
	}

	size, err := strconv.Atoi(sizeString)
	if err != nil || size < 0 {
		return nil, fmt.Errorf("%w: invalid array size in %q", ErrInvalidAbiType, abiType)
	}

	elementNodes := schemaNodes(element)
	if size >= maxSchemaNodes || size+1 > (maxSchemaNodes-1)/elementNodes {
		return nil, fmt.Errorf("%w: array size in %q exceeds %d schema nodes", ErrInvalidAbiType, abiType, maxSchemaNodes)
	}

	return NewFixedList(name, element, size), nil
}

func newStructTemplate(name string, components []Argument) (AbiObject, error) {
	fields := make([]AbiObject, 0, len(components))
	nodes := 1
	for _, component := range components {
		field, err := NewTemplate(component.Name, component.Type, component.Components)
		if err != nil {
			return nil, fmt.Errorf("tuple field %q: %w", component.Name, err)
		}

		nodes += schemaNodes(field)
		if nodes > maxSchemaNodes {
			return nil, fmt.Errorf("%w: tuple %q exceeds %d schema nodes", ErrInvalidAbiType, name, maxSchemaNodes)
		}

		fields = append(fields, field)
	}

	return NewStruct(name, fields...), nil
}

// schemaNodes counts the nodes of a template, element schemas of lists included
func schemaNodes(node AbiObject) int {
	switch obj := node.(type) {
	case *StructObject:
		total := 1
		for _, field := range obj.fields {
			total += schemaNodes(field)
		}
		return total
	case *ListObject:
		total := 1 + schemaNodes(obj.element)
		for _, item := range obj.items {
			total += schemaNodes(item)
		}
		return total
	default:
		return 1
	}
}

func newValueTemplate(name string, abiType string) (AbiObject, error) {
	matches := typeRegex.FindStringSubmatch(abiType)
	if len(matches) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAbiType, abiType)
	}

	base, sizeString, decimalsString := matches[1], matches[2], matches[4]
	if len(matches[3]) > 0 && base != "fixed" && base != "ufixed" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAbiType, abiType)
	}

	switch base {
	case "bool", "address", "string":
		if len(sizeString) > 0 {
			return nil, fmt.Errorf("%w: %q", ErrInvalidAbiType, abiType)
		}
		return newSizelessValue(name, base), nil
	case "bytes":
		if len(sizeString) == 0 {
			return NewBytes(name), nil
		}
		size, err := parseSize(abiType, sizeString, 1, maxFixedBytesSize, 1)
		if err != nil {
			return nil, err
		}
		return NewFixedBytes(name, size), nil
	case "uint", "int":
		bits := maxIntegerBits
		if len(sizeString) > 0 {
			var err error
			bits, err = parseSize(abiType, sizeString, 8, maxIntegerBits, 8)
			if err != nil {
				return nil, err
			}
		}
		if base == "uint" {
			return NewUint(name, bits), nil
		}
		return NewInt(name, bits), nil
	case "fixed", "ufixed":
		return newFixedPointTemplate(name, abiType, base, sizeString, decimalsString)
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidAbiType, abiType)
	}
}

func newSizelessValue(name string, base string) *ValueObject {
	switch base {
	case "bool":
		return NewBool(name)
	case "address":
		return NewAddress(name)
	default:
		return NewString(name)
	}
}

func newFixedPointTemplate(name string, abiType string, base string, sizeString string, decimalsString string) (AbiObject, error) {
	bits, decimals := defaultFixedBits, defaultFixedDigits
	if len(sizeString) > 0 || len(decimalsString) > 0 {
		if len(sizeString) == 0 || len(decimalsString) == 0 {
			return nil, fmt.Errorf("%w: %q", ErrInvalidAbiType, abiType)
		}

		var err error
		bits, err = parseSize(abiType, sizeString, 8, maxIntegerBits, 8)
		if err != nil {
			return nil, err
		}
		decimals, err = parseSize(abiType, decimalsString, 1, maxFixedDecimals, 1)
		if err != nil {
			return nil, err
		}
	}

	if base == "ufixed" {
		return NewUFixed(name, bits, decimals), nil
	}

	return NewFixed(name, bits, decimals), nil
}

func parseSize(abiType string, sizeString string, minValue int, maxValue int, step int) (int, error) {
	size, err := strconv.Atoi(sizeString)
	if err != nil || size < minValue || size > maxValue || size%step != 0 {
		return 0, fmt.Errorf("%w: invalid size in %q", ErrInvalidAbiType, abiType)
	}

	return size, nil
}
