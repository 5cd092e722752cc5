package abi

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// ParseJSONArguments decodes a JSON array of arguments and populates a clone of each template
func ParseJSONArguments(templates []AbiObject, data []byte) ([]AbiObject, error) {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()

	var raw []any
	err := decoder.Decode(&raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJSONValue, err)
	}

	return PopulateArguments(templates, raw)
}

// PopulateArguments populates a clone of each template with the matching raw JSON value
func PopulateArguments(templates []AbiObject, raw []any) ([]AbiObject, error) {
	if len(raw) != len(templates) {
		return nil, fmt.Errorf("%w: expected %d arguments, got %d", ErrInvalidJSONValue, len(templates), len(raw))
	}

	values := make([]AbiObject, 0, len(templates))
	for i, template := range templates {
		value, err := PopulateFromJSON(template, raw[i])
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i, err)
		}

		values = append(values, value)
	}

	return values, nil
}

// PopulateFromJSON returns a populated clone of the template holding the provided decoded JSON value.
// Integers may be JSON numbers or decimal / 0x hex strings, bytes and addresses are hex strings,
// tuples are arrays or objects keyed by field name and lists are arrays
func PopulateFromJSON(template AbiObject, raw any) (AbiObject, error) {
	node := CloneAsTemplate(template)
	err := populate(node, raw)
	if err != nil {
		return nil, err
	}

	return node, nil
}

func populate(node AbiObject, raw any) error {
	switch obj := node.(type) {
	case *ValueObject:
		return populateValue(obj, raw)
	case *StructObject:
		return populateStruct(obj, raw)
	case *ListObject:
		return populateList(obj, raw)
	default:
		return fmt.Errorf("%w: unknown node %T", ErrSchemaMismatch, node)
	}
}

func populateValue(value *ValueObject, raw any) error {
	if raw == nil {
		return fmt.Errorf("%w: null for %s", ErrInvalidJSONValue, value.describe())
	}

	switch value.kind {
	case BoolKind:
		b, ok := raw.(bool)
		if !ok {
			return invalidJSONValue(value, raw)
		}
		return value.SetBool(b)
	case UintKind, IntKind:
		n, err := parseJSONInteger(raw)
		if err != nil {
			return fmt.Errorf("%w for %s", err, value.describe())
		}
		return value.SetBigInt(n)
	case AddressKind:
		text, ok := raw.(string)
		if !ok || !common.IsHexAddress(text) {
			return invalidJSONValue(value, raw)
		}
		return value.SetAddress(common.HexToAddress(text))
	case FixedBytesKind, DynamicBytesKind:
		text, ok := raw.(string)
		if !ok {
			return invalidJSONValue(value, raw)
		}
		data, err := hex.DecodeString(strings.TrimPrefix(text, hexPrefix))
		if err != nil {
			return fmt.Errorf("%w: %v for %s", ErrInvalidJSONValue, err, value.describe())
		}
		return value.SetBytes(data)
	case StringKind:
		text, ok := raw.(string)
		if !ok {
			return invalidJSONValue(value, raw)
		}
		return value.SetString(text)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedValueKind, value.describe())
	}
}

func parseJSONInteger(raw any) (*big.Int, error) {
	var text string
	switch typed := raw.(type) {
	case json.Number:
		text = typed.String()
	case string:
		text = typed
	case float64:
		n, accuracy := big.NewFloat(typed).Int(nil)
		if accuracy != big.Exact {
			return nil, fmt.Errorf("%w: %v is not an integer", ErrInvalidJSONValue, typed)
		}
		return n, nil
	default:
		return nil, fmt.Errorf("%w: %v is not an integer", ErrInvalidJSONValue, raw)
	}

	negative := strings.HasPrefix(text, "-")
	digits := strings.TrimPrefix(text, "-")
	base := 10
	if strings.HasPrefix(digits, hexPrefix) {
		digits = strings.TrimPrefix(digits, hexPrefix)
		base = 16
	}

	n, ok := new(big.Int).SetString(digits, base)
	if !ok || strings.HasPrefix(digits, "-") || strings.HasPrefix(digits, "+") {
		return nil, fmt.Errorf("%w: %q is not an integer", ErrInvalidJSONValue, text)
	}
	if negative {
		n.Neg(n)
	}

	return n, nil
}

func populateStruct(obj *StructObject, raw any) error {
	switch typed := raw.(type) {
	case []any:
		if len(typed) != len(obj.fields) {
			return fmt.Errorf("%w: %s expects %d fields, got %d", ErrInvalidJSONValue, typeString(obj), len(obj.fields), len(typed))
		}
		for i, field := range obj.fields {
			err := populate(field, typed[i])
			if err != nil {
				return err
			}
		}
		return nil
	case map[string]any:
		for _, field := range obj.fields {
			fieldValue, ok := typed[field.Name()]
			if !ok {
				return fmt.Errorf("%w: missing field %q of %s", ErrInvalidJSONValue, field.Name(), typeString(obj))
			}
			err := populate(field, fieldValue)
			if err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("%w: %T cannot populate %s", ErrInvalidJSONValue, raw, typeString(obj))
	}
}

func populateList(obj *ListObject, raw any) error {
	elements, ok := raw.([]any)
	if !ok {
		return fmt.Errorf("%w: %T cannot populate %s", ErrInvalidJSONValue, raw, typeString(obj))
	}

	if obj.kind == FixedList {
		if len(elements) != obj.length {
			return fmt.Errorf("%w: %s expects %d items, got %d", ErrInvalidJSONValue, typeString(obj), obj.length, len(elements))
		}
		for i, item := range obj.items {
			err := populate(item, elements[i])
			if err != nil {
				return err
			}
		}
		return nil
	}

	for _, element := range elements {
		item := obj.NewItem()
		err := populate(item, element)
		if err != nil {
			return err
		}
		obj.items = append(obj.items, item)
	}

	return nil
}

func invalidJSONValue(value *ValueObject, raw any) error {
	return fmt.Errorf("%w: %T cannot populate %s", ErrInvalidJSONValue, raw, value.describe())
}

// ArgumentsToJSON converts a list of parameters to JSON friendly values
func ArgumentsToJSON(values []AbiObject) []any {
	converted := make([]any, 0, len(values))
	for _, value := range values {
		converted = append(converted, ToJSON(value))
	}

	return converted
}

// ToJSON converts a tree to JSON friendly values: integers as decimal strings, bytes as 0x hex,
// addresses as checksummed hex and tuples as objects when every field has a distinct name
func ToJSON(node AbiObject) any {
	switch obj := node.(type) {
	case *ValueObject:
		return valueToJSON(obj)
	case *StructObject:
		if !hasDistinctNames(obj.fields) {
			return ArgumentsToJSON(obj.fields)
		}
		converted := make(map[string]any, len(obj.fields))
		for _, field := range obj.fields {
			converted[field.Name()] = ToJSON(field)
		}
		return converted
	case *ListObject:
		return ArgumentsToJSON(obj.items)
	default:
		return nil
	}
}

func valueToJSON(value *ValueObject) any {
	switch payload := value.payload.(type) {
	case *big.Int:
		return payload.String()
	case []byte:
		return hexPrefix + hex.EncodeToString(payload)
	case common.Address:
		return payload.Hex()
	default:
		return payload
	}
}

func hasDistinctNames(fields []AbiObject) bool {
	seen := make(map[string]struct{}, len(fields))
	for _, field := range fields {
		name := field.Name()
		if len(name) == 0 {
			return false
		}
		_, exists := seen[name]
		if exists {
			return false
		}
		seen[name] = struct{}{}
	}

	return true
}
