package abi

// ObjectType is the discriminant of an AbiObject node
type ObjectType uint8

const (
	// ValueType marks a scalar leaf node
	ValueType ObjectType = iota
	// StructType marks a tuple node
	StructType
	// ListType marks a fixed or dynamic array node
	ListType
)

var objectTypeNames = [...]string{
	ValueType:  "value",
	StructType: "struct",
	ListType:   "list",
}

// String returns the human readable name of the object type
func (ot ObjectType) String() string {
	if int(ot) < len(objectTypeNames) {
		return objectTypeNames[ot]
	}
	return "unknown"
}

// ValueKind identifies the scalar kind held by a ValueObject
type ValueKind uint8

const (
	// BoolKind is the ABI bool
	BoolKind ValueKind = iota
	// UintKind is the ABI uintN
	UintKind
	// IntKind is the ABI intN
	IntKind
	// FixedBytesKind is the ABI bytesN
	FixedBytesKind
	// AddressKind is the ABI address
	AddressKind
	// StringKind is the ABI string
	StringKind
	// DynamicBytesKind is the ABI bytes
	DynamicBytesKind
	// FixedKind is the ABI fixedMxN, recognized but not supported by the codec
	FixedKind
	// UFixedKind is the ABI ufixedMxN, recognized but not supported by the codec
	UFixedKind
)

var valueKindNames = [...]string{
	BoolKind:         "bool",
	UintKind:         "uint",
	IntKind:          "int",
	FixedBytesKind:   "bytesN",
	AddressKind:      "address",
	StringKind:       "string",
	DynamicBytesKind: "bytes",
	FixedKind:        "fixed",
	UFixedKind:       "ufixed",
}

// String returns the human readable name of the value kind
func (vk ValueKind) String() string {
	if int(vk) < len(valueKindNames) {
		return valueKindNames[vk]
	}
	return "unknown"
}

// IsDynamic returns true for the kinds whose encoding has no fixed length
func (vk ValueKind) IsDynamic() bool {
	return vk == StringKind || vk == DynamicBytesKind
}

// IsSupported returns false for the kinds the codec refuses to encode or decode
func (vk ValueKind) IsSupported() bool {
	return vk <= DynamicBytesKind
}

// ListKind tells whether a list carries its length in the schema or on the wire
type ListKind uint8

const (
	// FixedList has a schema-defined length and no length word
	FixedList ListKind = iota
	// DynamicList is prefixed by a length word
	DynamicList
)

// String returns the human readable name of the list kind
func (lk ListKind) String() string {
	switch lk {
	case FixedList:
		return "fixed"
	case DynamicList:
		return "dynamic"
	default:
		return "unknown"
	}
}
