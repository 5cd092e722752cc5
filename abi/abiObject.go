package abi

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// AbiObject is a node of a schema/value tree. It is implemented by *ValueObject, *StructObject and *ListObject only.
// A node is a template while its leaves hold no value and a populated value once every leaf is set.
type AbiObject interface {
	Name() string
	ObjectType() ObjectType
	abiObject()
}

// ValueObject is a scalar leaf. Its kind, bit size and byte length are fixed at construction.
type ValueObject struct {
	name     string
	kind     ValueKind
	size     int
	decimals int
	payload  any
}

// NewBool creates an unset bool leaf
func NewBool(name string) *ValueObject {
	return &ValueObject{name: name, kind: BoolKind}
}

// NewUint creates an unset uintN leaf. bits must be a multiple of 8 in [8, 256]
func NewUint(name string, bits int) *ValueObject {
	return &ValueObject{name: name, kind: UintKind, size: bits}
}

// NewInt creates an unset intN leaf. bits must be a multiple of 8 in [8, 256]
func NewInt(name string, bits int) *ValueObject {
	return &ValueObject{name: name, kind: IntKind, size: bits}
}

// NewFixedBytes creates an unset bytesN leaf. size must be in [1, 32]
func NewFixedBytes(name string, size int) *ValueObject {
	return &ValueObject{name: name, kind: FixedBytesKind, size: size}
}

// NewAddress creates an unset address leaf
func NewAddress(name string) *ValueObject {
	return &ValueObject{name: name, kind: AddressKind, size: addressLength}
}

// NewString creates an unset string leaf
func NewString(name string) *ValueObject {
	return &ValueObject{name: name, kind: StringKind}
}

// NewBytes creates an unset dynamic bytes leaf
func NewBytes(name string) *ValueObject {
	return &ValueObject{name: name, kind: DynamicBytesKind}
}

// NewFixed creates a fixedMxN leaf. Such leaves can be described but never encoded or decoded
func NewFixed(name string, bits int, decimals int) *ValueObject {
	return &ValueObject{name: name, kind: FixedKind, size: bits, decimals: decimals}
}

// NewUFixed creates a ufixedMxN leaf. Such leaves can be described but never encoded or decoded
func NewUFixed(name string, bits int, decimals int) *ValueObject {
	return &ValueObject{name: name, kind: UFixedKind, size: bits, decimals: decimals}
}

// Name returns the parameter or field name, possibly empty
func (vo *ValueObject) Name() string {
	return vo.name
}

// ObjectType returns ValueType
func (vo *ValueObject) ObjectType() ObjectType {
	return ValueType
}

// Kind returns the scalar kind
func (vo *ValueObject) Kind() ValueKind {
	return vo.kind
}

// Size returns the bit width for integer and fixed point kinds and the byte length for bytesN
func (vo *ValueObject) Size() int {
	return vo.size
}

// Decimals returns the number of decimals of a fixed point kind
func (vo *ValueObject) Decimals() int {
	return vo.decimals
}

// IsSet returns true if the leaf holds a value
func (vo *ValueObject) IsSet() bool {
	return vo.payload != nil
}

// Payload returns the raw stored value: bool, *big.Int, common.Address, []byte or string. It is nil when unset
func (vo *ValueObject) Payload() any {
	return vo.payload
}

// SetBool sets the value of a bool leaf
func (vo *ValueObject) SetBool(value bool) error {
	err := vo.requireKind("bool", BoolKind)
	if err != nil {
		return err
	}

	vo.payload = value
	return nil
}

// SetBigInt sets the value of an integer leaf after checking it fits the declared bit size
func (vo *ValueObject) SetBigInt(value *big.Int) error {
	err := vo.requireKind("integer", UintKind, IntKind)
	if err != nil {
		return err
	}
	if value == nil {
		return fmt.Errorf("%w: nil integer for %s", ErrValueOutOfRange, vo.describe())
	}

	err = checkIntegerRange(vo.kind, vo.size, value)
	if err != nil {
		return fmt.Errorf("%w for %s", err, vo.describe())
	}

	vo.payload = new(big.Int).Set(value)
	return nil
}

// SetUint64 is a convenience wrapper over SetBigInt
func (vo *ValueObject) SetUint64(value uint64) error {
	return vo.SetBigInt(new(big.Int).SetUint64(value))
}

// SetInt64 is a convenience wrapper over SetBigInt
func (vo *ValueObject) SetInt64(value int64) error {
	return vo.SetBigInt(big.NewInt(value))
}

// SetAddress sets the value of an address leaf
func (vo *ValueObject) SetAddress(value common.Address) error {
	err := vo.requireKind("address", AddressKind)
	if err != nil {
		return err
	}

	vo.payload = value
	return nil
}

// SetBytes sets the value of a bytes or bytesN leaf. A shorter bytesN value is right padded with zeros
func (vo *ValueObject) SetBytes(value []byte) error {
	err := vo.requireKind("bytes", FixedBytesKind, DynamicBytesKind)
	if err != nil {
		return err
	}

	if vo.kind == DynamicBytesKind {
		vo.payload = common.CopyBytes(value)
		if value == nil {
			vo.payload = make([]byte, 0)
		}
		return nil
	}

	if len(value) > vo.size {
		return fmt.Errorf("%w: %d bytes do not fit %s", ErrValueOutOfRange, len(value), vo.describe())
	}
	padded := make([]byte, vo.size)
	copy(padded, value)
	vo.payload = padded

	return nil
}

// SetString sets the value of a string leaf
func (vo *ValueObject) SetString(value string) error {
	err := vo.requireKind("string", StringKind)
	if err != nil {
		return err
	}

	vo.payload = value
	return nil
}

// Bool returns the value of a bool leaf
func (vo *ValueObject) Bool() (bool, error) {
	value, err := getPayload[bool](vo, "bool", BoolKind)
	if err != nil {
		return false, err
	}

	return value, nil
}

// BigInt returns a copy of the value of an integer leaf
func (vo *ValueObject) BigInt() (*big.Int, error) {
	value, err := getPayload[*big.Int](vo, "integer", UintKind, IntKind)
	if err != nil {
		return nil, err
	}

	return new(big.Int).Set(value), nil
}

// Address returns the value of an address leaf
func (vo *ValueObject) Address() (common.Address, error) {
	return getPayload[common.Address](vo, "address", AddressKind)
}

// Bytes returns a copy of the value of a bytes or bytesN leaf
func (vo *ValueObject) Bytes() ([]byte, error) {
	value, err := getPayload[[]byte](vo, "bytes", FixedBytesKind, DynamicBytesKind)
	if err != nil {
		return nil, err
	}

	return common.CopyBytes(value), nil
}

// Text returns the value of a string leaf
func (vo *ValueObject) Text() (string, error) {
	return getPayload[string](vo, "string", StringKind)
}

func (vo *ValueObject) requireKind(operation string, kinds ...ValueKind) error {
	for _, kind := range kinds {
		if vo.kind == kind {
			return nil
		}
	}

	return fmt.Errorf("%w: cannot use %s value on %s", ErrSchemaMismatch, operation, vo.describe())
}

func (vo *ValueObject) describe() string {
	if len(vo.name) == 0 {
		return typeString(vo)
	}

	return fmt.Sprintf("%s %s", typeString(vo), vo.name)
}

func (vo *ValueObject) abiObject() {}

func getPayload[T any](vo *ValueObject, operation string, kinds ...ValueKind) (T, error) {
	var empty T
	err := vo.requireKind(operation, kinds...)
	if err != nil {
		return empty, err
	}
	if vo.payload == nil {
		return empty, fmt.Errorf("%w: %s", ErrValueNotSet, vo.describe())
	}

	value, ok := vo.payload.(T)
	if !ok {
		return empty, fmt.Errorf("%w: unexpected payload %T on %s", ErrSchemaMismatch, vo.payload, vo.describe())
	}

	return value, nil
}

// StructObject is a tuple whose ordered fields are fixed at construction
type StructObject struct {
	name   string
	fields []AbiObject
}

// NewStruct creates a tuple holding deep copies of the provided fields
func NewStruct(name string, fields ...AbiObject) *StructObject {
	owned := make([]AbiObject, 0, len(fields))
	for _, field := range fields {
		owned = append(owned, CloneWithValue(field))
	}

	return &StructObject{
		name:   name,
		fields: owned,
	}
}

// Name returns the parameter or field name, possibly empty
func (so *StructObject) Name() string {
	return so.name
}

// ObjectType returns StructType
func (so *StructObject) ObjectType() ObjectType {
	return StructType
}

// NumFields returns the number of fields
func (so *StructObject) NumFields() int {
	return len(so.fields)
}

// Field returns the field at the provided index
func (so *StructObject) Field(index int) AbiObject {
	return so.fields[index]
}

// Fields returns the ordered fields. The returned slice is a copy, the nodes are not
func (so *StructObject) Fields() []AbiObject {
	fields := make([]AbiObject, len(so.fields))
	copy(fields, so.fields)

	return fields
}

// FieldByName returns the first field with the provided name
func (so *StructObject) FieldByName(name string) (AbiObject, bool) {
	for _, field := range so.fields {
		if field.Name() == name {
			return field, true
		}
	}

	return nil, false
}

// SetField replaces the field at the provided index with a deep copy of a node of the same shape.
// The stored copy takes the name of the field it replaces
func (so *StructObject) SetField(index int, value AbiObject) error {
	if index < 0 || index >= len(so.fields) {
		return fmt.Errorf("%w: field index %d out of %d fields", ErrSchemaMismatch, index, len(so.fields))
	}

	err := checkSameShape(so.fields[index], value)
	if err != nil {
		return err
	}

	so.fields[index] = renamed(CloneWithValue(value), so.fields[index].Name())
	return nil
}

func (so *StructObject) abiObject() {}

// ListObject is a fixed or dynamic array of nodes sharing one element schema
type ListObject struct {
	name    string
	kind    ListKind
	length  int
	element AbiObject
	items   []AbiObject
}

// NewFixedList creates a T[length] list. It is created holding length template clones of the element schema.
// A negative length is treated as zero
func NewFixedList(name string, element AbiObject, length int) *ListObject {
	if length < 0 {
		length = 0
	}

	schema := CloneAsTemplate(element)
	items := make([]AbiObject, 0, length)
	for i := 0; i < length; i++ {
		items = append(items, CloneAsTemplate(schema))
	}

	return &ListObject{
		name:    name,
		kind:    FixedList,
		length:  length,
		element: schema,
		items:   items,
	}
}

// NewDynamicList creates an empty T[] list
func NewDynamicList(name string, element AbiObject) *ListObject {
	return &ListObject{
		name:    name,
		kind:    DynamicList,
		element: CloneAsTemplate(element),
		items:   make([]AbiObject, 0),
	}
}

// Name returns the parameter or field name, possibly empty
func (lo *ListObject) Name() string {
	return lo.name
}

// ObjectType returns ListType
func (lo *ListObject) ObjectType() ObjectType {
	return ListType
}

// ListKind returns whether the list is fixed or dynamic
func (lo *ListObject) ListKind() ListKind {
	return lo.kind
}

// FixedLength returns the schema length of a fixed list and 0 for a dynamic one
func (lo *ListObject) FixedLength() int {
	return lo.length
}

// Element returns the element schema. It must not be mutated
func (lo *ListObject) Element() AbiObject {
	return lo.element
}

// Len returns the number of items currently held
func (lo *ListObject) Len() int {
	return len(lo.items)
}

// Item returns the item at the provided index
func (lo *ListObject) Item(index int) AbiObject {
	return lo.items[index]
}

// Items returns the ordered items. The returned slice is a copy, the nodes are not
func (lo *ListObject) Items() []AbiObject {
	items := make([]AbiObject, len(lo.items))
	copy(items, lo.items)

	return items
}

// NewItem returns a fresh template of the element schema, ready to be populated and appended
func (lo *ListObject) NewItem() AbiObject {
	return CloneAsTemplate(lo.element)
}

// SetItem replaces the item at the provided index with a deep copy of a node shaped like the element schema
func (lo *ListObject) SetItem(index int, item AbiObject) error {
	if index < 0 || index >= len(lo.items) {
		return fmt.Errorf("%w: item index %d out of %d items", ErrSchemaMismatch, index, len(lo.items))
	}

	err := checkSameShape(lo.element, item)
	if err != nil {
		return err
	}

	lo.items[index] = CloneWithValue(item)
	return nil
}

// Append adds deep copies of the items at the end of a dynamic list
func (lo *ListObject) Append(items ...AbiObject) error {
	if lo.kind != DynamicList {
		return fmt.Errorf("%w: cannot append to fixed list %s", ErrSchemaMismatch, typeString(lo))
	}

	for _, item := range items {
		err := checkSameShape(lo.element, item)
		if err != nil {
			return err
		}
	}

	for _, item := range items {
		lo.items = append(lo.items, CloneWithValue(item))
	}
	return nil
}

func (lo *ListObject) abiObject() {}

func renamed(node AbiObject, name string) AbiObject {
	switch obj := node.(type) {
	case *ValueObject:
		obj.name = name
	case *StructObject:
		obj.name = name
	case *ListObject:
		obj.name = name
	}

	return node
}
