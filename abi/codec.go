package abi

import (
	"fmt"

	"github.com/multiversx/mx-chain-core-go/core/check"
)

// codec is the head/tail codec for contract call data and return data.
// Static data is written in place in the head region of a struct or list, dynamic data is appended
// to the tail region and referenced from the head by a byte offset relative to the region start.
type codec struct {
	leafCodec LeafCodec
}

// NewCodec creates a codec backed by the default word leaf codec
func NewCodec() *codec {
	return &codec{
		leafCodec: NewWordCodec(),
	}
}

// NewCodecWithLeafCodec creates a codec backed by the provided leaf codec
func NewCodecWithLeafCodec(leafCodec LeafCodec) (*codec, error) {
	if check.IfNil(leafCodec) {
		return nil, ErrNilLeafCodec
	}

	return &codec{
		leafCodec: leafCodec,
	}, nil
}

// Encode returns the encoding of a populated tree
func (c *codec) Encode(node AbiObject) ([]byte, error) {
	switch obj := node.(type) {
	case *ValueObject:
		return c.leafCodec.EncodeLeaf(obj)
	case *StructObject:
		return c.encodeStruct(obj)
	case *ListObject:
		return c.encodeList(obj)
	default:
		return nil, fmt.Errorf("%w: cannot encode %T", ErrSchemaMismatch, node)
	}
}

func (c *codec) encodeStruct(obj *StructObject) ([]byte, error) {
	return c.encodeSequence(obj.fields, sequenceHeadSize(obj.fields))
}

func (c *codec) encodeList(obj *ListObject) ([]byte, error) {
	err := checkListItems(obj)
	if err != nil {
		return nil, err
	}

	headSize := len(obj.items) * HeadSize(obj.element)
	encoded, err := c.encodeSequence(obj.items, headSize)
	if err != nil {
		return nil, err
	}

	if obj.kind == DynamicList {
		return append(encodeIntWord(len(obj.items)), encoded...), nil
	}

	return encoded, nil
}

// encodeSequence lays out the provided nodes as head words followed by the tail of the dynamic ones.
// Pointers are relative to the start of the head region
func (c *codec) encodeSequence(nodes []AbiObject, headSize int) ([]byte, error) {
	head := make([]byte, 0, headSize)
	tail := make([]byte, 0)
	dynamicCursor := headSize

	for _, node := range nodes {
		encoded, err := c.Encode(node)
		if err != nil {
			return nil, err
		}

		if !IsDynamic(node) {
			head = append(head, encoded...)
			continue
		}

		head = append(head, encodeIntWord(dynamicCursor)...)
		tail = append(tail, encoded...)
		dynamicCursor += len(encoded)
	}

	return append(head, tail...), nil
}

// Decode reads the tree described by the template starting at the provided offset and returns a new populated tree.
// The template is left untouched
func (c *codec) Decode(template AbiObject, data []byte, offset int) (AbiObject, error) {
	return c.decode(newDecodeBudget(data), template, data, offset)
}

// DecodeSequence reads consecutive parameters laid out like the fields of a tuple starting at the beginning of data.
// All parameters share one decode budget
func (c *codec) DecodeSequence(templates []AbiObject, data []byte) ([]AbiObject, error) {
	budget := newDecodeBudget(data)
	headSize := sequenceHeadSize(templates)

	values := make([]AbiObject, 0, len(templates))
	cursor := 0
	for i, template := range templates {
		value, err := c.decodeAt(budget, template, data, 0, headSize, cursor)
		if err != nil {
			return nil, fmt.Errorf("parameter %d: %w", i, err)
		}

		values = append(values, value)
		cursor += HeadSize(template)
	}

	return values, nil
}

func (c *codec) decode(budget *decodeBudget, template AbiObject, data []byte, offset int) (AbiObject, error) {
	if offset < 0 || offset > len(data) {
		return nil, fmt.Errorf("%w: offset %d outside of %d bytes", ErrBufferUnderrun, offset, len(data))
	}

	switch obj := template.(type) {
	case *ValueObject:
		return c.decodeLeaf(budget, obj, data, offset)
	case *StructObject:
		return c.decodeStruct(budget, obj, data, offset)
	case *ListObject:
		return c.decodeList(budget, obj, data, offset)
	default:
		return nil, fmt.Errorf("%w: cannot decode into %T", ErrSchemaMismatch, template)
	}
}

func (c *codec) decodeLeaf(budget *decodeBudget, template *ValueObject, data []byte, offset int) (AbiObject, error) {
	leaf, err := c.leafCodec.DecodeLeaf(template, data, offset)
	if err != nil {
		return nil, err
	}

	err = budget.chargeLeaf(leaf)
	if err != nil {
		return nil, err
	}

	return leaf, nil
}

func (c *codec) decodeStruct(budget *decodeBudget, template *StructObject, data []byte, offset int) (AbiObject, error) {
	headSize := sequenceHeadSize(template.fields)
	fields := make([]AbiObject, 0, len(template.fields))
	cursor := offset
	for _, fieldTemplate := range template.fields {
		field, err := c.decodeAt(budget, fieldTemplate, data, offset, headSize, cursor)
		if err != nil {
			return nil, err
		}

		fields = append(fields, field)
		cursor += HeadSize(fieldTemplate)
	}

	return &StructObject{
		name:   template.name,
		fields: fields,
	}, nil
}

func (c *codec) decodeList(budget *decodeBudget, template *ListObject, data []byte, offset int) (AbiObject, error) {
	cursor := offset
	count := template.length
	if template.kind == DynamicList {
		var err error
		count, err = readIntWord(data, cursor)
		if err != nil {
			return nil, err
		}
		cursor += WordSize
	}

	base := cursor
	err := checkListFits(budget, template, count, len(data)-base)
	if err != nil {
		return nil, err
	}

	elementSize := HeadSize(template.element)
	headSize := count * elementSize
	items := make([]AbiObject, 0, count)
	for i := 0; i < count; i++ {
		item, errDecode := c.decodeAt(budget, template.element, data, base, headSize, cursor)
		if errDecode != nil {
			return nil, errDecode
		}

		items = append(items, item)
		cursor += elementSize
	}

	return &ListObject{
		name:    template.name,
		kind:    template.kind,
		length:  template.length,
		element: CloneAsTemplate(template.element),
		items:   items,
	}, nil
}

// decodeAt decodes a static node in place or follows the pointer word of a dynamic one, relative to base.
// A pointer must land past the head region it belongs to
func (c *codec) decodeAt(budget *decodeBudget, template AbiObject, data []byte, base int, headSize int, cursor int) (AbiObject, error) {
	if !IsDynamic(template) {
		return c.decode(budget, template, data, cursor)
	}

	pointer, err := readIntWord(data, cursor)
	if err != nil {
		return nil, err
	}
	if pointer < headSize {
		return nil, fmt.Errorf("%w: pointer %d at offset %d points inside the %d bytes head", ErrInvalidEncoding, pointer, cursor, headSize)
	}

	return c.decode(budget, template, data, base+pointer)
}

// checkListFits rejects lengths whose head region could not be present in the remaining bytes
func checkListFits(budget *decodeBudget, template *ListObject, count int, remaining int) error {
	elementSize := HeadSize(template.element)
	if elementSize == 0 {
		return budget.chargeZeroSized(template, count)
	}

	if remaining < 0 || count > remaining/elementSize {
		return fmt.Errorf("%w: %d items of %s do not fit in %d bytes", ErrBufferUnderrun, count, typeString(template), remaining)
	}

	return nil
}

func sequenceHeadSize(nodes []AbiObject) int {
	headSize := 0
	for _, node := range nodes {
		headSize += HeadSize(node)
	}

	return headSize
}

// IsInterfaceNil returns true if there is no value under the interface
func (c *codec) IsInterfaceNil() bool {
	return c == nil
}
