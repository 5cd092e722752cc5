package abi

import (
	"errors"
	"testing"

	"github.com/multiversx/mx-chain-core-go/core/check"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type leafCodecStub struct {
	EncodeLeafCalled func(value *ValueObject) ([]byte, error)
	DecodeLeafCalled func(template *ValueObject, data []byte, offset int) (*ValueObject, error)
}

func (stub *leafCodecStub) EncodeLeaf(value *ValueObject) ([]byte, error) {
	return stub.EncodeLeafCalled(value)
}

func (stub *leafCodecStub) DecodeLeaf(template *ValueObject, data []byte, offset int) (*ValueObject, error) {
	return stub.DecodeLeafCalled(template, data, offset)
}

func (stub *leafCodecStub) IsInterfaceNil() bool {
	return stub == nil
}

func TestNewCodecWithLeafCodec(t *testing.T) {
	t.Parallel()

	t.Run("nil leaf codec should error", func(t *testing.T) {
		t.Parallel()

		c, err := NewCodecWithLeafCodec(nil)
		assert.True(t, check.IfNil(c))
		assert.Equal(t, ErrNilLeafCodec, err)
	})
	t.Run("custom leaf codec is used for leaves", func(t *testing.T) {
		t.Parallel()

		expectedErr := errors.New("expected error")
		c, err := NewCodecWithLeafCodec(&leafCodecStub{
			EncodeLeafCalled: func(value *ValueObject) ([]byte, error) {
				return nil, expectedErr
			},
		})
		require.Nil(t, err)
		assert.False(t, check.IfNil(c))

		_, err = c.Encode(NewStruct("", newUintValue(t, "", 8, 1)))
		assert.Equal(t, expectedErr, err)
	})
}

func TestCodec_EncodeStruct(t *testing.T) {
	t.Parallel()

	c := NewCodec()

	t.Run("static and dynamic fields", func(t *testing.T) {
		t.Parallel()

		node := NewStruct("", newUintValue(t, "a", 256, 42), newStringValue(t, "b", "hi"))
		encoded, err := c.Encode(node)
		require.Nil(t, err)

		expected := concat(word(42), word(0x40), word(2), paddedText("hi"))
		requireHex(t, expected, encoded)
	})
	t.Run("static struct is encoded in place", func(t *testing.T) {
		t.Parallel()

		node := NewStruct("", newUintValue(t, "", 8, 1), NewStruct("", newUintValue(t, "", 16, 2), newUintValue(t, "", 32, 3)))
		encoded, err := c.Encode(node)
		require.Nil(t, err)
		requireHex(t, words(1, 2, 3), encoded)
	})
	t.Run("empty struct encodes to nothing", func(t *testing.T) {
		t.Parallel()

		encoded, err := c.Encode(NewStruct(""))
		require.Nil(t, err)
		assert.Equal(t, 0, len(encoded))
	})
	t.Run("pointer of a nested dynamic list equals the outer head size", func(t *testing.T) {
		t.Parallel()

		order := NewStruct("", NewUint("id", 64), NewString("memo"))
		orders := NewDynamicList("orders", order)
		item := orders.NewItem().(*StructObject)
		require.Nil(t, item.Field(0).(*ValueObject).SetUint64(7))
		require.Nil(t, item.Field(1).(*ValueObject).SetString("a"))
		require.Nil(t, orders.Append(item))

		node := NewStruct("", newUintValue(t, "x", 256, 1), orders)
		encoded, err := c.Encode(node)
		require.Nil(t, err)

		expected := concat(
			words(1, int64(HeadSize(NewUint("", 256))+HeadSize(orders))),
			words(1, 32),
			words(7, 64, 1),
			paddedText("a"),
		)
		requireHex(t, expected, encoded)
		assert.Equal(t, word(64), encoded[32:64])
	})
}

func TestCodec_EncodeList(t *testing.T) {
	t.Parallel()

	c := NewCodec()

	t.Run("fixed list of static items has no length word", func(t *testing.T) {
		t.Parallel()

		encoded, err := c.Encode(newUintList(t, 8, true, 1, 2, 3))
		require.Nil(t, err)
		assert.Equal(t, 96, len(encoded))
		requireHex(t, words(1, 2, 3), encoded)
	})
	t.Run("dynamic list is prefixed by its length", func(t *testing.T) {
		t.Parallel()

		encoded, err := c.Encode(newUintList(t, 8, false, 1, 2, 3))
		require.Nil(t, err)
		requireHex(t, words(3, 1, 2, 3), encoded)
	})
	t.Run("empty dynamic list", func(t *testing.T) {
		t.Parallel()

		encoded, err := c.Encode(NewDynamicList("", NewString("")))
		require.Nil(t, err)
		requireHex(t, word(0), encoded)
	})
	t.Run("fixed list of dynamic items holds pointers", func(t *testing.T) {
		t.Parallel()

		list := NewFixedList("", NewString(""), 2)
		require.Nil(t, list.SetItem(0, newStringValue(t, "", "a")))
		require.Nil(t, list.SetItem(1, newStringValue(t, "", "b")))

		encoded, err := c.Encode(list)
		require.Nil(t, err)

		expected := concat(words(64, 128), word(1), paddedText("a"), word(1), paddedText("b"))
		requireHex(t, expected, encoded)
	})
	t.Run("nested dynamic lists use pointers relative to the region after the length word", func(t *testing.T) {
		t.Parallel()

		outer := NewDynamicList("", NewDynamicList("", NewUint("", 8)))
		require.Nil(t, outer.Append(newUintList(t, 8, false, 1), newUintList(t, 8, false, 2, 3)))

		encoded, err := c.Encode(outer)
		require.Nil(t, err)
		requireHex(t, words(2, 64, 128, 1, 1, 2, 2, 3), encoded)
	})
}

func TestCodec_EncodeErrors(t *testing.T) {
	t.Parallel()

	c := NewCodec()

	t.Run("unset leaf", func(t *testing.T) {
		t.Parallel()

		encoded, err := c.Encode(NewStruct("", NewUint("a", 256)))
		assert.Nil(t, encoded)
		assert.True(t, errors.Is(err, ErrSchemaMismatch))
		assert.True(t, errors.Is(err, ErrValueNotSet))
	})
	t.Run("fixed list with a wrong number of items", func(t *testing.T) {
		t.Parallel()

		list := newUintList(t, 8, true, 1, 2, 3)
		list.items = list.items[:2]

		encoded, err := c.Encode(list)
		assert.Nil(t, encoded)
		assert.True(t, errors.Is(err, ErrSchemaMismatch))
	})
	t.Run("item shaped differently than the element", func(t *testing.T) {
		t.Parallel()

		list := newUintList(t, 8, false, 1)
		list.items = append(list.items, newStringValue(t, "", "x"))

		_, err := c.Encode(list)
		assert.True(t, errors.Is(err, ErrSchemaMismatch))
	})
	t.Run("fixed point values are not supported", func(t *testing.T) {
		t.Parallel()

		_, err := c.Encode(NewFixed("", 128, 18))
		assert.True(t, errors.Is(err, ErrUnsupportedValueKind))

		_, err = c.Encode(NewStruct("", NewUFixed("", 128, 18)))
		assert.True(t, errors.Is(err, ErrUnsupportedValueKind))
	})
	t.Run("nil node", func(t *testing.T) {
		t.Parallel()

		_, err := c.Encode(nil)
		assert.True(t, errors.Is(err, ErrSchemaMismatch))
	})
}

func TestCodec_Decode(t *testing.T) {
	t.Parallel()

	c := NewCodec()

	t.Run("struct with a dynamic field", func(t *testing.T) {
		t.Parallel()

		template := NewStruct("", NewUint("a", 256), NewString("b"))
		data := concat(word(42), word(0x40), word(2), paddedText("hi"))

		decoded, err := c.Decode(template, data, 0)
		require.Nil(t, err)

		expected := NewStruct("", newUintValue(t, "a", 256, 42), newStringValue(t, "b", "hi"))
		assert.True(t, Equal(expected, decoded))
		assert.True(t, IsTemplate(template))
	})
	t.Run("at a non zero offset", func(t *testing.T) {
		t.Parallel()

		template := NewStruct("", NewUint("a", 256), NewString("b"))
		data := concat([]byte{0xde, 0xad, 0xbe, 0xef}, word(42), word(0x40), word(2), paddedText("hi"))

		decoded, err := c.Decode(template, data, 4)
		require.Nil(t, err)

		text, err := decoded.(*StructObject).Field(1).(*ValueObject).Text()
		require.Nil(t, err)
		assert.Equal(t, "hi", text)
	})
	t.Run("lists", func(t *testing.T) {
		t.Parallel()

		decoded, err := c.Decode(NewFixedList("", NewUint("", 8), 3), words(1, 2, 3), 0)
		require.Nil(t, err)
		assert.True(t, Equal(newUintList(t, 8, true, 1, 2, 3), decoded))

		decoded, err = c.Decode(NewDynamicList("", NewUint("", 8)), words(3, 1, 2, 3), 0)
		require.Nil(t, err)
		assert.True(t, Equal(newUintList(t, 8, false, 1, 2, 3), decoded))

		nested := NewDynamicList("", NewDynamicList("", NewUint("", 8)))
		decoded, err = c.Decode(nested, words(2, 64, 128, 1, 1, 2, 2, 3), 0)
		require.Nil(t, err)
		assert.Equal(t, 2, decoded.(*ListObject).Len())
		assert.True(t, Equal(newUintList(t, 8, false, 2, 3), decoded.(*ListObject).Item(1)))
	})
	t.Run("round trip of a deeply nested tree", func(t *testing.T) {
		t.Parallel()

		tree := buildNestedTree(t)
		encoded, err := c.Encode(tree)
		require.Nil(t, err)

		decoded, err := c.Decode(CloneAsTemplate(tree), encoded, 0)
		require.Nil(t, err)
		assert.True(t, Equal(tree, decoded))
	})
	t.Run("signed integers", func(t *testing.T) {
		t.Parallel()

		node := NewInt("", 8)
		require.Nil(t, node.SetInt64(-1))
		encoded, err := c.Encode(node)
		require.Nil(t, err)
		for _, b := range encoded {
			assert.Equal(t, byte(0xff), b)
		}

		decoded, err := c.Decode(NewInt("", 8), encoded, 0)
		require.Nil(t, err)
		value, err := decoded.(*ValueObject).BigInt()
		require.Nil(t, err)
		assert.Equal(t, int64(-1), value.Int64())
	})
}

func TestCodec_DecodeErrors(t *testing.T) {
	t.Parallel()

	c := NewCodec()

	t.Run("empty buffer", func(t *testing.T) {
		t.Parallel()

		decoded, err := c.Decode(NewUint("", 256), make([]byte, 0), 0)
		assert.Nil(t, decoded)
		assert.True(t, errors.Is(err, ErrBufferUnderrun))
	})
	t.Run("offset outside of the buffer", func(t *testing.T) {
		t.Parallel()

		_, err := c.Decode(NewStruct(""), word(1), 33)
		assert.True(t, errors.Is(err, ErrBufferUnderrun))

		_, err = c.Decode(NewUint("", 256), word(1), -1)
		assert.True(t, errors.Is(err, ErrBufferUnderrun))
	})
	t.Run("pointer past the end of the buffer", func(t *testing.T) {
		t.Parallel()

		_, err := c.Decode(NewStruct("", NewString("")), word(1000), 0)
		assert.True(t, errors.Is(err, ErrBufferUnderrun))
	})
	t.Run("huge pointer", func(t *testing.T) {
		t.Parallel()

		pointer := make([]byte, WordSize)
		for i := range pointer {
			pointer[i] = 0xff
		}

		_, err := c.Decode(NewStruct("", NewString("")), pointer, 0)
		assert.True(t, errors.Is(err, ErrBufferUnderrun))
	})
	t.Run("pointer inside the head region", func(t *testing.T) {
		t.Parallel()

		_, err := c.Decode(NewStruct("", NewString("")), word(0), 0)
		assert.True(t, errors.Is(err, ErrInvalidEncoding))

		_, err = c.Decode(NewDynamicList("", NewString("")), concat(words(2, 64, 32), word(0)), 0)
		assert.True(t, errors.Is(err, ErrInvalidEncoding))
	})
	t.Run("pointers sharing one large string", func(t *testing.T) {
		t.Parallel()

		numItems := 1000
		stringSize := 32 * 1024
		data := word(int64(numItems))
		for i := 0; i < numItems; i++ {
			data = append(data, word(int64(numItems*WordSize))...)
		}
		data = append(data, word(int64(stringSize))...)
		data = append(data, make([]byte, stringSize)...)

		decoded, err := c.Decode(NewDynamicList("", NewString("")), data, 0)
		assert.Nil(t, decoded)
		assert.True(t, errors.Is(err, ErrInvalidEncoding))
	})
	t.Run("pointers sharing one list of zero sized items", func(t *testing.T) {
		t.Parallel()

		template := NewDynamicList("", NewDynamicList("", NewStruct("")))
		data := concat(words(4, 128, 128, 128, 128), word(maxZeroSizedItems))

		_, err := c.Decode(template, data, 0)
		assert.True(t, errors.Is(err, ErrBufferUnderrun))

		decoded, err := c.Decode(template, concat(words(1, 32), word(maxZeroSizedItems)), 0)
		require.Nil(t, err)
		assert.Equal(t, maxZeroSizedItems, decoded.(*ListObject).Item(0).(*ListObject).Len())
	})
	t.Run("length larger than the data", func(t *testing.T) {
		t.Parallel()

		_, err := c.Decode(NewDynamicList("", NewUint("", 8)), words(1000, 1), 0)
		assert.True(t, errors.Is(err, ErrBufferUnderrun))

		_, err = c.Decode(NewString(""), concat(word(40), paddedText("short")), 0)
		assert.True(t, errors.Is(err, ErrBufferUnderrun))
	})
	t.Run("truncated fixed list", func(t *testing.T) {
		t.Parallel()

		_, err := c.Decode(NewFixedList("", NewUint("", 8), 3), words(1, 2), 0)
		assert.True(t, errors.Is(err, ErrBufferUnderrun))
	})
	t.Run("fixed point template", func(t *testing.T) {
		t.Parallel()

		_, err := c.Decode(NewUFixed("", 128, 18), word(1), 0)
		assert.True(t, errors.Is(err, ErrUnsupportedValueKind))
	})
	t.Run("malformed words", func(t *testing.T) {
		t.Parallel()

		_, err := c.Decode(NewBool(""), word(2), 0)
		assert.True(t, errors.Is(err, ErrInvalidEncoding))

		_, err = c.Decode(NewUint("", 8), word(256), 0)
		assert.True(t, errors.Is(err, ErrInvalidEncoding))

		_, err = c.Decode(NewFixedBytes("", 1), word(1), 0)
		assert.True(t, errors.Is(err, ErrInvalidEncoding))
	})
	t.Run("nil template", func(t *testing.T) {
		t.Parallel()

		_, err := c.Decode(nil, word(1), 0)
		assert.True(t, errors.Is(err, ErrSchemaMismatch))
	})
}

func buildNestedTree(t *testing.T) AbiObject {
	flag := NewBool("flag")
	require.Nil(t, flag.SetBool(true))
	signed := NewInt("delta", 64)
	require.Nil(t, signed.SetInt64(-12345))
	owner := newAddressValue(t, "owner", "0x00000000000000000000000000000000deadbeef")
	digest := NewFixedBytes("digest", 4)
	require.Nil(t, digest.SetBytes([]byte{1, 2, 3, 4}))
	blob := NewBytes("blob")
	require.Nil(t, blob.SetBytes(make([]byte, 45)))

	pair := NewStruct("", NewString("key"), NewUint("value", 128))
	pairs := NewDynamicList("pairs", pair)
	for i, key := range []string{"alpha", "", "a key that is definitely longer than one word"} {
		item := pairs.NewItem().(*StructObject)
		require.Nil(t, item.Field(0).(*ValueObject).SetString(key))
		require.Nil(t, item.Field(1).(*ValueObject).SetUint64(uint64(i)))
		require.Nil(t, pairs.Append(item))
	}

	matrix := NewFixedList("matrix", NewDynamicList("", NewUint("", 16)), 2)
	require.Nil(t, matrix.SetItem(0, newUintList(t, 16, false)))
	require.Nil(t, matrix.SetItem(1, newUintList(t, 16, false, 7, 8, 9)))

	return NewStruct("root", flag, signed, owner, digest, blob, pairs, matrix, newUintList(t, 8, true, 4, 5))
}
