package abi

import (
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueObject_Setters(t *testing.T) {
	t.Parallel()

	t.Run("wrong kind should error and keep the kind", func(t *testing.T) {
		t.Parallel()

		node := NewUint("amount", 256)
		err := node.SetString("10")
		assert.True(t, errors.Is(err, ErrSchemaMismatch))
		assert.Equal(t, UintKind, node.Kind())
		assert.False(t, node.IsSet())

		err = NewBool("").SetUint64(1)
		assert.True(t, errors.Is(err, ErrSchemaMismatch))
	})
	t.Run("integer ranges", func(t *testing.T) {
		t.Parallel()

		u8 := NewUint("", 8)
		assert.Nil(t, u8.SetUint64(255))
		assert.True(t, errors.Is(u8.SetUint64(256), ErrValueOutOfRange))
		assert.True(t, errors.Is(u8.SetInt64(-1), ErrValueOutOfRange))
		assert.True(t, errors.Is(u8.SetBigInt(nil), ErrValueOutOfRange))

		i8 := NewInt("", 8)
		assert.Nil(t, i8.SetInt64(-128))
		assert.Nil(t, i8.SetInt64(127))
		assert.True(t, errors.Is(i8.SetInt64(128), ErrValueOutOfRange))
		assert.True(t, errors.Is(i8.SetInt64(-129), ErrValueOutOfRange))

		u256 := NewUint("", 256)
		maxValue := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1))
		assert.Nil(t, u256.SetBigInt(maxValue))
		assert.True(t, errors.Is(u256.SetBigInt(new(big.Int).Add(maxValue, big.NewInt(1))), ErrValueOutOfRange))
	})
	t.Run("stored integers are copies", func(t *testing.T) {
		t.Parallel()

		value := big.NewInt(10)
		node := NewUint("", 64)
		require.Nil(t, node.SetBigInt(value))
		value.SetInt64(11)

		stored, err := node.BigInt()
		require.Nil(t, err)
		assert.Equal(t, int64(10), stored.Int64())

		stored.SetInt64(12)
		again, _ := node.BigInt()
		assert.Equal(t, int64(10), again.Int64())
	})
	t.Run("fixed bytes are right padded", func(t *testing.T) {
		t.Parallel()

		node := NewFixedBytes("", 4)
		require.Nil(t, node.SetBytes([]byte{1, 2}))
		value, err := node.Bytes()
		require.Nil(t, err)
		assert.Equal(t, []byte{1, 2, 0, 0}, value)

		assert.True(t, errors.Is(node.SetBytes([]byte{1, 2, 3, 4, 5}), ErrValueOutOfRange))
	})
	t.Run("nil dynamic bytes become empty", func(t *testing.T) {
		t.Parallel()

		node := NewBytes("")
		require.Nil(t, node.SetBytes(nil))
		assert.True(t, node.IsSet())

		value, err := node.Bytes()
		require.Nil(t, err)
		assert.Equal(t, 0, len(value))
	})
	t.Run("getters", func(t *testing.T) {
		t.Parallel()

		_, err := NewBool("").Bool()
		assert.True(t, errors.Is(err, ErrValueNotSet))

		_, err = NewString("").Bool()
		assert.True(t, errors.Is(err, ErrSchemaMismatch))

		address := newAddressValue(t, "", "0x00000000000000000000000000000000000000aa")
		value, err := address.Address()
		require.Nil(t, err)
		assert.Equal(t, common.HexToAddress("0xaa"), value)
		assert.Equal(t, value, address.Payload())
	})
}

func TestStructObject(t *testing.T) {
	t.Parallel()

	node := NewStruct("order", NewUint("id", 64), NewString("memo"))
	assert.Equal(t, StructType, node.ObjectType())
	assert.Equal(t, 2, node.NumFields())

	field, ok := node.FieldByName("memo")
	require.True(t, ok)
	assert.Equal(t, StringKind, field.(*ValueObject).Kind())

	_, ok = node.FieldByName("missing")
	assert.False(t, ok)

	err := node.SetField(0, newUintValue(t, "other", 64, 5))
	require.Nil(t, err)
	assert.Equal(t, "id", node.Field(0).Name())

	err = node.SetField(0, newUintValue(t, "", 32, 5))
	assert.True(t, errors.Is(err, ErrSchemaMismatch))

	err = node.SetField(2, newUintValue(t, "", 64, 5))
	assert.True(t, errors.Is(err, ErrSchemaMismatch))

	fields := node.Fields()
	fields[0] = nil
	assert.NotNil(t, node.Field(0))
}

func TestListObject(t *testing.T) {
	t.Parallel()

	t.Run("fixed list", func(t *testing.T) {
		t.Parallel()

		list := NewFixedList("values", NewUint("", 8), 2)
		assert.Equal(t, ListType, list.ObjectType())
		assert.Equal(t, FixedList, list.ListKind())
		assert.Equal(t, 2, list.FixedLength())
		assert.Equal(t, 2, list.Len())
		assert.True(t, IsTemplate(list))

		err := list.Append(newUintValue(t, "", 8, 1))
		assert.True(t, errors.Is(err, ErrSchemaMismatch))

		err = list.SetItem(5, newUintValue(t, "", 8, 1))
		assert.True(t, errors.Is(err, ErrSchemaMismatch))
	})
	t.Run("dynamic list", func(t *testing.T) {
		t.Parallel()

		list := NewDynamicList("values", NewUint("", 8))
		assert.Equal(t, DynamicList, list.ListKind())
		assert.Equal(t, 0, list.Len())

		require.Nil(t, list.Append(newUintValue(t, "", 8, 1), newUintValue(t, "", 8, 2)))
		assert.Equal(t, 2, list.Len())

		err := list.Append(newStringValue(t, "", "x"))
		assert.True(t, errors.Is(err, ErrSchemaMismatch))
		assert.Equal(t, 2, list.Len())

		err = list.Append(nil)
		assert.True(t, errors.Is(err, ErrSchemaMismatch))
	})
	t.Run("element schema is not shared with the caller", func(t *testing.T) {
		t.Parallel()

		element := NewUint("", 8)
		list := NewDynamicList("", element)
		require.Nil(t, element.SetUint64(3))

		assert.True(t, IsTemplate(list.Element()))
		assert.True(t, IsTemplate(list.NewItem()))
	})
	t.Run("appended items are copies", func(t *testing.T) {
		t.Parallel()

		list := NewDynamicList("", NewUint("", 8))
		item := newUintValue(t, "", 8, 1)
		require.Nil(t, list.Append(item, item))
		assert.False(t, list.Item(0) == list.Item(1))

		require.Nil(t, item.SetUint64(9))
		for i := 0; i < list.Len(); i++ {
			value, err := list.Item(i).(*ValueObject).BigInt()
			require.Nil(t, err)
			assert.Equal(t, int64(1), value.Int64())
		}

		require.Nil(t, list.Item(0).(*ValueObject).SetUint64(7))
		value, _ := list.Item(1).(*ValueObject).BigInt()
		assert.Equal(t, int64(1), value.Int64())
	})
	t.Run("set items are copies", func(t *testing.T) {
		t.Parallel()

		list := NewFixedList("", NewUint("", 8), 2)
		item := newUintValue(t, "", 8, 4)
		require.Nil(t, list.SetItem(0, item))
		require.Nil(t, list.SetItem(1, item))
		assert.False(t, list.Item(0) == list.Item(1))

		require.Nil(t, item.SetUint64(5))
		value, _ := list.Item(0).(*ValueObject).BigInt()
		assert.Equal(t, int64(4), value.Int64())
	})
	t.Run("negative fixed length is treated as zero", func(t *testing.T) {
		t.Parallel()

		var list *ListObject
		require.NotPanics(t, func() {
			list = NewFixedList("", NewUint("", 8), -1)
		})
		assert.Equal(t, 0, list.FixedLength())
		assert.Equal(t, 0, list.Len())
		assert.Equal(t, 0, HeadWords(list))
	})
}

func TestStructObject_OwnsItsFields(t *testing.T) {
	t.Parallel()

	t.Run("constructor copies the fields", func(t *testing.T) {
		t.Parallel()

		id := newUintValue(t, "id", 64, 1)
		node := NewStruct("", id, id)
		assert.False(t, node.Field(0) == node.Field(1))

		require.Nil(t, id.SetUint64(2))
		value, _ := node.Field(0).(*ValueObject).BigInt()
		assert.Equal(t, int64(1), value.Int64())
	})
	t.Run("set field neither renames nor shares the caller node", func(t *testing.T) {
		t.Parallel()

		node := NewStruct("", NewUint("first", 64), NewUint("second", 64))
		value := newUintValue(t, "value", 64, 3)
		require.Nil(t, node.SetField(0, value))
		require.Nil(t, node.SetField(1, value))

		assert.Equal(t, "value", value.Name())
		assert.Equal(t, "first", node.Field(0).Name())
		assert.Equal(t, "second", node.Field(1).Name())
		assert.False(t, node.Field(0) == node.Field(1))

		require.Nil(t, value.SetUint64(4))
		stored, _ := node.Field(1).(*ValueObject).BigInt()
		assert.Equal(t, int64(3), stored.Int64())
	})
}

func TestClone(t *testing.T) {
	t.Parallel()

	t.Run("clone as template drops every value", func(t *testing.T) {
		t.Parallel()

		tree := buildNestedTree(t)
		template := CloneAsTemplate(tree)
		assert.True(t, IsTemplate(template))
		assert.True(t, sameShape(tree, template))
		assert.False(t, IsTemplate(tree))
	})
	t.Run("dynamic lists come out empty, fixed lists keep their length", func(t *testing.T) {
		t.Parallel()

		dynamic := CloneAsTemplate(newUintList(t, 8, false, 1, 2)).(*ListObject)
		assert.Equal(t, 0, dynamic.Len())

		fixed := CloneAsTemplate(newUintList(t, 8, true, 1, 2)).(*ListObject)
		assert.Equal(t, 2, fixed.Len())
	})
	t.Run("clone with value is deep", func(t *testing.T) {
		t.Parallel()

		tree := buildNestedTree(t)
		clone := CloneWithValue(tree)
		assert.True(t, Equal(tree, clone))

		blob, _ := clone.(*StructObject).FieldByName("blob")
		require.Nil(t, blob.(*ValueObject).SetBytes([]byte{9}))
		assert.False(t, Equal(tree, clone))

		original, _ := tree.(*StructObject).FieldByName("blob")
		value, _ := original.(*ValueObject).Bytes()
		assert.Equal(t, 45, len(value))
	})
}

func TestEqual(t *testing.T) {
	t.Parallel()

	assert.True(t, Equal(nil, nil))
	assert.False(t, Equal(nil, NewBool("")))
	assert.True(t, Equal(newUintValue(t, "a", 8, 1), newUintValue(t, "a", 8, 1)))
	assert.False(t, Equal(newUintValue(t, "a", 8, 1), newUintValue(t, "b", 8, 1)))
	assert.False(t, Equal(newUintValue(t, "a", 8, 1), newUintValue(t, "a", 16, 1)))
	assert.False(t, Equal(newUintValue(t, "a", 8, 1), newUintValue(t, "a", 8, 2)))
	assert.False(t, Equal(newUintValue(t, "a", 8, 1), NewUint("a", 8)))
	assert.False(t, Equal(newUintList(t, 8, false, 1), newUintList(t, 8, false, 1, 2)))
}

func TestTypeString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "uint256", TypeString(NewUint("", 256)))
	assert.Equal(t, "int8", TypeString(NewInt("", 8)))
	assert.Equal(t, "bytes32", TypeString(NewFixedBytes("", 32)))
	assert.Equal(t, "bytes", TypeString(NewBytes("")))
	assert.Equal(t, "address", TypeString(NewAddress("")))
	assert.Equal(t, "fixed128x18", TypeString(NewFixed("", 128, 18)))
	assert.Equal(t, "ufixed64x2", TypeString(NewUFixed("", 64, 2)))
	assert.Equal(t, "(uint64,string)[]", TypeString(NewDynamicList("", NewStruct("", NewUint("", 64), NewString("")))))
	assert.Equal(t, "bool[2][]", TypeString(NewDynamicList("", NewFixedList("", NewBool(""), 2))))
	assert.Equal(t, "()", TypeString(NewStruct("")))
}
