package abi

import (
	"errors"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/multiversx/mx-chain-core-go/core/check"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWordCodec_EncodeLeaf(t *testing.T) {
	t.Parallel()

	wc := NewWordCodec()
	assert.False(t, check.IfNil(wc))

	t.Run("bool", func(t *testing.T) {
		t.Parallel()

		node := NewBool("")
		require.Nil(t, node.SetBool(true))
		encoded, err := wc.EncodeLeaf(node)
		require.Nil(t, err)
		requireHex(t, word(1), encoded)

		require.Nil(t, node.SetBool(false))
		encoded, err = wc.EncodeLeaf(node)
		require.Nil(t, err)
		requireHex(t, word(0), encoded)
	})
	t.Run("address is left padded", func(t *testing.T) {
		t.Parallel()

		encoded, err := wc.EncodeLeaf(newAddressValue(t, "", "0x00000000000000000000000000000000000000ab"))
		require.Nil(t, err)
		requireHex(t, word(0xab), encoded)
	})
	t.Run("fixed bytes are right padded", func(t *testing.T) {
		t.Parallel()

		node := NewFixedBytes("", 2)
		require.Nil(t, node.SetBytes([]byte{0xab, 0xcd}))
		encoded, err := wc.EncodeLeaf(node)
		require.Nil(t, err)
		requireHex(t, common.RightPadBytes([]byte{0xab, 0xcd}, WordSize), encoded)
	})
	t.Run("dynamic bytes and strings carry their length", func(t *testing.T) {
		t.Parallel()

		node := NewBytes("")
		require.Nil(t, node.SetBytes(make([]byte, 33)))
		encoded, err := wc.EncodeLeaf(node)
		require.Nil(t, err)
		requireHex(t, concat(word(33), make([]byte, 64)), encoded)

		encoded, err = wc.EncodeLeaf(newStringValue(t, "", ""))
		require.Nil(t, err)
		requireHex(t, word(0), encoded)
	})
	t.Run("unset and unsupported leaves", func(t *testing.T) {
		t.Parallel()

		_, err := wc.EncodeLeaf(NewAddress(""))
		assert.True(t, errors.Is(err, ErrValueNotSet))

		_, err = wc.EncodeLeaf(NewFixed("", 128, 18))
		assert.True(t, errors.Is(err, ErrUnsupportedValueKind))
	})
}

func TestWordCodec_DecodeLeaf(t *testing.T) {
	t.Parallel()

	wc := NewWordCodec()

	t.Run("decoded leaf is a new node", func(t *testing.T) {
		t.Parallel()

		template := NewUint("amount", 64)
		decoded, err := wc.DecodeLeaf(template, word(9), 0)
		require.Nil(t, err)
		assert.False(t, template == decoded)
		assert.False(t, template.IsSet())
		assert.Equal(t, "amount", decoded.Name())
	})
	t.Run("address ignores the padding", func(t *testing.T) {
		t.Parallel()

		data := word(0xab)
		data[0] = 0xff
		decoded, err := wc.DecodeLeaf(NewAddress(""), data, 0)
		require.Nil(t, err)

		address, _ := decoded.Address()
		assert.Equal(t, common.HexToAddress("0xab"), address)
	})
	t.Run("strings", func(t *testing.T) {
		t.Parallel()

		decoded, err := wc.DecodeLeaf(NewString(""), concat(word(5), paddedText("hello")), 0)
		require.Nil(t, err)

		text, _ := decoded.Text()
		assert.Equal(t, "hello", text)
	})
	t.Run("short data", func(t *testing.T) {
		t.Parallel()

		_, err := wc.DecodeLeaf(NewBool(""), make([]byte, 31), 0)
		assert.True(t, errors.Is(err, ErrBufferUnderrun))

		_, err = wc.DecodeLeaf(NewBytes(""), word(1), 0)
		assert.True(t, errors.Is(err, ErrBufferUnderrun))
	})
}
