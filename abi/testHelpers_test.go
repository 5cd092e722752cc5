package abi

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"
)

func word(value int64) []byte {
	return common.LeftPadBytes(big.NewInt(value).Bytes(), WordSize)
}

func words(values ...int64) []byte {
	encoded := make([]byte, 0, len(values)*WordSize)
	for _, value := range values {
		encoded = append(encoded, word(value)...)
	}

	return encoded
}

func concat(parts ...[]byte) []byte {
	result := make([]byte, 0)
	for _, part := range parts {
		result = append(result, part...)
	}

	return result
}

func paddedText(text string) []byte {
	return common.RightPadBytes([]byte(text), paddedLength(len(text)))
}

func newUintValue(t *testing.T, name string, bits int, value int64) *ValueObject {
	node := NewUint(name, bits)
	require.Nil(t, node.SetInt64(value))

	return node
}

func newStringValue(t *testing.T, name string, value string) *ValueObject {
	node := NewString(name)
	require.Nil(t, node.SetString(value))

	return node
}

func newAddressValue(t *testing.T, name string, hexAddress string) *ValueObject {
	node := NewAddress(name)
	require.Nil(t, node.SetAddress(common.HexToAddress(hexAddress)))

	return node
}

func newUintList(t *testing.T, bits int, fixed bool, values ...int64) *ListObject {
	if fixed {
		list := NewFixedList("", NewUint("", bits), len(values))
		for i, value := range values {
			require.Nil(t, list.SetItem(i, newUintValue(t, "", bits, value)))
		}
		return list
	}

	list := NewDynamicList("", NewUint("", bits))
	for _, value := range values {
		require.Nil(t, list.Append(newUintValue(t, "", bits, value)))
	}

	return list
}

const erc20Abi = `[
	{"type":"constructor","inputs":[{"name":"supply","type":"uint256"}],"stateMutability":"nonpayable"},
	{"type":"function","name":"transfer","inputs":[{"name":"to","type":"address"},{"name":"amount","type":"uint256"}],"outputs":[{"name":"","type":"bool"}],"stateMutability":"nonpayable"},
	{"type":"function","name":"balanceOf","inputs":[{"name":"owner","type":"address"}],"outputs":[{"name":"","type":"uint256"}],"constant":true},
	{"type":"function","name":"name","inputs":[],"outputs":[{"name":"","type":"string"}],"stateMutability":"view"},
	{"type":"function","name":"mint","inputs":[{"name":"to","type":"address"}],"outputs":[],"payable":true},
	{"type":"function","name":"mint","inputs":[{"name":"to","type":"address"},{"name":"amount","type":"uint256"}],"outputs":[]},
	{"type":"function","name":"batch","inputs":[{"name":"orders","type":"tuple[]","components":[{"name":"id","type":"uint64"},{"name":"memo","type":"string"}]}],"outputs":[{"name":"ids","type":"uint64[]"},{"name":"flags","type":"bool[2]"}]},
	{"type":"event","name":"Transfer","inputs":[{"name":"from","type":"address","indexed":true},{"name":"to","type":"address","indexed":true},{"name":"value","type":"uint256","indexed":false}],"anonymous":false},
	{"type":"event","name":"Tagged","inputs":[{"name":"tag","type":"string","indexed":true},{"name":"payload","type":"bytes","indexed":false}],"anonymous":false},
	{"type":"error","name":"InsufficientBalance","inputs":[{"name":"needed","type":"uint256"}]},
	{"type":"fallback"},
	{"type":"receive","stateMutability":"payable"}
]`

func requireHex(t *testing.T, expected []byte, actual []byte) {
	require.Equal(t, common.Bytes2Hex(expected), common.Bytes2Hex(actual))
}
