package abi

import (
	"fmt"
	"math"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	gethmath "github.com/ethereum/go-ethereum/common/math"
)

func encodeIntWord(value int) []byte {
	return gethmath.U256Bytes(new(big.Int).SetUint64(uint64(value)))
}

func readWord(data []byte, offset int) ([]byte, error) {
	if offset < 0 || offset > len(data)-WordSize {
		return nil, fmt.Errorf("%w: cannot read word at offset %d of %d bytes", ErrBufferUnderrun, offset, len(data))
	}

	return data[offset : offset+WordSize], nil
}

// readIntWord reads a word holding an offset or a length. Values that cannot address a slice are reported as underruns
func readIntWord(data []byte, offset int) (int, error) {
	word, err := readWord(data, offset)
	if err != nil {
		return 0, err
	}

	value := new(big.Int).SetBytes(word)
	if !value.IsUint64() || value.Uint64() > math.MaxInt32 {
		return 0, fmt.Errorf("%w: word %s at offset %d exceeds any buffer", ErrBufferUnderrun, value.String(), offset)
	}

	return int(value.Uint64()), nil
}

func readSlice(data []byte, offset int, length int) ([]byte, error) {
	if offset < 0 || length < 0 || offset > len(data) || length > len(data)-offset {
		return nil, fmt.Errorf("%w: cannot read %d bytes at offset %d of %d bytes", ErrBufferUnderrun, length, offset, len(data))
	}

	return data[offset : offset+length], nil
}

func paddedLength(length int) int {
	return (length + WordSize - 1) / WordSize * WordSize
}

func padRight(data []byte) []byte {
	return common.RightPadBytes(common.CopyBytes(data), paddedLength(len(data)))
}

func isZero(data []byte) bool {
	for _, b := range data {
		if b != 0 {
			return false
		}
	}

	return true
}
