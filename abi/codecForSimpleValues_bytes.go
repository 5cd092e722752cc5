package abi

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

func (wc *wordCodec) encodeFixedBytes(value *ValueObject) ([]byte, error) {
	err := checkFixedBytesSize(value)
	if err != nil {
		return nil, err
	}

	data, err := value.Bytes()
	if err != nil {
		return nil, err
	}

	return common.RightPadBytes(data, WordSize), nil
}

func (wc *wordCodec) decodeFixedBytes(data []byte, offset int, value *ValueObject) error {
	err := checkFixedBytesSize(value)
	if err != nil {
		return err
	}

	word, err := readWord(data, offset)
	if err != nil {
		return err
	}
	if !isZero(word[value.size:]) {
		return fmt.Errorf("%w: non zero padding in word %x for %s", ErrInvalidEncoding, word, value.describe())
	}

	value.payload = common.CopyBytes(word[:value.size])
	return nil
}

func checkFixedBytesSize(value *ValueObject) error {
	if value.size < 1 || value.size > maxFixedBytesSize {
		return fmt.Errorf("%w: invalid byte length for %s", ErrSchemaMismatch, value.describe())
	}

	return nil
}

func (wc *wordCodec) encodeDynamicBytes(value *ValueObject) ([]byte, error) {
	data, err := value.Bytes()
	if err != nil {
		return nil, err
	}

	return packBytesSlice(data), nil
}

func (wc *wordCodec) decodeDynamicBytes(data []byte, offset int, value *ValueObject) error {
	content, err := readBytesSlice(data, offset)
	if err != nil {
		return err
	}

	value.payload = common.CopyBytes(content)
	return nil
}

// packBytesSlice packs the given bytes as [L, V], V right padded to a multiple of the word size
func packBytesSlice(data []byte) []byte {
	return append(encodeIntWord(len(data)), padRight(data)...)
}

func readBytesSlice(data []byte, offset int) ([]byte, error) {
	length, err := readIntWord(data, offset)
	if err != nil {
		return nil, err
	}

	return readSlice(data, offset+WordSize, length)
}
