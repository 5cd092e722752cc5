package abi

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/math"
)

func (wc *wordCodec) encodeBool(value *ValueObject) ([]byte, error) {
	b, err := value.Bool()
	if err != nil {
		return nil, err
	}

	if b {
		return math.PaddedBigBytes(common.Big1, WordSize), nil
	}

	return math.PaddedBigBytes(common.Big0, WordSize), nil
}

func (wc *wordCodec) decodeBool(data []byte, offset int, value *ValueObject) error {
	word, err := readWord(data, offset)
	if err != nil {
		return err
	}

	if !isZero(word[:WordSize-1]) || word[WordSize-1] > 1 {
		return fmt.Errorf("%w: bool word %x at offset %d", ErrInvalidEncoding, word, offset)
	}

	value.payload = word[WordSize-1] == 1
	return nil
}
