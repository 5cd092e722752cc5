package abi

import (
	"github.com/ethereum/go-ethereum/common"
)

func (wc *wordCodec) encodeAddress(value *ValueObject) ([]byte, error) {
	address, err := value.Address()
	if err != nil {
		return nil, err
	}

	return common.LeftPadBytes(address.Bytes(), WordSize), nil
}

func (wc *wordCodec) decodeAddress(data []byte, offset int, value *ValueObject) error {
	word, err := readWord(data, offset)
	if err != nil {
		return err
	}

	value.payload = common.BytesToAddress(word[WordSize-addressLength:])
	return nil
}
