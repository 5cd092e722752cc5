package abi

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common/math"
)

func (wc *wordCodec) encodeInteger(value *ValueObject) ([]byte, error) {
	err := checkIntegerBits(value.size)
	if err != nil {
		return nil, fmt.Errorf("%w for %s", err, value.describe())
	}

	n, err := value.BigInt()
	if err != nil {
		return nil, err
	}

	err = checkIntegerRange(value.kind, value.size, n)
	if err != nil {
		return nil, fmt.Errorf("%w for %s", err, value.describe())
	}

	return math.U256Bytes(n), nil
}

func (wc *wordCodec) decodeInteger(data []byte, offset int, value *ValueObject) error {
	err := checkIntegerBits(value.size)
	if err != nil {
		return fmt.Errorf("%w for %s", err, value.describe())
	}

	word, err := readWord(data, offset)
	if err != nil {
		return err
	}

	n := new(big.Int).SetBytes(word)
	if value.kind == IntKind {
		n = math.S256(n)
	}

	err = checkIntegerRange(value.kind, value.size, n)
	if err != nil {
		return fmt.Errorf("%w: word %x at offset %d for %s", ErrInvalidEncoding, word, offset, value.describe())
	}

	value.payload = n
	return nil
}

func checkIntegerBits(bits int) error {
	if bits < 8 || bits > maxIntegerBits || bits%8 != 0 {
		return fmt.Errorf("%w: invalid integer bit size %d", ErrSchemaMismatch, bits)
	}

	return nil
}

func checkIntegerRange(kind ValueKind, bits int, value *big.Int) error {
	if kind == UintKind {
		if value.Sign() < 0 || value.BitLen() > bits {
			return fmt.Errorf("%w: %s does not fit uint%d", ErrValueOutOfRange, value.String(), bits)
		}
		return nil
	}

	limit := new(big.Int).Lsh(big.NewInt(1), uint(bits-1))
	minValue := new(big.Int).Neg(limit)
	if value.Cmp(minValue) < 0 || value.Cmp(limit) >= 0 {
		return fmt.Errorf("%w: %s does not fit int%d", ErrValueOutOfRange, value.String(), bits)
	}

	return nil
}
