package abi

import "fmt"

// decodeBudget bounds the values produced by one decode call. Leaves are charged one word plus the length of their
// dynamic content against the input size, so shared pointers cannot expand a small input into a large tree.
// Items of zero sized elements consume no input and are counted separately
type decodeBudget struct {
	inputSize          int
	remainingBytes     int
	remainingZeroSized int
}

func newDecodeBudget(data []byte) *decodeBudget {
	return &decodeBudget{
		inputSize:          len(data),
		remainingBytes:     len(data),
		remainingZeroSized: maxZeroSizedItems,
	}
}

func (db *decodeBudget) chargeLeaf(leaf *ValueObject) error {
	cost := WordSize + dynamicContentLength(leaf)
	if cost > db.remainingBytes {
		return fmt.Errorf("%w: decoded values of %s exceed the %d input bytes", ErrInvalidEncoding, leaf.describe(), db.inputSize)
	}

	db.remainingBytes -= cost
	return nil
}

func (db *decodeBudget) chargeZeroSized(template *ListObject, count int) error {
	if count > db.remainingZeroSized {
		return fmt.Errorf("%w: %d zero sized items of %s", ErrBufferUnderrun, count, typeString(template))
	}

	db.remainingZeroSized -= count
	return nil
}

func dynamicContentLength(leaf *ValueObject) int {
	switch payload := leaf.payload.(type) {
	case []byte:
		if leaf.kind == DynamicBytesKind {
			return len(payload)
		}
	case string:
		return len(payload)
	}

	return 0
}
