package abi

// WordSize is the size, in bytes, of every head slot, pointer and length prefix
const WordSize = 32

const (
	maxIntegerBits     = 256
	addressLength      = 20
	maxFixedBytesSize  = 32
	selectorLength     = 4
	defaultFixedBits   = 128
	defaultFixedDigits = 18
	hexPrefix          = "0x"
	maxZeroSizedItems  = 1 << 16
	maxSchemaNodes     = 1 << 18
)
