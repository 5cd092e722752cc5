package abi

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

type serializer struct {
	codec valuesCodec
}

// NewSerializer creates a serializer of parameter lists (call arguments, return values, event data)
func NewSerializer(codec valuesCodec) *serializer {
	return &serializer{
		codec: codec,
	}
}

// Serialize encodes the provided parameters as a tuple and returns the 0x prefixed hex encoding
func (s *serializer) Serialize(inputValues []AbiObject) (string, error) {
	data, err := s.SerializeToBytes(inputValues)
	if err != nil {
		return "", err
	}

	return hexPrefix + hex.EncodeToString(data), nil
}

// SerializeToBytes encodes the provided parameters as a tuple
func (s *serializer) SerializeToBytes(inputValues []AbiObject) ([]byte, error) {
	for i, value := range inputValues {
		if value == nil {
			return nil, fmt.Errorf("cannot serialize nil value at position %d", i)
		}
	}

	return s.codec.Encode(NewStruct("", inputValues...))
}

// Deserialize decodes the hex encoded parameters described by the provided templates
func (s *serializer) Deserialize(data string, outputTemplates []AbiObject) ([]AbiObject, error) {
	decoded, err := hex.DecodeString(strings.TrimPrefix(data, hexPrefix))
	if err != nil {
		return nil, err
	}

	return s.DeserializeBytes(decoded, outputTemplates)
}

// DeserializeBytes decodes the parameters described by the provided templates. Each parameter is either read in place
// or, when dynamic, through its offset word relative to the start of data
func (s *serializer) DeserializeBytes(data []byte, outputTemplates []AbiObject) ([]AbiObject, error) {
	for _, template := range outputTemplates {
		if template == nil {
			return nil, errors.New("cannot deserialize into nil template")
		}
	}

	return s.codec.DecodeSequence(outputTemplates, data)
}
