package abi

import (
	"bytes"
	"fmt"

	"github.com/multiversx/mx-chain-core-go/core/check"
)

// Event describes a contract event. Indexed parameters travel as topics, the others in the log data
type Event struct {
	Name       string
	Anonymous  bool
	inputs     []AbiObject
	indexed    []bool
	serializer *serializer
}

func newEvent(entry abiEntry, abiSerializer *serializer) (*Event, error) {
	inputs, err := newTemplates(entry.Inputs)
	if err != nil {
		return nil, fmt.Errorf("inputs: %w", err)
	}

	indexed := make([]bool, 0, len(entry.Inputs))
	for _, argument := range entry.Inputs {
		indexed = append(indexed, argument.Indexed)
	}

	return &Event{
		Name:       entry.Name,
		Anonymous:  entry.Anonymous,
		inputs:     inputs,
		indexed:    indexed,
		serializer: abiSerializer,
	}, nil
}

// Signature returns the canonical signature, e.g. Transfer(address,address,uint256)
func (e *Event) Signature() string {
	return signature(e.Name, e.inputs)
}

// Topic returns the hash of the signature, emitted as first topic by non anonymous events
func (e *Event) Topic(hasher Hasher) ([]byte, error) {
	if check.IfNil(hasher) {
		return nil, ErrNilHasher
	}

	return hasher.Compute(e.Signature()), nil
}

// DecodeLog decodes the parameters of a receipt log in declaration order. Indexed parameters of reference
// types (strings, bytes, tuples, arrays) are only available as their bytes32 hash
func (e *Event) DecodeLog(hasher Hasher, topics [][]byte, data []byte) ([]AbiObject, error) {
	topicIndex := 0
	if !e.Anonymous {
		topic, err := e.Topic(hasher)
		if err != nil {
			return nil, err
		}
		if len(topics) == 0 || !bytes.Equal(topics[0], topic) {
			return nil, fmt.Errorf("%w: first topic does not belong to %s", ErrSchemaMismatch, e.Signature())
		}
		topicIndex = 1
	}

	nonIndexedTemplates := make([]AbiObject, 0, len(e.inputs))
	for i, input := range e.inputs {
		if !e.indexed[i] {
			nonIndexedTemplates = append(nonIndexedTemplates, input)
		}
	}

	nonIndexed, err := e.serializer.DeserializeBytes(data, nonIndexedTemplates)
	if err != nil {
		return nil, err
	}

	values := make([]AbiObject, 0, len(e.inputs))
	for i, input := range e.inputs {
		if !e.indexed[i] {
			values = append(values, nonIndexed[0])
			nonIndexed = nonIndexed[1:]
			continue
		}

		if topicIndex >= len(topics) {
			return nil, fmt.Errorf("%w: missing topic for indexed parameter %d of %s", ErrBufferUnderrun, i, e.Signature())
		}

		value, errDecode := e.decodeTopic(input, topics[topicIndex])
		if errDecode != nil {
			return nil, errDecode
		}

		values = append(values, value)
		topicIndex++
	}

	return values, nil
}

// decodeTopic reads an indexed parameter from its topic. A topic is exactly one word
func (e *Event) decodeTopic(input AbiObject, topic []byte) (AbiObject, error) {
	if len(topic) != WordSize {
		return nil, fmt.Errorf("%w: topic of %d bytes for indexed parameter %q", ErrBufferUnderrun, len(topic), input.Name())
	}

	if input.ObjectType() == ValueType && !IsDynamic(input) {
		return e.serializer.codec.Decode(input, topic, 0)
	}

	hashed := NewFixedBytes(input.Name(), WordSize)

	err := hashed.SetBytes(topic)
	if err != nil {
		return nil, err
	}

	return hashed, nil
}

// NewInputs returns fresh templates of all the event parameters
func (e *Event) NewInputs() []AbiObject {
	return cloneTemplates(e.inputs)
}

// IsIndexed returns whether the parameter at the provided position is indexed
func (e *Event) IsIndexed(index int) bool {
	return e.indexed[index]
}
