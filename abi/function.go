package abi

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/multiversx/mx-chain-core-go/core/check"
)

// Function describes a contract function (or constructor) through the templates of its inputs and outputs
type Function struct {
	Name            string
	StateMutability string
	inputs          []AbiObject
	outputs         []AbiObject
	serializer      *serializer
}

func newFunction(entry abiEntry, abiSerializer *serializer) (*Function, error) {
	inputs, err := newTemplates(entry.Inputs)
	if err != nil {
		return nil, fmt.Errorf("inputs: %w", err)
	}

	outputs, err := newTemplates(entry.Outputs)
	if err != nil {
		return nil, fmt.Errorf("outputs: %w", err)
	}

	return &Function{
		Name:            entry.Name,
		StateMutability: resolveStateMutability(entry),
		inputs:          inputs,
		outputs:         outputs,
		serializer:      abiSerializer,
	}, nil
}

func resolveStateMutability(entry abiEntry) string {
	if len(entry.StateMutability) > 0 {
		return entry.StateMutability
	}
	if entry.Constant {
		return "view"
	}
	if entry.Payable {
		return "payable"
	}

	return "nonpayable"
}

// IsConstant returns true for functions that do not modify the contract state
func (f *Function) IsConstant() bool {
	return f.StateMutability == "view" || f.StateMutability == "pure"
}

// Signature returns the canonical signature, e.g. transfer(address,uint256)
func (f *Function) Signature() string {
	return signature(f.Name, f.inputs)
}

// Selector returns the first 4 bytes of the hash of the signature
func (f *Function) Selector(hasher Hasher) ([]byte, error) {
	if check.IfNil(hasher) {
		return nil, ErrNilHasher
	}

	return hasher.Compute(f.Signature())[:selectorLength:selectorLength], nil
}

// NewInputs returns fresh templates of the inputs, ready to be populated
func (f *Function) NewInputs() []AbiObject {
	return cloneTemplates(f.inputs)
}

// NewOutputs returns fresh templates of the outputs
func (f *Function) NewOutputs() []AbiObject {
	return cloneTemplates(f.outputs)
}

// EncodeArguments encodes the provided populated inputs without a selector, as done for constructors
func (f *Function) EncodeArguments(args []AbiObject) ([]byte, error) {
	err := checkParameters(f.inputs, args)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", f.Signature(), err)
	}

	return f.serializer.SerializeToBytes(args)
}

// EncodeCall returns the call data of the function: selector followed by the encoded inputs
func (f *Function) EncodeCall(hasher Hasher, args []AbiObject) ([]byte, error) {
	selector, err := f.Selector(hasher)
	if err != nil {
		return nil, err
	}

	encoded, err := f.EncodeArguments(args)
	if err != nil {
		return nil, err
	}

	return append(selector, encoded...), nil
}

// DecodeInput decodes the inputs from call data that starts with the selector of the function
func (f *Function) DecodeInput(hasher Hasher, callData []byte) ([]AbiObject, error) {
	selector, err := f.Selector(hasher)
	if err != nil {
		return nil, err
	}
	if len(callData) < selectorLength {
		return nil, fmt.Errorf("%w: call data shorter than a selector", ErrBufferUnderrun)
	}
	if !bytes.Equal(selector, callData[:selectorLength]) {
		return nil, fmt.Errorf("%w: selector %x does not belong to %s", ErrSchemaMismatch, callData[:selectorLength], f.Signature())
	}

	return f.serializer.DeserializeBytes(callData[selectorLength:], f.inputs)
}

// DecodeOutput decodes the return data of the function
func (f *Function) DecodeOutput(data []byte) ([]AbiObject, error) {
	return f.serializer.DeserializeBytes(data, f.outputs)
}

func checkParameters(templates []AbiObject, values []AbiObject) error {
	if len(templates) != len(values) {
		return fmt.Errorf("%w: expected %d arguments, got %d", ErrSchemaMismatch, len(templates), len(values))
	}

	for i := range templates {
		err := checkSameShape(templates[i], values[i])
		if err != nil {
			return fmt.Errorf("argument %d: %w", i, err)
		}
	}

	return nil
}

func cloneTemplates(templates []AbiObject) []AbiObject {
	clones := make([]AbiObject, 0, len(templates))
	for _, template := range templates {
		clones = append(clones, CloneAsTemplate(template))
	}

	return clones
}

func signature(name string, parameters []AbiObject) string {
	types := make([]string, 0, len(parameters))
	for _, parameter := range parameters {
		types = append(types, typeString(parameter))
	}

	return name + "(" + strings.Join(types, ",") + ")"
}
