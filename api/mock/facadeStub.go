package mock

import (
	"github.com/multiversx/mx-chain-contract-sdk-go/api/shared"
)

// FacadeStub -
type FacadeStub struct {
	GetFunctionsCalled           func(contract string) ([]shared.FunctionDescription, error)
	EncodeCallCalled             func(contract string, function string, args []byte) ([]byte, error)
	DecodeOutputCalled           func(contract string, function string, data []byte) ([]interface{}, error)
	DecodeInputCalled            func(contract string, data []byte) (string, []interface{}, error)
	DecodeEventCalled            func(contract string, event string, topics [][]byte, data []byte) ([]interface{}, error)
	RestApiInterfaceCalled       func() string
	RestAPIServerDebugModeCalled func() bool
}

// GetFunctions -
func (f *FacadeStub) GetFunctions(contract string) ([]shared.FunctionDescription, error) {
	if f.GetFunctionsCalled != nil {
		return f.GetFunctionsCalled(contract)
	}

	return nil, nil
}

// EncodeCall -
func (f *FacadeStub) EncodeCall(contract string, function string, args []byte) ([]byte, error) {
	if f.EncodeCallCalled != nil {
		return f.EncodeCallCalled(contract, function, args)
	}

	return nil, nil
}

// DecodeOutput -
func (f *FacadeStub) DecodeOutput(contract string, function string, data []byte) ([]interface{}, error) {
	if f.DecodeOutputCalled != nil {
		return f.DecodeOutputCalled(contract, function, data)
	}

	return nil, nil
}

// DecodeInput -
func (f *FacadeStub) DecodeInput(contract string, data []byte) (string, []interface{}, error) {
	if f.DecodeInputCalled != nil {
		return f.DecodeInputCalled(contract, data)
	}

	return "", nil, nil
}

// DecodeEvent -
func (f *FacadeStub) DecodeEvent(contract string, event string, topics [][]byte, data []byte) ([]interface{}, error) {
	if f.DecodeEventCalled != nil {
		return f.DecodeEventCalled(contract, event, topics, data)
	}

	return nil, nil
}

// RestApiInterface -
func (f *FacadeStub) RestApiInterface() string {
	if f.RestApiInterfaceCalled != nil {
		return f.RestApiInterfaceCalled()
	}

	return "localhost:8080"
}

// RestAPIServerDebugMode -
func (f *FacadeStub) RestAPIServerDebugMode() bool {
	if f.RestAPIServerDebugModeCalled != nil {
		return f.RestAPIServerDebugModeCalled()
	}

	return false
}

// IsInterfaceNil -
func (f *FacadeStub) IsInterfaceNil() bool {
	return f == nil
}
