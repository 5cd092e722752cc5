package testscommon

// StatusHandlerStub -
type StatusHandlerStub struct {
	IncrementCalled      func(key string)
	SetUInt64ValueCalled func(key string, value uint64)
	CloseCalled          func()
}

// Increment -
func (stub *StatusHandlerStub) Increment(key string) {
	if stub.IncrementCalled != nil {
		stub.IncrementCalled(key)
	}
}

// SetUInt64Value -
func (stub *StatusHandlerStub) SetUInt64Value(key string, value uint64) {
	if stub.SetUInt64ValueCalled != nil {
		stub.SetUInt64ValueCalled(key, value)
	}
}

// Close -
func (stub *StatusHandlerStub) Close() {
	if stub.CloseCalled != nil {
		stub.CloseCalled()
	}
}

// IsInterfaceNil -
func (stub *StatusHandlerStub) IsInterfaceNil() bool {
	return stub == nil
}
