package testscommon

// HasherStub -
type HasherStub struct {
	ComputeCalled func(s string) []byte
	SizeCalled    func() int
}

// Compute -
func (stub *HasherStub) Compute(s string) []byte {
	if stub.ComputeCalled != nil {
		return stub.ComputeCalled(s)
	}

	return make([]byte, stub.Size())
}

// Size -
func (stub *HasherStub) Size() int {
	if stub.SizeCalled != nil {
		return stub.SizeCalled()
	}

	return 32
}

// IsInterfaceNil -
func (stub *HasherStub) IsInterfaceNil() bool {
	return stub == nil
}
