package tensor

import "fmt"

// Verify that MockBackend implements Backend.
var _ Backend = (*MockBackend)(nil)

// MockBackend is a simple backend for testing. It pretends to be an
// accelerator device and counts bulk operations, so tests can verify that
// materializing a nested literal issues exactly one transfer instead of
// one per element.
type MockBackend struct {
	device    Device
	transfers int
	casts     int
}

// NewMockBackend creates a new MockBackend posing as a CUDA device.
func NewMockBackend() *MockBackend {
	return &MockBackend{device: CUDA}
}

// Name returns the backend name.
func (m *MockBackend) Name() string {
	return "mock"
}

// Device returns the device type.
func (m *MockBackend) Device() Device {
	return m.device
}

// Transfer copies x to the given placement and counts the operation.
func (m *MockBackend) Transfer(x *RawTensor, device Device) *RawTensor {
	m.transfers++
	if x.Device() == device {
		return x
	}

	out, err := NewRaw(x.Shape(), x.DType(), device)
	if err != nil {
		panic(fmt.Sprintf("transfer: %v", err))
	}
	CopyConvert(out, x)
	return out
}

// Cast converts x to a different data type and counts the operation.
func (m *MockBackend) Cast(x *RawTensor, dtype DataType) *RawTensor {
	m.casts++
	if x.DType() == dtype {
		return x
	}

	out, err := NewRaw(x.Shape(), dtype, x.Device())
	if err != nil {
		panic(fmt.Sprintf("cast: %v", err))
	}
	CopyConvert(out, x)
	return out
}

// Transfers returns the number of Transfer calls since the last reset.
func (m *MockBackend) Transfers() int {
	return m.transfers
}

// Casts returns the number of Cast calls since the last reset.
func (m *MockBackend) Casts() int {
	return m.casts
}

// ResetCounters zeroes the operation counters.
func (m *MockBackend) ResetCounters() {
	m.transfers = 0
	m.casts = 0
}
