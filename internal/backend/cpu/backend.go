// Package cpu implements the host-memory backend.
package cpu

import (
	"fmt"

	"github.com/ember-ml/ember/internal/tensor"
)

// CPUBackend implements bulk tensor operations in host memory.
type CPUBackend struct {
	device tensor.Device
}

// New creates a new CPU backend.
func New() *CPUBackend {
	return &CPUBackend{
		device: tensor.CPU,
	}
}

// Name returns the backend name.
func (cpu *CPUBackend) Name() string {
	return "CPU"
}

// Device returns the compute device.
func (cpu *CPUBackend) Device() tensor.Device {
	return cpu.device
}

// Transfer copies x to the given placement in one bulk operation.
// A tensor already at the placement is returned unchanged.
func (cpu *CPUBackend) Transfer(x *tensor.RawTensor, device tensor.Device) *tensor.RawTensor {
	if x.Device() == device {
		return x
	}

	out, err := tensor.NewRaw(x.Shape(), x.DType(), device)
	if err != nil {
		panic(fmt.Sprintf("transfer: %v", err))
	}
	tensor.CopyConvert(out, x)
	return out
}

// Cast converts x to a different data type in one bulk operation.
// A no-op if the dtype already matches.
func (cpu *CPUBackend) Cast(x *tensor.RawTensor, dtype tensor.DataType) *tensor.RawTensor {
	if x.DType() == dtype {
		return x
	}

	out, err := tensor.NewRaw(x.Shape(), dtype, x.Device())
	if err != nil {
		panic(fmt.Sprintf("cast: %v", err))
	}
	tensor.CopyConvert(out, x)
	return out
}
