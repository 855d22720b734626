package tensor

import (
	"fmt"
	"sync"
	"sync/atomic"
	"unsafe"
)

// Device represents the memory placement of a tensor.
type Device int

// Supported placements.
const (
	CPU Device = iota
	CUDA
	Vulkan
	Metal
	WebGPU
)

// String returns a human-readable device name.
func (d Device) String() string {
	switch d {
	case CPU:
		return "CPU"
	case CUDA:
		return "CUDA"
	case Vulkan:
		return "Vulkan"
	case Metal:
		return "Metal"
	case WebGPU:
		return "WebGPU"
	default:
		return "Unknown"
	}
}

// tensorBuffer is a reference-counted shared buffer.
// Outer-dimension views returned by OuterSlice share the buffer instead of
// copying it, so the buffer stays alive until every view is released.
type tensorBuffer struct {
	data     []byte
	refCount atomic.Int32
	mu       sync.Mutex // For safe deallocation
}

// newTensorBuffer creates a new reference-counted buffer with refCount = 1.
func newTensorBuffer(size int) *tensorBuffer {
	buf := &tensorBuffer{
		data: make([]byte, size),
	}
	buf.refCount.Store(1)
	return buf
}

// addRef increments the reference count (for views and clones).
func (tb *tensorBuffer) addRef() {
	tb.refCount.Add(1)
}

// release decrements the reference count and deallocates if it reaches 0.
func (tb *tensorBuffer) release() {
	if tb.refCount.Add(-1) == 0 {
		tb.mu.Lock()
		defer tb.mu.Unlock()
		tb.data = nil
	}
}

// RawTensor is the low-level tensor representation.
// It uses reference-counted shared buffers so that views are zero-copy.
type RawTensor struct {
	buffer *tensorBuffer // Shared reference-counted buffer
	shape  Shape         // Tensor dimensions
	stride []int         // Memory strides in elements (row-major)
	dtype  DataType      // Runtime type information
	device Device        // Memory placement
	offset int           // Byte offset into the buffer for views
}

// NewRaw creates a new RawTensor with the given shape and type.
// Memory is allocated but not initialized (contains zeros).
func NewRaw(shape Shape, dtype DataType, device Device) (*RawTensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}

	numElements := shape.NumElements()
	byteSize := numElements * dtype.Size()

	return &RawTensor{
		buffer: newTensorBuffer(byteSize),
		shape:  shape.Clone(),
		stride: shape.ComputeStrides(),
		dtype:  dtype,
		device: device,
		offset: 0,
	}, nil
}

// FromSlice builds a 1-D host tensor from a flat slice of values.
// The slice is copied into the tensor's memory.
func FromSlice[T DType](values []T) (*RawTensor, error) {
	var dummy T
	dtype := inferDataType(dummy)

	raw, err := NewRaw(Shape{len(values)}, dtype, CPU)
	if err != nil {
		return nil, err
	}

	switch vs := any(values).(type) {
	case []float32:
		copy(raw.AsFloat32(), vs)
	case []float64:
		copy(raw.AsFloat64(), vs)
	case []int32:
		copy(raw.AsInt32(), vs)
	case []int64:
		copy(raw.AsInt64(), vs)
	case []uint8:
		copy(raw.AsUint8(), vs)
	case []bool:
		copy(raw.AsBool(), vs)
	default:
		panic("unsupported type")
	}

	return raw, nil
}

// Shape returns the tensor's shape.
func (r *RawTensor) Shape() Shape {
	return r.shape
}

// Strides returns the tensor's memory strides.
func (r *RawTensor) Strides() []int {
	return r.stride
}

// DType returns the tensor's data type.
func (r *RawTensor) DType() DataType {
	return r.dtype
}

// Device returns the tensor's placement.
func (r *RawTensor) Device() Device {
	return r.device
}

// NumElements returns the total number of elements.
func (r *RawTensor) NumElements() int {
	return r.shape.NumElements()
}

// ByteSize returns the total memory size in bytes.
func (r *RawTensor) ByteSize() int {
	return r.NumElements() * r.dtype.Size()
}

// Data returns the raw byte slice.
// WARNING: Direct access to underlying memory. Use with caution.
func (r *RawTensor) Data() []byte {
	return r.buffer.data[r.offset:]
}

// AsFloat32 interprets the data as []float32.
// Panics if the tensor's dtype is not Float32.
func (r *RawTensor) AsFloat32() []float32 {
	if r.dtype != Float32 {
		panic(fmt.Sprintf("tensor dtype is %s, not float32", r.dtype))
	}
	n := r.NumElements()
	if n == 0 {
		return nil
	}
	data := r.buffer.data[r.offset:]
	//nolint:gosec // unsafe.Slice for zero-copy performance, bounds checked by NumElements()
	return unsafe.Slice((*float32)(unsafe.Pointer(&data[0])), n)
}

// AsFloat64 interprets the data as []float64.
// Panics if the tensor's dtype is not Float64.
func (r *RawTensor) AsFloat64() []float64 {
	if r.dtype != Float64 {
		panic(fmt.Sprintf("tensor dtype is %s, not float64", r.dtype))
	}
	n := r.NumElements()
	if n == 0 {
		return nil
	}
	data := r.buffer.data[r.offset:]
	//nolint:gosec // unsafe.Slice for zero-copy performance, bounds checked by NumElements()
	return unsafe.Slice((*float64)(unsafe.Pointer(&data[0])), n)
}

// AsUint16 interprets the data as raw 16-bit patterns.
// Panics unless the tensor's dtype is one of the narrow float kinds
// (Float16, BFloat16), which are stored as bit patterns.
func (r *RawTensor) AsUint16() []uint16 {
	if r.dtype != Float16 && r.dtype != BFloat16 {
		panic(fmt.Sprintf("tensor dtype is %s, not a narrow float kind", r.dtype))
	}
	n := r.NumElements()
	if n == 0 {
		return nil
	}
	data := r.buffer.data[r.offset:]
	//nolint:gosec // unsafe.Slice for zero-copy performance, bounds checked by NumElements()
	return unsafe.Slice((*uint16)(unsafe.Pointer(&data[0])), n)
}

// AsInt32 interprets the data as []int32.
// Panics if the tensor's dtype is not Int32.
func (r *RawTensor) AsInt32() []int32 {
	if r.dtype != Int32 {
		panic(fmt.Sprintf("tensor dtype is %s, not int32", r.dtype))
	}
	n := r.NumElements()
	if n == 0 {
		return nil
	}
	data := r.buffer.data[r.offset:]
	//nolint:gosec // unsafe.Slice for zero-copy performance, bounds checked by NumElements()
	return unsafe.Slice((*int32)(unsafe.Pointer(&data[0])), n)
}

// AsInt64 interprets the data as []int64.
// Panics if the tensor's dtype is not Int64.
func (r *RawTensor) AsInt64() []int64 {
	if r.dtype != Int64 {
		panic(fmt.Sprintf("tensor dtype is %s, not int64", r.dtype))
	}
	n := r.NumElements()
	if n == 0 {
		return nil
	}
	data := r.buffer.data[r.offset:]
	//nolint:gosec // unsafe.Slice for zero-copy performance, bounds checked by NumElements()
	return unsafe.Slice((*int64)(unsafe.Pointer(&data[0])), n)
}

// AsUint8 interprets the data as []uint8.
// Panics if the tensor's dtype is not Uint8.
func (r *RawTensor) AsUint8() []uint8 {
	if r.dtype != Uint8 {
		panic(fmt.Sprintf("tensor dtype is %s, not uint8", r.dtype))
	}
	return r.buffer.data[r.offset : r.offset+r.NumElements()] // Already []byte = []uint8
}

// AsBool interprets the data as []bool.
// Panics if the tensor's dtype is not Bool.
func (r *RawTensor) AsBool() []bool {
	if r.dtype != Bool {
		panic(fmt.Sprintf("tensor dtype is %s, not bool", r.dtype))
	}
	n := r.NumElements()
	if n == 0 {
		return nil
	}
	data := r.buffer.data[r.offset:]
	//nolint:gosec // unsafe.Slice for zero-copy performance, bounds checked by NumElements()
	return unsafe.Slice((*bool)(unsafe.Pointer(&data[0])), n)
}

// OuterSlice returns a zero-copy view of the i-th sub-tensor along the
// outermost dimension. The view shares the buffer with the parent; its
// shape drops the leading dimension.
//
// Example:
//
//	raw, _ := NewRaw(Shape{2, 3}, Float32, CPU)
//	row := raw.OuterSlice(1) // Shape: [3], shares raw's memory
func (r *RawTensor) OuterSlice(i int) *RawTensor {
	if len(r.shape) == 0 {
		panic("cannot take an outer slice of a 0-dim tensor")
	}
	if i < 0 || i >= r.shape[0] {
		panic(fmt.Sprintf("outer index %d out of bounds for dimension of size %d", i, r.shape[0]))
	}

	r.buffer.addRef()
	return &RawTensor{
		buffer: r.buffer,
		shape:  r.shape[1:].Clone(),
		stride: append([]int(nil), r.stride[1:]...),
		dtype:  r.dtype,
		device: r.device,
		offset: r.offset + i*r.stride[0]*r.dtype.Size(),
	}
}

// SetScalar writes a single value into a 0-dim tensor, converting it to the
// tensor's dtype. Panics if the tensor is not 0-dim.
func (r *RawTensor) SetScalar(v any) {
	if len(r.shape) != 0 {
		panic(fmt.Sprintf("SetScalar requires a 0-dim tensor, got shape %v", r.shape))
	}
	r.setValueAt(0, v)
}

// ScalarValue reads the single value of a 0-dim tensor.
// Narrow float kinds are widened to float32. Panics if the tensor is not 0-dim.
func (r *RawTensor) ScalarValue() any {
	if len(r.shape) != 0 {
		panic(fmt.Sprintf("ScalarValue requires a 0-dim tensor, got shape %v", r.shape))
	}
	return r.ValueAt(0)
}

// ValueAt reads the i-th element in row-major order as a Go value.
// Kinds with NeedsWidening() are widened to float32.
func (r *RawTensor) ValueAt(i int) any {
	if r.dtype.NeedsWidening() {
		return widenBits(r.dtype, r.AsUint16()[i])
	}
	switch r.dtype {
	case Float32:
		return r.AsFloat32()[i]
	case Float64:
		return r.AsFloat64()[i]
	case Int32:
		return r.AsInt32()[i]
	case Int64:
		return r.AsInt64()[i]
	case Uint8:
		return r.AsUint8()[i]
	case Bool:
		return r.AsBool()[i]
	default:
		panic(fmt.Sprintf("unknown data type %d", r.dtype))
	}
}

// setValueAt writes a Go value into the i-th element in row-major order,
// converting it to the tensor's dtype.
func (r *RawTensor) setValueAt(i int, v any) {
	if r.dtype.NeedsWidening() {
		r.AsUint16()[i] = narrowBits(r.dtype, float32(scalarAsFloat64(v)))
		return
	}
	switch r.dtype {
	case Float32:
		r.AsFloat32()[i] = float32(scalarAsFloat64(v))
	case Float64:
		r.AsFloat64()[i] = scalarAsFloat64(v)
	case Int32:
		r.AsInt32()[i] = int32(scalarAsInt64(v))
	case Int64:
		r.AsInt64()[i] = scalarAsInt64(v)
	case Uint8:
		r.AsUint8()[i] = uint8(scalarAsInt64(v))
	case Bool:
		r.AsBool()[i] = scalarAsBool(v)
	default:
		panic(fmt.Sprintf("unknown data type %d", r.dtype))
	}
}

// Clone creates a shallow copy of the RawTensor (shares buffer with
// reference counting).
func (r *RawTensor) Clone() *RawTensor {
	r.buffer.addRef()
	return &RawTensor{
		buffer: r.buffer,
		shape:  r.shape.Clone(),
		stride: append([]int(nil), r.stride...),
		dtype:  r.dtype,
		device: r.device,
		offset: r.offset,
	}
}

// Release decrements the reference count and deallocates if it reaches 0.
func (r *RawTensor) Release() {
	r.buffer.release()
}

// IsUnique returns true if this tensor is the only reference to the buffer.
func (r *RawTensor) IsUnique() bool {
	return r.buffer.refCount.Load() == 1
}

// String returns a human-readable representation of the tensor.
func (r *RawTensor) String() string {
	return fmt.Sprintf("RawTensor[%s]%v on %s", r.dtype, r.shape, r.device)
}
