// Copyright 2026 Ember ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/ember-ml/ember/internal/tensor"
)

// Type aliases for public API

// DType is a constraint for tensor data types.
// Supported types: float32, float64, int32, int64, uint8, bool.
type DType = tensor.DType

// DataType represents the underlying data type of a tensor or literal.
type DataType = tensor.DataType

// Data type constants.
const (
	Float32   DataType = tensor.Float32
	Float64   DataType = tensor.Float64
	Float16   DataType = tensor.Float16
	BFloat16  DataType = tensor.BFloat16
	Int32     DataType = tensor.Int32
	Int64     DataType = tensor.Int64
	Uint8     DataType = tensor.Uint8
	Bool      DataType = tensor.Bool
	Undefined DataType = tensor.Undefined
)

// Device represents the placement where tensor data resides.
type Device = tensor.Device

// Device constants.
const (
	CPU    Device = tensor.CPU
	CUDA   Device = tensor.CUDA
	Vulkan Device = tensor.Vulkan
	Metal  Device = tensor.Metal
	WebGPU Device = tensor.WebGPU
)

// Shape represents the dimensions of a tensor.
// Example: Shape{2, 3, 4} represents a 3D tensor with dimensions 2×3×4.
type Shape = tensor.Shape

// RawTensor is the low-level strided tensor representation.
type RawTensor = tensor.RawTensor

// Literal represents a nested literal expression before it becomes a
// tensor: a scalar, a nested list, or a flat run of values.
type Literal = tensor.Literal

// LiteralKind tags the variant of a Literal.
type LiteralKind = tensor.LiteralKind

// Literal variants.
const (
	LiteralScalar LiteralKind = tensor.LiteralScalar
	LiteralList   LiteralKind = tensor.LiteralList
	LiteralTensor LiteralKind = tensor.LiteralTensor
)

// Literal construction failures.
var (
	ErrShapeMismatch = tensor.ErrShapeMismatch
	ErrKindMismatch  = tensor.ErrKindMismatch
)

// Literal constructors

// ScalarOf wraps a single value as a rank-0 literal.
//
// Example:
//
//	lit := tensor.ScalarOf[float32](3.14) // shape [], kind float32
func ScalarOf[T DType](v T) Literal {
	return tensor.ScalarOf(v)
}

// Float16Scalar wraps a value as a rank-0 literal of kind Float16.
func Float16Scalar(v float32) Literal {
	return tensor.Float16Scalar(v)
}

// BFloat16Scalar wraps a value as a rank-0 literal of kind BFloat16.
func BFloat16Scalar(v float32) Literal {
	return tensor.BFloat16Scalar(v)
}

// Flat wraps a flat run of values as a 1-D tensor literal.
//
// Example:
//
//	lit := tensor.Flat([]int32{1, 2, 3}) // shape [3], kind int32
func Flat[T DType](values []T) Literal {
	return tensor.Flat(values)
}

// FlatFloat16 wraps a flat run of values as a 1-D Float16 tensor literal.
func FlatFloat16(values []float32) Literal {
	return tensor.FlatFloat16(values)
}

// FlatBFloat16 wraps a flat run of values as a 1-D BFloat16 tensor literal.
func FlatBFloat16(values []float32) Literal {
	return tensor.FlatBFloat16(values)
}

// ListOf builds a list literal from child literals, validating that every
// child agrees with the first on shape and element kind. Children must
// bottom out in scalars: a list whose leaves are tensor literals cannot be
// materialized.
//
// Example:
//
//	lit, err := tensor.ListOf(
//	    tensor.MustList(tensor.ScalarOf[float32](1), tensor.ScalarOf[float32](2)),
//	    tensor.MustList(tensor.ScalarOf[float32](3), tensor.ScalarOf[float32](4)),
//	) // shape [2, 2], kind float32
func ListOf(children ...Literal) (Literal, error) {
	return tensor.ListOf(children...)
}

// MustList is like ListOf but panics on mismatch.
func MustList(children ...Literal) Literal {
	return tensor.MustList(children...)
}

// Empty returns the empty literal (shape [0], undefined kind).
func Empty() Literal {
	return tensor.Empty()
}

// Low-level constructors

// NewRaw creates a new raw tensor with the given shape, dtype, and device.
//
// This is a low-level function. Most users should build tensors from
// literals instead.
func NewRaw(shape Shape, dtype DataType, device Device) (*RawTensor, error) {
	return tensor.NewRaw(shape, dtype, device)
}

// FromSlice creates a 1-D host tensor from a Go slice.
//
// Example:
//
//	raw, err := tensor.FromSlice([]float32{1, 2, 3, 4, 5, 6})
func FromSlice[T DType](values []T) (*RawTensor, error) {
	return tensor.FromSlice(values)
}
