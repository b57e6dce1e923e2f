// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the public API for tensors and element-wise
// comparisons.
//
// The package defines core interfaces and types for type-safe tensor operations:
//   - Tensor[T, B]: High-level generic tensor with type safety
//   - RawTensor: Low-level tensor interface for advanced use cases
//   - Backend: Interface for device-specific compute implementations
//   - Shape, DataType, Device: Core type definitions
package tensor

import (
	"github.com/born-ml/tensorops/internal/tensor"
)

// Type aliases for public API

// DType is a constraint for tensor data types.
// Supported types: float32, float64, float16.Float16, int32, int64, uint8, BoolValue.
type DType = tensor.DType

// Float is the constraint for float32 and float64 element types.
type Float = tensor.Float

// DataType represents the underlying data type of a tensor.
type DataType = tensor.DataType

// Data type constants.
const (
	Float32 DataType = tensor.Float32
	Float64 DataType = tensor.Float64
	Float16 DataType = tensor.Float16
	Int32   DataType = tensor.Int32
	Int64   DataType = tensor.Int64
	Uint8   DataType = tensor.Uint8
	Bool    DataType = tensor.Bool
)

// Device represents the device where tensor data resides.
type Device = tensor.Device

// CPU is the host device.
const CPU Device = tensor.CPU

// Shape represents the dimensions of a tensor.
// Example: Shape{2, 3, 4} represents a 3D tensor with dimensions 2×3×4.
type Shape = tensor.Shape

// BoolValue is the element type of comparison results: True, False or NaNBool.
type BoolValue = tensor.BoolValue

// Bool element values.
const (
	False   BoolValue = tensor.False
	True    BoolValue = tensor.True
	NaNBool BoolValue = tensor.NaNBool
)

// Integer NaN sentinels.
const (
	NaNInt32 = tensor.NaNInt32
	NaNInt64 = tensor.NaNInt64
)

// Tensor is a generic type-safe tensor.
//
// T is the element type, B the backend implementation.
//
// Example:
//
//	backend := cpu.New()
//	x := tensor.Zeros[float32](tensor.Shape{2, 3}, backend)
//	y := tensor.Ones[float32](tensor.Shape{2, 3}, backend)
//	mask, err := x.LessEqual(y)
type Tensor[T DType, B Backend] = tensor.Tensor[T, B]

// BroadcastPlan maps output indices of a broadcast back to both inputs.
type BroadcastPlan = tensor.BroadcastPlan

// Error types.
type (
	// IncompatibleShapesError reports shapes that cannot be broadcast.
	IncompatibleShapesError = tensor.IncompatibleShapesError
	// ShapeMismatchError reports unequal shapes passed to a strict comparator.
	ShapeMismatchError = tensor.ShapeMismatchError
	// DTypeMismatchError reports operands of different data types.
	DTypeMismatchError = tensor.DTypeMismatchError
	// UnsupportedDTypeError reports an operation undefined for a data type.
	UnsupportedDTypeError = tensor.UnsupportedDTypeError
)

// Creation functions

// Zeros creates a tensor filled with zeros.
//
// Example:
//
//	backend := cpu.New()
//	x := tensor.Zeros[float32](tensor.Shape{2, 3}, backend)
func Zeros[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	return tensor.Zeros[T, B](shape, b)
}

// Ones creates a tensor filled with ones.
//
// Example:
//
//	backend := cpu.New()
//	x := tensor.Ones[float32](tensor.Shape{2, 3}, backend)
func Ones[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	return tensor.Ones[T, B](shape, b)
}

// Full creates a tensor filled with a specific value.
//
// Example:
//
//	backend := cpu.New()
//	x := tensor.Full[float32](tensor.Shape{2, 3}, 3.14, backend)
func Full[T DType, B Backend](shape Shape, value T, b B) *Tensor[T, B] {
	return tensor.Full[T, B](shape, value, b)
}

// Scalar creates a 0-D tensor.
//
// Example:
//
//	backend := cpu.New()
//	two := tensor.Scalar[int32](2, backend)
func Scalar[T DType, B Backend](value T, b B) *Tensor[T, B] {
	return tensor.Scalar[T, B](value, b)
}

// FromSlice creates a tensor from a Go slice.
//
// Example:
//
//	backend := cpu.New()
//	data := []float32{1, 2, 3, 4, 5, 6}
//	x, err := tensor.FromSlice(data, tensor.Shape{2, 3}, backend)
func FromSlice[T DType, B Backend](data []T, shape Shape, b B) (*Tensor[T, B], error) {
	return tensor.FromSlice[T, B](data, shape, b)
}

// New creates a tensor from a raw tensor.
//
// This is a low-level function. Most users should use creation functions like
// Zeros, Ones, or FromSlice instead.
func New[T DType, B Backend](raw *RawTensor, b B) *Tensor[T, B] {
	return tensor.New[T, B](raw, b)
}

// NaN returns the NaN value of element type T.
//
// Example:
//
//	x, _ := tensor.FromSlice([]int32{1, tensor.NaN[int32](), 0}, tensor.Shape{3}, backend)
func NaN[T DType]() T {
	return tensor.NaN[T]()
}

// Utility functions

// BroadcastShapes computes the broadcast shape for two shapes following NumPy broadcasting rules.
// Returns the resulting shape and a flag indicating whether any operand needs broadcasting.
//
// Example:
//
//	resultShape, needsBroadcast, err := tensor.BroadcastShapes(
//	    tensor.Shape{3, 1},
//	    tensor.Shape{3, 4},
//	)
//	// resultShape = [3, 4], needsBroadcast = true
func BroadcastShapes(a, b Shape) (Shape, bool, error) {
	return tensor.BroadcastShapes(a, b)
}

// CanBroadcast reports whether two shapes are broadcast compatible.
func CanBroadcast(a, b Shape) bool {
	return tensor.CanBroadcast(a, b)
}

// GuardShapes returns a *ShapeMismatchError unless the shapes are identical.
func GuardShapes(a, b Shape) error {
	return tensor.GuardShapes(a, b)
}

// NewBroadcastPlan resolves the broadcast of two shapes.
func NewBroadcastPlan(a, b Shape) (*BroadcastPlan, error) {
	return tensor.NewBroadcastPlan(a, b)
}
