// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides type-safe tensors and element-wise comparisons.
//
// # Overview
//
// This package provides:
//   - Generic type-safe tensors (Tensor[T, B])
//   - NumPy-style broadcasting
//   - Six comparison operators, each with a strict variant that refuses to broadcast
//   - A NaN-aware boolean element type (BoolValue)
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/tensorops/tensor"
//	    "github.com/born-ml/tensorops/backend/cpu"
//	)
//
//	func main() {
//	    backend := cpu.New()
//
//	    a, _ := tensor.FromSlice([]float32{1, 4, 5}, tensor.Shape{3}, backend)
//	    b, _ := tensor.FromSlice([]float32{2, 3, 5}, tensor.Shape{3}, backend)
//
//	    eq, err := tensor.Equal(a, b)  // [false false true]
//	}
//
// # Supported Data Types
//
// The tensor package supports the following data types via the DType constraint:
//   - float32, float64, float16 (floating-point)
//   - int32, int64 (signed integers)
//   - uint8 (unsigned integers)
//   - BoolValue (comparison results)
//
// # NaN Handling
//
// Whenever either operand of a comparison is NaN the result element is
// NaNBool, for every operator including NotEqual. Integer tensors have no
// IEEE NaN; NaNInt32 and NaNInt64 (the minimum values) stand in for it.
// NaN[T]() returns the NaN value of any supported element type.
//
// # Broadcasting
//
// Comparisons follow NumPy broadcasting rules:
//
//	a := tensor.Zeros[float32](tensor.Shape{3, 1}, backend)     // (3, 1)
//	b := tensor.Ones[float32](tensor.Shape{3, 4}, backend)      // (3, 4)
//	c, _ := tensor.Less(a, b)                                    // (3, 4)
//	_, err := tensor.LessStrict(a, b)                            // *ShapeMismatchError
//
// Shapes that cannot be broadcast produce an *IncompatibleShapesError. Both
// error types are wrapped with the operator name; use errors.As to inspect them.
package tensor
