// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import "github.com/born-ml/tensorops/internal/tensor"

// CompareOp selects an element-wise comparison predicate.
type CompareOp = tensor.CompareOp

// Comparison operators.
const (
	OpEqual        CompareOp = tensor.OpEqual
	OpNotEqual     CompareOp = tensor.OpNotEqual
	OpLess         CompareOp = tensor.OpLess
	OpLessEqual    CompareOp = tensor.OpLessEqual
	OpGreater      CompareOp = tensor.OpGreater
	OpGreaterEqual CompareOp = tensor.OpGreaterEqual
)

// ParseCompareOp maps an operator name such as "lessEqual" to a CompareOp.
func ParseCompareOp(name string) (CompareOp, bool) {
	return tensor.ParseCompareOp(name)
}

// CompareOps lists all comparison operators.
func CompareOps() []CompareOp {
	return tensor.CompareOps()
}

// Compare applies op element-wise over the broadcast of a and b.
//
// Example:
//
//	mask, err := tensor.Compare(tensor.OpLess, a, b)
//	var incompatible *tensor.IncompatibleShapesError
//	if errors.As(err, &incompatible) {
//	    // shapes cannot be broadcast
//	}
func Compare[T DType, B Backend](op CompareOp, a, b *Tensor[T, B]) (*Tensor[BoolValue, B], error) {
	return tensor.Compare(op, a, b)
}

// CompareStrict applies op element-wise to identically shaped a and b.
// Any shape difference, even a broadcastable one, yields a *ShapeMismatchError.
func CompareStrict[T DType, B Backend](op CompareOp, a, b *Tensor[T, B]) (*Tensor[BoolValue, B], error) {
	return tensor.CompareStrict(op, a, b)
}

// Equal returns a == b element-wise with broadcasting.
func Equal[T DType, B Backend](a, b *Tensor[T, B]) (*Tensor[BoolValue, B], error) {
	return tensor.Compare(OpEqual, a, b)
}

// NotEqual returns a != b element-wise with broadcasting.
func NotEqual[T DType, B Backend](a, b *Tensor[T, B]) (*Tensor[BoolValue, B], error) {
	return tensor.Compare(OpNotEqual, a, b)
}

// Less returns a < b element-wise with broadcasting.
func Less[T DType, B Backend](a, b *Tensor[T, B]) (*Tensor[BoolValue, B], error) {
	return tensor.Compare(OpLess, a, b)
}

// LessEqual returns a <= b element-wise with broadcasting.
func LessEqual[T DType, B Backend](a, b *Tensor[T, B]) (*Tensor[BoolValue, B], error) {
	return tensor.Compare(OpLessEqual, a, b)
}

// Greater returns a > b element-wise with broadcasting.
func Greater[T DType, B Backend](a, b *Tensor[T, B]) (*Tensor[BoolValue, B], error) {
	return tensor.Compare(OpGreater, a, b)
}

// GreaterEqual returns a >= b element-wise with broadcasting.
func GreaterEqual[T DType, B Backend](a, b *Tensor[T, B]) (*Tensor[BoolValue, B], error) {
	return tensor.Compare(OpGreaterEqual, a, b)
}

// EqualStrict is Equal without broadcasting.
func EqualStrict[T DType, B Backend](a, b *Tensor[T, B]) (*Tensor[BoolValue, B], error) {
	return tensor.CompareStrict(OpEqual, a, b)
}

// NotEqualStrict is NotEqual without broadcasting.
func NotEqualStrict[T DType, B Backend](a, b *Tensor[T, B]) (*Tensor[BoolValue, B], error) {
	return tensor.CompareStrict(OpNotEqual, a, b)
}

// LessStrict is Less without broadcasting.
func LessStrict[T DType, B Backend](a, b *Tensor[T, B]) (*Tensor[BoolValue, B], error) {
	return tensor.CompareStrict(OpLess, a, b)
}

// LessEqualStrict is LessEqual without broadcasting.
func LessEqualStrict[T DType, B Backend](a, b *Tensor[T, B]) (*Tensor[BoolValue, B], error) {
	return tensor.CompareStrict(OpLessEqual, a, b)
}

// GreaterStrict is Greater without broadcasting.
func GreaterStrict[T DType, B Backend](a, b *Tensor[T, B]) (*Tensor[BoolValue, B], error) {
	return tensor.CompareStrict(OpGreater, a, b)
}

// GreaterEqualStrict is GreaterEqual without broadcasting.
func GreaterEqualStrict[T DType, B Backend](a, b *Tensor[T, B]) (*Tensor[BoolValue, B], error) {
	return tensor.CompareStrict(OpGreaterEqual, a, b)
}
