package tensor

import (
	"github.com/pkg/errors"
)

// Add performs element-wise addition with broadcasting.
//
// Example:
//
//	a := tensor.Ones[float32](Shape{3, 1}, backend)
//	b := tensor.Ones[float32](Shape{3, 5}, backend)
//	c, err := a.Add(b) // Shape: [3, 5] (broadcasted)
func (t *Tensor[T, B]) Add(other *Tensor[T, B]) (*Tensor[T, B], error) {
	result, err := t.backend.Add(t.raw, other.raw)
	if err != nil {
		return nil, errors.Wrap(err, "add")
	}
	return New[T, B](result, t.backend), nil
}

// Sub performs element-wise subtraction with broadcasting.
func (t *Tensor[T, B]) Sub(other *Tensor[T, B]) (*Tensor[T, B], error) {
	result, err := t.backend.Sub(t.raw, other.raw)
	if err != nil {
		return nil, errors.Wrap(err, "sub")
	}
	return New[T, B](result, t.backend), nil
}

// Mul performs element-wise multiplication with broadcasting.
func (t *Tensor[T, B]) Mul(other *Tensor[T, B]) (*Tensor[T, B], error) {
	result, err := t.backend.Mul(t.raw, other.raw)
	if err != nil {
		return nil, errors.Wrap(err, "mul")
	}
	return New[T, B](result, t.backend), nil
}

// Abs returns |t| element-wise.
func (t *Tensor[T, B]) Abs() *Tensor[T, B] {
	return New[T, B](t.backend.Abs(t.raw), t.backend)
}

// ReLU returns max(t, 0) element-wise.
func (t *Tensor[T, B]) ReLU() *Tensor[T, B] {
	return New[T, B](t.backend.ReLU(t.raw), t.backend)
}

// AddScalar adds a scalar to every element.
func (t *Tensor[T, B]) AddScalar(scalar float64) *Tensor[T, B] {
	return New[T, B](t.backend.AddScalar(t.raw, scalar), t.backend)
}

// MulScalar multiplies every element by a scalar.
func (t *Tensor[T, B]) MulScalar(scalar float64) *Tensor[T, B] {
	return New[T, B](t.backend.MulScalar(t.raw, scalar), t.backend)
}

// DivScalar divides every element by a scalar.
func (t *Tensor[T, B]) DivScalar(scalar float64) *Tensor[T, B] {
	return New[T, B](t.backend.DivScalar(t.raw, scalar), t.backend)
}

// Sum returns the sum of all elements as a 0-D tensor.
func (t *Tensor[T, B]) Sum() *Tensor[T, B] {
	return New[T, B](t.backend.Sum(t.raw), t.backend)
}

// CountNonZero returns the number of elements that are not zero.
func (t *Tensor[T, B]) CountNonZero() int {
	return t.backend.CountNonZero(t.raw)
}

// Expand broadcasts t to shape.
//
// Example:
//
//	w := tensor.Ones[float32](Shape{3}, backend)
//	e, err := w.Expand(Shape{2, 3}) // rows repeated
func (t *Tensor[T, B]) Expand(shape Shape) (*Tensor[T, B], error) {
	result, err := t.backend.Expand(t.raw, shape)
	if err != nil {
		return nil, errors.Wrap(err, "expand")
	}
	return New[T, B](result, t.backend), nil
}

// Reshape returns a tensor with the same data but a different shape.
// The new shape must have the same number of elements.
func (t *Tensor[T, B]) Reshape(newShape ...int) (*Tensor[T, B], error) {
	result, err := t.raw.Reshape(Shape(newShape))
	if err != nil {
		return nil, errors.Wrap(err, "reshape")
	}
	return New[T, B](result, t.backend), nil
}
