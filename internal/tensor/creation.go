package tensor

import (
	"github.com/x448/float16"
)

// Zeros creates a tensor filled with zeros.
//
// Example:
//
//	backend := cpu.New()
//	t := tensor.Zeros[float32](Shape{3, 4}, backend)
func Zeros[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	var dummy T
	dtype := inferDataType(dummy)

	raw, err := NewRaw(shape, dtype, b.Device())
	if err != nil {
		panic(err) // Shape validation should prevent this
	}

	// Data is already zero-initialized by make()
	return New[T, B](raw, b)
}

// Ones creates a tensor filled with ones. Bool tensors are filled with True.
//
// Example:
//
//	t := tensor.Ones[float64](Shape{2, 3}, backend)
func Ones[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	return Full[T, B](shape, one[T](), b)
}

// Full creates a tensor filled with a specific value.
//
// Example:
//
//	t := tensor.Full[float32](Shape{3, 3}, 3.14, backend)
func Full[T DType, B Backend](shape Shape, value T, b B) *Tensor[T, B] {
	t := Zeros[T, B](shape, b)
	data := t.Data()
	for i := range data {
		data[i] = value
	}
	return t
}

// Scalar creates a 0-D tensor holding value.
//
// Example:
//
//	two := tensor.Scalar[int32](2, backend)
//	mask, _ := tensor.Equal(two, values) // broadcast against any shape
func Scalar[T DType, B Backend](value T, b B) *Tensor[T, B] {
	return Full[T, B](Shape{}, value, b)
}

// one returns the multiplicative identity of T.
func one[T DType]() T {
	var dummy T
	var v any
	switch any(dummy).(type) {
	case float32:
		v = float32(1)
	case float64:
		v = float64(1)
	case int32:
		v = int32(1)
	case int64:
		v = int64(1)
	case BoolValue:
		v = True
	case float16.Float16:
		v = float16.Fromfloat32(1)
	case uint8:
		v = uint8(1)
	default:
		panic("unsupported type")
	}
	return v.(T)
}
