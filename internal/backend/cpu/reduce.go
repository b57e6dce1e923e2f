package cpu

import (
	"fmt"

	"github.com/born-ml/tensorops/internal/tensor"
	"github.com/x448/float16"
)

// Sum computes the sum of all elements and returns a 0-D tensor of the same
// dtype. Float sums accumulate in float64; integer sums in int64.
//
// Example:
//
//	x, _ := tensor.FromSlice([]float32{1, 2, 3}, tensor.Shape{3}, backend)
//	s := backend.Sum(x.Raw()) // shape [], value 6
func (cpu *CPUBackend) Sum(x *tensor.RawTensor) *tensor.RawTensor {
	result, err := tensor.NewRaw(tensor.Shape{}, x.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("sum: %v", err))
	}

	switch x.DType() {
	case tensor.Float32:
		result.AsFloat32()[0] = float32(sumFloat(x.AsFloat32()))
	case tensor.Float64:
		result.AsFloat64()[0] = sumFloat(x.AsFloat64())
	case tensor.Int32:
		result.AsInt32()[0] = int32(sumInt(x.AsInt32())) //nolint:gosec // G115: overflow wraps like the element type
	case tensor.Int64:
		result.AsInt64()[0] = sumInt(x.AsInt64())
	case tensor.Float16:
		var acc float64
		for _, v := range x.AsFloat16() {
			acc += float64(v.Float32())
		}
		result.AsFloat16()[0] = float16.Fromfloat32(float32(acc))
	default:
		panic(fmt.Sprintf("sum: unsupported dtype %s", x.DType()))
	}

	return result
}

// CountNonZero returns the number of elements that are not zero.
// NaN counts as non-zero, as does NaNBool.
func (cpu *CPUBackend) CountNonZero(x *tensor.RawTensor) int {
	switch x.DType() {
	case tensor.Float32:
		return countNonZero(x.AsFloat32())
	case tensor.Float64:
		return countNonZero(x.AsFloat64())
	case tensor.Int32:
		return countNonZero(x.AsInt32())
	case tensor.Int64:
		return countNonZero(x.AsInt64())
	case tensor.Uint8:
		return countNonZero(x.AsUint8())
	case tensor.Bool:
		return countNonZero(x.AsBool())
	case tensor.Float16:
		n := 0
		for _, v := range x.AsFloat16() {
			if v.Float32() != 0 {
				n++
			}
		}
		return n
	default:
		panic(fmt.Sprintf("countNonZero: unsupported dtype %s", x.DType()))
	}
}

func sumFloat[T float32 | float64](data []T) float64 {
	var acc float64
	for _, v := range data {
		acc += float64(v)
	}
	return acc
}

func sumInt[T int32 | int64](data []T) int64 {
	var acc int64
	for _, v := range data {
		acc += int64(v)
	}
	return acc
}

func countNonZero[T number](data []T) int {
	n := 0
	for _, v := range data {
		if v != 0 {
			n++
		}
	}
	return n
}
