package cpu

import (
	"fmt"

	"github.com/born-ml/tensorops/internal/tensor"
	"github.com/x448/float16"
)

// Abs computes |x| element-wise. NaN stays NaN.
func (cpu *CPUBackend) Abs(x *tensor.RawTensor) *tensor.RawTensor {
	return cpu.unary("abs", x, func(v float64) float64 {
		if v < 0 {
			return -v
		}
		return v
	})
}

// ReLU computes max(x, 0) element-wise. NaN stays NaN.
func (cpu *CPUBackend) ReLU(x *tensor.RawTensor) *tensor.RawTensor {
	return cpu.unary("relu", x, func(v float64) float64 {
		if v < 0 {
			return 0
		}
		return v
	})
}

// unary applies fn to every element of a numeric tensor. Elements are widened
// to float64, so integer results are truncated back toward zero.
func (cpu *CPUBackend) unary(name string, x *tensor.RawTensor, fn func(float64) float64) *tensor.RawTensor {
	result, err := tensor.NewRaw(x.Shape(), x.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("%s: failed to create result tensor: %v", name, err))
	}

	switch x.DType() {
	case tensor.Float32:
		unaryKernel(result.AsFloat32(), x.AsFloat32(), fn)
	case tensor.Float64:
		unaryKernel(result.AsFloat64(), x.AsFloat64(), fn)
	case tensor.Int32:
		unaryKernel(result.AsInt32(), x.AsInt32(), fn)
	case tensor.Int64:
		unaryKernel(result.AsInt64(), x.AsInt64(), fn)
	case tensor.Float16:
		dst, src := result.AsFloat16(), x.AsFloat16()
		for i, v := range src {
			dst[i] = float16.Fromfloat32(float32(fn(float64(v.Float32()))))
		}
	default:
		panic(fmt.Sprintf("%s: unsupported dtype %s", name, x.DType()))
	}

	return result
}

func unaryKernel[T number](dst, src []T, fn func(float64) float64) {
	for i, v := range src {
		dst[i] = T(fn(float64(v)))
	}
}
