package cpu

import (
	"github.com/born-ml/tensorops/internal/tensor"
)

// Scalar operations - element-wise operations with a scalar value.

// MulScalar multiplies each element of the tensor by a scalar value.
func (cpu *CPUBackend) MulScalar(x *tensor.RawTensor, scalar float64) *tensor.RawTensor {
	return cpu.unary("mulScalar", x, func(v float64) float64 { return v * scalar })
}

// AddScalar adds a scalar value to each element of the tensor.
func (cpu *CPUBackend) AddScalar(x *tensor.RawTensor, scalar float64) *tensor.RawTensor {
	return cpu.unary("addScalar", x, func(v float64) float64 { return v + scalar })
}

// DivScalar divides each element of the tensor by a scalar value.
// Division by zero follows IEEE rules for float tensors.
func (cpu *CPUBackend) DivScalar(x *tensor.RawTensor, scalar float64) *tensor.RawTensor {
	return cpu.unary("divScalar", x, func(v float64) float64 { return v / scalar })
}
