package cpu

import (
	"math"

	"github.com/born-ml/tensorops/internal/parallel"
	"github.com/born-ml/tensorops/internal/tensor"
	"github.com/pkg/errors"
	"github.com/x448/float16"
)

// Comparison operations - return Bool tensors.
//
// A comparison involving a NaN operand yields tensor.NaNBool for every
// operator, including NotEqual. Integer NaN is the dtype sentinel
// (tensor.NaNInt32, tensor.NaNInt64) and Bool NaN is tensor.NaNBool.

// Equal returns a == b element-wise.
func (cpu *CPUBackend) Equal(a, b *tensor.RawTensor) (*tensor.RawTensor, error) {
	return cpu.Compare(tensor.OpEqual, a, b)
}

// NotEqual returns a != b element-wise.
func (cpu *CPUBackend) NotEqual(a, b *tensor.RawTensor) (*tensor.RawTensor, error) {
	return cpu.Compare(tensor.OpNotEqual, a, b)
}

// Less returns a < b element-wise.
func (cpu *CPUBackend) Less(a, b *tensor.RawTensor) (*tensor.RawTensor, error) {
	return cpu.Compare(tensor.OpLess, a, b)
}

// LessEqual returns a <= b element-wise.
func (cpu *CPUBackend) LessEqual(a, b *tensor.RawTensor) (*tensor.RawTensor, error) {
	return cpu.Compare(tensor.OpLessEqual, a, b)
}

// Greater returns a > b element-wise.
func (cpu *CPUBackend) Greater(a, b *tensor.RawTensor) (*tensor.RawTensor, error) {
	return cpu.Compare(tensor.OpGreater, a, b)
}

// GreaterEqual returns a >= b element-wise.
func (cpu *CPUBackend) GreaterEqual(a, b *tensor.RawTensor) (*tensor.RawTensor, error) {
	return cpu.Compare(tensor.OpGreaterEqual, a, b)
}

// Compare applies op element-wise over the broadcast of a and b.
// Shape and dtype errors are returned before the result is allocated.
func (cpu *CPUBackend) Compare(op tensor.CompareOp, a, b *tensor.RawTensor) (*tensor.RawTensor, error) {
	if !op.Valid() {
		return nil, errors.Errorf("compare: unknown operator %d", int(op))
	}
	plan, err := planBinary(a, b)
	if err != nil {
		return nil, err
	}

	result, err := tensor.NewRaw(plan.Shape, tensor.Bool, cpu.device)
	if err != nil {
		return nil, err
	}

	dst := result.AsBool()
	switch a.DType() {
	case tensor.Float32:
		compareKernel(cpu.parallel, dst, a.AsFloat32(), b.AsFloat32(), plan, isNaNFloat32, predicate[float32](op))
	case tensor.Float64:
		compareKernel(cpu.parallel, dst, a.AsFloat64(), b.AsFloat64(), plan, math.IsNaN, predicate[float64](op))
	case tensor.Float16:
		compareKernel(cpu.parallel, dst, float16ToFloat32(a.AsFloat16()), float16ToFloat32(b.AsFloat16()),
			plan, isNaNFloat32, predicate[float32](op))
	case tensor.Int32:
		compareKernel(cpu.parallel, dst, a.AsInt32(), b.AsInt32(), plan, isNaNInt32, predicate[int32](op))
	case tensor.Int64:
		compareKernel(cpu.parallel, dst, a.AsInt64(), b.AsInt64(), plan, isNaNInt64, predicate[int64](op))
	case tensor.Uint8:
		compareKernel(cpu.parallel, dst, a.AsUint8(), b.AsUint8(), plan, neverNaN[uint8], predicate[uint8](op))
	case tensor.Bool:
		compareKernel(cpu.parallel, dst, a.AsBool(), b.AsBool(), plan, tensor.BoolValue.IsNaN, predicate[tensor.BoolValue](op))
	default:
		return nil, &tensor.UnsupportedDTypeError{Op: op.String(), DType: a.DType()}
	}

	return result, nil
}

func compareKernel[T number](cfg parallel.Config, dst []tensor.BoolValue, a, b []T, plan *tensor.BroadcastPlan,
	isNaN func(T) bool, pred func(x, y T) bool) {
	parallel.Range(len(dst), cfg, func(start, end int) {
		for i := start; i < end; i++ {
			ai, bi := plan.Index(i)
			x, y := a[ai], b[bi]
			if isNaN(x) || isNaN(y) {
				dst[i] = tensor.NaNBool
				continue
			}
			dst[i] = tensor.BoolOf(pred(x, y))
		}
	})
}

func predicate[T number](op tensor.CompareOp) func(x, y T) bool {
	switch op {
	case tensor.OpEqual:
		return func(x, y T) bool { return x == y }
	case tensor.OpNotEqual:
		return func(x, y T) bool { return x != y }
	case tensor.OpLess:
		return func(x, y T) bool { return x < y }
	case tensor.OpLessEqual:
		return func(x, y T) bool { return x <= y }
	case tensor.OpGreater:
		return func(x, y T) bool { return x > y }
	case tensor.OpGreaterEqual:
		return func(x, y T) bool { return x >= y }
	default:
		panic("compare: unknown operator " + op.String())
	}
}

func isNaNFloat32(v float32) bool {
	return math.IsNaN(float64(v))
}

func isNaNInt32(v int32) bool {
	return v == tensor.NaNInt32
}

func isNaNInt64(v int64) bool {
	return v == tensor.NaNInt64
}

func neverNaN[T number](T) bool {
	return false
}

// float16ToFloat32 widens a float16 slice. NaN stays NaN.
func float16ToFloat32(src []float16.Float16) []float32 {
	dst := make([]float32, len(src))
	for i, v := range src {
		dst[i] = v.Float32()
	}
	return dst
}
