// Package cpu implements the pure Go CPU backend.
package cpu

import (
	"github.com/born-ml/tensorops/internal/parallel"
	"github.com/born-ml/tensorops/internal/tensor"
	"github.com/x448/float16"
)

// CPUBackend implements tensor operations on CPU.
// It holds no mutable state and is safe for concurrent use.
type CPUBackend struct {
	device   tensor.Device
	parallel parallel.Config
}

// New creates a new CPU backend. Large element-wise kernels are split across
// goroutines according to parallel.DefaultConfig.
func New() *CPUBackend {
	return NewWithParallel(parallel.DefaultConfig())
}

// NewWithParallel creates a CPU backend that splits element-wise kernels
// according to cfg.
func NewWithParallel(cfg parallel.Config) *CPUBackend {
	return &CPUBackend{
		device:   tensor.CPU,
		parallel: cfg,
	}
}

// Name returns the backend name.
func (cpu *CPUBackend) Name() string {
	return "CPU"
}

// Device returns the compute device.
func (cpu *CPUBackend) Device() tensor.Device {
	return cpu.device
}

// number is the set of element types the kernels are generic over.
// tensor.BoolValue is covered by ~uint8.
type number interface {
	~float32 | ~float64 | ~int32 | ~int64 | ~uint8
}

type arithOp int

const (
	opAdd arithOp = iota
	opSub
	opMul
)

func (op arithOp) String() string {
	switch op {
	case opAdd:
		return "add"
	case opSub:
		return "sub"
	default:
		return "mul"
	}
}

func arith[T number](op arithOp) func(x, y T) T {
	switch op {
	case opAdd:
		return func(x, y T) T { return x + y }
	case opSub:
		return func(x, y T) T { return x - y }
	default:
		return func(x, y T) T { return x * y }
	}
}

// Add performs element-wise addition with NumPy-style broadcasting.
func (cpu *CPUBackend) Add(a, b *tensor.RawTensor) (*tensor.RawTensor, error) {
	return cpu.binary(opAdd, a, b)
}

// Sub performs element-wise subtraction with broadcasting.
func (cpu *CPUBackend) Sub(a, b *tensor.RawTensor) (*tensor.RawTensor, error) {
	return cpu.binary(opSub, a, b)
}

// Mul performs element-wise multiplication with broadcasting.
func (cpu *CPUBackend) Mul(a, b *tensor.RawTensor) (*tensor.RawTensor, error) {
	return cpu.binary(opMul, a, b)
}

func (cpu *CPUBackend) binary(op arithOp, a, b *tensor.RawTensor) (*tensor.RawTensor, error) {
	plan, err := planBinary(a, b)
	if err != nil {
		return nil, err
	}

	result, err := tensor.NewRaw(plan.Shape, a.DType(), cpu.device)
	if err != nil {
		return nil, err
	}

	switch a.DType() {
	case tensor.Float32:
		binaryKernel(cpu.parallel, result.AsFloat32(), a.AsFloat32(), b.AsFloat32(), plan, arith[float32](op))
	case tensor.Float64:
		binaryKernel(cpu.parallel, result.AsFloat64(), a.AsFloat64(), b.AsFloat64(), plan, arith[float64](op))
	case tensor.Int32:
		binaryKernel(cpu.parallel, result.AsInt32(), a.AsInt32(), b.AsInt32(), plan, arith[int32](op))
	case tensor.Int64:
		binaryKernel(cpu.parallel, result.AsInt64(), a.AsInt64(), b.AsInt64(), plan, arith[int64](op))
	case tensor.Uint8:
		binaryKernel(cpu.parallel, result.AsUint8(), a.AsUint8(), b.AsUint8(), plan, arith[uint8](op))
	case tensor.Float16:
		binaryKernelFloat16(cpu.parallel, result.AsFloat16(), a.AsFloat16(), b.AsFloat16(), plan, arith[float32](op))
	default:
		return nil, &tensor.UnsupportedDTypeError{Op: op.String(), DType: a.DType()}
	}

	return result, nil
}

// planBinary validates operand dtypes and resolves the broadcast plan.
func planBinary(a, b *tensor.RawTensor) (*tensor.BroadcastPlan, error) {
	if a.DType() != b.DType() {
		return nil, &tensor.DTypeMismatchError{A: a.DType(), B: b.DType()}
	}
	return tensor.NewBroadcastPlan(a.Shape(), b.Shape())
}

func binaryKernel[T number](cfg parallel.Config, dst, a, b []T, plan *tensor.BroadcastPlan, fn func(x, y T) T) {
	parallel.Range(len(dst), cfg, func(start, end int) {
		if plan.IsIdentity() {
			for i := start; i < end; i++ {
				dst[i] = fn(a[i], b[i])
			}
			return
		}
		for i := start; i < end; i++ {
			ai, bi := plan.Index(i)
			dst[i] = fn(a[ai], b[bi])
		}
	})
}

func binaryKernelFloat16(cfg parallel.Config, dst, a, b []float16.Float16, plan *tensor.BroadcastPlan,
	fn func(x, y float32) float32) {
	parallel.Range(len(dst), cfg, func(start, end int) {
		for i := start; i < end; i++ {
			ai, bi := plan.Index(i)
			dst[i] = float16.Fromfloat32(fn(a[ai].Float32(), b[bi].Float32()))
		}
	})
}
