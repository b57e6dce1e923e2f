package tensor

import (
	"fmt"
	"unsafe"

	"github.com/x448/float16"
)

// Device represents the compute device for tensor operations.
type Device int

// Supported compute devices.
const (
	CPU Device = iota
)

// String returns a human-readable device name.
func (d Device) String() string {
	switch d {
	case CPU:
		return "CPU"
	default:
		return "Unknown"
	}
}

// RawTensor is the low-level tensor representation: a byte buffer with a
// shape, row-major strides and a runtime dtype.
//
// Operations never write into their inputs. Callers that obtain a typed view
// (AsFloat32, AsBool, ...) of a tensor they did not create must not modify it.
type RawTensor struct {
	data   []byte
	shape  Shape
	stride []int
	dtype  DataType
	device Device
}

// NewRaw creates a new RawTensor with the given shape and type.
// Memory is allocated and zeroed.
func NewRaw(shape Shape, dtype DataType, device Device) (*RawTensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}

	numElements := shape.NumElements()
	byteSize := numElements * dtype.Size()

	return &RawTensor{
		data:   make([]byte, byteSize),
		shape:  shape.Clone(),
		stride: shape.ComputeStrides(),
		dtype:  dtype,
		device: device,
	}, nil
}

// Shape returns the tensor's shape.
func (r *RawTensor) Shape() Shape {
	return r.shape
}

// Strides returns the tensor's memory strides.
func (r *RawTensor) Strides() []int {
	return r.stride
}

// DType returns the tensor's data type.
func (r *RawTensor) DType() DataType {
	return r.dtype
}

// Device returns the tensor's compute device.
func (r *RawTensor) Device() Device {
	return r.device
}

// NumElements returns the total number of elements.
func (r *RawTensor) NumElements() int {
	return r.shape.NumElements()
}

// ByteSize returns the total memory size in bytes.
func (r *RawTensor) ByteSize() int {
	return r.NumElements() * r.dtype.Size()
}

// Data returns the raw byte slice.
// WARNING: Direct access to underlying memory. Use with caution.
func (r *RawTensor) Data() []byte {
	return r.data
}

// Reshape returns a tensor sharing r's buffer under a new shape with the same
// number of elements.
func (r *RawTensor) Reshape(shape Shape) (*RawTensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}
	if shape.NumElements() != r.NumElements() {
		return nil, fmt.Errorf("cannot reshape %v (%d elements) to %v (%d elements)",
			r.shape, r.NumElements(), shape, shape.NumElements())
	}
	return &RawTensor{
		data:   r.data,
		shape:  shape.Clone(),
		stride: shape.ComputeStrides(),
		dtype:  r.dtype,
		device: r.device,
	}, nil
}

func (r *RawTensor) checkDType(want DataType) {
	if r.dtype != want {
		panic(fmt.Sprintf("tensor dtype is %s, not %s", r.dtype, want))
	}
}

// viewAs reinterprets the buffer as a []T of NumElements length.
func viewAs[T any](r *RawTensor) []T {
	n := r.NumElements()
	if n == 0 {
		return []T{}
	}
	//nolint:gosec // unsafe.Slice for zero-copy performance, bounds checked by NumElements()
	return unsafe.Slice((*T)(unsafe.Pointer(&r.data[0])), n)
}

// AsFloat32 interprets the data as []float32.
// Panics if the tensor's dtype is not Float32.
func (r *RawTensor) AsFloat32() []float32 {
	r.checkDType(Float32)
	return viewAs[float32](r)
}

// AsFloat64 interprets the data as []float64.
// Panics if the tensor's dtype is not Float64.
func (r *RawTensor) AsFloat64() []float64 {
	r.checkDType(Float64)
	return viewAs[float64](r)
}

// AsFloat16 interprets the data as []float16.Float16.
// Panics if the tensor's dtype is not Float16.
func (r *RawTensor) AsFloat16() []float16.Float16 {
	r.checkDType(Float16)
	return viewAs[float16.Float16](r)
}

// AsInt32 interprets the data as []int32.
// Panics if the tensor's dtype is not Int32.
func (r *RawTensor) AsInt32() []int32 {
	r.checkDType(Int32)
	return viewAs[int32](r)
}

// AsInt64 interprets the data as []int64.
// Panics if the tensor's dtype is not Int64.
func (r *RawTensor) AsInt64() []int64 {
	r.checkDType(Int64)
	return viewAs[int64](r)
}

// AsUint8 interprets the data as []uint8.
// Panics if the tensor's dtype is not Uint8.
func (r *RawTensor) AsUint8() []uint8 {
	r.checkDType(Uint8)
	return r.data
}

// AsBool interprets the data as []BoolValue.
// Panics if the tensor's dtype is not Bool.
func (r *RawTensor) AsBool() []BoolValue {
	r.checkDType(Bool)
	return viewAs[BoolValue](r)
}

// Clone creates a deep copy of the RawTensor.
func (r *RawTensor) Clone() *RawTensor {
	data := make([]byte, len(r.data))
	copy(data, r.data)
	return &RawTensor{
		data:   data,
		shape:  r.shape.Clone(),
		stride: append([]int(nil), r.stride...),
		dtype:  r.dtype,
		device: r.device,
	}
}
