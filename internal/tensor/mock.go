package tensor

import (
	"fmt"
	"math"
)

// Verify that MockBackend implements Backend.
var _ Backend = (*MockBackend)(nil)

// MockBackend is a simple backend for testing.
// It implements every operation naively over float64 values so results can
// be cross-checked against optimized backends. Supports Float32, Float64,
// Int32 and Int64.
type MockBackend struct{}

// NewMockBackend creates a new MockBackend.
func NewMockBackend() *MockBackend {
	return &MockBackend{}
}

// Name returns the backend name.
func (m *MockBackend) Name() string {
	return "mock"
}

// Device returns the device type.
func (m *MockBackend) Device() Device {
	return CPU
}

// Add performs element-wise addition with broadcasting.
func (m *MockBackend) Add(a, b *RawTensor) (*RawTensor, error) {
	return m.elementWise(a, b, func(x, y float64) float64 { return x + y })
}

// Sub performs element-wise subtraction with broadcasting.
func (m *MockBackend) Sub(a, b *RawTensor) (*RawTensor, error) {
	return m.elementWise(a, b, func(x, y float64) float64 { return x - y })
}

// Mul performs element-wise multiplication with broadcasting.
func (m *MockBackend) Mul(a, b *RawTensor) (*RawTensor, error) {
	return m.elementWise(a, b, func(x, y float64) float64 { return x * y })
}

// Abs returns |x|.
func (m *MockBackend) Abs(x *RawTensor) *RawTensor {
	return m.unary(x, math.Abs)
}

// ReLU returns max(x, 0).
func (m *MockBackend) ReLU(x *RawTensor) *RawTensor {
	return m.unary(x, func(v float64) float64 { return math.Max(v, 0) })
}

// AddScalar returns x + scalar.
func (m *MockBackend) AddScalar(x *RawTensor, scalar float64) *RawTensor {
	return m.unary(x, func(v float64) float64 { return v + scalar })
}

// MulScalar returns x * scalar.
func (m *MockBackend) MulScalar(x *RawTensor, scalar float64) *RawTensor {
	return m.unary(x, func(v float64) float64 { return v * scalar })
}

// DivScalar returns x / scalar.
func (m *MockBackend) DivScalar(x *RawTensor, scalar float64) *RawTensor {
	return m.unary(x, func(v float64) float64 { return v / scalar })
}

// Compare evaluates op element-wise with broadcasting.
func (m *MockBackend) Compare(op CompareOp, a, b *RawTensor) (*RawTensor, error) {
	if !op.Valid() {
		return nil, fmt.Errorf("compare: unknown operator %d", int(op))
	}
	if a.DType() != b.DType() {
		return nil, &DTypeMismatchError{A: a.DType(), B: b.DType()}
	}
	outShape, _, err := BroadcastShapes(a.Shape(), b.Shape())
	if err != nil {
		return nil, err
	}

	result, err := NewRaw(outShape, Bool, m.Device())
	if err != nil {
		return nil, err
	}

	aData, aNaN := m.toFloat64Slice(a)
	bData, bNaN := m.toFloat64Slice(b)
	out := result.AsBool()
	for i := range out {
		aIdx := m.broadcastIndex(i, outShape, a.Shape())
		bIdx := m.broadcastIndex(i, outShape, b.Shape())
		if aNaN[aIdx] || bNaN[bIdx] {
			out[i] = NaNBool
			continue
		}
		x, y := aData[aIdx], bData[bIdx]
		var r bool
		switch op {
		case OpEqual:
			r = x == y
		case OpNotEqual:
			r = x != y
		case OpLess:
			r = x < y
		case OpLessEqual:
			r = x <= y
		case OpGreater:
			r = x > y
		case OpGreaterEqual:
			r = x >= y
		}
		out[i] = BoolOf(r)
	}
	return result, nil
}

// Equal returns a == b.
func (m *MockBackend) Equal(a, b *RawTensor) (*RawTensor, error) { return m.Compare(OpEqual, a, b) }

// NotEqual returns a != b.
func (m *MockBackend) NotEqual(a, b *RawTensor) (*RawTensor, error) {
	return m.Compare(OpNotEqual, a, b)
}

// Less returns a < b.
func (m *MockBackend) Less(a, b *RawTensor) (*RawTensor, error) { return m.Compare(OpLess, a, b) }

// LessEqual returns a <= b.
func (m *MockBackend) LessEqual(a, b *RawTensor) (*RawTensor, error) {
	return m.Compare(OpLessEqual, a, b)
}

// Greater returns a > b.
func (m *MockBackend) Greater(a, b *RawTensor) (*RawTensor, error) {
	return m.Compare(OpGreater, a, b)
}

// GreaterEqual returns a >= b.
func (m *MockBackend) GreaterEqual(a, b *RawTensor) (*RawTensor, error) {
	return m.Compare(OpGreaterEqual, a, b)
}

// Sum returns the total as a 0-D tensor.
func (m *MockBackend) Sum(x *RawTensor) *RawTensor {
	data, _ := m.toFloat64Slice(x)
	total := 0.0
	for _, v := range data {
		total += v
	}
	result, err := NewRaw(Shape{}, x.DType(), m.Device())
	if err != nil {
		panic(err)
	}
	m.fromFloat64Slice([]float64{total}, result)
	return result
}

// CountNonZero counts elements different from zero. NaN counts as non-zero.
func (m *MockBackend) CountNonZero(x *RawTensor) int {
	data, nan := m.toFloat64Slice(x)
	n := 0
	for i, v := range data {
		if nan[i] || v != 0 {
			n++
		}
	}
	return n
}

// Expand broadcasts x to shape.
func (m *MockBackend) Expand(x *RawTensor, shape Shape) (*RawTensor, error) {
	outShape, _, err := BroadcastShapes(x.Shape(), shape)
	if err != nil {
		return nil, err
	}
	if !outShape.Equal(shape) {
		return nil, &IncompatibleShapesError{A: x.Shape().Clone(), B: shape.Clone()}
	}
	result, err := NewRaw(shape, x.DType(), m.Device())
	if err != nil {
		return nil, err
	}
	data, _ := m.toFloat64Slice(x)
	out := make([]float64, shape.NumElements())
	for i := range out {
		out[i] = data[m.broadcastIndex(i, shape, x.Shape())]
	}
	m.fromFloat64Slice(out, result)
	return result, nil
}

// elementWise performs element-wise operations with broadcasting.
func (m *MockBackend) elementWise(a, b *RawTensor, op func(float64, float64) float64) (*RawTensor, error) {
	if a.DType() != b.DType() {
		return nil, &DTypeMismatchError{A: a.DType(), B: b.DType()}
	}
	outShape, _, err := BroadcastShapes(a.Shape(), b.Shape())
	if err != nil {
		return nil, err
	}

	result, err := NewRaw(outShape, a.DType(), m.Device())
	if err != nil {
		return nil, err
	}

	aData, _ := m.toFloat64Slice(a)
	bData, _ := m.toFloat64Slice(b)
	resultData := make([]float64, outShape.NumElements())

	for i := range resultData {
		aIdx := m.broadcastIndex(i, outShape, a.Shape())
		bIdx := m.broadcastIndex(i, outShape, b.Shape())

		resultData[i] = op(aData[aIdx], bData[bIdx])
	}

	m.fromFloat64Slice(resultData, result)
	return result, nil
}

func (m *MockBackend) unary(x *RawTensor, op func(float64) float64) *RawTensor {
	result, err := NewRaw(x.Shape(), x.DType(), m.Device())
	if err != nil {
		panic(err)
	}
	data, _ := m.toFloat64Slice(x)
	out := make([]float64, len(data))
	for i, v := range data {
		out[i] = op(v)
	}
	m.fromFloat64Slice(out, result)
	return result
}

// Helper functions

// toFloat64Slice widens t to float64 and reports which elements are NaN,
// including the integer sentinels.
func (m *MockBackend) toFloat64Slice(t *RawTensor) ([]float64, []bool) {
	var dst []float64
	var nan []bool
	switch t.DType() {
	case Float32:
		src := t.AsFloat32()
		dst, nan = make([]float64, len(src)), make([]bool, len(src))
		for i, v := range src {
			dst[i], nan[i] = float64(v), math.IsNaN(float64(v))
		}
	case Float64:
		src := t.AsFloat64()
		dst, nan = make([]float64, len(src)), make([]bool, len(src))
		for i, v := range src {
			dst[i], nan[i] = v, math.IsNaN(v)
		}
	case Int32:
		src := t.AsInt32()
		dst, nan = make([]float64, len(src)), make([]bool, len(src))
		for i, v := range src {
			dst[i], nan[i] = float64(v), v == NaNInt32
		}
	case Int64:
		src := t.AsInt64()
		dst, nan = make([]float64, len(src)), make([]bool, len(src))
		for i, v := range src {
			dst[i], nan[i] = float64(v), v == NaNInt64
		}
	default:
		panic(fmt.Sprintf("unsupported dtype: %s", t.DType()))
	}
	return dst, nan
}

func (m *MockBackend) fromFloat64Slice(src []float64, t *RawTensor) {
	switch t.DType() {
	case Float32:
		dst := t.AsFloat32()
		for i, v := range src {
			dst[i] = float32(v)
		}
	case Float64:
		copy(t.AsFloat64(), src)
	case Int32:
		dst := t.AsInt32()
		for i, v := range src {
			dst[i] = int32(v)
		}
	case Int64:
		dst := t.AsInt64()
		for i, v := range src {
			dst[i] = int64(v)
		}
	}
}

// broadcastIndex maps an output flat index to the input flat index using
// coordinates rather than precomputed strides.
func (m *MockBackend) broadcastIndex(flatIdx int, outShape, inShape Shape) int {
	outStrides := outShape.ComputeStrides()
	indices := make([]int, len(outShape))

	temp := flatIdx
	for i := 0; i < len(outShape); i++ {
		indices[i] = temp / outStrides[i]
		temp %= outStrides[i]
	}

	inStrides := inShape.ComputeStrides()
	inIdx := 0

	offset := len(outShape) - len(inShape)
	for i := 0; i < len(inShape); i++ {
		outDimIdx := indices[offset+i]
		if inShape[i] == 1 {
			outDimIdx = 0
		}
		inIdx += outDimIdx * inStrides[i]
	}

	return inIdx
}
