package cpu

import (
	"testing"

	"github.com/born-ml/tensorops/internal/parallel"
	"github.com/born-ml/tensorops/internal/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCPUBackend_New(t *testing.T) {
	backend := New()
	require.NotNil(t, backend)
	assert.Equal(t, "CPU", backend.Name())
	assert.Equal(t, tensor.CPU, backend.Device())
}

func TestCPUBackend_Add(t *testing.T) {
	backend := New()

	t.Run("same shape", func(t *testing.T) {
		a := rawFloat32(t, []float32{1, 2, 3, 4}, tensor.Shape{2, 2})
		b := rawFloat32(t, []float32{5, 6, 7, 8}, tensor.Shape{2, 2})
		result, err := backend.Add(a, b)
		require.NoError(t, err)
		assert.Equal(t, tensor.Shape{2, 2}, result.Shape())
		assert.Equal(t, []float32{6, 8, 10, 12}, result.AsFloat32())
	})

	t.Run("broadcast row", func(t *testing.T) {
		a := rawInt32(t, []int32{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
		b := rawInt32(t, []int32{10, 20, 30}, tensor.Shape{3})
		result, err := backend.Add(a, b)
		require.NoError(t, err)
		assert.Equal(t, []int32{11, 22, 33, 14, 25, 36}, result.AsInt32())
	})

	t.Run("broadcast both operands", func(t *testing.T) {
		a := rawFloat64(t, []float64{1, 2}, tensor.Shape{2, 1})
		b := rawFloat64(t, []float64{10, 20, 30}, tensor.Shape{1, 3})
		result, err := backend.Add(a, b)
		require.NoError(t, err)
		assert.Equal(t, tensor.Shape{2, 3}, result.Shape())
		assert.Equal(t, []float64{11, 21, 31, 12, 22, 32}, result.AsFloat64())
	})

	t.Run("float16", func(t *testing.T) {
		a := rawFloat16(t, []float32{0.5, 1.5}, tensor.Shape{2})
		b := rawFloat16(t, []float32{0.25}, tensor.Shape{})
		result, err := backend.Add(a, b)
		require.NoError(t, err)
		got := result.AsFloat16()
		assert.InDelta(t, 0.75, got[0].Float32(), 1e-3)
		assert.InDelta(t, 1.75, got[1].Float32(), 1e-3)
	})
}

func TestCPUBackend_SubMul(t *testing.T) {
	backend := New()
	a := rawInt64(t, []int64{5, 7, 9}, tensor.Shape{3})
	b := rawInt64(t, []int64{2}, tensor.Shape{1})

	diff, err := backend.Sub(a, b)
	require.NoError(t, err)
	assert.Equal(t, []int64{3, 5, 7}, diff.AsInt64())

	prod, err := backend.Mul(a, b)
	require.NoError(t, err)
	assert.Equal(t, []int64{10, 14, 18}, prod.AsInt64())
}

func TestCPUBackend_BinaryErrors(t *testing.T) {
	backend := New()

	_, err := backend.Add(
		rawFloat32(t, []float32{1, 2, 3, 4}, tensor.Shape{2, 2}),
		rawFloat32(t, []float32{1, 2, 3}, tensor.Shape{3}))
	var shapeErr *tensor.IncompatibleShapesError
	require.ErrorAs(t, err, &shapeErr)
	assert.Equal(t, 1, shapeErr.Axis)

	_, err = backend.Mul(
		rawFloat32(t, []float32{1}, tensor.Shape{1}),
		rawFloat64(t, []float64{1}, tensor.Shape{1}))
	var dtypeErr *tensor.DTypeMismatchError
	require.ErrorAs(t, err, &dtypeErr)

	_, err = backend.Sub(
		rawBool(t, []tensor.BoolValue{yes}, tensor.Shape{1}),
		rawBool(t, []tensor.BoolValue{no}, tensor.Shape{1}))
	var unsupported *tensor.UnsupportedDTypeError
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, "sub", unsupported.Op)
	assert.Equal(t, tensor.Bool, unsupported.DType)
}

// TestCPUBackend_MatchesMock cross-checks the stride-based kernels against
// the coordinate-based reference backend.
func TestCPUBackend_MatchesMock(t *testing.T) {
	backend := New()
	mock := tensor.NewMockBackend()

	shapes := [][2]tensor.Shape{
		{{2, 3, 4}, {4}},
		{{2, 1, 4}, {3, 1}},
		{{1}, {2, 2, 2}},
		{{}, {3, 2}},
		{{5, 1, 1, 2}, {1, 3, 1}},
	}
	for _, pair := range shapes {
		a := rawFloat32(t, sequence(pair[0].NumElements(), 1), pair[0])
		b := rawFloat32(t, sequence(pair[1].NumElements(), 3), pair[1])

		want, err := mock.Mul(a, b)
		require.NoError(t, err)
		got, err := backend.Mul(a, b)
		require.NoError(t, err)
		assert.Equal(t, want.Shape(), got.Shape())
		assert.Equal(t, want.AsFloat32(), got.AsFloat32(), "mul %v x %v", pair[0], pair[1])

		for _, op := range tensor.CompareOps() {
			want, err := mock.Compare(op, a, b)
			require.NoError(t, err)
			got, err := backend.Compare(op, a, b)
			require.NoError(t, err)
			assert.Equal(t, want.AsBool(), got.AsBool(), "%s %v x %v", op, pair[0], pair[1])
		}
	}
}

func TestCPUBackend_ParallelMatchesSequential(t *testing.T) {
	split := NewWithParallel(parallel.Config{Enabled: true, NumWorkers: 4, MinChunkSize: 2})
	seq := NewWithParallel(parallel.Sequential())

	shapes := [][2]tensor.Shape{
		{{7, 5}, {7, 5}},
		{{3, 1, 6}, {4, 1}},
		{{}, {9, 3}},
	}
	for _, pair := range shapes {
		a := rawFloat32(t, sequence(pair[0].NumElements(), 2), pair[0])
		b := rawFloat32(t, sequence(pair[1].NumElements(), 1), pair[1])

		want, err := seq.Add(a, b)
		require.NoError(t, err)
		got, err := split.Add(a, b)
		require.NoError(t, err)
		assert.Equal(t, want.Shape(), got.Shape())
		assert.Equal(t, want.AsFloat32(), got.AsFloat32(), "add %v + %v", pair[0], pair[1])

		b.AsFloat32()[0] = nan32
		for _, op := range tensor.CompareOps() {
			want, err := seq.Compare(op, a, b)
			require.NoError(t, err)
			got, err := split.Compare(op, a, b)
			require.NoError(t, err)
			assert.Equal(t, want.AsBool(), got.AsBool(), "%s %v x %v", op, pair[0], pair[1])
		}
	}
}

// sequence returns n values counting down from start in steps of 0.5, so both
// operands overlap and every comparison outcome occurs.
func sequence(n int, start float32) []float32 {
	out := make([]float32, n)
	for i := range out {
		out[i] = start - 0.5*float32(i%8)
	}
	return out
}
