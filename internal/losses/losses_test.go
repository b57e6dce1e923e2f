package losses

import (
	"math"
	"testing"

	"github.com/born-ml/tensorops/internal/backend/cpu"
	"github.com/born-ml/tensorops/internal/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const epsilon = 1e-5

type f32Tensor = tensor.Tensor[float32, *cpu.CPUBackend]

func fromSlice(t *testing.T, data []float32, shape ...int) *f32Tensor {
	t.Helper()
	x, err := tensor.FromSlice(data, tensor.Shape(shape), cpu.New())
	require.NoError(t, err)
	return x
}

func requireScalar(t *testing.T, want float64, got *f32Tensor) {
	t.Helper()
	require.Equal(t, tensor.Shape{}, got.Shape())
	assert.InDelta(t, want, float64(got.Item()), epsilon)
}

func requireValues(t *testing.T, want []float64, shape tensor.Shape, got *f32Tensor) {
	t.Helper()
	require.Equal(t, shape, got.Shape())
	data := got.Data()
	require.Len(t, data, len(want))
	for i := range want {
		assert.InDelta(t, want[i], float64(data[i]), epsilon, "element %d", i)
	}
}

func TestComputeWeightedLoss_1D(t *testing.T) {
	losses := fromSlice(t, []float32{1, 2, 3}, 3)

	tests := []struct {
		name      string
		weights   []float32
		reduction Reduction
		want      float64
	}{
		{"no weights", nil, SumByNonzeroWeights, (1 + 2 + 3) / 3.0},
		{"no weights mean", nil, Mean, (1 + 2 + 3) / 3.0},
		{"no weights sum", nil, Sum, 1 + 2 + 3},
		{"weights", []float32{0.1, 0, 0.3}, SumByNonzeroWeights, (1*0.1 + 2*0 + 3*0.3) / 2},
		{"weights mean", []float32{0.1, 0.2, 0.3}, Mean, (1*0.1 + 2*0.2 + 3*0.3) / 3},
		{"weights sum", []float32{0.1, 0.2, 0.3}, Sum, 1*0.1 + 2*0.2 + 3*0.3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var weights *f32Tensor
			if tt.weights != nil {
				weights = fromSlice(t, tt.weights, 3)
			}
			y, err := ComputeWeightedLoss(losses, weights, tt.reduction)
			require.NoError(t, err)
			requireScalar(t, tt.want, y)
		})
	}
}

func TestComputeWeightedLoss_None(t *testing.T) {
	losses := fromSlice(t, []float32{1, 2, 3}, 3)

	y, err := ComputeWeightedLoss(losses, nil, None)
	require.NoError(t, err)
	requireValues(t, []float64{1, 2, 3}, tensor.Shape{3}, y)

	// The unweighted result is a copy.
	y.Data()[0] = 42
	assert.Equal(t, float32(1), losses.Data()[0])

	y, err = ComputeWeightedLoss(losses, fromSlice(t, []float32{0.1, 0.2, 0.3}, 3), None)
	require.NoError(t, err)
	requireValues(t, []float64{0.1, 0.4, 0.9}, tensor.Shape{3}, y)
}

func TestComputeWeightedLoss_2D(t *testing.T) {
	losses := fromSlice(t, []float32{4, 8, 12, 8, 1, 3}, 2, 3)
	weights := fromSlice(t, []float32{1, 0, 2, -5, 0, 6}, 2, 3)
	weightedSum := 4*1 + 8*0 + 12*2 + (8 * -5) + 1*0 + 3*6.0

	tests := []struct {
		name      string
		weights   *f32Tensor
		reduction Reduction
		want      float64
	}{
		{"no weights", nil, SumByNonzeroWeights, (4 + 8 + 12 + 8 + 1 + 3) / 6.0},
		{"weights", weights, SumByNonzeroWeights, weightedSum / 4},
		{"no weights mean", nil, Mean, (4 + 8 + 12 + 8 + 1 + 3) / 6.0},
		{"weights mean", weights, Mean, weightedSum / 6},
		{"no weights sum", nil, Sum, 4 + 8 + 12 + 8 + 1 + 3},
		{"weights sum", weights, Sum, weightedSum},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			y, err := ComputeWeightedLoss(losses, tt.weights, tt.reduction)
			require.NoError(t, err)
			requireScalar(t, tt.want, y)
		})
	}

	t.Run("none", func(t *testing.T) {
		y, err := ComputeWeightedLoss(losses, nil, None)
		require.NoError(t, err)
		requireValues(t, []float64{4, 8, 12, 8, 1, 3}, tensor.Shape{2, 3}, y)

		y, err = ComputeWeightedLoss(losses, weights, None)
		require.NoError(t, err)
		requireValues(t, []float64{4, 0, 24, -40, 0, 18}, tensor.Shape{2, 3}, y)
	})
}

func TestComputeWeightedLoss_BroadcastWeights(t *testing.T) {
	losses := fromSlice(t, []float32{1, 2, 3, 4, 5, 6}, 2, 3)

	t.Run("row weights count after broadcasting", func(t *testing.T) {
		// Weights [1, 0, 1] broadcast to [2, 3] have four non-zero entries.
		y, err := ComputeWeightedLoss(losses, fromSlice(t, []float32{1, 0, 1}, 3), SumByNonzeroWeights)
		require.NoError(t, err)
		requireScalar(t, (1+3+4+6)/4.0, y)
	})

	t.Run("scalar weight", func(t *testing.T) {
		y, err := ComputeWeightedLoss(losses, fromSlice(t, []float32{2}), Mean)
		require.NoError(t, err)
		requireScalar(t, 2*21/6.0, y)
	})

	t.Run("weights widen the result", func(t *testing.T) {
		y, err := ComputeWeightedLoss(fromSlice(t, []float32{1, 2}, 2, 1), fromSlice(t, []float32{1, 10, 100}, 3), None)
		require.NoError(t, err)
		requireValues(t, []float64{1, 10, 100, 2, 20, 200}, tensor.Shape{2, 3}, y)
	})

	t.Run("incompatible", func(t *testing.T) {
		_, err := ComputeWeightedLoss(losses, fromSlice(t, []float32{1, 2}, 2), Sum)
		var shapeErr *tensor.IncompatibleShapesError
		require.ErrorAs(t, err, &shapeErr)
		assert.Contains(t, err.Error(), "computeWeightedLoss")
	})
}

func TestComputeWeightedLoss_AllZeroWeights(t *testing.T) {
	losses := fromSlice(t, []float32{1, 2, 3}, 3)
	y, err := ComputeWeightedLoss(losses, fromSlice(t, []float32{0, 0, 0}, 3), SumByNonzeroWeights)
	require.NoError(t, err)
	requireScalar(t, 0, y)
}

func TestComputeWeightedLoss_Empty(t *testing.T) {
	losses := fromSlice(t, []float32{}, 0)

	y, err := ComputeWeightedLoss(losses, nil, Sum)
	require.NoError(t, err)
	requireScalar(t, 0, y)

	y, err = ComputeWeightedLoss(losses, nil, SumByNonzeroWeights)
	require.NoError(t, err)
	requireScalar(t, 0, y)

	y, err = ComputeWeightedLoss(losses, nil, Mean)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(float64(y.Item())), "0/0 mean is NaN")
}

func TestComputeWeightedLoss_InvalidReduction(t *testing.T) {
	_, err := ComputeWeightedLoss(fromSlice(t, []float32{1}, 1), nil, Reduction(7))
	require.Error(t, err)
}

func TestComputeWeightedLoss_Float64(t *testing.T) {
	backend := cpu.New()
	losses, err := tensor.FromSlice([]float64{1, 2, 3}, tensor.Shape{3}, backend)
	require.NoError(t, err)
	weights, err := tensor.FromSlice([]float64{0.1, 0, 0.3}, tensor.Shape{3}, backend)
	require.NoError(t, err)

	y, err := ComputeWeightedLoss(losses, weights, SumByNonzeroWeights)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, y.Item(), 1e-12)
}

func TestAbsoluteDifference_1D(t *testing.T) {
	predictions := fromSlice(t, []float32{1, 2, 3}, 3)
	labels := fromSlice(t, []float32{0.3, -0.6, -0.1}, 3)
	weights := fromSlice(t, []float32{0.1, 0.2, 0.3}, 3)
	abs := []float64{math.Abs(1 - 0.3), math.Abs(2 - (-0.6)), math.Abs(3 - (-0.1))}

	y, err := AbsoluteDifference(labels, predictions, nil, SumByNonzeroWeights)
	require.NoError(t, err)
	requireScalar(t, (abs[0]+abs[1]+abs[2])/3, y)

	y, err = AbsoluteDifference(labels, predictions, weights, SumByNonzeroWeights)
	require.NoError(t, err)
	requireScalar(t, (abs[0]*0.1+abs[1]*0.2+abs[2]*0.3)/3, y)

	y, err = AbsoluteDifference(labels, predictions, weights, None)
	require.NoError(t, err)
	requireValues(t, []float64{abs[0] * 0.1, abs[1] * 0.2, abs[2] * 0.3}, tensor.Shape{3}, y)

	y, err = AbsoluteDifference(labels, predictions, nil, Mean)
	require.NoError(t, err)
	requireScalar(t, (abs[0]+abs[1]+abs[2])/3, y)

	y, err = AbsoluteDifference(labels, predictions, weights, Mean)
	require.NoError(t, err)
	requireScalar(t, (abs[0]*0.1+abs[1]*0.2+abs[2]*0.3)/3, y)
}

func TestAbsoluteDifference_2D(t *testing.T) {
	predictions := fromSlice(t, []float32{4, 8, 12, 8, 1, 3}, 2, 3)
	labels := fromSlice(t, []float32{1, 9, 2, -5, -2, 6}, 2, 3)
	abs := []float64{3, 1, 10, 13, 3, 3}
	total := 3 + 1 + 10 + 13 + 3 + 3.0

	y, err := AbsoluteDifference(labels, predictions, nil, SumByNonzeroWeights)
	require.NoError(t, err)
	requireScalar(t, total/6, y)

	y, err = AbsoluteDifference(labels, predictions, fromSlice(t, []float32{3, 0, 5, 0, 4, 2}, 2, 3), SumByNonzeroWeights)
	require.NoError(t, err)
	requireScalar(t, (abs[0]*3+abs[2]*5+abs[4]*4+abs[5]*2)/4, y)

	weights := fromSlice(t, []float32{3, 6, 5, 0, 4, 2}, 2, 3)
	y, err = AbsoluteDifference(labels, predictions, weights, None)
	require.NoError(t, err)
	requireValues(t, []float64{abs[0] * 3, abs[1] * 6, abs[2] * 5, 0, abs[4] * 4, abs[5] * 2}, tensor.Shape{2, 3}, y)

	y, err = AbsoluteDifference(labels, predictions, nil, Mean)
	require.NoError(t, err)
	requireScalar(t, total/6, y)

	y, err = AbsoluteDifference(labels, predictions, weights, Mean)
	require.NoError(t, err)
	requireScalar(t, (abs[0]*3+abs[1]*6+abs[2]*5+abs[4]*4+abs[5]*2)/6, y)
}

func TestAbsoluteDifference_Errors(t *testing.T) {
	_, err := AbsoluteDifference(fromSlice(t, []float32{1, 2}, 2), fromSlice(t, []float32{1, 2, 3}, 3), nil, Sum)
	var shapeErr *tensor.IncompatibleShapesError
	require.ErrorAs(t, err, &shapeErr)
	assert.Contains(t, err.Error(), "absoluteDifference")
}

func TestMeanSquaredError(t *testing.T) {
	labels := fromSlice(t, []float32{1, 2, 3}, 3)
	predictions := fromSlice(t, []float32{2, 2, 5}, 3)

	y, err := MeanSquaredError(labels, predictions, nil, SumByNonzeroWeights)
	require.NoError(t, err)
	requireScalar(t, (1+0+4)/3.0, y)

	y, err = MeanSquaredError(labels, predictions, fromSlice(t, []float32{1, 1, 0}, 3), SumByNonzeroWeights)
	require.NoError(t, err)
	requireScalar(t, 0.5, y)
}

func TestHingeLoss(t *testing.T) {
	labels := fromSlice(t, []float32{1, 0, 1, 0}, 4)
	predictions := fromSlice(t, []float32{0.5, -2, 2, 0.25}, 4)

	// 1 - y*p with y in {-1, 1}: 0.5, -1, -1, 1.25; clipped at zero.
	y, err := HingeLoss(labels, predictions, nil, None)
	require.NoError(t, err)
	requireValues(t, []float64{0.5, 0, 0, 1.25}, tensor.Shape{4}, y)

	y, err = HingeLoss(labels, predictions, nil, SumByNonzeroWeights)
	require.NoError(t, err)
	requireScalar(t, 1.75/4, y)
}

func TestReduction_Names(t *testing.T) {
	for _, r := range []Reduction{SumByNonzeroWeights, None, Mean, Sum} {
		parsed, ok := ParseReduction(r.String())
		require.True(t, ok, r.String())
		assert.Equal(t, r, parsed)
		assert.True(t, r.Valid())
	}

	r, ok := ParseReduction("SUM_BY_NONZERO_WEIGHTS")
	require.True(t, ok)
	assert.Equal(t, SumByNonzeroWeights, r)

	r, ok = ParseReduction("")
	require.True(t, ok)
	assert.Equal(t, SumByNonzeroWeights, r)

	_, ok = ParseReduction("median")
	assert.False(t, ok)
	assert.False(t, Reduction(-1).Valid())
	assert.Equal(t, "unknown", Reduction(9).String())

	var zero Reduction
	assert.Equal(t, SumByNonzeroWeights, zero)
}
