package losses

import (
	"github.com/born-ml/tensorops/internal/tensor"
	"github.com/pkg/errors"
)

// ComputeWeightedLoss multiplies losses by weights and reduces the result.
//
// weights may be nil, in which case every element has weight 1. Otherwise
// losses and weights are broadcast together and an
// *tensor.IncompatibleShapesError is returned when that is impossible.
//
// Reductions over the weighted array E with N elements:
//   - None: E itself, shaped like the broadcast of losses and weights
//   - Sum: sum(E)
//   - Mean: sum(E) / N
//   - SumByNonzeroWeights: sum(E) / max(1, number of non-zero broadcast weights)
//
// Every reduction except None returns a 0-D tensor.
//
// Example:
//
//	l, _ := tensor.FromSlice([]float32{1, 2, 3}, tensor.Shape{3}, backend)
//	w, _ := tensor.FromSlice([]float32{0.1, 0, 0.3}, tensor.Shape{3}, backend)
//	loss, _ := losses.ComputeWeightedLoss(l, w, losses.SumByNonzeroWeights) // (0.1 + 0.9) / 2
func ComputeWeightedLoss[T tensor.Float, B tensor.Backend](
	losses, weights *tensor.Tensor[T, B], reduction Reduction,
) (*tensor.Tensor[T, B], error) {
	if !reduction.Valid() {
		return nil, errors.Errorf("computeWeightedLoss: unknown reduction %d", int(reduction))
	}

	weighted := losses
	if weights != nil {
		var err error
		weighted, err = losses.Mul(weights)
		if err != nil {
			return nil, errors.Wrap(err, "computeWeightedLoss")
		}
	}

	switch reduction {
	case None:
		if weights == nil {
			return losses.Clone(), nil
		}
		return weighted, nil
	case Sum:
		return weighted.Sum(), nil
	case Mean:
		return weighted.Sum().DivScalar(float64(weighted.NumElements())), nil
	default:
		divisor, err := nonZeroWeights(weights, weighted.Shape())
		if err != nil {
			return nil, errors.Wrap(err, "computeWeightedLoss")
		}
		return weighted.Sum().DivScalar(float64(divisor)), nil
	}
}

// nonZeroWeights counts the non-zero entries of weights broadcast to shape,
// clamped to at least 1. Without weights every element counts.
func nonZeroWeights[T tensor.Float, B tensor.Backend](weights *tensor.Tensor[T, B], shape tensor.Shape) (int, error) {
	if weights == nil {
		return max(1, shape.NumElements()), nil
	}
	expanded, err := weights.Expand(shape)
	if err != nil {
		return 0, err
	}
	return max(1, expanded.CountNonZero()), nil
}
