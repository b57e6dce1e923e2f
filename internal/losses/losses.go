package losses

import (
	"github.com/born-ml/tensorops/internal/tensor"
	"github.com/pkg/errors"
)

// AbsoluteDifference computes |predictions - labels| element-wise and reduces
// it with ComputeWeightedLoss.
//
// labels and predictions are broadcast together; weights may be nil.
//
// Example:
//
//	loss, err := losses.AbsoluteDifference(labels, predictions, nil, losses.SumByNonzeroWeights)
func AbsoluteDifference[T tensor.Float, B tensor.Backend](
	labels, predictions, weights *tensor.Tensor[T, B], reduction Reduction,
) (*tensor.Tensor[T, B], error) {
	diff, err := predictions.Sub(labels)
	if err != nil {
		return nil, errors.Wrap(err, "absoluteDifference")
	}
	result, err := ComputeWeightedLoss(diff.Abs(), weights, reduction)
	if err != nil {
		return nil, errors.Wrap(err, "absoluteDifference")
	}
	return result, nil
}

// MeanSquaredError computes (predictions - labels)² element-wise and reduces
// it with ComputeWeightedLoss.
func MeanSquaredError[T tensor.Float, B tensor.Backend](
	labels, predictions, weights *tensor.Tensor[T, B], reduction Reduction,
) (*tensor.Tensor[T, B], error) {
	diff, err := predictions.Sub(labels)
	if err != nil {
		return nil, errors.Wrap(err, "meanSquaredError")
	}
	squared, err := diff.Mul(diff)
	if err != nil {
		return nil, errors.Wrap(err, "meanSquaredError")
	}
	result, err := ComputeWeightedLoss(squared, weights, reduction)
	if err != nil {
		return nil, errors.Wrap(err, "meanSquaredError")
	}
	return result, nil
}

// HingeLoss computes max(0, 1 - y·p) element-wise, where labels in {0, 1} are
// mapped to y in {-1, 1}, and reduces it with ComputeWeightedLoss.
func HingeLoss[T tensor.Float, B tensor.Backend](
	labels, predictions, weights *tensor.Tensor[T, B], reduction Reduction,
) (*tensor.Tensor[T, B], error) {
	signed := labels.MulScalar(2).AddScalar(-1)
	margin, err := signed.Mul(predictions)
	if err != nil {
		return nil, errors.Wrap(err, "hingeLoss")
	}
	hinge := margin.MulScalar(-1).AddScalar(1).ReLU()
	result, err := ComputeWeightedLoss(hinge, weights, reduction)
	if err != nil {
		return nil, errors.Wrap(err, "hingeLoss")
	}
	return result, nil
}
