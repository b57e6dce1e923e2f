// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package losses provides weighted loss reduction and loss functions.
//
// Every loss computes a per-element loss tensor, multiplies it by optional
// weights (broadcast against the losses) and reduces it according to a
// Reduction mode. SumByNonzeroWeights is the zero value and the default.
//
// Example:
//
//	backend := cpu.New()
//	labels, _ := tensor.FromSlice([]float32{1, 2, 3}, tensor.Shape{3}, backend)
//	preds, _ := tensor.FromSlice([]float32{1, 4, 0}, tensor.Shape{3}, backend)
//	loss, err := losses.AbsoluteDifference(labels, preds, nil, losses.Mean) // 5/3
package losses

import (
	"github.com/born-ml/tensorops/internal/losses"
	"github.com/born-ml/tensorops/tensor"
)

// Reduction selects how a weighted per-element loss collapses.
type Reduction = losses.Reduction

// Reduction modes.
const (
	SumByNonzeroWeights Reduction = losses.SumByNonzeroWeights
	None                Reduction = losses.None
	Mean                Reduction = losses.Mean
	Sum                 Reduction = losses.Sum
)

// ParseReduction parses a reduction name such as "mean" or "SUM_BY_NONZERO_WEIGHTS".
func ParseReduction(name string) (Reduction, bool) {
	return losses.ParseReduction(name)
}

// ComputeWeightedLoss multiplies losses by weights (nil means all ones) and
// reduces the product. All reductions except None return a 0-D tensor.
func ComputeWeightedLoss[T tensor.Float, B tensor.Backend](
	l, weights *tensor.Tensor[T, B], reduction Reduction,
) (*tensor.Tensor[T, B], error) {
	return losses.ComputeWeightedLoss(l, weights, reduction)
}

// AbsoluteDifference computes the weighted |predictions - labels| loss.
func AbsoluteDifference[T tensor.Float, B tensor.Backend](
	labels, predictions, weights *tensor.Tensor[T, B], reduction Reduction,
) (*tensor.Tensor[T, B], error) {
	return losses.AbsoluteDifference(labels, predictions, weights, reduction)
}

// MeanSquaredError computes the weighted (predictions - labels)² loss.
func MeanSquaredError[T tensor.Float, B tensor.Backend](
	labels, predictions, weights *tensor.Tensor[T, B], reduction Reduction,
) (*tensor.Tensor[T, B], error) {
	return losses.MeanSquaredError(labels, predictions, weights, reduction)
}

// HingeLoss computes the weighted max(0, 1 - (2·labels - 1)·predictions) loss.
func HingeLoss[T tensor.Float, B tensor.Backend](
	labels, predictions, weights *tensor.Tensor[T, B], reduction Reduction,
) (*tensor.Tensor[T, B], error) {
	return losses.HingeLoss(labels, predictions, weights, reduction)
}
