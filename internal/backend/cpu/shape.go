package cpu

import (
	"github.com/born-ml/tensorops/internal/tensor"
	"github.com/pkg/errors"
)

// Expand broadcasts the tensor to a new shape.
//
// Each dimension of x, aligned from the right, must equal the target
// dimension or be 1. Works for every dtype since elements are copied as bytes.
func (cpu *CPUBackend) Expand(x *tensor.RawTensor, newShape tensor.Shape) (*tensor.RawTensor, error) {
	xShape := x.Shape()

	if len(newShape) < len(xShape) {
		return nil, errors.Errorf("expand: new shape %v has fewer dimensions than input shape %v",
			newShape, xShape)
	}

	offset := len(newShape) - len(xShape)
	for i, xDim := range xShape {
		if newDim := newShape[offset+i]; xDim != 1 && xDim != newDim {
			return nil, &tensor.IncompatibleShapesError{A: xShape.Clone(), B: newShape.Clone(), Axis: offset + i}
		}
	}

	result, err := tensor.NewRaw(newShape, x.DType(), cpu.device)
	if err != nil {
		return nil, errors.Wrap(err, "expand")
	}

	elemSize := x.DType().Size()
	src, dst := x.Data(), result.Data()
	outStrides := newShape.ComputeStrides()
	inStrides := tensor.BroadcastStrides(xShape, newShape)

	n := newShape.NumElements()
	for i := 0; i < n; i++ {
		srcIdx := tensor.FlatIndex(i, outStrides, inStrides)
		copy(dst[i*elemSize:(i+1)*elemSize], src[srcIdx*elemSize:(srcIdx+1)*elemSize])
	}

	return result, nil
}
