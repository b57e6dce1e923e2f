package tensor

// BroadcastPlan maps flat indices of a broadcast output back to the two
// inputs it was computed from.
//
// Input strides are zero along axes where the input has size 1 or lacks the
// axis entirely, so repeated elements are read from the same source slot.
type BroadcastPlan struct {
	Shape    Shape // resolved output shape
	Strides  []int // row-major strides of Shape
	AStrides []int // broadcast strides of the first input
	BStrides []int // broadcast strides of the second input

	identity bool // both inputs already have the output shape
}

// NewBroadcastPlan resolves the output shape of a and b and the per-input
// strides. It returns an *IncompatibleShapesError when no plan exists.
func NewBroadcastPlan(a, b Shape) (*BroadcastPlan, error) {
	outShape, needsBroadcast, err := BroadcastShapes(a, b)
	if err != nil {
		return nil, err
	}
	return &BroadcastPlan{
		Shape:    outShape,
		Strides:  outShape.ComputeStrides(),
		AStrides: BroadcastStrides(a, outShape),
		BStrides: BroadcastStrides(b, outShape),
		identity: !needsBroadcast,
	}, nil
}

// NumElements returns the number of output elements.
func (p *BroadcastPlan) NumElements() int {
	return p.Shape.NumElements()
}

// IsIdentity reports whether no input needs broadcasting, in which case
// output index i maps to index i of both inputs.
func (p *BroadcastPlan) IsIdentity() bool {
	return p.identity
}

// Index returns the flat indices into a and b for flat output index i.
func (p *BroadcastPlan) Index(i int) (ai, bi int) {
	if p.identity {
		return i, i
	}
	for d, stride := range p.Strides {
		coord := i / stride
		i %= stride
		ai += coord * p.AStrides[d]
		bi += coord * p.BStrides[d]
	}
	return ai, bi
}

// BroadcastStrides computes strides for broadcasting inShape to outShape.
// Returns strides where dimensions of size 1 have stride 0 (for broadcasting).
func BroadcastStrides(inShape, outShape Shape) []int {
	outDim := len(outShape)
	strides := make([]int, outDim)

	// Pad input shape with 1s on the left
	inDim := len(inShape)
	offset := outDim - inDim

	origStrides := inShape.ComputeStrides()

	for i := 0; i < outDim; i++ {
		inIdx := i - offset
		switch {
		case inIdx < 0 || inIdx >= inDim:
			// Padded dimension, stride is 0
			strides[i] = 0
		case inShape[inIdx] == 1:
			// Broadcast dimension, stride is 0
			strides[i] = 0
		default:
			strides[i] = origStrides[inIdx]
		}
	}

	return strides
}

// FlatIndex computes the flat index in a source array for output index outIdx.
// outStrides are the strides of the output shape, inStrides the broadcast
// strides of the source (see BroadcastStrides).
func FlatIndex(outIdx int, outStrides, inStrides []int) int {
	flatIdx := 0
	for i, stride := range outStrides {
		coord := outIdx / stride
		outIdx %= stride
		flatIdx += coord * inStrides[i]
	}
	return flatIdx
}
