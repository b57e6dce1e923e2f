package tensor

// Backend defines the interface that all compute backends must implement.
// Backends handle the actual computation for tensor operations.
//
// Binary operations broadcast their operands with NumPy rules and report
// shape or dtype problems as errors before producing any output. Kernels
// never modify their inputs.
//
// Implementations:
//   - CPU: Pure Go (internal/backend/cpu)
type Backend interface {
	// Element-wise binary operations
	Add(a, b *RawTensor) (*RawTensor, error)
	Sub(a, b *RawTensor) (*RawTensor, error)
	Mul(a, b *RawTensor) (*RawTensor, error)

	// Element-wise unary operations
	Abs(x *RawTensor) *RawTensor  // |x|
	ReLU(x *RawTensor) *RawTensor // max(x, 0)

	// Scalar operations (element-wise with scalar)
	AddScalar(x *RawTensor, scalar float64) *RawTensor
	MulScalar(x *RawTensor, scalar float64) *RawTensor
	DivScalar(x *RawTensor, scalar float64) *RawTensor

	// Comparison operations (element-wise, return Bool tensor).
	// Any NaN operand yields NaNBool.
	Compare(op CompareOp, a, b *RawTensor) (*RawTensor, error)
	Equal(a, b *RawTensor) (*RawTensor, error)        // a == b
	NotEqual(a, b *RawTensor) (*RawTensor, error)     // a != b
	Less(a, b *RawTensor) (*RawTensor, error)         // a < b
	LessEqual(a, b *RawTensor) (*RawTensor, error)    // a <= b
	Greater(a, b *RawTensor) (*RawTensor, error)      // a > b
	GreaterEqual(a, b *RawTensor) (*RawTensor, error) // a >= b

	// Reduction operations
	Sum(x *RawTensor) *RawTensor    // total sum (scalar result)
	CountNonZero(x *RawTensor) int // number of elements != 0

	// Shape operations (broadcast)
	Expand(x *RawTensor, shape Shape) (*RawTensor, error)

	// Metadata
	Name() string
	Device() Device
}
