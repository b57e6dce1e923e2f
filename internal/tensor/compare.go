package tensor

import (
	"github.com/pkg/errors"
)

// CompareOp selects an element-wise comparison predicate.
type CompareOp int

// Comparison operators.
const (
	OpEqual CompareOp = iota
	OpNotEqual
	OpLess
	OpLessEqual
	OpGreater
	OpGreaterEqual
)

var compareOpNames = [...]string{
	OpEqual:        "equal",
	OpNotEqual:     "notEqual",
	OpLess:         "less",
	OpLessEqual:    "lessEqual",
	OpGreater:      "greater",
	OpGreaterEqual: "greaterEqual",
}

// String returns the operator name, e.g. "lessEqual".
func (op CompareOp) String() string {
	if !op.Valid() {
		return "unknown"
	}
	return compareOpNames[op]
}

// Valid reports whether op is one of the six comparison operators.
func (op CompareOp) Valid() bool {
	return op >= OpEqual && op <= OpGreaterEqual
}

// ParseCompareOp maps an operator name as returned by String to a CompareOp.
func ParseCompareOp(name string) (CompareOp, bool) {
	for i, n := range compareOpNames {
		if n == name {
			return CompareOp(i), true
		}
	}
	return 0, false
}

// CompareOps lists all comparison operators.
func CompareOps() []CompareOp {
	return []CompareOp{OpEqual, OpNotEqual, OpLess, OpLessEqual, OpGreater, OpGreaterEqual}
}

// Compare applies op element-wise over the broadcast of a and b.
//
// The result is a Bool tensor with the broadcast shape. An element is NaNBool
// when either source element is NaN, for every operator. Returns an
// *IncompatibleShapesError when the shapes cannot be broadcast.
func Compare[T DType, B Backend](op CompareOp, a, b *Tensor[T, B]) (*Tensor[BoolValue, B], error) {
	raw, err := a.backend.Compare(op, a.raw, b.raw)
	if err != nil {
		return nil, errors.Wrap(err, op.String())
	}
	return New[BoolValue, B](raw, a.backend), nil
}

// CompareStrict is Compare without broadcasting: it returns a
// *ShapeMismatchError unless a and b have identical shapes.
func CompareStrict[T DType, B Backend](op CompareOp, a, b *Tensor[T, B]) (*Tensor[BoolValue, B], error) {
	if err := GuardShapes(a.Shape(), b.Shape()); err != nil {
		return nil, errors.Wrap(err, op.String()+"Strict")
	}
	return Compare(op, a, b)
}

// Equal returns t == other element-wise with broadcasting.
func (t *Tensor[T, B]) Equal(other *Tensor[T, B]) (*Tensor[BoolValue, B], error) {
	return Compare(OpEqual, t, other)
}

// NotEqual returns t != other element-wise with broadcasting.
func (t *Tensor[T, B]) NotEqual(other *Tensor[T, B]) (*Tensor[BoolValue, B], error) {
	return Compare(OpNotEqual, t, other)
}

// Less returns t < other element-wise with broadcasting.
func (t *Tensor[T, B]) Less(other *Tensor[T, B]) (*Tensor[BoolValue, B], error) {
	return Compare(OpLess, t, other)
}

// LessEqual returns t <= other element-wise with broadcasting.
func (t *Tensor[T, B]) LessEqual(other *Tensor[T, B]) (*Tensor[BoolValue, B], error) {
	return Compare(OpLessEqual, t, other)
}

// Greater returns t > other element-wise with broadcasting.
func (t *Tensor[T, B]) Greater(other *Tensor[T, B]) (*Tensor[BoolValue, B], error) {
	return Compare(OpGreater, t, other)
}

// GreaterEqual returns t >= other element-wise with broadcasting.
func (t *Tensor[T, B]) GreaterEqual(other *Tensor[T, B]) (*Tensor[BoolValue, B], error) {
	return Compare(OpGreaterEqual, t, other)
}

// EqualStrict is Equal for identically shaped operands only.
func (t *Tensor[T, B]) EqualStrict(other *Tensor[T, B]) (*Tensor[BoolValue, B], error) {
	return CompareStrict(OpEqual, t, other)
}

// NotEqualStrict is NotEqual for identically shaped operands only.
func (t *Tensor[T, B]) NotEqualStrict(other *Tensor[T, B]) (*Tensor[BoolValue, B], error) {
	return CompareStrict(OpNotEqual, t, other)
}

// LessStrict is Less for identically shaped operands only.
func (t *Tensor[T, B]) LessStrict(other *Tensor[T, B]) (*Tensor[BoolValue, B], error) {
	return CompareStrict(OpLess, t, other)
}

// LessEqualStrict is LessEqual for identically shaped operands only.
func (t *Tensor[T, B]) LessEqualStrict(other *Tensor[T, B]) (*Tensor[BoolValue, B], error) {
	return CompareStrict(OpLessEqual, t, other)
}

// GreaterStrict is Greater for identically shaped operands only.
func (t *Tensor[T, B]) GreaterStrict(other *Tensor[T, B]) (*Tensor[BoolValue, B], error) {
	return CompareStrict(OpGreater, t, other)
}

// GreaterEqualStrict is GreaterEqual for identically shaped operands only.
func (t *Tensor[T, B]) GreaterEqualStrict(other *Tensor[T, B]) (*Tensor[BoolValue, B], error) {
	return CompareStrict(OpGreaterEqual, t, other)
}
