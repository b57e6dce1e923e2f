package tensor

import "fmt"

// IncompatibleShapesError is returned when two shapes cannot be broadcast
// together. Axis is the output axis where the sizes disagree.
type IncompatibleShapesError struct {
	A, B Shape
	Axis int
}

func (e *IncompatibleShapesError) Error() string {
	return fmt.Sprintf("shapes not compatible for broadcasting: %v vs %v (dimension %d: %d vs %d)",
		e.A, e.B, e.Axis, dimFromRight(e.A, e.Axis, e.rank()), dimFromRight(e.B, e.Axis, e.rank()))
}

func (e *IncompatibleShapesError) rank() int {
	return maxInt(len(e.A), len(e.B))
}

// dimFromRight returns the size of s at output axis for an output of the given rank.
func dimFromRight(s Shape, axis, rank int) int {
	idx := axis - (rank - len(s))
	if idx < 0 {
		return 1
	}
	return s[idx]
}

// ShapeMismatchError is returned by the strict comparators when the operand
// shapes are not identical, including shapes that would broadcast.
type ShapeMismatchError struct {
	A, B Shape
}

func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("shapes must match exactly: %v vs %v", e.A, e.B)
}

// DTypeMismatchError is returned when a binary operation receives operands of
// different data types.
type DTypeMismatchError struct {
	A, B DataType
}

func (e *DTypeMismatchError) Error() string {
	return fmt.Sprintf("data types must match: %s vs %s", e.A, e.B)
}

// UnsupportedDTypeError is returned when an operation is not defined for a
// data type.
type UnsupportedDTypeError struct {
	Op    string
	DType DataType
}

func (e *UnsupportedDTypeError) Error() string {
	return fmt.Sprintf("%s: unsupported dtype %s", e.Op, e.DType)
}
