// Package tensor provides the core tensor types, shape rules and the typed
// comparison API for tensorops.
package tensor

import (
	"github.com/x448/float16"
)

// DType is a constraint for supported tensor element types.
//
// Bool tensors store BoolValue (underlying uint8) so that a comparison can
// report NaNBool next to True and False. Float16 tensors store
// float16.Float16 (underlying uint16).
type DType interface {
	~float32 | ~float64 | ~int32 | ~int64 | ~uint8 | ~uint16
}

// Float is the constraint for element types that losses are defined over.
type Float interface {
	~float32 | ~float64
}

// DataType represents runtime type information for tensors.
type DataType int

// Supported data types for tensors.
const (
	Float32 DataType = iota
	Float64
	Int32
	Int64
	Uint8
	Bool
	Float16
)

// Size returns the byte size of the data type.
func (dt DataType) Size() int {
	switch dt {
	case Float32, Int32:
		return 4
	case Float64, Int64:
		return 8
	case Float16:
		return 2
	case Uint8, Bool:
		return 1
	default:
		panic("unknown data type")
	}
}

// String returns a human-readable name for the data type.
func (dt DataType) String() string {
	switch dt {
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	case Int32:
		return "int32"
	case Int64:
		return "int64"
	case Uint8:
		return "uint8"
	case Bool:
		return "bool"
	case Float16:
		return "float16"
	default:
		return "unknown"
	}
}

// IsFloat reports whether the data type is a floating point type.
func (dt DataType) IsFloat() bool {
	return dt == Float32 || dt == Float64 || dt == Float16
}

// ParseDataType maps a dtype name ("float32", "int32", ...) to a DataType.
func ParseDataType(name string) (DataType, bool) {
	for _, dt := range []DataType{Float32, Float64, Int32, Int64, Uint8, Bool, Float16} {
		if dt.String() == name {
			return dt, true
		}
	}
	return 0, false
}

// DataTypeOf returns the DataType backing element type T.
func DataTypeOf[T DType]() DataType {
	var dummy T
	return inferDataType(dummy)
}

// inferDataType infers DataType from a generic type T.
// BoolValue and float16.Float16 are matched before their underlying types.
func inferDataType[T DType](dummy T) DataType {
	switch any(dummy).(type) {
	case float32:
		return Float32
	case float64:
		return Float64
	case int32:
		return Int32
	case int64:
		return Int64
	case BoolValue:
		return Bool
	case float16.Float16:
		return Float16
	case uint8:
		return Uint8
	default:
		panic("unsupported type")
	}
}
