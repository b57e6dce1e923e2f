package tensor

import (
	"math"

	"github.com/x448/float16"
)

// BoolValue is the element type of Bool tensors.
//
// Besides True and False it carries NaNBool, the marker a comparison emits
// when either operand is NaN. NaNBool is neither true nor false.
type BoolValue uint8

// Bool tensor element values.
const (
	False   BoolValue = 0
	True    BoolValue = 1
	NaNBool BoolValue = 255
)

// NaN sentinels for integer tensors. Integer types have no NaN, so the
// minimum value of the type is reserved for it.
const (
	NaNInt32 int32 = math.MinInt32
	NaNInt64 int64 = math.MinInt64
)

// BoolOf converts a Go bool into a BoolValue.
func BoolOf(b bool) BoolValue {
	if b {
		return True
	}
	return False
}

// IsNaN reports whether v is the NaN marker.
func (v BoolValue) IsNaN() bool {
	return v == NaNBool
}

// IsTrue reports whether v is True. NaNBool is not true.
func (v BoolValue) IsTrue() bool {
	return v == True
}

// Not returns the logical negation of v. NaNBool stays NaNBool.
func (v BoolValue) Not() BoolValue {
	switch v {
	case True:
		return False
	case False:
		return True
	default:
		return NaNBool
	}
}

// String returns "true", "false" or "NaN".
func (v BoolValue) String() string {
	switch v {
	case True:
		return "true"
	case False:
		return "false"
	default:
		return "NaN"
	}
}

// NaN returns the NaN value for element type T: IEEE NaN for float types,
// NaNInt32/NaNInt64 for integer types and NaNBool for Bool. Uint8 has no NaN
// and panics.
func NaN[T DType]() T {
	var dummy T
	var v any
	switch any(dummy).(type) {
	case float32:
		v = float32(math.NaN())
	case float64:
		v = math.NaN()
	case int32:
		v = NaNInt32
	case int64:
		v = NaNInt64
	case BoolValue:
		v = NaNBool
	case float16.Float16:
		v = float16.NaN()
	default:
		panic("NaN: no NaN value for this type")
	}
	return v.(T)
}

// IsNaNValue reports whether v holds the NaN value of its type.
func IsNaNValue[T DType](v T) bool {
	switch x := any(v).(type) {
	case float32:
		return math.IsNaN(float64(x))
	case float64:
		return math.IsNaN(x)
	case int32:
		return x == NaNInt32
	case int64:
		return x == NaNInt64
	case BoolValue:
		return x == NaNBool
	case float16.Float16:
		return x.IsNaN()
	default:
		return false
	}
}
