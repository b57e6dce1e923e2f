package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/x448/float16"
)

func TestDataType(t *testing.T) {
	tests := []struct {
		dtype DataType
		size  int
		name  string
		float bool
	}{
		{Float32, 4, "float32", true},
		{Float64, 8, "float64", true},
		{Float16, 2, "float16", true},
		{Int32, 4, "int32", false},
		{Int64, 8, "int64", false},
		{Uint8, 1, "uint8", false},
		{Bool, 1, "bool", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.size, tt.dtype.Size())
			assert.Equal(t, tt.name, tt.dtype.String())
			assert.Equal(t, tt.float, tt.dtype.IsFloat())

			parsed, ok := ParseDataType(tt.name)
			assert.True(t, ok)
			assert.Equal(t, tt.dtype, parsed)
		})
	}

	_, ok := ParseDataType("complex64")
	assert.False(t, ok)
}

func TestDataTypeOf(t *testing.T) {
	assert.Equal(t, Float32, DataTypeOf[float32]())
	assert.Equal(t, Int64, DataTypeOf[int64]())
	assert.Equal(t, Bool, DataTypeOf[BoolValue]())
	assert.Equal(t, Uint8, DataTypeOf[uint8]())
	assert.Equal(t, Float16, DataTypeOf[float16.Float16]())
}
