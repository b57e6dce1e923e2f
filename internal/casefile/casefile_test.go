package casefile

import (
	"math"
	"path/filepath"
	"testing"

	"github.com/born-ml/tensorops/internal/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	f, err := Load(filepath.Join("testdata", "compare.yaml"))
	require.NoError(t, err)
	require.Len(t, f.Cases, 5)

	first := f.Cases[0]
	assert.Equal(t, "equal int32 with NaN", first.Name)
	assert.Equal(t, KindCompare, first.Kind)
	assert.Equal(t, []int{3}, first.A.Shape)
	assert.True(t, math.IsNaN(first.A.Values[1]))
	assert.True(t, math.IsNaN(first.Expect[2]))

	assert.Equal(t, []int{}, f.Cases[1].A.Shape)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join("testdata", "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read case file")

	_, err = Load(filepath.Join("testdata", "invalid.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown comparison "approximately"`)
	assert.Contains(t, err.Error(), "invalid.yaml")
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		msg  string
	}{
		{
			name: "unknown field",
			doc: `cases:
  - name: x
    kind: compare
    op: equal
    dtype: float32
    colour: red
    a: {shape: [1], values: [1]}
    b: {shape: [1], values: [1]}`,
			msg: "colour",
		},
		{
			name: "unknown dtype",
			doc: `cases:
  - name: x
    kind: compare
    op: equal
    dtype: complex64
    a: {shape: [1], values: [1]}
    b: {shape: [1], values: [1]}`,
			msg: `unknown dtype "complex64"`,
		},
		{
			name: "unknown kind",
			doc: `cases:
  - name: x
    kind: reduce
    op: sum
    dtype: float32
    a: {shape: [1], values: [1]}`,
			msg: `unknown kind "reduce"`,
		},
		{
			name: "missing a",
			doc: `cases:
  - name: x
    kind: compare
    op: equal
    dtype: float32
    b: {shape: [1], values: [1]}`,
			msg: "missing operand a",
		},
		{
			name: "missing b",
			doc: `cases:
  - name: x
    kind: compare
    op: less
    dtype: float32
    a: {shape: [1], values: [1]}`,
			msg: "missing operand b",
		},
		{
			name: "reduction on compare",
			doc: `cases:
  - name: x
    kind: compare
    op: less
    dtype: float32
    reduction: sum
    a: {shape: [1], values: [1]}
    b: {shape: [1], values: [1]}`,
			msg: "only apply to loss cases",
		},
		{
			name: "unknown reduction",
			doc: `cases:
  - name: x
    kind: loss
    op: weighted
    dtype: float32
    reduction: median
    a: {shape: [1], values: [1]}`,
			msg: `unknown reduction "median"`,
		},
		{
			name: "unknown loss",
			doc: `cases:
  - name: x
    kind: loss
    op: crossEntropy
    dtype: float32
    a: {shape: [1], values: [1]}`,
			msg: `unknown loss "crossEntropy"`,
		},
		{
			name: "integer loss",
			doc: `cases:
  - name: x
    kind: loss
    op: weighted
    dtype: int32
    a: {shape: [1], values: [1]}`,
			msg: "loss cases need float32 or float64",
		},
		{
			name: "loss without labels",
			doc: `cases:
  - name: x
    kind: loss
    op: hinge
    dtype: float32
    a: {shape: [1], values: [1]}`,
			msg: "missing operand b",
		},
		{
			name: "value count",
			doc: `cases:
  - name: x
    kind: compare
    op: equal
    dtype: float32
    a: {shape: [2, 2], values: [1, 2, 3]}
    b: {shape: [1], values: [1]}`,
			msg: "requires 4 values, got 3",
		},
		{
			name: "negative tolerance",
			doc: `cases:
  - name: x
    kind: compare
    op: equal
    dtype: float32
    tolerance: -1
    a: {shape: [1], values: [1]}
    b: {shape: [1], values: [1]}`,
			msg: "negative tolerance",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestCase_CompareOp(t *testing.T) {
	tests := []struct {
		op     string
		want   tensor.CompareOp
		strict bool
		ok     bool
	}{
		{"equal", tensor.OpEqual, false, true},
		{"lessEqualStrict", tensor.OpLessEqual, true, true},
		{"greater", tensor.OpGreater, false, true},
		{"Strict", 0, true, false},
		{"bigger", 0, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.op, func(t *testing.T) {
			c := Case{Op: tt.op}
			op, strict, ok := c.compareOp()
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.strict, strict)
			if tt.ok {
				assert.Equal(t, tt.want, op)
			}
		})
	}
}

func TestCase_Tolerance(t *testing.T) {
	assert.InDelta(t, DefaultTolerance, (&Case{}).tolerance(), 0)
	assert.InDelta(t, 0.1, (&Case{Tolerance: 0.1}).tolerance(), 0)
}
