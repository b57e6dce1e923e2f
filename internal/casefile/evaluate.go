package casefile

import (
	"math"

	"github.com/born-ml/tensorops/internal/backend/cpu"
	"github.com/born-ml/tensorops/internal/losses"
	"github.com/born-ml/tensorops/internal/tensor"
	"github.com/pkg/errors"
	"github.com/x448/float16"
)

type cpuTensor[T tensor.DType] = tensor.Tensor[T, *cpu.CPUBackend]

// Result is the outcome of evaluating one case.
type Result struct {
	Name  string
	Kind  Kind
	Op    string
	DType tensor.DataType
	Shape tensor.Shape

	// Values holds the output elements widened to float64. Comparison
	// results are 0, 1 or NaN.
	Values []float64

	// Formatted renders the output the way Tensor.Format does.
	Formatted string

	// Checked is set when the case has expectations; Passed reports whether
	// every value matched within tolerance.
	Checked bool
	Passed  bool
}

// Failed reports whether the result was checked and did not match.
func (r *Result) Failed() bool {
	return r.Checked && !r.Passed
}

// Evaluate runs every case in order on backend. It stops at the first case
// that cannot be evaluated; mismatching expectations are reported through
// Result.Passed instead.
func (f *File) Evaluate(backend *cpu.CPUBackend) ([]*Result, error) {
	results := make([]*Result, 0, len(f.Cases))
	for i := range f.Cases {
		r, err := f.Cases[i].Evaluate(backend)
		if err != nil {
			return results, err
		}
		results = append(results, r)
	}
	return results, nil
}

// Evaluate runs the case on backend.
func (c *Case) Evaluate(backend *cpu.CPUBackend) (*Result, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	dtype, _ := tensor.ParseDataType(c.DType)

	var (
		r   *Result
		err error
	)
	switch dtype {
	case tensor.Float32:
		r, err = evaluateFloat[float32](c, backend)
	case tensor.Float64:
		r, err = evaluateFloat[float64](c, backend)
	case tensor.Float16:
		r, err = evaluateCompare[float16.Float16](c, backend)
	case tensor.Int32:
		r, err = evaluateCompare[int32](c, backend)
	case tensor.Int64:
		r, err = evaluateCompare[int64](c, backend)
	case tensor.Uint8:
		r, err = evaluateCompare[uint8](c, backend)
	case tensor.Bool:
		r, err = evaluateCompare[tensor.BoolValue](c, backend)
	default:
		return nil, c.errorf("unsupported dtype %s", dtype)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "case %q", c.Name)
	}

	r.Name, r.Kind, r.Op, r.DType = c.Name, c.Kind, c.Op, dtype
	if len(c.Expect) > 0 {
		r.Checked = true
		r.Passed = matches(r.Values, c.Expect, c.tolerance())
	}
	return r, nil
}

func evaluateFloat[T tensor.Float](c *Case, backend *cpu.CPUBackend) (*Result, error) {
	if c.Kind == KindCompare {
		return evaluateCompare[T](c, backend)
	}

	a, err := build[T](c.A, backend)
	if err != nil {
		return nil, err
	}
	var b, weights *cpuTensor[T]
	if c.B != nil {
		if b, err = build[T](c.B, backend); err != nil {
			return nil, err
		}
	}
	if c.Weights != nil {
		if weights, err = build[T](c.Weights, backend); err != nil {
			return nil, err
		}
	}
	reduction, _ := losses.ParseReduction(c.Reduction)

	var out *cpuTensor[T]
	switch c.Op {
	case LossWeighted:
		out, err = losses.ComputeWeightedLoss(a, weights, reduction)
	case LossAbsoluteDifference:
		out, err = losses.AbsoluteDifference(a, b, weights, reduction)
	case LossMeanSquaredError:
		out, err = losses.MeanSquaredError(a, b, weights, reduction)
	case LossHinge:
		out, err = losses.HingeLoss(a, b, weights, reduction)
	}
	if err != nil {
		return nil, err
	}
	return newResult(out), nil
}

func evaluateCompare[T tensor.DType](c *Case, backend *cpu.CPUBackend) (*Result, error) {
	a, err := build[T](c.A, backend)
	if err != nil {
		return nil, err
	}
	b, err := build[T](c.B, backend)
	if err != nil {
		return nil, err
	}

	op, strict, _ := c.compareOp()
	var out *cpuTensor[tensor.BoolValue]
	if strict {
		out, err = tensor.CompareStrict(op, a, b)
	} else {
		out, err = tensor.Compare(op, a, b)
	}
	if err != nil {
		return nil, err
	}
	return newResult(out), nil
}

func newResult[T tensor.DType](t *cpuTensor[T]) *Result {
	data := t.Data()
	values := make([]float64, len(data))
	for i, v := range data {
		values[i] = toFloat64(v)
	}
	return &Result{
		Shape:     t.Shape().Clone(),
		Values:    values,
		Formatted: t.Format(),
	}
}

// build converts a literal into a tensor of element type T.
func build[T tensor.DType](v *Values, backend *cpu.CPUBackend) (*cpuTensor[T], error) {
	data := make([]T, len(v.Values))
	for i, x := range v.Values {
		elem, err := fromFloat64[T](x)
		if err != nil {
			return nil, errors.Wrapf(err, "value %d", i)
		}
		data[i] = elem
	}
	return tensor.FromSlice(data, tensor.Shape(v.Shape), backend)
}

// fromFloat64 narrows x to T. NaN becomes the NaN value of T; integer types
// reject fractional values.
func fromFloat64[T tensor.DType](x float64) (T, error) {
	var zero T
	if math.IsNaN(x) {
		if _, ok := any(zero).(uint8); ok {
			return zero, errors.New("uint8 has no NaN")
		}
		return tensor.NaN[T](), nil
	}

	var v any
	switch any(zero).(type) {
	case float32:
		v = float32(x)
	case float64:
		v = x
	case float16.Float16:
		v = float16.Fromfloat32(float32(x))
	case int32:
		if x != math.Trunc(x) || x < math.MinInt32 || x > math.MaxInt32 {
			return zero, errors.Errorf("%v is not an int32", x)
		}
		v = int32(x)
	case int64:
		if x != math.Trunc(x) || x < math.MinInt64 || x >= -math.MinInt64 {
			return zero, errors.Errorf("%v is not an int64", x)
		}
		v = int64(x)
	case uint8:
		if x != math.Trunc(x) || x < 0 || x > math.MaxUint8 {
			return zero, errors.Errorf("%v is not a uint8", x)
		}
		v = uint8(x)
	case tensor.BoolValue:
		switch x {
		case 0:
			v = tensor.False
		case 1:
			v = tensor.True
		default:
			return zero, errors.Errorf("%v is not a bool (use 0, 1 or .nan)", x)
		}
	}
	return v.(T), nil
}

// toFloat64 widens v, mapping the NaN value of its type to NaN.
func toFloat64[T tensor.DType](v T) float64 {
	if tensor.IsNaNValue(v) {
		return math.NaN()
	}
	if h, ok := any(v).(float16.Float16); ok {
		return float64(h.Float32())
	}
	return float64(v)
}

// matches compares got with want element-wise. NaN matches only NaN.
func matches(got, want []float64, tol float64) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		gotNaN, wantNaN := math.IsNaN(got[i]), math.IsNaN(want[i])
		if gotNaN || wantNaN {
			if gotNaN != wantNaN {
				return false
			}
			continue
		}
		if math.Abs(got[i]-want[i]) > tol {
			return false
		}
	}
	return true
}
