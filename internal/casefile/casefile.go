// Package casefile loads batches of comparison and loss cases from YAML and
// evaluates them on the CPU backend.
//
// A case file looks like:
//
//	cases:
//	  - name: masked mean
//	    kind: loss
//	    op: weighted
//	    dtype: float32
//	    a: {shape: [3], values: [1, 2, 3]}
//	    weights: {shape: [3], values: [0.1, 0, 0.3]}
//	    reduction: sumByNonzeroWeights
//	    expect: [0.5]
//
// Values are written as numbers; .nan stands for the NaN value of the dtype.
// Comparison results are reported as 0 (false), 1 (true) or NaN.
package casefile

import (
	"bytes"
	"os"
	"strings"

	"github.com/born-ml/tensorops/internal/losses"
	"github.com/born-ml/tensorops/internal/tensor"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Kind distinguishes comparison cases from loss cases.
type Kind string

// Case kinds.
const (
	KindCompare Kind = "compare"
	KindLoss    Kind = "loss"
)

// Loss operation names accepted in the op field of loss cases.
const (
	LossWeighted           = "weighted"
	LossAbsoluteDifference = "absoluteDifference"
	LossMeanSquaredError   = "meanSquaredError"
	LossHinge              = "hinge"
)

// strictSuffix marks a comparison op that must not broadcast, e.g. "lessStrict".
const strictSuffix = "Strict"

// DefaultTolerance is the absolute tolerance used when a case sets none.
const DefaultTolerance = 1e-5

// Values is a dense tensor literal: a shape and its row-major elements.
type Values struct {
	Shape  []int     `yaml:"shape"`
	Values []float64 `yaml:"values"`
}

// Case is a single operation to evaluate.
type Case struct {
	Name      string    `yaml:"name"`
	Kind      Kind      `yaml:"kind"`
	Op        string    `yaml:"op"`
	DType     string    `yaml:"dtype"`
	A         *Values   `yaml:"a"`
	B         *Values   `yaml:"b"`
	Weights   *Values   `yaml:"weights"`
	Reduction string    `yaml:"reduction"`
	Expect    []float64 `yaml:"expect"`
	Tolerance float64   `yaml:"tolerance"`
}

// File is the top-level document of a case file.
type File struct {
	Cases []Case `yaml:"cases"`
}

// Load reads and validates a case file from disk.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // G304: path is user-provided by design
	if err != nil {
		return nil, errors.Wrap(err, "read case file")
	}
	f, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "parse %s", path)
	}
	return f, nil
}

// Parse decodes and validates a case file. Unknown fields are rejected.
func Parse(data []byte) (*File, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		return nil, errors.Wrap(err, "decode yaml")
	}
	for i := range f.Cases {
		if err := f.Cases[i].Validate(); err != nil {
			return nil, err
		}
	}
	return &f, nil
}

// Validate checks the case's kind, op, dtype, reduction and operands.
func (c *Case) Validate() error {
	dtype, ok := tensor.ParseDataType(c.DType)
	if !ok {
		return c.errorf("unknown dtype %q", c.DType)
	}
	if c.A == nil {
		return c.errorf("missing operand a")
	}

	switch c.Kind {
	case KindCompare:
		if _, _, ok := c.compareOp(); !ok {
			return c.errorf("unknown comparison %q", c.Op)
		}
		if c.B == nil {
			return c.errorf("missing operand b")
		}
		if c.Weights != nil || c.Reduction != "" {
			return c.errorf("weights and reduction only apply to loss cases")
		}
	case KindLoss:
		if dtype != tensor.Float32 && dtype != tensor.Float64 {
			return c.errorf("loss cases need float32 or float64, got %s", dtype)
		}
		switch c.Op {
		case LossWeighted:
		case LossAbsoluteDifference, LossMeanSquaredError, LossHinge:
			if c.B == nil {
				return c.errorf("missing operand b")
			}
		default:
			return c.errorf("unknown loss %q", c.Op)
		}
		if _, ok := losses.ParseReduction(c.Reduction); !ok {
			return c.errorf("unknown reduction %q", c.Reduction)
		}
	default:
		return c.errorf("unknown kind %q", c.Kind)
	}

	for _, v := range []*Values{c.A, c.B, c.Weights} {
		if v == nil {
			continue
		}
		if err := v.validate(); err != nil {
			return errors.Wrapf(err, "case %q", c.Name)
		}
	}
	if c.Tolerance < 0 {
		return c.errorf("negative tolerance %v", c.Tolerance)
	}
	return nil
}

// compareOp splits the op field into a comparison operator and strictness.
func (c *Case) compareOp() (tensor.CompareOp, bool, bool) {
	name, strict := strings.CutSuffix(c.Op, strictSuffix)
	op, ok := tensor.ParseCompareOp(name)
	return op, strict, ok
}

func (c *Case) tolerance() float64 {
	if c.Tolerance == 0 {
		return DefaultTolerance
	}
	return c.Tolerance
}

func (c *Case) errorf(format string, args ...any) error {
	return errors.Wrapf(errors.Errorf(format, args...), "case %q", c.Name)
}

func (v *Values) validate() error {
	shape := tensor.Shape(v.Shape)
	if err := shape.Validate(); err != nil {
		return err
	}
	if n := shape.NumElements(); n != len(v.Values) {
		return errors.Errorf("shape %v requires %d values, got %d", shape, n, len(v.Values))
	}
	return nil
}
