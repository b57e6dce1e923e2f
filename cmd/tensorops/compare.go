package main

import (
	"strings"

	"github.com/born-ml/tensorops/internal/casefile"
	"github.com/born-ml/tensorops/internal/tensor"
	"github.com/spf13/cobra"
)

func newCompareCmd(a *app) *cobra.Command {
	var (
		dtype  string
		strict bool
		lhs    = operand{name: "a"}
		rhs    = operand{name: "b"}
	)

	ops := tensor.CompareOps()
	names := make([]string, len(ops))
	for i, op := range ops {
		names[i] = op.String()
	}

	cmd := &cobra.Command{
		Use:   "compare OP",
		Short: "Compare two tensors element-wise",
		Long: "Compare two tensors element-wise with broadcasting.\n\n" +
			"Operators: " + strings.Join(names, ", ") + ".",
		Example: `  tensorops compare less --a 1,2,nan --b 2 --dtype int32
  tensorops compare equal --a 1,2,3,4 --a-shape 2,2 --b 1,4 --b-shape 2,1
  tensorops compare greater --strict --a 1,2 --b 2,1`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: names,
		RunE: func(_ *cobra.Command, args []string) error {
			op := args[0]
			if strict {
				op += "Strict"
			}
			return a.run(&casefile.Case{
				Name:  "compare",
				Kind:  casefile.KindCompare,
				Op:    op,
				DType: dtype,
				A:     lhs.literal(),
				B:     rhs.literal(),
			})
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&dtype, "dtype", tensor.Float32.String(), "element type of both operands")
	flags.BoolVar(&strict, "strict", false, "require identical shapes instead of broadcasting")
	lhs.register(flags, "left operand")
	rhs.register(flags, "right operand")
	_ = cmd.MarkFlagRequired("a")
	_ = cmd.MarkFlagRequired("b")
	return cmd
}
