package main

import (
	"github.com/born-ml/tensorops/internal/casefile"
	"github.com/born-ml/tensorops/internal/tensor"
	"github.com/spf13/cobra"
)

func newLossCmd(a *app) *cobra.Command {
	var (
		dtype     string
		reduction string
		first     = operand{name: "a"}
		second    = operand{name: "b"}
		weights   = operand{name: "weights"}
	)

	cmd := &cobra.Command{
		Use:   "loss OP",
		Short: "Compute a weighted loss",
		Long: `Compute a weighted loss and reduce it.

Operations:
  weighted            reduce the per-element losses given in --a
  absoluteDifference  |labels - predictions|
  meanSquaredError    (labels - predictions)^2
  hinge               max(0, 1 - (2*labels-1)*predictions)

For the last three, --a holds the labels and --b the predictions.

Reductions: none, sum, mean, sumByNonzeroWeights (default).`,
		Example: `  tensorops loss weighted --a 1,2,3 --weights 0.1,0,0.3
  tensorops loss absoluteDifference --a 1,2,3 --b 0.3,-0.6,-0.1 --reduction mean`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{casefile.LossWeighted, casefile.LossAbsoluteDifference, casefile.LossMeanSquaredError, casefile.LossHinge},
		RunE: func(_ *cobra.Command, args []string) error {
			return a.run(&casefile.Case{
				Name:      "loss",
				Kind:      casefile.KindLoss,
				Op:        args[0],
				DType:     dtype,
				A:         first.literal(),
				B:         second.literal(),
				Weights:   weights.literal(),
				Reduction: reduction,
			})
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&dtype, "dtype", tensor.Float32.String(), "float32 or float64")
	flags.StringVar(&reduction, "reduction", "", "reduction mode")
	first.register(flags, "losses or labels")
	second.register(flags, "predictions")
	weights.register(flags, "weights broadcastable to the losses")
	_ = cmd.MarkFlagRequired("a")
	return cmd
}
