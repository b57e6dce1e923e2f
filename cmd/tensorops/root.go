package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/born-ml/tensorops/internal/backend/cpu"
	"github.com/born-ml/tensorops/internal/casefile"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// app holds state shared by all subcommands.
type app struct {
	out     io.Writer
	errOut  io.Writer
	verbose bool
	logger  *slog.Logger
	backend *cpu.CPUBackend
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{
		out:     out,
		errOut:  errOut,
		logger:  slog.New(slog.DiscardHandler),
		backend: cpu.New(),
	}

	root := &cobra.Command{
		Use:   "tensorops",
		Short: "NaN-aware tensor comparisons and weighted losses",
		Long: `tensorops evaluates element-wise comparisons with broadcasting and
weighted loss reductions on the CPU backend.

Comparison results print as true, false or NaN. Any NaN operand yields NaN.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			level := slog.LevelWarn
			if a.verbose {
				level = slog.LevelDebug
			}
			a.logger = slog.New(slog.NewTextHandler(a.errOut, &slog.HandlerOptions{Level: level}))
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging on stderr")

	root.AddCommand(
		newVersionCmd(a),
		newCompareCmd(a),
		newLossCmd(a),
		newEvalCmd(a),
	)
	return root
}

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version",
		Args:  cobra.NoArgs,
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Fprintf(a.out, "tensorops %s\n", version)
		},
	}
}

// run evaluates a single case built from flags and prints "<shape> <values>".
func (a *app) run(c *casefile.Case) error {
	a.logger.Debug("evaluating", "kind", c.Kind, "op", c.Op, "dtype", c.DType)
	r, err := c.Evaluate(a.backend)
	if err != nil {
		return err
	}
	a.logger.Debug("evaluated", "shape", r.Shape, "elements", len(r.Values))
	fmt.Fprintf(a.out, "%v %s\n", []int(r.Shape), r.Formatted)
	return nil
}

// operand binds a tensor literal to a pair of flags: --<name> for the
// values and --<name>-shape for the shape.
type operand struct {
	name   string
	values []float64
	shape  []int
}

func (o *operand) register(flags *pflag.FlagSet, usage string) {
	flags.Float64SliceVar(&o.values, o.name, nil, usage+" (comma separated, nan allowed)")
	flags.IntSliceVar(&o.shape, o.name+"-shape", nil, "shape of --"+o.name+" (default 1-D)")
}

// literal returns nil when the operand was not given.
func (o *operand) literal() *casefile.Values {
	if o.values == nil {
		return nil
	}
	shape := o.shape
	if shape == nil {
		shape = []int{len(o.values)}
	}
	return &casefile.Values{Shape: shape, Values: o.values}
}
