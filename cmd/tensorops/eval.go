package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/born-ml/tensorops/internal/casefile"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newEvalCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "eval FILE",
		Short: "Evaluate the cases in a YAML case file",
		Long: `Evaluate every case in a YAML case file and print one line per case.

Cases with an expect list are checked against it; the command fails when
any of them does not match.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			f, err := casefile.Load(args[0])
			if err != nil {
				return err
			}
			a.logger.Debug("loaded case file", "path", args[0], "cases", len(f.Cases))

			results, err := f.Evaluate(a.backend)
			if werr := writeResults(a.out, results); werr != nil {
				return werr
			}
			if err != nil {
				return err
			}

			failed := 0
			for _, r := range results {
				a.logger.Debug("evaluated case", "name", r.Name, "op", r.Op, "dtype", r.DType, "shape", r.Shape)
				if r.Failed() {
					failed++
					a.logger.Warn("case failed", "name", r.Name, "got", r.Formatted)
				}
			}
			if failed > 0 {
				return errors.Errorf("%d of %d cases failed", failed, len(results))
			}
			a.logger.Info("all cases passed", "cases", len(results))
			return nil
		},
	}
}

func writeResults(w io.Writer, results []*casefile.Result) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tKIND\tOP\tDTYPE\tSHAPE\tSTATUS\tVALUES")
	for _, r := range results {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%v\t%s\t%s\n",
			r.Name, r.Kind, r.Op, r.DType, []int(r.Shape), status(r), r.Formatted)
	}
	return tw.Flush()
}

func status(r *casefile.Result) string {
	switch {
	case !r.Checked:
		return "-"
	case r.Passed:
		return "ok"
	default:
		return "FAIL"
	}
}
