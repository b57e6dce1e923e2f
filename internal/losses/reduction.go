// Package losses implements weighted loss reduction and the loss functions
// built on it.
package losses

import "strings"

// Reduction selects how a per-element weighted loss collapses.
//
// The zero value is SumByNonzeroWeights, the default of every loss function.
type Reduction int

// Reduction modes.
const (
	// SumByNonzeroWeights divides the weighted sum by the number of non-zero
	// weights (after broadcasting), or by the element count without weights.
	SumByNonzeroWeights Reduction = iota
	// None returns the weighted per-element losses unreduced.
	None
	// Mean divides the weighted sum by the element count.
	Mean
	// Sum returns the weighted sum.
	Sum
)

// String returns the reduction name, e.g. "sumByNonzeroWeights".
func (r Reduction) String() string {
	switch r {
	case SumByNonzeroWeights:
		return "sumByNonzeroWeights"
	case None:
		return "none"
	case Mean:
		return "mean"
	case Sum:
		return "sum"
	default:
		return "unknown"
	}
}

// Valid reports whether r is a known reduction mode.
func (r Reduction) Valid() bool {
	return r >= SumByNonzeroWeights && r <= Sum
}

// ParseReduction parses a reduction name. Matching ignores case and
// underscores, so "SUM_BY_NONZERO_WEIGHTS" and "sumByNonzeroWeights" are
// equivalent. The empty string selects the default.
func ParseReduction(name string) (Reduction, bool) {
	key := strings.ToLower(strings.ReplaceAll(name, "_", ""))
	switch key {
	case "", "sumbynonzeroweights":
		return SumByNonzeroWeights, true
	case "none":
		return None, true
	case "mean":
		return Mean, true
	case "sum":
		return Sum, true
	default:
		return 0, false
	}
}
