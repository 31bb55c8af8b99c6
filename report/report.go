// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/numlab/expr"
	"github.com/katalvlaran/numlab/linsys"
	"github.com/katalvlaran/numlab/nlsys"
	"github.com/katalvlaran/numlab/quad"
	"github.com/katalvlaran/numlab/roots"
)

// MaxErrors is how many error-history entries Linear lists in full; longer
// histories show the head and the tail around an ellipsis.
const MaxErrors = 20

// Num formats v with up to 10 significant digits.
func Num(v float64) string { return strconv.FormatFloat(v, 'g', 10, 64) }

// Linear describes a Jacobi solve.
func Linear(res linsys.Result) string {
	var b strings.Builder
	b.WriteString("## Linear system (Jacobi)\n\n")
	b.WriteString("| | |\n|---|---|\n")
	fmt.Fprintf(&b, "| ‖A‖∞ | %s |\n", Num(res.Norm))
	fmt.Fprintf(&b, "| iterations | %d |\n", res.Iterations)
	fmt.Fprintf(&b, "| rows rearranged | %s |\n\n", yesNo(res.Rearranged))

	if len(res.Solution) > 0 {
		b.WriteString("**Solution**\n\n| i | xᵢ |\n|---|---|\n")
		for i, v := range res.Solution {
			fmt.Fprintf(&b, "| %d | %s |\n", i+1, Num(v))
		}
		b.WriteString("\n")
	}
	if len(res.Errors) > 0 {
		fmt.Fprintf(&b, "**Errors**: %s\n", joinErrors(res.Errors))
	}

	return b.String()
}

func joinErrors(errs []float64) string {
	parts := make([]string, 0, min(len(errs), MaxErrors+1))
	if len(errs) <= MaxErrors {
		for _, e := range errs {
			parts = append(parts, Num(e))
		}
	} else {
		half := MaxErrors / 2
		for _, e := range errs[:half] {
			parts = append(parts, Num(e))
		}
		parts = append(parts, "…")
		for _, e := range errs[len(errs)-half:] {
			parts = append(parts, Num(e))
		}
	}

	return strings.Join(parts, ", ")
}

// Root describes a single-variable root search.
func Root(method, equation string, a, b float64, res roots.Result) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "## Root (%s)\n\n", method)
	fmt.Fprintf(&sb, "Equation `%s` on [%s, %s]\n\n", expr.Display(equation), Num(a), Num(b))
	sb.WriteString("| | |\n|---|---|\n")
	fmt.Fprintf(&sb, "| x | %s |\n", Num(res.Root))
	fmt.Fprintf(&sb, "| f(x) | %s |\n", Num(res.FX))
	fmt.Fprintf(&sb, "| iterations | %d |\n", res.Iterations)
	if res.Warning != nil {
		fmt.Fprintf(&sb, "\n> ⚠️ %s\n", res.Warning)
	}

	return sb.String()
}

// System describes a Newton solve.
func System(system string, res nlsys.Result) string {
	var sb strings.Builder
	sb.WriteString("## Nonlinear system (Newton)\n\n")
	for i, eq := range expr.SplitSystem(system) {
		fmt.Fprintf(&sb, "%d. `%s`\n", i+1, expr.Display(eq))
	}
	sb.WriteString("\n| | |\n|---|---|\n")
	fmt.Fprintf(&sb, "| x | %s |\n", Num(res.X))
	fmt.Fprintf(&sb, "| y | %s |\n", Num(res.Y))
	fmt.Fprintf(&sb, "| f1(x, y) | %s |\n", Num(res.F1))
	fmt.Fprintf(&sb, "| f2(x, y) | %s |\n", Num(res.F2))
	fmt.Fprintf(&sb, "| iterations | %d |\n", res.Iterations)

	return sb.String()
}

// Integral describes a quadrature result.
func Integral(equation string, a, b float64, res quad.Result) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "## Integral (%s)\n\n", res.Method)
	fmt.Fprintf(&sb, "∫ `%s` dx over [%s, %s]\n\n", expr.Display(equation), Num(a), Num(b))
	sb.WriteString("| | |\n|---|---|\n")
	fmt.Fprintf(&sb, "| value | %s |\n", Num(res.Value))
	fmt.Fprintf(&sb, "| subdivisions | %d |\n", res.N)
	fmt.Fprintf(&sb, "| doublings | %d |\n", res.Doublings)
	fmt.Fprintf(&sb, "| Runge estimate | %s |\n", Num(res.Estimate))

	return sb.String()
}

// Failure describes an error outcome, keeping any partial iteration count.
func Failure(title string, iterations int, err error) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "## %s\n\n> ❌ %s\n", title, err)
	if iterations > 0 {
		fmt.Fprintf(&sb, "\nstopped after %d iterations\n", iterations)
	}

	return sb.String()
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}

	return "no"
}
