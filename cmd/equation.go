package cmd

import (
	"github.com/spf13/cobra"

	"github.com/gpagano/graphpoint/core"
	"github.com/gpagano/graphpoint/internal/contract"
	"github.com/gpagano/graphpoint/schema"
)

// equationCmd performs equation-mode analysis on an expression in x.
var equationCmd = &cobra.Command{
	Use:   "equation",
	Short: "Annotate a chart built from an equation in x.",
	Long: `Evaluate an expression in x over a range and compute its render bundle.

The expression grammar covers numeric literals, x, the constants pi
and e, the operators + - * / and ^ (or **), parentheses and a fixed
set of functions: sin cos tan asin acos atan sinh cosh tanh exp log
log10 sqrt abs floor ceil pow atan2.

The bundle contains the evaluated curve, the centroid (G point), two
randomly sampled curve points, and a local finite-difference slope
estimate at the generated x nearest the centroid.

Examples:
  # A damped oscillation over the default range [-10, 10]
  graphpoint equation --expr "exp(-x)*sin(2*x)"

  # A parabola with an explicit range and sampling density
  graphpoint equation -e "0.5*x^2" --xmin -4 --xmax 4 -n 200

  # Full bundle as JSON for a chart surface to render
  graphpoint equation -e "sin(x)" --output json`,
	PreRunE: func(_ *cobra.Command, _ []string) error {
		return sharedSetup(schema.EquationMode)
	},
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteGraphEquation(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot run equation analysis", err)
		}
	},
}
