package cmd

import (
	"github.com/spf13/cobra"

	"github.com/gpagano/graphpoint/core"
	"github.com/gpagano/graphpoint/internal/contract"
	"github.com/gpagano/graphpoint/schema"
)

// pointsCmd performs data-mode analysis on user-entered (x, y) rows.
var pointsCmd = &cobra.Command{
	Use:   "points",
	Short: "Annotate a chart built from (x, y) data points.",
	Long: `Compute the render bundle for a set of (x, y) points.

The bundle contains the points sorted by x, the ordinary least-squares
best-fit line when at least two distinct x values exist, the centroid
(G point), two randomly sampled points with distinct indices, and the
slope at the centroid (the regression slope in this mode).

Examples:
  # Corners of a square; centroid lands at (1, 1)
  graphpoint points --points "0,0 2,0 2,2 0,2"

  # Full bundle as JSON for a chart surface to render
  graphpoint points -p "0,1 1,3 2,5" --output json

  # Write the bundle to a file
  graphpoint points -p "0,1 1,3 2,5" --output json --output-file bundle.json`,
	PreRunE: func(_ *cobra.Command, _ []string) error {
		return sharedSetup(schema.PointsMode)
	},
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteGraphPoints(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot run points analysis", err)
		}
	},
}
