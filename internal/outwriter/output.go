package outwriter

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/gpagano/graphpoint/internal/contract"
	"github.com/gpagano/graphpoint/schema"
)

// PrintPointsResult outputs a data-mode render bundle as a formatted
// table or as JSON.
func PrintPointsResult(result *schema.PointsResult, cfg *contract.Config, duration time.Duration) error {
	if cfg.Output == schema.JSONOut {
		return printPointsJSON(result, cfg)
	}
	return printPointsTable(result, cfg, duration)
}

// PrintEquationResult outputs an equation-mode render bundle as a
// formatted table or as JSON.
func PrintEquationResult(result *schema.EquationResult, cfg *contract.Config, duration time.Duration) error {
	if cfg.Output == schema.JSONOut {
		return printEquationJSON(result, cfg)
	}
	return printEquationTable(result, cfg, duration)
}

// pointsJSONOutput represents the structure of the JSON data printed
// for data mode.
type pointsJSONOutput struct {
	Mode                 schema.Mode `json:"mode"`
	Label                string      `json:"label"`
	*schema.PointsResult             // Embeds Points, Fit, Annotations
}

// printPointsJSON handles opening the file and encoding the bundle.
func printPointsJSON(result *schema.PointsResult, cfg *contract.Config) error {
	output := pointsJSONOutput{
		Mode:         schema.PointsMode,
		Label:        contract.GetPlainLabel(result.Annotations.SlopeAtCentroid, result.Annotations.SlopeOK),
		PointsResult: result,
	}
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSON(w, output)
	}, "JSON")
}

// equationJSONOutput represents the structure of the JSON data printed
// for equation mode.
type equationJSONOutput struct {
	Mode                   schema.Mode `json:"mode"`
	Label                  string      `json:"label"`
	*schema.EquationResult             // Embeds Expr, Curve, Annotations
}

// printEquationJSON handles opening the file and encoding the bundle.
func printEquationJSON(result *schema.EquationResult, cfg *contract.Config) error {
	output := equationJSONOutput{
		Mode:           schema.EquationMode,
		Label:          contract.GetPlainLabel(result.Annotations.SlopeAtCentroid, result.Annotations.SlopeOK),
		EquationResult: result,
	}
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSON(w, output)
	}, "JSON")
}

// printPointsTable generates and prints the human-readable bundle for
// data mode: a one-row annotation summary followed by the point rows.
func printPointsTable(result *schema.PointsResult, cfg *contract.Config, duration time.Duration) error {
	fmtFloat := createFormatter(cfg.Precision)
	ann := result.Annotations

	fmt.Printf("From x, y values (%d points, %s)\n", len(result.Points), duration.Round(time.Microsecond))

	summary := tablewriter.NewWriter(os.Stdout)
	summary.Header([]string{"G Point", "Slope at G", "Label", "Best Fit", "Random Points"})
	row := []string{
		schema.FormatPoint(ann.Centroid, cfg.Precision),
		formatSlope(ann, fmtFloat),
		slopeLabel(ann, cfg),
		formatFitLine(result.Fit, fmtFloat),
		formatSamples(ann.Samples, cfg.Precision),
	}
	if err := summary.Bulk([][]string{row}); err != nil {
		return err
	}
	if err := summary.Render(); err != nil {
		return err
	}

	return printPointRows(result.Points, result.Fit, fmtFloat)
}

// printEquationTable generates and prints the human-readable bundle
// for equation mode.
func printEquationTable(result *schema.EquationResult, cfg *contract.Config, duration time.Duration) error {
	fmtFloat := createFormatter(cfg.Precision)
	ann := result.Annotations
	expr := truncateExpr(result.Expr, GetMaxExprWidth(cfg))

	fmt.Printf("y = %s (%d samples, %s)\n", expr, len(result.Curve), duration.Round(time.Microsecond))

	summary := tablewriter.NewWriter(os.Stdout)
	summary.Header([]string{"G Point", "Slope at G", "Label", "Random Points"})
	row := []string{
		schema.FormatPoint(ann.Centroid, cfg.Precision),
		formatSlope(ann, fmtFloat),
		slopeLabel(ann, cfg),
		formatSamples(ann.Samples, cfg.Precision),
	}
	if err := summary.Bulk([][]string{row}); err != nil {
		return err
	}
	if err := summary.Render(); err != nil {
		return err
	}

	return printPointRows(result.Curve, schema.FitResult{}, fmtFloat)
}

// printPointRows renders the per-point table, capped at maxTableRows.
// When a fit is defined, the fitted y accompanies each point.
func printPointRows(points schema.Dataset, fit schema.FitResult, fmtFloat func(float64) string) error {
	table := tablewriter.NewWriter(os.Stdout)

	headers := []string{"#", "X", "Y"}
	if fit.OK {
		headers = append(headers, "Fit Y")
	}
	table.Header(headers)

	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	shown := len(points)
	if shown > maxTableRows {
		shown = maxTableRows
	}

	var data [][]string
	for i, p := range points[:shown] {
		row := []string{
			strconv.Itoa(i + 1),
			fmtFloat(p.X),
			fmtFloat(p.Y),
		}
		if fit.OK {
			row = append(row, fmtFloat(fit.At(p.X)))
		}
		data = append(data, row)
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if shown < len(points) {
		fmt.Printf("... %d more points (use --output json for the full bundle)\n", len(points)-shown)
	}
	return nil
}

// formatSlope renders the slope estimate, or a dash when unavailable.
func formatSlope(ann schema.AnnotationSet, fmtFloat func(float64) string) string {
	if !ann.SlopeOK {
		return contract.UnknownValue
	}
	return fmtFloat(ann.SlopeAtCentroid)
}

// slopeLabel picks the colored or plain steepness label per config.
func slopeLabel(ann schema.AnnotationSet, cfg *contract.Config) string {
	if cfg.Color {
		return contract.GetColorLabel(ann.SlopeAtCentroid, ann.SlopeOK)
	}
	return contract.GetPlainLabel(ann.SlopeAtCentroid, ann.SlopeOK)
}
