package outwriter

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gpagano/graphpoint/internal/contract"
	"github.com/gpagano/graphpoint/schema"
)

// maxTableRows caps the number of point rows rendered in the text
// table. Large curves are summarized; the full data is always
// available through the JSON output.
const maxTableRows = 25

// writeWithFile handles the common pattern of opening a file, writing
// to it, and cleaning up. It accepts a writer function that takes an
// io.Writer and returns an error.
func writeWithFile(outputFile string, writer func(io.Writer) error, successMsg string) error {
	file, err := contract.SelectOutputFile(outputFile)
	if err != nil {
		return err
	}
	// Only close if it's not stdout
	if file != os.Stdout {
		defer func() { _ = file.Close() }()
	}

	if err := writer(file); err != nil {
		return err
	}

	if file != os.Stdout {
		fmt.Fprintf(os.Stderr, "Wrote %s to %s\n", successMsg, outputFile)
	}
	return nil
}

// writeJSON is a generic JSON encoder that handles indentation consistently.
func writeJSON(w io.Writer, data any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// createFormatter creates the numeric formatter closure shared by the
// table writers. Precision counts significant digits, matching the
// coordinate labels drawn on a chart.
func createFormatter(precision int) func(float64) string {
	return func(v float64) string {
		return fmt.Sprintf("%.*g", precision, v)
	}
}

// formatFitLine renders a fit line as "y = m*x + b" for table output.
func formatFitLine(fit schema.FitResult, fmtFloat func(float64) string) string {
	if !fit.OK {
		return "undefined"
	}
	sign := "+"
	b := fit.Intercept
	if b < 0 {
		sign = "-"
		b = -b
	}
	return fmt.Sprintf("y = %s*x %s %s", fmtFloat(fit.Slope), sign, fmtFloat(b))
}

// formatSamples renders the sampled points with coordinate labels.
func formatSamples(samples []schema.Point, precision int) string {
	if len(samples) == 0 {
		return "none"
	}
	labels := make([]string, len(samples))
	for i, p := range samples {
		labels[i] = schema.FormatPoint(p, precision)
	}
	return strings.Join(labels, ", ")
}

// truncateExpr shortens a long expression for the table header.
func truncateExpr(expr string, maxWidth int) string {
	if len(expr) <= maxWidth {
		return expr
	}
	if maxWidth <= 3 {
		return expr[:maxWidth]
	}
	return expr[:maxWidth-3] + "..."
}
