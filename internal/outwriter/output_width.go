// Package outwriter has output and writer logic.
package outwriter

import (
	"os"

	"github.com/gpagano/graphpoint/internal/contract"
	"golang.org/x/term"
)

// GetMaxExprWidth calculates the maximum width for the expression
// column in table output based on terminal width and table
// configuration.
func GetMaxExprWidth(cfg *contract.Config) int {
	var termWidth int

	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 { // Not set by override
		// Get terminal width
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			// Fallback to conservative default if terminal size can't be detected
			termWidth = 80 // Conservative default for narrow terminals and CI
		} else {
			termWidth = detectedWidth
		}
	}

	// Reserve space for the fixed columns (G point, slope, label, fit)
	// plus table borders, separators and padding.
	available := termWidth - 60
	if available < 12 {
		// Minimum reasonable expression width
		return 12
	}
	if available > 60 {
		// Maximum expression width to prevent overly wide tables
		return 60
	}
	return available
}
