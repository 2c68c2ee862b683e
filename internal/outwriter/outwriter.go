// Package outwriter has output and writer logic.
package outwriter

import (
	"time"

	"github.com/gpagano/graphpoint/internal/contract"
	"github.com/gpagano/graphpoint/schema"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API
// for the core logic.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WritePoints prints a data-mode render bundle using the configured
// output format.
func (ow *OutWriter) WritePoints(result *schema.PointsResult, cfg *contract.Config, duration time.Duration) error {
	return PrintPointsResult(result, cfg, duration)
}

// WriteEquation prints an equation-mode render bundle using the
// configured output format.
func (ow *OutWriter) WriteEquation(result *schema.EquationResult, cfg *contract.Config, duration time.Duration) error {
	return PrintEquationResult(result, cfg, duration)
}
