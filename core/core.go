// Package core has core logic for dataset statistics, curve
// evaluation and chart annotation.
package core

import (
	"context"
	"time"

	"github.com/gpagano/graphpoint/internal/contract"
	"github.com/gpagano/graphpoint/internal/outwriter"
)

// ExecutorFunc defines the function signature for executing different draw modes.
type ExecutorFunc func(ctx context.Context, cfg *contract.Config) error

// ExecuteGraphPoints runs the data-mode analysis and prints the
// render bundle to stdout. It serves as the main entry point for the
// 'points' mode.
func ExecuteGraphPoints(_ context.Context, cfg *contract.Config) error {
	start := time.Now()
	result, err := ComputeFromPoints(cfg.Points)
	if err != nil {
		return err
	}
	duration := time.Since(start)
	return outwriter.NewOutWriter().WritePoints(result, cfg, duration)
}

// ExecuteGraphEquation runs the equation-mode analysis and prints the
// render bundle to stdout. It serves as the main entry point for the
// 'equation' mode.
func ExecuteGraphEquation(_ context.Context, cfg *contract.Config) error {
	start := time.Now()
	result, err := ComputeFromEquation(cfg.Equation)
	if err != nil {
		return err
	}
	duration := time.Since(start)
	return outwriter.NewOutWriter().WriteEquation(result, cfg, duration)
}
