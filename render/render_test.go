package render_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gpagano/graphpoint/core"
	"github.com/gpagano/graphpoint/render"
	"github.com/gpagano/graphpoint/schema"
)

// TestPointsPlot renders a full data-mode bundle.
func TestPointsPlot(t *testing.T) {
	result, err := core.ComputeFromPoints(schema.Dataset{
		{X: -2, Y: 4}, {X: -1, Y: 1}, {X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 4},
	})
	require.NoError(t, err)

	p, err := render.PointsPlot(result, 3)
	require.NoError(t, err)
	require.NotNil(t, p)

	assert.Contains(t, p.Title.Text, "From x, y values")
	assert.Contains(t, p.Title.Text, "G=(0, 2)")
	assert.Equal(t, "x", p.X.Label.Text)
	assert.Equal(t, "y", p.Y.Label.Text)
}

// TestPointsPlotWithoutFit renders a bundle whose fit is undefined and
// expects no failure.
func TestPointsPlotWithoutFit(t *testing.T) {
	result, err := core.ComputeFromPoints(schema.Dataset{{X: 1, Y: 2}})
	require.NoError(t, err)
	require.False(t, result.Fit.OK)

	p, err := render.PointsPlot(result, 3)
	require.NoError(t, err)
	assert.NotNil(t, p)
}

// TestEquationPlot renders a full equation-mode bundle.
func TestEquationPlot(t *testing.T) {
	result, err := core.ComputeFromEquation(schema.EquationSpec{
		Expr: "sin(x)", XMin: -3, XMax: 3, Samples: 61,
	})
	require.NoError(t, err)

	p, err := render.EquationPlot(result, 3)
	require.NoError(t, err)
	require.NotNil(t, p)

	assert.Contains(t, p.Title.Text, "y = sin(x)")
	assert.Contains(t, p.Title.Text, "slope at G")
}
