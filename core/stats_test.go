package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"

	"github.com/gpagano/graphpoint/schema"
)

// TestCentroid checks the mean coordinate against hand-computed values.
func TestCentroid(t *testing.T) {
	tests := []struct {
		name     string
		points   schema.Dataset
		expected schema.Point
	}{
		{
			name:     "unit square",
			points:   schema.Dataset{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 2}, {X: 0, Y: 2}},
			expected: schema.Point{X: 1, Y: 1},
		},
		{
			name:     "single point",
			points:   schema.Dataset{{X: 3, Y: -4}},
			expected: schema.Point{X: 3, Y: -4},
		},
		{
			name:     "negative coordinates",
			points:   schema.Dataset{{X: -3, Y: -1}, {X: 1, Y: 5}},
			expected: schema.Point{X: -1, Y: 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := centroid(tt.points)
			assert.InDelta(t, tt.expected.X, g.X, 1e-12)
			assert.InDelta(t, tt.expected.Y, g.Y, 1e-12)
		})
	}
}

// TestFitLine verifies the closed-form least-squares identities:
// slope = Cov(x,y)/Var(x) and intercept = mean(y) - slope*mean(x).
func TestFitLine(t *testing.T) {
	points := schema.Dataset{
		{X: 0, Y: 1.1}, {X: 1, Y: 2.9}, {X: 2, Y: 5.2},
		{X: 3, Y: 6.8}, {X: 4, Y: 9.1},
	}

	fit := fitLine(points)
	require.True(t, fit.OK)

	xs, ys := points.Xs(), points.Ys()
	wantSlope := stat.Covariance(xs, ys, nil) / stat.Variance(xs, nil)
	wantIntercept := stat.Mean(ys, nil) - wantSlope*stat.Mean(xs, nil)

	assert.InDelta(t, wantSlope, fit.Slope, 1e-9)
	assert.InDelta(t, wantIntercept, fit.Intercept, 1e-9)
}

// TestFitLineExact checks an exactly linear dataset.
func TestFitLineExact(t *testing.T) {
	points := schema.Dataset{{X: -1, Y: -2}, {X: 0, Y: 1}, {X: 1, Y: 4}}

	fit := fitLine(points)
	require.True(t, fit.OK)
	assert.InDelta(t, 3.0, fit.Slope, 1e-12)
	assert.InDelta(t, 1.0, fit.Intercept, 1e-12)
	assert.InDelta(t, 7.0, fit.At(2), 1e-12)
}

// TestFitLineDegenerate confirms the fit is undefined without two
// distinct x values.
func TestFitLineDegenerate(t *testing.T) {
	tests := []struct {
		name   string
		points schema.Dataset
	}{
		{name: "empty", points: schema.Dataset{}},
		{name: "single point", points: schema.Dataset{{X: 1, Y: 1}}},
		{name: "vertical stack", points: schema.Dataset{{X: 2, Y: 0}, {X: 2, Y: 5}, {X: 2, Y: -1}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fit := fitLine(tt.points)
			assert.False(t, fit.OK)
			assert.Zero(t, fit.Slope)
			assert.Zero(t, fit.Intercept)
		})
	}
}

// TestSlopeAtPoint checks the windowed local fit near a target x.
func TestSlopeAtPoint(t *testing.T) {
	t.Run("linear data recovers global slope", func(t *testing.T) {
		var points schema.Dataset
		for i := range 11 {
			x := float64(i)
			points = append(points, schema.Point{X: x, Y: 2*x - 3})
		}

		m, ok := slopeAtPoint(points, 5)
		require.True(t, ok)
		assert.InDelta(t, 2.0, m, 1e-9)
	})

	t.Run("quadratic data gives local slope", func(t *testing.T) {
		// y = x^2 sampled at unit spacing; the symmetric window around
		// x=5 fits a secant slope of 2*x0 exactly.
		var points schema.Dataset
		for i := range 11 {
			x := float64(i)
			points = append(points, schema.Point{X: x, Y: x * x})
		}

		m, ok := slopeAtPoint(points, 5)
		require.True(t, ok)
		assert.InDelta(t, 10.0, m, 1e-9)
	})

	t.Run("degenerate x values give no slope", func(t *testing.T) {
		points := schema.Dataset{{X: 1, Y: 0}, {X: 1, Y: 2}, {X: 1, Y: 4}}
		_, ok := slopeAtPoint(points, 1)
		assert.False(t, ok)
	})

	t.Run("fewer than two points give no slope", func(t *testing.T) {
		_, ok := slopeAtPoint(schema.Dataset{{X: 1, Y: 1}}, 1)
		assert.False(t, ok)
	})
}

// TestLinspace checks endpoint inclusion and spacing.
func TestLinspace(t *testing.T) {
	t.Run("three samples", func(t *testing.T) {
		xs := linspace(-1, 1, 3)
		assert.Equal(t, []float64{-1, 0, 1}, xs)
	})

	t.Run("endpoints are exact", func(t *testing.T) {
		xs := linspace(0, 0.3, 7)
		assert.Equal(t, 0.0, xs[0])
		assert.Equal(t, 0.3, xs[len(xs)-1])
		assert.Len(t, xs, 7)
	})

	t.Run("two samples are the endpoints", func(t *testing.T) {
		assert.Equal(t, []float64{2, 5}, linspace(2, 5, 2))
	})
}

// TestNearestIndex checks nearest-x lookup.
func TestNearestIndex(t *testing.T) {
	points := schema.Dataset{{X: -2}, {X: 0}, {X: 1}, {X: 4}}

	assert.Equal(t, 1, nearestIndex(points, 0.4))
	assert.Equal(t, 2, nearestIndex(points, 0.6))
	assert.Equal(t, 0, nearestIndex(points, -100))
	assert.Equal(t, 3, nearestIndex(points, 100))
}
