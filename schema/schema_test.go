package schema

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestDatasetCoordinates checks that Xs and Ys split a dataset without
// disturbing order.
func TestDatasetCoordinates(t *testing.T) {
	ds := Dataset{{X: 1, Y: 4}, {X: 2, Y: 5}, {X: 3, Y: 6}}

	assert.Equal(t, []float64{1, 2, 3}, ds.Xs())
	assert.Equal(t, []float64{4, 5, 6}, ds.Ys())
}

// TestFitResultAt checks line evaluation.
func TestFitResultAt(t *testing.T) {
	fit := FitResult{Slope: 2, Intercept: -1, OK: true}

	assert.InDelta(t, 3.0, fit.At(2), 1e-12)
	assert.InDelta(t, -1.0, fit.At(0), 1e-12)
}

// TestErrorKinds ensures both error kinds unwrap through errors.As and
// carry displayable messages.
func TestErrorKinds(t *testing.T) {
	t.Run("input error", func(t *testing.T) {
		err := NewInputError("please enter at least one (x, y) pair")

		var ie *InputError
		assert.True(t, errors.As(err, &ie))
		assert.Equal(t, "please enter at least one (x, y) pair", err.Error())
	})

	t.Run("eval error", func(t *testing.T) {
		err := NewEvalError("sqrt(x)", "result is not a real number at x=%g", -1.0)

		var ee *EvalError
		assert.True(t, errors.As(err, &ee))
		assert.Contains(t, err.Error(), "sqrt(x)")
		assert.Contains(t, err.Error(), "x=-1")
	})

	t.Run("kinds are distinct", func(t *testing.T) {
		var ie *InputError
		var ee *EvalError
		assert.False(t, errors.As(NewInputError("bad"), &ee))
		assert.False(t, errors.As(NewEvalError("x", "bad"), &ie))
	})
}

// TestFormatPoint checks the coordinate label format.
func TestFormatPoint(t *testing.T) {
	tests := []struct {
		name     string
		point    Point
		digits   int
		expected string
	}{
		{name: "integers", point: Point{X: 1, Y: 2}, digits: 3, expected: "(1, 2)"},
		{name: "rounding", point: Point{X: 1.23456, Y: -0.98765}, digits: 3, expected: "(1.23, -0.988)"},
		{name: "negative zero range", point: Point{X: -2.5, Y: 6.25}, digits: 4, expected: "(-2.5, 6.25)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatPoint(tt.point, tt.digits))
		})
	}
}

// TestIsFinite checks finiteness classification of points.
func TestIsFinite(t *testing.T) {
	assert.True(t, IsFinite(Point{X: 0, Y: 0}))
	assert.False(t, IsFinite(Point{X: math.NaN(), Y: 0}))
	assert.False(t, IsFinite(Point{X: 0, Y: math.Inf(1)}))
	assert.False(t, IsFinite(Point{X: math.Inf(-1), Y: math.NaN()}))
}
