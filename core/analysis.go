package core

import (
	"math"
	"sort"

	"github.com/gpagano/graphpoint/core/eval"
	"github.com/gpagano/graphpoint/schema"
)

// derivativeStepFraction scales the finite-difference step used for
// the equation-mode slope estimate relative to the x range.
const derivativeStepFraction = 1e-6

// ComputeFromPoints analyzes a user-supplied dataset and produces the
// render-ready bundle for data mode: points sorted by x, the best-fit
// line when defined, the centroid, two randomly sampled points and the
// slope at the centroid.
//
// In data mode the slope at the centroid is the global regression
// slope. When the fit is undefined (fewer than two distinct x values)
// a windowed local fit around the centroid is attempted instead, and
// the slope is reported as unavailable if that also degenerates.
func ComputeFromPoints(ds schema.Dataset) (*schema.PointsResult, error) {
	if len(ds) == 0 {
		return nil, schema.NewInputError("please enter at least one (x, y) pair")
	}
	for i, p := range ds {
		if !schema.IsFinite(p) {
			return nil, schema.NewInputError("point %d is not a finite number: %v", i+1, p)
		}
	}

	points := make(schema.Dataset, len(ds))
	copy(points, ds)
	sort.Slice(points, func(i, j int) bool { return points[i].X < points[j].X })

	fit := fitLine(points)
	g := centroid(points)

	ann := schema.AnnotationSet{
		Centroid: g,
		Samples:  samplePoints(points, annotationSampleCount),
	}
	if fit.OK {
		ann.SlopeAtCentroid = fit.Slope
		ann.SlopeOK = true
	} else if m, ok := slopeAtPoint(points, g.X); ok {
		ann.SlopeAtCentroid = m
		ann.SlopeOK = true
	}

	return &schema.PointsResult{Points: points, Fit: fit, Annotations: ann}, nil
}

// ComputeFromEquation evaluates an expression in x over a uniform grid
// and produces the render-ready bundle for equation mode: the curve
// polyline, the centroid, two randomly sampled curve points and a
// local derivative estimate at the generated x nearest the centroid.
func ComputeFromEquation(spec schema.EquationSpec) (*schema.EquationResult, error) {
	if spec.Expr == "" {
		return nil, schema.NewInputError("please enter an equation for y in terms of x")
	}
	if spec.XMax <= spec.XMin {
		return nil, schema.NewInputError("x max must be greater than x min")
	}
	if spec.Samples < 2 {
		return nil, schema.NewInputError("sample count must be at least 2 (received %d)", spec.Samples)
	}

	prog, err := eval.Compile(spec.Expr)
	if err != nil {
		return nil, schema.NewEvalError(spec.Expr, "invalid expression: %v", err)
	}

	curve := make(schema.Dataset, 0, spec.Samples)
	for _, x := range linspace(spec.XMin, spec.XMax, spec.Samples) {
		y := prog.Eval(x)
		if math.IsNaN(y) || math.IsInf(y, 0) {
			return nil, schema.NewEvalError(spec.Expr, "result is not a real number at x=%g", x)
		}
		curve = append(curve, schema.Point{X: x, Y: y})
	}

	g := centroid(curve)
	ann := schema.AnnotationSet{
		Centroid: g,
		Samples:  samplePoints(curve, annotationSampleCount),
	}
	if m, ok := derivativeNear(prog, curve, g.X, spec.XMax-spec.XMin); ok {
		ann.SlopeAtCentroid = m
		ann.SlopeOK = true
	}

	return &schema.EquationResult{Expr: prog.Source(), Curve: curve, Annotations: ann}, nil
}

// derivativeNear estimates the expression's derivative by symmetric
// finite difference at the generated x nearest x0, with a step
// proportional to the sampled x range.
func derivativeNear(prog *eval.Program, curve schema.Dataset, x0, xRange float64) (float64, bool) {
	x := curve[nearestIndex(curve, x0)].X
	h := xRange * derivativeStepFraction
	m := (prog.Eval(x+h) - prog.Eval(x-h)) / (2 * h)
	if math.IsNaN(m) || math.IsInf(m, 0) {
		return 0, false
	}
	return m, true
}
