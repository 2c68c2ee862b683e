// Package schema has models, errors and shared helpers for all parts of graphpoint.
package schema

// Point represents a single (x, y) coordinate pair.
// Points are value types with no identity beyond their coordinates.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Dataset is an ordered sequence of points supplied by the caller.
// Order matters only for display; the statistics computed from a
// dataset do not depend on it.
type Dataset []Point

// Xs returns the x coordinates of the dataset as a new slice.
func (ds Dataset) Xs() []float64 {
	xs := make([]float64, len(ds))
	for i, p := range ds {
		xs[i] = p.X
	}
	return xs
}

// Ys returns the y coordinates of the dataset as a new slice.
func (ds Dataset) Ys() []float64 {
	ys := make([]float64, len(ds))
	for i, p := range ds {
		ys[i] = p.Y
	}
	return ys
}

// EquationSpec describes an expression in the free variable x, to be
// sampled over [XMin, XMax] at Samples uniformly spaced positions.
type EquationSpec struct {
	Expr    string  `json:"expr"`
	XMin    float64 `json:"x_min"`
	XMax    float64 `json:"x_max"`
	Samples int     `json:"samples"`
}

// FitResult describes the best-fit line y = Slope*x + Intercept for a
// dataset. OK is false when the fit is undefined (fewer than two
// distinct x values), in which case Slope and Intercept are zero.
type FitResult struct {
	Slope     float64 `json:"slope"`
	Intercept float64 `json:"intercept"`
	OK        bool    `json:"ok"`
}

// At evaluates the fit line at the given x.
func (f FitResult) At(x float64) float64 {
	return f.Slope*x + f.Intercept
}

// AnnotationSet holds the chart annotations computed for one draw
// request: the centroid ("G point"), up to two randomly sampled points
// with distinct original indices, and an estimate of the slope at the
// centroid. SlopeOK is false when no slope estimate was possible.
type AnnotationSet struct {
	Centroid        Point   `json:"centroid"`
	Samples         []Point `json:"samples"`
	SlopeAtCentroid float64 `json:"slope_at_centroid"`
	SlopeOK         bool    `json:"slope_ok"`
}

// PointsResult is the render-ready bundle for data mode: the points to
// scatter (sorted by x for a sensible display path), the optional best
// fit line and the annotation set.
type PointsResult struct {
	Points      Dataset       `json:"points"`
	Fit         FitResult     `json:"fit"`
	Annotations AnnotationSet `json:"annotations"`
}

// EquationResult is the render-ready bundle for equation mode: the
// evaluated curve polyline and the annotation set. The slope estimate
// here is a local finite-difference derivative, not a regression
// slope; the two quantities share a display label but are distinct.
type EquationResult struct {
	Expr        string        `json:"expr"`
	Curve       Dataset       `json:"curve"`
	Annotations AnnotationSet `json:"annotations"`
}
