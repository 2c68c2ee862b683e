package core

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/gpagano/graphpoint/schema"
)

// slopeWindow is the number of neighbors on each side of the nearest
// point used by the windowed local fit in slopeAtPoint.
const slopeWindow = 3

// centroid returns the arithmetic mean coordinate of the dataset.
// The dataset must be non-empty.
func centroid(ds schema.Dataset) schema.Point {
	return schema.Point{
		X: stat.Mean(ds.Xs(), nil),
		Y: stat.Mean(ds.Ys(), nil),
	}
}

// fitLine computes the ordinary least-squares line y = slope*x +
// intercept. The fit is undefined when the dataset holds fewer than
// two distinct x values; OK is false in that case.
func fitLine(ds schema.Dataset) schema.FitResult {
	if !hasDistinctX(ds) {
		return schema.FitResult{}
	}
	intercept, slope := stat.LinearRegression(ds.Xs(), ds.Ys(), nil, false)
	return schema.FitResult{Slope: slope, Intercept: intercept, OK: true}
}

// hasDistinctX reports whether the dataset contains at least two
// distinct x values.
func hasDistinctX(ds schema.Dataset) bool {
	for i := 1; i < len(ds); i++ {
		if ds[i].X != ds[0].X {
			return true
		}
	}
	return false
}

// slopeAtPoint estimates dy/dx at x0 by fitting a local line over a
// window of points around the x nearest to x0. When the window holds
// fewer than two distinct x values it widens to the full dataset, and
// gives up when even that is degenerate.
func slopeAtPoint(ds schema.Dataset, x0 float64) (float64, bool) {
	if len(ds) < 2 {
		return 0, false
	}

	sorted := make(schema.Dataset, len(ds))
	copy(sorted, ds)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].X < sorted[j].X })

	idx := nearestIndex(sorted, x0)
	lo := max(0, idx-slopeWindow)
	hi := min(len(sorted), idx+slopeWindow+1)
	window := sorted[lo:hi]

	if !hasDistinctX(window) {
		if !hasDistinctX(sorted) {
			return 0, false
		}
		window = sorted
	}

	fit := fitLine(window)
	if !fit.OK || math.IsNaN(fit.Slope) || math.IsInf(fit.Slope, 0) {
		return 0, false
	}
	return fit.Slope, true
}

// nearestIndex returns the index of the point whose x is closest to x0.
func nearestIndex(ds schema.Dataset, x0 float64) int {
	best := 0
	bestDist := math.Abs(ds[0].X - x0)
	for i := 1; i < len(ds); i++ {
		if d := math.Abs(ds[i].X - x0); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

// linspace returns n evenly spaced values over [lo, hi] inclusive.
// n must be at least 2.
func linspace(lo, hi float64, n int) []float64 {
	step := (hi - lo) / float64(n-1)
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = lo + float64(i)*step
	}
	xs[n-1] = hi // avoid drift on the last sample
	return xs
}
