package schema

import (
	"fmt"
	"math"
)

// FormatPoint renders a point as "(x, y)" using %g with the given
// significant-digit precision, matching the coordinate labels drawn
// next to sampled points on the chart.
func FormatPoint(p Point, digits int) string {
	return fmt.Sprintf("(%.*g, %.*g)", digits, p.X, digits, p.Y)
}

// IsFinite reports whether both coordinates of a point are finite.
func IsFinite(p Point) bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) &&
		!math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}
