package schema

// Mode selects which input panel drives a draw request.
type Mode string

// Draw modes.
const (
	PointsMode   Mode = "points"   // user-entered (x, y) rows
	EquationMode Mode = "equation" // expression in x over a range
)

// OutputFormat selects how results are written.
type OutputFormat string

// Output formats.
const (
	TextOut OutputFormat = "text"
	JSONOut OutputFormat = "json"
)
