package eval

import "math"

// constants holds the named constants available to expressions.
var constants = map[string]float64{
	"pi": math.Pi,
	"e":  math.E,
}

// unaryFuncs is the allow-list of single-argument functions. Anything
// outside this table is rejected at compile time.
var unaryFuncs = map[string]func(float64) float64{
	"sin":   math.Sin,
	"cos":   math.Cos,
	"tan":   math.Tan,
	"asin":  math.Asin,
	"acos":  math.Acos,
	"atan":  math.Atan,
	"sinh":  math.Sinh,
	"cosh":  math.Cosh,
	"tanh":  math.Tanh,
	"exp":   math.Exp,
	"log":   math.Log,
	"log10": math.Log10,
	"sqrt":  math.Sqrt,
	"abs":   math.Abs,
	"floor": math.Floor,
	"ceil":  math.Ceil,
}

// binaryFuncs is the allow-list of two-argument functions.
var binaryFuncs = map[string]func(float64, float64) float64{
	"pow":   power,
	"atan2": math.Atan2,
}

// power applies real exponentiation. math.Pow already yields NaN for
// negative bases with non-integer exponents, which is the real
// arithmetic behavior callers detect per sample point.
func power(base, exp float64) float64 {
	return math.Pow(base, exp)
}
