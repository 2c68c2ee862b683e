package contract

import (
	"fmt"
	"math"
	"os"

	"github.com/fatih/color"
)

// Slope steepness label constants.
const (
	SteepValue    = "Steep"    // |slope| >= 5
	ModerateValue = "Moderate" // |slope| >= 1
	GentleValue   = "Gentle"   // |slope| > 0.1
	FlatValue     = "Flat"     // everything else
	UnknownValue  = "n/a"      // slope estimate unavailable
)

// Color variables for console output.
var (
	SteepColor    = color.New(color.FgRed, color.Bold)     // steepColor flags rapidly changing curves.
	ModerateColor = color.New(color.FgMagenta, color.Bold) // moderateColor flags clearly sloped lines.
	GentleColor   = color.New(color.FgYellow)              // gentleColor flags mild trends.
	FlatColor     = color.New(color.FgCyan)                // flatColor flags near-horizontal lines.
)

// GetPlainLabel returns a plain text label classifying the slope at
// the centroid. This is the core logic used for JSON and table output.
func GetPlainLabel(slope float64, ok bool) string {
	if !ok || math.IsNaN(slope) {
		return UnknownValue
	}
	switch m := math.Abs(slope); {
	case m >= 5:
		return SteepValue
	case m >= 1:
		return ModerateValue
	case m > 0.1:
		return GentleValue
	default:
		return FlatValue
	}
}

// GetColorLabel returns a colored text label for console output.
// It uses GetPlainLabel to determine the string, and then applies the
// appropriate color.
func GetColorLabel(slope float64, ok bool) string {
	text := GetPlainLabel(slope, ok)

	switch text {
	case SteepValue:
		return SteepColor.Sprint(text)
	case ModerateValue:
		return ModerateColor.Sprint(text)
	case GentleValue:
		return GentleColor.Sprint(text)
	case FlatValue:
		return FlatColor.Sprint(text)
	default:
		return text
	}
}

// SelectOutputFile returns the appropriate file handle for output,
// based on the provided file path. An empty path means stdout.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Warning %s: %v\n", msg, err)
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "Warning %s\n", msg)
}
