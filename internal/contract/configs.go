package contract

import (
	"strconv"
	"strings"

	"github.com/gpagano/graphpoint/schema"
)

// Default values for configuration.
const (
	DefaultSamples   = 400
	DefaultXMin      = -10.0
	DefaultXMax      = 10.0
	DefaultPrecision = 3
	MaxPrecision     = 6
	MaxSamples       = 100000
)

// Config holds the validated runtime configuration for one draw
// request. It is the explicit request object handed to the engine;
// nothing about the current inputs lives in package-level state.
type Config struct {
	Mode       schema.Mode         // Active input mode (points or equation)
	Points     schema.Dataset      // Parsed dataset (points mode)
	Equation   schema.EquationSpec // Expression and sampling range (equation mode)
	Precision  int                 // Significant digits for numeric output (1..6)
	Output     schema.OutputFormat // Output format: "text" (default) or "json"
	OutputFile string              // Optional path to write JSON output directly
	Width      int                 // Terminal width override (0 = auto-detect)
	Color      bool                // Enable colored labels in table output
}

// Clone returns a copy of the config so per-request overrides do not
// leak into the base configuration.
func (c *Config) Clone() *Config {
	clone := *c
	clone.Points = append(schema.Dataset(nil), c.Points...)
	return &clone
}

// ConfigRawInput holds the raw string inputs from flags, env and the
// config file that require parsing or validation. Fields are bound to
// Cobra's flags and unmarshalled by Viper.
type ConfigRawInput struct {
	PointsStr  string `mapstructure:"points"`
	Expr       string `mapstructure:"expr"`
	XMinStr    string `mapstructure:"xmin"`
	XMaxStr    string `mapstructure:"xmax"`
	Samples    int    `mapstructure:"samples"`
	Precision  int    `mapstructure:"precision"`
	Output     string `mapstructure:"output"`
	OutputFile string `mapstructure:"output-file"`
	Width      int    `mapstructure:"width"`
	Color      string `mapstructure:"color"`
}

// ProcessAndValidate performs all parsing and validation on the raw
// inputs and populates the final Config for the given draw mode.
// Validation failures are InputErrors with user-displayable messages.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput, mode schema.Mode) error {
	cfg.Mode = mode

	if err := validateOutputInputs(cfg, input); err != nil {
		return err
	}

	switch mode {
	case schema.PointsMode:
		return processPointsMode(cfg, input)
	case schema.EquationMode:
		return processEquationMode(cfg, input)
	default:
		return schema.NewInputError("unknown mode %q", mode)
	}
}

// validateOutputInputs handles the mode-independent display settings.
func validateOutputInputs(cfg *Config, input *ConfigRawInput) error {
	if input.Precision < 1 || input.Precision > MaxPrecision {
		return schema.NewInputError("precision must be between 1 and %d (received %d)", MaxPrecision, input.Precision)
	}
	cfg.Precision = input.Precision

	cfg.Output = schema.OutputFormat(strings.ToLower(input.Output))
	if cfg.Output != schema.TextOut && cfg.Output != schema.JSONOut {
		return schema.NewInputError("invalid output format %q. must be text or json", input.Output)
	}
	cfg.OutputFile = input.OutputFile

	if input.Width < 0 {
		return schema.NewInputError("width cannot be negative (received %d)", input.Width)
	}
	cfg.Width = input.Width

	switch strings.ToLower(input.Color) {
	case "yes", "true", "1", "":
		cfg.Color = true
	case "no", "false", "0":
		cfg.Color = false
	default:
		return schema.NewInputError("invalid color setting %q. use yes or no", input.Color)
	}
	return nil
}

// processPointsMode parses the dataset rows for data mode.
func processPointsMode(cfg *Config, input *ConfigRawInput) error {
	ds, err := ParsePoints(input.PointsStr)
	if err != nil {
		return err
	}
	if len(ds) == 0 {
		return schema.NewInputError("please enter at least one (x, y) pair")
	}
	cfg.Points = ds
	return nil
}

// processEquationMode parses the expression range for equation mode.
func processEquationMode(cfg *Config, input *ConfigRawInput) error {
	expr := strings.TrimSpace(input.Expr)
	if expr == "" {
		return schema.NewInputError("please enter an equation for y in terms of x")
	}

	xmin, errMin := strconv.ParseFloat(strings.TrimSpace(input.XMinStr), 64)
	xmax, errMax := strconv.ParseFloat(strings.TrimSpace(input.XMaxStr), 64)
	if errMin != nil || errMax != nil {
		return schema.NewInputError("x-range must be numeric (received xmin=%q, xmax=%q)", input.XMinStr, input.XMaxStr)
	}
	if xmax <= xmin {
		return schema.NewInputError("x max must be greater than x min")
	}
	if input.Samples < 2 {
		return schema.NewInputError("sample count must be at least 2 (received %d)", input.Samples)
	}
	if input.Samples > MaxSamples {
		return schema.NewInputError("sample count cannot exceed %d (received %d)", MaxSamples, input.Samples)
	}

	cfg.Equation = schema.EquationSpec{Expr: expr, XMin: xmin, XMax: xmax, Samples: input.Samples}
	return nil
}

// ParsePoints parses a whitespace- or semicolon-separated list of
// "x,y" pairs, e.g. "0,0 2,0 2,2 0,2". A space after the comma is
// tolerated ("1, 2; 3, 4"), and blank entries are skipped the way
// blank table rows are.
func ParsePoints(s string) (schema.Dataset, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == '\t' || r == '\n' || r == ';'
	})

	// Rejoin pairs that were split by a space after the comma.
	pairs := make([]string, 0, len(fields))
	for i := 0; i < len(fields); i++ {
		f := fields[i]
		if strings.HasSuffix(f, ",") && i+1 < len(fields) {
			f += fields[i+1]
			i++
		}
		pairs = append(pairs, f)
	}

	ds := make(schema.Dataset, 0, len(pairs))
	for _, pair := range pairs {
		parts := strings.Split(pair, ",")
		if len(parts) != 2 {
			return nil, schema.NewInputError("each row must have both x and y values (received %q)", pair)
		}
		x, errX := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
		y, errY := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if errX != nil || errY != nil {
			return nil, schema.NewInputError("invalid number: x=%q, y=%q", strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]))
		}
		ds = append(ds, schema.Point{X: x, Y: y})
	}
	return ds, nil
}
