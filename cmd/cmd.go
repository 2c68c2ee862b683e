// Package cmd defines the command-line interface for graphpoint.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/gpagano/graphpoint/internal/contract"
	"github.com/gpagano/graphpoint/schema"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(pointsCmd)
	rootCmd.AddCommand(equationCmd)
	rootCmd.AddCommand(versionCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Significant digits for numeric output (1-6)")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or json")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write JSON output to")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of pointsCmd to Viper
	pointsCmd.Flags().StringP("points", "p", "", "Whitespace-separated list of x,y pairs, e.g. '0,0 2,0 2,2 0,2'")
	if err := viper.BindPFlags(pointsCmd.Flags()); err != nil {
		contract.LogFatal("Error binding points flags", err)
	}

	// Bind all flags of equationCmd to Viper
	equationCmd.Flags().StringP("expr", "e", "", "Equation for y in terms of x, e.g. 'sin(x) + 0.5*x**2'")
	equationCmd.Flags().String("xmin", fmt.Sprintf("%g", contract.DefaultXMin), "Lower bound of the x range")
	equationCmd.Flags().String("xmax", fmt.Sprintf("%g", contract.DefaultXMax), "Upper bound of the x range")
	equationCmd.Flags().IntP("samples", "n", contract.DefaultSamples, "Number of uniformly spaced samples (>= 2)")
	if err := viper.BindPFlags(equationCmd.Flags()); err != nil {
		contract.LogFatal("Error binding equation flags", err)
	}
}
