package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/gpagano/graphpoint/internal/contract"
	"github.com/gpagano/graphpoint/internal/mcp"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the graphpoint MCP server",
	Long:  `Launch an MCP server that allows AI agents to compute chart annotation bundles via standard tools.`,
	PreRunE: func(_ *cobra.Command, _ []string) error {
		// The MCP tools carry their own dataset/expression arguments,
		// so only the display settings are validated here.
		if err := viper.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return err
			}
		}
		if err := viper.Unmarshal(input); err != nil {
			return err
		}
		return nil
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		baseCfg := &contract.Config{Precision: input.Precision}
		if baseCfg.Precision < 1 || baseCfg.Precision > contract.MaxPrecision {
			baseCfg.Precision = contract.DefaultPrecision
		}
		return mcp.StartMCPServer(rootCtx, baseCfg)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
