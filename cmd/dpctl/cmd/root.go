package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/danmuck/dpctl/internal/datapoint"
	"github.com/danmuck/dpctl/internal/logging"
)

// toolCfg is the effective configuration for the running command:
// defaults, then config file keys, then flags.
var toolCfg = defaultToolConfig()

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "dpctl",
	Short: "dpctl encodes, decodes and inspects datapoint frames",
	Long: `dpctl works with datapoint frames: self-describing tagged values
whose header layout follows the selected framing version.

Framing versions:
  0   default   [tag:1][payload]
  1   simple    [length:1][tag:1][payload]
  2+  extended  [tag:2][payload]`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logging.ConfigureRuntime()

		cfg := defaultToolConfig()
		if path, _ := cmd.Flags().GetString("config"); path != "" {
			loaded, err := loadToolConfig(path)
			if err != nil {
				return err
			}
			cfg = loaded
		}
		if cmd.Flags().Changed("version") {
			cfg.Version, _ = cmd.Flags().GetInt("version")
		}
		if cmd.Flags().Changed("output") {
			cfg.Output, _ = cmd.Flags().GetString("output")
		}
		if err := validateToolConfig(cfg); err != nil {
			return err
		}
		toolCfg = cfg
		return nil
	},
}

// Execute runs the root command. Called once from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to a dpctl TOML config file")
	rootCmd.PersistentFlags().IntP("version", "v", 0, "Framing version (0 default, 1 simple, >=2 extended)")
	rootCmd.PersistentFlags().StringP("output", "o", outputHex, "Frame output format: hex or raw")
}

// framingVersion resolves the effective framing version for this run.
func framingVersion() datapoint.Version {
	return datapoint.Version(toolCfg.Version)
}
