package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/danmuck/dpctl/internal/datapoint/stream"
)

// catCmd represents the cat command
var catCmd = &cobra.Command{
	Use:   "cat <file>",
	Short: "Print every datapoint in a frame stream",
	Long: `Scan a frame stream file and print one line per datapoint.

Example:
  dpctl cat --version 1 --skip-unknown samples.bin`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		skip := toolCfg.SkipUnknown
		if cmd.Flags().Changed("skip-unknown") {
			skip, _ = cmd.Flags().GetBool("skip-unknown")
		}

		logger := log.Logger
		sc := stream.NewScanner(f, stream.ScannerConfig{
			Version:     framingVersion(),
			SkipUnknown: skip,
			Logger:      &logger,
		})
		for sc.Scan() {
			fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\n", sc.Frames()-1, describeDatapoint(sc.Datapoint()))
		}
		if err := sc.Err(); err != nil {
			return err
		}
		if sc.Skipped() > 0 {
			log.Info().Int64("frames", sc.Skipped()).Msg("unknown frames skipped")
		}
		return nil
	},
}

func init() {
	catCmd.Flags().Bool("skip-unknown", false, "Skip unknown-tag frames (needs length-prefixed framing)")
	rootCmd.AddCommand(catCmd)
}
