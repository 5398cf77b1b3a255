package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/danmuck/dpctl/internal/datapoint"
)

// encodeCmd represents the encode command
var encodeCmd = &cobra.Command{
	Use:   "encode <kind> <value>",
	Short: "Encode one datapoint into a frame",
	Long: `Encode one datapoint into a frame under the selected framing version.

Kinds: counter32, flag8, level16, uptime64, delta32.
Values accept decimal or 0x-prefixed hex.

Example:
  dpctl encode --version 1 flag8 255`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		dp, err := parseDatapoint(args[0], args[1])
		if err != nil {
			return err
		}
		frame, err := datapoint.Marshal(dp, framingVersion())
		if err != nil {
			return err
		}

		if path, _ := cmd.Flags().GetString("out"); path != "" {
			if err := os.WriteFile(path, frame, 0o644); err != nil {
				return fmt.Errorf("write frame: %w", err)
			}
			log.Info().Str("path", path).Int("bytes", len(frame)).Msg("frame written")
			return nil
		}
		if toolCfg.Output == outputRaw {
			_, err := cmd.OutOrStdout().Write(frame)
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), formatHex(frame))
		return nil
	},
}

func init() {
	encodeCmd.Flags().String("out", "", "Write raw frame bytes to this file")
	rootCmd.AddCommand(encodeCmd)
}
