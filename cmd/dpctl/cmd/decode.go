package cmd

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/danmuck/dpctl/internal/datapoint"
)

// decodeCmd represents the decode command
var decodeCmd = &cobra.Command{
	Use:   "decode [hex]",
	Short: "Decode one frame into its datapoint",
	Long: `Decode one frame under the selected framing version.

Frame bytes come from the hex argument, from --in, or from stdin.

Example:
  dpctl decode --version 1 "05 10 01 00 00 00"`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := readFrameInput(cmd, args)
		if err != nil {
			return err
		}

		r := bytes.NewReader(data)
		dp, err := datapoint.Decode(r, framingVersion())
		if err != nil {
			return err
		}
		if r.Len() > 0 {
			log.Warn().Int("bytes", r.Len()).Msg("trailing bytes after the frame")
		}
		fmt.Fprintf(cmd.OutOrStdout(), "layout=%s tag=%v %s\n",
			framingVersion(), dp.Tag(), describeDatapoint(dp))
		return nil
	},
}

func init() {
	decodeCmd.Flags().String("in", "", "Read frame bytes from this file")
	rootCmd.AddCommand(decodeCmd)
}

// readFrameInput resolves frame bytes from the hex argument, --in, or stdin.
func readFrameInput(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) == 1 {
		return parseHexBytes(args[0])
	}
	if path, _ := cmd.Flags().GetString("in"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read frame input: %w", err)
		}
		return data, nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	return data, nil
}
