package cmd

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/danmuck/dpctl/internal/datapoint"
)

// inspectCmd represents the inspect command
var inspectCmd = &cobra.Command{
	Use:   "inspect [hex]",
	Short: "Show a frame header without decoding the payload",
	Long: `Show how the selected framing version reads a frame header.

Frame bytes come from the hex argument, from --in, or from stdin.

Example:
  dpctl inspect --version 2 "10 03 fe ff ff ff"`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := readFrameInput(cmd, args)
		if err != nil {
			return err
		}

		v := framingVersion()
		h, err := datapoint.ReadHeader(bytes.NewReader(data), v)
		if err != nil {
			return err
		}

		declared := "none"
		if h.HasLength {
			declared = strconv.Itoa(int(h.Length))
		}
		payload := "unknown"
		if size, ok := datapoint.PayloadSize(h.Tag); ok {
			payload = strconv.Itoa(size)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "layout=%s tag_width=%d declared_length=%s tag=%v payload_bytes=%s\n",
			v, v.TagWidth(), declared, h.Tag, payload)
		return nil
	},
}

func init() {
	inspectCmd.Flags().String("in", "", "Read frame bytes from this file")
	rootCmd.AddCommand(inspectCmd)
}
