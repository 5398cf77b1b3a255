package cmd

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/danmuck/dpctl/internal/datapoint"
	"github.com/danmuck/dpctl/internal/datapoint/stream"
)

// genCmd represents the gen command
var genCmd = &cobra.Command{
	Use:   "gen <file>",
	Short: "Write a sample datapoint stream",
	Long: `Write a stream of sample datapoints, deterministic for a given seed.

Example:
  dpctl gen --version 1 --count 100 samples.bin`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		count, _ := cmd.Flags().GetInt("count")
		seed, _ := cmd.Flags().GetInt64("seed")
		if count < 0 {
			return fmt.Errorf("count %d must not be negative", count)
		}

		f, err := os.Create(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		logger := log.Logger
		w := stream.NewWriter(f, stream.WriterConfig{
			Version:    framingVersion(),
			BufferSize: toolCfg.BufferSize,
			Logger:     &logger,
		})
		rng := rand.New(rand.NewSource(seed))
		for i := 0; i < count; i++ {
			if _, err := w.Append(sampleDatapoint(rng, framingVersion())); err != nil {
				return err
			}
		}
		if err := w.Flush(); err != nil {
			return err
		}
		log.Info().Int("frames", count).Int64("bytes", w.Offset()).Str("path", args[0]).Msg("stream written")
		return nil
	},
}

func init() {
	genCmd.Flags().Int("count", 16, "Number of datapoints to write")
	genCmd.Flags().Int64("seed", 1, "Seed for the sample value sequence")
	rootCmd.AddCommand(genCmd)
}

// sampleDatapoint draws one catalog value. Wide-tag kinds only appear
// when the framing can carry their tags.
func sampleDatapoint(rng *rand.Rand, v datapoint.Version) datapoint.Datapoint {
	kinds := 4
	if v.TagWidth() == 2 {
		kinds = 5
	}
	switch rng.Intn(kinds) {
	case 0:
		return datapoint.Counter32(rng.Uint32())
	case 1:
		return datapoint.Flag8(uint8(rng.Intn(256)))
	case 2:
		return datapoint.Level16(uint16(rng.Intn(65536)))
	case 3:
		return datapoint.Uptime64(rng.Uint64())
	default:
		return datapoint.Delta32(int32(rng.Uint32()))
	}
}
