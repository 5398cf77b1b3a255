package observability

import (
	"testing"

	"github.com/rs/zerolog/log"
)

func TestRegisterMetricsAndRecordersAreSafe(t *testing.T) {
	RegisterMetrics()
	RegisterMetrics()

	RecordFrameWritten("simple", 3)
	RecordFrameRead("simple")
	RecordFrameSkipped("simple")
	RecordDecodeError("extended", "unknown_tag")

	log.Debug().Msg("observability/metrics: registration idempotent and recording paths executed")
}
