package stream

import (
	"bufio"
	"errors"
	"io"

	"github.com/rs/zerolog"

	"github.com/danmuck/dpctl/internal/datapoint"
	"github.com/danmuck/dpctl/internal/observability"
)

// ScannerConfig configures a frame stream scanner.
type ScannerConfig struct {
	// Version selects the framing every frame is decoded under.
	Version datapoint.Version
	// SkipUnknown discards unknown-tag frames instead of stopping the
	// scan. Only length-prefixed framing carries enough information to
	// find the next frame; under other framing an unknown tag still
	// stops the scan.
	SkipUnknown bool
	// Logger receives per-frame debug events. Nil stays silent.
	Logger *zerolog.Logger
}

// Scanner iterates the datapoint frames of a stream in order. It follows
// the bufio.Scanner shape: Scan advances, Datapoint returns the current
// value, Err reports what stopped the scan once Scan returns false.
type Scanner struct {
	r       *bufio.Reader
	version datapoint.Version
	skip    bool
	logger  zerolog.Logger
	current datapoint.Datapoint
	err     error
	frames  int64
	skipped int64
	done    bool
}

func NewScanner(r io.Reader, cfg ScannerConfig) *Scanner {
	logger := zerolog.Nop()
	if cfg.Logger != nil {
		logger = *cfg.Logger
	}
	return &Scanner{
		r:       bufio.NewReader(r),
		version: cfg.Version,
		skip:    cfg.SkipUnknown,
		logger:  logger,
	}
}

// Scan advances to the next decodable frame. It returns false at the end
// of the stream or on the first error; Err distinguishes the two.
func (s *Scanner) Scan() bool {
	if s.done {
		return false
	}
	for {
		dp, err := datapoint.Decode(s.r, s.version)
		if err == nil {
			s.current = dp
			s.frames++
			observability.RecordFrameRead(s.version.String())
			return true
		}
		if errors.Is(err, io.EOF) {
			s.done = true
			return false
		}

		var unknown datapoint.UnknownTagError
		if s.skip && errors.As(err, &unknown) && unknown.Remaining >= 0 {
			if _, derr := io.CopyN(io.Discard, s.r, int64(unknown.Remaining)); derr != nil {
				s.fail(datapoint.ErrTruncated)
				return false
			}
			s.skipped++
			observability.RecordFrameSkipped(s.version.String())
			s.logger.Debug().
				Stringer("tag", unknown.Tag).
				Int("payload_bytes", unknown.Remaining).
				Msg("unknown frame skipped")
			continue
		}

		observability.RecordDecodeError(s.version.String(), errorKind(err))
		s.fail(err)
		return false
	}
}

// Datapoint returns the value produced by the last successful Scan.
func (s *Scanner) Datapoint() datapoint.Datapoint { return s.current }

// Err returns the error that stopped the scan, or nil after a clean end
// of stream.
func (s *Scanner) Err() error { return s.err }

// Frames reports the number of frames decoded so far.
func (s *Scanner) Frames() int64 { return s.frames }

// Skipped reports the number of unknown-tag frames discarded so far.
func (s *Scanner) Skipped() int64 { return s.skipped }

func (s *Scanner) fail(err error) {
	s.err = err
	s.done = true
}

// errorKind labels a decode failure for metrics.
func errorKind(err error) string {
	var unknown datapoint.UnknownTagError
	switch {
	case errors.As(err, &unknown):
		return "unknown_tag"
	case errors.Is(err, datapoint.ErrLengthMismatch):
		return "length_mismatch"
	case errors.Is(err, datapoint.ErrTruncated):
		return "truncated"
	default:
		return "io"
	}
}
