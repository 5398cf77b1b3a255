package stream

import (
	"bytes"
	"errors"
	"testing"

	"github.com/danmuck/dpctl/internal/datapoint"
	"github.com/danmuck/dpctl/internal/testutil/testlog"
)

func TestWriteThenScanRoundTrip(t *testing.T) {
	testlog.Start(t)

	values := []datapoint.Datapoint{
		datapoint.Counter32(1234),
		datapoint.Flag8(255),
		datapoint.Level16(512),
		datapoint.Uptime64(86_400_000),
	}
	versions := []datapoint.Version{
		datapoint.VersionDefault,
		datapoint.VersionSimple,
		datapoint.VersionExtended,
	}
	for _, version := range versions {
		var sink bytes.Buffer
		w := NewWriter(&sink, WriterConfig{Version: version})

		offsets := make([]int64, 0, len(values))
		for _, dp := range values {
			at, err := w.Append(dp)
			if err != nil {
				t.Fatalf("append under %s: %v", version, err)
			}
			offsets = append(offsets, at)
		}
		if err := w.Flush(); err != nil {
			t.Fatalf("flush under %s: %v", version, err)
		}
		if w.Frames() != int64(len(values)) {
			t.Fatalf("frame count under %s: %d", version, w.Frames())
		}
		if w.Offset() != int64(sink.Len()) {
			t.Fatalf("offset accounting under %s: offset %d, sink %d", version, w.Offset(), sink.Len())
		}
		if offsets[0] != 0 {
			t.Fatalf("first frame offset under %s: %d", version, offsets[0])
		}
		for i := 1; i < len(offsets); i++ {
			if offsets[i] <= offsets[i-1] {
				t.Fatalf("offsets not increasing under %s: %v", version, offsets)
			}
		}

		sc := NewScanner(bytes.NewReader(sink.Bytes()), ScannerConfig{Version: version})
		var got []datapoint.Datapoint
		for sc.Scan() {
			got = append(got, sc.Datapoint())
		}
		if err := sc.Err(); err != nil {
			t.Fatalf("scan under %s: %v", version, err)
		}
		if len(got) != len(values) {
			t.Fatalf("decoded %d of %d frames under %s", len(got), len(values), version)
		}
		for i := range values {
			if got[i] != values[i] {
				t.Fatalf("frame %d mismatch under %s: got %#v want %#v", i, version, got[i], values[i])
			}
		}
	}
}

func TestScannerSkipsUnknownFramesUnderPrefixedFraming(t *testing.T) {
	testlog.Start(t)

	first, err := datapoint.Marshal(datapoint.Counter32(7), datapoint.VersionSimple)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	second, err := datapoint.Marshal(datapoint.Flag8(9), datapoint.VersionSimple)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var data bytes.Buffer
	data.Write(first)
	// Frame from a newer catalog: unknown tag, two payload bytes, all
	// covered by the declared length.
	data.Write([]byte{0x03, 0xEE, 0xAA, 0xBB})
	data.Write(second)

	sc := NewScanner(&data, ScannerConfig{Version: datapoint.VersionSimple, SkipUnknown: true})
	var got []datapoint.Datapoint
	for sc.Scan() {
		got = append(got, sc.Datapoint())
	}
	if err := sc.Err(); err != nil {
		t.Fatalf("scan: %v", err)
	}
	if len(got) != 2 || got[0] != datapoint.Counter32(7) || got[1] != datapoint.Flag8(9) {
		t.Fatalf("unexpected datapoints: %#v", got)
	}
	if sc.Frames() != 2 || sc.Skipped() != 1 {
		t.Fatalf("unexpected counts: frames %d skipped %d", sc.Frames(), sc.Skipped())
	}
}

func TestScannerStopsOnUnknownTagWhenSkipDisabled(t *testing.T) {
	sc := NewScanner(bytes.NewReader([]byte{0x03, 0xEE, 0xAA, 0xBB}), ScannerConfig{
		Version: datapoint.VersionSimple,
	})
	if sc.Scan() {
		t.Fatalf("expected the scan to stop")
	}
	var unknown datapoint.UnknownTagError
	if !errors.As(sc.Err(), &unknown) || unknown.Tag != 0x00EE {
		t.Fatalf("unexpected error: %v", sc.Err())
	}
}

func TestScannerCannotSkipWithoutLengthPrefix(t *testing.T) {
	sc := NewScanner(bytes.NewReader([]byte{0xEE, 0x01, 0x02}), ScannerConfig{
		Version:     datapoint.VersionDefault,
		SkipUnknown: true,
	})
	if sc.Scan() {
		t.Fatalf("expected the scan to stop")
	}
	var unknown datapoint.UnknownTagError
	if !errors.As(sc.Err(), &unknown) {
		t.Fatalf("unexpected error: %v", sc.Err())
	}
	if unknown.Remaining != -1 {
		t.Fatalf("unexpected remaining byte count: %d", unknown.Remaining)
	}
}

func TestScannerTruncatedTail(t *testing.T) {
	frame, err := datapoint.Marshal(datapoint.Level16(3), datapoint.VersionSimple)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	data := append(frame, 0x05, 0x10, 0x01)

	sc := NewScanner(bytes.NewReader(data), ScannerConfig{Version: datapoint.VersionSimple})
	if !sc.Scan() {
		t.Fatalf("first frame should scan: %v", sc.Err())
	}
	if sc.Scan() {
		t.Fatalf("expected the truncated tail to stop the scan")
	}
	if !errors.Is(sc.Err(), datapoint.ErrTruncated) {
		t.Fatalf("unexpected error: %v", sc.Err())
	}
	if sc.Frames() != 1 {
		t.Fatalf("unexpected frame count: %d", sc.Frames())
	}
}

func TestScannerTruncatedWhileSkipping(t *testing.T) {
	// The unknown frame declares ten payload bytes; the stream carries two.
	sc := NewScanner(bytes.NewReader([]byte{0x0B, 0xEE, 0x01, 0x02}), ScannerConfig{
		Version:     datapoint.VersionSimple,
		SkipUnknown: true,
	})
	if sc.Scan() {
		t.Fatalf("expected the scan to stop")
	}
	if !errors.Is(sc.Err(), datapoint.ErrTruncated) {
		t.Fatalf("unexpected error: %v", sc.Err())
	}
}

func TestWriterBuffersUntilFlush(t *testing.T) {
	var sink bytes.Buffer
	w := NewWriter(&sink, WriterConfig{Version: datapoint.VersionDefault, BufferSize: 4096})
	if _, err := w.Append(datapoint.Flag8(1)); err != nil {
		t.Fatalf("append: %v", err)
	}
	if sink.Len() != 0 {
		t.Fatalf("frame reached the sink before flush: %d bytes", sink.Len())
	}
	if err := w.Flush(); err != nil {
		t.Fatalf("flush: %v", err)
	}
	if sink.Len() != 2 {
		t.Fatalf("unexpected sink size: %d", sink.Len())
	}
}

func TestWriterRejectsWideTagUnderNarrowFraming(t *testing.T) {
	var sink bytes.Buffer
	w := NewWriter(&sink, WriterConfig{Version: datapoint.VersionSimple})
	if _, err := w.Append(datapoint.Delta32(-1)); !errors.Is(err, datapoint.ErrTagOverflow) {
		t.Fatalf("expected ErrTagOverflow, got %v", err)
	}
	if w.Frames() != 0 || w.Offset() != 0 {
		t.Fatalf("accounting moved after a failed append: frames %d offset %d", w.Frames(), w.Offset())
	}
}
