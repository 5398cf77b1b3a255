package cmd

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/danmuck/dpctl/internal/datapoint"
)

func TestParseDatapointKinds(t *testing.T) {
	cases := []struct {
		kind  string
		value string
		want  datapoint.Datapoint
	}{
		{"counter32", "1234", datapoint.Counter32(1234)},
		{"flag8", "0xFF", datapoint.Flag8(255)},
		{"level16", "512", datapoint.Level16(512)},
		{"uptime64", "86400000", datapoint.Uptime64(86_400_000)},
		{"delta32", "-5", datapoint.Delta32(-5)},
		{"Counter32", "1", datapoint.Counter32(1)},
	}
	for _, tc := range cases {
		got, err := parseDatapoint(tc.kind, tc.value)
		if err != nil {
			t.Fatalf("parse %s %s: %v", tc.kind, tc.value, err)
		}
		if got != tc.want {
			t.Fatalf("parse %s %s: got %#v want %#v", tc.kind, tc.value, got, tc.want)
		}
	}
}

func TestParseDatapointRejectsBadInput(t *testing.T) {
	cases := []struct {
		kind  string
		value string
	}{
		{"flag8", "256"},
		{"level16", "70000"},
		{"counter32", "-1"},
		{"delta32", "abc"},
		{"gauge32", "1"},
	}
	for _, tc := range cases {
		if _, err := parseDatapoint(tc.kind, tc.value); err == nil {
			t.Fatalf("expected parse error for %s %s", tc.kind, tc.value)
		}
	}
}

func TestDescribeDatapoint(t *testing.T) {
	cases := []struct {
		dp   datapoint.Datapoint
		want string
	}{
		{datapoint.Counter32(1234), "counter32=1234"},
		{datapoint.Flag8(255), "flag8=255"},
		{datapoint.Level16(512), "level16=512"},
		{datapoint.Uptime64(86_400_000), "uptime64=86400000"},
		{datapoint.Delta32(-5), "delta32=-5"},
	}
	for _, tc := range cases {
		if got := describeDatapoint(tc.dp); got != tc.want {
			t.Fatalf("describe %v: got %q want %q", tc.dp.Tag(), got, tc.want)
		}
	}
}

func TestParseHexBytes(t *testing.T) {
	got, err := parseHexBytes("05 10 01 00 00 00")
	if err != nil {
		t.Fatalf("parse hex: %v", err)
	}
	want := []byte{0x05, 0x10, 0x01, 0x00, 0x00, 0x00}
	if !bytes.Equal(got, want) {
		t.Fatalf("hex mismatch: got % X want % X", got, want)
	}

	got, err = parseHexBytes("0x0510")
	if err != nil {
		t.Fatalf("parse prefixed hex: %v", err)
	}
	if !bytes.Equal(got, []byte{0x05, 0x10}) {
		t.Fatalf("prefixed hex mismatch: % X", got)
	}

	if _, err := parseHexBytes("zz"); err == nil {
		t.Fatalf("expected hex error")
	}
}

func TestFormatHex(t *testing.T) {
	if got := formatHex([]byte{0x10, 0xD2, 0x04, 0x00, 0x00}); got != "10 d2 04 00 00" {
		t.Fatalf("unexpected hex rendering: %q", got)
	}
	if got := formatHex(nil); got != "" {
		t.Fatalf("unexpected rendering for empty frame: %q", got)
	}
}

func TestSampleDatapointRespectsTagWidth(t *testing.T) {
	for _, version := range []datapoint.Version{datapoint.VersionDefault, datapoint.VersionSimple} {
		rng := rand.New(rand.NewSource(1))
		for i := 0; i < 200; i++ {
			dp := sampleDatapoint(rng, version)
			if dp.Tag() > 0xFF {
				t.Fatalf("wide tag %v drawn under %s framing", dp.Tag(), version)
			}
		}
	}
}
