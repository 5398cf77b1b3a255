package cmd

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/danmuck/dpctl/internal/datapoint"
)

// Kind names accepted by encode and printed by decode and cat.
const (
	kindCounter32 = "counter32"
	kindFlag8     = "flag8"
	kindLevel16   = "level16"
	kindUptime64  = "uptime64"
	kindDelta32   = "delta32"
)

// parseDatapoint builds a catalog value from CLI kind and value strings.
// Values accept decimal or 0x-prefixed hex.
func parseDatapoint(kind, value string) (datapoint.Datapoint, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case kindCounter32:
		v, err := strconv.ParseUint(value, 0, 32)
		if err != nil {
			return nil, fmt.Errorf("counter32 value %q: %w", value, err)
		}
		return datapoint.Counter32(v), nil
	case kindFlag8:
		v, err := strconv.ParseUint(value, 0, 8)
		if err != nil {
			return nil, fmt.Errorf("flag8 value %q: %w", value, err)
		}
		return datapoint.Flag8(v), nil
	case kindLevel16:
		v, err := strconv.ParseUint(value, 0, 16)
		if err != nil {
			return nil, fmt.Errorf("level16 value %q: %w", value, err)
		}
		return datapoint.Level16(v), nil
	case kindUptime64:
		v, err := strconv.ParseUint(value, 0, 64)
		if err != nil {
			return nil, fmt.Errorf("uptime64 value %q: %w", value, err)
		}
		return datapoint.Uptime64(v), nil
	case kindDelta32:
		v, err := strconv.ParseInt(value, 0, 32)
		if err != nil {
			return nil, fmt.Errorf("delta32 value %q: %w", value, err)
		}
		return datapoint.Delta32(v), nil
	default:
		return nil, fmt.Errorf("unknown datapoint kind %q", kind)
	}
}

// describeDatapoint renders one decoded value for terminal output.
func describeDatapoint(dp datapoint.Datapoint) string {
	switch v := dp.(type) {
	case datapoint.Counter32:
		return fmt.Sprintf("%s=%d", kindCounter32, uint32(v))
	case datapoint.Flag8:
		return fmt.Sprintf("%s=%d", kindFlag8, uint8(v))
	case datapoint.Level16:
		return fmt.Sprintf("%s=%d", kindLevel16, uint16(v))
	case datapoint.Uptime64:
		return fmt.Sprintf("%s=%d", kindUptime64, uint64(v))
	case datapoint.Delta32:
		return fmt.Sprintf("%s=%d", kindDelta32, int32(v))
	default:
		return fmt.Sprintf("tag=%v", dp.Tag())
	}
}

// parseHexBytes accepts hex digits with optional whitespace and an
// optional leading 0x.
func parseHexBytes(s string) ([]byte, error) {
	clean := strings.NewReplacer(" ", "", "\t", "", "\n", "", "\r", "").Replace(s)
	clean = strings.TrimPrefix(strings.ToLower(clean), "0x")
	b, err := hex.DecodeString(clean)
	if err != nil {
		return nil, fmt.Errorf("hex input: %w", err)
	}
	return b, nil
}

func formatHex(b []byte) string {
	parts := make([]string, len(b))
	for i, x := range b {
		parts[i] = fmt.Sprintf("%02x", x)
	}
	return strings.Join(parts, " ")
}
