package datapoint

import (
	"encoding/binary"
	"fmt"
)

// Tag identifies a datapoint variant on the wire. Tags are stable wire
// contract values and are never reassigned between releases.
type Tag uint16

const (
	TagCounter32 Tag = 0x0010
	TagFlag8     Tag = 0x0020
	TagLevel16   Tag = 0x0030
	TagUptime64  Tag = 0x0040
	TagDelta32   Tag = 0x0310
)

func (t Tag) String() string {
	return fmt.Sprintf("%#06x", uint16(t))
}

// Datapoint is one tagged sample value. The implementations in this
// package form the closed variant catalog; the unexported payload method
// keeps the set sealed.
type Datapoint interface {
	// Tag reports the variant's wire tag. It is fixed per variant and
	// does not depend on the framing version.
	Tag() Tag

	// payload returns the variant's little-endian wire payload.
	payload() []byte
}

// Counter32 is a 32-bit cumulative counter sample.
type Counter32 uint32

func (Counter32) Tag() Tag { return TagCounter32 }

func (v Counter32) payload() []byte {
	buf := make([]byte, 4)
	binary.LittleEndian.PutUint32(buf, uint32(v))
	return buf
}

// Flag8 is an 8-bit status flag sample.
type Flag8 uint8

func (Flag8) Tag() Tag { return TagFlag8 }

func (v Flag8) payload() []byte {
	return []byte{byte(v)}
}

// Level16 is a 16-bit level reading.
type Level16 uint16

func (Level16) Tag() Tag { return TagLevel16 }

func (v Level16) payload() []byte {
	buf := make([]byte, 2)
	binary.LittleEndian.PutUint16(buf, uint16(v))
	return buf
}

// Uptime64 is a 64-bit uptime sample in milliseconds.
type Uptime64 uint64

func (Uptime64) Tag() Tag { return TagUptime64 }

func (v Uptime64) payload() []byte {
	buf := make([]byte, 8)
	binary.LittleEndian.PutUint64(buf, uint64(v))
	return buf
}

// Delta32 is a signed 32-bit delta sample. Its tag sits above the
// one-byte range, so it can only travel under extended framing.
type Delta32 int32

func (Delta32) Tag() Tag { return TagDelta32 }

func (v Delta32) payload() []byte {
	buf := make([]byte, 4)
	binary.LittleEndian.PutUint32(buf, uint32(v))
	return buf
}
