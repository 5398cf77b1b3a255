package datapoint

import "encoding/binary"

// variant binds a catalog tag to its fixed payload layout.
type variant struct {
	size int
	read func(b []byte) Datapoint
}

// catalog maps wire tags to payload layouts. Fixed at build time, read
// only. Each read function receives exactly size bytes.
var catalog = map[Tag]variant{
	TagCounter32: {size: 4, read: func(b []byte) Datapoint {
		return Counter32(binary.LittleEndian.Uint32(b))
	}},
	TagFlag8: {size: 1, read: func(b []byte) Datapoint {
		return Flag8(b[0])
	}},
	TagLevel16: {size: 2, read: func(b []byte) Datapoint {
		return Level16(binary.LittleEndian.Uint16(b))
	}},
	TagUptime64: {size: 8, read: func(b []byte) Datapoint {
		return Uptime64(binary.LittleEndian.Uint64(b))
	}},
	TagDelta32: {size: 4, read: func(b []byte) Datapoint {
		return Delta32(int32(binary.LittleEndian.Uint32(b)))
	}},
}

// PayloadSize reports the fixed payload byte count for a catalog tag.
// The second return is false for tags outside the catalog.
func PayloadSize(t Tag) (int, bool) {
	v, ok := catalog[t]
	return v.size, ok
}
