package datapoint

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
)

// Version selects the header layout for one encode or decode call. The
// caller supplies it each time; it is never written to the stream.
type Version uint8

const (
	// VersionDefault frames records as [tag:1][payload].
	VersionDefault Version = 0
	// VersionSimple frames records as [length:1][tag:1][payload], where
	// length counts the tag and payload bytes.
	VersionSimple Version = 1
	// VersionExtended frames records as [tag:2][payload]. Every version
	// above this value selects the same layout.
	VersionExtended Version = 2
)

// layout is the framing strategy behind a version: tag field width and
// length prefix presence. Layouts hold no state.
type layout struct {
	name      string
	tagWidth  int
	hasLength bool
}

var (
	layoutDefault  = layout{name: "default", tagWidth: 1}
	layoutSimple   = layout{name: "simple", tagWidth: 1, hasLength: true}
	layoutExtended = layout{name: "extended", tagWidth: 2}
)

// layoutFor resolves a version to its framing strategy. Unrecognized
// versions fall through to the extended layout.
func layoutFor(v Version) layout {
	switch v {
	case VersionDefault:
		return layoutDefault
	case VersionSimple:
		return layoutSimple
	default:
		return layoutExtended
	}
}

func (v Version) String() string { return layoutFor(v).name }

// TagWidth reports the wire width of the tag field in bytes.
func (v Version) TagWidth() int { return layoutFor(v).tagWidth }

// HasLengthPrefix reports whether frames carry a one-byte length prefix.
func (v Version) HasLengthPrefix() bool { return layoutFor(v).hasLength }

// maxPrefixedSize is the largest tag+payload byte count the one-byte
// length prefix can declare.
const maxPrefixedSize = math.MaxUint8

// Header is a decoded frame header. Length is meaningful only when
// HasLength is set and declares the tag+payload byte count.
type Header struct {
	HasLength bool
	Length    uint8
	Tag       Tag
}

// ReadHeader reads the length prefix, when the version defines one, and
// the tag from r. A stream exhausted before the first header byte
// returns io.EOF untouched; running dry mid-header returns ErrTruncated.
func ReadHeader(r io.Reader, v Version) (Header, error) {
	lay := layoutFor(v)
	var h Header

	if lay.hasLength {
		var b [1]byte
		if _, err := io.ReadFull(r, b[:]); err != nil {
			return Header{}, headerReadError(err, true)
		}
		h.HasLength = true
		h.Length = b[0]
	}

	tag := make([]byte, lay.tagWidth)
	if _, err := io.ReadFull(r, tag); err != nil {
		return Header{}, headerReadError(err, !lay.hasLength)
	}
	if lay.tagWidth == 1 {
		h.Tag = Tag(tag[0])
	} else {
		h.Tag = Tag(binary.LittleEndian.Uint16(tag))
	}
	return h, nil
}

// headerReadError keeps a cleanly exhausted stream distinguishable from
// a torn frame. io.ReadFull reports io.EOF only when it read nothing, so
// io.EOF passes through untouched just for the frame's first field.
func headerReadError(err error, first bool) error {
	if first && errors.Is(err, io.EOF) {
		return io.EOF
	}
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return ErrTruncated
	}
	return err
}

// writeFrame writes one frame to w. Prefixed layouts write a placeholder
// length byte first and backpatch it once the payload size is known; the
// patch position is taken relative to the frame's own start, so frames
// can begin anywhere in a stream. The sink position ends at the frame's
// last byte either way.
func writeFrame(w io.WriteSeeker, lay layout, t Tag, payload []byte) error {
	var headerEnd int64
	if lay.hasLength {
		if _, err := w.Write([]byte{0}); err != nil {
			return err
		}
		var err error
		headerEnd, err = w.Seek(0, io.SeekCurrent)
		if err != nil {
			return err
		}
	}

	tag := make([]byte, lay.tagWidth)
	if lay.tagWidth == 1 {
		tag[0] = byte(t)
	} else {
		binary.LittleEndian.PutUint16(tag, uint16(t))
	}
	if _, err := w.Write(tag); err != nil {
		return err
	}
	if _, err := w.Write(payload); err != nil {
		return err
	}

	if !lay.hasLength {
		return nil
	}

	end, err := w.Seek(0, io.SeekCurrent)
	if err != nil {
		return err
	}
	size := end - headerEnd
	if size > maxPrefixedSize {
		return fmt.Errorf("%w: %d bytes, prefix holds at most %d", ErrLengthOverflow, size, maxPrefixedSize)
	}
	if _, err := w.Seek(headerEnd-1, io.SeekStart); err != nil {
		return err
	}
	if _, err := w.Write([]byte{byte(size)}); err != nil {
		return err
	}
	_, err = w.Seek(end, io.SeekStart)
	return err
}
