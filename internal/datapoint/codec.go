package datapoint

import (
	"errors"
	"fmt"
	"io"
	"math"
)

// Decode reads one frame from r under the given version and returns its
// datapoint. On success the reader is consumed exactly up to the end of
// the frame. A cleanly exhausted stream returns io.EOF; a frame cut off
// mid-way returns ErrTruncated; other read errors propagate unchanged.
func Decode(r io.Reader, v Version) (Datapoint, error) {
	h, err := ReadHeader(r, v)
	if err != nil {
		return nil, err
	}

	ent, ok := catalog[h.Tag]
	if !ok {
		remaining := -1
		if h.HasLength {
			remaining = int(h.Length) - v.TagWidth()
			if remaining < 0 {
				return nil, fmt.Errorf("%w: declared %d bytes cannot hold a %d-byte tag", ErrLengthMismatch, h.Length, v.TagWidth())
			}
		}
		return nil, UnknownTagError{Tag: h.Tag, Remaining: remaining}
	}

	if h.HasLength {
		if want := v.TagWidth() + ent.size; int(h.Length) != want {
			return nil, fmt.Errorf("%w: declared %d, tag+payload is %d", ErrLengthMismatch, h.Length, want)
		}
	}

	buf := make([]byte, ent.size)
	if _, err := io.ReadFull(r, buf); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, ErrTruncated
		}
		return nil, err
	}
	return ent.read(buf), nil
}

// Encode writes dp to w as one frame under the given version. Prefixed
// framing backpatches the length byte after the payload is written, so
// the sink must seek; use Marshal for forward-only sinks. Nothing is
// written when the tag does not fit the version's tag field.
func Encode(w io.WriteSeeker, dp Datapoint, v Version) error {
	lay := layoutFor(v)
	t := dp.Tag()
	if lay.tagWidth == 1 && t > math.MaxUint8 {
		return fmt.Errorf("%w: tag %v under %s framing", ErrTagOverflow, t, lay.name)
	}
	return writeFrame(w, lay, t, dp.payload())
}

// Marshal encodes dp into a fresh in-memory frame. The returned slice
// holds exactly one frame.
func Marshal(dp Datapoint, v Version) ([]byte, error) {
	var b frameBuffer
	if err := Encode(&b, dp, v); err != nil {
		return nil, err
	}
	return b.buf, nil
}

// frameBuffer is the minimal in-memory WriteSeeker behind Marshal.
type frameBuffer struct {
	buf []byte
	pos int64
}

func (b *frameBuffer) Write(p []byte) (int, error) {
	if gap := b.pos - int64(len(b.buf)); gap > 0 {
		b.buf = append(b.buf, make([]byte, gap)...)
	}
	n := copy(b.buf[b.pos:], p)
	b.buf = append(b.buf, p[n:]...)
	b.pos += int64(len(p))
	return len(p), nil
}

func (b *frameBuffer) Seek(offset int64, whence int) (int64, error) {
	var base int64
	switch whence {
	case io.SeekStart:
		base = 0
	case io.SeekCurrent:
		base = b.pos
	case io.SeekEnd:
		base = int64(len(b.buf))
	default:
		return 0, fmt.Errorf("datapoint: invalid seek whence %d", whence)
	}
	next := base + offset
	if next < 0 {
		return 0, fmt.Errorf("datapoint: negative seek position %d", next)
	}
	b.pos = next
	return next, nil
}
