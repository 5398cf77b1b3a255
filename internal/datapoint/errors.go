package datapoint

import (
	"errors"
	"fmt"
)

var (
	ErrTagOverflow    = errors.New("datapoint: tag exceeds tag field width")
	ErrLengthOverflow = errors.New("datapoint: frame exceeds length prefix range")
	ErrLengthMismatch = errors.New("datapoint: declared length does not match frame")
	ErrTruncated      = errors.New("datapoint: truncated frame")
)

// UnknownTagError reports a wire tag with no catalog entry. Remaining
// holds the count of payload bytes left unread when the framing carries
// a length prefix, and -1 when the frame boundary cannot be recovered.
type UnknownTagError struct {
	Tag       Tag
	Remaining int
}

func (e UnknownTagError) Error() string {
	return fmt.Sprintf("datapoint: unknown tag %v", e.Tag)
}
