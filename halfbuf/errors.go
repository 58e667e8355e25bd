package halfbuf

import "errors"

var (
	// ErrShortBlock is returned when input ends inside a block header or payload.
	ErrShortBlock = errors.New("halfbuf: short block")

	// ErrCorruptBlock is returned when a block header is inconsistent or its payload fails to decompress.
	ErrCorruptBlock = errors.New("halfbuf: corrupt block")

	// ErrUnknownCompression is returned for an unrecognized compression name or tag.
	ErrUnknownCompression = errors.New("halfbuf: unknown compression")
)
