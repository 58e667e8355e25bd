package halfbuf

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/hupe1980/numkit/f16"
)

// Block layout (little-endian):
//
//	[0]     compression tag of the payload
//	[1:4]   reserved, zero
//	[4:8]   uncompressed payload size in bytes
//	[8:12]  compressed payload size in bytes, 0 if stored raw
//	[12:]   payload
//
// The uncompressed payload is a sequence of binary16 values, two bytes each,
// least significant byte first.
const (
	headerSize = 12

	// DefaultBlockValues is the number of values per block written by Encode
	// and by a Writer created with blockValues <= 0 (256 KiB of payload).
	DefaultBlockValues = 128 * 1024

	// MaxBlockValues bounds the values per block accepted by the decoder.
	MaxBlockValues = 32 * 1024 * 1024
)

type header struct {
	compression      Compression
	uncompressedSize uint32
	compressedSize   uint32
}

func (h header) payloadSize() uint32 {
	if h.compressedSize == 0 {
		return h.uncompressedSize
	}
	return h.compressedSize
}

func (h header) put(b []byte) {
	b[0] = byte(h.compression)
	b[1], b[2], b[3] = 0, 0, 0
	binary.LittleEndian.PutUint32(b[4:], h.uncompressedSize)
	binary.LittleEndian.PutUint32(b[8:], h.compressedSize)
}

func parseHeader(b []byte) (header, error) {
	h := header{
		compression:      Compression(b[0]),
		uncompressedSize: binary.LittleEndian.Uint32(b[4:]),
		compressedSize:   binary.LittleEndian.Uint32(b[8:]),
	}

	switch {
	case !h.compression.valid():
		return h, fmt.Errorf("%w: tag %d", ErrUnknownCompression, b[0])
	case b[1] != 0 || b[2] != 0 || b[3] != 0:
		return h, fmt.Errorf("%w: reserved bytes set", ErrCorruptBlock)
	case h.uncompressedSize%2 != 0:
		return h, fmt.Errorf("%w: odd payload size %d", ErrCorruptBlock, h.uncompressedSize)
	case h.uncompressedSize > 2*MaxBlockValues:
		return h, fmt.Errorf("%w: payload size %d exceeds limit", ErrCorruptBlock, h.uncompressedSize)
	case h.compressedSize != 0 && h.compression == None:
		return h, fmt.Errorf("%w: compressed size without compression", ErrCorruptBlock)
	case h.compressedSize >= h.uncompressedSize && h.compressedSize != 0:
		// Writers store blocks raw unless compression shrinks them.
		return h, fmt.Errorf("%w: compressed size %d not below payload size %d",
			ErrCorruptBlock, h.compressedSize, h.uncompressedSize)
	}
	return h, nil
}

// appendBlock appends one block holding values to dst.
func appendBlock(dst []byte, values []f16.Float16, c Compression) ([]byte, error) {
	raw := make([]byte, 2*len(values))
	for i, v := range values {
		binary.LittleEndian.PutUint16(raw[2*i:], v.Bits())
	}

	compressed, err := compress(raw, c)
	if err != nil {
		return nil, err
	}

	h := header{compression: c, uncompressedSize: uint32(len(raw))}
	payload := raw
	if compressed == nil {
		h.compression = None
	} else {
		h.compressedSize = uint32(len(compressed))
		payload = compressed
	}

	var hdr [headerSize]byte
	h.put(hdr[:])
	dst = append(dst, hdr[:]...)
	return append(dst, payload...), nil
}

// decodePayload turns a raw payload back into values.
func decodePayload(dst []f16.Float16, raw []byte) []f16.Float16 {
	for i := 0; i+1 < len(raw); i += 2 {
		dst = append(dst, f16.FromBits(binary.LittleEndian.Uint16(raw[i:])))
	}
	return dst
}

// Encode serializes values as a sequence of blocks of at most
// DefaultBlockValues values each. An empty input yields a single empty block.
func Encode(values []f16.Float16, c Compression) ([]byte, error) {
	if !c.valid() {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCompression, c)
	}

	var (
		out []byte
		err error
	)
	for {
		n := min(len(values), DefaultBlockValues)
		if out, err = appendBlock(out, values[:n], c); err != nil {
			return nil, err
		}
		values = values[n:]
		if len(values) == 0 {
			return out, nil
		}
	}
}

// EncodeFloat32 converts values to binary16 and encodes them like Encode.
func EncodeFloat32(values []float32, c Compression) ([]byte, error) {
	halves := make([]f16.Float16, len(values))
	f16.Encode(halves, values)
	return Encode(halves, c)
}

// Decode parses every block in data and returns the concatenated values.
func Decode(data []byte) ([]f16.Float16, error) {
	r := NewReader(bytes.NewReader(data))

	var out []f16.Float16
	for {
		block, err := r.ReadBlock()
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return nil, err
		}
		out = append(out, block...)
	}
}

// DecodeFloat32 decodes data and widens every value to float32.
func DecodeFloat32(data []byte) ([]float32, error) {
	halves, err := Decode(data)
	if err != nil {
		return nil, err
	}
	out := make([]float32, len(halves))
	f16.Decode(out, halves)
	return out, nil
}
