package halfbuf

import (
	"fmt"
	"strings"
	"sync"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression defines the block compression algorithm.
type Compression uint8

const (
	// None stores the binary16 payload as is.
	None Compression = 0
	// LZ4 uses LZ4 block compression (fast, good for hot data).
	LZ4 Compression = 1
	// ZSTD uses ZSTD block compression (better ratio, good for cold data).
	ZSTD Compression = 2
)

// String returns the lowercase algorithm name.
func (c Compression) String() string {
	switch c {
	case None:
		return "none"
	case LZ4:
		return "lz4"
	case ZSTD:
		return "zstd"
	default:
		return fmt.Sprintf("compression(%d)", uint8(c))
	}
}

// ParseCompression parses "none", "lz4" or "zstd" (case-insensitive).
func ParseCompression(s string) (Compression, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none", "raw":
		return None, nil
	case "lz4":
		return LZ4, nil
	case "zstd", "zstandard":
		return ZSTD, nil
	default:
		return None, fmt.Errorf("%w: %q", ErrUnknownCompression, s)
	}
}

func (c Compression) valid() bool {
	return c <= ZSTD
}

// incompressibleRatio is the compressed/raw size above which a block is stored raw.
const incompressibleRatio = 0.9

// ZSTD encoder/decoder pools for efficiency
var (
	zstdEncoderPool sync.Pool
	zstdDecoderPool sync.Pool
)

func getZstdEncoder() (*zstd.Encoder, error) {
	if v := zstdEncoderPool.Get(); v != nil {
		return v.(*zstd.Encoder), nil
	}
	return zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
}

func putZstdEncoder(enc *zstd.Encoder) {
	zstdEncoderPool.Put(enc)
}

func getZstdDecoder() (*zstd.Decoder, error) {
	if v := zstdDecoderPool.Get(); v != nil {
		return v.(*zstd.Decoder), nil
	}
	return zstd.NewReader(nil,
		zstd.WithDecoderConcurrency(1),
		zstd.WithDecoderMaxMemory(2*MaxBlockValues),
		zstd.WithDecodeAllCapLimit(true),
	)
}

func putZstdDecoder(dec *zstd.Decoder) {
	zstdDecoderPool.Put(dec)
}

// compress returns the compressed payload, or nil if the block should be
// stored raw because the algorithm does not help.
func compress(data []byte, c Compression) ([]byte, error) {
	if c == None || len(data) == 0 {
		return nil, nil
	}

	var (
		out []byte
		err error
	)
	switch c {
	case LZ4:
		out, err = compressLZ4(data)
	case ZSTD:
		out, err = compressZSTD(data)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownCompression, c)
	}
	if err != nil {
		return nil, err
	}

	if len(out) == 0 || float64(len(out)) > float64(len(data))*incompressibleRatio {
		return nil, nil
	}
	return out, nil
}

func compressLZ4(data []byte) ([]byte, error) {
	compressed := make([]byte, lz4.CompressBlockBound(len(data)))

	n, err := lz4.CompressBlock(data, compressed, nil)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil // incompressible
	}
	return compressed[:n], nil
}

func compressZSTD(data []byte) ([]byte, error) {
	enc, err := getZstdEncoder()
	if err != nil {
		return nil, err
	}
	defer putZstdEncoder(enc)

	return enc.EncodeAll(data, nil), nil
}

// decompress expands payload into a buffer of exactly size bytes.
func decompress(payload []byte, c Compression, size uint32) ([]byte, error) {
	result := make([]byte, size)

	switch c {
	case LZ4:
		n, err := lz4.UncompressBlock(payload, result)
		if err != nil {
			return nil, fmt.Errorf("%w: lz4: %v", ErrCorruptBlock, err)
		}
		if uint32(n) != size {
			return nil, fmt.Errorf("%w: decompressed size mismatch", ErrCorruptBlock)
		}
		return result, nil

	case ZSTD:
		dec, err := getZstdDecoder()
		if err != nil {
			return nil, err
		}
		defer putZstdDecoder(dec)

		// The cap limit stops DecodeAll from growing past size bytes.
		decoded, err := dec.DecodeAll(payload, result[:0])
		if err != nil {
			return nil, fmt.Errorf("%w: zstd: %v", ErrCorruptBlock, err)
		}
		if uint32(len(decoded)) != size {
			return nil, fmt.Errorf("%w: decompressed size mismatch", ErrCorruptBlock)
		}
		return decoded, nil

	default:
		return nil, fmt.Errorf("%w: compressed payload tagged %s", ErrCorruptBlock, c)
	}
}
