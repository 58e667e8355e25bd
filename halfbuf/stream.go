package halfbuf

import (
	"errors"
	"fmt"
	"io"
	"iter"

	"github.com/hupe1980/numkit/f16"
)

// Writer buffers values and writes them to an underlying writer as
// compressed binary16 blocks.
type Writer struct {
	w           io.Writer
	compression Compression
	blockValues int
	buffer      []f16.Float16
	scratch     []byte
	written     int64
	values      int64
}

// NewWriter creates a Writer. blockValues <= 0 selects DefaultBlockValues.
func NewWriter(w io.Writer, c Compression, blockValues int) (*Writer, error) {
	if !c.valid() {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCompression, c)
	}
	if blockValues <= 0 {
		blockValues = DefaultBlockValues
	}
	if blockValues > MaxBlockValues {
		blockValues = MaxBlockValues
	}
	return &Writer{
		w:           w,
		compression: c,
		blockValues: blockValues,
		buffer:      make([]f16.Float16, 0, min(blockValues, DefaultBlockValues)),
	}, nil
}

// Write appends values, flushing full blocks as needed.
func (w *Writer) Write(values []f16.Float16) error {
	for len(values) > 0 {
		space := w.blockValues - len(w.buffer)
		if space <= 0 {
			if err := w.FlushBlock(); err != nil {
				return err
			}
			space = w.blockValues
		}

		n := min(len(values), space)
		w.buffer = append(w.buffer, values[:n]...)
		values = values[n:]
	}
	return nil
}

// WriteFloat32 converts values to binary16 and appends them.
func (w *Writer) WriteFloat32(values []float32) error {
	halves := make([]f16.Float16, len(values))
	f16.Encode(halves, values)
	return w.Write(halves)
}

// FlushBlock compresses and writes the current block.
func (w *Writer) FlushBlock() error {
	if len(w.buffer) == 0 {
		return nil
	}

	block, err := appendBlock(w.scratch[:0], w.buffer, w.compression)
	if err != nil {
		return err
	}
	w.scratch = block

	n, err := w.w.Write(block)
	w.written += int64(n)
	if err != nil {
		return err
	}
	w.values += int64(len(w.buffer))
	w.buffer = w.buffer[:0]
	return nil
}

// Flush writes any remaining buffered values.
func (w *Writer) Flush() error {
	return w.FlushBlock()
}

// BytesWritten returns the total encoded bytes written.
func (w *Writer) BytesWritten() int64 {
	return w.written
}

// ValuesWritten returns the number of values flushed so far.
func (w *Writer) ValuesWritten() int64 {
	return w.values
}

// Reader reads binary16 blocks from an underlying reader.
type Reader struct {
	r       io.Reader
	hdr     [headerSize]byte
	payload []byte
	blocks  int
}

// NewReader creates a Reader.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: r}
}

// ReadBlock reads and decodes the next block. It returns io.EOF once the
// input ends cleanly on a block boundary.
func (r *Reader) ReadBlock() ([]f16.Float16, error) {
	if _, err := io.ReadFull(r.r, r.hdr[:]); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		return nil, r.wrap(err)
	}

	h, err := parseHeader(r.hdr[:])
	if err != nil {
		return nil, fmt.Errorf("block %d: %w", r.blocks, err)
	}

	size := int(h.payloadSize())
	if cap(r.payload) < size {
		r.payload = make([]byte, size)
	}
	payload := r.payload[:size]
	if _, err := io.ReadFull(r.r, payload); err != nil {
		return nil, r.wrap(err)
	}

	raw := payload
	if h.compressedSize != 0 {
		if raw, err = decompress(payload, h.compression, h.uncompressedSize); err != nil {
			return nil, fmt.Errorf("block %d: %w", r.blocks, err)
		}
	}

	r.blocks++
	return decodePayload(make([]f16.Float16, 0, len(raw)/2), raw), nil
}

// ReadFloat32 reads the next block and widens it to float32.
func (r *Reader) ReadFloat32() ([]float32, error) {
	block, err := r.ReadBlock()
	if err != nil {
		return nil, err
	}
	out := make([]float32, len(block))
	f16.Decode(out, block)
	return out, nil
}

// All yields every remaining value. Iteration stops after the first error,
// which is yielded with a zero value. A clean end of input is not an error.
func (r *Reader) All() iter.Seq2[f16.Float16, error] {
	return func(yield func(f16.Float16, error) bool) {
		for {
			block, err := r.ReadBlock()
			if errors.Is(err, io.EOF) {
				return
			}
			if err != nil {
				yield(0, err)
				return
			}
			for _, v := range block {
				if !yield(v, nil) {
					return
				}
			}
		}
	}
}

// Blocks returns the number of blocks read so far.
func (r *Reader) Blocks() int {
	return r.blocks
}

func (r *Reader) wrap(err error) error {
	if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
		return fmt.Errorf("block %d: %w", r.blocks, ErrShortBlock)
	}
	return err
}
