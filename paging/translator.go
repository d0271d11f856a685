package paging

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/arloliu/e57/errs"
)

// Translator reads payload byte runs from a paged E57 file, dropping the
// checksum trailers in between.
//
// A Translator holds no cursor: every ReadAt is independent, so a Translator
// may be shared by goroutines as long as the underlying io.ReaderAt allows
// concurrent ReadAt calls (os.File does).
type Translator struct {
	r        io.ReaderAt
	geometry Geometry
	size     uint64
}

// NewTranslator creates a Translator over r.
//
// Parameters:
//   - r: The paged file
//   - geometry: Page geometry of the file
//   - size: Physical size of r in bytes, or 0 if unknown. When known,
//     requests running past it fail before any buffer is allocated.
func NewTranslator(r io.ReaderAt, geometry Geometry, size uint64) *Translator {
	return &Translator{r: r, geometry: geometry, size: size}
}

// Geometry returns the page geometry the translator was built with.
func (t *Translator) Geometry() Geometry {
	return t.geometry
}

// Chunks returns the physical chunks ReadAt would read for the same request.
func (t *Translator) Chunks(offset, length uint64) ([]Chunk, error) {
	return t.geometry.Chunks(offset, length)
}

// ReadAt reads length payload bytes starting at physical offset.
//
// Chunks are read in increasing offset order straight into one buffer of
// exactly length bytes. Checksum bytes are skipped, never returned.
//
// Returns:
//   - []byte: the payload bytes, len == length
//   - error: ErrSize for a bad offset, *errs.IOError on a short or failed
//     read; no partial data is returned with an error
func (t *Translator) ReadAt(offset, length uint64) ([]byte, error) {
	end, err := t.geometry.End(offset, length)
	if err != nil {
		return nil, err
	}

	if t.size > 0 && end > t.size {
		return nil, &errs.IOError{
			Op:     "read payload",
			Offset: offset,
			Want:   length,
			Err:    fmt.Errorf("range ends at %d beyond file size %d: %w", end, t.size, io.ErrUnexpectedEOF),
		}
	}

	if length > math.MaxInt {
		return nil, fmt.Errorf("%w: read of %d bytes exceeds addressable memory", errs.ErrSize, length)
	}

	chunks, err := t.geometry.Chunks(offset, length)
	if err != nil {
		return nil, err
	}

	buf := make([]byte, length)
	var pos uint64
	for _, c := range chunks {
		if err := t.readChunk(buf[pos:pos+c.Length], c); err != nil {
			return nil, err
		}
		pos += c.Length
	}

	return buf, nil
}

func (t *Translator) readChunk(dst []byte, c Chunk) error {
	if c.PhysicalOffset > math.MaxInt64 {
		return &errs.IOError{Op: "read chunk", Offset: c.PhysicalOffset, Want: c.Length, Err: io.ErrUnexpectedEOF}
	}

	n, err := t.r.ReadAt(dst, int64(c.PhysicalOffset))
	if uint64(n) < c.Length {
		if err == nil {
			err = io.ErrUnexpectedEOF
		}

		return &errs.IOError{Op: "read chunk", Offset: c.PhysicalOffset, Want: c.Length, Got: uint64(n), Err: err}
	}

	// io.ReaderAt may report io.EOF together with a full read at the end of the file.
	if err != nil && !errors.Is(err, io.EOF) {
		return &errs.IOError{Op: "read chunk", Offset: c.PhysicalOffset, Want: c.Length, Got: uint64(n), Err: err}
	}

	return nil
}
