package paging

import (
	"fmt"
	"math/bits"

	"github.com/arloliu/e57/errs"
)

// ChecksumSize is the size of the checksum trailer closing every page.
const ChecksumSize = 4

// maxChunkPrealloc bounds the chunk slice capacity reserved up front.
const maxChunkPrealloc = 1024

// Geometry describes how an E57 file is cut into pages. It is an immutable
// value built once per open container and passed to whatever needs it.
type Geometry struct {
	// PageSize is the physical size of a page, checksum included.
	PageSize uint64
	// PageContent is the payload part of a page, PageSize - ChecksumSize.
	PageContent uint64
}

// NewGeometry creates the geometry for the given page size.
//
// Returns:
//   - Geometry: the page geometry
//   - error: ErrSize if the page leaves no room for payload
func NewGeometry(pageSize uint64) (Geometry, error) {
	if pageSize <= ChecksumSize {
		return Geometry{}, fmt.Errorf("%w: page size %d leaves no payload after a %d-byte checksum",
			errs.ErrSize, pageSize, ChecksumSize)
	}

	return Geometry{PageSize: pageSize, PageContent: pageSize - ChecksumSize}, nil
}

// Chunk is one contiguous run of payload bytes on disk. A checksum trailer
// follows it whenever it reaches the end of its page's payload.
type Chunk struct {
	PhysicalOffset uint64
	Length         uint64
}

// End returns the physical offset just past the chunk's payload.
func (c Chunk) End() uint64 {
	return c.PhysicalOffset + c.Length
}

// Chunks splits the payload run that starts at physical offset and spans
// length payload bytes into per-page chunks.
//
// The first chunk takes min(length, PageContent - offset%PageSize) bytes, each
// following chunk starts ChecksumSize bytes after the previous one ends and
// takes a full PageContent, and any remainder becomes a final shorter chunk.
// A zero length yields an empty, non-nil slice.
//
// Returns:
//   - []Chunk: chunks in increasing physical order
//   - error: ErrSize if offset points into a checksum trailer, the run
//     overflows 64-bit offsets or the chunk lengths do not add up to length
func (g Geometry) Chunks(offset, length uint64) ([]Chunk, error) {
	if _, err := g.End(offset, length); err != nil {
		return nil, err
	}

	if length == 0 {
		return []Chunk{}, nil
	}

	first := min(length, g.PageContent-offset%g.PageSize)
	remaining := length - first

	chunks := make([]Chunk, 0, min(2+remaining/g.PageContent, maxChunkPrealloc))
	chunks = append(chunks, Chunk{PhysicalOffset: offset, Length: first})

	next := offset + first + ChecksumSize
	for remaining >= g.PageContent {
		chunks = append(chunks, Chunk{PhysicalOffset: next, Length: g.PageContent})
		next += g.PageSize
		remaining -= g.PageContent
	}

	if remaining > 0 {
		chunks = append(chunks, Chunk{PhysicalOffset: next, Length: remaining})
	}

	var total uint64
	for _, c := range chunks {
		total += c.Length
	}
	if total != length {
		return nil, fmt.Errorf("%w: chunks cover %d bytes, requested %d", errs.ErrSize, total, length)
	}

	return chunks, nil
}

// End returns the physical offset just past the last payload byte of the run
// that starts at physical offset and spans length payload bytes. A zero length
// ends where it starts.
//
// Returns:
//   - uint64: physical end offset
//   - error: ErrSize if offset points into a checksum trailer or the run does
//     not fit in a 64-bit file offset
func (g Geometry) End(offset, length uint64) (uint64, error) {
	logical, err := g.PhysicalToLogical(offset)
	if err != nil {
		return 0, err
	}

	if length == 0 {
		return offset, nil
	}

	last, carry := bits.Add64(logical, length-1, 0)
	if carry != 0 {
		return 0, fmt.Errorf("%w: run of %d bytes at offset %d overflows the file offset range", errs.ErrSize, length, offset)
	}

	hi, base := bits.Mul64(last/g.PageContent, g.PageSize)
	end, carry := bits.Add64(base, last%g.PageContent+1, 0)
	if hi != 0 || carry != 0 {
		return 0, fmt.Errorf("%w: run of %d bytes at offset %d overflows the file offset range", errs.ErrSize, length, offset)
	}

	return end, nil
}

// ChecksumOffset returns the physical offset of the checksum trailer of the
// page holding the chunk.
func (g Geometry) ChecksumOffset(c Chunk) uint64 {
	return (c.PhysicalOffset/g.PageSize)*g.PageSize + g.PageContent
}

// LogicalToPhysical maps a checksum-free logical offset to its physical offset.
func (g Geometry) LogicalToPhysical(logical uint64) uint64 {
	return (logical/g.PageContent)*g.PageSize + logical%g.PageContent
}

// PhysicalToLogical maps a physical offset to its logical offset.
//
// Returns:
//   - uint64: logical offset
//   - error: ErrSize if physical points into a checksum trailer
func (g Geometry) PhysicalToLogical(physical uint64) (uint64, error) {
	inPage := physical % g.PageSize
	if inPage >= g.PageContent {
		return 0, fmt.Errorf("%w: offset %d lies in the checksum of page %d", errs.ErrSize, physical, physical/g.PageSize)
	}

	return (physical/g.PageSize)*g.PageContent + inPage, nil
}

// Advance returns the physical offset reached by moving n payload bytes
// forward from physical, skipping checksum trailers on the way.
func (g Geometry) Advance(physical, n uint64) (uint64, error) {
	logical, err := g.PhysicalToLogical(physical)
	if err != nil {
		return 0, err
	}

	return g.LogicalToPhysical(logical + n), nil
}

// PageCount returns the number of pages in a file of the given physical length.
func (g Geometry) PageCount(physicalLength uint64) uint64 {
	return (physicalLength + g.PageSize - 1) / g.PageSize
}
