package section

import (
	"fmt"

	"github.com/arloliu/e57/endian"
	"github.com/arloliu/e57/errs"
)

// CompressedVectorSectionHeader opens the binary section of one point stream.
// It is a fixed size of 32 bytes.
type CompressedVectorSectionHeader struct {
	// SectionID must equal TagCompressedVectorSection.
	//
	// Offset: 0, Size: 1 byte
	SectionID uint8

	// Reserved padding, zero in conforming files.
	//
	// Offset: 1, Size: 7 bytes
	Reserved [7]byte

	// SectionLogicalLength is the section size with page checksums excluded.
	//
	// Offset: 8, Size: 8 bytes
	SectionLogicalLength uint64

	// DataPhysicalOffset is the physical offset of the first data packet.
	//
	// Offset: 16, Size: 8 bytes
	DataPhysicalOffset uint64

	// IndexPhysicalOffset is the physical offset of the top index packet, or
	// zero when the section has none.
	//
	// Offset: 24, Size: 8 bytes
	IndexPhysicalOffset uint64
}

// NewCompressedVectorSectionHeader creates a header with the section tag set.
func NewCompressedVectorSectionHeader(logicalLength, dataOffset, indexOffset uint64) CompressedVectorSectionHeader {
	return CompressedVectorSectionHeader{
		SectionID:            TagCompressedVectorSection,
		SectionLogicalLength: logicalLength,
		DataPhysicalOffset:   dataOffset,
		IndexPhysicalOffset:  indexOffset,
	}
}

// Parse parses the header from a byte slice of exactly 32 bytes.
//
// Returns:
//   - error: ErrInvalidHeaderSize for a wrong length, *errs.SectionTypeError
//     when SectionID is not TagCompressedVectorSection (Offset left at zero)
func (h *CompressedVectorSectionHeader) Parse(data []byte) error {
	if len(data) != CompressedVectorHeaderSize {
		return fmt.Errorf("%w: %s needs %d bytes, got %d",
			errs.ErrInvalidHeaderSize, NameCompressedVectorHeader, CompressedVectorHeaderSize, len(data))
	}

	if data[0] != TagCompressedVectorSection {
		return &errs.SectionTypeError{
			Structure: NameCompressedVectorHeader,
			Expected:  TagCompressedVectorSection,
			Actual:    data[0],
		}
	}

	engine := endian.GetLittleEndianEngine()

	h.SectionID = data[0]
	copy(h.Reserved[:], data[1:8])
	h.SectionLogicalLength = engine.Uint64(data[8:16])
	h.DataPhysicalOffset = engine.Uint64(data[16:24])
	h.IndexPhysicalOffset = engine.Uint64(data[24:32])

	return nil
}

// Bytes serializes the header into a new 32-byte slice.
func (h *CompressedVectorSectionHeader) Bytes() []byte {
	engine := endian.GetLittleEndianEngine()

	b := make([]byte, 0, CompressedVectorHeaderSize)
	b = append(b, h.SectionID)
	b = append(b, h.Reserved[:]...)
	b = engine.AppendUint64(b, h.SectionLogicalLength)
	b = engine.AppendUint64(b, h.DataPhysicalOffset)
	b = engine.AppendUint64(b, h.IndexPhysicalOffset)

	return b
}

// HasIndex reports whether the section declares an index packet.
func (h *CompressedVectorSectionHeader) HasIndex() bool {
	return h.IndexPhysicalOffset != 0
}

// ParseCompressedVectorSectionHeader parses the header from the start of data.
//
// Returns:
//   - CompressedVectorSectionHeader: Parsed header
//   - int: Number of bytes consumed
//   - error: see Parse
func ParseCompressedVectorSectionHeader(data []byte) (CompressedVectorSectionHeader, int, error) {
	if len(data) < CompressedVectorHeaderSize {
		return CompressedVectorSectionHeader{}, 0, fmt.Errorf("%w: %s needs %d bytes, got %d",
			errs.ErrInvalidHeaderSize, NameCompressedVectorHeader, CompressedVectorHeaderSize, len(data))
	}

	h := CompressedVectorSectionHeader{}
	if err := h.Parse(data[:CompressedVectorHeaderSize]); err != nil {
		return CompressedVectorSectionHeader{}, 0, err
	}

	return h, CompressedVectorHeaderSize, nil
}
