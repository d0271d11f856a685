package section

import (
	"fmt"

	"github.com/arloliu/e57/endian"
	"github.com/arloliu/e57/errs"
)

// FileHeader is the fixed 48-byte header at physical offset 0 of an E57 file.
type FileHeader struct {
	// Signature must hold the ASCII literal "ASTM-E57".
	Signature [SignatureSize]byte // byte offset 0-7
	// MajorVersion and MinorVersion of the E57 standard the file follows.
	MajorVersion uint32 // byte offset 8-11
	MinorVersion uint32 // byte offset 12-15
	// FilePhysicalLength is the total file size including page checksums.
	FilePhysicalLength uint64 // byte offset 16-23
	// XMLPhysicalOffset is where the metadata document starts on disk.
	XMLPhysicalOffset uint64 // byte offset 24-31
	// XMLLogicalLength is the metadata size with checksums excluded.
	XMLLogicalLength uint64 // byte offset 32-39
	// PageSize is the physical page size, checksum trailer included.
	PageSize uint64 // byte offset 40-47
}

// NewFileHeader creates a header carrying the E57 signature, version 1.0 and
// the given page size. Lengths and offsets are filled in by the writer.
func NewFileHeader(pageSize uint64) FileHeader {
	h := FileHeader{
		MajorVersion: 1,
		MinorVersion: 0,
		PageSize:     pageSize,
	}
	copy(h.Signature[:], Signature)

	return h
}

// Parse parses the header from a byte slice.
//
// Parameters:
//   - data: Byte slice containing the header (must be exactly 48 bytes)
//
// Returns:
//   - error: ErrInvalidHeaderSize if data is not 48 bytes
//
// Parse performs no semantic checks; call Validate for those.
func (h *FileHeader) Parse(data []byte) error {
	if len(data) != FileHeaderSize {
		return fmt.Errorf("%w: %s needs %d bytes, got %d", errs.ErrInvalidHeaderSize, NameFileHeader, FileHeaderSize, len(data))
	}

	engine := endian.GetLittleEndianEngine()

	copy(h.Signature[:], data[fhSignatureOffset:fhMajorVersionOffset])
	h.MajorVersion = engine.Uint32(data[fhMajorVersionOffset:fhMinorVersionOffset])
	h.MinorVersion = engine.Uint32(data[fhMinorVersionOffset:fhFilePhysicalLengthOffset])
	h.FilePhysicalLength = engine.Uint64(data[fhFilePhysicalLengthOffset:fhXMLPhysicalOffsetOffset])
	h.XMLPhysicalOffset = engine.Uint64(data[fhXMLPhysicalOffsetOffset:fhXMLLogicalLengthOffset])
	h.XMLLogicalLength = engine.Uint64(data[fhXMLLogicalLengthOffset:fhPageSizeOffset])
	h.PageSize = engine.Uint64(data[fhPageSizeOffset:FileHeaderSize])

	return nil
}

// Bytes serializes the header into a new 48-byte slice.
func (h *FileHeader) Bytes() []byte {
	engine := endian.GetLittleEndianEngine()

	b := make([]byte, 0, FileHeaderSize)
	b = append(b, h.Signature[:]...)
	b = engine.AppendUint32(b, h.MajorVersion)
	b = engine.AppendUint32(b, h.MinorVersion)
	b = engine.AppendUint64(b, h.FilePhysicalLength)
	b = engine.AppendUint64(b, h.XMLPhysicalOffset)
	b = engine.AppendUint64(b, h.XMLLogicalLength)
	b = engine.AppendUint64(b, h.PageSize)

	return b
}

// SignatureString returns the signature bytes as a string.
func (h FileHeader) SignatureString() string {
	return string(h.Signature[:])
}

// Validate checks the signature and the page alignment of the file length.
//
// Returns:
//   - error: wraps ErrFormat on a signature mismatch, ErrSize when the page
//     size is zero or FilePhysicalLength is not a multiple of it
func (h FileHeader) Validate() error {
	if h.SignatureString() != Signature {
		return fmt.Errorf("%w: signature %q, want %q", errs.ErrFormat, h.SignatureString(), Signature)
	}

	if h.PageSize == 0 {
		return fmt.Errorf("%w: page size is zero", errs.ErrSize)
	}

	if h.FilePhysicalLength%h.PageSize != 0 {
		return fmt.Errorf("%w: physical length %d is not a multiple of page size %d",
			errs.ErrSize, h.FilePhysicalLength, h.PageSize)
	}

	return nil
}

// ParseFileHeader parses a FileHeader from the start of a byte slice.
//
// Parameters:
//   - data: Byte slice containing the header (must be at least 48 bytes)
//
// Returns:
//   - FileHeader: Parsed header struct
//   - error: ErrInvalidHeaderSize if data is too short
func ParseFileHeader(data []byte) (FileHeader, error) {
	if len(data) < FileHeaderSize {
		return FileHeader{}, fmt.Errorf("%w: %s needs %d bytes, got %d", errs.ErrInvalidHeaderSize, NameFileHeader, FileHeaderSize, len(data))
	}

	h := FileHeader{}
	if err := h.Parse(data[:FileHeaderSize]); err != nil {
		return FileHeader{}, err
	}

	return h, nil
}
