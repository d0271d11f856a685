// Package e57test builds small, well-formed E57 files for tests.
//
// A Builder accumulates the payload of a file in logical (checksum-free)
// address space and lays it out into pages on Build, so offsets handed back
// to the caller are physical offsets that skip checksum trailers the same way
// a reader has to.
package e57test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/e57/paging"
	"github.com/arloliu/e57/section"
)

// DefaultChecksumFill is written into every checksum trailer. It is not a
// valid CRC, which lets tests detect checksum bytes leaking into payload.
const DefaultChecksumFill = 0xEE

// StreamLayout holds the physical offsets of the structures written by
// AppendPointStream.
type StreamLayout struct {
	SectionOffset uint64
	DataOffset    uint64
	IndexOffset   uint64
	// DataLogicalLength is the logical length of the data packet.
	DataLogicalLength uint64
}

// Builder assembles a paged E57 file in memory.
type Builder struct {
	geometry     paging.Geometry
	payload      []byte
	xml          []byte
	checksumFill byte

	signature      *string
	physicalLength *uint64
}

// NewBuilder creates a builder for the given page size. The file header is
// reserved at logical offset 0.
func NewBuilder(t testing.TB, pageSize uint64) *Builder {
	t.Helper()

	g, err := paging.NewGeometry(pageSize)
	require.NoError(t, err)
	require.GreaterOrEqual(t, g.PageContent, uint64(section.FileHeaderSize), "header must fit in the first page")

	return &Builder{
		geometry:     g,
		payload:      make([]byte, section.FileHeaderSize),
		checksumFill: DefaultChecksumFill,
	}
}

// Geometry returns the page geometry of the file under construction.
func (b *Builder) Geometry() paging.Geometry {
	return b.geometry
}

// Offset returns the physical offset the next appended byte will land on.
func (b *Builder) Offset() uint64 {
	return b.geometry.LogicalToPhysical(uint64(len(b.payload)))
}

// Append writes data at the current position and returns its physical offset.
func (b *Builder) Append(data []byte) uint64 {
	off := b.Offset()
	b.payload = append(b.payload, data...)

	return off
}

// Pad appends zero bytes until the next append starts at the given physical
// offset. The offset must not be behind the current position and must not
// lie in a checksum trailer.
func (b *Builder) Pad(t testing.TB, physical uint64) {
	t.Helper()

	logical, err := b.geometry.PhysicalToLogical(physical)
	require.NoError(t, err)
	require.GreaterOrEqual(t, logical, uint64(len(b.payload)))

	b.payload = append(b.payload, make([]byte, logical-uint64(len(b.payload)))...)
}

// AppendPointStream writes a compressed vector section header, one data
// packet carrying the given bytestream buffers and an empty index packet,
// back to back.
func (b *Builder) AppendPointStream(buffers ...[]byte) StreamLayout {
	dataLen := uint64(section.DataPacketHeaderSize + section.BytestreamLengthSize*len(buffers))
	for _, buf := range buffers {
		dataLen += uint64(len(buf))
	}

	sectionLogical := uint64(len(b.payload))
	dataLogical := sectionLogical + section.CompressedVectorHeaderSize
	indexLogical := dataLogical + dataLen

	layout := StreamLayout{
		SectionOffset:     b.geometry.LogicalToPhysical(sectionLogical),
		DataOffset:        b.geometry.LogicalToPhysical(dataLogical),
		IndexOffset:       b.geometry.LogicalToPhysical(indexLogical),
		DataLogicalLength: dataLen,
	}

	sh := section.NewCompressedVectorSectionHeader(
		section.CompressedVectorHeaderSize+dataLen+section.IndexPacketHeaderSize,
		layout.DataOffset,
		layout.IndexOffset,
	)
	b.Append(sh.Bytes())

	dh := section.DataPacketHeader{
		PacketType:                section.TagDataPacket,
		PacketLogicalLengthMinus1: uint16(dataLen - 1),
		BytestreamCount:           uint16(len(buffers)),
	}
	b.Append(dh.Bytes())
	for _, buf := range buffers {
		b.Append([]byte{byte(len(buf)), byte(len(buf) >> 8)})
	}
	for _, buf := range buffers {
		b.Append(buf)
	}

	ih := section.IndexPacketHeader{
		PacketType:                section.TagIndexPacket,
		PacketLogicalLengthMinus1: section.IndexPacketHeaderSize - 1,
	}
	b.Append(ih.Bytes())

	return layout
}

// SetXML sets the metadata document. It is written after everything else.
func (b *Builder) SetXML(xml string) *Builder {
	b.xml = []byte(xml)
	return b
}

// SetSignature overrides the header signature.
func (b *Builder) SetSignature(sig string) *Builder {
	b.signature = &sig
	return b
}

// SetPhysicalLength overrides the FilePhysicalLength header field.
func (b *Builder) SetPhysicalLength(n uint64) *Builder {
	b.physicalLength = &n
	return b
}

// SetChecksumFill sets the byte written into every checksum trailer.
func (b *Builder) SetChecksumFill(fill byte) *Builder {
	b.checksumFill = fill
	return b
}

// XMLOffset returns the physical offset the metadata document will start at.
func (b *Builder) XMLOffset() uint64 {
	return b.Offset()
}

// Build lays the payload out into pages and returns the file contents.
func (b *Builder) Build() []byte {
	logical := make([]byte, 0, len(b.payload)+len(b.xml))
	logical = append(logical, b.payload...)
	logical = append(logical, b.xml...)

	g := b.geometry
	pages := (uint64(len(logical)) + g.PageContent - 1) / g.PageContent
	out := make([]byte, pages*g.PageSize)
	for p := range pages {
		start := p * g.PageContent
		end := min(start+g.PageContent, uint64(len(logical)))
		page := out[p*g.PageSize : (p+1)*g.PageSize]
		copy(page, logical[start:end])
		for i := g.PageContent; i < g.PageSize; i++ {
			page[i] = b.checksumFill
		}
	}

	h := section.NewFileHeader(g.PageSize)
	h.FilePhysicalLength = uint64(len(out))
	h.XMLPhysicalOffset = b.XMLOffset()
	h.XMLLogicalLength = uint64(len(b.xml))
	if b.signature != nil {
		copy(h.Signature[:], []byte(*b.signature+"\x00\x00\x00\x00\x00\x00\x00\x00")[:section.SignatureSize])
	}
	if b.physicalLength != nil {
		h.FilePhysicalLength = *b.physicalLength
	}
	copy(out, h.Bytes())

	return out
}

// WriteFile builds the file into dir (t.TempDir() when empty) and returns
// its path.
func (b *Builder) WriteFile(t testing.TB, dir string) string {
	t.Helper()

	if dir == "" {
		dir = t.TempDir()
	}
	path := filepath.Join(dir, "synthetic.e57")
	require.NoError(t, os.WriteFile(path, b.Build(), 0o600))

	return path
}
