package container

import (
	"errors"
	"fmt"

	"github.com/arloliu/e57/errs"
	"github.com/arloliu/e57/section"
)

// readRecord reads size payload bytes at offset and decodes them with parse.
// A *errs.SectionTypeError returned by parse gets the offset filled in.
func readRecord[T any](c *Container, name string, offset uint64, size int,
	parse func([]byte) (T, int, error),
) (T, int, error) {
	var zero T

	data, err := c.readAt(offset, uint64(size))
	if err != nil {
		return zero, 0, fmt.Errorf("read %s: %w", name, err)
	}

	rec, n, err := parse(data)
	if err != nil {
		var typeErr *errs.SectionTypeError
		if errors.As(err, &typeErr) {
			typeErr.Offset = offset
		}

		return zero, 0, err
	}

	return rec, n, nil
}

// ReadSectionHeader decodes the compressed vector section header at a
// physical offset.
//
// Returns:
//   - CompressedVectorSectionHeader: the header
//   - int: bytes consumed, always 32
//   - error: *errs.SectionTypeError when sectionId is not 1, or a read error
func (c *Container) ReadSectionHeader(offset uint64) (section.CompressedVectorSectionHeader, int, error) {
	return readRecord(c, section.NameCompressedVectorHeader, offset,
		section.CompressedVectorHeaderSize, section.ParseCompressedVectorSectionHeader)
}

// ReadDataPacketHeader decodes the data packet header at a physical offset.
//
// Returns:
//   - DataPacketHeader: the header
//   - int: bytes consumed, always 6
//   - error: *errs.SectionTypeError when packetType is not 1, or a read error
func (c *Container) ReadDataPacketHeader(offset uint64) (section.DataPacketHeader, int, error) {
	return readRecord(c, section.NameDataPacketHeader, offset,
		section.DataPacketHeaderSize, section.ParseDataPacketHeader)
}

// ReadDataPacket decodes the data packet header at a physical offset
// together with the bytestream buffer lengths that follow it. The lengths
// may sit on the next page.
//
// Returns:
//   - DataPacket: header and buffer lengths
//   - int: logical bytes consumed, 6 + 2*BytestreamCount
//   - error: as ReadDataPacketHeader
func (c *Container) ReadDataPacket(offset uint64) (section.DataPacket, int, error) {
	h, n, err := c.ReadDataPacketHeader(offset)
	if err != nil {
		return section.DataPacket{}, 0, err
	}

	count := int(h.BytestreamCount)
	if count == 0 {
		return section.DataPacket{Header: h, BytestreamBufferLengths: []uint16{}}, n, nil
	}

	next, err := c.geometry.Advance(offset, uint64(n))
	if err != nil {
		return section.DataPacket{}, 0, err
	}

	lengths, _, err := readRecord(c, "bytestream lengths", next, count*section.BytestreamLengthSize,
		func(data []byte) ([]uint16, int, error) {
			l, err := section.ParseBytestreamLengths(data, count)
			return l, len(data), err
		})
	if err != nil {
		return section.DataPacket{}, 0, err
	}

	return section.DataPacket{Header: h, BytestreamBufferLengths: lengths}, n + count*section.BytestreamLengthSize, nil
}

// ReadIndexPacketHeader decodes the index packet header at a physical offset.
//
// Returns:
//   - IndexPacketHeader: the header
//   - int: bytes consumed, always 16
//   - error: *errs.SectionTypeError when packetType is not 0, or a read error
func (c *Container) ReadIndexPacketHeader(offset uint64) (section.IndexPacketHeader, int, error) {
	return readRecord(c, section.NameIndexPacketHeader, offset,
		section.IndexPacketHeaderSize, section.ParseIndexPacketHeader)
}
