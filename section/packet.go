package section

import (
	"fmt"

	"github.com/arloliu/e57/endian"
	"github.com/arloliu/e57/errs"
)

// DataPacketHeader is the fixed 6-byte prefix of a data packet.
//
//	Bytes | Field                     | Type
//	------|---------------------------|-------
//	0     | PacketType (=1)           | uint8
//	1     | PacketFlags               | uint8
//	2-3   | PacketLogicalLengthMinus1 | uint16
//	4-5   | BytestreamCount           | uint16
type DataPacketHeader struct {
	PacketType                uint8
	PacketFlags               uint8
	PacketLogicalLengthMinus1 uint16
	BytestreamCount           uint16
}

// LogicalLength returns the full packet length in logical bytes.
func (h DataPacketHeader) LogicalLength() uint64 {
	return uint64(h.PacketLogicalLengthMinus1) + 1
}

// Parse parses the header from a byte slice of exactly 6 bytes.
//
// Returns:
//   - error: ErrInvalidHeaderSize for a wrong length, *errs.SectionTypeError
//     when PacketType is not TagDataPacket (Offset left at zero)
func (h *DataPacketHeader) Parse(data []byte) error {
	if len(data) != DataPacketHeaderSize {
		return fmt.Errorf("%w: %s needs %d bytes, got %d",
			errs.ErrInvalidHeaderSize, NameDataPacketHeader, DataPacketHeaderSize, len(data))
	}

	if data[0] != TagDataPacket {
		return &errs.SectionTypeError{Structure: NameDataPacketHeader, Expected: TagDataPacket, Actual: data[0]}
	}

	engine := endian.GetLittleEndianEngine()

	h.PacketType = data[0]
	h.PacketFlags = data[1]
	h.PacketLogicalLengthMinus1 = engine.Uint16(data[2:4])
	h.BytestreamCount = engine.Uint16(data[4:6])

	return nil
}

// Bytes serializes the header into a new 6-byte slice.
func (h DataPacketHeader) Bytes() []byte {
	engine := endian.GetLittleEndianEngine()

	b := make([]byte, 0, DataPacketHeaderSize)
	b = append(b, h.PacketType, h.PacketFlags)
	b = engine.AppendUint16(b, h.PacketLogicalLengthMinus1)
	b = engine.AppendUint16(b, h.BytestreamCount)

	return b
}

// ParseDataPacketHeader parses a DataPacketHeader from the start of data and
// returns the number of bytes consumed.
func ParseDataPacketHeader(data []byte) (DataPacketHeader, int, error) {
	if len(data) < DataPacketHeaderSize {
		return DataPacketHeader{}, 0, fmt.Errorf("%w: %s needs %d bytes, got %d",
			errs.ErrInvalidHeaderSize, NameDataPacketHeader, DataPacketHeaderSize, len(data))
	}

	h := DataPacketHeader{}
	if err := h.Parse(data[:DataPacketHeaderSize]); err != nil {
		return DataPacketHeader{}, 0, err
	}

	return h, DataPacketHeaderSize, nil
}

// DataPacket is a data packet header together with the buffer length of
// each bytestream that follows it. The bytestream contents stay packed.
type DataPacket struct {
	Header                  DataPacketHeader
	BytestreamBufferLengths []uint16
}

// PayloadLength returns the sum of all bytestream buffer lengths.
func (p DataPacket) PayloadLength() uint64 {
	var total uint64
	for _, n := range p.BytestreamBufferLengths {
		total += uint64(n)
	}

	return total
}

// ParseBytestreamLengths decodes count little-endian uint16 buffer lengths.
func ParseBytestreamLengths(data []byte, count int) ([]uint16, error) {
	need := count * BytestreamLengthSize
	if len(data) < need {
		return nil, fmt.Errorf("%w: %d bytestream lengths need %d bytes, got %d",
			errs.ErrInvalidHeaderSize, count, need, len(data))
	}

	engine := endian.GetLittleEndianEngine()
	lengths := make([]uint16, count)
	for i := range lengths {
		lengths[i] = engine.Uint16(data[i*BytestreamLengthSize:])
	}

	return lengths, nil
}

// IndexPacketHeader is the fixed 16-byte prefix of an index packet.
//
//	Bytes | Field                     | Type
//	------|---------------------------|---------
//	0     | PacketType (=0)           | uint8
//	1     | PacketFlags               | uint8
//	2-3   | PacketLogicalLengthMinus1 | uint16
//	4-5   | EntryCount                | uint16
//	6     | IndexLevel                | uint8
//	7-15  | Reserved                  | 9 bytes
type IndexPacketHeader struct {
	PacketType                uint8
	PacketFlags               uint8
	PacketLogicalLengthMinus1 uint16
	EntryCount                uint16
	IndexLevel                uint8
	Reserved                  [9]byte
}

// LogicalLength returns the full packet length in logical bytes.
func (h IndexPacketHeader) LogicalLength() uint64 {
	return uint64(h.PacketLogicalLengthMinus1) + 1
}

// Parse parses the header from a byte slice of exactly 16 bytes.
//
// Returns:
//   - error: ErrInvalidHeaderSize for a wrong length, *errs.SectionTypeError
//     when PacketType is not TagIndexPacket (Offset left at zero)
func (h *IndexPacketHeader) Parse(data []byte) error {
	if len(data) != IndexPacketHeaderSize {
		return fmt.Errorf("%w: %s needs %d bytes, got %d",
			errs.ErrInvalidHeaderSize, NameIndexPacketHeader, IndexPacketHeaderSize, len(data))
	}

	if data[0] != TagIndexPacket {
		return &errs.SectionTypeError{Structure: NameIndexPacketHeader, Expected: TagIndexPacket, Actual: data[0]}
	}

	engine := endian.GetLittleEndianEngine()

	h.PacketType = data[0]
	h.PacketFlags = data[1]
	h.PacketLogicalLengthMinus1 = engine.Uint16(data[2:4])
	h.EntryCount = engine.Uint16(data[4:6])
	h.IndexLevel = data[6]
	copy(h.Reserved[:], data[7:16])

	return nil
}

// Bytes serializes the header into a new 16-byte slice.
func (h IndexPacketHeader) Bytes() []byte {
	engine := endian.GetLittleEndianEngine()

	b := make([]byte, 0, IndexPacketHeaderSize)
	b = append(b, h.PacketType, h.PacketFlags)
	b = engine.AppendUint16(b, h.PacketLogicalLengthMinus1)
	b = engine.AppendUint16(b, h.EntryCount)
	b = append(b, h.IndexLevel)
	b = append(b, h.Reserved[:]...)

	return b
}

// ParseIndexPacketHeader parses an IndexPacketHeader from the start of data
// and returns the number of bytes consumed.
func ParseIndexPacketHeader(data []byte) (IndexPacketHeader, int, error) {
	if len(data) < IndexPacketHeaderSize {
		return IndexPacketHeader{}, 0, fmt.Errorf("%w: %s needs %d bytes, got %d",
			errs.ErrInvalidHeaderSize, NameIndexPacketHeader, IndexPacketHeaderSize, len(data))
	}

	h := IndexPacketHeader{}
	if err := h.Parse(data[:IndexPacketHeaderSize]); err != nil {
		return IndexPacketHeader{}, 0, err
	}

	return h, IndexPacketHeaderSize, nil
}
