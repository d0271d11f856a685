package section

import "github.com/arloliu/e57/format"

// Signature is the literal that opens every E57 file.
const Signature = "ASTM-E57"

// Discriminant tags checked by the structure decoders.
const (
	TagCompressedVectorSection = uint8(format.SectionCompressedVector) // sectionId of a compressed vector section
	TagDataPacket              = uint8(format.PacketData)              // packetType of a data packet
	TagIndexPacket             = uint8(format.PacketIndex)             // packetType of an index packet
)

// Structure names used in error reports.
const (
	NameFileHeader             = "FileHeader"
	NameCompressedVectorHeader = "CompressedVectorSectionHeader"
	NameDataPacketHeader       = "DataPacketHeader"
	NameIndexPacketHeader      = "IndexPacketHeader"
)

// fixed sizes of the on-disk structures, in bytes
const (
	FileHeaderSize             = 48
	CompressedVectorHeaderSize = 32
	DataPacketHeaderSize       = 6
	IndexPacketHeaderSize      = 16
	BytestreamLengthSize       = 2 // each bytestream buffer length following a data packet header
	SignatureSize              = 8
)

// field offsets inside FileHeader
const (
	fhSignatureOffset          = 0
	fhMajorVersionOffset       = 8
	fhMinorVersionOffset       = 12
	fhFilePhysicalLengthOffset = 16
	fhXMLPhysicalOffsetOffset  = 24
	fhXMLLogicalLengthOffset   = 32
	fhPageSizeOffset           = 40
)
