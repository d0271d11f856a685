package format

import "strings"

type (
	ElementType     uint8
	SectionID       uint8
	PacketType      uint8
	CompressionType uint8
	Precision       uint8
)

const (
	ElementUnknown          ElementType = 0x0
	ElementInteger          ElementType = 0x1 // ElementInteger is a signed integer bounded by minimum/maximum.
	ElementScaledInteger    ElementType = 0x2 // ElementScaledInteger is an integer with scale and offset.
	ElementFloat            ElementType = 0x3 // ElementFloat is an IEEE 754 value of single or double precision.
	ElementString           ElementType = 0x4
	ElementBlob             ElementType = 0x5
	ElementStructure        ElementType = 0x6
	ElementVector           ElementType = 0x7
	ElementCompressedVector ElementType = 0x8

	SectionCompressedVector SectionID = 0x1 // SectionCompressedVector tags a compressed vector binary section.

	PacketIndex PacketType = 0x0 // PacketIndex tags an index packet.
	PacketData  PacketType = 0x1 // PacketData tags a data packet.
	PacketEmpty PacketType = 0x2 // PacketEmpty tags a filler packet.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.

	PrecisionDouble Precision = 0x0
	PrecisionSingle Precision = 0x1
)

var elementTypeNames = map[string]ElementType{
	"Integer":          ElementInteger,
	"ScaledInteger":    ElementScaledInteger,
	"Float":            ElementFloat,
	"String":           ElementString,
	"Blob":             ElementBlob,
	"Structure":        ElementStructure,
	"Vector":           ElementVector,
	"CompressedVector": ElementCompressedVector,
}

// ParseElementType maps the value of an E57 "type" attribute to an ElementType.
// Unknown names map to ElementUnknown.
func ParseElementType(name string) ElementType {
	return elementTypeNames[name]
}

func (e ElementType) String() string {
	switch e {
	case ElementInteger:
		return "Integer"
	case ElementScaledInteger:
		return "ScaledInteger"
	case ElementFloat:
		return "Float"
	case ElementString:
		return "String"
	case ElementBlob:
		return "Blob"
	case ElementStructure:
		return "Structure"
	case ElementVector:
		return "Vector"
	case ElementCompressedVector:
		return "CompressedVector"
	default:
		return "Unknown"
	}
}

func (s SectionID) String() string {
	switch s {
	case SectionCompressedVector:
		return "CompressedVector"
	default:
		return "Unknown"
	}
}

func (p PacketType) String() string {
	switch p {
	case PacketIndex:
		return "Index"
	case PacketData:
		return "Data"
	case PacketEmpty:
		return "Empty"
	default:
		return "Unknown"
	}
}

// ParseCompressionType maps a case-insensitive codec name to a CompressionType.
// The second return value is false for unknown names.
func ParseCompressionType(name string) (CompressionType, bool) {
	switch strings.ToLower(name) {
	case "none", "":
		return CompressionNone, true
	case "zstd":
		return CompressionZstd, true
	case "s2":
		return CompressionS2, true
	case "lz4":
		return CompressionLZ4, true
	default:
		return 0, false
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// ParsePrecision maps the "precision" attribute of a Float element. An empty
// value is the E57 default, double precision.
func ParsePrecision(value string) (Precision, bool) {
	switch value {
	case "", "double":
		return PrecisionDouble, true
	case "single":
		return PrecisionSingle, true
	default:
		return PrecisionDouble, false
	}
}

// Bits returns the storage width of a Float with this precision.
func (p Precision) Bits() int {
	if p == PrecisionSingle {
		return 32
	}

	return 64
}

func (p Precision) String() string {
	if p == PrecisionSingle {
		return "single"
	}

	return "double"
}
