// Package section defines the fixed-layout binary structures of an E57 file.
//
// Each structure has a Parse method that decodes a byte slice of its exact
// size, a Bytes method that serializes it, and a ParseXxx function that
// decodes from the start of a longer slice and reports how many bytes it
// consumed. All integers are little-endian.
//
// The package does no I/O and knows nothing about pages: callers hand it
// logical bytes that already had page checksums stripped (see package paging).
//
// # File Layout
//
//	┌─────────────────────────────────────────────────────────┐
//	│ FileHeader (48 bytes, physical offset 0)                │
//	├─────────────────────────────────────────────────────────┤
//	│ Binary sections (compressed vectors, blobs)             │
//	│  - CompressedVectorSectionHeader (32 bytes)             │
//	│  - Data packets / index packets                         │
//	├─────────────────────────────────────────────────────────┤
//	│ XML metadata document                                   │
//	└─────────────────────────────────────────────────────────┘
//
// The whole file is cut into pages of PageSize bytes; the last 4 bytes of
// every page are a checksum that does not belong to any structure.
//
// # FileHeader
//
//	Bytes  | Field              | Type
//	-------|--------------------|---------
//	0-7    | Signature          | "ASTM-E57"
//	8-11   | MajorVersion       | uint32
//	12-15  | MinorVersion       | uint32
//	16-23  | FilePhysicalLength | uint64
//	24-31  | XMLPhysicalOffset  | uint64
//	32-39  | XMLLogicalLength   | uint64
//	40-47  | PageSize           | uint64
//
// # CompressedVectorSectionHeader
//
//	Bytes  | Field                | Type
//	-------|----------------------|---------
//	0      | SectionID (=1)       | uint8
//	1-7    | Reserved             | 7 bytes
//	8-15   | SectionLogicalLength | uint64
//	16-23  | DataPhysicalOffset   | uint64
//	24-31  | IndexPhysicalOffset  | uint64
//
// # Discriminant Tags
//
// Section and packet headers start with a tag byte. Parse always checks it
// and returns *errs.SectionTypeError on mismatch, because otherwise arbitrary
// bytes would be read as a typed record:
//
//	CompressedVectorSectionHeader.SectionID  = 1
//	DataPacketHeader.PacketType              = 1
//	IndexPacketHeader.PacketType             = 0
//
// The parsers do not know where the bytes came from, so the Offset of a
// returned SectionTypeError is zero; the container fills it in.
//
// # Usage Examples
//
//	header, err := section.ParseFileHeader(buf)
//	if err != nil {
//	    return err
//	}
//	if err := header.Validate(); err != nil {
//	    return err
//	}
//
//	cv, n, err := section.ParseCompressedVectorSectionHeader(data)
package section
