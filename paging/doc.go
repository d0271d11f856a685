// Package paging translates payload byte ranges of an E57 file into physical
// reads.
//
// An E57 file is a sequence of fixed-size pages. Each page carries
// PageSize-4 bytes of payload followed by a 4-byte checksum:
//
//	page 0                       page 1                       page 2
//	┌──────────────────────┬────┬──────────────────────┬────┬───────────
//	│ payload (PageContent)│ crc│ payload (PageContent)│ crc│ payload ...
//	└──────────────────────┴────┴──────────────────────┴────┴───────────
//
// Structures inside the file (the metadata document, section headers,
// packets) are addressed by the physical offset of their first byte and a
// length counted in payload bytes. Reading one means reading the rest of the
// first page's payload, then whole page payloads, then a final partial one:
//
//	PageSize=1024, offset=48, length=2000
//	  chunk 0: [48, 1020)    972 bytes, skip checksum 1020-1023
//	  chunk 1: [1024, 2044) 1020 bytes, skip checksum 2044-2047
//	  chunk 2: [2048, 2056)    8 bytes
//
// Checksums are skipped but their positions stay computable through
// Geometry.ChecksumOffset, so they can be verified without changing how
// payload is addressed.
//
// Geometry is a plain value. Nothing in this package keeps global state;
// each Translator carries the geometry of the file it reads.
package paging
