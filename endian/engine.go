// Package endian provides the byte order used by E57 binary structures.
//
// Every multi-byte integer in an E57 file (file header, section headers,
// packet headers) is little-endian regardless of the host, so decoders take
// an EndianEngine instead of calling binary.LittleEndian directly. This keeps
// Parse/Bytes symmetric and lets callers append to buffers without a
// temporary slice:
//
//	engine := endian.GetLittleEndianEngine()
//	buf = engine.AppendUint64(buf, header.PageSize)
package endian

import (
	"encoding/binary"
	"unsafe"
)

// EndianEngine combines ByteOrder and AppendByteOrder from encoding/binary.
// It is satisfied by binary.LittleEndian and binary.BigEndian.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the engine for E57 structures.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// IsNativeLittleEndian reports whether the host stores integers little-endian,
// i.e. whether E57 integers can be read without byte swapping.
func IsNativeLittleEndian() bool {
	var i uint16 = 0x0100
	b := (*[2]byte)(unsafe.Pointer(&i))

	return b[0] == 0x00
}
