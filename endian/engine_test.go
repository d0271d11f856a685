package endian

import (
	"encoding/binary"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

func TestGetLittleEndianEngine(t *testing.T) {
	engine := GetLittleEndianEngine()
	require.Equal(t, binary.LittleEndian, engine)

	buf := engine.AppendUint32(nil, 0x0A0B0C0D)
	require.Equal(t, []byte{0x0D, 0x0C, 0x0B, 0x0A}, buf)
	require.Equal(t, uint32(0x0A0B0C0D), engine.Uint32(buf))
}

func TestIsNativeLittleEndian(t *testing.T) {
	var v uint16 = 0x0102
	b := (*[2]byte)(unsafe.Pointer(&v))

	require.Equal(t, b[0] == 0x02, IsNativeLittleEndian())
}
