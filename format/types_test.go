package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseElementType(t *testing.T) {
	for _, name := range []string{"Integer", "ScaledInteger", "Float", "String", "Blob", "Structure", "Vector", "CompressedVector"} {
		t.Run(name, func(t *testing.T) {
			typ := ParseElementType(name)
			require.NotEqual(t, ElementUnknown, typ)
			require.Equal(t, name, typ.String())
		})
	}

	require.Equal(t, ElementUnknown, ParseElementType("integer"))
	require.Equal(t, "Unknown", ElementUnknown.String())
}

func TestParseCompressionType(t *testing.T) {
	tests := []struct {
		name string
		want CompressionType
		ok   bool
	}{
		{"", CompressionNone, true},
		{"none", CompressionNone, true},
		{"ZSTD", CompressionZstd, true},
		{"s2", CompressionS2, true},
		{"lz4", CompressionLZ4, true},
		{"gzip", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseCompressionType(tt.name)
			require.Equal(t, tt.ok, ok)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestPrecision(t *testing.T) {
	p, ok := ParsePrecision("")
	require.True(t, ok)
	require.Equal(t, 64, p.Bits())

	p, ok = ParsePrecision("single")
	require.True(t, ok)
	require.Equal(t, 32, p.Bits())
	require.Equal(t, "single", p.String())

	_, ok = ParsePrecision("half")
	require.False(t, ok)
}

func TestEnumStrings(t *testing.T) {
	require.Equal(t, "CompressedVector", SectionCompressedVector.String())
	require.Equal(t, "Unknown", SectionID(9).String())
	require.Equal(t, "Data", PacketData.String())
	require.Equal(t, "Index", PacketIndex.String())
	require.Equal(t, "Empty", PacketEmpty.String())
	require.Equal(t, "LZ4", CompressionLZ4.String())
}
