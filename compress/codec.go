package compress

import (
	"fmt"

	"github.com/arloliu/e57/format"
)

// Compressor compresses a complete payload.
//
// The returned slice is owned by the caller. The input is not modified, but
// the no-op codec returns it unchanged.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor reverses a Compressor of the same algorithm.
type Decompressor interface {
	// Decompress returns an error if data is corrupted or was produced by
	// another algorithm.
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions.
type Codec interface {
	Compressor
	Decompressor
}

// CompressionStats reports the outcome of compressing one payload.
type CompressionStats struct {
	Algorithm      format.CompressionType
	OriginalSize   int64
	CompressedSize int64
}

// CompressionRatio returns compressed size / original size, or 0 for an
// empty original.
func (s CompressionStats) CompressionRatio() float64 {
	if s.OriginalSize == 0 {
		return 0.0
	}

	return float64(s.CompressedSize) / float64(s.OriginalSize)
}

// SpaceSavings returns the saved space as a percentage.
func (s CompressionStats) SpaceSavings() float64 {
	return (1.0 - s.CompressionRatio()) * 100.0
}

// CreateCodec creates a new Codec for the given compression type.
//
// Parameters:
//   - compressionType: Type of compression (None, Zstd, S2, or LZ4)
//   - target: What the codec is for, used in the error message
//
// Returns:
//   - Codec: codec for the type
//   - error: unknown compression type
func CreateCodec(compressionType format.CompressionType, target string) (Codec, error) {
	switch compressionType {
	case format.CompressionNone:
		return NewNoOpCompressor(), nil
	case format.CompressionZstd:
		return NewZstdCompressor(), nil
	case format.CompressionS2:
		return NewS2Compressor(), nil
	case format.CompressionLZ4:
		return NewLZ4Compressor(), nil
	default:
		return nil, fmt.Errorf("invalid %s compression: %s", target, compressionType)
	}
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec returns the shared built-in Codec for the compression type.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("unsupported compression type: %s", compressionType)
}

// CompressWithStats compresses data with codec and reports the sizes.
func CompressWithStats(codec Codec, algorithm format.CompressionType, data []byte) ([]byte, CompressionStats, error) {
	out, err := codec.Compress(data)
	if err != nil {
		return nil, CompressionStats{}, fmt.Errorf("%s compression: %w", algorithm, err)
	}

	return out, CompressionStats{
		Algorithm:      algorithm,
		OriginalSize:   int64(len(data)),
		CompressedSize: int64(len(out)),
	}, nil
}
