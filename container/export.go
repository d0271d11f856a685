package container

import (
	"io"

	"go.uber.org/zap"

	"github.com/arloliu/e57/compress"
	"github.com/arloliu/e57/errs"
	"github.com/arloliu/e57/format"
)

// ExportMetadata writes the metadata document to w, compressed with the
// given codec. CompressionNone writes the XML text unchanged.
//
// Returns:
//   - compress.CompressionStats: original and written sizes
//   - error: an unknown compression type, a read error, or *errs.IOError
//     when w fails
func (c *Container) ExportMetadata(w io.Writer, compression format.CompressionType) (compress.CompressionStats, error) {
	codec, err := compress.CreateCodec(compression, "metadata")
	if err != nil {
		return compress.CompressionStats{}, err
	}

	text, err := c.ReadMetadataText()
	if err != nil {
		return compress.CompressionStats{}, err
	}

	packed, stats, err := compress.CompressWithStats(codec, compression, []byte(text))
	if err != nil {
		return compress.CompressionStats{}, err
	}

	n, err := w.Write(packed)
	if err != nil {
		return compress.CompressionStats{}, &errs.IOError{
			Op:   "write metadata",
			Want: uint64(len(packed)),
			Got:  uint64(n), //nolint: gosec
			Err:  err,
		}
	}

	c.logger.Debug("exported metadata",
		zap.Stringer("compression", compression),
		zap.Int64("original_bytes", stats.OriginalSize),
		zap.Int64("written_bytes", stats.CompressedSize),
	)

	return stats, nil
}
