package container

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/arloliu/e57/endian"
	"github.com/arloliu/e57/errs"
	"github.com/arloliu/e57/internal/options"
	"github.com/arloliu/e57/metadata"
	"github.com/arloliu/e57/paging"
	"github.com/arloliu/e57/section"
)

// Container is an open E57 file.
type Container struct {
	path       string
	header     section.FileHeader
	geometry   paging.Geometry
	translator *paging.Translator
	logger     *zap.Logger

	mu   sync.RWMutex
	file *os.File
}

// Open opens the E57 file at path and decodes its header.
//
// The header is read with one 48-byte read at offset 0. With validation on,
// the signature and the page alignment of the physical length are checked.
// The file is closed again when any step fails.
//
// Returns:
//   - *Container: the open container
//   - error: *errs.IOError when the file cannot be opened or is shorter than
//     the header, ErrFormat or ErrSize from header validation, ErrSize for a
//     page size too small to hold payload
func Open(path string, opts ...Option) (*Container, error) {
	cfg := newConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, &errs.IOError{Op: "open " + path, Err: err}
	}

	c, err := newContainer(f, path, cfg)
	if err != nil {
		_ = f.Close()
		return nil, err
	}

	return c, nil
}

func newContainer(f *os.File, path string, cfg *Config) (*Container, error) {
	log := cfg.logger.With(zap.String("path", path))

	info, err := f.Stat()
	if err != nil {
		return nil, &errs.IOError{Op: "stat " + path, Err: err}
	}
	size := uint64(info.Size()) //nolint: gosec

	buf := make([]byte, section.FileHeaderSize)
	n, err := f.ReadAt(buf, 0)
	if n < section.FileHeaderSize {
		if err == nil || errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}

		return nil, &errs.IOError{Op: "read file header", Want: section.FileHeaderSize, Got: uint64(n), Err: err}
	}

	header, err := section.ParseFileHeader(buf)
	if err != nil {
		return nil, err
	}

	if cfg.validate {
		if err := header.Validate(); err != nil {
			return nil, err
		}
	}

	geometry, err := paging.NewGeometry(header.PageSize)
	if err != nil {
		return nil, err
	}

	log.Debug("opened e57 container",
		zap.Uint32("major_version", header.MajorVersion),
		zap.Uint32("minor_version", header.MinorVersion),
		zap.Uint64("physical_length", header.FilePhysicalLength),
		zap.Uint64("page_size", header.PageSize),
		zap.Uint64("page_content", geometry.PageContent),
		zap.Uint64("xml_offset", header.XMLPhysicalOffset),
		zap.Uint64("xml_length", header.XMLLogicalLength),
		zap.Bool("validated", cfg.validate),
		zap.Bool("native_little_endian", endian.IsNativeLittleEndian()),
	)

	if header.FilePhysicalLength != size {
		log.Warn("header physical length differs from file size",
			zap.Uint64("header_length", header.FilePhysicalLength),
			zap.Uint64("file_size", size))
	}

	return &Container{
		path:       path,
		header:     header,
		geometry:   geometry,
		translator: paging.NewTranslator(f, geometry, size),
		logger:     log,
		file:       f,
	}, nil
}

// Close releases the file handle. Calls after the first return nil.
func (c *Container) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.file == nil {
		return nil
	}

	err := c.file.Close()
	c.file = nil
	if err != nil {
		return &errs.IOError{Op: "close " + c.path, Err: err}
	}

	return nil
}

// Path returns the path the container was opened from.
func (c *Container) Path() string {
	return c.path
}

// Header returns the decoded file header.
func (c *Container) Header() section.FileHeader {
	return c.header
}

// Geometry returns the page geometry declared by the header.
func (c *Container) Geometry() paging.Geometry {
	return c.geometry
}

// readAt reads length payload bytes at a physical offset, failing with
// ErrClosed after Close.
func (c *Container) readAt(offset, length uint64) ([]byte, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.file == nil {
		return nil, errs.ErrClosed
	}

	return c.translator.ReadAt(offset, length)
}

// ReadMetadataText reads the metadata document and returns it as text.
//
// Returns:
//   - string: the XML text
//   - error: ErrFormat when the bytes are not valid UTF-8, ErrSize or
//     *errs.IOError from the page translator
func (c *Container) ReadMetadataText() (string, error) {
	data, err := c.readAt(c.header.XMLPhysicalOffset, c.header.XMLLogicalLength)
	if err != nil {
		return "", fmt.Errorf("read metadata: %w", err)
	}

	if !utf8.Valid(data) {
		return "", fmt.Errorf("%w: metadata at offset %d is not valid UTF-8", errs.ErrFormat, c.header.XMLPhysicalOffset)
	}

	c.logger.Debug("read metadata",
		zap.Uint64("offset", c.header.XMLPhysicalOffset),
		zap.Int("bytes", len(data)),
		zap.Uint64("pages", c.geometry.PageCount(c.header.XMLPhysicalOffset%c.geometry.PageSize+c.header.XMLLogicalLength)))

	return string(data), nil
}

// Metadata reads and parses the metadata document.
func (c *Container) Metadata() (*metadata.Document, error) {
	text, err := c.ReadMetadataText()
	if err != nil {
		return nil, err
	}

	return metadata.Parse(text)
}

// ListPointStreams returns a descriptor for every CompressedVector element of
// the metadata, in document order.
func (c *Container) ListPointStreams() ([]metadata.PointStream, error) {
	doc, err := c.Metadata()
	if err != nil {
		return nil, err
	}

	streams, err := doc.PointStreams()
	if err != nil {
		return nil, err
	}

	c.logger.Debug("listed point streams", zap.Int("count", len(streams)))

	return streams, nil
}
