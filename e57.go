// Package e57 decodes the container layer of ASTM E57 3D imaging files.
//
// An E57 file is a 48-byte header followed by fixed-size pages, each ending
// in a 4-byte checksum. The header locates an XML metadata document that
// describes the point clouds; each point cloud is a CompressedVector whose
// binary section holds bit-packed records in data packets, indexed by index
// packets.
//
// # Core Features
//
//   - Paged addressing that skips checksum trailers on every read
//   - Decoding of the file header, compressed vector section headers and
//     data/index packet headers, with discriminant checks
//   - Namespace-aware metadata queries and point stream descriptors
//   - Bit widths of packed integer fields from their declared range
//   - Metadata export through zstd, S2 or LZ4
//
// # Basic Usage
//
//	c, err := e57.Open("bunny.e57", true)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer c.Close()
//
//	streams, err := c.Resolve()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, rs := range streams {
//	    for _, f := range rs.Stream.Fields {
//	        bits, _ := f.BitWidth()
//	        fmt.Printf("%s: %s, %d bits\n", rs.Stream.Path, f.Name, bits)
//	    }
//	}
//
// # Package Structure
//
// This package provides thin wrappers around the container and encoding
// packages for the most common calls. Use container directly for logging
// and other options, section and paging for the raw structures.
package e57

import (
	"github.com/arloliu/e57/container"
	"github.com/arloliu/e57/encoding"
)

// Open opens the E57 file at path.
//
// Parameters:
//   - path: File to open
//   - validate: Check the signature and that the physical length is a
//     multiple of the page size
//   - opts: Further container options, e.g. container.WithLogger
//
// Returns:
//   - *container.Container: The open container; Close it when done
//   - error: see container.Open
func Open(path string, validate bool, opts ...container.Option) (*container.Container, error) {
	allOpts := append([]container.Option{container.WithValidation(validate)}, opts...)
	return container.Open(path, allOpts...)
}

// ComputeBitWidth returns the number of bits a packed integer field with the
// declared inclusive range [minimum, maximum] occupies: 0 when the bounds are
// equal, otherwise ceil(log2(maximum-minimum+1)), at most 64.
//
// Returns:
//   - int: Bit width in [0, 64]
//   - error: errs.ErrInvalidRange if maximum < minimum
//
// Example:
//
//	bits, _ := e57.ComputeBitWidth(0, 255)  // 8
//	bits, _ = e57.ComputeBitWidth(-100000, 100000) // 18
func ComputeBitWidth(minimum, maximum int64) (int, error) {
	return encoding.BitWidth(minimum, maximum)
}
