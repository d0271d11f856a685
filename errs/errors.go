// Package errs defines the errors returned while decoding E57 containers.
//
// Every failure wraps one of the category sentinels below so callers can
// branch with errors.Is without caring about the message text:
//
//	ErrFormat      signature mismatch or metadata bytes that are not UTF-8
//	ErrSize        physical length not a multiple of the page size, bad page geometry
//	ErrSectionType discriminant tag of a section or packet header did not match
//	ErrIO          short read or unreadable file
//	ErrMetadata    malformed XML or a missing element/attribute
//
// SectionTypeError and IOError carry the offset and expected/actual values
// needed to diagnose a file without re-reading it.
package errs

import (
	"errors"
	"fmt"
)

var (
	ErrFormat      = errors.New("e57: invalid format")
	ErrSize        = errors.New("e57: invalid size")
	ErrSectionType = errors.New("e57: unexpected section type")
	ErrIO          = errors.New("e57: i/o error")
	ErrMetadata    = errors.New("e57: invalid metadata")

	ErrInvalidHeaderSize = errors.New("e57: invalid header size")
	ErrInvalidRange      = errors.New("e57: maximum is less than minimum")
	ErrClosed            = errors.New("e57: container is closed")
)

// SectionTypeError reports a structure whose discriminant byte does not hold
// the expected tag.
type SectionTypeError struct {
	// Structure names the record being decoded, e.g. "DataPacketHeader".
	Structure string
	// Offset is the physical file offset of the record.
	Offset   uint64
	Expected uint8
	Actual   uint8
}

func (e *SectionTypeError) Error() string {
	return fmt.Sprintf("%s: %s at offset %d: expected tag %d, got %d",
		ErrSectionType, e.Structure, e.Offset, e.Expected, e.Actual)
}

func (e *SectionTypeError) Unwrap() error {
	return ErrSectionType
}

// IOError reports a read that could not be completed. Partial data is never
// returned alongside it.
type IOError struct {
	Op     string
	Offset uint64
	Want   uint64
	Got    uint64
	Err    error
}

func (e *IOError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s at offset %d: read %d of %d bytes: %v",
			ErrIO, e.Op, e.Offset, e.Got, e.Want, e.Err)
	}

	return fmt.Sprintf("%s: %s at offset %d: read %d of %d bytes", ErrIO, e.Op, e.Offset, e.Got, e.Want)
}

func (e *IOError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrIO, e.Err}
	}

	return []error{ErrIO}
}
