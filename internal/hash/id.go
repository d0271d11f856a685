// Package hash keys the prototype fields of a point stream so that
// PointStream.Field finds a field without scanning the prototype.
package hash

import "github.com/cespare/xxhash/v2"

// FieldID returns the xxHash64 key of a prototype field name such as
// "cartesianX" or a flattened "normal/x". E57 element names are
// case-sensitive, so the name is hashed byte for byte. Callers confirm the
// name after lookup.
func FieldID(name string) uint64 {
	return xxhash.Sum64String(name)
}
