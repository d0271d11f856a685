// Package encoding holds the numeric rules that govern how E57 point fields
// are packed into data packet bytestreams.
//
// An Integer or ScaledInteger field declares a [minimum, maximum] range in the
// metadata document. Each record stores value-minimum in exactly BitWidth bits,
// so the width is the number of bits needed to represent maximum-minimum:
//
//	range                 | bits
//	----------------------|-----
//	[x, x]                | 0
//	[0, 1]                | 1
//	[0, 255]              | 8
//	[0, 256]              | 9
//	[-2^63, 2^63-1]       | 64
//
// Decoding the bytestreams themselves is outside this module.
package encoding
