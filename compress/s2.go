package compress

import "github.com/klauspost/compress/s2"

// S2Compressor writes exported metadata as a single S2 block, readable with
// s2.Decode. It is the codec behind `e57info xml --compress s2`.
type S2Compressor struct{}

var _ Codec = (*S2Compressor)(nil)

// NewS2Compressor creates an S2 codec.
func NewS2Compressor() S2Compressor {
	return S2Compressor{}
}

// Compress encodes the whole metadata document as one S2 block. Empty input
// stays empty.
func (c S2Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Encode(nil, data), nil
}

// Decompress decodes a block written by Compress.
func (c S2Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Decode(nil, data)
}
