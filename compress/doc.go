// Package compress provides the codecs used to export E57 metadata text.
//
// Metadata documents are XML and compress well, so the container can write
// them out through any of these codecs:
//
//	Codec | format.CompressionType | Library
//	------|------------------------|---------------------------------
//	None  | CompressionNone        | -
//	Zstd  | CompressionZstd        | github.com/klauspost/compress/zstd
//	S2    | CompressionS2          | github.com/klauspost/compress/s2
//	LZ4   | CompressionLZ4         | github.com/pierrec/lz4/v4 (frame)
//
// Building with cgo and the "gozstd" tag switches the Zstd codec to
// github.com/valyala/gozstd. Both produce standard zstd frames.
//
// Codecs are stateless values and safe for concurrent use; encoders and
// decoders are pooled internally.
//
//	codec, err := compress.GetCodec(format.CompressionZstd)
//	if err != nil {
//	    return err
//	}
//	packed, err := codec.Compress([]byte(xmlText))
//
// The output of every codec records its own decoded length, so exported
// metadata decodes without side information.
package compress
