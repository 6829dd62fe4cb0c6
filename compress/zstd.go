package compress

// ZstdCompressor compresses payloads with Zstandard.
//
// Zstd gives the best ratio of the built-in codecs and suits archived or
// rarely-read trajectories. Two implementations exist behind build tags:
// cgo builds use valyala/gozstd (libzstd bindings), non-cgo builds use the
// pure-Go klauspost/compress/zstd. The two produce interchangeable frames.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
