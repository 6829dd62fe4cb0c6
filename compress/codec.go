// Package compress provides the payload codecs used by the trajectory
// envelope format.
//
// Trajectory record payloads are arrays of IEEE 754 float64 values
// (polynomial coefficients, time shifts and breakpoints). Smooth
// trajectories carry many near-identical exponent bytes, so even fast
// codecs such as S2 and LZ4 shrink them noticeably; Zstd trades speed for
// the best ratio and suits archived trajectories.
package compress

import (
	"fmt"

	"github.com/dkotfis/spline/format"
)

// Compressor compresses a complete record payload.
type Compressor interface {
	// Compress compresses the input data and returns the compressed result.
	// The returned slice is newly allocated and owned by the caller; the
	// input slice is not modified.
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores a payload produced by the matching Compressor.
type Decompressor interface {
	// Decompress decompresses the input data and returns the original
	// payload. It returns an error if the data is corrupted or was
	// compressed with an incompatible algorithm.
	Decompress(data []byte) ([]byte, error)
}

// Codec combines compression and decompression capabilities.
type Codec interface {
	Compressor
	Decompressor
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec retrieves the built-in Codec for the given compression type.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("unsupported compression type: %s", compressionType)
}
