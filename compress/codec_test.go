package compress

import (
	"bytes"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dkotfis/spline/format"
)

// recordLike builds a payload shaped like a trajectory record: a run of
// float64 bit patterns with repetitive structure the codecs can exploit.
func recordLike(n int) []byte {
	rng := rand.New(rand.NewSource(42))
	buf := make([]byte, 0, n*8)
	var scratch [8]byte
	for i := 0; i < n; i++ {
		v := float64(i%16) + rng.Float64()*1e-3
		bits := math.Float64bits(v)
		for j := range scratch {
			scratch[j] = byte(bits >> (8 * j))
		}
		buf = append(buf, scratch[:]...)
	}

	return buf
}

func TestCodecRoundTrip(t *testing.T) {
	payloads := map[string][]byte{
		"empty":  {},
		"small":  []byte("piecewise"),
		"record": recordLike(2048),
	}

	for _, ct := range []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		codec, err := GetCodec(ct)
		require.NoError(t, err)

		for name, payload := range payloads {
			t.Run(ct.String()+"/"+name, func(t *testing.T) {
				compressed, err := codec.Compress(payload)
				require.NoError(t, err)

				got, err := codec.Decompress(compressed)
				require.NoError(t, err)
				require.True(t, bytes.Equal(payload, got))
			})
		}
	}
}

func TestCodecCompressesRecords(t *testing.T) {
	payload := recordLike(4096)

	for _, ct := range []format.CompressionType{
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		t.Run(ct.String(), func(t *testing.T) {
			codec, err := GetCodec(ct)
			require.NoError(t, err)

			compressed, err := codec.Compress(payload)
			require.NoError(t, err)
			require.Less(t, len(compressed), len(payload))
		})
	}
}

func TestGetCodecUnknown(t *testing.T) {
	_, err := GetCodec(format.CompressionType(0x7F))
	require.Error(t, err)
}

func TestDecompressCorrupted(t *testing.T) {
	for _, ct := range []format.CompressionType{
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		t.Run(ct.String(), func(t *testing.T) {
			codec, err := GetCodec(ct)
			require.NoError(t, err)

			_, err = codec.Decompress([]byte{0xDE, 0xAD, 0xBE, 0xEF, 0x00})
			require.Error(t, err)
		})
	}
}
