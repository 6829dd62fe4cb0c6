package section

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dkotfis/spline/errs"
	"github.com/dkotfis/spline/format"
)

func TestFlagDefaults(t *testing.T) {
	f := NewFlag()

	require.True(t, f.IsLittleEndian())
	require.Equal(t, uint16(MagicTrajectoryV1), f.MagicNumber())
	require.Equal(t, format.CompressionNone, f.CompressionType())
	require.NoError(t, f.Validate())
}

func TestFlagEndianness(t *testing.T) {
	f := NewFlag()

	f.WithBigEndian()
	require.False(t, f.IsLittleEndian())
	require.NoError(t, f.Validate())
	require.Equal(t, uint16(MagicTrajectoryV1), f.MagicNumber())

	f.WithLittleEndian()
	require.True(t, f.IsLittleEndian())
}

func TestFlagValidate(t *testing.T) {
	t.Run("bad magic", func(t *testing.T) {
		f := NewFlag()
		f.Options ^= 0x1000
		require.ErrorIs(t, f.Validate(), errs.ErrInvalidMagicNumber)
	})

	t.Run("reserved bits", func(t *testing.T) {
		f := NewFlag()
		f.Options |= 0x0004
		require.ErrorIs(t, f.Validate(), errs.ErrInvalidHeaderFlags)
	})

	t.Run("unknown compression", func(t *testing.T) {
		f := NewFlag()
		f.Compression = 0x7F
		require.ErrorIs(t, f.Validate(), errs.ErrInvalidHeaderFlags)
	})
}

func TestHeaderRoundTrip(t *testing.T) {
	tests := []struct {
		name      string
		bigEndian bool
	}{
		{name: "little endian"},
		{name: "big endian", bigEndian: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHeader()
			if tt.bigEndian {
				h.Flag.WithBigEndian()
			}
			h.Flag.SetCompression(format.CompressionLZ4)
			h.ElementCount = 3
			h.PayloadSize = 4096
			h.CompressedSize = 512

			data := h.Bytes()
			require.Len(t, data, HeaderSize)

			var got Header
			require.NoError(t, got.Parse(data))
			require.Equal(t, *h, got)
		})
	}
}

func TestHeaderParseErrors(t *testing.T) {
	valid := NewHeader().Bytes()

	t.Run("short input", func(t *testing.T) {
		var h Header
		require.ErrorIs(t, h.Parse(valid[:HeaderSize-1]), errs.ErrInvalidHeaderSize)
	})

	t.Run("nonzero reserved byte", func(t *testing.T) {
		data := append([]byte(nil), valid...)
		data[3] = 1
		var h Header
		require.ErrorIs(t, h.Parse(data), errs.ErrInvalidHeaderFlags)
	})

	t.Run("bad magic", func(t *testing.T) {
		data := append([]byte(nil), valid...)
		data[1] ^= 0xFF
		var h Header
		require.ErrorIs(t, h.Parse(data), errs.ErrInvalidMagicNumber)
	})
}
