package spline

import (
	"github.com/dkotfis/spline/format"
	"github.com/dkotfis/spline/internal/options"
)

// MarshalConfig holds the envelope parameters applied by Marshal.
type MarshalConfig struct {
	BigEndian   bool
	Compression format.CompressionType
}

func defaultMarshalConfig() MarshalConfig {
	return MarshalConfig{
		BigEndian:   false,
		Compression: format.CompressionNone,
	}
}

// MarshalOption is a functional option for MarshalConfig.
type MarshalOption = options.Option[*MarshalConfig]

// WithLittleEndian selects little-endian byte order (the default).
func WithLittleEndian() MarshalOption {
	return options.NoError(func(cfg *MarshalConfig) {
		cfg.BigEndian = false
	})
}

// WithBigEndian selects big-endian byte order.
func WithBigEndian() MarshalOption {
	return options.NoError(func(cfg *MarshalConfig) {
		cfg.BigEndian = true
	})
}

// WithCompression selects the payload compression codec.
func WithCompression(c format.CompressionType) MarshalOption {
	return options.NoError(func(cfg *MarshalConfig) {
		cfg.Compression = c
	})
}
