// Package section defines the fixed-size envelope header that precedes a
// serialized trajectory payload, including the packed flag word that
// records byte order and payload compression.
package section

import (
	"github.com/dkotfis/spline/endian"
	"github.com/dkotfis/spline/errs"
	"github.com/dkotfis/spline/format"
)

// Flag is the packed flag word at the start of an envelope header.
type Flag struct {
	// Options packs the magic number and byte-order flag.
	// Bit 0 is the endianness flag: 0 means little-endian, 1 means big-endian.
	// Bits 1-3 are reserved and must be zero.
	// Bits 4-15 are the magic number identifying the envelope format.
	Options uint16

	// Compression is the format.CompressionType applied to the payload.
	Compression uint8
}

var validCompressions = map[uint8]struct{}{
	uint8(format.CompressionNone): {},
	uint8(format.CompressionZstd): {},
	uint8(format.CompressionS2):   {},
	uint8(format.CompressionLZ4):  {},
}

// NewFlag creates a Flag with the default settings: trajectory magic,
// little-endian byte order, no compression.
func NewFlag() Flag {
	return Flag{
		Options:     MagicTrajectoryV1,
		Compression: uint8(format.CompressionNone),
	}
}

// IsLittleEndian reports whether the payload byte order is little-endian.
func (f Flag) IsLittleEndian() bool {
	return (f.Options & EndiannessMask) == 0
}

// WithLittleEndian sets little-endian byte order.
func (f *Flag) WithLittleEndian() {
	f.Options &^= EndiannessMask
}

// WithBigEndian sets big-endian byte order.
func (f *Flag) WithBigEndian() {
	f.Options |= EndiannessMask
}

// CompressionType returns the payload compression type.
func (f Flag) CompressionType() format.CompressionType {
	return format.CompressionType(f.Compression)
}

// SetCompression sets the payload compression type.
func (f *Flag) SetCompression(c format.CompressionType) {
	f.Compression = uint8(c)
}

// MagicNumber returns the magic-number bits of the Options field.
func (f Flag) MagicNumber() uint16 {
	return f.Options & MagicNumberMask
}

// EndianEngine returns the engine matching the endianness flag.
func (f Flag) EndianEngine() endian.EndianEngine {
	if f.IsLittleEndian() {
		return endian.GetLittleEndianEngine()
	}

	return endian.GetBigEndianEngine()
}

// Validate checks the magic number, reserved bits and compression type.
func (f Flag) Validate() error {
	if f.MagicNumber() != MagicTrajectoryV1 {
		return errs.ErrInvalidMagicNumber
	}
	if f.Options&ReservedMask != 0 {
		return errs.ErrInvalidHeaderFlags
	}
	if _, ok := validCompressions[f.Compression]; !ok {
		return errs.ErrInvalidHeaderFlags
	}

	return nil
}
