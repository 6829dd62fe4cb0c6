package section

import "github.com/dkotfis/spline/errs"

// Header is the fixed-size header at the start of a trajectory envelope.
//
// Wire layout (16 bytes):
//
//	offset 0-1   Flag.Options (always little-endian)
//	offset 2     Flag.Compression
//	offset 3     reserved, must be zero
//	offset 4-7   ElementCount
//	offset 8-11  PayloadSize
//	offset 12-15 CompressedSize
//
// Multi-byte fields from offset 4 onward use the byte order recorded in the
// flag word. The compressed payload follows the header, and an 8-byte
// xxHash64 checksum of the uncompressed payload closes the envelope.
type Header struct {
	// Flag packs the magic number, byte order and compression type.
	Flag Flag
	// ElementCount is the number of scalar trajectory records in the payload
	// (1 for a scalar trajectory, the dimension count for an ND trajectory).
	ElementCount uint32
	// PayloadSize is the size of the uncompressed payload in bytes.
	PayloadSize uint32
	// CompressedSize is the size of the payload as stored, after compression.
	CompressedSize uint32
}

// NewHeader creates a header with default flags and zero counts.
// Counts and sizes are filled in when the encoder finishes.
func NewHeader() *Header {
	return &Header{Flag: NewFlag()}
}

// Parse parses and validates a header from data.
//
// It returns errs.ErrInvalidHeaderSize if data is shorter than HeaderSize,
// or a flag validation error for unknown magic, reserved bits or
// compression types.
func (h *Header) Parse(data []byte) error {
	if len(data) < HeaderSize {
		return errs.ErrInvalidHeaderSize
	}

	// The flag word is always little-endian so the byte-order bit can be
	// read before an engine is chosen.
	h.Flag.Options = uint16(data[0]) | uint16(data[1])<<8
	h.Flag.Compression = data[2]
	if data[3] != 0 {
		return errs.ErrInvalidHeaderFlags
	}
	if err := h.Flag.Validate(); err != nil {
		return err
	}

	engine := h.Flag.EndianEngine()
	h.ElementCount = engine.Uint32(data[4:8])
	h.PayloadSize = engine.Uint32(data[8:12])
	h.CompressedSize = engine.Uint32(data[12:16])

	return nil
}

// Bytes serializes the header into a new HeaderSize byte slice.
func (h *Header) Bytes() []byte {
	b := make([]byte, HeaderSize)

	b[0] = byte(h.Flag.Options)
	b[1] = byte(h.Flag.Options >> 8)
	b[2] = h.Flag.Compression
	b[3] = 0

	engine := h.Flag.EndianEngine()
	engine.PutUint32(b[4:8], h.ElementCount)
	engine.PutUint32(b[8:12], h.PayloadSize)
	engine.PutUint32(b[12:16], h.CompressedSize)

	return b
}
