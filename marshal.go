package spline

import (
	"bytes"

	"github.com/cespare/xxhash/v2"

	"github.com/dkotfis/spline/compress"
	"github.com/dkotfis/spline/endian"
	"github.com/dkotfis/spline/errs"
	"github.com/dkotfis/spline/internal/options"
	"github.com/dkotfis/spline/internal/pool"
	"github.com/dkotfis/spline/poly"
	"github.com/dkotfis/spline/section"
)

// Marshal serializes a scalar trajectory into a self-describing envelope:
// a fixed header (magic, byte order, compression, counts), the trajectory
// record payload compressed with the selected codec, and a trailing
// xxHash64 checksum of the uncompressed payload.
//
// The plain Write method produces the bare record for callers that manage
// framing themselves; Marshal is the format to use when the bytes leave
// the process.
func Marshal[P poly.Segment[P]](p *PiecewisePolynomial[P], opts ...MarshalOption) ([]byte, error) {
	return marshalRecords(1, p.appendRecord, opts)
}

// MarshalND serializes a vector trajectory into the same envelope as
// Marshal, with the element count recorded in the header.
func MarshalND[P poly.Segment[P]](p *PiecewisePolynomialND[P], opts ...MarshalOption) ([]byte, error) {
	return marshalRecords(uint32(p.Dims()), p.appendRecords, opts)
}

func marshalRecords(elements uint32, appendPayload func([]byte, endian.EndianEngine) []byte, opts []MarshalOption) ([]byte, error) {
	cfg := defaultMarshalConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	hdr := section.NewHeader()
	if cfg.BigEndian {
		hdr.Flag.WithBigEndian()
	}
	hdr.Flag.SetCompression(cfg.Compression)
	engine := hdr.Flag.EndianEngine()

	codec, err := compress.GetCodec(cfg.Compression)
	if err != nil {
		return nil, err
	}

	buf := pool.GetRecordBuffer()
	defer pool.PutRecordBuffer(buf)
	buf.B = appendPayload(buf.B, engine)
	payload := buf.Bytes()

	compressed, err := codec.Compress(payload)
	if err != nil {
		return nil, err
	}

	hdr.ElementCount = elements
	hdr.PayloadSize = uint32(len(payload))
	hdr.CompressedSize = uint32(len(compressed))

	out := make([]byte, 0, section.HeaderSize+len(compressed)+section.ChecksumSize)
	out = append(out, hdr.Bytes()...)
	out = append(out, compressed...)
	out = engine.AppendUint64(out, xxhash.Sum64(payload))

	return out, nil
}

// Unmarshal decodes an envelope produced by Marshal into a new scalar
// trajectory. It validates the header, payload sizes and checksum before
// decoding, returning sentinel errors from errs on any mismatch.
func Unmarshal[P poly.Segment[P]](data []byte) (*PiecewisePolynomial[P], error) {
	payload, hdr, err := openEnvelope(data)
	if err != nil {
		return nil, err
	}
	if hdr.ElementCount != 1 {
		return nil, errs.ErrDimensionMismatch
	}

	r := bytes.NewReader(payload)
	p := &PiecewisePolynomial[P]{}
	if err := p.readRecord(r, hdr.Flag.EndianEngine()); err != nil {
		return nil, err
	}
	if r.Len() != 0 {
		return nil, errs.ErrTruncatedRecord
	}

	return p, nil
}

// UnmarshalND decodes an envelope produced by MarshalND into a new vector
// trajectory.
func UnmarshalND[P poly.Segment[P]](data []byte) (*PiecewisePolynomialND[P], error) {
	payload, hdr, err := openEnvelope(data)
	if err != nil {
		return nil, err
	}

	r := bytes.NewReader(payload)
	p := &PiecewisePolynomialND[P]{}
	if err := p.readRecords(r, hdr.Flag.EndianEngine()); err != nil {
		return nil, err
	}
	if uint32(p.Dims()) != hdr.ElementCount {
		return nil, errs.ErrDimensionMismatch
	}
	if r.Len() != 0 {
		return nil, errs.ErrTruncatedRecord
	}

	return p, nil
}

// openEnvelope validates the header, sizes and checksum and returns the
// decompressed payload.
func openEnvelope(data []byte) ([]byte, *section.Header, error) {
	hdr := &section.Header{}
	if err := hdr.Parse(data); err != nil {
		return nil, nil, err
	}

	need := section.HeaderSize + int(hdr.CompressedSize) + section.ChecksumSize
	if len(data) < need {
		return nil, nil, errs.ErrTruncatedRecord
	}

	codec, err := compress.GetCodec(hdr.Flag.CompressionType())
	if err != nil {
		return nil, nil, err
	}
	payload, err := codec.Decompress(data[section.HeaderSize : section.HeaderSize+int(hdr.CompressedSize)])
	if err != nil {
		return nil, nil, err
	}
	if len(payload) != int(hdr.PayloadSize) {
		return nil, nil, errs.ErrTruncatedRecord
	}

	engine := hdr.Flag.EndianEngine()
	if xxhash.Sum64(payload) != engine.Uint64(data[need-section.ChecksumSize:need]) {
		return nil, nil, errs.ErrChecksumMismatch
	}

	return payload, hdr, nil
}
