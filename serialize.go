package spline

import (
	"io"
	"math"

	"github.com/dkotfis/spline/endian"
	"github.com/dkotfis/spline/errs"
)

// Trajectory record layout, little-endian:
//
//	uint32   segment count N
//	N records: segment in the polynomial's own binary format
//	N float64 time shifts
//	N+1 float64 breakpoints (absent when N == 0)
//
// The same record is the payload unit of the Marshal envelope, where the
// byte order may also be big-endian.

// Write serializes the trajectory record to w in little-endian byte order.
func (p *PiecewisePolynomial[P]) Write(w io.Writer) error {
	_, err := w.Write(p.appendRecord(nil, endian.GetLittleEndianEngine()))

	return err
}

// Read deserializes a little-endian trajectory record from r, replacing the
// contents of p. The record is decoded into scratch storage and committed
// only on success, so a truncated or malformed stream leaves p unchanged
// and returns a sentinel error from errs.
func (p *PiecewisePolynomial[P]) Read(r io.Reader) error {
	return p.readRecord(r, endian.GetLittleEndianEngine())
}

// appendRecord appends the trajectory record to dst and returns the
// extended slice.
func (p *PiecewisePolynomial[P]) appendRecord(dst []byte, engine endian.EndianEngine) []byte {
	dst = engine.AppendUint32(dst, uint32(len(p.segments)))
	for _, s := range p.segments {
		dst = s.AppendBinary(dst, engine)
	}
	for _, v := range p.timeShift {
		dst = engine.AppendUint64(dst, math.Float64bits(v))
	}
	for _, v := range p.times {
		dst = engine.AppendUint64(dst, math.Float64bits(v))
	}

	return dst
}

// maxRecordSegments bounds the declared segment count of a record so a
// corrupt stream cannot trigger a huge allocation.
const maxRecordSegments = 1 << 24

// readRecord decodes one trajectory record from r and commits it to p.
func (p *PiecewisePolynomial[P]) readRecord(r io.Reader, engine endian.EndianEngine) error {
	count, err := readUint32(r, engine)
	if err != nil {
		return err
	}
	if count > maxRecordSegments {
		return errs.ErrInvalidSegmentCount
	}
	if count == 0 {
		p.segments, p.timeShift, p.times = nil, nil, nil
		return nil
	}

	n := int(count)
	segments := make([]P, n)
	var zero P
	for i := range segments {
		if segments[i], err = zero.DecodeFrom(r, engine); err != nil {
			return err
		}
	}

	timeShift := make([]float64, n)
	for i := range timeShift {
		if timeShift[i], err = readFloat64(r, engine); err != nil {
			return err
		}
	}

	times := make([]float64, n+1)
	for i := range times {
		if times[i], err = readFloat64(r, engine); err != nil {
			return err
		}
	}
	if !strictlyIncreasing(times) {
		return errs.ErrNonIncreasingTimes
	}

	p.segments, p.timeShift, p.times = segments, timeShift, times

	return nil
}

func readUint32(r io.Reader, engine endian.EndianEngine) (uint32, error) {
	var b [4]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, errs.ErrTruncatedRecord
	}

	return engine.Uint32(b[:]), nil
}

func readFloat64(r io.Reader, engine endian.EndianEngine) (float64, error) {
	var b [8]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, errs.ErrTruncatedRecord
	}

	return math.Float64frombits(engine.Uint64(b[:])), nil
}
