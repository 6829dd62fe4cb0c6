package spline

import (
	"io"

	"github.com/dkotfis/spline/endian"
	"github.com/dkotfis/spline/errs"
	"github.com/dkotfis/spline/poly"
)

// PiecewisePolynomialND is a vector-valued trajectory: one independent
// scalar PiecewisePolynomial per output dimension, all sharing an identical
// breakpoint timeline. Every operation broadcasts element-wise.
//
// The shared timeline is a semantic precondition, not a checked invariant:
// every trajectory handed to NewND must carry the same breakpoints, and
// every structural edit applies the same time arguments to all elements.
// Violating it is ill-formed input, and evaluation results are meaningless.
// The constructors in this package always produce shared timelines.
type PiecewisePolynomialND[P poly.Segment[P]] struct {
	elements []PiecewisePolynomial[P]
}

// TrajectoryND is a PiecewisePolynomialND over the stock dense polynomial
// type.
type TrajectoryND = PiecewisePolynomialND[poly.Polynomial]

// NewND creates a vector trajectory from one scalar trajectory per
// dimension. Elements are deep-copied; they must share a breakpoint
// timeline (caller responsibility, see the type comment).
func NewND[P poly.Segment[P]](elements []*PiecewisePolynomial[P]) (*PiecewisePolynomialND[P], error) {
	if len(elements) == 0 {
		return nil, errs.ErrDimensionMismatch
	}

	nd := &PiecewisePolynomialND[P]{elements: make([]PiecewisePolynomial[P], len(elements))}
	for i, e := range elements {
		nd.elements[i] = *e.Clone()
	}

	return nd, nil
}

// NewNDSegments creates a vector trajectory with a single segment per
// dimension, each defined over [a, b) in global time.
func NewNDSegments[P poly.Segment[P]](polys []P, a, b float64) (*PiecewisePolynomialND[P], error) {
	if len(polys) == 0 {
		return nil, errs.ErrDimensionMismatch
	}

	nd := &PiecewisePolynomialND[P]{elements: make([]PiecewisePolynomial[P], len(polys))}
	for i, q := range polys {
		e, err := NewSegment(q, a, b)
		if err != nil {
			return nil, err
		}
		nd.elements[i] = *e
	}

	return nd, nil
}

// Dims returns the number of output dimensions.
func (p *PiecewisePolynomialND[P]) Dims() int {
	return len(p.elements)
}

// Element returns the scalar trajectory for dimension i. The returned
// pointer aliases p's storage; mutating it mutates p.
func (p *PiecewisePolynomialND[P]) Element(i int) *PiecewisePolynomial[P] {
	return &p.elements[i]
}

// Clone returns a deep copy sharing no storage with p.
func (p *PiecewisePolynomialND[P]) Clone() *PiecewisePolynomialND[P] {
	out := &PiecewisePolynomialND[P]{elements: make([]PiecewisePolynomial[P], len(p.elements))}
	for i := range p.elements {
		out.elements[i] = *p.elements[i].Clone()
	}

	return out
}

// Evaluate returns the vector value at t, one entry per dimension.
func (p *PiecewisePolynomialND[P]) Evaluate(t float64) []float64 {
	out := make([]float64, len(p.elements))
	for i := range p.elements {
		out[i] = p.elements[i].Evaluate(t)
	}

	return out
}

// Derivative returns the vector first derivative at t.
func (p *PiecewisePolynomialND[P]) Derivative(t float64) []float64 {
	return p.DerivativeN(t, 1)
}

// DerivativeN returns the vector n-th derivative at t.
func (p *PiecewisePolynomialND[P]) DerivativeN(t float64, n int) []float64 {
	out := make([]float64, len(p.elements))
	for i := range p.elements {
		out[i] = p.elements[i].DerivativeN(t, n)
	}

	return out
}

// Differentiate returns a new vector trajectory differentiated n times per
// dimension.
func (p *PiecewisePolynomialND[P]) Differentiate(n int) *PiecewisePolynomialND[P] {
	out := &PiecewisePolynomialND[P]{elements: make([]PiecewisePolynomial[P], len(p.elements))}
	for i := range p.elements {
		out.elements[i] = *p.elements[i].Differentiate(n)
	}

	return out
}

// Start returns the vector value at StartTime().
func (p *PiecewisePolynomialND[P]) Start() []float64 {
	out := make([]float64, len(p.elements))
	for i := range p.elements {
		out[i] = p.elements[i].Start()
	}

	return out
}

// End returns the vector value at EndTime().
func (p *PiecewisePolynomialND[P]) End() []float64 {
	out := make([]float64, len(p.elements))
	for i := range p.elements {
		out[i] = p.elements[i].End()
	}

	return out
}

// StartTime returns the shared first breakpoint.
func (p *PiecewisePolynomialND[P]) StartTime() float64 {
	return p.elements[0].StartTime()
}

// EndTime returns the shared last breakpoint.
func (p *PiecewisePolynomialND[P]) EndTime() float64 {
	return p.elements[0].EndTime()
}

// Append adds one segment per dimension, all ending at the absolute time t.
func (p *PiecewisePolynomialND[P]) Append(polys []P, t float64) error {
	if len(polys) != len(p.elements) {
		return errs.ErrDimensionMismatch
	}
	for i := range p.elements {
		if err := p.elements[i].Append(polys[i], t); err != nil {
			return err
		}
	}

	return nil
}

// AppendRelative adds one segment per dimension, each with duration t and
// defined over the local interval [0, t].
func (p *PiecewisePolynomialND[P]) AppendRelative(polys []P, t float64) error {
	if len(polys) != len(p.elements) {
		return errs.ErrDimensionMismatch
	}
	for i := range p.elements {
		if err := p.elements[i].AppendRelative(polys[i], t); err != nil {
			return err
		}
	}

	return nil
}

// Concat appends traj element-wise using traj's absolute breakpoints.
func (p *PiecewisePolynomialND[P]) Concat(traj *PiecewisePolynomialND[P]) error {
	if len(traj.elements) != len(p.elements) {
		return errs.ErrDimensionMismatch
	}
	for i := range p.elements {
		if err := p.elements[i].Concat(&traj.elements[i]); err != nil {
			return err
		}
	}

	return nil
}

// ConcatRelative translates traj forward by EndTime() and concatenates it
// element-wise.
func (p *PiecewisePolynomialND[P]) ConcatRelative(traj *PiecewisePolynomialND[P]) error {
	if len(traj.elements) != len(p.elements) {
		return errs.ErrDimensionMismatch
	}
	for i := range p.elements {
		if err := p.elements[i].ConcatRelative(&traj.elements[i]); err != nil {
			return err
		}
	}

	return nil
}

// TimeShift translates every dimension forward in time by dt.
func (p *PiecewisePolynomialND[P]) TimeShift(dt float64) {
	for i := range p.elements {
		p.elements[i].TimeShift(dt)
	}
}

// Split partitions every dimension at t, returning the front and back
// vector trajectories.
func (p *PiecewisePolynomialND[P]) Split(t float64) (front, back *PiecewisePolynomialND[P], err error) {
	front = &PiecewisePolynomialND[P]{elements: make([]PiecewisePolynomial[P], len(p.elements))}
	back = &PiecewisePolynomialND[P]{elements: make([]PiecewisePolynomial[P], len(p.elements))}
	for i := range p.elements {
		f, b, err := p.elements[i].Split(t)
		if err != nil {
			return nil, nil, err
		}
		front.elements[i] = *f
		back.elements[i] = *b
	}

	return front, back, nil
}

// TrimFront trims every dimension to start at tstart.
func (p *PiecewisePolynomialND[P]) TrimFront(tstart float64) error {
	for i := range p.elements {
		if err := p.elements[i].TrimFront(tstart); err != nil {
			return err
		}
	}

	return nil
}

// TrimBack trims every dimension to end at tend.
func (p *PiecewisePolynomialND[P]) TrimBack(tend float64) error {
	for i := range p.elements {
		if err := p.elements[i].TrimBack(tend); err != nil {
			return err
		}
	}

	return nil
}

// Select returns the sub-trajectory restricted to [a, b] for every
// dimension, without modifying p.
func (p *PiecewisePolynomialND[P]) Select(a, b float64) (*PiecewisePolynomialND[P], error) {
	out := &PiecewisePolynomialND[P]{elements: make([]PiecewisePolynomial[P], len(p.elements))}
	for i := range p.elements {
		sel, err := p.elements[i].Select(a, b)
		if err != nil {
			return nil, err
		}
		out.elements[i] = *sel
	}

	return out, nil
}

// MaxDiscontinuity runs the scalar discontinuity scan independently per
// dimension and returns the per-dimension times and magnitudes.
func (p *PiecewisePolynomialND[P]) MaxDiscontinuity(derivative int) (times, magnitudes []float64) {
	times = make([]float64, len(p.elements))
	magnitudes = make([]float64, len(p.elements))
	for i := range p.elements {
		times[i], magnitudes[i] = p.elements[i].MaxDiscontinuity(derivative)
	}

	return times, magnitudes
}

// Write serializes the element count followed by each element's trajectory
// record, little-endian.
func (p *PiecewisePolynomialND[P]) Write(w io.Writer) error {
	_, err := w.Write(p.appendRecords(nil, endian.GetLittleEndianEngine()))

	return err
}

// Read deserializes an element count followed by that many trajectory
// records, replacing the contents of p. Decoding commits only on success.
func (p *PiecewisePolynomialND[P]) Read(r io.Reader) error {
	return p.readRecords(r, endian.GetLittleEndianEngine())
}

func (p *PiecewisePolynomialND[P]) appendRecords(dst []byte, engine endian.EndianEngine) []byte {
	dst = engine.AppendUint32(dst, uint32(len(p.elements)))
	for i := range p.elements {
		dst = p.elements[i].appendRecord(dst, engine)
	}

	return dst
}

func (p *PiecewisePolynomialND[P]) readRecords(r io.Reader, engine endian.EndianEngine) error {
	count, err := readUint32(r, engine)
	if err != nil {
		return err
	}
	if count > maxRecordSegments {
		return errs.ErrInvalidSegmentCount
	}

	elements := make([]PiecewisePolynomial[P], count)
	for i := range elements {
		if err := elements[i].readRecord(r, engine); err != nil {
			return err
		}
	}
	p.elements = elements

	return nil
}
