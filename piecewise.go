package spline

import (
	"math"
	"slices"
	"sort"

	"github.com/dkotfis/spline/errs"
	"github.com/dkotfis/spline/poly"
)

// PiecewisePolynomial is a trajectory y(t) made of consecutive polynomial
// segments split among breakpoints. segments[i] is active over the half-open
// interval [times[i], times[i+1]); the right endpoint of the final segment is
// inclusive, so Evaluate(EndTime()) uses the last segment.
//
// timeShift allows a segment's "local" time to differ from the trajectory's
// global time: over interval i the value is
//
//	y(t) = segments[i](t - timeShift[i])
//
// so segment i's local domain is [times[i]-timeShift[i], times[i+1]-timeShift[i]).
//
// Invariants maintained by every operation:
//   - len(times) == len(segments)+1 == len(timeShift)+1
//   - times is strictly increasing
//
// The zero value is the empty trajectory. Append (or a constructor) must add
// at least one segment before any query; queries on an empty trajectory
// panic, except FindSegment which returns errs.ErrEmptyTrajectory.
//
// A PiecewisePolynomial exclusively owns its three sequences. Constructors
// and editing operations deep-copy their inputs, and accessors return
// copies, so no two trajectories ever alias storage.
type PiecewisePolynomial[P poly.Segment[P]] struct {
	segments  []P
	times     []float64
	timeShift []float64
}

// Trajectory is a PiecewisePolynomial over the stock dense polynomial type.
type Trajectory = PiecewisePolynomial[poly.Polynomial]

// NewSegment creates a single-segment trajectory: seg over [a, b), defined
// directly in global time (zero time shift).
func NewSegment[P poly.Segment[P]](seg P, a, b float64) (*PiecewisePolynomial[P], error) {
	if a >= b {
		return nil, errs.ErrNonIncreasingTimes
	}

	return &PiecewisePolynomial[P]{
		segments:  []P{seg.Clone()},
		times:     []float64{a, b},
		timeShift: []float64{0},
	}, nil
}

// NewPiecewise creates a trajectory from explicit segments and breakpoints.
// Each segment is taken to be defined in global time (zero time shift).
// times must hold len(segments)+1 strictly increasing breakpoints.
func NewPiecewise[P poly.Segment[P]](segments []P, times []float64) (*PiecewisePolynomial[P], error) {
	return newPiecewise(segments, times, false)
}

// NewPiecewiseRelative creates a trajectory from explicit segments and
// breakpoints where each segment is defined on its own local domain
// starting at 0, i.e. timeShift[i] = times[i].
func NewPiecewiseRelative[P poly.Segment[P]](segments []P, times []float64) (*PiecewisePolynomial[P], error) {
	return newPiecewise(segments, times, true)
}

func newPiecewise[P poly.Segment[P]](segments []P, times []float64, relative bool) (*PiecewisePolynomial[P], error) {
	shifts := make([]float64, len(segments))
	if relative {
		copy(shifts, times[:max(len(times)-1, 0)])
	}

	return NewPiecewiseShifted(segments, times, shifts)
}

// NewPiecewiseShifted creates a trajectory from explicit segment, breakpoint
// and time-shift sequences. It validates the structural invariants and
// deep-copies every input.
func NewPiecewiseShifted[P poly.Segment[P]](segments []P, times, timeShift []float64) (*PiecewisePolynomial[P], error) {
	if len(segments) == 0 {
		return nil, errs.ErrEmptyTrajectory
	}
	if len(times) != len(segments)+1 || len(timeShift) != len(segments) {
		return nil, errs.ErrSegmentCountMismatch
	}
	if !strictlyIncreasing(times) {
		return nil, errs.ErrNonIncreasingTimes
	}

	segs := make([]P, len(segments))
	for i, s := range segments {
		segs[i] = s.Clone()
	}

	return &PiecewisePolynomial[P]{
		segments:  segs,
		times:     slices.Clone(times),
		timeShift: slices.Clone(timeShift),
	}, nil
}

func strictlyIncreasing(times []float64) bool {
	for i := 1; i < len(times); i++ {
		if times[i] <= times[i-1] {
			return false
		}
	}

	return true
}

// IsEmpty reports whether the trajectory has no segments.
func (p *PiecewisePolynomial[P]) IsEmpty() bool {
	return len(p.segments) == 0
}

// NumSegments returns the number of segments.
func (p *PiecewisePolynomial[P]) NumSegments() int {
	return len(p.segments)
}

// Segments returns a deep copy of the segment sequence.
func (p *PiecewisePolynomial[P]) Segments() []P {
	segs := make([]P, len(p.segments))
	for i, s := range p.segments {
		segs[i] = s.Clone()
	}

	return segs
}

// Times returns a copy of the breakpoint sequence.
func (p *PiecewisePolynomial[P]) Times() []float64 {
	return slices.Clone(p.times)
}

// TimeShifts returns a copy of the per-segment time-shift sequence.
func (p *PiecewisePolynomial[P]) TimeShifts() []float64 {
	return slices.Clone(p.timeShift)
}

// Clone returns a deep copy sharing no storage with p.
func (p *PiecewisePolynomial[P]) Clone() *PiecewisePolynomial[P] {
	return &PiecewisePolynomial[P]{
		segments:  p.Segments(),
		times:     slices.Clone(p.times),
		timeShift: slices.Clone(p.timeShift),
	}
}

// FindSegment returns the index of the segment whose interval contains t:
// the largest i with times[i] <= t. Times at or past EndTime() map to the
// last segment, times before StartTime() map to the first, so boundary
// segments extrapolate. Runs in O(log n) over the sorted breakpoints.
//
// It returns errs.ErrEmptyTrajectory if the trajectory has no segments.
func (p *PiecewisePolynomial[P]) FindSegment(t float64) (int, error) {
	if len(p.segments) == 0 {
		return 0, errs.ErrEmptyTrajectory
	}

	// First breakpoint strictly greater than t, minus one.
	i := sort.Search(len(p.times), func(j int) bool { return p.times[j] > t }) - 1
	if i < 0 {
		return 0, nil
	}
	if i >= len(p.segments) {
		return len(p.segments) - 1, nil
	}

	return i, nil
}

func (p *PiecewisePolynomial[P]) mustSegment(t float64) int {
	i, err := p.FindSegment(t)
	if err != nil {
		panic("spline: operation on empty trajectory")
	}

	return i
}

// Evaluate returns y(t). Outside [StartTime(), EndTime()] the boundary
// segment's polynomial extrapolates beyond its nominal domain.
// Panics on an empty trajectory.
func (p *PiecewisePolynomial[P]) Evaluate(t float64) float64 {
	i := p.mustSegment(t)

	return p.segments[i].Evaluate(t - p.timeShift[i])
}

// Derivative returns dy/dt at t. Panics on an empty trajectory.
func (p *PiecewisePolynomial[P]) Derivative(t float64) float64 {
	return p.DerivativeN(t, 1)
}

// DerivativeN returns the n-th derivative of y at t. Order 0 is equivalent
// to Evaluate. Panics on an empty trajectory.
func (p *PiecewisePolynomial[P]) DerivativeN(t float64, n int) float64 {
	i := p.mustSegment(t)

	return p.segments[i].Derivative(n).Evaluate(t - p.timeShift[i])
}

// Differentiate returns a new trajectory whose every segment is the n-th
// derivative of the corresponding segment of p. Breakpoints and time shifts
// are unchanged: differentiation is local per segment and shift-invariant.
func (p *PiecewisePolynomial[P]) Differentiate(n int) *PiecewisePolynomial[P] {
	segs := make([]P, len(p.segments))
	for i, s := range p.segments {
		segs[i] = s.Derivative(n)
	}

	return &PiecewisePolynomial[P]{
		segments:  segs,
		times:     slices.Clone(p.times),
		timeShift: slices.Clone(p.timeShift),
	}
}

// Start returns the trajectory value at StartTime(). Panics on an empty
// trajectory.
func (p *PiecewisePolynomial[P]) Start() float64 {
	return p.segments[0].Evaluate(p.times[0] - p.timeShift[0])
}

// End returns the trajectory value at EndTime(). Panics on an empty
// trajectory.
func (p *PiecewisePolynomial[P]) End() float64 {
	n := len(p.segments) - 1

	return p.segments[n].Evaluate(p.times[n+1] - p.timeShift[n])
}

// StartTime returns the first breakpoint. Panics on an empty trajectory.
func (p *PiecewisePolynomial[P]) StartTime() float64 {
	return p.times[0]
}

// EndTime returns the last breakpoint. Panics on an empty trajectory.
func (p *PiecewisePolynomial[P]) EndTime() float64 {
	return p.times[len(p.times)-1]
}

// MaxDiscontinuity scans every interior breakpoint and returns the time and
// absolute magnitude of the largest jump of the derivative-th derivative
// between the left and right segments. Order 0 measures value continuity,
// order 1 velocity continuity, and so on.
//
// With no interior breakpoints it returns (StartTime(), 0). Panics on an
// empty trajectory.
func (p *PiecewisePolynomial[P]) MaxDiscontinuity(derivative int) (time, magnitude float64) {
	time = p.StartTime()
	for i := 1; i < len(p.segments); i++ {
		left := p.segments[i-1].Derivative(derivative).Evaluate(p.times[i] - p.timeShift[i-1])
		right := p.segments[i].Derivative(derivative).Evaluate(p.times[i] - p.timeShift[i])
		if mag := math.Abs(left - right); mag > magnitude {
			time, magnitude = p.times[i], mag
		}
	}

	return time, magnitude
}

// AddScalar adds v to every segment in place.
func (p *PiecewisePolynomial[P]) AddScalar(v float64) {
	for i := range p.segments {
		p.segments[i] = p.segments[i].AddScalar(v)
	}
}

// SubScalar subtracts v from every segment in place.
func (p *PiecewisePolynomial[P]) SubScalar(v float64) {
	for i := range p.segments {
		p.segments[i] = p.segments[i].SubScalar(v)
	}
}

// MulScalar multiplies every segment by v in place.
func (p *PiecewisePolynomial[P]) MulScalar(v float64) {
	for i := range p.segments {
		p.segments[i] = p.segments[i].MulScalar(v)
	}
}

// DivScalar divides every segment by v in place.
func (p *PiecewisePolynomial[P]) DivScalar(v float64) {
	for i := range p.segments {
		p.segments[i] = p.segments[i].DivScalar(v)
	}
}

// AddPoly adds the polynomial q to every segment in place. q is interpreted
// in each segment's local time.
func (p *PiecewisePolynomial[P]) AddPoly(q P) {
	for i := range p.segments {
		p.segments[i] = p.segments[i].Add(q)
	}
}

// SubPoly subtracts the polynomial q from every segment in place.
func (p *PiecewisePolynomial[P]) SubPoly(q P) {
	for i := range p.segments {
		p.segments[i] = p.segments[i].Sub(q)
	}
}

// MulPoly multiplies every segment by the polynomial q in place. Polynomial
// division is not provided: the quotient of two polynomials is generally not
// a polynomial.
func (p *PiecewisePolynomial[P]) MulPoly(q P) {
	for i := range p.segments {
		p.segments[i] = p.segments[i].Mul(q)
	}
}

// Add returns a copy of p with v added to every segment.
func Add[P poly.Segment[P]](p *PiecewisePolynomial[P], v float64) *PiecewisePolynomial[P] {
	out := p.Clone()
	out.AddScalar(v)

	return out
}

// Sub returns a copy of p with v subtracted from every segment.
func Sub[P poly.Segment[P]](p *PiecewisePolynomial[P], v float64) *PiecewisePolynomial[P] {
	out := p.Clone()
	out.SubScalar(v)

	return out
}

// Mul returns a copy of p with every segment multiplied by v.
func Mul[P poly.Segment[P]](p *PiecewisePolynomial[P], v float64) *PiecewisePolynomial[P] {
	out := p.Clone()
	out.MulScalar(v)

	return out
}

// Div returns a copy of p with every segment divided by v.
func Div[P poly.Segment[P]](p *PiecewisePolynomial[P], v float64) *PiecewisePolynomial[P] {
	out := p.Clone()
	out.DivScalar(v)

	return out
}

// AddPoly returns a copy of p with the polynomial q added to every segment.
func AddPoly[P poly.Segment[P]](p *PiecewisePolynomial[P], q P) *PiecewisePolynomial[P] {
	out := p.Clone()
	out.AddPoly(q)

	return out
}

// SubPoly returns a copy of p with the polynomial q subtracted from every
// segment.
func SubPoly[P poly.Segment[P]](p *PiecewisePolynomial[P], q P) *PiecewisePolynomial[P] {
	out := p.Clone()
	out.SubPoly(q)

	return out
}

// MulPoly returns a copy of p with every segment multiplied by the
// polynomial q.
func MulPoly[P poly.Segment[P]](p *PiecewisePolynomial[P], q P) *PiecewisePolynomial[P] {
	out := p.Clone()
	out.MulPoly(q)

	return out
}
