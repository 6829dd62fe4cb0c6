package spline

import "github.com/dkotfis/spline/errs"

// Append adds seg as the new final segment, ending at the absolute time t.
// The polynomial is taken to be defined over the global interval
// [EndTime(), t], so its time shift is zero. t must be strictly greater
// than EndTime().
//
// Appending to an empty trajectory starts the timeline at 0, so seg covers
// [0, t] and t must be positive.
func (p *PiecewisePolynomial[P]) Append(seg P, t float64) error {
	end := 0.0
	if !p.IsEmpty() {
		end = p.EndTime()
	}
	if t <= end {
		return errs.ErrNonIncreasingTimes
	}
	p.push(seg, end, t, 0)

	return nil
}

// AppendRelative adds seg as the new final segment with duration t. The
// polynomial is taken to be defined over its own local interval [0, t], so
// its time shift is the previous EndTime() and the new final breakpoint is
// EndTime() + t. t must be positive.
//
// Appending to an empty trajectory starts the timeline at 0.
func (p *PiecewisePolynomial[P]) AppendRelative(seg P, t float64) error {
	if t <= 0 {
		return errs.ErrNonIncreasingTimes
	}
	end := 0.0
	if !p.IsEmpty() {
		end = p.EndTime()
	}
	p.push(seg, end, end+t, end)

	return nil
}

func (p *PiecewisePolynomial[P]) push(seg P, start, end, shift float64) {
	if p.IsEmpty() {
		p.times = append(p.times, start)
	}
	p.segments = append(p.segments, seg.Clone())
	p.times = append(p.times, end)
	p.timeShift = append(p.timeShift, shift)
}

// Concat appends every segment of traj after the current final segment,
// keeping traj's own absolute breakpoints and time shifts. traj must begin
// exactly at EndTime(): an earlier start would break the strictly
// increasing breakpoint invariant, and a later start would leave a gap no
// segment covers. Concatenating onto an empty trajectory copies traj.
func (p *PiecewisePolynomial[P]) Concat(traj *PiecewisePolynomial[P]) error {
	if traj.IsEmpty() {
		return nil
	}
	if p.IsEmpty() {
		*p = *traj.Clone()
		return nil
	}
	if traj.StartTime() != p.EndTime() {
		return errs.ErrNonIncreasingTimes
	}

	for _, s := range traj.segments {
		p.segments = append(p.segments, s.Clone())
	}
	p.times = append(p.times, traj.times[1:]...)
	p.timeShift = append(p.timeShift, traj.timeShift...)

	return nil
}

// ConcatRelative translates traj forward in time by EndTime() and then
// concatenates it. A trajectory whose timeline starts at 0 therefore
// continues seamlessly from the current end.
func (p *PiecewisePolynomial[P]) ConcatRelative(traj *PiecewisePolynomial[P]) error {
	if traj.IsEmpty() {
		return nil
	}
	shifted := traj.Clone()
	if !p.IsEmpty() {
		shifted.TimeShift(p.EndTime())
	}

	return p.Concat(shifted)
}

// TimeShift translates the whole trajectory forward in time by dt: every
// breakpoint and every per-segment shift increases by dt. Segment shapes
// are unaffected, so evaluating at t+dt afterwards equals evaluating at t
// before.
func (p *PiecewisePolynomial[P]) TimeShift(dt float64) {
	for i := range p.times {
		p.times[i] += dt
	}
	for i := range p.timeShift {
		p.timeShift[i] += dt
	}
}

// ZeroTimeShift re-expresses every segment directly in global time by
// composing its time shift into the polynomial coefficients (a Taylor
// shift) and zeroing the stored shifts. The change is purely
// representational: Evaluate results are unaffected up to floating-point
// rounding.
func (p *PiecewisePolynomial[P]) ZeroTimeShift() {
	for i := range p.segments {
		if p.timeShift[i] == 0 {
			continue
		}
		p.segments[i] = p.segments[i].Shifted(-p.timeShift[i])
		p.timeShift[i] = 0
	}
}

// TrimFront discards all breakpoints and segments entirely before tstart
// and sets the first breakpoint to tstart exactly. The segment spanning the
// new boundary is kept with its interval shrunk; a tstart before
// StartTime() extends the first segment backwards instead. tstart must stay
// below the second remaining breakpoint, so trimming at or past EndTime()
// fails with errs.ErrTimeOutOfRange.
func (p *PiecewisePolynomial[P]) TrimFront(tstart float64) error {
	if p.IsEmpty() {
		return errs.ErrEmptyTrajectory
	}
	i := p.mustSegment(tstart)
	if tstart >= p.times[i+1] {
		return errs.ErrTimeOutOfRange
	}

	p.segments = p.segments[i:]
	p.timeShift = p.timeShift[i:]
	p.times = p.times[i:]
	p.times[0] = tstart

	return nil
}

// TrimBack discards all breakpoints and segments entirely after tend and
// sets the last breakpoint to tend exactly. When tend lands exactly on an
// interior breakpoint the segment starting there is dropped rather than
// kept with a zero-width interval. A tend past EndTime() extends the final
// segment forward. tend at or before StartTime() fails with
// errs.ErrTimeOutOfRange.
func (p *PiecewisePolynomial[P]) TrimBack(tend float64) error {
	if p.IsEmpty() {
		return errs.ErrEmptyTrajectory
	}
	i := p.mustSegment(tend)

	switch {
	case tend > p.times[i]:
		p.segments = p.segments[:i+1]
		p.timeShift = p.timeShift[:i+1]
		p.times = p.times[:i+2]
		p.times[i+1] = tend
	case tend == p.times[i] && i > 0:
		p.segments = p.segments[:i]
		p.timeShift = p.timeShift[:i]
		p.times = p.times[:i+1]
	default:
		return errs.ErrTimeOutOfRange
	}

	return nil
}

// Split partitions the trajectory at t into two independent trajectories:
// front covers [StartTime(), t) and back covers [t, EndTime()]. A segment
// straddling t is duplicated into both halves unmodified; each half's
// breakpoint range selects the valid sub-domain. Splitting exactly at
// StartTime() or EndTime() yields an empty front or back respectively.
// t outside [StartTime(), EndTime()] fails with errs.ErrTimeOutOfRange.
//
// p itself is not modified.
func (p *PiecewisePolynomial[P]) Split(t float64) (front, back *PiecewisePolynomial[P], err error) {
	if p.IsEmpty() {
		return nil, nil, errs.ErrEmptyTrajectory
	}
	if t < p.StartTime() || t > p.EndTime() {
		return nil, nil, errs.ErrTimeOutOfRange
	}

	front = &PiecewisePolynomial[P]{}
	if t > p.StartTime() {
		front = p.Clone()
		if err := front.TrimBack(t); err != nil {
			return nil, nil, err
		}
	}

	back = &PiecewisePolynomial[P]{}
	if t < p.EndTime() {
		back = p.Clone()
		if err := back.TrimFront(t); err != nil {
			return nil, nil, err
		}
	}

	return front, back, nil
}

// Select returns the sub-trajectory restricted to [a, b] without modifying
// p. It is equivalent to cloning and trimming both ends.
func (p *PiecewisePolynomial[P]) Select(a, b float64) (*PiecewisePolynomial[P], error) {
	if p.IsEmpty() {
		return nil, errs.ErrEmptyTrajectory
	}
	if a >= b {
		return nil, errs.ErrTimeOutOfRange
	}

	out := p.Clone()
	if err := out.TrimFront(a); err != nil {
		return nil, err
	}
	if err := out.TrimBack(b); err != nil {
		return nil, err
	}

	return out, nil
}
