package spline

import (
	"github.com/dkotfis/spline/errs"
	"github.com/dkotfis/spline/poly"
)

// Constant creates a single-segment trajectory holding the value x over
// [ta, tb).
func Constant(x, ta, tb float64) (*Trajectory, error) {
	return NewSegment(poly.Constant(x), ta, tb)
}

// Linear creates a single-segment trajectory interpolating linearly from a
// at time ta to b at time tb.
func Linear(a, b, ta, tb float64) (*Trajectory, error) {
	if ta >= tb {
		return nil, errs.ErrNonIncreasingTimes
	}
	slope := (b - a) / (tb - ta)

	return NewSegment(poly.New(a-slope*ta, slope), ta, tb)
}

// PiecewiseLinear creates a trajectory with one linear segment between each
// consecutive milestone pair, hitting milestones[i] exactly at times[i].
// times must be strictly increasing and hold one entry per milestone, with
// at least two milestones.
func PiecewiseLinear(milestones, times []float64) (*Trajectory, error) {
	if len(milestones) != len(times) {
		return nil, errs.ErrSegmentCountMismatch
	}
	if len(milestones) < 2 {
		return nil, errs.ErrEmptyTrajectory
	}
	if !strictlyIncreasing(times) {
		return nil, errs.ErrNonIncreasingTimes
	}

	segments := make([]poly.Polynomial, len(milestones)-1)
	for i := range segments {
		slope := (milestones[i+1] - milestones[i]) / (times[i+1] - times[i])
		segments[i] = poly.New(milestones[i]-slope*times[i], slope)
	}

	return NewPiecewise(segments, times)
}

// ConstantND creates a vector trajectory holding the point q over [ta, tb).
func ConstantND(q []float64, ta, tb float64) (*TrajectoryND, error) {
	polys := make([]poly.Polynomial, len(q))
	for i, x := range q {
		polys[i] = poly.Constant(x)
	}

	return NewNDSegments(polys, ta, tb)
}

// LinearND creates a vector trajectory interpolating linearly from point a
// at time ta to point b at time tb.
func LinearND(a, b []float64, ta, tb float64) (*TrajectoryND, error) {
	if len(a) != len(b) {
		return nil, errs.ErrDimensionMismatch
	}

	elements := make([]*Trajectory, len(a))
	for i := range a {
		e, err := Linear(a[i], b[i], ta, tb)
		if err != nil {
			return nil, err
		}
		elements[i] = e
	}

	return NewND(elements)
}

// PiecewiseLinearND creates a vector trajectory through the milestone
// points at the given shared times: milestones[i] is the point reached at
// times[i], and every dimension interpolates linearly between consecutive
// points.
func PiecewiseLinearND(milestones [][]float64, times []float64) (*TrajectoryND, error) {
	if len(milestones) != len(times) {
		return nil, errs.ErrSegmentCountMismatch
	}
	if len(milestones) < 2 {
		return nil, errs.ErrEmptyTrajectory
	}
	dims := len(milestones[0])

	elements := make([]*Trajectory, dims)
	scratch := make([]float64, len(milestones))
	for d := 0; d < dims; d++ {
		for i, m := range milestones {
			if len(m) != dims {
				return nil, errs.ErrDimensionMismatch
			}
			scratch[i] = m[d]
		}
		e, err := PiecewiseLinear(scratch, times)
		if err != nil {
			return nil, err
		}
		elements[d] = e
	}

	return NewND(elements)
}

// Subspace creates a vector trajectory confined to the 1-parameter affine
// line x0 + s*dx, where the scalar parameter s follows the given trajectory:
// dimension i evaluates to x0[i] + dx[i]*s(t).
func Subspace(x0, dx []float64, s *Trajectory) (*TrajectoryND, error) {
	if len(x0) != len(dx) {
		return nil, errs.ErrDimensionMismatch
	}
	if s.IsEmpty() {
		return nil, errs.ErrEmptyTrajectory
	}

	elements := make([]*Trajectory, len(x0))
	for i := range x0 {
		e := s.Clone()
		e.MulScalar(dx[i])
		e.AddScalar(x0[i])
		elements[i] = e
	}

	return NewND(elements)
}
