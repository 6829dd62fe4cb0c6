package spline

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dkotfis/spline/errs"
	"github.com/dkotfis/spline/poly"
)

func TestAppendErrors(t *testing.T) {
	traj, err := Constant(1.0, 0, 2)
	require.NoError(t, err)

	require.ErrorIs(t, traj.Append(poly.Constant(2), 2), errs.ErrNonIncreasingTimes)
	require.ErrorIs(t, traj.Append(poly.Constant(2), 1.5), errs.ErrNonIncreasingTimes)
	require.ErrorIs(t, traj.AppendRelative(poly.Constant(2), 0), errs.ErrNonIncreasingTimes)
	require.ErrorIs(t, traj.AppendRelative(poly.Constant(2), -1), errs.ErrNonIncreasingTimes)

	// Failed appends leave the trajectory untouched.
	require.Equal(t, 1, traj.NumSegments())
	require.Equal(t, 2.0, traj.EndTime())
}

func TestAppendAbsolute(t *testing.T) {
	traj, err := Constant(1.0, 0, 1)
	require.NoError(t, err)

	// y(t) = t over the global interval [1, 3]: absolute mode keeps the
	// polynomial in global time, so the shift is zero.
	require.NoError(t, traj.Append(poly.New(0, 1), 3))
	require.Equal(t, []float64{0, 0}, traj.TimeShifts())
	require.Equal(t, []float64{0, 1, 3}, traj.Times())
	require.Equal(t, 2.0, traj.Evaluate(2))
	require.Equal(t, 3.0, traj.End())
}

func TestAppendToEmpty(t *testing.T) {
	t.Run("relative", func(t *testing.T) {
		var traj Trajectory
		require.NoError(t, traj.AppendRelative(poly.New(0, 1), 2))
		require.Equal(t, []float64{0, 2}, traj.Times())
		require.Equal(t, 1.0, traj.Evaluate(1))
	})

	t.Run("absolute", func(t *testing.T) {
		var traj Trajectory
		require.NoError(t, traj.Append(poly.Constant(4), 3))
		require.Equal(t, []float64{0, 3}, traj.Times())
		require.Equal(t, 4.0, traj.Evaluate(1))

		var bad Trajectory
		require.ErrorIs(t, bad.Append(poly.Constant(4), -1), errs.ErrNonIncreasingTimes)
	})
}

func TestConcat(t *testing.T) {
	t.Run("seamless", func(t *testing.T) {
		front, err := PiecewiseLinear([]float64{0, 1}, []float64{0, 1})
		require.NoError(t, err)
		back, err := PiecewiseLinear([]float64{1, 0}, []float64{1, 2})
		require.NoError(t, err)

		require.NoError(t, front.Concat(back))
		require.Equal(t, 2, front.NumSegments())
		require.Equal(t, []float64{0, 1, 2}, front.Times())

		want := rampDownRamp(t)
		for x := 0.0; x <= 2.0; x += 0.125 {
			require.InDelta(t, want.Evaluate(x), front.Evaluate(x), 1e-12)
		}

		// back is untouched and independent.
		require.Equal(t, 1, back.NumSegments())
	})

	t.Run("overlap rejected", func(t *testing.T) {
		a, err := Constant(1, 0, 2)
		require.NoError(t, err)
		b, err := Constant(2, 1, 3)
		require.NoError(t, err)
		require.ErrorIs(t, a.Concat(b), errs.ErrNonIncreasingTimes)
	})

	t.Run("gap rejected", func(t *testing.T) {
		a, err := Constant(1, 0, 2)
		require.NoError(t, err)
		b, err := Constant(2, 3, 4)
		require.NoError(t, err)
		require.ErrorIs(t, a.Concat(b), errs.ErrNonIncreasingTimes)
	})

	t.Run("onto empty copies", func(t *testing.T) {
		var a Trajectory
		b, err := Constant(2, 1, 3)
		require.NoError(t, err)
		require.NoError(t, a.Concat(b))
		require.Equal(t, 2.0, a.Evaluate(2))

		// Deep copy: mutating a does not affect b.
		a.AddScalar(5)
		require.Equal(t, 2.0, b.Evaluate(2))
	})
}

func TestConcatRelative(t *testing.T) {
	// A relative tail starting at 0 continues seamlessly from any end time.
	head, err := Constant(5, 0, 1.5)
	require.NoError(t, err)
	tail, err := PiecewiseLinear([]float64{5, 0}, []float64{0, 1})
	require.NoError(t, err)

	require.NoError(t, head.ConcatRelative(tail))
	require.Equal(t, []float64{0, 1.5, 2.5}, head.Times())
	require.Equal(t, 5.0, head.Evaluate(1.5))
	require.InDelta(t, 2.5, head.Evaluate(2), 1e-12)
	require.InDelta(t, 0.0, head.End(), 1e-12)

	// A tail not starting at 0 cannot line up after translation.
	late, err := Constant(1, 1, 2)
	require.NoError(t, err)
	require.ErrorIs(t, head.ConcatRelative(late), errs.ErrNonIncreasingTimes)
}

func TestTrimFront(t *testing.T) {
	t.Run("mid segment", func(t *testing.T) {
		traj := rampDownRamp(t)
		require.NoError(t, traj.TrimFront(0.5))
		require.Equal(t, 0.5, traj.StartTime())
		require.Equal(t, 2, traj.NumSegments())
		require.Equal(t, 0.5, traj.Evaluate(0.5))
		require.Equal(t, 1.0, traj.Evaluate(1))
	})

	t.Run("on breakpoint drops earlier segments", func(t *testing.T) {
		traj := rampDownRamp(t)
		require.NoError(t, traj.TrimFront(1))
		require.Equal(t, 1, traj.NumSegments())
		require.Equal(t, []float64{1, 2}, traj.Times())
		require.Equal(t, 1.0, traj.Start())
	})

	t.Run("before start extends", func(t *testing.T) {
		traj := rampDownRamp(t)
		require.NoError(t, traj.TrimFront(-1))
		require.Equal(t, -1.0, traj.StartTime())
		require.Equal(t, -1.0, traj.Evaluate(-1))
	})

	t.Run("at end rejected", func(t *testing.T) {
		traj := rampDownRamp(t)
		require.ErrorIs(t, traj.TrimFront(2), errs.ErrTimeOutOfRange)
		require.ErrorIs(t, traj.TrimFront(3), errs.ErrTimeOutOfRange)
	})
}

func TestTrimBack(t *testing.T) {
	t.Run("mid segment", func(t *testing.T) {
		traj := rampDownRamp(t)
		require.NoError(t, traj.TrimBack(1.5))
		require.Equal(t, 1.5, traj.EndTime())
		require.Equal(t, 2, traj.NumSegments())
		require.Equal(t, 0.5, traj.End())
	})

	t.Run("on breakpoint drops later segments", func(t *testing.T) {
		traj := rampDownRamp(t)
		require.NoError(t, traj.TrimBack(1))
		require.Equal(t, 1, traj.NumSegments())
		require.Equal(t, []float64{0, 1}, traj.Times())
		require.Equal(t, 1.0, traj.End())
	})

	t.Run("past end extends", func(t *testing.T) {
		traj := rampDownRamp(t)
		require.NoError(t, traj.TrimBack(3))
		require.Equal(t, 3.0, traj.EndTime())
		require.Equal(t, -1.0, traj.End())
	})

	t.Run("at start rejected", func(t *testing.T) {
		traj := rampDownRamp(t)
		require.ErrorIs(t, traj.TrimBack(0), errs.ErrTimeOutOfRange)
		require.ErrorIs(t, traj.TrimBack(-1), errs.ErrTimeOutOfRange)
	})
}

func TestSplit(t *testing.T) {
	t.Run("mid segment duplicates the straddler", func(t *testing.T) {
		traj := rampDownRamp(t)
		front, back, err := traj.Split(0.5)
		require.NoError(t, err)

		require.Equal(t, 0.5, front.EndTime())
		require.Equal(t, 0.5, back.StartTime())
		require.Equal(t, 1, front.NumSegments())
		require.Equal(t, 2, back.NumSegments())

		for s := 0.0; s < 0.5; s += 0.0625 {
			require.InDelta(t, traj.Evaluate(s), front.Evaluate(s), 1e-12)
		}
		for s := 0.5; s <= 2.0; s += 0.0625 {
			require.InDelta(t, traj.Evaluate(s), back.Evaluate(s), 1e-12)
		}

		// The source trajectory is untouched.
		require.Equal(t, 2, traj.NumSegments())
	})

	t.Run("on breakpoint", func(t *testing.T) {
		traj := rampDownRamp(t)
		front, back, err := traj.Split(1)
		require.NoError(t, err)
		require.Equal(t, 1, front.NumSegments())
		require.Equal(t, 1, back.NumSegments())
		require.Equal(t, 1.0, front.EndTime())
		require.Equal(t, 1.0, back.StartTime())
	})

	t.Run("at boundaries", func(t *testing.T) {
		traj := rampDownRamp(t)

		front, back, err := traj.Split(traj.StartTime())
		require.NoError(t, err)
		require.True(t, front.IsEmpty())
		require.Equal(t, 2, back.NumSegments())

		front, back, err = traj.Split(traj.EndTime())
		require.NoError(t, err)
		require.Equal(t, 2, front.NumSegments())
		require.True(t, back.IsEmpty())
	})

	t.Run("out of range", func(t *testing.T) {
		traj := rampDownRamp(t)
		_, _, err := traj.Split(-0.5)
		require.ErrorIs(t, err, errs.ErrTimeOutOfRange)
		_, _, err = traj.Split(2.5)
		require.ErrorIs(t, err, errs.ErrTimeOutOfRange)
	})
}

func TestSelect(t *testing.T) {
	traj := rampDownRamp(t)
	sub, err := traj.Select(0.5, 1.5)
	require.NoError(t, err)

	require.Equal(t, 0.5, sub.StartTime())
	require.Equal(t, 1.5, sub.EndTime())
	for s := 0.5; s <= 1.5; s += 0.0625 {
		require.InDelta(t, traj.Evaluate(s), sub.Evaluate(s), 1e-12)
	}

	// Source untouched.
	require.Equal(t, 0.0, traj.StartTime())
	require.Equal(t, 2.0, traj.EndTime())

	_, err = traj.Select(1.5, 0.5)
	require.ErrorIs(t, err, errs.ErrTimeOutOfRange)
}

func TestSplitThenConcatRestores(t *testing.T) {
	traj := rampDownRamp(t)
	front, back, err := traj.Split(0.75)
	require.NoError(t, err)

	require.NoError(t, front.Concat(back))
	for s := 0.0; s <= 2.0; s += 0.0625 {
		require.InDelta(t, traj.Evaluate(s), front.Evaluate(s), 1e-12)
	}
}
