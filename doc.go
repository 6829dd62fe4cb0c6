// Package spline represents continuous-time trajectories built from
// consecutive polynomial segments, together with a vector-valued extension
// that couples independent scalar trajectories under a shared timeline.
//
// It is intended for smooth, breakpoint-defined functions of time that must
// be evaluated, differentiated, trimmed, concatenated, or analyzed for
// discontinuities, such as the output of a motion planner consumed by a
// trajectory executor.
//
// # Core Types
//
//   - PiecewisePolynomial: ordered segments with shared breakpoint and
//     time-shift arrays; O(log n) random-time evaluation, in-place
//     structural editing, discontinuity analysis, binary persistence
//   - PiecewisePolynomialND: one scalar trajectory per output dimension,
//     broadcasting every operation element-wise
//   - poly.Polynomial: the stock dense-coefficient segment type; any type
//     satisfying poly.Segment can be used instead
//
// # Basic Usage
//
// Building and evaluating a trajectory:
//
//	traj, _ := spline.PiecewiseLinear([]float64{0, 1, 0}, []float64{0, 1, 2})
//	y := traj.Evaluate(0.5)      // 0.5
//	v := traj.Derivative(1.5)    // -1
//
//	// Hold the final value for two more seconds.
//	_ = traj.AppendRelative(poly.Constant(0), 2)
//
// Persistence:
//
//	// Bare record, caller-framed stream.
//	var buf bytes.Buffer
//	_ = traj.Write(&buf)
//
//	// Self-describing envelope with compression and checksum.
//	data, _ := spline.Marshal(traj, spline.WithCompression(format.CompressionS2))
//	back, _ := spline.Unmarshal[poly.Polynomial](data)
//
// # Concurrency
//
// Trajectories are plain values with exclusively owned storage: deep-copied
// on construction and cloning, never aliased between instances. Concurrent
// reads of one trajectory are safe; mutation requires external
// serialization by the caller.
package spline
