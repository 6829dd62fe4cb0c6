// Package errs defines the sentinel errors shared across the spline module.
//
// All errors are plain sentinel values so callers can match them with
// errors.Is, even when wrapped with additional context via fmt.Errorf.
package errs

import "errors"

// Trajectory structure errors.
var (
	// ErrEmptyTrajectory is returned when an operation requires at least one segment.
	ErrEmptyTrajectory = errors.New("trajectory has no segments")

	// ErrNonIncreasingTimes is returned when breakpoints are not strictly increasing.
	ErrNonIncreasingTimes = errors.New("breakpoints are not strictly increasing")

	// ErrTimeOutOfRange is returned when a split or trim time falls outside the
	// range that keeps the resulting timeline non-empty.
	ErrTimeOutOfRange = errors.New("time out of trajectory range")

	// ErrSegmentCountMismatch is returned when segment, breakpoint and time-shift
	// sequence lengths are inconsistent.
	ErrSegmentCountMismatch = errors.New("segment count does not match breakpoint count")

	// ErrDimensionMismatch is returned when a vector argument does not match the
	// trajectory's dimension count.
	ErrDimensionMismatch = errors.New("dimension count mismatch")
)

// Serialization errors.
var (
	// ErrTruncatedRecord is returned when a trajectory record ends before all
	// declared segments, shifts and breakpoints were read.
	ErrTruncatedRecord = errors.New("truncated trajectory record")

	// ErrInvalidSegmentCount is returned when a record declares a segment count
	// that cannot be satisfied by the remaining input.
	ErrInvalidSegmentCount = errors.New("invalid segment count in record")

	// ErrInvalidCoefficientCount is returned when a serialized polynomial declares
	// a coefficient count that cannot be satisfied by the remaining input.
	ErrInvalidCoefficientCount = errors.New("invalid coefficient count in record")

	// ErrInvalidHeaderSize is returned when an envelope header is not exactly
	// section.HeaderSize bytes.
	ErrInvalidHeaderSize = errors.New("invalid header size")

	// ErrInvalidMagicNumber is returned when an envelope header does not carry the
	// trajectory magic number.
	ErrInvalidMagicNumber = errors.New("invalid magic number")

	// ErrInvalidHeaderFlags is returned when an envelope header carries reserved
	// flag bits or an unknown compression type.
	ErrInvalidHeaderFlags = errors.New("invalid header flags")

	// ErrChecksumMismatch is returned when the payload checksum does not match the
	// checksum recorded in the envelope.
	ErrChecksumMismatch = errors.New("payload checksum mismatch")
)
