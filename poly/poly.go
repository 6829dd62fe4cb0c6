// Package poly provides the polynomial capability consumed by the spline
// package, together with Polynomial, the stock dense-coefficient
// implementation.
//
// The spline core is agnostic to polynomial representation: it depends only
// on the Segment constraint (evaluate, differentiate, ring algebra, Taylor
// shift, binary codec). Alternative representations (Bernstein basis,
// sparse coefficients) can plug in by satisfying the same constraint.
package poly

import (
	"fmt"
	"io"
	"math"
	"slices"
	"strings"

	"github.com/dkotfis/spline/endian"
	"github.com/dkotfis/spline/errs"
)

// Segment is the capability contract a polynomial type must satisfy to act
// as a trajectory segment. It is a self-referential generic constraint so
// that all operations stay closed over the concrete type.
//
// Methods are value-semantic: they return new values and leave the receiver
// untouched. DecodeFrom is callable on the zero value and is the factory
// half of the binary codec: it consumes exactly one polynomial record from
// the stream.
type Segment[P any] interface {
	// Evaluate returns the polynomial value at x.
	Evaluate(x float64) float64
	// Derivative returns the n-th derivative as a new polynomial.
	// n <= 0 returns the polynomial itself.
	Derivative(n int) P
	// Add, Sub and Mul apply ring operations with another polynomial.
	Add(q P) P
	Sub(q P) P
	Mul(q P) P
	// AddScalar, SubScalar, MulScalar and DivScalar apply a scalar to every
	// value of the polynomial.
	AddScalar(c float64) P
	SubScalar(c float64) P
	MulScalar(c float64) P
	DivScalar(c float64) P
	// Shifted returns q with q(x) = p(x+dt), the Taylor shift of p by dt.
	Shifted(dt float64) P
	// Clone returns a deep copy sharing no storage with the receiver.
	Clone() P
	// AppendBinary appends the polynomial's binary form to dst and returns
	// the extended slice.
	AppendBinary(dst []byte, engine endian.EndianEngine) []byte
	// DecodeFrom reads exactly one polynomial record from r.
	DecodeFrom(r io.Reader, engine endian.EndianEngine) (P, error)
}

// Polynomial is a dense real polynomial stored as coefficients in ascending
// degree order: coeffs[i] is the coefficient of x^i.
//
// The zero value is the zero polynomial. Values are immutable; every
// operation returns a new Polynomial.
type Polynomial struct {
	coeffs []float64
}

var _ Segment[Polynomial] = Polynomial{}

// New creates a polynomial from coefficients in ascending degree order.
// Trailing zero coefficients above degree 0 are trimmed.
func New(coeffs ...float64) Polynomial {
	return Polynomial{coeffs: normalize(slices.Clone(coeffs))}
}

// Constant creates the degree-0 polynomial with value c.
func Constant(c float64) Polynomial {
	return Polynomial{coeffs: []float64{c}}
}

// normalize trims trailing zero coefficients, keeping at least one.
func normalize(c []float64) []float64 {
	n := len(c)
	for n > 1 && c[n-1] == 0 {
		n--
	}

	return c[:n]
}

// Degree returns the polynomial degree. The zero polynomial has degree 0.
func (p Polynomial) Degree() int {
	if len(p.coeffs) == 0 {
		return 0
	}

	return len(p.coeffs) - 1
}

// Coeffs returns a copy of the coefficients in ascending degree order.
// The zero polynomial returns [0].
func (p Polynomial) Coeffs() []float64 {
	if len(p.coeffs) == 0 {
		return []float64{0}
	}

	return slices.Clone(p.coeffs)
}

// Evaluate returns the polynomial value at x using Horner's scheme.
func (p Polynomial) Evaluate(x float64) float64 {
	var v float64
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		v = v*x + p.coeffs[i]
	}

	return v
}

// Derivative returns the n-th derivative. n <= 0 returns p itself.
func (p Polynomial) Derivative(n int) Polynomial {
	if n <= 0 {
		return p.Clone()
	}

	c := slices.Clone(p.coeffs)
	for ; n > 0; n-- {
		if len(c) <= 1 {
			return Polynomial{coeffs: []float64{0}}
		}
		for i := 1; i < len(c); i++ {
			c[i-1] = c[i] * float64(i)
		}
		c = c[:len(c)-1]
	}

	return Polynomial{coeffs: normalize(c)}
}

// Add returns p + q.
func (p Polynomial) Add(q Polynomial) Polynomial {
	return p.combine(q, 1)
}

// Sub returns p - q.
func (p Polynomial) Sub(q Polynomial) Polynomial {
	return p.combine(q, -1)
}

func (p Polynomial) combine(q Polynomial, sign float64) Polynomial {
	c := make([]float64, max(len(p.coeffs), len(q.coeffs), 1))
	copy(c, p.coeffs)
	for i, qc := range q.coeffs {
		c[i] += sign * qc
	}

	return Polynomial{coeffs: normalize(c)}
}

// Mul returns the product polynomial p * q.
func (p Polynomial) Mul(q Polynomial) Polynomial {
	if len(p.coeffs) == 0 || len(q.coeffs) == 0 {
		return Polynomial{coeffs: []float64{0}}
	}

	c := make([]float64, len(p.coeffs)+len(q.coeffs)-1)
	for i, pc := range p.coeffs {
		for j, qc := range q.coeffs {
			c[i+j] += pc * qc
		}
	}

	return Polynomial{coeffs: normalize(c)}
}

// AddScalar returns p + c.
func (p Polynomial) AddScalar(c float64) Polynomial {
	out := p.Coeffs()
	out[0] += c

	return Polynomial{coeffs: normalize(out)}
}

// SubScalar returns p - c.
func (p Polynomial) SubScalar(c float64) Polynomial {
	return p.AddScalar(-c)
}

// MulScalar returns p scaled by c.
func (p Polynomial) MulScalar(c float64) Polynomial {
	out := p.Coeffs()
	for i := range out {
		out[i] *= c
	}

	return Polynomial{coeffs: normalize(out)}
}

// DivScalar returns p divided by c. Division by zero follows IEEE 754.
func (p Polynomial) DivScalar(c float64) Polynomial {
	return p.MulScalar(1 / c)
}

// Shifted returns q with q(x) = p(x+dt), computed by Taylor-shifting the
// coefficients with repeated synthetic division.
func (p Polynomial) Shifted(dt float64) Polynomial {
	c := p.Coeffs()
	if dt == 0 || len(c) == 1 {
		return Polynomial{coeffs: normalize(c)}
	}

	n := len(c)
	for i := 0; i < n-1; i++ {
		for j := n - 2; j >= i; j-- {
			c[j] += dt * c[j+1]
		}
	}

	return Polynomial{coeffs: normalize(c)}
}

// Clone returns a deep copy of p.
func (p Polynomial) Clone() Polynomial {
	return Polynomial{coeffs: slices.Clone(p.coeffs)}
}

// Equal reports exact coefficient equality after normalization.
func (p Polynomial) Equal(q Polynomial) bool {
	return slices.Equal(p.Coeffs(), q.Coeffs())
}

// ApproxEqual reports coefficient equality within the absolute tolerance tol.
func (p Polynomial) ApproxEqual(q Polynomial, tol float64) bool {
	pc, qc := p.Coeffs(), q.Coeffs()
	if len(pc) != len(qc) {
		return false
	}
	for i := range pc {
		if math.Abs(pc[i]-qc[i]) > tol {
			return false
		}
	}

	return true
}

// String renders the polynomial in descending degree order, e.g. "2x^2 - x + 3".
func (p Polynomial) String() string {
	c := p.Coeffs()
	var b strings.Builder
	for i := len(c) - 1; i >= 0; i-- {
		if c[i] == 0 && len(c) > 1 {
			continue
		}
		if b.Len() > 0 {
			if c[i] < 0 {
				b.WriteString(" - ")
			} else {
				b.WriteString(" + ")
			}
		} else if c[i] < 0 {
			b.WriteString("-")
		}
		switch i {
		case 0:
			fmt.Fprintf(&b, "%g", math.Abs(c[i]))
		case 1:
			fmt.Fprintf(&b, "%gx", math.Abs(c[i]))
		default:
			fmt.Fprintf(&b, "%gx^%d", math.Abs(c[i]), i)
		}
	}
	if b.Len() == 0 {
		return "0"
	}

	return b.String()
}

// AppendBinary appends the polynomial's binary form to dst: a uint32
// coefficient count followed by the coefficients as float64 bits.
func (p Polynomial) AppendBinary(dst []byte, engine endian.EndianEngine) []byte {
	c := p.Coeffs()
	dst = engine.AppendUint32(dst, uint32(len(c)))
	for _, v := range c {
		dst = engine.AppendUint64(dst, math.Float64bits(v))
	}

	return dst
}

// maxCoefficients bounds the declared coefficient count of a serialized
// polynomial so a corrupt record cannot trigger a huge allocation.
const maxCoefficients = 1 << 20

// DecodeFrom reads exactly one polynomial record from r. It is callable on
// the zero value and returns errs.ErrTruncatedRecord when the stream ends
// early, or errs.ErrInvalidCoefficientCount for an implausible count.
func (p Polynomial) DecodeFrom(r io.Reader, engine endian.EndianEngine) (Polynomial, error) {
	var head [4]byte
	if _, err := io.ReadFull(r, head[:]); err != nil {
		return Polynomial{}, errs.ErrTruncatedRecord
	}
	count := int(engine.Uint32(head[:]))
	if count == 0 || count > maxCoefficients {
		return Polynomial{}, errs.ErrInvalidCoefficientCount
	}

	raw := make([]byte, count*8)
	if _, err := io.ReadFull(r, raw); err != nil {
		return Polynomial{}, errs.ErrTruncatedRecord
	}

	c := make([]float64, count)
	for i := range c {
		c[i] = math.Float64frombits(engine.Uint64(raw[i*8 : i*8+8]))
	}

	return Polynomial{coeffs: normalize(c)}, nil
}
