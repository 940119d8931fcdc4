// File: types.go

package hilbert

import (
	"errors"
	"fmt"
	"math/big"
)

// Sentinel errors for curve construction and conversion.
var (
	// ErrInvalidArgument indicates a non-positive p or n at construction.
	ErrInvalidArgument = errors.New("hilbert: p and n must be positive integers")
	// ErrOutOfRange indicates a distance outside [0, 2^(p·n)-1], a point whose
	// length differs from n, or a coordinate outside [0, 2^p-1].
	ErrOutOfRange = errors.New("hilbert: value out of range for this curve")
	// ErrInvalidFormat indicates a malformed binary digit string.
	ErrInvalidFormat = errors.New("hilbert: malformed binary digit string")
)

// Shared non-mutated constants; never use these as a big.Int receiver.
var (
	bigOne = big.NewInt(1)
	bigTwo = big.NewInt(2)
)

// Curve converts between distances along a Hilbert space-filling curve and
// n-dimensional grid coordinates. It is immutable once built and safe for
// concurrent use: every conversion works on its own copies of the inputs.
type Curve struct {
	p int // iterations: grid resolution is 2^p cells per axis
	n int // dimensions

	maxX *big.Int // 2^p - 1, largest value of any single coordinate
	maxH *big.Int // 2^(p·n) - 1, largest distance along the curve
}

// New builds a Hilbert curve with p iterations in n dimensions.
// Returns ErrInvalidArgument unless p > 0 and n > 0.
func New(p, n int) (*Curve, error) {
	if p <= 0 {
		return nil, fmt.Errorf("%w (got p=%d)", ErrInvalidArgument, p)
	}
	if n <= 0 {
		return nil, fmt.Errorf("%w (got n=%d)", ErrInvalidArgument, n)
	}
	maxX := new(big.Int).Sub(new(big.Int).Lsh(bigOne, uint(p)), bigOne)
	maxH := new(big.Int).Sub(new(big.Int).Lsh(bigOne, uint(p*n)), bigOne)

	return &Curve{p: p, n: n, maxX: maxX, maxH: maxH}, nil
}

// P reports the number of iterations used to build the curve.
func (c *Curve) P() int { return c.p }

// N reports the number of dimensions.
func (c *Curve) N() int { return c.n }

// MaxX returns 2^p - 1, the largest valid value of any single coordinate.
// The returned value is a copy; mutating it does not affect the curve.
func (c *Curve) MaxX() *big.Int { return new(big.Int).Set(c.maxX) }

// MaxH returns 2^(p·n) - 1, the largest valid distance along the curve.
// The returned value is a copy; mutating it does not affect the curve.
func (c *Curve) MaxH() *big.Int { return new(big.Int).Set(c.maxH) }

// String describes the curve parameters, e.g. "HilbertCurve(p=3, n=2)".
func (c *Curve) String() string {
	return fmt.Sprintf("HilbertCurve(p=%d, n=%d)", c.p, c.n)
}

// BatchOptions configures the batched conversions.
//   - Workers: number of goroutines converting the validated elements.
//     Values ≤ 1 select sequential execution. Output order is identical
//     either way.
type BatchOptions struct {
	Workers int
}

// DefaultBatchOptions returns BatchOptions selecting sequential execution.
func DefaultBatchOptions() BatchOptions {
	return BatchOptions{Workers: 1}
}
