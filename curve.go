// File: curve.go

package hilbert

import (
	"fmt"
	"math/big"
)

// scanOrder selects the dimension scan direction of a graySweep.
type scanOrder int

const (
	// scanDescending visits the last dimension first (the unwind pass).
	scanDescending scanOrder = iota
	// scanAscending visits the first dimension first (the wind pass).
	scanAscending
)

// graySweep applies Skilling's conditional invert/exchange rule for one bit
// plane to every dimension of x, in the given scan order: when bit plane q
// of x[i] is set, the low bits of x[0] are inverted under mask; otherwise
// the masked differing bits are exchanged between x[0] and x[i]. q must be
// a power of two selecting the plane, mask must equal q-1.
// x is mutated in place.
//
// The forward and inverse conversions share this rule; they differ only in
// scan order and in the direction the q ladder moves.
func graySweep(x []*big.Int, q, mask *big.Int, order scanOrder) {
	t := new(big.Int)
	step := func(i int) {
		if t.And(x[i], q); t.Sign() != 0 {
			x[0].Xor(x[0], mask) // invert
			return
		}
		t.Xor(x[0], x[i]) // exchange
		t.And(t, mask)
		x[0].Xor(x[0], t)
		x[i].Xor(x[i], t)
	}
	if order == scanDescending {
		for i := len(x) - 1; i >= 0; i-- {
			step(i)
		}
		return
	}
	for i := 0; i < len(x); i++ {
		step(i)
	}
}

// transposeToAxes converts a transpose vector into geometric axis
// coordinates, in place: Gray decode by H ^ (H>>1) cascaded across
// dimensions, then unwind the excess rotations plane by plane from the
// lowest bit upward. The ladder runs p-1 times and not at all when p = 1.
func (c *Curve) transposeToAxes(x []*big.Int) {
	// Gray decode.
	t := new(big.Int).Rsh(x[c.n-1], 1)
	for i := c.n - 1; i > 0; i-- {
		x[i].Xor(x[i], x[i-1])
	}
	x[0].Xor(x[0], t)

	// Undo excess work: q = 2, 4, …, 2^(p-1).
	z := new(big.Int).Lsh(bigTwo, uint(c.p-1)) // 2^p
	q := big.NewInt(2)
	mask := new(big.Int)
	for q.Cmp(z) != 0 {
		mask.Sub(q, bigOne)
		graySweep(x, q, mask, scanDescending)
		q.Lsh(q, 1)
	}
}

// axesToTranspose is the exact inverse of transposeToAxes, in place: wind
// the rotations back plane by plane from the highest bit downward, Gray
// encode, then cancel the accumulated correction in every dimension.
func (c *Curve) axesToTranspose(x []*big.Int) {
	// Inverse undo excess work: q = 2^(p-1), …, 4, 2.
	q := new(big.Int).Lsh(bigOne, uint(c.p-1))
	mask := new(big.Int)
	for q.Cmp(bigOne) > 0 {
		mask.Sub(q, bigOne)
		graySweep(x, q, mask, scanAscending)
		q.Rsh(q, 1)
	}

	// Gray encode.
	for i := 1; i < c.n; i++ {
		x[i].Xor(x[i], x[i-1])
	}
	t := new(big.Int)
	plane := new(big.Int)
	q.Lsh(bigOne, uint(c.p-1))
	for q.Cmp(bigOne) > 0 {
		if plane.And(x[c.n-1], q); plane.Sign() != 0 {
			mask.Sub(q, bigOne)
			t.Xor(t, mask)
		}
		q.Rsh(q, 1)
	}
	for i := 0; i < c.n; i++ {
		x[i].Xor(x[i], t)
	}
}

// PointFromDistance returns the n-dimensional grid coordinates of the cell
// at distance h along the curve. Returns ErrOutOfRange unless
// 0 ≤ h ≤ MaxH(). The result never aliases h or curve state.
//
// Time: O(p·n) big-integer bit operations, Memory: O(p·n).
func (c *Curve) PointFromDistance(h *big.Int) ([]*big.Int, error) {
	if err := c.checkDistance(h); err != nil {
		return nil, err
	}
	x, err := c.distanceToTranspose(h)
	if err != nil {
		return nil, err
	}
	c.transposeToAxes(x)

	return x, nil
}

// DistanceFromPoint returns the distance along the curve of the cell at
// coordinates x. Returns ErrOutOfRange when len(x) ≠ N() or any coordinate
// falls outside [0, MaxX()]. The input is never mutated; the conversion
// works on its own copy.
//
// Time: O(p·n) big-integer bit operations, Memory: O(p·n).
func (c *Curve) DistanceFromPoint(x []*big.Int) (*big.Int, error) {
	if err := c.checkPoint(x); err != nil {
		return nil, err
	}
	w := make([]*big.Int, c.n)
	for i, xi := range x {
		w[i] = new(big.Int).Set(xi)
	}
	c.axesToTranspose(w)

	return c.transposeToDistance(w)
}

// checkDistance verifies 0 ≤ h ≤ maxH.
func (c *Curve) checkDistance(h *big.Int) error {
	if h == nil || h.Sign() < 0 || h.Cmp(c.maxH) > 0 {
		return fmt.Errorf("%w: distance %s outside [0, %s]", ErrOutOfRange, h, c.maxH)
	}
	return nil
}

// checkPoint verifies len(x) == n and 0 ≤ x[i] ≤ maxX for every dimension.
func (c *Curve) checkPoint(x []*big.Int) error {
	if len(x) != c.n {
		return fmt.Errorf("%w: point has %d dimensions, curve has %d", ErrOutOfRange, len(x), c.n)
	}
	for i, xi := range x {
		if xi == nil || xi.Sign() < 0 || xi.Cmp(c.maxX) > 0 {
			return fmt.Errorf("%w: coordinate %d (%s) outside [0, %s]", ErrOutOfRange, i, xi, c.maxX)
		}
	}
	return nil
}
