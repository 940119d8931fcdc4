// File: transpose.go

package hilbert

import "math/big"

// distanceToTranspose unpacks a distance into its transpose: component i
// gathers bits i, i+n, i+2n, … of the p·n-bit big-endian expansion of h,
// read as a p-bit integer. With p=5, n=3 the 15-bit distance ABCDEFGHIJKLMNO
// becomes [ADGJM, BEHKN, CFILO].
//
// Time: O(p·n), Memory: O(p·n) for the digit buffers.
func (c *Curve) distanceToTranspose(h *big.Int) ([]*big.Int, error) {
	digits, err := toBinary(h, c.p*c.n)
	if err != nil {
		return nil, err
	}
	x := make([]*big.Int, c.n)
	buf := make([]byte, c.p)
	for i := 0; i < c.n; i++ {
		for j := 0; j < c.p; j++ {
			buf[j] = digits[i+j*c.n]
		}
		if x[i], err = fromBinary(string(buf)); err != nil {
			return nil, err
		}
	}

	return x, nil
}

// transposeToDistance is the exact inverse of distanceToTranspose: bit k of
// every component in turn, for k = 0..p-1, re-forms the p·n-bit distance.
//
// Time: O(p·n), Memory: O(p·n).
func (c *Curve) transposeToDistance(x []*big.Int) (*big.Int, error) {
	rendered := make([]string, c.n)
	for i, xi := range x {
		digits, err := toBinary(xi, c.p)
		if err != nil {
			return nil, err
		}
		rendered[i] = digits
	}
	buf := make([]byte, 0, c.p*c.n)
	for k := 0; k < c.p; k++ {
		for i := 0; i < c.n; i++ {
			buf = append(buf, rendered[i][k])
		}
	}

	return fromBinary(string(buf))
}
