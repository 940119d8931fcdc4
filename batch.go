// File: batch.go

package hilbert

import (
	"math/big"

	"golang.org/x/sync/errgroup"
)

// PointsFromDistances converts a batch of distances, preserving input order.
// The whole batch is validated before any element is converted: on the first
// out-of-range distance the batch is rejected with ErrOutOfRange naming the
// offending value, and no partial result is returned.
//
// opts.Workers > 1 fans the conversion across that many goroutines; each
// element writes only its own result slot, so the output is identical to
// sequential execution.
func (c *Curve) PointsFromDistances(hs []*big.Int, opts BatchOptions) ([][]*big.Int, error) {
	for _, h := range hs {
		if err := c.checkDistance(h); err != nil {
			return nil, err
		}
	}
	out := make([][]*big.Int, len(hs))
	err := runBatch(len(hs), opts, func(i int) error {
		x, err := c.PointFromDistance(hs[i])
		if err != nil {
			return err
		}
		out[i] = x
		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// DistancesFromPoints converts a batch of points, preserving input order,
// with the same validate-everything-first contract as PointsFromDistances:
// every point's length and coordinate range is checked before any element
// is converted.
func (c *Curve) DistancesFromPoints(xs [][]*big.Int, opts BatchOptions) ([]*big.Int, error) {
	for _, x := range xs {
		if err := c.checkPoint(x); err != nil {
			return nil, err
		}
	}
	out := make([]*big.Int, len(xs))
	err := runBatch(len(xs), opts, func(i int) error {
		h, err := c.DistanceFromPoint(xs[i])
		if err != nil {
			return err
		}
		out[i] = h
		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// runBatch executes convert(0..size-1) either sequentially or across a
// bounded errgroup. Each index owns its result slot, so output order never
// depends on scheduling.
func runBatch(size int, opts BatchOptions, convert func(i int) error) error {
	if opts.Workers <= 1 || size < 2 {
		for i := 0; i < size; i++ {
			if err := convert(i); err != nil {
				return err
			}
		}
		return nil
	}
	var g errgroup.Group
	g.SetLimit(opts.Workers)
	for i := 0; i < size; i++ {
		i := i
		g.Go(func() error { return convert(i) })
	}

	return g.Wait()
}
