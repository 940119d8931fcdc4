// Package hilbert converts between one-dimensional distances along a
// Hilbert space-filling curve and n-dimensional integer coordinates.
//
// What:
//
//   - Curve owns the two curve parameters: p iterations and n dimensions,
//     covering an n-dimensional grid of 2^p cells per axis.
//   - PointFromDistance / DistanceFromPoint convert a single value in either
//     direction; restricted to [0, 2^(p·n)-1] the mapping is a bijection.
//   - PointsFromDistances / DistancesFromPoints convert whole batches,
//     validating every element up front and optionally fanning the work
//     across workers without disturbing output order.
//   - All distances and coordinates are *big.Int, so curves like p=512,
//     n=10 (5120-bit distances) work without overflow.
//
// Why:
//
//   - Spatial indexing: consecutive distances land on adjacent grid cells,
//     so sorting records by distance keeps spatial neighbors close on disk.
//   - Dimensionality reduction: project n-dimensional data onto one axis
//     while preserving locality.
//   - Cache-friendly traversal of multidimensional arrays.
//
// Complexity:
//
//   - Single conversion: O(p·n) big-integer bit operations, Memory: O(p·n).
//   - Batch of k elements: k independent conversions, order preserved.
//
// Errors:
//
//   - ErrInvalidArgument: non-positive p or n at construction.
//   - ErrOutOfRange: distance outside [0, 2^(p·n)-1], point of the wrong
//     length, or coordinate outside [0, 2^p-1].
//   - ErrInvalidFormat: malformed binary digit string (internal codec
//     guard; not reachable through the public API).
//
// The conversion is John Skilling's transpose algorithm ("Programming the
// Hilbert Curve", AIP Conf. Proc. 707, 2004): a distance is first unpacked
// into an n-vector that interleaves its bits, then Gray-code passes turn
// that transpose into geometric axis coordinates, and back.
package hilbert
