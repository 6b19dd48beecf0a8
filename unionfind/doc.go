// Package unionfind implements a weighted quick-union disjoint-set forest
// over the integer elements {0, …, M-1}.
//
// What:
//
//   - UF keeps a flat parent[] slice and a size[] slice; no pointers, no maps.
//   - Union attaches the root of the smaller tree under the larger one.
//   - Find walks to the root with path halving, so every lookup shortens the
//     path it traversed.
//   - Unions are permanent; there is no split or delete.
//
// Why:
//
//   - Percolation asks "are these two sites connected?" after every open.
//     A forest answers that in amortized α(M) time without re-scanning the grid.
//
// Complexity:
//
//   - New:       O(M) time, O(M) memory.
//   - Union:     O(α(M)) amortized.
//   - Connected: O(α(M)) amortized.
//   - Count/Len: O(1).
//
// Errors:
//
//   - ErrInvalidSize: New called with M ≤ 0.
//   - ErrElementOutOfRange: element outside [0, M-1]; returned as *RangeError.
//
// UF is not safe for concurrent use. Callers that share one across goroutines
// must guard Union/Connected pairs with a single mutex.
package unionfind
