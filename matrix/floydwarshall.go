// SPDX-License-Identifier: MIT
// Package: wgraph/matrix
//
// floydwarshall.go - in-place all-pairs shortest paths (Floyd–Warshall).

package matrix

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// FloydWarshall closes d in place under shortest paths.
//
// d must be square with +Inf for "no edge" and 0 on the diagonal.
// Loop order is fixed (k → i → j) and only strict improvements are written.
// Returns ErrNegativeCycle if any diagonal entry ends up negative; d then
// holds the partial closure.
//
// Complexity: O(n³) time, O(1) extra space.
func FloydWarshall(d *mat.Dense) error {
	r, c := d.Dims()
	if r != c {
		return fmt.Errorf("FloydWarshall: non-square %dx%d: %w", r, c, ErrDimensionMismatch)
	}

	raw := d.RawMatrix()
	n, stride, data := r, raw.Stride, raw.Data
	for k := 0; k < n; k++ {
		rowK := k * stride
		for i := 0; i < n; i++ {
			ik := data[i*stride+k]
			if math.IsInf(ik, 1) {
				continue
			}
			rowI := i * stride
			for j := 0; j < n; j++ {
				kj := data[rowK+j]
				if math.IsInf(kj, 1) {
					continue
				}
				if cand := ik + kj; cand < data[rowI+j] {
					data[rowI+j] = cand
				}
			}
		}
	}

	for i := 0; i < n; i++ {
		if data[i*stride+i] < 0 {
			return fmt.Errorf("FloydWarshall: vertex %d: %w", i, ErrNegativeCycle)
		}
	}

	return nil
}
