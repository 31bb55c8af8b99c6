// SPDX-License-Identifier: MIT

package matrix

import (
	"math"
	"math/rand/v2"
)

// RandomBound is the magnitude limit of generated integer entries.
const RandomBound = 100

// Random returns an n×(n+1) augmented matrix of integer-valued entries drawn
// uniformly from [-RandomBound, RandomBound]. The same rng seed yields the
// same matrix.
//
// Errors: ErrInvalidDimensions for n < 1.
// Complexity: O(n²).
func Random(n int, rng *rand.Rand) (*Dense, error) {
	if n < 1 {
		return nil, ErrInvalidDimensions
	}
	m, err := NewDense(n, n+1)
	if err != nil {
		return nil, err
	}
	for k := range m.data {
		m.data[k] = float64(rng.IntN(2*RandomBound+1) - RandomBound)
	}

	return m, nil
}

// RandomDominant is Random with each diagonal entry replaced so that
// |a[i][i]| exceeds the sum of the other coefficient magnitudes in row i
// by 1..RandomBound; its sign is kept (zero becomes positive).
func RandomDominant(n int, rng *rand.Rand) (*Dense, error) {
	m, err := Random(n, rng)
	if err != nil {
		return nil, err
	}
	cols := m.c
	for i := 0; i < n; i++ {
		off := NormZero
		for j := 0; j < n; j++ {
			if j != i {
				off += math.Abs(m.data[i*cols+j])
			}
		}
		diag := off + float64(1+rng.IntN(RandomBound))
		if m.data[i*cols+i] < 0 {
			diag = -diag
		}
		m.data[i*cols+i] = diag
	}

	return m, nil
}
