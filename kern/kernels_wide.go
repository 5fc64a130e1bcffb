// Copyright 2025 veckern Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package kern

import "math"

// Width-parameterized kernel bodies shared by the accelerated tiers.
// Integer bitwise results are exact at any chunking, and the matmul row
// broadcast only changes accumulation order, so one body per operation
// serves every vector width.

// fusedFMA rounds once per element via math.FMA, matching a native
// fused multiply-add instruction. At least as accurate as the two-step
// fallback, per contract never less.
func fusedFMA(a, b, c, dst []float32) {
	for i := range a {
		dst[i] = float32(math.FMA(float64(a[i]), float64(b[i]), float64(c[i])))
	}
}

func bitAnd(a, b, dst []int32, w int) {
	n := len(a)
	i := 0
	for ; i <= n-w; i += w {
		for j := 0; j < w; j++ {
			dst[i+j] = a[i+j] & b[i+j]
		}
	}
	for ; i < n; i++ {
		dst[i] = a[i] & b[i]
	}
}

func bitOr(a, b, dst []int32, w int) {
	n := len(a)
	i := 0
	for ; i <= n-w; i += w {
		for j := 0; j < w; j++ {
			dst[i+j] = a[i+j] | b[i+j]
		}
	}
	for ; i < n; i++ {
		dst[i] = a[i] | b[i]
	}
}

// matmulWide broadcasts A[i,p] across row p of B and accumulates into
// row i of C, w lanes at a time, with a scalar pass for the row tail.
// Accumulation order differs from the naive triple loop, so agreement
// with the baseline is tolerance-bounded.
func matmulWide(a, b, c []float32, m, n, k, w int) {
	for i := range c[:m*n] {
		c[i] = 0
	}
	for i := 0; i < m; i++ {
		cRow := c[i*n : (i+1)*n]
		for p := 0; p < k; p++ {
			aip := a[i*k+p]
			bRow := b[p*n : (p+1)*n]
			j := 0
			for ; j <= n-w; j += w {
				for l := 0; l < w; l++ {
					cRow[j+l] += aip * bRow[j+l]
				}
			}
			for ; j < n; j++ {
				cRow[j] += aip * bRow[j]
			}
		}
	}
}
