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

// blockSize is the fixed cache-block extent along each dimension.
// 3 blocks of 32x32 float32 = 12KB, comfortably inside a 32KB L1.
const blockSize = 32

// blockedMatMul computes C = A×B (row-major, A m×k, B k×n, C m×n) by
// walking 32×32×32 sub-blocks and accumulating partial sums into a
// zero-initialized C. Blocks at the matrix edge are clipped to the
// boundary; nothing is padded and nothing is allocated. The inner loop
// is scalar: the win here is cache locality for large matrices, not
// instruction-level parallelism.
func blockedMatMul(a, b, c []float32, m, n, k int) {
	for i := range c[:m*n] {
		c[i] = 0
	}

	for i0 := 0; i0 < m; i0 += blockSize {
		iEnd := min(i0+blockSize, m)
		for p0 := 0; p0 < k; p0 += blockSize {
			pEnd := min(p0+blockSize, k)
			for j0 := 0; j0 < n; j0 += blockSize {
				jEnd := min(j0+blockSize, n)

				for i := i0; i < iEnd; i++ {
					for p := p0; p < pEnd; p++ {
						aip := a[i*k+p]
						cRow := i * n
						bRow := p * n
						for j := j0; j < jEnd; j++ {
							c[cRow+j] += aip * b[bRow+j]
						}
					}
				}
			}
		}
	}
}
