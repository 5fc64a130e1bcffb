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

// Scalar baseline implementations. These define the reference semantics
// every accelerated tier must reproduce (exactly for add, scale and the
// bitwise operations; within floating-point tolerance for the
// reductions). Always compiled in on every architecture.

func init() {
	registerKernels(TierScalar, &kernelSet{
		mul:    scalarMul,
		add:    scalarAdd,
		scale:  scalarScale,
		dot:    scalarDot,
		fma:    scalarFMA,
		and:    scalarAnd,
		or:     scalarOr,
		matmul: scalarMatMul,
	})
}

func scalarMul(a, b, dst []float32) {
	for i := range a {
		dst[i] = a[i] * b[i]
	}
}

func scalarAdd(a, b, dst []float32) {
	for i := range a {
		dst[i] = a[i] + b[i]
	}
}

func scalarScale(a []float32, s float32, dst []float32) {
	for i := range a {
		dst[i] = a[i] * s
	}
}

func scalarDot(a, b []float32) float32 {
	var sum float32
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}

// scalarFMA is the two-step multiply-then-add fallback. Tiers with
// native fused support round once instead of twice and may therefore be
// slightly more accurate; never less.
func scalarFMA(a, b, c, dst []float32) {
	for i := range a {
		dst[i] = a[i]*b[i] + c[i]
	}
}

func scalarAnd(a, b, dst []int32) {
	for i := range a {
		dst[i] = a[i] & b[i]
	}
}

func scalarOr(a, b, dst []int32) {
	for i := range a {
		dst[i] = a[i] | b[i]
	}
}

// scalarMatMul is the naive triple loop: C[i,j] = Σ_k A[i,k]·B[k,j].
func scalarMatMul(a, b, c []float32, m, n, k int) {
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			var sum float32
			for p := 0; p < k; p++ {
				sum += a[i*k+p] * b[p*n+j]
			}
			c[i*n+j] = sum
		}
	}
}
