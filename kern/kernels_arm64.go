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

//go:build arm64

package kern

import "github.com/viterin/vek/vek32"

// ARM64 NEON tier: 128-bit registers, 4 float32 lanes. The elementwise
// kernels are 4-way unrolled loops; the dot reduction delegates to
// viterin/vek's vek32, which carries NEON-friendly assembly for float32
// slices. NEON has a native fused multiply-add (FMLA), so the FMA
// kernel uses the single-rounding form.

func init() {
	registerKernels(TierNEON, &kernelSet{
		mul:    neonMul,
		add:    neonAdd,
		scale:  neonScale,
		dot:    neonDot,
		fma:    fusedFMA,
		and:    neonAnd,
		or:     neonOr,
		matmul: neonMatMul,
	})
}

func neonMul(a, b, dst []float32) {
	n := len(a)
	i := 0
	for ; i <= n-4; i += 4 {
		dst[i] = a[i] * b[i]
		dst[i+1] = a[i+1] * b[i+1]
		dst[i+2] = a[i+2] * b[i+2]
		dst[i+3] = a[i+3] * b[i+3]
	}
	for ; i < n; i++ {
		dst[i] = a[i] * b[i]
	}
}

func neonAdd(a, b, dst []float32) {
	n := len(a)
	i := 0
	for ; i <= n-4; i += 4 {
		dst[i] = a[i] + b[i]
		dst[i+1] = a[i+1] + b[i+1]
		dst[i+2] = a[i+2] + b[i+2]
		dst[i+3] = a[i+3] + b[i+3]
	}
	for ; i < n; i++ {
		dst[i] = a[i] + b[i]
	}
}

func neonScale(a []float32, s float32, dst []float32) {
	n := len(a)
	i := 0
	for ; i <= n-4; i += 4 {
		dst[i] = a[i] * s
		dst[i+1] = a[i+1] * s
		dst[i+2] = a[i+2] * s
		dst[i+3] = a[i+3] * s
	}
	for ; i < n; i++ {
		dst[i] = a[i] * s
	}
}

func neonDot(a, b []float32) float32 {
	if len(a) == 0 {
		return 0
	}
	return vek32.Dot(a, b[:len(a)])
}

func neonAnd(a, b, dst []int32) { bitAnd(a, b, dst, 4) }
func neonOr(a, b, dst []int32)  { bitOr(a, b, dst, 4) }

// neonMatMul is the row-times-row form: A[i,p] broadcast against row p
// of B, accumulated 4 lanes at a time into row i of C.
func neonMatMul(a, b, c []float32, m, n, k int) {
	matmulWide(a, b, c, m, n, k, 4)
}
