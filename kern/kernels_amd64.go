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

//go:build amd64

package kern

// x86-64 tiers. Each kernel processes full chunks of the tier's vector
// width with unrolling the compiler can auto-vectorize for that
// instruction set, then finishes the remainder one element at a time.
// SSE4.2 works 4 lanes at a time, AVX and AVX2 8 lanes, AVX-512 16.
// The AVX2 and AVX-512 tiers additionally fuse multiply-add; the plain
// AVX tier uses the two-step form.

func init() {
	registerKernels(TierSSE42, &kernelSet{
		mul:    sseMul,
		add:    sseAdd,
		scale:  sseScale,
		dot:    sseDot,
		fma:    sseFMA,
		and:    and4,
		or:     or4,
		matmul: matmul4,
	})
	registerKernels(TierAVX, &kernelSet{
		mul:    avxMul,
		add:    avxAdd,
		scale:  avxScale,
		dot:    avxDot,
		fma:    avxFMA,
		and:    and8,
		or:     or8,
		matmul: matmul8,
	})
	registerKernels(TierAVX2, &kernelSet{
		mul:    avxMul,
		add:    avxAdd,
		scale:  avxScale,
		dot:    avxDot,
		fma:    fusedFMA,
		and:    and8,
		or:     or8,
		matmul: matmul8,
	})
	registerKernels(TierAVX512, &kernelSet{
		mul:    avx512Mul,
		add:    avx512Add,
		scale:  avx512Scale,
		dot:    avx512Dot,
		fma:    fusedFMA,
		and:    and16,
		or:     or16,
		matmul: matmul16,
	})
}

// ---- 128-bit (SSE4.2) ----

func sseMul(a, b, dst []float32) {
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

func sseAdd(a, b, dst []float32) {
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

func sseScale(a []float32, s float32, dst []float32) {
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

func sseDot(a, b []float32) float32 {
	n := len(a)
	var s0, s1, s2, s3 float32
	i := 0
	for ; i <= n-4; i += 4 {
		s0 += a[i] * b[i]
		s1 += a[i+1] * b[i+1]
		s2 += a[i+2] * b[i+2]
		s3 += a[i+3] * b[i+3]
	}
	for ; i < n; i++ {
		s0 += a[i] * b[i]
	}
	return s0 + s1 + s2 + s3
}

// sseFMA uses the two-step form: SSE4.2 predates the FMA extension.
func sseFMA(a, b, c, dst []float32) {
	n := len(a)
	i := 0
	for ; i <= n-4; i += 4 {
		dst[i] = a[i]*b[i] + c[i]
		dst[i+1] = a[i+1]*b[i+1] + c[i+1]
		dst[i+2] = a[i+2]*b[i+2] + c[i+2]
		dst[i+3] = a[i+3]*b[i+3] + c[i+3]
	}
	for ; i < n; i++ {
		dst[i] = a[i]*b[i] + c[i]
	}
}

// ---- 256-bit (AVX / AVX2) ----

func avxMul(a, b, dst []float32) {
	n := len(a)
	i := 0
	for ; i <= n-8; i += 8 {
		dst[i] = a[i] * b[i]
		dst[i+1] = a[i+1] * b[i+1]
		dst[i+2] = a[i+2] * b[i+2]
		dst[i+3] = a[i+3] * b[i+3]
		dst[i+4] = a[i+4] * b[i+4]
		dst[i+5] = a[i+5] * b[i+5]
		dst[i+6] = a[i+6] * b[i+6]
		dst[i+7] = a[i+7] * b[i+7]
	}
	for ; i < n; i++ {
		dst[i] = a[i] * b[i]
	}
}

func avxAdd(a, b, dst []float32) {
	n := len(a)
	i := 0
	for ; i <= n-8; i += 8 {
		dst[i] = a[i] + b[i]
		dst[i+1] = a[i+1] + b[i+1]
		dst[i+2] = a[i+2] + b[i+2]
		dst[i+3] = a[i+3] + b[i+3]
		dst[i+4] = a[i+4] + b[i+4]
		dst[i+5] = a[i+5] + b[i+5]
		dst[i+6] = a[i+6] + b[i+6]
		dst[i+7] = a[i+7] + b[i+7]
	}
	for ; i < n; i++ {
		dst[i] = a[i] + b[i]
	}
}

func avxScale(a []float32, s float32, dst []float32) {
	n := len(a)
	i := 0
	for ; i <= n-8; i += 8 {
		dst[i] = a[i] * s
		dst[i+1] = a[i+1] * s
		dst[i+2] = a[i+2] * s
		dst[i+3] = a[i+3] * s
		dst[i+4] = a[i+4] * s
		dst[i+5] = a[i+5] * s
		dst[i+6] = a[i+6] * s
		dst[i+7] = a[i+7] * s
	}
	for ; i < n; i++ {
		dst[i] = a[i] * s
	}
}

// avxDot keeps one accumulator per lane and reduces them after the
// chunked loop. The summation order differs from the scalar baseline,
// so results agree only within floating-point tolerance.
func avxDot(a, b []float32) float32 {
	n := len(a)
	var s0, s1, s2, s3, s4, s5, s6, s7 float32
	i := 0
	for ; i <= n-8; i += 8 {
		s0 += a[i] * b[i]
		s1 += a[i+1] * b[i+1]
		s2 += a[i+2] * b[i+2]
		s3 += a[i+3] * b[i+3]
		s4 += a[i+4] * b[i+4]
		s5 += a[i+5] * b[i+5]
		s6 += a[i+6] * b[i+6]
		s7 += a[i+7] * b[i+7]
	}
	for ; i < n; i++ {
		s0 += a[i] * b[i]
	}
	return s0 + s1 + s2 + s3 + s4 + s5 + s6 + s7
}

// avxFMA is the two-step form for the pre-FMA 256-bit tier.
func avxFMA(a, b, c, dst []float32) {
	n := len(a)
	i := 0
	for ; i <= n-8; i += 8 {
		dst[i] = a[i]*b[i] + c[i]
		dst[i+1] = a[i+1]*b[i+1] + c[i+1]
		dst[i+2] = a[i+2]*b[i+2] + c[i+2]
		dst[i+3] = a[i+3]*b[i+3] + c[i+3]
		dst[i+4] = a[i+4]*b[i+4] + c[i+4]
		dst[i+5] = a[i+5]*b[i+5] + c[i+5]
		dst[i+6] = a[i+6]*b[i+6] + c[i+6]
		dst[i+7] = a[i+7]*b[i+7] + c[i+7]
	}
	for ; i < n; i++ {
		dst[i] = a[i]*b[i] + c[i]
	}
}

// ---- 512-bit (AVX-512) ----

func avx512Mul(a, b, dst []float32) {
	n := len(a)
	i := 0
	for ; i <= n-16; i += 16 {
		for j := 0; j < 16; j += 4 {
			dst[i+j] = a[i+j] * b[i+j]
			dst[i+j+1] = a[i+j+1] * b[i+j+1]
			dst[i+j+2] = a[i+j+2] * b[i+j+2]
			dst[i+j+3] = a[i+j+3] * b[i+j+3]
		}
	}
	for ; i < n; i++ {
		dst[i] = a[i] * b[i]
	}
}

func avx512Add(a, b, dst []float32) {
	n := len(a)
	i := 0
	for ; i <= n-16; i += 16 {
		for j := 0; j < 16; j += 4 {
			dst[i+j] = a[i+j] + b[i+j]
			dst[i+j+1] = a[i+j+1] + b[i+j+1]
			dst[i+j+2] = a[i+j+2] + b[i+j+2]
			dst[i+j+3] = a[i+j+3] + b[i+j+3]
		}
	}
	for ; i < n; i++ {
		dst[i] = a[i] + b[i]
	}
}

func avx512Scale(a []float32, s float32, dst []float32) {
	n := len(a)
	i := 0
	for ; i <= n-16; i += 16 {
		for j := 0; j < 16; j += 4 {
			dst[i+j] = a[i+j] * s
			dst[i+j+1] = a[i+j+1] * s
			dst[i+j+2] = a[i+j+2] * s
			dst[i+j+3] = a[i+j+3] * s
		}
	}
	for ; i < n; i++ {
		dst[i] = a[i] * s
	}
}

// avx512Dot processes 16 elements per chunk with 8 accumulators, each
// covering two lanes.
func avx512Dot(a, b []float32) float32 {
	n := len(a)
	var s0, s1, s2, s3, s4, s5, s6, s7 float32
	i := 0
	for ; i <= n-16; i += 16 {
		s0 += a[i]*b[i] + a[i+8]*b[i+8]
		s1 += a[i+1]*b[i+1] + a[i+9]*b[i+9]
		s2 += a[i+2]*b[i+2] + a[i+10]*b[i+10]
		s3 += a[i+3]*b[i+3] + a[i+11]*b[i+11]
		s4 += a[i+4]*b[i+4] + a[i+12]*b[i+12]
		s5 += a[i+5]*b[i+5] + a[i+13]*b[i+13]
		s6 += a[i+6]*b[i+6] + a[i+14]*b[i+14]
		s7 += a[i+7]*b[i+7] + a[i+15]*b[i+15]
	}
	for ; i < n; i++ {
		s0 += a[i] * b[i]
	}
	return s0 + s1 + s2 + s3 + s4 + s5 + s6 + s7
}

func and4(a, b, dst []int32)  { bitAnd(a, b, dst, 4) }
func and8(a, b, dst []int32)  { bitAnd(a, b, dst, 8) }
func and16(a, b, dst []int32) { bitAnd(a, b, dst, 16) }

func or4(a, b, dst []int32)  { bitOr(a, b, dst, 4) }
func or8(a, b, dst []int32)  { bitOr(a, b, dst, 8) }
func or16(a, b, dst []int32) { bitOr(a, b, dst, 16) }

func matmul4(a, b, c []float32, m, n, k int)  { matmulWide(a, b, c, m, n, k, 4) }
func matmul8(a, b, c []float32, m, n, k int)  { matmulWide(a, b, c, m, n, k, 8) }
func matmul16(a, b, c []float32, m, n, k int) { matmulWide(a, b, c, m, n, k, 16) }
