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

// Public operations. Every call resolves the active tier against the
// cached capability report and the configured preference, then runs the
// chosen kernel synchronously over the caller's buffers. Nothing is
// allocated and nothing is retained between calls, so concurrent use on
// disjoint buffers is safe.
//
// Buffer sizes are the caller's contract: inputs b (and c for FMA) and
// outputs must hold at least len(a) elements, matrix buffers at least
// m×k, k×n and m×n. Violations panic on the out-of-range access rather
// than being validated up front.

// VectorMul writes a[i]*b[i] for the first len(a) elements.
func VectorMul(a, b, dst []float32) {
	active().mul(a, b, dst)
}

// MatrixAdd writes a[i]+b[i] for the first len(a) elements. Matrices
// are flat row-major buffers, so elementwise addition has no shape.
func MatrixAdd(a, b, dst []float32) {
	active().add(a, b, dst)
}

// VectorScale writes a[i]*s for the first len(a) elements.
func VectorScale(a []float32, s float32, dst []float32) {
	active().scale(a, s, dst)
}

// VectorDot returns the dot product over the first len(a) elements.
// Accumulation order is tier-specific; results across tiers agree
// within a tolerance proportional to input magnitude and length, not
// bit for bit.
func VectorDot(a, b []float32) float32 {
	return active().dot(a, b)
}

// FusedMultiplyAdd writes a[i]*b[i]+c[i] for the first len(a) elements.
// Tiers with native fusion round once per element.
func FusedMultiplyAdd(a, b, c, dst []float32) {
	active().fma(a, b, c, dst)
}

// VectorAnd writes a[i]&b[i] for the first len(a) elements.
func VectorAnd(a, b, dst []int32) {
	active().and(a, b, dst)
}

// VectorOr writes a[i]|b[i] for the first len(a) elements.
func VectorOr(a, b, dst []int32) {
	active().or(a, b, dst)
}

// MatrixMultiply computes C = A×B for row-major A (m×k), B (k×n) and
// C (m×n), overwriting all of C.
func MatrixMultiply(a, b, c []float32, m, n, k int) {
	active().matmul(a, b, c, m, n, k)
}

// BlockedMatMul computes C = A×B with fixed 32×32×32 cache blocking.
// Intended for matrices too large for the naive form's access pattern;
// results match MatrixMultiply within floating-point tolerance.
func BlockedMatMul(a, b, c []float32, m, n, k int) {
	blockedMatMul(a, b, c, m, n, k)
}

// DispatchMatMul computes C = A×B on the tier named by hint ("avx512",
// "avx2", "avx", "sse4.2", "neon", "baseline"). An empty, "auto" or
// unrecognised hint auto-selects. A hint naming a tier that is compiled
// in binds it directly even if detection did not report it; requesting
// a tier the host cannot execute is a caller contract violation.
func DispatchMatMul(a, b, c []float32, m, n, k int, hint string) {
	selectKernels(hint).matmul(a, b, c, m, n, k)
}

// active resolves the kernel set for the configured preference, falling
// back to auto-selection. Cheap enough to recompute per call.
func active() *kernelSet {
	return selectKernels(preferredHint())
}
