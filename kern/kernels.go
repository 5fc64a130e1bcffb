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

// kernelSet binds one implementation of every operation for a single
// tier. All implementations of an operation share the same mathematical
// semantics; only chunking and accumulation order differ.
//
// Buffer contracts (identical for every tier): binary operations read
// len(a) elements from each input and write len(a) elements to dst.
// Inputs and outputs shorter than that are a caller contract violation
// and panic on the out-of-range access. No kernel allocates.
type kernelSet struct {
	mul   func(a, b, dst []float32)
	add   func(a, b, dst []float32)
	scale func(a []float32, s float32, dst []float32)
	dot   func(a, b []float32) float32
	fma   func(a, b, c, dst []float32)
	and   func(a, b, dst []int32)
	or    func(a, b, dst []int32)

	// matmul computes C = A×B for row-major A (m×k), B (k×n), C (m×n),
	// overwriting every element of C.
	matmul func(a, b, c []float32, m, n, k int)
}

// kernelTable holds the compiled-in tiers. Build tags decide which
// entries the per-arch registration files fill in; the scalar slot is
// always populated, so selection can never come up empty.
var kernelTable [tierCount]*kernelSet

// registerKernels installs a tier's implementations. Called only from
// init functions, before any dispatch can happen.
func registerKernels(t Tier, ks *kernelSet) {
	kernelTable[t] = ks
}

// compiledIn reports whether the tier's kernels exist in this binary.
func compiledIn(t Tier) bool {
	return kernelTable[t] != nil
}
