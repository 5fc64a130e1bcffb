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

// Package kern provides float32 matrix/vector kernels with automatic
// selection among per-instruction-set implementations.
//
// A build compiles in the tiers its architecture can express (AVX-512,
// AVX2+FMA, AVX, SSE4.2 on amd64; NEON on arm64; the scalar baseline
// everywhere). At runtime the CPU's capabilities are detected once,
// and each operation executes on the widest tier that is both compiled
// in and detected, unless an explicit variant hint or configuration
// pins one. Selection never fails: the scalar baseline is the terminal
// fallback.
//
// All kernels operate on caller-owned buffers, allocate nothing, and
// handle lengths that are not a multiple of the vector width with a
// scalar remainder pass. Elementwise add, scale and the integer
// bitwise operations produce identical results on every tier; the
// multiply/dot/FMA reductions agree across tiers within a tolerance
// proportional to input magnitude and length, since accumulation order
// differs between vector widths.
package kern
