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

// Tier identifies one vector instruction-set level. Each tier has a fixed
// number of float32 lanes per register and its own kernel implementations.
type Tier int

const (
	// TierScalar is the portable pure Go baseline. Always compiled in.
	TierScalar Tier = iota

	// TierNEON is ARM Advanced SIMD (128-bit, 4 float32 lanes).
	TierNEON

	// TierSSE42 is x86 SSE4.2 (128-bit, 4 float32 lanes).
	TierSSE42

	// TierAVX is x86 AVX without fused multiply-add (256-bit, 8 lanes).
	TierAVX

	// TierAVX2 is x86 AVX2 with FMA (256-bit, 8 lanes).
	TierAVX2

	// TierAVX512 is x86 AVX-512 (512-bit, 16 float32 lanes).
	TierAVX512

	tierCount
)

// tierPriority lists tiers widest-first. Auto-selection walks this order
// and binds the first tier that is both compiled in and detected.
var tierPriority = [...]Tier{TierAVX512, TierAVX2, TierAVX, TierSSE42, TierNEON, TierScalar}

// String returns the canonical name for the tier. These names double as
// the variant hint tags accepted by DispatchMatMul.
func (t Tier) String() string {
	switch t {
	case TierScalar:
		return "baseline"
	case TierNEON:
		return "neon"
	case TierSSE42:
		return "sse4.2"
	case TierAVX:
		return "avx"
	case TierAVX2:
		return "avx2"
	case TierAVX512:
		return "avx512"
	default:
		return "unknown"
	}
}

// Lanes returns the number of float32 elements processed per vector chunk.
func (t Tier) Lanes() int {
	switch t {
	case TierAVX512:
		return 16
	case TierAVX2, TierAVX:
		return 8
	case TierSSE42, TierNEON:
		return 4
	default:
		return 1
	}
}

// ParseTier maps a variant hint tag to its Tier. The empty string and
// "auto" are not tiers; for those (and any unrecognised tag) ok is false
// and the caller falls back to auto-selection.
func ParseTier(tag string) (Tier, bool) {
	switch tag {
	case "baseline", "scalar":
		return TierScalar, true
	case "neon":
		return TierNEON, true
	case "sse4.2", "sse42":
		return TierSSE42, true
	case "avx":
		return TierAVX, true
	case "avx2":
		return TierAVX2, true
	case "avx512":
		return TierAVX512, true
	}
	return TierScalar, false
}
