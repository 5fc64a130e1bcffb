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

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectIdempotent(t *testing.T) {
	first := Detect()
	second := Detect()
	assert.Equal(t, first, second)

	// Recomputation from scratch must also agree on a fixed machine.
	assert.Equal(t, detectCapability(), detectCapability())
}

func TestDetectBasics(t *testing.T) {
	c := Detect()

	assert.Equal(t, runtime.GOARCH, c.Arch)
	assert.Greater(t, c.CacheLineSize, 0)
	assert.GreaterOrEqual(t, c.OptLevel, 0)
	assert.LessOrEqual(t, c.OptLevel, 2)
	assert.NotEmpty(t, c.Brand)
	assert.Equal(t, c.OptLevel, OptimizationLevel())
}

func TestDetectNoSimdEnvForcesScalar(t *testing.T) {
	t.Setenv("VECKERN_NO_SIMD", "1")

	c := detectCapability()
	assert.Equal(t, 0, c.OptLevel)
	for _, tier := range tierPriority[:len(tierPriority)-1] {
		assert.False(t, c.supports(tier), "tier %s", tier)
	}
	assert.True(t, c.supports(TierScalar))
}

func TestNoSimdEnvParsing(t *testing.T) {
	cases := []struct {
		val  string
		want bool
	}{
		{"", false},
		{"0", false},
		{"false", false},
		{"1", true},
		{"true", true},
		{"yes", true}, // unparseable non-empty counts as set
	}
	for _, tc := range cases {
		t.Setenv("VECKERN_NO_SIMD", tc.val)
		assert.Equal(t, tc.want, noSimdEnv(), "value %q", tc.val)
	}
}

func TestForcedCapabilityRoundTrip(t *testing.T) {
	defer resetCapability()

	forced := capabilityFor(TierAVX2)
	forced.Brand = "test override"
	setForcedCapability(forced)

	got := Detect()
	assert.Equal(t, forced, got)

	resetCapability()
	assert.NotEqual(t, "test override", Detect().Brand)
}

func TestOptLevelDerivation(t *testing.T) {
	cases := []struct {
		name string
		c    Capability
		want int
	}{
		{"nothing", Capability{}, 0},
		{"avx2+fma no prefetch", Capability{HasAVX2: true, HasFMA: true}, 0},
		{"avx2+fma", Capability{HasAVX2: true, HasFMA: true, Prefetch: true}, 2},
		{"avx2 without fma", Capability{HasAVX2: true, Prefetch: true}, 0},
		{"avx512", Capability{HasAVX512: true, Prefetch: true}, 2},
		{"neon", Capability{HasNEON: true, Prefetch: true}, 2},
		{"avx only", Capability{HasAVX: true, Prefetch: true}, 1},
		{"sse4.2 only", Capability{HasSSE42: true, Prefetch: true}, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, optLevel(tc.c))
		})
	}
}

func TestFeatureSummary(t *testing.T) {
	c := Capability{Arch: "amd64", HasSSE42: true, HasAVX: true}
	assert.Equal(t, "amd64: SSE4.2 AVX", featureSummary(c))

	empty := Capability{Arch: "riscv64"}
	assert.Equal(t, "riscv64: no simd", featureSummary(empty))
}

func TestCapabilitySupportsScalarAlways(t *testing.T) {
	require.True(t, Capability{}.supports(TierScalar))
	require.True(t, Detect().supports(TierScalar))
}

func TestDetectConcurrent(t *testing.T) {
	// First caller computes, concurrent callers must never observe a
	// partially written report.
	done := make(chan Capability, 16)
	for i := 0; i < 16; i++ {
		go func() { done <- Detect() }()
	}
	want := Detect()
	for i := 0; i < 16; i++ {
		assert.Equal(t, want, <-done)
	}
}
