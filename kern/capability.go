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
	"os"
	"runtime"
	"strconv"
	"strings"
	"sync"
	"unsafe"

	"golang.org/x/sys/cpu"
)

// Capability describes the vector features of the running CPU. It is
// computed once per process and treated as immutable afterwards.
type Capability struct {
	// Arch is runtime.GOARCH at detection time.
	Arch string

	// x86 feature flags. All false on other architectures.
	HasSSE42  bool
	HasAVX    bool
	HasAVX2   bool
	HasFMA    bool
	HasAVX512 bool

	// HasNEON reports ARM Advanced SIMD. Always true on arm64 (part of
	// the ARMv8-A baseline).
	HasNEON bool

	// Prefetch reports software prefetch hint support.
	Prefetch bool

	// CacheLineSize is the data cache line size in bytes, 64 when the
	// real value cannot be determined.
	CacheLineSize int

	// OptLevel is the coarse optimization classification:
	// 2 full, 1 partial, 0 none.
	OptLevel int

	// Brand is a human-readable feature summary. Diagnostic only; it
	// never influences kernel selection.
	Brand string
}

var (
	detectOnce sync.Once
	detected   Capability

	// forcedCap overrides hardware detection. Tests only.
	forcedCap *Capability
	forcedMu  sync.RWMutex
)

// Detect returns the CPU capability report for this process. The first
// call performs detection; subsequent calls return the cached report.
// Detection never fails: when nothing can be queried the report simply
// carries no feature flags and OptLevel 0.
func Detect() Capability {
	forcedMu.RLock()
	forced := forcedCap
	forcedMu.RUnlock()
	if forced != nil {
		return *forced
	}

	detectOnce.Do(func() {
		detected = detectCapability()
	})
	return detected
}

// detectCapability builds the report from scratch. Safe to call more than
// once; the result only depends on the host CPU and the environment.
func detectCapability() Capability {
	c := Capability{
		Arch:          runtime.GOARCH,
		CacheLineSize: cacheLineSize(),
	}
	if noSimdEnv() {
		// Forced scalar operation: report no vector features at all so
		// every selection path lands on the baseline tier.
		c.Brand = c.Arch + ": simd disabled"
		return c
	}

	detectFeatures(&c)

	c.OptLevel = optLevel(c)
	c.Brand = featureSummary(c)
	return c
}

// supports reports whether the detected CPU can execute the given tier.
func (c Capability) supports(t Tier) bool {
	switch t {
	case TierScalar:
		return true
	case TierNEON:
		return c.HasNEON
	case TierSSE42:
		return c.HasSSE42
	case TierAVX:
		return c.HasAVX
	case TierAVX2:
		return c.HasAVX2 && c.HasFMA
	case TierAVX512:
		return c.HasAVX512
	}
	return false
}

// optLevel derives the coarse classification from the feature flags:
// level 2 when the architecture's widest tier plus prefetch support are
// present, level 1 for a mid tier plus prefetch, 0 otherwise.
func optLevel(c Capability) int {
	switch {
	case (c.HasAVX512 || (c.HasAVX2 && c.HasFMA) || c.HasNEON) && c.Prefetch:
		return 2
	case (c.HasAVX || c.HasSSE42) && c.Prefetch:
		return 1
	default:
		return 0
	}
}

// cacheLineSize returns the data cache line size in bytes. This is a
// build-time proxy for a runtime CPUID query: golang.org/x/sys/cpu
// sizes its padding type per target architecture, which matches the
// real line size on every platform the kernels target. Falls back to
// 64 should the sizing ever come up empty.
func cacheLineSize() int {
	n := int(unsafe.Sizeof(cpu.CacheLinePad{}))
	if n == 0 {
		return 64
	}
	return n
}

// featureSummary formats the detected flags into the diagnostic brand
// string, e.g. "amd64: SSE4.2 AVX AVX2 FMA".
func featureSummary(c Capability) string {
	var parts []string
	if c.HasSSE42 {
		parts = append(parts, "SSE4.2")
	}
	if c.HasAVX {
		parts = append(parts, "AVX")
	}
	if c.HasAVX2 {
		parts = append(parts, "AVX2")
	}
	if c.HasFMA {
		parts = append(parts, "FMA")
	}
	if c.HasAVX512 {
		parts = append(parts, "AVX-512")
	}
	if c.HasNEON {
		parts = append(parts, "NEON")
	}
	if len(parts) == 0 {
		return c.Arch + ": no simd"
	}
	return c.Arch + ": " + strings.Join(parts, " ")
}

// noSimdEnv checks the VECKERN_NO_SIMD environment variable. Any truthy
// (or non-parseable non-empty) value forces the scalar baseline
// regardless of CPU capabilities. Useful for testing and debugging.
func noSimdEnv() bool {
	val := os.Getenv("VECKERN_NO_SIMD")
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

// setForcedCapability overrides detection with a fabricated report.
// Tests only.
func setForcedCapability(c Capability) {
	forcedMu.Lock()
	cc := c
	forcedCap = &cc
	forcedMu.Unlock()
}

// resetCapability clears any forced report. Tests only.
func resetCapability() {
	forcedMu.Lock()
	forcedCap = nil
	forcedMu.Unlock()
}

// OptimizationLevel returns the detected coarse optimization level
// (0 none, 1 partial, 2 full).
func OptimizationLevel() int {
	return Detect().OptLevel
}
