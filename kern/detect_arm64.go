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

import "golang.org/x/sys/cpu"

// detectFeatures fills in ARM64 vector capability flags. There is no
// CPUID on ARM; NEON (Advanced SIMD) is mandatory in the ARMv8-A base
// architecture, so cpu.ARM64.HasASIMD is true on every arm64 kernel
// that reports feature registers at all. It is checked anyway so a
// future SVE tier can slot in beside it.
func detectFeatures(c *Capability) {
	c.HasNEON = cpu.ARM64.HasASIMD

	// PRFM is part of the A64 base instruction set.
	c.Prefetch = true
}
