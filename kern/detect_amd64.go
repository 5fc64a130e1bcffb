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

import "golang.org/x/sys/cpu"

// detectFeatures fills in x86-64 vector capability flags. Each flag is
// probed individually via golang.org/x/sys/cpu (CPUID leaves 1 and 7);
// a feature that cannot be confirmed stays false.
func detectFeatures(c *Capability) {
	c.HasSSE42 = cpu.X86.HasSSE42
	c.HasAVX = cpu.X86.HasAVX
	c.HasAVX2 = cpu.X86.HasAVX2
	c.HasFMA = cpu.X86.HasFMA
	c.HasAVX512 = cpu.X86.HasAVX512F

	// PREFETCHh ships with SSE, which is part of the x86-64 baseline.
	c.Prefetch = cpu.X86.HasSSE2
}
