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

// selectTier resolves which tier executes. An explicit request binds
// directly whenever that tier is compiled in — the caller vouches that
// the host can run it. Otherwise the widest tier that is both compiled
// in and reported available wins, with the scalar baseline as the
// terminal fallback. The function is pure: same inputs, same tier.
func selectTier(c Capability, requested Tier, explicit bool) Tier {
	if explicit && compiledIn(requested) {
		return requested
	}
	for _, t := range tierPriority {
		if compiledIn(t) && c.supports(t) {
			return t
		}
	}
	return TierScalar
}

// selectKernels resolves a variant hint tag against the cached
// capability report and returns the kernel set to execute. An empty or
// unrecognised tag means auto-selection. Never returns nil.
func selectKernels(hint string) *kernelSet {
	requested, explicit := ParseTier(hint)
	t := selectTier(Detect(), requested, explicit)
	return kernelTable[t]
}

// ActiveTier returns the tier auto-selection would execute right now.
func ActiveTier() Tier {
	return selectTier(Detect(), TierScalar, false)
}

// CompiledTiers lists the tiers whose kernels exist in this binary,
// widest first.
func CompiledTiers() []Tier {
	var out []Tier
	for _, t := range tierPriority {
		if compiledIn(t) {
			out = append(out, t)
		}
	}
	return out
}
