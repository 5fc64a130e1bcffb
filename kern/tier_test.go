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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTierStringParseRoundTrip(t *testing.T) {
	for tier := TierScalar; tier < tierCount; tier++ {
		got, ok := ParseTier(tier.String())
		assert.True(t, ok, "tier %d", tier)
		assert.Equal(t, tier, got)
	}
}

func TestParseTierRejectsAutoAndUnknown(t *testing.T) {
	for _, tag := range []string{"", "auto", "mmx", "AVX2", "sve"} {
		_, ok := ParseTier(tag)
		assert.False(t, ok, "tag %q", tag)
	}
}

func TestParseTierAliases(t *testing.T) {
	for tag, want := range map[string]Tier{
		"scalar": TierScalar,
		"sse42":  TierSSE42,
	} {
		got, ok := ParseTier(tag)
		assert.True(t, ok)
		assert.Equal(t, want, got, "tag %q", tag)
	}
}

func TestTierLanes(t *testing.T) {
	assert.Equal(t, 1, TierScalar.Lanes())
	assert.Equal(t, 4, TierNEON.Lanes())
	assert.Equal(t, 4, TierSSE42.Lanes())
	assert.Equal(t, 8, TierAVX.Lanes())
	assert.Equal(t, 8, TierAVX2.Lanes())
	assert.Equal(t, 16, TierAVX512.Lanes())
}

func TestTierPriorityCoversAllTiers(t *testing.T) {
	assert.Len(t, tierPriority, int(tierCount))
	seen := map[Tier]bool{}
	for _, tier := range tierPriority {
		assert.False(t, seen[tier], "duplicate %s", tier)
		seen[tier] = true
	}
	assert.Equal(t, TierScalar, tierPriority[len(tierPriority)-1])
}
