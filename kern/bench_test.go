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
	"fmt"
	"testing"
)

func BenchmarkDot(b *testing.B) {
	for _, n := range []int{64, 1024, 16384} {
		x := randFloats(n, 30)
		y := randFloats(n, 31)

		for _, tier := range CompiledTiers() {
			ks := kernelTable[tier]
			b.Run(fmt.Sprintf("%s/n=%d", tier, n), func(b *testing.B) {
				var sink float32
				for i := 0; i < b.N; i++ {
					sink = ks.dot(x, y)
				}
				_ = sink
			})
		}
	}
}

func BenchmarkAdd(b *testing.B) {
	n := 4096
	x := randFloats(n, 32)
	y := randFloats(n, 33)
	dst := make([]float32, n)

	for _, tier := range CompiledTiers() {
		ks := kernelTable[tier]
		b.Run(tier.String(), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				ks.add(x, y, dst)
			}
		})
	}
}

func BenchmarkMatMul(b *testing.B) {
	for _, dim := range []int{32, 128} {
		x := randFloats(dim*dim, 34)
		y := randFloats(dim*dim, 35)
		c := make([]float32, dim*dim)

		for _, tier := range CompiledTiers() {
			ks := kernelTable[tier]
			b.Run(fmt.Sprintf("%s/%dx%d", tier, dim, dim), func(b *testing.B) {
				for i := 0; i < b.N; i++ {
					ks.matmul(x, y, c, dim, dim, dim)
				}
			})
		}

		b.Run(fmt.Sprintf("blocked/%dx%d", dim, dim), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				blockedMatMul(x, y, c, dim, dim, dim)
			}
		})
	}
}
