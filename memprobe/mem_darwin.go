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

package memprobe

import (
	"runtime"

	"golang.org/x/sys/unix"
)

// processMemoryMB reports the Go runtime's view of the heap. macOS has
// no procfs; task_info would need cgo, so the runtime numbers stand in
// for RSS. Peak is not tracked separately.
func processMemoryMB() (current, peak float64) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return float64(m.HeapInuse) / (1 << 20), float64(m.HeapSys) / (1 << 20)
}

// availableMemoryMB reads total physical RAM via sysctl hw.memsize.
// Coarse — macOS exposes no MemAvailable equivalent without cgo.
func availableMemoryMB() float64 {
	b, err := unix.SysctlRaw("hw.memsize")
	if err != nil || len(b) < 8 {
		return 0
	}
	// hw.memsize is a uint64 in native byte order.
	var bytes uint64
	for i := 0; i < 8; i++ {
		bytes |= uint64(b[i]) << (8 * i)
	}
	return float64(bytes) / (1 << 20)
}
