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

// Package memprobe reports process and system memory usage for
// diagnostics. It is an independent facility: nothing in the kernel
// packages depends on it, and it reads nothing from them.
//
// Detection is best-effort per platform (procfs and cgroups on Linux,
// sysctl on macOS, the Go runtime elsewhere); a reading that cannot be
// obtained is reported as zero rather than as an error.
package memprobe

import "runtime"

// Report is a snapshot of memory usage at probe time, in megabytes.
type Report struct {
	// Name is the caller-supplied label for this probe point.
	Name string

	// CurrentMB is the process's resident set size.
	CurrentMB float64

	// PeakMB is the process's peak resident set size. Zero where the
	// platform does not track a high-water mark.
	PeakMB float64

	// AvailableMB is the memory available to the process: the cgroup
	// limit when one applies, otherwise the system's available memory.
	AvailableMB float64

	// Exceeded is true when CurrentMB is above the threshold the probe
	// was called with.
	Exceeded bool
}

// Check probes current memory usage under the given label and flags
// whether it exceeds thresholdMB. A threshold <= 0 disables the alert.
func Check(name string, thresholdMB float64) Report {
	r := Report{Name: name}
	r.CurrentMB, r.PeakMB = processMemoryMB()
	r.AvailableMB = availableMemoryMB()

	if r.CurrentMB == 0 {
		// Platform gave us nothing; fall back to the Go runtime's view
		// of the heap so the probe still reports something useful.
		var m runtime.MemStats
		runtime.ReadMemStats(&m)
		r.CurrentMB = float64(m.HeapInuse) / (1 << 20)
		if r.PeakMB == 0 {
			r.PeakMB = float64(m.HeapSys) / (1 << 20)
		}
	}

	r.Exceeded = thresholdMB > 0 && r.CurrentMB > thresholdMB
	return r
}
