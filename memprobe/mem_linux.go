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
	"os"
	"strconv"
	"strings"
)

// processMemoryMB reads VmRSS and VmHWM from /proc/self/status.
func processMemoryMB() (current, peak float64) {
	b, err := os.ReadFile("/proc/self/status")
	if err != nil {
		return 0, 0
	}
	for _, line := range strings.Split(string(b), "\n") {
		switch {
		case strings.HasPrefix(line, "VmRSS:"):
			current = statusKB(line) / 1024
		case strings.HasPrefix(line, "VmHWM:"):
			peak = statusKB(line) / 1024
		}
	}
	return current, peak
}

// statusKB parses the kB value out of a /proc/self/status line.
func statusKB(line string) float64 {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return 0
	}
	kb, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return 0
	}
	return kb
}

// availableMemoryMB reports the memory available to this process.
//
// Priority:
//  1. cgroup v2 memory.max (containerised)
//  2. cgroup v1 memory.limit_in_bytes (older Docker / K8s)
//  3. /proc/meminfo MemAvailable (bare metal)
func availableMemoryMB() float64 {
	if b, err := os.ReadFile("/sys/fs/cgroup/memory.max"); err == nil {
		s := strings.TrimSpace(string(b))
		if s != "max" {
			if v, err := strconv.ParseInt(s, 10, 64); err == nil && v > 0 {
				return float64(v) / (1 << 20)
			}
		}
	}
	if b, err := os.ReadFile("/sys/fs/cgroup/memory/memory.limit_in_bytes"); err == nil {
		if v, err := strconv.ParseInt(strings.TrimSpace(string(b)), 10, 64); err == nil && v > 0 && v < 1e15 {
			return float64(v) / (1 << 20)
		}
	}
	if b, err := os.ReadFile("/proc/meminfo"); err == nil {
		for _, line := range strings.Split(string(b), "\n") {
			if strings.HasPrefix(line, "MemAvailable:") {
				return statusKB(line) / 1024
			}
		}
	}
	return 0
}
