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

import "runtime"

// Platform identifies a fixed (operating system, architecture) pair.
// The numeric values are part of the diagnostic surface and stable
// across releases; combinations without their own value map to
// PlatformUnknown.
type Platform int

const (
	PlatformUnknown Platform = iota
	PlatformWindowsAmd64
	PlatformWindows386
	PlatformDarwinAmd64
	PlatformDarwinArm64
	PlatformLinuxAmd64
	PlatformLinux386
	PlatformLinuxArm
	PlatformLinuxArm64
	PlatformAndroidArm
	PlatformAndroidArm64
)

// String returns "<os>/<arch>" for known platforms, "unknown" otherwise.
func (p Platform) String() string {
	switch p {
	case PlatformWindowsAmd64:
		return "windows/amd64"
	case PlatformWindows386:
		return "windows/386"
	case PlatformDarwinAmd64:
		return "darwin/amd64"
	case PlatformDarwinArm64:
		return "darwin/arm64"
	case PlatformLinuxAmd64:
		return "linux/amd64"
	case PlatformLinux386:
		return "linux/386"
	case PlatformLinuxArm:
		return "linux/arm"
	case PlatformLinuxArm64:
		return "linux/arm64"
	case PlatformAndroidArm:
		return "android/arm"
	case PlatformAndroidArm64:
		return "android/arm64"
	default:
		return "unknown"
	}
}

// PlatformInfo returns the compile-time platform of this binary.
func PlatformInfo() Platform {
	return platformFor(runtime.GOOS, runtime.GOARCH)
}

func platformFor(goos, goarch string) Platform {
	switch goos {
	case "windows":
		switch goarch {
		case "amd64":
			return PlatformWindowsAmd64
		case "386":
			return PlatformWindows386
		}
	case "darwin":
		switch goarch {
		case "amd64":
			return PlatformDarwinAmd64
		case "arm64":
			return PlatformDarwinArm64
		}
	case "linux":
		switch goarch {
		case "amd64":
			return PlatformLinuxAmd64
		case "386":
			return PlatformLinux386
		case "arm":
			return PlatformLinuxArm
		case "arm64":
			return PlatformLinuxArm64
		}
	case "android":
		switch goarch {
		case "arm":
			return PlatformAndroidArm
		case "arm64":
			return PlatformAndroidArm64
		}
	}
	return PlatformUnknown
}
