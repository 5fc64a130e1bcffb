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
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir changes the working directory for the duration of the test.
// It stands in for t.Chdir, which requires Go 1.24+.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Errorf("restoring working directory: %v", err)
		}
	})
}

func TestDefaultConfig(t *testing.T) {
	c := DefaultConfig()
	assert.True(t, c.Acceleration.Enabled)
	assert.Equal(t, "auto", c.Acceleration.PreferredTier)
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "veckern.yaml")
	data := "acceleration:\n  enabled: false\n  preferred_tier: sse4.2\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	c, err := LoadConfig(path)
	require.NoError(t, err)
	assert.False(t, c.Acceleration.Enabled)
	assert.Equal(t, "sse4.2", c.Acceleration.PreferredTier)
}

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	c, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), c)
}

func TestLoadConfigBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "veckern.yaml")
	require.NoError(t, os.WriteFile(path, []byte("acceleration: ["), 0o644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestFindConfigFileEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("acceleration:\n  enabled: true\n"), 0o644))

	t.Setenv("VECKERN_CONFIG", path)
	assert.Equal(t, path, FindConfigFile())
}

func TestFindConfigFileCurrentDir(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	assert.Equal(t, "", FindConfigFile())

	require.NoError(t, os.WriteFile(filepath.Join(dir, "veckern.yaml"),
		[]byte("acceleration:\n  preferred_tier: avx\n"), 0o644))
	assert.Equal(t, "veckern.yaml", FindConfigFile())

	c, err := LoadConfig(FindConfigFile())
	require.NoError(t, err)
	assert.Equal(t, "avx", c.Acceleration.PreferredTier)
}

func TestFindConfigFileIgnoresDirectories(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	// A directory named like the config file must not be picked up.
	require.NoError(t, os.Mkdir(filepath.Join(dir, "veckern.yaml"), 0o755))
	assert.Equal(t, "", FindConfigFile())
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("VECKERN_NO_SIMD", "1")
	t.Setenv("VECKERN_TIER", "avx2")

	c, err := LoadConfig("")
	require.NoError(t, err)
	assert.False(t, c.Acceleration.Enabled)
	assert.Equal(t, "avx2", c.Acceleration.PreferredTier)
}

func TestConfigurePinsBaseline(t *testing.T) {
	defer Configure(DefaultConfig())

	c := DefaultConfig()
	c.Acceleration.Enabled = false
	Configure(c)

	assert.Equal(t, TierScalar.String(), preferredHint())
	// Kernels still work, just on the baseline.
	assert.Equal(t, float32(70), VectorDot([]float32{1, 2, 3, 4}, []float32{5, 6, 7, 8}))
}

func TestPreferredHintPassesThroughValidTier(t *testing.T) {
	defer Configure(DefaultConfig())

	c := DefaultConfig()
	c.Acceleration.PreferredTier = "baseline"
	Configure(c)
	assert.Equal(t, "baseline", preferredHint())

	c.Acceleration.PreferredTier = "auto"
	Configure(c)
	assert.Equal(t, "", preferredHint())

	c.Acceleration.PreferredTier = "not-a-tier"
	Configure(c)
	assert.Equal(t, "", preferredHint())
}
