package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// inTempDir runs the test from an empty directory so no stray config.yaml or
// .env is picked up
func inTempDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	chdir(t, dir)
	t.Setenv("HOME", dir)
	t.Setenv("GITHUB_TOKEN", "")
	return dir
}

func TestLoadDefaults(t *testing.T) {
	inTempDir(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "https://www.hltv.org", cfg.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Equal(t, 1.0, cfg.RatePerSecond)
	assert.False(t, cfg.Browser)
	assert.Equal(t, "~/.local/share/hltv-cal", cfg.DataDir)
	assert.Equal(t, "WARN", cfg.LogLevel)
	assert.False(t, cfg.Gist.Enabled())
}

func TestLoadFile(t *testing.T) {
	dir := inTempDir(t)
	path := filepath.Join(dir, "custom.yaml")
	content := `
base_url: https://mirror.example.com
timeout: 5s
rate_per_second: 0.5
browser: true
download_dir: /tmp/ics
gist:
  id: abc123
  token: ghp_file
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://mirror.example.com", cfg.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.Equal(t, 0.5, cfg.RatePerSecond)
	assert.True(t, cfg.Browser)
	assert.Equal(t, "/tmp/ics", cfg.DownloadDir)
	assert.True(t, cfg.Gist.Enabled())
	assert.Equal(t, "abc123", cfg.Gist.ID)
}

func TestLoadDiscoversConfigInWorkingDir(t *testing.T) {
	dir := inTempDir(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("log_level: DEBUG\n"), 0600))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "DEBUG", cfg.LogLevel)
}

func TestLoadEnvOverrides(t *testing.T) {
	dir := inTempDir(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("base_url: https://file.example.com\n"), 0600))

	t.Setenv("HLTV_CAL_BASE_URL", "https://env.example.com")
	t.Setenv("HLTV_CAL_GIST_ID", "envgist")
	t.Setenv("GITHUB_TOKEN", "ghp_env")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "https://env.example.com", cfg.BaseURL)
	assert.Equal(t, "envgist", cfg.Gist.ID)
	assert.Equal(t, "ghp_env", cfg.Gist.Token)
}

func TestLoadDotEnv(t *testing.T) {
	dir := inTempDir(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("HLTV_CAL_LOG_LEVEL=ERROR\n"), 0600))
	// godotenv does not overwrite existing variables; register for cleanup
	t.Setenv("HLTV_CAL_LOG_LEVEL", "")
	os.Unsetenv("HLTV_CAL_LOG_LEVEL")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "ERROR", cfg.LogLevel)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	dir := inTempDir(t)

	_, err := Load(filepath.Join(dir, "nope.yaml"))
	assert.Error(t, err)
}

// chdir changes the working directory for the duration of the test,
// mirroring testing.T.Chdir (Go 1.24+) for older toolchains
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
