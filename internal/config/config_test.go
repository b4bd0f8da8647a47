package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "shiftdash.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadFromPathValid(t *testing.T) {
	path := writeConfig(t, `
apiBaseURL: http://localhost:8080
sessionFile: /tmp/session.json
refreshSeconds: 10
`)

	cfg, err := LoadFromPath(path)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080", cfg.APIBaseURL)
	assert.Equal(t, "/tmp/session.json", cfg.SessionFile)
	assert.Equal(t, 10, cfg.RefreshSeconds)
	assert.Equal(t, 10*time.Second, cfg.RefreshInterval())
}

func TestLoadFromPathDefaultRefresh(t *testing.T) {
	path := writeConfig(t, "apiBaseURL: http://localhost:8080\n")

	cfg, err := LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, 30, cfg.RefreshSeconds)
	assert.Equal(t, 30*time.Second, cfg.RefreshInterval())
}

func TestLoadFromPathMissingBaseURL(t *testing.T) {
	path := writeConfig(t, "sessionFile: /tmp/session.json\n")

	_, err := LoadFromPath(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestLoadFromPathInvalidURL(t *testing.T) {
	path := writeConfig(t, "apiBaseURL: not a url\n")

	_, err := LoadFromPath(path)
	require.Error(t, err)
}

func TestLoadFromPathRefreshTooLow(t *testing.T) {
	path := writeConfig(t, `
apiBaseURL: http://localhost:8080
refreshSeconds: 2
`)

	_, err := LoadFromPath(path)
	require.Error(t, err)
}

func TestEnvOverridesFileValues(t *testing.T) {
	path := writeConfig(t, `
apiBaseURL: http://localhost:8080
sessionFile: /tmp/from-file.json
`)

	t.Setenv("SHIFTDASH_API_URL", "http://plan.example.com")
	t.Setenv("SHIFTDASH_SESSION_FILE", "/tmp/from-env.json")

	cfg, err := LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, "http://plan.example.com", cfg.APIBaseURL)
	assert.Equal(t, "/tmp/from-env.json", cfg.SessionFile)
}

func TestLoadFromPathUnreadableFile(t *testing.T) {
	_, err := LoadFromPath(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadFromPathMalformedYAML(t *testing.T) {
	path := writeConfig(t, "apiBaseURL: [unclosed\n")

	_, err := LoadFromPath(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}
