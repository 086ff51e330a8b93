package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points every lookup at a fresh temp dir and clears overrides
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	for _, env := range []string{EnvConfigFile, EnvDataPath, EnvStorageKey, EnvSeed, EnvLogLevel, EnvThemeFile} {
		t.Setenv(env, "")
	}
	return dir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoadConfigWithoutFile(t *testing.T) {
	dir := isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, ".taskapp", "tasks.db"), cfg.Storage.Path)
	assert.Equal(t, DefaultStorageKey, cfg.Storage.Key)
	assert.Equal(t, "default", cfg.Seed)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, filepath.Join(dir, ".taskapp", "logs", "taskapp.log"), cfg.Logging.Path)
	assert.Equal(t, "#874BFD", cfg.ColorScheme.Accent)
}

func TestLoadConfigWithFile(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, "taskapp", "config.yaml"), `storage:
  path: /tmp/custom.db
seed: minimal
logging:
  level: DEBUG
theme:
  preset: monochrome
  accent: "#123456"
`)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "/tmp/custom.db", cfg.Storage.Path)
	assert.Equal(t, DefaultStorageKey, cfg.Storage.Key, "unspecified values use defaults")
	assert.Equal(t, "minimal", cfg.Seed)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "#123456", cfg.ColorScheme.Accent)
	assert.Equal(t, "#808080", cfg.ColorScheme.Subtle, "missing colors come from the preset")
}

func TestLoadConfigExplicitPath(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "elsewhere.yaml")
	writeFile(t, path, "seed: empty\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "empty", cfg.Seed)
}

func TestLoadConfigPathFromEnv(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "env.yaml")
	writeFile(t, path, "storage:\n  key: from-file\n")
	t.Setenv(EnvConfigFile, path)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "from-file", cfg.Storage.Key)
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "bad.yaml")
	writeFile(t, path, "storage: [unclosed\n")

	_, err := Load(path)
	assert.Error(t, err)
}

func TestEnvOverridesFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "config.yaml")
	writeFile(t, path, "seed: minimal\nstorage:\n  key: file-key\n")

	t.Setenv(EnvSeed, "empty")
	t.Setenv(EnvStorageKey, "env-key")
	t.Setenv(EnvDataPath, "/data/tasks.db")
	t.Setenv(EnvLogLevel, "WARN")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "empty", cfg.Seed)
	assert.Equal(t, "env-key", cfg.Storage.Key)
	assert.Equal(t, "/data/tasks.db", cfg.Storage.Path)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestSaveConfig(t *testing.T) {
	dir := isolate(t)

	cfg := Default()
	cfg.Seed = "minimal"
	cfg.Storage.Key = "saved-key"
	require.NoError(t, cfg.Save(""))

	configPath := filepath.Join(dir, "taskapp", "config.yaml")
	_, err := os.Stat(configPath)
	require.NoError(t, err, "config file not created at %s", configPath)

	cfg2, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "minimal", cfg2.Seed)
	assert.Equal(t, "saved-key", cfg2.Storage.Key)
}

func TestLoadEnv(t *testing.T) {
	dir := isolate(t)
	envFile := filepath.Join(dir, ".env")
	writeFile(t, envFile, "TASKAPP_SEED=empty\nTASKAPP_KEY=dotenv-key\n")

	// Already-set variables win over the file
	t.Setenv(EnvStorageKey, "shell-key")
	require.NoError(t, os.Unsetenv(EnvSeed))

	require.NoError(t, LoadEnv(envFile, filepath.Join(dir, "missing.env")))

	assert.Equal(t, "empty", os.Getenv(EnvSeed))
	assert.Equal(t, "shell-key", os.Getenv(EnvStorageKey))
}
