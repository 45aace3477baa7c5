package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoad_DefaultValues checks the hardcoded defaults. No configs/ directory
// exists next to the test, so only defaults() and the environment apply.
func TestLoad_DefaultValues(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "brandgen", cfg.App.Name)
	assert.Equal(t, "dev", cfg.App.Version)
	assert.Equal(t, "local", cfg.App.Environment)
	assert.Equal(t, DefaultServerPort, cfg.Server.Port)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, int64(DefaultMaxRequestSize), cfg.Server.MaxRequestSize)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, DefaultGeneratorDelay, cfg.Generator.Delay)
	assert.Zero(t, cfg.Generator.Seed)
	assert.Empty(t, cfg.Generator.CatalogPath)

	require.NoError(t, cfg.Validate())
}

func TestLoad_EnvVarOverrides(t *testing.T) {
	t.Setenv("APP_SERVER_PORT", "9090")
	t.Setenv("APP_LOG_LEVEL", "warn")
	t.Setenv("APP_GENERATOR_DELAY", "0s")
	t.Setenv("APP_GENERATOR_SEED", "42")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Zero(t, cfg.Generator.Delay)
	assert.Equal(t, uint64(42), cfg.Generator.Seed)
}

func TestLoad_DurationParsing(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 30*time.Second, cfg.Server.WriteTimeout)
	assert.Equal(t, 120*time.Second, cfg.Server.IdleTimeout)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 1500*time.Millisecond, cfg.Generator.Delay)
}

func TestLoad_NonExistentProfile(t *testing.T) {
	cfg, err := Load("nonexistent")
	require.NoError(t, err)

	assert.Equal(t, "brandgen", cfg.App.Name)
}

func writeConfigs(t *testing.T, files map[string]string) string {
	t.Helper()

	dir := t.TempDir()
	for name, body := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o600))
	}

	return dir
}

func TestLoad_ProfileFiles(t *testing.T) {
	dir := writeConfigs(t, map[string]string{
		"base.yaml": `
app:
  name: brandgen-base
generator:
  delay: 250ms
log:
  format: text
`,
		"demo.yaml": `
generator:
  seed: 7
log:
  format: pretty
`,
	})

	cfg, err := Load("demo", WithDir(dir))
	require.NoError(t, err)

	assert.Equal(t, "brandgen-base", cfg.App.Name)
	assert.Equal(t, 250*time.Millisecond, cfg.Generator.Delay)
	assert.Equal(t, uint64(7), cfg.Generator.Seed)
	assert.Equal(t, "pretty", cfg.Log.Format, "profile overrides base")
}

func TestLoad_DefaultDirIsRelative(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "configs"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "configs", "base.yaml"), []byte("app:\n  name: from-cwd\n"), 0o600))

	t.Chdir(dir)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "from-cwd", cfg.App.Name)
}

func TestLoad_EnvBeatsFiles(t *testing.T) {
	dir := writeConfigs(t, map[string]string{"base.yaml": "server:\n  port: 7000\n"})
	t.Setenv("APP_SERVER_PORT", "7001")

	cfg, err := Load("", WithDir(dir))
	require.NoError(t, err)

	assert.Equal(t, 7001, cfg.Server.Port)
}

func TestLoad_EnvUnderscoreKeys(t *testing.T) {
	catalogPath := filepath.Join(t.TempDir(), "catalog.yaml")

	t.Setenv("APP_SERVER_READ_TIMEOUT", "5s")
	t.Setenv("APP_SERVER_MAX_REQUEST_SIZE", "2048")
	t.Setenv("APP_GENERATOR_CATALOG_PATH", catalogPath)
	t.Setenv("APP_TELEMETRY_SAMPLING_RATE", "0.5")
	t.Setenv("APP_LOG_FILE_MAX_SIZE", "5")
	t.Setenv("APP_NOT_A_SETTING", "ignored")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 5*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, int64(2048), cfg.Server.MaxRequestSize)
	assert.Equal(t, catalogPath, cfg.Generator.CatalogPath)
	assert.InDelta(t, 0.5, cfg.Telemetry.SamplingRate, 1e-9)
	assert.Equal(t, 5, cfg.Log.File.MaxSizeMB)
}

func TestEnvKeyMapper(t *testing.T) {
	mapKey := envKeyMapper([]string{"server.read_timeout", "log.file.path", "app.name"})

	assert.Equal(t, "server.read_timeout", mapKey("APP_SERVER_READ_TIMEOUT"))
	assert.Equal(t, "log.file.path", mapKey("APP_LOG_FILE_PATH"))
	assert.Equal(t, "app.name", mapKey("APP_APP_NAME"))
	assert.Empty(t, mapKey("APP_ENVIRONMENT"))
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := writeConfigs(t, map[string]string{"base.yaml": "app: [unclosed"})

	_, err := Load("", WithDir(dir))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading base config")
}

func TestLoad_InvalidProfileYAML(t *testing.T) {
	dir := writeConfigs(t, map[string]string{"prod.yaml": "log: [unclosed"})

	_, err := Load("prod", WithDir(dir))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `loading profile config "prod"`)
}

func TestLoad_BoolEnvVar(t *testing.T) {
	t.Setenv("APP_TELEMETRY_ENABLED", "true")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.True(t, cfg.Telemetry.Enabled)
}

func TestLoad_LogFileDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.False(t, cfg.Log.File.Enabled)
	assert.Equal(t, "./logs/brandgen.log", cfg.Log.File.Path)
	assert.Equal(t, DefaultLogFileMaxSizeMB, cfg.Log.File.MaxSizeMB)
	assert.Equal(t, DefaultLogFileMaxBackups, cfg.Log.File.MaxBackups)
	assert.Equal(t, DefaultLogFileMaxAgeDays, cfg.Log.File.MaxAgeDays)
	assert.True(t, cfg.Log.File.Compress)
}

func TestLoad_TelemetryDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.False(t, cfg.Telemetry.Enabled)
	assert.Equal(t, "brandgen", cfg.Telemetry.ServiceName)
	assert.InDelta(t, 1.0, cfg.Telemetry.SamplingRate, 0)
}

func TestDefaults(t *testing.T) {
	d := defaults()

	assert.Equal(t, "brandgen", d["app.name"])
	assert.Equal(t, DefaultServerPort, d["server.port"])
	assert.Equal(t, "info", d["log.level"])
	assert.Equal(t, "1.5s", d["generator.delay"])
	assert.Equal(t, 0, d["generator.seed"])
}
