package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/marmos91/bufreader/internal/bytesize"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_FromFile(t *testing.T) {
	path := writeConfig(t, `
logging:
  level: debug
input:
  max_size: 1Mi
  encoding: latin1
output:
  format: JSON
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "DEBUG", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
	assert.Equal(t, "stderr", cfg.Logging.Output)
	assert.Equal(t, bytesize.MiB, cfg.Input.MaxSize)
	assert.Equal(t, "latin1", cfg.Input.Encoding)
	assert.Equal(t, "json", cfg.Output.Format)
}

func TestLoad_NumericMaxSize(t *testing.T) {
	path := writeConfig(t, "input:\n  max_size: 4096\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, bytesize.ByteSize(4096), cfg.Input.MaxSize)
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, GetDefaultConfig(), cfg)
}

func TestLoad_DefaultLocation(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "bufreader"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bufreader", "config.yaml"), []byte("output:\n  format: yaml\n"), 0644))

	assert.True(t, DefaultConfigExists())
	assert.Equal(t, filepath.Join(dir, "bufreader", "config.yaml"), GetDefaultConfigPath())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "yaml", cfg.Output.Format)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "input:\n  max_size: 1Mi\n")
	t.Setenv("BUFREADER_INPUT_MAX_SIZE", "2Ki")
	t.Setenv("BUFREADER_LOGGING_LEVEL", "warn")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2*bytesize.KiB, cfg.Input.MaxSize)
	assert.Equal(t, "WARN", cfg.Logging.Level)
}

func TestLoad_EnvWithoutFile(t *testing.T) {
	t.Setenv("BUFREADER_OUTPUT_FORMAT", "yaml")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "yaml", cfg.Output.Format)
}

func TestLoad_FlagOverridesEnv(t *testing.T) {
	t.Setenv("BUFREADER_OUTPUT_FORMAT", "yaml")

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("output", "table", "")
	fs.String("encoding", "utf8", "")
	require.NoError(t, fs.Parse([]string{"--output", "json"}))

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"),
		WithFlag("output.format", fs.Lookup("output")),
		WithFlag("input.encoding", fs.Lookup("encoding")),
		WithFlag("input.max_size", nil),
	)
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Output.Format)
	// Unchanged flags do not override defaults.
	assert.Equal(t, "utf8", cfg.Input.Encoding)
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "bad level", content: "logging:\n  level: LOUD\n"},
		{name: "bad output format", content: "output:\n  format: xml\n"},
		{name: "bad encoding", content: "input:\n  encoding: klingon\n"},
		{name: "bad size", content: "input:\n  max_size: lots\n"},
		{name: "bad yaml", content: "input: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestSaveConfig_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := GetDefaultConfig()
	cfg.Input.MaxSize = 3 * bytesize.MiB
	cfg.Output.Format = "yaml"
	require.NoError(t, SaveConfig(cfg, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "max_size: 3Mi")

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
