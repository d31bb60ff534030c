package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dl/duext/internal/usage"
	"github.com/dl/duext/internal/walker"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"defaults with root", func(c *Config) {}, ""},
		{"no root", func(c *Config) { c.Root = "" }, "no directory"},
		{"zero capacity", func(c *Config) { c.PathCapacity = 0 }, "invalid path capacity"},
		{"threshold above one", func(c *Config) { c.OtherThreshold = 1.5 }, "invalid other threshold"},
		{"compressed without dot", func(c *Config) { c.Compressed = []string{"gz"} }, "invalid compressed extension"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Root = "/data"
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, walker.DefaultCapacity, cfg.PathCapacity)
	assert.Equal(t, usage.DefaultCompressed, cfg.Compressed)
	assert.Equal(t, usage.DefaultThreshold, cfg.OtherThreshold)
	assert.Equal(t, ColorAuto, cfg.Color)
}

func TestLoadFileConfig_Missing(t *testing.T) {
	fc, err := LoadFileConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, FileConfig{}, fc)
}

func TestLoadFileConfig_Apply(t *testing.T) {
	path := filepath.Join(t.TempDir(), "duext.yaml")
	body := `path_capacity: 4096
continue_on_error: true
exclude:
  - "*.tmp"
  - ".snapshot/"
compressed_extensions: [".zst"]
other_threshold: 0.01
color: never
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	fc, err := LoadFileConfig(path)
	require.NoError(t, err)

	cfg := DefaultConfig()
	require.NoError(t, fc.Apply(&cfg))
	assert.Equal(t, 4096, cfg.PathCapacity)
	assert.True(t, cfg.ContinueOnError)
	assert.Equal(t, []string{"*.tmp", ".snapshot/"}, cfg.Excludes)
	assert.Equal(t, []string{".zst"}, cfg.Compressed)
	assert.Equal(t, 0.01, cfg.OtherThreshold)
	assert.Equal(t, ColorNever, cfg.Color)
}

func TestLoadFileConfig_Empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "duext.yaml")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	fc, err := LoadFileConfig(path)
	require.NoError(t, err)
	assert.Equal(t, FileConfig{}, fc)
}

func TestFileConfig_ApplyBadColor(t *testing.T) {
	cfg := DefaultConfig()
	err := FileConfig{Color: "rainbow"}.Apply(&cfg)
	assert.ErrorContains(t, err, "invalid color mode")
}

func TestConfigPath(t *testing.T) {
	t.Setenv("DUEXT_CONFIG_PATH", "/etc/duext.yaml")
	assert.Equal(t, "/etc/duext.yaml", ConfigPath())

	t.Setenv("DUEXT_CONFIG_PATH", "")
	t.Setenv("HOME", "/home/someone")
	assert.Equal(t, filepath.Join("/home/someone", ".duext.yaml"), ConfigPath())
}

func TestParseColorMode(t *testing.T) {
	for in, want := range map[string]ColorMode{"": ColorAuto, "auto": ColorAuto, "always": ColorAlways, "never": ColorNever} {
		got, err := ParseColorMode(in)
		require.NoError(t, err)
		assert.Equal(t, want, got, in)
	}
}
