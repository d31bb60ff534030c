package cli

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// FileConfig is the on-disk configuration, ~/.duext.yaml by default.
type FileConfig struct {
	PathCapacity         int      `yaml:"path_capacity"`
	ContinueOnError      bool     `yaml:"continue_on_error"`
	Exclude              []string `yaml:"exclude"`
	ExcludeFrom          string   `yaml:"exclude_from"`
	CompressedExtensions []string `yaml:"compressed_extensions"`
	OtherThreshold       *float64 `yaml:"other_threshold"`
	Color                string   `yaml:"color"`
}

// ConfigPath returns the config file location: DUEXT_CONFIG_PATH, or
// ~/.duext.yaml. It returns "" if neither can be determined.
func ConfigPath() string {
	if path := os.Getenv("DUEXT_CONFIG_PATH"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".duext.yaml")
}

// LoadFileConfig reads the config file at path. A missing file is not an
// error and yields the zero FileConfig.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	if path == "" {
		return fc, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return fc, nil
	}
	if err != nil {
		return fc, fmt.Errorf("failed to read config file: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&fc); err != nil && !errors.Is(err, io.EOF) {
		return fc, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return fc, nil
}

// Apply merges non-zero file values into cfg.
func (fc FileConfig) Apply(cfg *Config) error {
	if fc.PathCapacity != 0 {
		cfg.PathCapacity = fc.PathCapacity
	}
	if fc.ContinueOnError {
		cfg.ContinueOnError = true
	}
	cfg.Excludes = append(cfg.Excludes, fc.Exclude...)
	if fc.ExcludeFrom != "" {
		cfg.ExcludeFrom = fc.ExcludeFrom
	}
	if fc.CompressedExtensions != nil {
		cfg.Compressed = fc.CompressedExtensions
	}
	if fc.OtherThreshold != nil {
		cfg.OtherThreshold = *fc.OtherThreshold
	}
	if fc.Color != "" {
		mode, err := ParseColorMode(fc.Color)
		if err != nil {
			return err
		}
		cfg.Color = mode
	}
	return nil
}

// LoadPatternFile reads exclusion patterns in .gitignore format: one pattern
// per line, # comments, empty lines ignored.
func LoadPatternFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var patterns []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		patterns = append(patterns, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return patterns, nil
}
