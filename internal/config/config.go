package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/dusk-indust/ignoremerge/internal/ignorefile"
)

// FileNames are the config file names Load looks for, in order.
var FileNames = []string{".ignoremerge.yml", ".ignoremerge.yaml"}

// ProjectConfig holds project-level settings loaded from .ignoremerge.yml.
// Unset booleans fall back to the ignorefile defaults.
type ProjectConfig struct {
	Sources       []string `yaml:"sources,omitempty"`
	Output        string   `yaml:"output,omitempty"`
	Sort          *bool    `yaml:"sort,omitempty"`
	MergeSections *bool    `yaml:"mergeSections,omitempty"`
	MergeBlocks   *bool    `yaml:"mergeBlocks,omitempty"`
	Verbose       bool     `yaml:"verbose,omitempty"`

	// dir is the directory the config was read from; relative sources and
	// output resolve against it.
	dir string
}

// Load attempts to read .ignoremerge.yml or .ignoremerge.yaml from the given
// directory. Returns a zero-value config (not an error) if no config file
// exists.
func Load(dir string) (*ProjectConfig, error) {
	for _, name := range FileNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		return LoadFile(path)
	}
	return &ProjectConfig{dir: dir}, nil
}

// LoadFile reads the config at path. Unlike Load, a missing file is an error.
func LoadFile(path string) (*ProjectConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}
	cfg.dir = filepath.Dir(path)
	return &cfg, nil
}

// Options resolves the merge and compile options, defaulting unset values
// to true.
func (c *ProjectConfig) Options() ignorefile.Options {
	opts := ignorefile.DefaultOptions()
	if c.Sort != nil {
		opts.Sort = *c.Sort
	}
	if c.MergeSections != nil {
		opts.MergeSections = *c.MergeSections
	}
	if c.MergeBlocks != nil {
		opts.MergeBlocks = *c.MergeBlocks
	}
	return opts
}

// SourcePaths returns Sources resolved against the config directory.
// "-" (stdin) and absolute paths are returned unchanged.
func (c *ProjectConfig) SourcePaths() []string {
	out := make([]string, len(c.Sources))
	for i, src := range c.Sources {
		out[i] = c.resolve(src)
	}
	return out
}

// OutputPath returns Output resolved against the config directory, or ""
// when output goes to stdout.
func (c *ProjectConfig) OutputPath() string {
	if c.Output == "" {
		return ""
	}
	return c.resolve(c.Output)
}

func (c *ProjectConfig) resolve(path string) string {
	if path == "-" || filepath.IsAbs(path) || c.dir == "" {
		return path
	}
	return filepath.Join(c.dir, path)
}
