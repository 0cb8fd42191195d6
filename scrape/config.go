package main

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/kirsle/configdir"
)

const (
	appName        = "spirv-meta"
	cfgFilename    = "config.toml"
	defaultURL     = "https://registry.khronos.org/SPIR-V/specs/unified1/SPIRV.html"
	defaultMacro   = "ENUMERATE_SPIRV_OPCODES"
	defaultGuard   = "#pragma once"
	defaultTimeout = 30
)

type Config struct {
	Source SourceConfig `toml:"source"`
	Layout Layout       `toml:"layout"`
	Output OutputConfig `toml:"output"`
	Checks CheckConfig  `toml:"checks"`
}

type SourceConfig struct {
	URL            string `toml:"url"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

func (c SourceConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// Layout names the anchors used to find things in the specification
// document. Anchors maps a category name to the anchor of its subsection
// heading, overriding the registered default.
type Layout struct {
	ContentID        string            `toml:"content_id"`
	BinaryFormAnchor string            `toml:"binary_form_anchor"`
	Anchors          map[string]string `toml:"anchors"`
}

func (l Layout) anchorFor(cat Category) string {
	if a, ok := l.Anchors[cat.Name]; ok && a != "" {
		return a
	}
	return cat.Anchor
}

type OutputConfig struct {
	Guard string `toml:"guard"`
	Macro string `toml:"macro"`
}

type CheckConfig struct {
	EnumCollisions   Policy `toml:"enum_collisions"`
	OpcodeCollisions Policy `toml:"opcode_collisions"`
}

// Policy says what to do when a check fails.
type Policy string

const (
	PolicyError  Policy = "error"
	PolicyWarn   Policy = "warn"
	PolicyIgnore Policy = "ignore"
)

func (p Policy) valid() bool {
	switch p {
	case PolicyError, PolicyWarn, PolicyIgnore:
		return true
	}
	return false
}

func DefaultConfig() Config {
	return Config{
		Source: SourceConfig{
			URL:            defaultURL,
			TimeoutSeconds: defaultTimeout,
		},
		Layout: Layout{
			ContentID:        "content",
			BinaryFormAnchor: "_binary_form",
		},
		Output: OutputConfig{
			Guard: defaultGuard,
			Macro: defaultMacro,
		},
		Checks: CheckConfig{
			EnumCollisions:   PolicyError,
			OpcodeCollisions: PolicyWarn,
		},
	}
}

// defaultConfigPath returns where the configuration lives when no
// --config flag is given.
func defaultConfigPath() string {
	return filepath.Join(configdir.LocalConfig(appName), cfgFilename)
}

// LoadConfig reads the configuration at path on top of the defaults. If
// path is empty the default location is tried, and a missing file there
// just means the defaults are used.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	explicit := path != ""
	if !explicit {
		path = defaultConfigPath()
	}

	_, err := toml.DecodeFile(path, &cfg)
	switch {
	case err == nil:
	case !explicit && errors.Is(err, fs.ErrNotExist):
		return cfg, nil
	default:
		return Config{}, fmt.Errorf("failed to load config %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

func (cfg *Config) validate() error {
	if !cfg.Checks.EnumCollisions.valid() {
		return fmt.Errorf("checks.enum_collisions: unknown policy %q", cfg.Checks.EnumCollisions)
	}
	if !cfg.Checks.OpcodeCollisions.valid() {
		return fmt.Errorf("checks.opcode_collisions: unknown policy %q", cfg.Checks.OpcodeCollisions)
	}
	if cfg.Output.Macro == "" {
		return errors.New("output.macro must not be empty")
	}
	for name := range cfg.Layout.Anchors {
		if _, ok := categoryByName(name); !ok {
			return fmt.Errorf("layout.anchors: unknown category %q", name)
		}
	}
	if cfg.Source.TimeoutSeconds < 0 {
		return errors.New("source.timeout_seconds must not be negative")
	}
	return nil
}
