// Package config loads the optional warden.toml file that carries the
// tunables the analysis pipeline must not hard-code.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"textwarden/internal/dialect"
	"textwarden/internal/lang"
	"textwarden/internal/langfilter"
	"textwarden/internal/pipeline"
	"textwarden/internal/rewrite"
)

// Config mirrors the warden.toml layout. Zero values mean "use the
// defaults", so a missing file and an empty file behave the same.
type Config struct {
	Analysis   AnalysisConfig   `toml:"analysis"`
	Languages  LanguagesConfig  `toml:"languages"`
	Dictionary DictionaryConfig `toml:"dictionary"`
	Rewrite    RewriteConfig    `toml:"rewrite"`
}

type AnalysisConfig struct {
	Dialect               string `toml:"dialect"`
	CapitalizeSuggestions bool   `toml:"capitalize_suggestions"`
}

type LanguagesConfig struct {
	FilterEnabled bool     `toml:"filter_enabled"`
	Excluded      []string `toml:"excluded"`
	// RatioThreshold is the fraction of foreign-language segments
	// above which a document counts as primarily foreign.
	RatioThreshold float64 `toml:"ratio_threshold"`
	// MinSegmentWords is the shortest segment worth classifying.
	MinSegmentWords int `toml:"min_segment_words"`
}

type DictionaryConfig struct {
	Abbreviations bool `toml:"abbreviations"`
	Slang         bool `toml:"slang"`
	ITTerminology bool `toml:"it_terminology"`
	BrandNames    bool `toml:"brand_names"`
	PersonNames   bool `toml:"person_names"`
	LastNames     bool `toml:"last_names"`
}

type RewriteConfig struct {
	APIKey  string `toml:"api_key"`
	BaseURL string `toml:"base_url"`
	Model   string `toml:"model"`
}

// Default returns the configuration used when no warden.toml exists.
func Default() Config {
	return Config{
		Analysis: AnalysisConfig{
			Dialect:               "american",
			CapitalizeSuggestions: true,
		},
		Languages: LanguagesConfig{
			RatioThreshold:  langfilter.DefaultRatioThreshold,
			MinSegmentWords: langfilter.DefaultMinSegmentWords,
		},
	}
}

// Find walks from startDir toward the filesystem root looking for a
// warden.toml.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, "warden.toml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Load reads and parses one warden.toml. Fields absent from the file
// keep their Default values.
func Load(path string) (Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	return cfg, nil
}

// Discover finds and loads the nearest warden.toml above startDir,
// falling back to Default when there is none.
func Discover(startDir string) (Config, error) {
	path, ok, err := Find(startDir)
	if err != nil {
		return Config{}, err
	}
	if !ok {
		return Default(), nil
	}
	return Load(path)
}

// Options converts the file configuration into pipeline options.
func (c Config) Options() pipeline.Options {
	return pipeline.Options{
		Dialect:               dialect.Parse(c.Analysis.Dialect),
		Abbreviations:         c.Dictionary.Abbreviations,
		Slang:                 c.Dictionary.Slang,
		ITTerminology:         c.Dictionary.ITTerminology,
		BrandNames:            c.Dictionary.BrandNames,
		PersonNames:           c.Dictionary.PersonNames,
		LastNames:             c.Dictionary.LastNames,
		CapitalizeSuggestions: c.Analysis.CapitalizeSuggestions,
		LanguageFilter: langfilter.Config{
			Enabled:         c.Languages.FilterEnabled,
			Excluded:        lang.ParseAll(c.Languages.Excluded),
			RatioThreshold:  c.Languages.RatioThreshold,
			MinSegmentWords: c.Languages.MinSegmentWords,
		},
	}
}

// RewriteClient converts the rewrite section into engine settings.
func (c Config) RewriteClient() rewrite.ClientConfig {
	return rewrite.ClientConfig{
		APIKey:  c.Rewrite.APIKey,
		BaseURL: c.Rewrite.BaseURL,
		Model:   c.Rewrite.Model,
	}
}
