package config

import (
	"os"
	"path/filepath"
	"testing"

	"textwarden/internal/dialect"
	"textwarden/internal/lang"
	"textwarden/internal/langfilter"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "warden.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write warden.toml: %v", err)
	}
	return path
}

func TestLoadFullConfig(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
[analysis]
dialect = "british"
capitalize_suggestions = true

[languages]
filter_enabled = true
excluded = ["german", "french", "klingon"]
ratio_threshold = 0.75
min_segment_words = 3

[dictionary]
abbreviations = true
it_terminology = true

[rewrite]
base_url = "http://localhost:8080/v1"
model = "qwen2.5"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	opts := cfg.Options()
	if opts.Dialect != dialect.DialectBritish {
		t.Errorf("dialect = %s, want British", opts.Dialect)
	}
	if !opts.Abbreviations || !opts.ITTerminology || opts.Slang {
		t.Errorf("layer toggles wrong: %+v", opts)
	}
	lf := opts.LanguageFilter
	if !lf.Enabled || lf.RatioThreshold != 0.75 || lf.MinSegmentWords != 3 {
		t.Errorf("language filter = %+v", lf)
	}
	// "klingon" is outside the recognized set and dropped silently.
	want := []lang.Tag{lang.TagGerman, lang.TagFrench}
	if len(lf.Excluded) != len(want) {
		t.Fatalf("excluded = %v, want %v", lf.Excluded, want)
	}
	for i := range want {
		if lf.Excluded[i] != want[i] {
			t.Errorf("excluded[%d] = %s, want %s", i, lf.Excluded[i], want[i])
		}
	}

	rc := cfg.RewriteClient()
	if rc.BaseURL != "http://localhost:8080/v1" || rc.Model != "qwen2.5" {
		t.Errorf("rewrite client = %+v", rc)
	}
}

func TestLoadPartialConfigKeepsDefaults(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
[dictionary]
slang = true
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Languages.RatioThreshold != langfilter.DefaultRatioThreshold {
		t.Errorf("ratio threshold = %v, want default", cfg.Languages.RatioThreshold)
	}
	if cfg.Analysis.Dialect != "american" {
		t.Errorf("dialect = %q, want default american", cfg.Analysis.Dialect)
	}
	if !cfg.Dictionary.Slang {
		t.Errorf("slang toggle lost")
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "not [valid toml")
	if _, err := Load(path); err == nil {
		t.Fatalf("malformed file must return an error")
	}
}

func TestFindWalksUp(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "[analysis]\ndialect = \"canadian\"\n")
	nested := filepath.Join(root, "docs", "drafts")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	path, ok, err := Find(nested)
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if !ok {
		t.Fatalf("expected to find warden.toml above %s", nested)
	}
	if filepath.Dir(path) != root {
		t.Errorf("found %s, want file in %s", path, root)
	}
}

func TestDiscoverWithoutFile(t *testing.T) {
	cfg, err := Discover(t.TempDir())
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if cfg.Analysis.Dialect != "american" || !cfg.Analysis.CapitalizeSuggestions {
		t.Errorf("missing file should yield defaults, got %+v", cfg.Analysis)
	}
}

func TestDefaultOptionsAreUsable(t *testing.T) {
	opts := Default().Options()
	if opts.Dialect != dialect.DialectAmerican {
		t.Errorf("default dialect = %s", opts.Dialect)
	}
	if opts.LanguageFilter.Enabled {
		t.Errorf("filter must default to disabled")
	}
	if opts.LanguageFilter.RatioThreshold != langfilter.DefaultRatioThreshold {
		t.Errorf("threshold = %v", opts.LanguageFilter.RatioThreshold)
	}
}
