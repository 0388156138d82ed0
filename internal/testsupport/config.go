package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"akordish/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with a unique temp data directory per
// test. It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.DataDir = filepath.Join(base, "data")
	cfgVal.Catalog.Path = filepath.Join(cfgVal.Paths.DataDir, "songs.db")
	cfgVal.Logging.Level = "error"

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}
	for _, opt := range opts {
		opt(builder)
	}
	if err := builder.cfg.Validate(); err != nil {
		t.Fatalf("test config invalid: %v", err)
	}
	return builder.cfg
}

// WithSpelling sets the default transpose spelling mode.
func WithSpelling(mode string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Transpose.Spelling = mode
	}
}

// WithoutClamp disables octave folding so out-of-window shifts are rejected.
func WithoutClamp() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Transpose.Clamp = false
	}
}

// WithThreshold overrides the chord-line threshold.
func WithThreshold(threshold float64) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Classifier.ChordLineThreshold = threshold
	}
}

// WithStrictGrammar stops relaxed-only chords from counting toward the chord-line vote.
func WithStrictGrammar() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Classifier.RelaxedFallback = false
	}
}

// WithCatalogDisabled turns the song catalog off.
func WithCatalogDisabled() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Catalog.Enabled = false
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Paths.DataDir)
}

// WriteSheet writes a chord sheet under dir and returns its path.
func WriteSheet(t testing.TB, dir, name, text string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}
