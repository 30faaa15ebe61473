// Copyright 2025, Pavel Pernička and the ScoutComp contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package config holds the pipeline configuration: which languages exist, where
the corpus and the catalog files live, and which language plays the reference
role. Values come from defaults, then an optional YAML file, then
SCOUTCOMP_I18N_* environment variables, later sources winning.
*/
package config

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/rs/zerolog/log"
)

// Config is the full pipeline configuration.
type Config struct {
	// Languages are the catalog languages kept in sync.
	Languages []string `yaml:"languages"`

	// ReferenceLanguage is the language whose values annotate other
	// languages' documents and whose placeholders are bare keys.
	ReferenceLanguage string `yaml:"reference_language"`

	// DefaultLanguage is the runtime lookup fallback.
	DefaultLanguage string `yaml:"default_language"`

	// CatalogDir holds the annotated documents, one per language.
	CatalogDir string `yaml:"catalog_dir"`

	// OutputDir receives the runtime artifacts.
	OutputDir string `yaml:"output_dir"`

	Corpus CorpusConfig `yaml:"corpus"`
}

// CorpusConfig describes which source files are scanned for keys.
type CorpusConfig struct {
	Roots       []string `yaml:"roots"`
	Extensions  []string `yaml:"extensions"`
	ExcludeDirs []string `yaml:"exclude_dirs"`
}

// Defaults returns the configuration matching the repository layout.
func Defaults() Config {
	return Config{
		Languages:         []string{"cs", "en"},
		ReferenceLanguage: "en",
		DefaultLanguage:   "cs",
		CatalogDir:        "frontend/src/translations",
		OutputDir:         "frontend/public/translations",
		Corpus: CorpusConfig{
			Roots:       []string{"frontend/src"},
			Extensions:  []string{".js", ".jsx", ".ts", ".tsx"},
			ExcludeDirs: []string{"node_modules", "dist", "build", "translations"},
		},
	}
}

// Load builds the configuration from defaults, the YAML file at path (skipped
// with a log line when absent), and environment overrides.
func Load(path string) (Config, error) {
	cfg := Defaults()

	if err := cfg.readYAML(path); err != nil {
		return Config{}, err
	}

	cfg.applyEnv()

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (cfg *Config) readYAML(path string) error {
	if path == "" {
		return nil
	}

	_, err := os.Stat(path)
	if os.IsNotExist(err) {
		log.Info().
			Str("path", path).
			Msg("No YAML configuration file found, using defaults")

		return nil
	}

	data, err := os.ReadFile(path) // #nosec G304 -- Only loading a config file
	if err != nil {
		return fmt.Errorf("failed to read configuration file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse YAML from %s: %w", path, err)
	}

	log.Info().
		Str("path", path).
		Msg("Successfully loaded configuration")

	return nil
}

// applyEnv overlays SCOUTCOMP_I18N_* variables onto cfg.
func (cfg *Config) applyEnv() {
	if v := os.Getenv("SCOUTCOMP_I18N_LANGUAGES"); v != "" {
		cfg.Languages = splitList(v)
	}

	if v := os.Getenv("SCOUTCOMP_I18N_REFERENCE_LANGUAGE"); v != "" {
		cfg.ReferenceLanguage = v
	}

	if v := os.Getenv("SCOUTCOMP_I18N_DEFAULT_LANGUAGE"); v != "" {
		cfg.DefaultLanguage = v
	}

	if v := os.Getenv("SCOUTCOMP_I18N_CATALOG_DIR"); v != "" {
		cfg.CatalogDir = v
	}

	if v := os.Getenv("SCOUTCOMP_I18N_OUTPUT_DIR"); v != "" {
		cfg.OutputDir = v
	}

	if v := os.Getenv("SCOUTCOMP_I18N_CORPUS_ROOTS"); v != "" {
		cfg.Corpus.Roots = splitList(v)
	}
}

func (cfg *Config) validate() error {
	if len(cfg.Languages) == 0 {
		return fmt.Errorf("no languages configured")
	}

	if !slices.Contains(cfg.Languages, cfg.ReferenceLanguage) {
		return fmt.Errorf("reference language %q is not in the configured languages", cfg.ReferenceLanguage)
	}

	if !slices.Contains(cfg.Languages, cfg.DefaultLanguage) {
		return fmt.Errorf("default language %q is not in the configured languages", cfg.DefaultLanguage)
	}

	if cfg.CatalogDir == "" || cfg.OutputDir == "" {
		return fmt.Errorf("catalog_dir and output_dir must be set")
	}

	return nil
}

func splitList(s string) []string {
	var out []string

	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}

	return out
}
