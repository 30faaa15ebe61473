// Copyright 2025, Pavel Pernička and the ScoutComp contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package store reads and writes the on-disk catalog files: one annotated
document per language under the catalog directory, and one derived runtime
artifact per language under the output directory. All writes go through an
atomic rename so a crashed or interrupted build never leaves a torn file
behind.
*/
package store

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/natefinch/atomic"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/text/language"
)

const (
	// AnnotatedExt is the extension of annotated catalog documents.
	AnnotatedExt = ".jsonc"

	// ArtifactExt is the extension of runtime catalog artifacts.
	ArtifactExt = ".json"
)

// Logger is the logger used by package store.
var Logger zerolog.Logger = log.With().Str("sys", "store").Logger()

// Store is a catalog store rooted at a catalog directory and an artifact
// output directory.
type Store struct {
	catalogDir string
	outDir     string

	// fileName maps a canonical language tag back to the file stem it was
	// discovered under, so a catalog named pt_BR.jsonc is still found after
	// Languages normalises it to pt-BR. Tags never listed fall through to
	// the tag itself.
	mu       sync.Mutex
	fileName map[string]string
}

// New returns a store over the given directories.
func New(catalogDir, outDir string) *Store {
	return &Store{
		catalogDir: catalogDir,
		outDir:     outDir,
		fileName:   make(map[string]string),
	}
}

// CatalogDir returns the annotated-document directory.
func (s *Store) CatalogDir() string { return s.catalogDir }

// Languages lists the languages that have an annotated document, sorted by
// code. File names are normalised to canonical BCP 47 tags, so both
// "pt-BR.jsonc" and "pt_BR.jsonc" surface as "pt-BR"; reads and writes of a
// listed language go back to the file name it was discovered under. Files
// whose name does not parse as a language tag are skipped with a warning.
func (s *Store) Languages() ([]string, error) {
	return s.listLanguages(s.catalogDir, AnnotatedExt)
}

// ArtifactLanguages lists the languages that have a runtime artifact, sorted
// by code.
func (s *Store) ArtifactLanguages() ([]string, error) {
	return s.listLanguages(s.outDir, ArtifactExt)
}

func (s *Store) listLanguages(dir, ext string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	var langs []string

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ext) {
			continue
		}

		name := strings.TrimSuffix(entry.Name(), ext)

		// Accept both underscore and hyphen in file names.
		t, err := language.Parse(strings.ReplaceAll(name, "_", "-"))
		if err != nil {
			Logger.Warn().
				Err(err).
				Str("file", entry.Name()).
				Msg("Skipping file with invalid language code")

			continue
		}

		tag := t.String()
		s.rememberStem(tag, name)
		langs = append(langs, tag)
	}

	sort.Strings(langs)

	return langs, nil
}

func (s *Store) rememberStem(tag, stem string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.fileName[tag] = stem
}

// stem returns the file name (without extension) lang's documents live
// under: the name discovery saw, or the tag itself when the language has
// never been listed.
func (s *Store) stem(lang string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if name, ok := s.fileName[lang]; ok {
		return name
	}

	return lang
}

// AnnotatedPath returns the path of lang's annotated document.
func (s *Store) AnnotatedPath(lang string) string {
	return filepath.Join(s.catalogDir, s.stem(lang)+AnnotatedExt)
}

// ArtifactPath returns the path of lang's runtime artifact.
func (s *Store) ArtifactPath(lang string) string {
	return filepath.Join(s.outDir, s.stem(lang)+ArtifactExt)
}

// ReadAnnotated returns the annotated document for lang. A missing document
// surfaces as fs.ErrNotExist, which the synchronizer treats as a first run.
func (s *Store) ReadAnnotated(lang string) ([]byte, error) {
	return os.ReadFile(s.AnnotatedPath(lang))
}

// ReadArtifact returns the runtime artifact for lang.
func (s *Store) ReadArtifact(lang string) ([]byte, error) {
	return os.ReadFile(s.ArtifactPath(lang))
}

// WriteAnnotated persists lang's annotated document.
func (s *Store) WriteAnnotated(lang string, data []byte) error {
	return s.write(s.catalogDir, s.AnnotatedPath(lang), data)
}

// WriteArtifact persists lang's runtime artifact.
func (s *Store) WriteArtifact(lang string, data []byte) error {
	return s.write(s.outDir, s.ArtifactPath(lang), data)
}

func (s *Store) write(dir, path string, data []byte) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}

	if err := atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}
