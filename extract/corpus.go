// Copyright 2025, Pavel Pernička and the ScoutComp contributors
// SPDX-License-Identifier: AGPL-3.0-only

package extract

import (
	"fmt"
	"io/fs"
	"path"
	"strings"
)

// Corpus enumerates the source files to scan for translation keys. Keeping
// enumeration behind an interface lets tests feed the extractor an in-memory
// tree instead of a real checkout.
type Corpus interface {
	// Files lists every scannable file, in a stable order.
	Files() ([]string, error)

	// Open opens one listed file for reading.
	Open(name string) (fs.File, error)
}

// FSCorpus walks an fs.FS, keeping files whose extension is in Extensions and
// skipping any directory whose name is in ExcludeDirs (build output,
// node_modules and the like). Test files (*.test.* and anything under a
// __tests__ directory) are always skipped.
type FSCorpus struct {
	FS          fs.FS
	Extensions  []string
	ExcludeDirs []string
}

// Files implements Corpus by walking the tree once.
func (c *FSCorpus) Files() ([]string, error) {
	var out []string

	err := fs.WalkDir(c.FS, ".", func(name string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			if c.excluded(d.Name()) {
				return fs.SkipDir
			}

			return nil
		}

		if c.wanted(name) {
			out = append(out, name)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk corpus: %w", err)
	}

	return out, nil
}

// Open implements Corpus.
func (c *FSCorpus) Open(name string) (fs.File, error) {
	return c.FS.Open(name)
}

func (c *FSCorpus) excluded(dir string) bool {
	if dir == "__tests__" {
		return true
	}

	for _, e := range c.ExcludeDirs {
		if dir == e {
			return true
		}
	}

	return false
}

func (c *FSCorpus) wanted(name string) bool {
	base := path.Base(name)
	if strings.Contains(base, ".test.") {
		return false
	}

	ext := path.Ext(name)
	for _, e := range c.Extensions {
		if ext == e {
			return true
		}
	}

	return false
}
