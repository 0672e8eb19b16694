// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package corpus

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.yaml.in/yaml/v3"
)

const (
	corpusFile   = "courses.jsonl"
	manifestFile = "manifest.yaml"
)

// corpusLine is the one-line-per-course record shape the retrieval
// service's indexer consumes.
type corpusLine struct {
	Text string `json:"text"`
}

// Manifest records what an export produced.
type Manifest struct {
	Roster      string    `yaml:"roster"`
	Courses     int       `yaml:"courses"`
	Output      string    `yaml:"output"`
	GeneratedAt time.Time `yaml:"generated_at"`
}

// Export renders every stored course into dir/courses.jsonl and writes a
// manifest.yaml describing the run.
func Export(ctx context.Context, store *Store, dir, roster string) (Manifest, error) {
	rows, err := store.All(ctx)
	if err != nil {
		return Manifest{}, err
	}

	outPath := filepath.Join(dir, corpusFile)
	f, err := os.Create(outPath)
	if err != nil {
		return Manifest{}, fmt.Errorf("creating corpus file: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	enc := json.NewEncoder(w)
	for _, row := range rows {
		if err := enc.Encode(corpusLine{Text: RenderLine(row)}); err != nil {
			return Manifest{}, fmt.Errorf("encoding corpus line for %s %s: %w", row.Subject, row.CatalogNbr, err)
		}
	}
	if err := w.Flush(); err != nil {
		return Manifest{}, fmt.Errorf("writing corpus file: %w", err)
	}

	manifest := Manifest{
		Roster:      roster,
		Courses:     len(rows),
		Output:      corpusFile,
		GeneratedAt: time.Now().UTC(),
	}
	data, err := yaml.Marshal(manifest)
	if err != nil {
		return Manifest{}, fmt.Errorf("marshaling manifest: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, manifestFile), data, 0o644); err != nil {
		return Manifest{}, fmt.Errorf("writing manifest: %w", err)
	}
	return manifest, nil
}
