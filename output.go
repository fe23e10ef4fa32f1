// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package keygen

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// DefaultOutputDir is where the CLI writes its artifacts, relative to the
// working directory.
const DefaultOutputDir = "output"

// Artifact file names.
const (
	PrintableFile = "seed_phrase_printable.txt"
	SimpleFile    = "seed_words_simple.txt"
	ImportFile    = "seed_words_for_coldcard.txt"
)

// Artifact is a rendered document and the file name it is written to.
type Artifact struct {
	Name    string
	Content string
}

// RenderArtifacts renders the three backup documents of a mainnet wallet in
// write order.
func RenderArtifacts(words []string, fingerprint, label string, ts time.Time) []Artifact {
	return renderArtifacts(words, fingerprint, label, NetworkLabel, ts)
}

func renderArtifacts(words []string, fingerprint, label, network string, ts time.Time) []Artifact {
	return []Artifact{
		{Name: PrintableFile, Content: renderPrintableReport(words, fingerprint, label, network, ts)},
		{Name: SimpleFile, Content: RenderSimpleList(words)},
		{Name: ImportFile, Content: RenderImportList(words)},
	}
}

// WriteArtifacts creates dir (and any parents) and writes each artifact into
// it, replacing existing files of the same name. Files are readable by the
// owner only. It returns the written paths in order and stops at the first
// failure, which may leave earlier files in place.
func WriteArtifacts(dir string, artifacts []Artifact) ([]string, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, stageErr(StageFilesystem, fmt.Errorf("could not create output directory %s: %w", dir, err))
	}

	paths := make([]string, 0, len(artifacts))
	for _, a := range artifacts {
		path := filepath.Join(dir, a.Name)
		if err := os.WriteFile(path, []byte(a.Content), 0o600); err != nil {
			return paths, stageErr(StageFilesystem, fmt.Errorf("could not write %s: %w", path, err))
		}
		paths = append(paths, path)
	}
	return paths, nil
}
