// Package docsource is the document-to-text boundary: it turns source files
// into the plain text the analysis core consumes. Plain-text and Markdown
// files are read as-is; HTML certificate pages are reduced to readable text.
// PDF/OCR ingestion is handled upstream and is out of scope here — the core
// only ever sees text.
package docsource

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"
)

// Document is one source document reduced to plain text.
type Document struct {
	Name string
	Path string
	Text string
}

// ErrUnsupported marks file types the boundary does not ingest.
var ErrUnsupported = fmt.Errorf("unsupported document type")

// Load reads one file into a Document. Supported extensions: .txt, .md,
// .html, .htm. Anything else returns ErrUnsupported.
func Load(path string) (Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("read document: %w", err)
	}
	name := filepath.Base(path)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt", ".md":
		return Document{Name: name, Path: path, Text: string(raw)}, nil
	case ".html", ".htm":
		return Document{Name: name, Path: path, Text: FromHTML(raw)}, nil
	default:
		return Document{}, fmt.Errorf("%w: %s", ErrUnsupported, name)
	}
}

// LoadDir loads every supported document under dir (non-recursive),
// skipping unsupported files with a warning. Results are sorted by name so
// batch runs are deterministic.
func LoadDir(dir string) ([]Document, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read documents dir: %w", err)
	}
	var docs []Document
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		doc, err := Load(filepath.Join(dir, entry.Name()))
		if err != nil {
			log.Warn().Str("document", entry.Name()).Err(err).Msg("skipping document")
			continue
		}
		docs = append(docs, doc)
	}
	sort.Slice(docs, func(i, j int) bool { return docs[i].Name < docs[j].Name })
	return docs, nil
}
