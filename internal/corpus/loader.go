// Package corpus loads the raw document corpus consumed by the offline
// vector-store build. Documents are plain-text or PDF files in a designated
// directory, one document per file.
package corpus

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Document is one corpus file's extracted text.
type Document struct {
	SourceID string
	Text     string
}

// LoadDir reads every .txt and .pdf file in dir. Files that cannot be read
// or parsed are skipped with a log line rather than failing the whole build;
// an empty result is a degraded-data condition, not an error. A missing
// directory yields an empty corpus.
func LoadDir(dir string) ([]Document, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("corpus: directory %s not found, corpus is empty", dir)
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read corpus directory %s: %w", dir, err)
	}

	var docs []Document
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		path := filepath.Join(dir, name)

		var text string
		switch strings.ToLower(filepath.Ext(name)) {
		case ".txt":
			text, err = loadTextFile(path)
		case ".pdf":
			text, err = loadPDFFile(path)
		default:
			continue
		}
		if err != nil {
			log.Printf("corpus: skipping %s: %v", name, err)
			continue
		}
		if strings.TrimSpace(text) == "" {
			continue
		}

		docs = append(docs, Document{SourceID: name, Text: text})
		log.Printf("corpus: loaded %s (%d chars)", name, len(text))
	}

	return docs, nil
}

func loadTextFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func loadPDFFile(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	reader, err := r.GetPlainText()
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(reader); err != nil {
		return "", err
	}
	return buf.String(), nil
}
