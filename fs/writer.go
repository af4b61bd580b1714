package fs

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/flexcms/flexcms"
)

// Ensure Writer implements flexcms.DocumentWriter at compile time.
var _ flexcms.DocumentWriter = (*Writer)(nil)

// Writer writes extracted documents as JSON files to a directory, one
// file per slug. Output is deterministic: the same document always
// produces the same bytes.
type Writer struct {
	baseDir string
}

// NewWriter creates a new Writer that writes to the given base directory.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// WriteDocument writes a document to disk as <slug>.json.
func (w *Writer) WriteDocument(ctx context.Context, doc *flexcms.FlexibleDocument) error {
	if err := doc.Validate(); err != nil {
		return err
	}

	data, err := MarshalDocument(doc)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(w.baseDir, 0755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(w.baseDir, doc.Slug+".json"), data, 0644)
}

// MarshalDocument renders a document to its canonical output bytes:
// two-space indent and a trailing newline.
func MarshalDocument(doc *flexcms.FlexibleDocument) ([]byte, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, flexcms.Errorf(flexcms.EINTERNAL, "encoding document: %v", err)
	}
	return append(data, '\n'), nil
}
