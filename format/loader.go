package format

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/c360studio/spdx/document"
)

// Loader reads and writes SPDX documents on the filesystem, picking
// the interchange format from the file extension.
type Loader struct {
	logger *slog.Logger
}

// NewLoader creates a new document loader. A nil logger falls back to
// slog.Default.
func NewLoader(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{logger: logger}
}

// Load reads the document at path. The format is chosen by the file
// extension: .spdx is tag-value, .json is JSON and .yaml or .yml is
// YAML.
func (l *Loader) Load(path string) (*document.Document, error) {
	format, ok := FromExtension(filepath.Ext(path))
	if !ok {
		return nil, &UnknownExtensionError{Path: path}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}
	l.logger.Debug("Read document file",
		slog.String("path", path),
		slog.String("format", string(format)),
		slog.Int("bytes", len(data)))

	doc, err := Unmarshal(data, format)
	if err != nil {
		return nil, err
	}
	l.logger.Debug("Decoded document",
		slog.String("name", doc.Name),
		slog.Int("packages", len(doc.Packages)),
		slog.Int("files", len(doc.Files)))
	return doc, nil
}

// Save writes the document to path in the format chosen by the file
// extension. Only formats that support encoding can be written.
func (l *Loader) Save(path string, doc *document.Document) error {
	format, ok := FromExtension(filepath.Ext(path))
	if !ok {
		return &UnknownExtensionError{Path: path}
	}

	data, err := Marshal(doc, format)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write document: %w", err)
	}
	l.logger.Debug("Wrote document file",
		slog.String("path", path),
		slog.String("format", string(format)),
		slog.Int("bytes", len(data)))
	return nil
}
