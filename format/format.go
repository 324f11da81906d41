package format

import (
	"strings"
)

// Format specifies a document interchange format.
type Format string

const (
	// FormatTagValue is the line-oriented "Tag: value" plain text
	// format (.spdx). It can be decoded but not encoded.
	FormatTagValue Format = "tag-value"

	// FormatJSON is the JSON rendering of the SPDX schema (.json).
	FormatJSON Format = "json"

	// FormatYAML is the YAML rendering of the SPDX schema
	// (.yaml, .yml).
	FormatYAML Format = "yaml"
)

// FormatInfo provides metadata about a document format.
type FormatInfo struct {
	// Name is the format identifier.
	Name Format

	// MIMEType is the standard MIME type.
	MIMEType string

	// Extensions lists the file extensions (with dot) the format is
	// recognized by.
	Extensions []string

	// Description describes the format.
	Description string

	// Encodes reports whether documents can be written in this
	// format, not only read.
	Encodes bool
}

// FormatRegistry contains metadata for all supported formats.
var FormatRegistry = map[Format]FormatInfo{
	FormatTagValue: {
		Name:        FormatTagValue,
		MIMEType:    "text/plain",
		Extensions:  []string{".spdx"},
		Description: "Tag-value - the canonical SPDX plain text format",
	},
	FormatJSON: {
		Name:        FormatJSON,
		MIMEType:    "application/json",
		Extensions:  []string{".json"},
		Description: "JSON rendering of the SPDX schema",
		Encodes:     true,
	},
	FormatYAML: {
		Name:        FormatYAML,
		MIMEType:    "application/yaml",
		Extensions:  []string{".yaml", ".yml"},
		Description: "YAML rendering of the SPDX schema",
		Encodes:     true,
	},
}

// GetFormatInfo returns metadata for a format.
func GetFormatInfo(format Format) (FormatInfo, bool) {
	info, ok := FormatRegistry[format]
	return info, ok
}

// FromExtension returns the format a file extension maps to. The
// extension may be given with or without the leading dot and in any
// case.
func FromExtension(ext string) (Format, bool) {
	ext = strings.ToLower(ext)
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	for _, format := range []Format{FormatTagValue, FormatJSON, FormatYAML} {
		for _, known := range FormatRegistry[format].Extensions {
			if ext == known {
				return format, true
			}
		}
	}
	return "", false
}
