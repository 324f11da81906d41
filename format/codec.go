package format

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/c360studio/spdx/document"
	"github.com/c360studio/spdx/tagvalue"
)

// Unmarshal decodes a document from its serialized form. Structured
// formats are validated after decoding, so a document missing
// mandatory fields is rejected whichever format it arrived in.
func Unmarshal(data []byte, format Format) (*document.Document, error) {
	var doc document.Document
	switch format {
	case FormatTagValue:
		return tagvalue.Parse(bytes.NewReader(data))
	case FormatJSON:
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("decode json document: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("decode yaml document: %w", err)
		}
	default:
		return nil, &UnsupportedFormatError{Format: format, Operation: "decode"}
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Marshal serializes a document. The tag-value format is read only
// and returns an UnsupportedFormatError.
func Marshal(doc *document.Document, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encode json document: %w", err)
		}
		return data, nil
	case FormatYAML:
		data, err := yaml.Marshal(doc)
		if err != nil {
			return nil, fmt.Errorf("encode yaml document: %w", err)
		}
		return data, nil
	default:
		return nil, &UnsupportedFormatError{Format: format, Operation: "encode"}
	}
}

// Decode reads a serialized document from r.
func Decode(r io.Reader, format Format) (*document.Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}
	return Unmarshal(data, format)
}

// Encode writes the serialized document to w.
func Encode(w io.Writer, doc *document.Document, format Format) error {
	data, err := Marshal(doc, format)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write document: %w", err)
	}
	return nil
}
