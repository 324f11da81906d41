// Package format converts SPDX documents between their in-memory
// model and the supported interchange formats.
//
// # Formats
//
// Three formats are recognized. Tag-value (.spdx) is the plain text
// format and can only be decoded. JSON (.json) and YAML (.yaml, .yml)
// follow the SPDX schema field names and can be decoded and encoded.
// FormatRegistry describes each format and FromExtension maps file
// extensions to formats.
//
// # Reading and writing
//
// Unmarshal and Marshal work on byte slices, Decode and Encode on
// streams. Loader reads and writes files, choosing the format from
// the file extension:
//
//	loader := format.NewLoader(nil)
//	doc, err := loader.Load("sbom.spdx.json")
package format
