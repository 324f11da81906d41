package document

import (
	"github.com/c360studio/spdx/license"
)

// Pointer marks one end of a snippet range, either as a byte offset
// or as a line number within the referenced file. Exactly one of
// Offset and LineNumber is set.
type Pointer struct {
	// Reference is the SPDX identifier of the file the pointer
	// applies to.
	Reference string `json:"reference,omitempty" yaml:"reference,omitempty"`

	// Offset is the zero-based byte offset, for byte ranges.
	Offset *int `json:"offset,omitempty" yaml:"offset,omitempty"`

	// LineNumber is the one-based line number, for line ranges.
	LineNumber *int `json:"lineNumber,omitempty" yaml:"lineNumber,omitempty"`
}

// BytePointer returns a Pointer addressing a byte offset in the file
// identified by reference.
func BytePointer(reference string, offset int) Pointer {
	return Pointer{Reference: reference, Offset: &offset}
}

// LinePointer returns a Pointer addressing a line number in the file
// identified by reference.
func LinePointer(reference string, line int) Pointer {
	return Pointer{Reference: reference, LineNumber: &line}
}

// Range delimits a contiguous region of a file, in bytes or in lines
// depending on its pointers.
type Range struct {
	Start Pointer `json:"startPointer" yaml:"startPointer"`
	End   Pointer `json:"endPointer" yaml:"endPointer"`
}

// Snippet records licensing facts for a region of a file that differs
// from the licensing of the file as a whole.
type Snippet struct {
	// SPDXIdentifier is the document-unique id for this snippet,
	// e.g. "SPDXRef-Snippet".
	SPDXIdentifier string `json:"SPDXID" yaml:"SPDXID"`

	// FileSPDXIdentifier names the file the snippet was taken from.
	FileSPDXIdentifier string `json:"snippetFromFile" yaml:"snippetFromFile"`

	// Ranges locate the snippet within the file. At least one byte
	// range is expected; a line range may accompany it.
	Ranges []Range `json:"ranges" yaml:"ranges"`

	// ConcludedLicense is the license the document author concluded
	// governs the snippet, if any.
	ConcludedLicense *license.Expression `json:"licenseConcluded,omitempty" yaml:"licenseConcluded,omitempty"`

	// LicenseInformation lists single licenses found in the snippet.
	LicenseInformation []string `json:"licenseInfoInSnippets,omitempty" yaml:"licenseInfoInSnippets,omitempty"`

	// LicenseComments records the reasoning behind ConcludedLicense.
	LicenseComments string `json:"licenseComments,omitempty" yaml:"licenseComments,omitempty"`

	// CopyrightText is the copyright notice that applies to the
	// snippet, or "NOASSERTION"/"NONE".
	CopyrightText string `json:"copyrightText,omitempty" yaml:"copyrightText,omitempty"`

	// Comment is an optional free-text note about the snippet.
	Comment string `json:"comment,omitempty" yaml:"comment,omitempty"`

	// Name is a short human-readable name, e.g. "from linux kernel".
	Name string `json:"name,omitempty" yaml:"name,omitempty"`

	// AttributionText holds acknowledgement text that must accompany
	// redistribution of the snippet.
	AttributionText string `json:"attributionText,omitempty" yaml:"attributionText,omitempty"`
}
