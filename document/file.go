package document

import (
	"strings"

	"github.com/c360studio/spdx/license"
)

// FileType classifies the content of a file, e.g. SOURCE or BINARY.
// A file may carry several types at once.
type FileType string

const (
	FileTypeSource        FileType = "SOURCE"
	FileTypeBinary        FileType = "BINARY"
	FileTypeArchive       FileType = "ARCHIVE"
	FileTypeApplication   FileType = "APPLICATION"
	FileTypeAudio         FileType = "AUDIO"
	FileTypeImage         FileType = "IMAGE"
	FileTypeText          FileType = "TEXT"
	FileTypeVideo         FileType = "VIDEO"
	FileTypeDocumentation FileType = "DOCUMENTATION"
	FileTypeSPDX          FileType = "SPDX"
	FileTypeOther         FileType = "OTHER"
)

var fileTypes = map[FileType]struct{}{
	FileTypeSource:        {},
	FileTypeBinary:        {},
	FileTypeArchive:       {},
	FileTypeApplication:   {},
	FileTypeAudio:         {},
	FileTypeImage:         {},
	FileTypeText:          {},
	FileTypeVideo:         {},
	FileTypeDocumentation: {},
	FileTypeSPDX:          {},
	FileTypeOther:         {},
}

// ParseFileType reports the FileType matching s. The match is exact;
// file type tokens are uppercase on the wire.
func ParseFileType(s string) (FileType, bool) {
	ft := FileType(s)
	_, ok := fileTypes[ft]
	return ft, ok
}

// File records the licensing and provenance facts for a single file
// within the analyzed material.
type File struct {
	// Name is the file path relative to the document, e.g. "./src/main.c".
	Name string `json:"fileName" yaml:"fileName"`

	// SPDXIdentifier is the document-unique id for this file,
	// e.g. "SPDXRef-DoapSource".
	SPDXIdentifier string `json:"SPDXID" yaml:"SPDXID"`

	// Types classifies the file content. Optional, possibly several.
	Types []FileType `json:"fileTypes,omitempty" yaml:"fileTypes,omitempty"`

	// Checksums identify the file contents. SHA1 is mandatory in
	// documents that carry files.
	Checksums []Checksum `json:"checksums" yaml:"checksums"`

	// ConcludedLicense is the license the document author concluded
	// governs the file, if any.
	ConcludedLicense *license.Expression `json:"licenseConcluded,omitempty" yaml:"licenseConcluded,omitempty"`

	// LicenseInformation lists the licenses actually found in the
	// file. Each entry is a single license, never a compound
	// expression.
	LicenseInformation []license.SimpleExpression `json:"licenseInfoInFiles,omitempty" yaml:"licenseInfoInFiles,omitempty"`

	// LicenseComments records the reasoning behind ConcludedLicense.
	LicenseComments string `json:"licenseComments,omitempty" yaml:"licenseComments,omitempty"`

	// CopyrightText is the copyright notice found in the file, or
	// "NOASSERTION"/"NONE".
	CopyrightText string `json:"copyrightText,omitempty" yaml:"copyrightText,omitempty"`

	// Comment is an optional free-text note about the file.
	Comment string `json:"comment,omitempty" yaml:"comment,omitempty"`

	// Notice is the legal notice text found in the file.
	Notice string `json:"noticeText,omitempty" yaml:"noticeText,omitempty"`

	// Contributors lists people or organizations that contributed to
	// the file.
	Contributors []string `json:"fileContributors,omitempty" yaml:"fileContributors,omitempty"`

	// AttributionTexts holds acknowledgement text that must accompany
	// redistribution of the file.
	AttributionTexts []string `json:"fileAttributionText,omitempty" yaml:"fileAttributionText,omitempty"`
}

// Checksum reports the file's checksum for the given algorithm, if
// one was recorded.
func (f *File) Checksum(algorithm ChecksumAlgorithm) (string, bool) {
	for _, c := range f.Checksums {
		if c.Algorithm == algorithm {
			return c.Value, true
		}
	}
	return "", false
}

// ChecksumEqual reports whether the file's recorded checksum for the
// algorithm matches value. Hex digests compare case-insensitively; a
// missing checksum never matches.
func (f *File) ChecksumEqual(algorithm ChecksumAlgorithm, value string) bool {
	recorded, ok := f.Checksum(algorithm)
	return ok && strings.EqualFold(recorded, value)
}
