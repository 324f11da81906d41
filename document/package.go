package document

import (
	"github.com/c360studio/spdx/license"
)

// ExternalRefCategory groups external package references by the kind
// of registry or database they point into.
type ExternalRefCategory string

const (
	ExternalRefSecurity       ExternalRefCategory = "SECURITY"
	ExternalRefPackageManager ExternalRefCategory = "PACKAGE-MANAGER"
	ExternalRefPersistentID   ExternalRefCategory = "PERSISTENT-ID"
	ExternalRefOther          ExternalRefCategory = "OTHER"
)

// ParseExternalRefCategory reports the ExternalRefCategory matching s.
// Underscore spellings of the hyphenated categories are accepted and
// normalized.
func ParseExternalRefCategory(s string) (ExternalRefCategory, bool) {
	switch s {
	case "SECURITY":
		return ExternalRefSecurity, true
	case "PACKAGE-MANAGER", "PACKAGE_MANAGER":
		return ExternalRefPackageManager, true
	case "PERSISTENT-ID", "PERSISTENT_ID":
		return ExternalRefPersistentID, true
	case "OTHER":
		return ExternalRefOther, true
	}
	return "", false
}

// ExternalRef points from a package to an entry in an external
// registry, such as a CPE dictionary or a package manager.
type ExternalRef struct {
	// Category groups the reference, e.g. SECURITY or PACKAGE-MANAGER.
	Category ExternalRefCategory `json:"referenceCategory" yaml:"referenceCategory"`

	// Type names the registry format, e.g. "cpe23Type" or "purl".
	Type string `json:"referenceType" yaml:"referenceType"`

	// Locator is the unique identifier within the registry.
	Locator string `json:"referenceLocator" yaml:"referenceLocator"`

	// Comment is an optional free-text note about the reference.
	Comment string `json:"comment,omitempty" yaml:"comment,omitempty"`
}

// PackagePurpose states the primary role a package plays, e.g. LIBRARY
// or OPERATING-SYSTEM.
type PackagePurpose string

const (
	PurposeApplication     PackagePurpose = "APPLICATION"
	PurposeFramework       PackagePurpose = "FRAMEWORK"
	PurposeLibrary         PackagePurpose = "LIBRARY"
	PurposeContainer       PackagePurpose = "CONTAINER"
	PurposeOperatingSystem PackagePurpose = "OPERATING-SYSTEM"
	PurposeDevice          PackagePurpose = "DEVICE"
	PurposeFirmware        PackagePurpose = "FIRMWARE"
	PurposeSource          PackagePurpose = "SOURCE"
	PurposeArchive         PackagePurpose = "ARCHIVE"
	PurposeFile            PackagePurpose = "FILE"
	PurposeInstall         PackagePurpose = "INSTALL"
	PurposeOther           PackagePurpose = "OTHER"
)

var packagePurposes = map[PackagePurpose]struct{}{
	PurposeApplication:     {},
	PurposeFramework:       {},
	PurposeLibrary:         {},
	PurposeContainer:       {},
	PurposeOperatingSystem: {},
	PurposeDevice:          {},
	PurposeFirmware:        {},
	PurposeSource:          {},
	PurposeArchive:         {},
	PurposeFile:            {},
	PurposeInstall:         {},
	PurposeOther:           {},
}

// ParsePackagePurpose reports the PackagePurpose matching s. The match
// is exact; purpose tokens are uppercase on the wire.
func ParsePackagePurpose(s string) (PackagePurpose, bool) {
	p := PackagePurpose(s)
	_, ok := packagePurposes[p]
	return p, ok
}

// VerificationCode is the aggregate hash over a package's files that
// lets a consumer check file-level completeness.
type VerificationCode struct {
	// Value is the hex digest.
	Value string `json:"packageVerificationCodeValue" yaml:"packageVerificationCodeValue"`

	// ExcludedFiles lists files left out of the computation, usually
	// the SPDX document itself.
	ExcludedFiles []string `json:"packageVerificationCodeExcludedFiles,omitempty" yaml:"packageVerificationCodeExcludedFiles,omitempty"`
}

// Package records the origin, licensing and content facts for one
// package within the analyzed material.
type Package struct {
	// Name is the package name, e.g. "glibc".
	Name string `json:"name" yaml:"name"`

	// SPDXIdentifier is the document-unique id for this package,
	// e.g. "SPDXRef-Package".
	SPDXIdentifier string `json:"SPDXID" yaml:"SPDXID"`

	// Version is the package version, if known.
	Version string `json:"versionInfo,omitempty" yaml:"versionInfo,omitempty"`

	// FileName is the actual file name of the package artifact,
	// e.g. "glibc-2.11.1.tar.gz".
	FileName string `json:"packageFileName,omitempty" yaml:"packageFileName,omitempty"`

	// Supplier is the distributor of the package, in
	// "Person: name (email)" or "Organization: name" form.
	Supplier string `json:"supplier,omitempty" yaml:"supplier,omitempty"`

	// Originator is the original creator when it differs from the
	// supplier.
	Originator string `json:"originator,omitempty" yaml:"originator,omitempty"`

	// DownloadLocation is where the package was obtained from, or
	// "NOASSERTION"/"NONE".
	DownloadLocation string `json:"downloadLocation" yaml:"downloadLocation"`

	// FilesAnalyzed states whether file-level facts were produced for
	// this package. Absent means true.
	FilesAnalyzed *bool `json:"filesAnalyzed,omitempty" yaml:"filesAnalyzed,omitempty"`

	// VerificationCode is required when FilesAnalyzed is true.
	VerificationCode *VerificationCode `json:"packageVerificationCode,omitempty" yaml:"packageVerificationCode,omitempty"`

	// Checksums identify the package artifact.
	Checksums []Checksum `json:"checksums,omitempty" yaml:"checksums,omitempty"`

	// Homepage is the package's website.
	Homepage string `json:"homepage,omitempty" yaml:"homepage,omitempty"`

	// SourceInformation is a free-text note on the package's origin.
	SourceInformation string `json:"sourceInfo,omitempty" yaml:"sourceInfo,omitempty"`

	// ConcludedLicense is the license the document author concluded
	// governs the package, if any.
	ConcludedLicense *license.Expression `json:"licenseConcluded,omitempty" yaml:"licenseConcluded,omitempty"`

	// LicenseInformationFromFiles lists single licenses found across
	// the package's files.
	LicenseInformationFromFiles []string `json:"licenseInfoFromFiles,omitempty" yaml:"licenseInfoFromFiles,omitempty"`

	// DeclaredLicense is the license the package authors declared.
	DeclaredLicense *license.Expression `json:"licenseDeclared,omitempty" yaml:"licenseDeclared,omitempty"`

	// LicenseComments records the reasoning behind ConcludedLicense.
	LicenseComments string `json:"licenseComments,omitempty" yaml:"licenseComments,omitempty"`

	// CopyrightText is the copyright notice for the package, or
	// "NOASSERTION"/"NONE".
	CopyrightText string `json:"copyrightText,omitempty" yaml:"copyrightText,omitempty"`

	// Summary is a short description of the package.
	Summary string `json:"summary,omitempty" yaml:"summary,omitempty"`

	// Description is the full description of the package.
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// Comment is an optional free-text note about the package.
	Comment string `json:"comment,omitempty" yaml:"comment,omitempty"`

	// ExternalRefs point into registries such as CPE or purl.
	ExternalRefs []ExternalRef `json:"externalRefs,omitempty" yaml:"externalRefs,omitempty"`

	// AttributionTexts holds acknowledgement text that must accompany
	// redistribution of the package.
	AttributionTexts []string `json:"attributionTexts,omitempty" yaml:"attributionTexts,omitempty"`

	// Files lists the SPDX identifiers of the files contained in the
	// package.
	Files []string `json:"hasFiles,omitempty" yaml:"hasFiles,omitempty"`

	// Annotations carries annotations attached directly to the
	// package rather than to the document.
	Annotations []Annotation `json:"annotations,omitempty" yaml:"annotations,omitempty"`

	// BuiltDate is when the package was built, in RFC 3339 form.
	BuiltDate string `json:"builtDate,omitempty" yaml:"builtDate,omitempty"`

	// ReleaseDate is when the package was released, in RFC 3339 form.
	ReleaseDate string `json:"releaseDate,omitempty" yaml:"releaseDate,omitempty"`

	// ValidUntilDate is when the package metadata expires, in RFC
	// 3339 form.
	ValidUntilDate string `json:"validUntilDate,omitempty" yaml:"validUntilDate,omitempty"`

	// PrimaryPurpose states the package's primary role, e.g. LIBRARY.
	PrimaryPurpose PackagePurpose `json:"primaryPackagePurpose,omitempty" yaml:"primaryPackagePurpose,omitempty"`
}

// Checksum reports the package's checksum for the given algorithm, if
// one was recorded.
func (p *Package) Checksum(algorithm ChecksumAlgorithm) (string, bool) {
	for _, c := range p.Checksums {
		if c.Algorithm == algorithm {
			return c.Value, true
		}
	}
	return "", false
}

// FindFiles resolves the package's hasFiles identifiers against the
// given files, in hasFiles order. Identifiers with no match are
// skipped.
func (p *Package) FindFiles(files []File) []*File {
	var found []*File
	for _, id := range p.Files {
		for i := range files {
			if files[i].SPDXIdentifier == id {
				found = append(found, &files[i])
				break
			}
		}
	}
	return found
}
