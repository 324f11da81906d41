package document

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/c360studio/spdx/license"
)

// MissingFieldError reports a mandatory document field that has no
// value. It satisfies the errors.As contract so callers can recover
// the field name.
type MissingFieldError struct {
	// Field is the name of the missing field, e.g. "documentNamespace".
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("spdx document: missing mandatory field %q", e.Field)
}

// IsMissingField reports whether err is a MissingFieldError.
func IsMissingField(err error) bool {
	var mfe *MissingFieldError
	return errors.As(err, &mfe)
}

// CreationInfo records who produced the document and when.
type CreationInfo struct {
	// LicenseListVersion is the SPDX license list release the
	// creators used, e.g. "3.17".
	LicenseListVersion string `json:"licenseListVersion,omitempty" yaml:"licenseListVersion,omitempty"`

	// Creators lists who made the document, each in "Person: name",
	// "Organization: name" or "Tool: name" form. At least one entry
	// is mandatory.
	Creators []string `json:"creators" yaml:"creators"`

	// Created is when the document was produced.
	Created time.Time `json:"created" yaml:"created"`

	// Comment is an optional free-text note from the creators.
	Comment string `json:"comment,omitempty" yaml:"comment,omitempty"`
}

// ExternalDocumentRef lets elements in this document reference
// elements in another SPDX document.
type ExternalDocumentRef struct {
	// Identifier is the DocumentRef- id used in expressions and
	// relationships, e.g. "DocumentRef-spdx-tool-1.2".
	Identifier string `json:"externalDocumentId" yaml:"externalDocumentId"`

	// URI is the namespace of the referenced document.
	URI string `json:"spdxDocument" yaml:"spdxDocument"`

	// Checksum pins the exact referenced document.
	Checksum Checksum `json:"checksum" yaml:"checksum"`
}

// Document is a complete SPDX document: its creation facts plus the
// packages, files, snippets, licenses, relationships and annotations
// it describes.
type Document struct {
	// SPDXVersion is the SPDX release the document conforms to,
	// e.g. "SPDX-2.2".
	SPDXVersion string `json:"spdxVersion" yaml:"spdxVersion"`

	// DataLicense is the license of the document itself, always
	// "CC0-1.0".
	DataLicense string `json:"dataLicense" yaml:"dataLicense"`

	// SPDXIdentifier is always "SPDXRef-DOCUMENT".
	SPDXIdentifier string `json:"SPDXID" yaml:"SPDXID"`

	// Name is the document name, e.g. "SPDX-Tools-v2.0".
	Name string `json:"name" yaml:"name"`

	// Namespace is the unique URI for this document.
	Namespace string `json:"documentNamespace" yaml:"documentNamespace"`

	// ExternalDocumentRefs lists other SPDX documents this one
	// references.
	ExternalDocumentRefs []ExternalDocumentRef `json:"externalDocumentRefs,omitempty" yaml:"externalDocumentRefs,omitempty"`

	// CreationInfo records who produced the document and when.
	CreationInfo CreationInfo `json:"creationInfo" yaml:"creationInfo"`

	// Comment is an optional free-text note about the document.
	Comment string `json:"comment,omitempty" yaml:"comment,omitempty"`

	// Describes lists the SPDX identifiers of the elements the
	// document primarily describes.
	Describes []string `json:"documentDescribes,omitempty" yaml:"documentDescribes,omitempty"`

	// Packages holds the packages described by the document.
	Packages []Package `json:"packages,omitempty" yaml:"packages,omitempty"`

	// Files holds the files described by the document.
	Files []File `json:"files,omitempty" yaml:"files,omitempty"`

	// Snippets holds the snippets described by the document.
	Snippets []Snippet `json:"snippets,omitempty" yaml:"snippets,omitempty"`

	// OtherLicensing holds licensing information found in the
	// analyzed material that has no SPDX license list id.
	OtherLicensing []OtherLicensingInfo `json:"hasExtractedLicensingInfos,omitempty" yaml:"hasExtractedLicensingInfos,omitempty"`

	// Relationships relate the document's elements to each other.
	Relationships []Relationship `json:"relationships,omitempty" yaml:"relationships,omitempty"`

	// Annotations carries reviews and other notes attached to the
	// document.
	Annotations []Annotation `json:"annotations,omitempty" yaml:"annotations,omitempty"`
}

// New returns a Document with the mandatory boilerplate filled in: the
// SPDX-2.2 version tag, the CC0-1.0 data license, the SPDXRef-DOCUMENT
// identifier and a fresh namespace derived from name and a random UUID.
func New(name string) *Document {
	return &Document{
		SPDXVersion:    "SPDX-2.2",
		DataLicense:    "CC0-1.0",
		SPDXIdentifier: "SPDXRef-DOCUMENT",
		Name:           name,
		Namespace:      fmt.Sprintf("http://spdx.org/spdxdocs/%s-%s", name, uuid.NewString()),
	}
}

// Validate checks that the document carries every creation-information
// field SPDX makes mandatory. It returns a MissingFieldError for the
// first gap found, or nil when the document is complete.
func (d *Document) Validate() error {
	switch {
	case d.SPDXVersion == "":
		return &MissingFieldError{Field: "spdxVersion"}
	case d.DataLicense == "":
		return &MissingFieldError{Field: "dataLicense"}
	case d.SPDXIdentifier == "":
		return &MissingFieldError{Field: "SPDXID"}
	case d.Name == "":
		return &MissingFieldError{Field: "name"}
	case d.Namespace == "":
		return &MissingFieldError{Field: "documentNamespace"}
	case len(d.CreationInfo.Creators) == 0:
		return &MissingFieldError{Field: "creators"}
	case d.CreationInfo.Created.IsZero():
		return &MissingFieldError{Field: "created"}
	}
	return nil
}

// Package returns the package with the given SPDX identifier, or nil.
func (d *Document) Package(spdxID string) *Package {
	for i := range d.Packages {
		if d.Packages[i].SPDXIdentifier == spdxID {
			return &d.Packages[i]
		}
	}
	return nil
}

// File returns the file with the given SPDX identifier, or nil.
func (d *Document) File(spdxID string) *File {
	for i := range d.Files {
		if d.Files[i].SPDXIdentifier == spdxID {
			return &d.Files[i]
		}
	}
	return nil
}

// FileRelationship pairs a file with the relationship that reached it.
type FileRelationship struct {
	File         *File
	Relationship *Relationship
}

// FilesForPackage returns the files related to the package with the
// given SPDX identifier, in relationship order, each paired with the
// relationship that names it. Any relationship whose left-hand element
// is the package counts, whatever its type.
func (d *Document) FilesForPackage(packageID string) []FileRelationship {
	var files []FileRelationship
	for i := range d.Relationships {
		rel := &d.Relationships[i]
		if rel.Element != packageID {
			continue
		}
		if f := d.File(rel.Related); f != nil {
			files = append(files, FileRelationship{File: f, Relationship: rel})
		}
	}
	return files
}

// LicenseIDs returns every license id concluded for the document's
// files, deduplicated in first-seen order. The NOASSERTION and NONE
// markers are left out.
func (d *Document) LicenseIDs() []string {
	var ids []string
	seen := make(map[string]struct{})
	for i := range d.Files {
		concluded := d.Files[i].ConcludedLicense
		if concluded == nil {
			continue
		}
		for _, id := range concluded.Licenses() {
			if id == license.NoAssertion || id == license.None {
				continue
			}
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}
	return ids
}

// RelationshipsFor returns the relationships whose left-hand element
// is the given SPDX identifier.
func (d *Document) RelationshipsFor(spdxID string) []*Relationship {
	var rels []*Relationship
	for i := range d.Relationships {
		if d.Relationships[i].Element == spdxID {
			rels = append(rels, &d.Relationships[i])
		}
	}
	return rels
}

// RelationshipsForRelated returns the relationships whose right-hand
// element is the given SPDX identifier.
func (d *Document) RelationshipsForRelated(spdxID string) []*Relationship {
	var rels []*Relationship
	for i := range d.Relationships {
		if d.Relationships[i].Related == spdxID {
			rels = append(rels, &d.Relationships[i])
		}
	}
	return rels
}

// UniqueFileChecksums returns the distinct checksum values recorded
// for the document's files under the given algorithm, sorted.
func (d *Document) UniqueFileChecksums(algorithm ChecksumAlgorithm) []string {
	seen := make(map[string]struct{})
	for i := range d.Files {
		if v, ok := d.Files[i].Checksum(algorithm); ok {
			seen[v] = struct{}{}
		}
	}
	values := make([]string, 0, len(seen))
	for v := range seen {
		values = append(values, v)
	}
	slices.Sort(values)
	return values
}
