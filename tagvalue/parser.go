package tagvalue

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/c360studio/spdx/document"
	"github.com/c360studio/spdx/license"
)

// section names the part of the document tags currently apply to.
type section string

const (
	sectionDocument     section = "document"
	sectionPackage      section = "package"
	sectionFile         section = "file"
	sectionSnippet      section = "snippet"
	sectionOtherLicense section = "other licensing information"
)

// tagSections maps each section-scoped tag to the section it may
// appear in. Opener tags, SPDXID and the relationship and annotation
// tags are absent: openers switch sections, SPDXID routes by section,
// and the rest are valid anywhere.
var tagSections = map[string]section{
	"SPDXVersion":         sectionDocument,
	"DataLicense":         sectionDocument,
	"DocumentName":        sectionDocument,
	"DocumentNamespace":   sectionDocument,
	"ExternalDocumentRef": sectionDocument,
	"LicenseListVersion":  sectionDocument,
	"Creator":             sectionDocument,
	"Created":             sectionDocument,
	"CreatorComment":      sectionDocument,
	"DocumentComment":     sectionDocument,

	"PackageVersion":              sectionPackage,
	"PackageFileName":             sectionPackage,
	"PackageSupplier":             sectionPackage,
	"PackageOriginator":           sectionPackage,
	"PackageDownloadLocation":     sectionPackage,
	"FilesAnalyzed":               sectionPackage,
	"PackageVerificationCode":     sectionPackage,
	"PackageChecksum":             sectionPackage,
	"PackageHomePage":             sectionPackage,
	"PackageSourceInfo":           sectionPackage,
	"PackageLicenseConcluded":     sectionPackage,
	"PackageLicenseInfoFromFiles": sectionPackage,
	"PackageLicenseDeclared":      sectionPackage,
	"PackageLicenseComments":      sectionPackage,
	"PackageCopyrightText":        sectionPackage,
	"PackageSummary":              sectionPackage,
	"PackageDescription":          sectionPackage,
	"PackageComment":              sectionPackage,
	"ExternalRef":                 sectionPackage,
	"ExternalRefComment":          sectionPackage,
	"PackageAttributionText":      sectionPackage,
	"PrimaryPackagePurpose":       sectionPackage,
	"BuiltDate":                   sectionPackage,
	"ReleaseDate":                 sectionPackage,
	"ValidUntilDate":              sectionPackage,

	"FileType":            sectionFile,
	"FileChecksum":        sectionFile,
	"LicenseConcluded":    sectionFile,
	"LicenseInfoInFile":   sectionFile,
	"LicenseComments":     sectionFile,
	"FileCopyrightText":   sectionFile,
	"FileComment":         sectionFile,
	"FileNotice":          sectionFile,
	"FileContributor":     sectionFile,
	"FileAttributionText": sectionFile,

	"SnippetFromFileSPDXID":   sectionSnippet,
	"SnippetByteRange":        sectionSnippet,
	"SnippetLineRange":        sectionSnippet,
	"SnippetLicenseConcluded": sectionSnippet,
	"LicenseInfoInSnippet":    sectionSnippet,
	"SnippetLicenseComments":  sectionSnippet,
	"SnippetCopyrightText":    sectionSnippet,
	"SnippetComment":          sectionSnippet,
	"SnippetName":             sectionSnippet,
	"SnippetAttributionText":  sectionSnippet,

	"ExtractedText":         sectionOtherLicense,
	"LicenseName":           sectionOtherLicense,
	"LicenseCrossReference": sectionOtherLicense,
	"LicenseComment":        sectionOtherLicense,
}

// Parse decodes a complete SPDX document from tag-value text. It fails
// on the first problem found and never returns a partial document.
func Parse(r io.Reader) (*document.Document, error) {
	records, err := scan(r)
	if err != nil {
		return nil, err
	}

	b := &builder{
		doc:              &document.Document{},
		section:          sectionDocument,
		lastRelationship: -1,
		seen:             make(map[string]int),
	}
	for _, rec := range records {
		if err := b.apply(rec); err != nil {
			return nil, err
		}
	}
	return b.finish()
}

// ParseString decodes a complete SPDX document from a tag-value
// string.
func ParseString(input string) (*document.Document, error) {
	return Parse(strings.NewReader(input))
}

// builder assembles a document record by record. Exactly one section
// is open at a time; opener tags close the previous section and start
// the next.
type builder struct {
	doc     *document.Document
	section section

	pkg     *document.Package
	file    *document.File
	snippet *document.Snippet
	other   *document.OtherLicensingInfo

	ann annotationState

	// lastPackageID is the identifier of the most recently closed or
	// open package. Files parsed after it are implicitly contained in
	// it unless the document states the relationship itself.
	lastPackageID string

	// lastRelationship indexes the relationship a RelationshipComment
	// applies to, -1 before the first Relationship tag.
	lastRelationship int

	// seen records the first line of every single-valued document tag
	// for duplicate detection.
	seen map[string]int
}

// annotationState accumulates annotation tags until the four mandatory
// ones have arrived, at which point the annotation is complete.
type annotationState struct {
	annotator    string
	hasAnnotator bool
	date         time.Time
	hasDate      bool
	kind         document.AnnotationType
	hasKind      bool
	reference    string
	comment      string
	hasComment   bool
}

func (a *annotationState) complete() bool {
	return a.hasAnnotator && a.hasDate && a.hasKind && a.hasComment
}

func (b *builder) apply(rec record) error {
	if !rec.known {
		return &ParseError{Line: rec.line, Tag: rec.tag, Kind: ErrUnknownTag}
	}
	if want, scoped := tagSections[rec.tag]; scoped && b.section != want {
		return b.misplaced(rec)
	}

	switch rec.tag {
	// Section openers.
	case "PackageName":
		b.closeSection()
		b.pkg = &document.Package{Name: rec.value}
		b.section = sectionPackage
	case "FileName":
		b.closeSection()
		b.file = &document.File{Name: rec.value}
		b.section = sectionFile
	case "SnippetSPDXID":
		b.closeSection()
		b.snippet = &document.Snippet{SPDXIdentifier: rec.value}
		b.section = sectionSnippet
	case "LicenseID":
		b.closeSection()
		b.other = &document.OtherLicensingInfo{Identifier: rec.value}
		b.section = sectionOtherLicense

	// SPDXID names the document, the open package or the open file,
	// depending on where it appears.
	case "SPDXID":
		switch b.section {
		case sectionDocument:
			if err := b.once(rec); err != nil {
				return err
			}
			b.doc.SPDXIdentifier = rec.value
		case sectionPackage:
			b.pkg.SPDXIdentifier = rec.value
		case sectionFile:
			b.file.SPDXIdentifier = rec.value
		default:
			return b.misplaced(rec)
		}

	// Document creation information.
	case "SPDXVersion":
		if err := b.once(rec); err != nil {
			return err
		}
		b.doc.SPDXVersion = rec.value
	case "DataLicense":
		if err := b.once(rec); err != nil {
			return err
		}
		b.doc.DataLicense = rec.value
	case "DocumentName":
		if err := b.once(rec); err != nil {
			return err
		}
		b.doc.Name = rec.value
	case "DocumentNamespace":
		if err := b.once(rec); err != nil {
			return err
		}
		b.doc.Namespace = rec.value
	case "ExternalDocumentRef":
		ref, err := parseExternalDocumentRef(rec.value)
		if err != nil {
			return b.malformed(rec, err)
		}
		b.doc.ExternalDocumentRefs = append(b.doc.ExternalDocumentRefs, ref)
	case "LicenseListVersion":
		if err := b.once(rec); err != nil {
			return err
		}
		b.doc.CreationInfo.LicenseListVersion = rec.value
	case "Creator":
		b.doc.CreationInfo.Creators = append(b.doc.CreationInfo.Creators, rec.value)
	case "Created":
		if err := b.once(rec); err != nil {
			return err
		}
		created, err := parseDate(rec.value)
		if err != nil {
			return b.malformed(rec, err)
		}
		b.doc.CreationInfo.Created = created
	case "CreatorComment":
		if err := b.once(rec); err != nil {
			return err
		}
		b.doc.CreationInfo.Comment = rec.value
	case "DocumentComment":
		if err := b.once(rec); err != nil {
			return err
		}
		b.doc.Comment = rec.value

	// Package information.
	case "PackageVersion":
		b.pkg.Version = rec.value
	case "PackageFileName":
		b.pkg.FileName = rec.value
	case "PackageSupplier":
		b.pkg.Supplier = rec.value
	case "PackageOriginator":
		b.pkg.Originator = rec.value
	case "PackageDownloadLocation":
		b.pkg.DownloadLocation = rec.value
	case "FilesAnalyzed":
		analyzed, err := parseBool(rec.value)
		if err != nil {
			return b.malformed(rec, err)
		}
		b.pkg.FilesAnalyzed = &analyzed
	case "PackageVerificationCode":
		code, err := parseVerificationCode(rec.value)
		if err != nil {
			return b.malformed(rec, err)
		}
		b.pkg.VerificationCode = &code
	case "PackageChecksum":
		sum, err := parseChecksum(rec.value)
		if err != nil {
			return b.malformed(rec, err)
		}
		b.pkg.Checksums = append(b.pkg.Checksums, sum)
	case "PackageHomePage":
		b.pkg.Homepage = rec.value
	case "PackageSourceInfo":
		b.pkg.SourceInformation = rec.value
	case "PackageLicenseConcluded":
		expr, err := b.expression(rec)
		if err != nil {
			return err
		}
		b.pkg.ConcludedLicense = expr
	case "PackageLicenseInfoFromFiles":
		if _, err := license.ParseSimple(rec.value); err != nil {
			return b.malformed(rec, err)
		}
		b.pkg.LicenseInformationFromFiles = append(b.pkg.LicenseInformationFromFiles, rec.value)
	case "PackageLicenseDeclared":
		expr, err := b.expression(rec)
		if err != nil {
			return err
		}
		b.pkg.DeclaredLicense = expr
	case "PackageLicenseComments":
		b.pkg.LicenseComments = rec.value
	case "PackageCopyrightText":
		b.pkg.CopyrightText = rec.value
	case "PackageSummary":
		b.pkg.Summary = rec.value
	case "PackageDescription":
		b.pkg.Description = rec.value
	case "PackageComment":
		b.pkg.Comment = rec.value
	case "ExternalRef":
		ref, err := parseExternalRef(rec.value)
		if err != nil {
			return b.malformed(rec, err)
		}
		b.pkg.ExternalRefs = append(b.pkg.ExternalRefs, ref)
	case "ExternalRefComment":
		if len(b.pkg.ExternalRefs) == 0 {
			return &ParseError{
				Line: rec.line, Tag: rec.tag, Kind: ErrMisplacedTag,
				Err: fmt.Errorf("no preceding ExternalRef"),
			}
		}
		b.pkg.ExternalRefs[len(b.pkg.ExternalRefs)-1].Comment = rec.value
	case "PackageAttributionText":
		b.pkg.AttributionTexts = append(b.pkg.AttributionTexts, rec.value)
	case "PrimaryPackagePurpose":
		purpose, ok := document.ParsePackagePurpose(rec.value)
		if !ok {
			return b.malformed(rec, fmt.Errorf("unknown package purpose %q", rec.value))
		}
		b.pkg.PrimaryPurpose = purpose
	case "BuiltDate":
		if err := validateDate(rec.value); err != nil {
			return b.malformed(rec, err)
		}
		b.pkg.BuiltDate = rec.value
	case "ReleaseDate":
		if err := validateDate(rec.value); err != nil {
			return b.malformed(rec, err)
		}
		b.pkg.ReleaseDate = rec.value
	case "ValidUntilDate":
		if err := validateDate(rec.value); err != nil {
			return b.malformed(rec, err)
		}
		b.pkg.ValidUntilDate = rec.value

	// File information.
	case "FileType":
		fileType, ok := document.ParseFileType(rec.value)
		if !ok {
			return b.malformed(rec, fmt.Errorf("unknown file type %q", rec.value))
		}
		b.file.Types = append(b.file.Types, fileType)
	case "FileChecksum":
		sum, err := parseChecksum(rec.value)
		if err != nil {
			return b.malformed(rec, err)
		}
		b.file.Checksums = append(b.file.Checksums, sum)
	case "LicenseConcluded":
		expr, err := b.expression(rec)
		if err != nil {
			return err
		}
		b.file.ConcludedLicense = expr
	case "LicenseInfoInFile":
		simple, err := license.ParseSimple(rec.value)
		if err != nil {
			return b.malformed(rec, err)
		}
		b.file.LicenseInformation = append(b.file.LicenseInformation, *simple)
	case "LicenseComments":
		b.file.LicenseComments = rec.value
	case "FileCopyrightText":
		b.file.CopyrightText = rec.value
	case "FileComment":
		b.file.Comment = rec.value
	case "FileNotice":
		b.file.Notice = rec.value
	case "FileContributor":
		b.file.Contributors = append(b.file.Contributors, rec.value)
	case "FileAttributionText":
		b.file.AttributionTexts = append(b.file.AttributionTexts, rec.value)

	// Snippet information.
	case "SnippetFromFileSPDXID":
		b.snippet.FileSPDXIdentifier = rec.value
	case "SnippetByteRange":
		start, end, err := parseRange(rec.value)
		if err != nil {
			return b.malformed(rec, err)
		}
		b.snippet.Ranges = append(b.snippet.Ranges, document.Range{
			Start: document.BytePointer(b.snippet.FileSPDXIdentifier, start),
			End:   document.BytePointer(b.snippet.FileSPDXIdentifier, end),
		})
	case "SnippetLineRange":
		start, end, err := parseRange(rec.value)
		if err != nil {
			return b.malformed(rec, err)
		}
		b.snippet.Ranges = append(b.snippet.Ranges, document.Range{
			Start: document.LinePointer(b.snippet.FileSPDXIdentifier, start),
			End:   document.LinePointer(b.snippet.FileSPDXIdentifier, end),
		})
	case "SnippetLicenseConcluded":
		expr, err := b.expression(rec)
		if err != nil {
			return err
		}
		b.snippet.ConcludedLicense = expr
	case "LicenseInfoInSnippet":
		if _, err := license.ParseSimple(rec.value); err != nil {
			return b.malformed(rec, err)
		}
		b.snippet.LicenseInformation = append(b.snippet.LicenseInformation, rec.value)
	case "SnippetLicenseComments":
		b.snippet.LicenseComments = rec.value
	case "SnippetCopyrightText":
		b.snippet.CopyrightText = rec.value
	case "SnippetComment":
		b.snippet.Comment = rec.value
	case "SnippetName":
		b.snippet.Name = rec.value
	case "SnippetAttributionText":
		b.snippet.AttributionText = rec.value

	// Other licensing information.
	case "ExtractedText":
		b.other.ExtractedText = rec.value
	case "LicenseName":
		b.other.Name = rec.value
	case "LicenseCrossReference":
		b.other.CrossReferences = append(b.other.CrossReferences, rec.value)
	case "LicenseComment":
		b.other.Comment = rec.value

	// Relationships and annotations may appear in any section.
	case "Relationship":
		rel, err := parseRelationship(rec.value)
		if err != nil {
			return b.malformed(rec, err)
		}
		b.lastRelationship = b.addRelationship(rel)
	case "RelationshipComment":
		if b.lastRelationship < 0 {
			return &ParseError{
				Line: rec.line, Tag: rec.tag, Kind: ErrMisplacedTag,
				Err: fmt.Errorf("no preceding Relationship"),
			}
		}
		b.doc.Relationships[b.lastRelationship].Comment = rec.value
	case "Annotator":
		b.ann.annotator = rec.value
		b.ann.hasAnnotator = true
		b.completeAnnotation()
	case "AnnotationDate":
		date, err := parseDate(rec.value)
		if err != nil {
			return b.malformed(rec, err)
		}
		b.ann.date = date
		b.ann.hasDate = true
		b.completeAnnotation()
	case "AnnotationType":
		kind, ok := document.ParseAnnotationType(rec.value)
		if !ok {
			return b.malformed(rec, fmt.Errorf("unknown annotation type %q", rec.value))
		}
		b.ann.kind = kind
		b.ann.hasKind = true
		b.completeAnnotation()
	case "SPDXREF":
		b.ann.reference = rec.value
		b.completeAnnotation()
	case "AnnotationComment":
		b.ann.comment = rec.value
		b.ann.hasComment = true
		b.completeAnnotation()
	}

	return nil
}

// closeSection appends the open package, file, snippet or other
// licensing entry to the document and returns to document scope.
// Closing a file records its implicit containment in the current
// package unless the document already states that relationship.
func (b *builder) closeSection() {
	switch b.section {
	case sectionPackage:
		if b.pkg.DownloadLocation == "" {
			b.pkg.DownloadLocation = license.NoAssertion
		}
		b.lastPackageID = b.pkg.SPDXIdentifier
		b.doc.Packages = append(b.doc.Packages, *b.pkg)
		b.pkg = nil
	case sectionFile:
		b.doc.Files = append(b.doc.Files, *b.file)
		if b.lastPackageID != "" && b.file.SPDXIdentifier != "" {
			b.addRelationship(document.Relationship{
				Element: b.lastPackageID,
				Type:    document.RelationshipContains,
				Related: b.file.SPDXIdentifier,
			})
		}
		b.file = nil
	case sectionSnippet:
		b.doc.Snippets = append(b.doc.Snippets, *b.snippet)
		b.snippet = nil
	case sectionOtherLicense:
		if b.other.Name == "" {
			b.other.Name = license.NoAssertion
		}
		b.doc.OtherLicensing = append(b.doc.OtherLicensing, *b.other)
		b.other = nil
	}
	b.section = sectionDocument
}

// addRelationship appends rel unless an identical triple is already
// recorded, and returns the index of the surviving entry.
func (b *builder) addRelationship(rel document.Relationship) int {
	for i := range b.doc.Relationships {
		existing := &b.doc.Relationships[i]
		if existing.Element == rel.Element && existing.Type == rel.Type && existing.Related == rel.Related {
			return i
		}
	}
	b.doc.Relationships = append(b.doc.Relationships, rel)
	return len(b.doc.Relationships) - 1
}

// completeAnnotation moves the accumulated annotation onto the
// document once all four mandatory annotation tags have arrived.
func (b *builder) completeAnnotation() {
	if !b.ann.complete() {
		return
	}
	b.doc.Annotations = append(b.doc.Annotations, document.Annotation{
		Annotator: b.ann.annotator,
		Date:      b.ann.date,
		Type:      b.ann.kind,
		Reference: b.ann.reference,
		Comment:   b.ann.comment,
	})
	b.ann = annotationState{}
}

func (b *builder) finish() (*document.Document, error) {
	b.closeSection()

	if b.doc.SPDXIdentifier == "" {
		b.doc.SPDXIdentifier = "SPDXRef-DOCUMENT"
	}

	required := []struct {
		tag string
		ok  bool
	}{
		{"SPDXVersion", b.doc.SPDXVersion != ""},
		{"DataLicense", b.doc.DataLicense != ""},
		{"DocumentName", b.doc.Name != ""},
		{"DocumentNamespace", b.doc.Namespace != ""},
		{"Creator", len(b.doc.CreationInfo.Creators) > 0},
		{"Created", !b.doc.CreationInfo.Created.IsZero()},
	}
	for _, req := range required {
		if !req.ok {
			return nil, &ParseError{Tag: req.tag, Kind: ErrMissingField}
		}
	}
	return b.doc, nil
}

// expression parses a full license expression value, wrapping syntax
// errors with the tag's position.
func (b *builder) expression(rec record) (*license.Expression, error) {
	expr, err := license.Parse(rec.value)
	if err != nil {
		return nil, b.malformed(rec, err)
	}
	return expr, nil
}

func (b *builder) malformed(rec record, err error) error {
	return &ParseError{Line: rec.line, Tag: rec.tag, Value: rec.value, Kind: ErrMalformedValue, Err: err}
}

func (b *builder) misplaced(rec record) error {
	return &ParseError{
		Line: rec.line, Tag: rec.tag, Kind: ErrMisplacedTag,
		Err: fmt.Errorf("not valid in the %s section", b.section),
	}
}

// once guards single-valued document tags against repetition.
func (b *builder) once(rec record) error {
	if first, dup := b.seen[rec.tag]; dup {
		return &ParseError{
			Line: rec.line, Tag: rec.tag, Kind: ErrDuplicateTag,
			Err: fmt.Errorf("first occurrence on line %d", first),
		}
	}
	b.seen[rec.tag] = rec.line
	return nil
}
