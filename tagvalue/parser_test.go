package tagvalue

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/spdx/document"
	"github.com/c360studio/spdx/license"
)

const minimalDocument = `SPDXVersion: SPDX-2.2
DataLicense: CC0-1.0
DocumentName: Minimal
DocumentNamespace: http://spdx.org/spdxdocs/minimal-c6b3c8f5
Creator: Tool: example-9.9
Created: 2020-01-01T12:00:00Z
`

func parseExample(t *testing.T) *document.Document {
	t.Helper()
	f, err := os.Open(filepath.Join("testdata", "example-v2.2.spdx"))
	require.NoError(t, err)
	defer f.Close()

	doc, err := Parse(f)
	require.NoError(t, err)
	return doc
}

func TestParse_ExampleCreationInfo(t *testing.T) {
	doc := parseExample(t)

	assert.Equal(t, "SPDX-2.2", doc.SPDXVersion)
	assert.Equal(t, "CC0-1.0", doc.DataLicense)
	assert.Equal(t, "SPDXRef-DOCUMENT", doc.SPDXIdentifier)
	assert.Equal(t, "SPDX-Tools-v2.0", doc.Name)
	assert.Equal(t, "http://spdx.org/spdxdocs/spdx-example-444504E0-4F89-41D3-9A0C-0305E82C3301", doc.Namespace)
	assert.Equal(t, "This document was created using SPDX 2.0 using licenses from the web site.", doc.Comment)

	assert.Equal(t, "3.9", doc.CreationInfo.LicenseListVersion)
	assert.Equal(t, []string{
		"Tool: LicenseFind-1.0",
		"Organization: ExampleCodeInspect ()",
		"Person: Jane Doe ()",
	}, doc.CreationInfo.Creators)
	assert.Equal(t, time.Date(2010, 1, 29, 18, 30, 22, 0, time.UTC), doc.CreationInfo.Created)

	// The creator comment spans three lines inside a text block.
	assert.Equal(t, 3, len(strings.Split(doc.CreationInfo.Comment, "\n")))
	assert.Contains(t, doc.CreationInfo.Comment, "gcc 4.5.1")

	require.Len(t, doc.ExternalDocumentRefs, 1)
	ref := doc.ExternalDocumentRefs[0]
	assert.Equal(t, "DocumentRef-spdx-tool-1.2", ref.Identifier)
	assert.Equal(t, "http://spdx.org/spdxdocs/spdx-tools-v1.2-3F2504E0-4F89-41D3-9A0C-0305E82C3301", ref.URI)
	assert.Equal(t, document.Checksum{
		Algorithm: document.SHA1,
		Value:     "d6a770ba38583ed4bb4525bd96e50461655d2758",
	}, ref.Checksum)
}

func TestParse_ExamplePackages(t *testing.T) {
	doc := parseExample(t)
	require.Len(t, doc.Packages, 2)

	glibc := doc.Packages[0]
	assert.Equal(t, "glibc", glibc.Name)
	assert.Equal(t, "SPDXRef-Package", glibc.SPDXIdentifier)
	assert.Equal(t, "2.11.1", glibc.Version)
	assert.Equal(t, "glibc-2.11.1.tar.gz", glibc.FileName)
	assert.Equal(t, "Person: Jane Doe (jane.doe@example.com)", glibc.Supplier)
	assert.Equal(t, "Organization: ExampleCodeInspect (contact@example.com)", glibc.Originator)
	require.NotNil(t, glibc.FilesAnalyzed)
	assert.True(t, *glibc.FilesAnalyzed)

	require.NotNil(t, glibc.VerificationCode)
	assert.Equal(t, "d6a770ba38583ed4bb4525bd96e50461655d2758", glibc.VerificationCode.Value)
	assert.Equal(t, []string{"./package.spdx"}, glibc.VerificationCode.ExcludedFiles)

	// Digests fold to lowercase regardless of how the document spells
	// them.
	assert.Equal(t, []document.Checksum{
		{Algorithm: document.MD5, Value: "624c1abb3664f4b35547e7c73864ad24"},
		{Algorithm: document.SHA1, Value: "85ed0817af83a24ad8da68c2b5094de69833983c"},
		{Algorithm: document.SHA256, Value: "11b6d3ee554eedf79299905a98f9b9a04e498210b59f15094c916c91d150efcd"},
	}, glibc.Checksums)

	require.NotNil(t, glibc.ConcludedLicense)
	assert.Equal(t, "(LGPL-2.0-only OR LicenseRef-3)", glibc.ConcludedLicense.String())
	require.NotNil(t, glibc.DeclaredLicense)
	assert.Equal(t, "(LGPL-2.0-only AND LicenseRef-3)", glibc.DeclaredLicense.String())
	assert.Equal(t, []string{"GPL-2.0-only", "LicenseRef-2", "LicenseRef-1"}, glibc.LicenseInformationFromFiles)

	require.Len(t, glibc.ExternalRefs, 2)
	assert.Equal(t, document.ExternalRef{
		Category: document.ExternalRefSecurity,
		Type:     "cpe23Type",
		Locator:  "cpe:2.3:a:pivotal_software:spring_framework:4.1.0:*:*:*:*:*:*:*",
	}, glibc.ExternalRefs[0])
	assert.Equal(t, "This is the external ref for Acme", glibc.ExternalRefs[1].Comment)

	require.Len(t, glibc.AttributionTexts, 1)
	assert.Contains(t, glibc.AttributionTexts[0], "COPYING.LIB")

	saxon := doc.Packages[1]
	assert.Equal(t, "Saxon", saxon.Name)
	assert.Equal(t, "SPDXRef-Saxon", saxon.SPDXIdentifier)
	assert.Equal(t, "8.8", saxon.Version)
	require.NotNil(t, saxon.FilesAnalyzed)
	assert.False(t, *saxon.FilesAnalyzed)
	assert.Nil(t, saxon.VerificationCode)
}

func TestParse_ExampleFiles(t *testing.T) {
	doc := parseExample(t)
	require.Len(t, doc.Files, 3)

	doap := doc.Files[0]
	assert.Equal(t, "./src/org/spdx/parser/DOAPProject.java", doap.Name)
	assert.Equal(t, "SPDXRef-DoapSource", doap.SPDXIdentifier)
	assert.Equal(t, []document.FileType{document.FileTypeSource}, doap.Types)
	require.NotNil(t, doap.ConcludedLicense)
	assert.Equal(t, "Apache-2.0", doap.ConcludedLicense.String())
	require.Len(t, doap.LicenseInformation, 1)
	assert.Equal(t, "Apache-2.0", doap.LicenseInformation[0].String())
	assert.Len(t, doap.Contributors, 5)

	commons := doc.Files[1]
	assert.Equal(t, "SPDXRef-CommonsLangSrc", commons.SPDXIdentifier)
	assert.Equal(t, "This file is used by Jena", commons.Comment)
	assert.Contains(t, commons.Notice, "Apache Commons Lang\nCopyright 2001-2011")
	assert.Contains(t, commons.Notice, "\n\nThis product includes")

	jena := doc.Files[2]
	assert.Equal(t, "SPDXRef-JenaLib", jena.SPDXIdentifier)
	assert.Equal(t, "This license is used by Jena", jena.LicenseComments)
}

func TestParse_ExampleSnippet(t *testing.T) {
	doc := parseExample(t)
	require.Len(t, doc.Snippets, 1)

	snip := doc.Snippets[0]
	assert.Equal(t, "SPDXRef-Snippet", snip.SPDXIdentifier)
	assert.Equal(t, "SPDXRef-DoapSource", snip.FileSPDXIdentifier)
	assert.Equal(t, "from linux kernel", snip.Name)
	require.NotNil(t, snip.ConcludedLicense)
	assert.Equal(t, "GPL-2.0-only", snip.ConcludedLicense.String())
	assert.Equal(t, []string{"GPL-2.0-only"}, snip.LicenseInformation)

	require.Len(t, snip.Ranges, 2)
	assert.Equal(t, document.Range{
		Start: document.BytePointer("SPDXRef-DoapSource", 310),
		End:   document.BytePointer("SPDXRef-DoapSource", 420),
	}, snip.Ranges[0])
	assert.Equal(t, document.Range{
		Start: document.LinePointer("SPDXRef-DoapSource", 5),
		End:   document.LinePointer("SPDXRef-DoapSource", 23),
	}, snip.Ranges[1])
}

func TestParse_ExampleOtherLicensing(t *testing.T) {
	doc := parseExample(t)
	require.Len(t, doc.OtherLicensing, 3)

	first := doc.OtherLicensing[0]
	assert.Equal(t, "LicenseRef-1", first.Identifier)
	assert.True(t, strings.HasPrefix(first.ExtractedText, "/*"))
	assert.True(t, strings.HasSuffix(first.ExtractedText, "*/"))
	// No LicenseName tag, so the name defaults.
	assert.Equal(t, "NOASSERTION", first.Name)

	beerware := doc.OtherLicensing[2]
	assert.Equal(t, "LicenseRef-Beerware-4.2", beerware.Identifier)
	assert.Equal(t, "Beer-Ware License (Version 42)", beerware.Name)
	assert.Equal(t, []string{"http://people.freebsd.org/~phk/"}, beerware.CrossReferences)
	assert.Equal(t, "The beerware license has a couple of other standard variants.", beerware.Comment)
	assert.Contains(t, beerware.ExtractedText, "phk@FreeBSD.ORG")
}

func TestParse_ExampleRelationships(t *testing.T) {
	doc := parseExample(t)

	// Files parsed after the glibc package gain an implicit CONTAINS
	// unless the document already recorded one, as it did for
	// SPDXRef-DoapSource.
	assert.Equal(t, []document.Relationship{
		{Element: "SPDXRef-DOCUMENT", Type: document.RelationshipCopyOf, Related: "DocumentRef-spdx-tool-1.2:SPDXRef-ToolsElement"},
		{Element: "SPDXRef-DOCUMENT", Type: document.RelationshipDescribes, Related: "SPDXRef-Package", Comment: "The document describes the glibc package."},
		{Element: "SPDXRef-Package", Type: document.RelationshipContains, Related: "SPDXRef-DoapSource"},
		{Element: "SPDXRef-Package", Type: document.RelationshipDynamicLink, Related: "SPDXRef-Saxon"},
		{Element: "SPDXRef-CommonsLangSrc", Type: document.RelationshipGeneratedFrom, Related: "NOASSERTION"},
		{Element: "SPDXRef-Package", Type: document.RelationshipContains, Related: "SPDXRef-CommonsLangSrc"},
		{Element: "SPDXRef-JenaLib", Type: document.RelationshipContains, Related: "SPDXRef-Package"},
		{Element: "SPDXRef-Package", Type: document.RelationshipContains, Related: "SPDXRef-JenaLib"},
	}, doc.Relationships)
}

func TestParse_ExampleAnnotations(t *testing.T) {
	doc := parseExample(t)
	require.Len(t, doc.Annotations, 3)

	assert.Equal(t, document.Annotation{
		Annotator: "Person: Jane Doe ()",
		Date:      time.Date(2010, 1, 29, 18, 30, 22, 0, time.UTC),
		Type:      document.AnnotationOther,
		Comment:   "Document level annotation",
	}, doc.Annotations[0])

	assert.Equal(t, "SPDXRef-Package", doc.Annotations[1].Reference)
	assert.Equal(t, document.AnnotationReview, doc.Annotations[1].Type)

	assert.Equal(t, "SPDXRef-DOCUMENT", doc.Annotations[2].Reference)
	assert.Equal(t, "Another example reviewer.", doc.Annotations[2].Comment)
}

func TestParse_MinimalDocument(t *testing.T) {
	doc, err := ParseString(minimalDocument)
	require.NoError(t, err)

	assert.Equal(t, "Minimal", doc.Name)
	// No SPDXID tag, so the identifier defaults.
	assert.Equal(t, "SPDXRef-DOCUMENT", doc.SPDXIdentifier)
	assert.Empty(t, doc.Packages)
	assert.Empty(t, doc.Relationships)
}

func TestParse_TagsAreCaseInsensitive(t *testing.T) {
	input := `spdxversion: SPDX-2.2
DATALICENSE: CC0-1.0
documentname: Minimal
documentnamespace: http://spdx.org/spdxdocs/minimal-1
creator: Tool: example-9.9
created: 2020-01-01T12:00:00Z
packagename: demo
spdxid: SPDXRef-demo
`
	doc, err := ParseString(input)
	require.NoError(t, err)

	assert.Equal(t, "SPDX-2.2", doc.SPDXVersion)
	require.Len(t, doc.Packages, 1)
	assert.Equal(t, "demo", doc.Packages[0].Name)
	assert.Equal(t, "SPDXRef-demo", doc.Packages[0].SPDXIdentifier)
	assert.Equal(t, "SPDXRef-DOCUMENT", doc.SPDXIdentifier)
}

func TestParse_BlankLinesKeepSectionOpen(t *testing.T) {
	input := minimalDocument + `PackageName: demo

PackageVersion: 1.0

# still the same package
PackageDownloadLocation: NOASSERTION
`
	doc, err := ParseString(input)
	require.NoError(t, err)

	require.Len(t, doc.Packages, 1)
	assert.Equal(t, "1.0", doc.Packages[0].Version)
}

func TestParse_PackageDownloadLocationDefaults(t *testing.T) {
	doc, err := ParseString(minimalDocument + "PackageName: demo\n")
	require.NoError(t, err)

	require.Len(t, doc.Packages, 1)
	assert.Equal(t, "NOASSERTION", doc.Packages[0].DownloadLocation)
}

func TestParse_UnknownTag(t *testing.T) {
	_, err := ParseString(minimalDocument + "Frobnicate: yes\n")
	require.Error(t, err)
	assert.True(t, IsUnknownTag(err))

	var parseErr *ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, 7, parseErr.Line)
	assert.Equal(t, "Frobnicate", parseErr.Tag)
}

func TestParse_MisplacedTags(t *testing.T) {
	tests := []struct {
		name  string
		input string
		tag   string
	}{
		{
			name:  "file tag before any file",
			input: minimalDocument + "FileType: SOURCE\n",
			tag:   "FileType",
		},
		{
			name:  "document tag after a package opened",
			input: minimalDocument + "PackageName: demo\nCreator: Tool: late-0.1\n",
			tag:   "Creator",
		},
		{
			name:  "package tag after a file opened",
			input: minimalDocument + "PackageName: demo\nFileName: ./a.c\nPackageVersion: 1.0\n",
			tag:   "PackageVersion",
		},
		{
			name:  "extracted text outside a license",
			input: minimalDocument + "ExtractedText: <text>x</text>\n",
			tag:   "ExtractedText",
		},
		{
			name:  "snippet range outside a snippet",
			input: minimalDocument + "SnippetByteRange: 1:2\n",
			tag:   "SnippetByteRange",
		},
		{
			name:  "spdxid inside other licensing",
			input: minimalDocument + "LicenseID: LicenseRef-1\nSPDXID: SPDXRef-x\n",
			tag:   "SPDXID",
		},
		{
			name:  "relationship comment with no relationship",
			input: minimalDocument + "RelationshipComment: dangling\n",
			tag:   "RelationshipComment",
		},
		{
			name:  "external ref comment with no external ref",
			input: minimalDocument + "PackageName: demo\nExternalRefComment: dangling\n",
			tag:   "ExternalRefComment",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseString(tt.input)
			require.Error(t, err)
			assert.True(t, IsMisplacedTag(err), "got %v", err)

			var parseErr *ParseError
			require.True(t, errors.As(err, &parseErr))
			assert.Equal(t, tt.tag, parseErr.Tag)
			assert.Positive(t, parseErr.Line)
		})
	}
}

func TestParse_DuplicateDocumentTag(t *testing.T) {
	_, err := ParseString(minimalDocument + "DocumentName: Again\n")
	require.Error(t, err)
	assert.True(t, IsDuplicateTag(err))

	var parseErr *ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, "DocumentName", parseErr.Tag)
	assert.Equal(t, 7, parseErr.Line)
	assert.Contains(t, parseErr.Error(), "line 3")
}

func TestParse_MissingMandatoryTags(t *testing.T) {
	lines := strings.Split(strings.TrimSuffix(minimalDocument, "\n"), "\n")
	tags := []string{
		"SPDXVersion", "DataLicense", "DocumentName",
		"DocumentNamespace", "Creator", "Created",
	}

	for i, tag := range tags {
		t.Run(tag, func(t *testing.T) {
			var rest []string
			rest = append(rest, lines[:i]...)
			rest = append(rest, lines[i+1:]...)

			_, err := ParseString(strings.Join(rest, "\n"))
			require.Error(t, err)
			assert.True(t, IsMissingField(err), "got %v", err)

			var parseErr *ParseError
			require.True(t, errors.As(err, &parseErr))
			assert.Equal(t, tag, parseErr.Tag)
			assert.Zero(t, parseErr.Line)
		})
	}
}

func TestParse_MalformedValues(t *testing.T) {
	inPackage := minimalDocument + "PackageName: demo\n"
	inFile := minimalDocument + "FileName: ./a.c\n"
	inSnippet := minimalDocument + "SnippetSPDXID: SPDXRef-S\n"

	tests := []struct {
		name  string
		input string
	}{
		{name: "line without separator", input: minimalDocument + "no separator here\n"},
		{name: "created is not a timestamp", input: strings.Replace(minimalDocument, "2020-01-01T12:00:00Z", "January 1st 2020", 1)},
		{name: "files analyzed is not a bool", input: inPackage + "FilesAnalyzed: yes\n"},
		{name: "unknown checksum algorithm", input: inPackage + "PackageChecksum: CRC32: abcdef\n"},
		{name: "digest is not hex", input: inPackage + "PackageChecksum: SHA1: xyz123\n"},
		{name: "verification code excludes unclosed", input: inPackage + "PackageVerificationCode: d6a770ba38583ed4bb4525bd96e50461655d2758 (excludes: ./a.spdx\n"},
		{name: "external ref category unknown", input: inPackage + "ExternalRef: REGISTRY cpe23Type cpe:2.3:a:x\n"},
		{name: "external document ref too short", input: minimalDocument + "ExternalDocumentRef: DocumentRef-x http://example.com/doc\n"},
		{name: "external document ref bad prefix", input: minimalDocument + "ExternalDocumentRef: Ref-x http://example.com/doc SHA1: d6a770ba38583ed4bb4525bd96e50461655d2758\n"},
		{name: "package purpose unknown", input: inPackage + "PrimaryPackagePurpose: PLUGIN\n"},
		{name: "built date invalid", input: inPackage + "BuiltDate: tomorrow\n"},
		{name: "file type unknown", input: inFile + "FileType: JPEG\n"},
		{name: "byte range not numeric", input: inSnippet + "SnippetByteRange: ten:20\n"},
		{name: "byte range end precedes start", input: inSnippet + "SnippetByteRange: 420:310\n"},
		{name: "line range missing separator", input: inSnippet + "SnippetLineRange: 57\n"},
		{name: "relationship with two fields", input: minimalDocument + "Relationship: SPDXRef-A DESCRIBES\n"},
		{name: "relationship type unknown", input: minimalDocument + "Relationship: SPDXRef-A FRIEND_OF SPDXRef-B\n"},
		{name: "annotation type unknown", input: minimalDocument + "Annotator: Person: X\nAnnotationType: AUDIT\n"},
		{name: "annotation date invalid", input: minimalDocument + "Annotator: Person: X\nAnnotationDate: yesterday\n"},
		{name: "license expression invalid", input: inPackage + "PackageLicenseConcluded: MIT AND\n"},
		{name: "license info in file is compound", input: inFile + "LicenseInfoInFile: MIT OR GPL-2.0-only\n"},
		{name: "license info from files is compound", input: inPackage + "PackageLicenseInfoFromFiles: MIT AND ISC\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseString(tt.input)
			require.Error(t, err)
			assert.True(t, IsMalformedValue(err), "got %v", err)
		})
	}
}

func TestParse_LicenseErrorsKeepTheirCause(t *testing.T) {
	_, err := ParseString(minimalDocument + "PackageName: demo\nPackageLicenseConcluded: MIT AND\n")
	require.Error(t, err)

	assert.True(t, IsMalformedValue(err))
	assert.True(t, license.IsInvalidToken(err))

	var parseErr *ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, 8, parseErr.Line)
	assert.Equal(t, "PackageLicenseConcluded", parseErr.Tag)
}

func TestParse_UnterminatedTextBlock(t *testing.T) {
	_, err := ParseString(minimalDocument + "DocumentComment: <text>never closed\nstill going\n")
	require.Error(t, err)
	assert.True(t, IsUnterminatedText(err))

	var parseErr *ParseError
	require.True(t, errors.As(err, &parseErr))
	// The error points at the line that opened the block.
	assert.Equal(t, 7, parseErr.Line)
	assert.Equal(t, "DocumentComment", parseErr.Tag)
}

func TestParse_TextBlockTrailingContent(t *testing.T) {
	tests := []struct {
		name  string
		input string
		line  int
	}{
		{
			name:  "trailing content on the opening line",
			input: minimalDocument + "DocumentComment: <text>hi</text> extra\n",
			line:  7,
		},
		{
			name:  "trailing content on the closing line",
			input: minimalDocument + "DocumentComment: <text>hi\nthere</text> extra\n",
			line:  8,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseString(tt.input)
			require.Error(t, err)
			assert.True(t, IsMalformedValue(err))

			var parseErr *ParseError
			require.True(t, errors.As(err, &parseErr))
			assert.Equal(t, tt.line, parseErr.Line)
		})
	}
}

func TestParse_AnnotationOverwriteBeforeCompletion(t *testing.T) {
	// A second Annotator before the first annotation completes
	// replaces it; only the finished annotation survives.
	input := minimalDocument + `Annotator: Person: First
Annotator: Person: Second
AnnotationDate: 2020-01-01T12:00:00Z
AnnotationType: REVIEW
AnnotationComment: done
`
	doc, err := ParseString(input)
	require.NoError(t, err)

	require.Len(t, doc.Annotations, 1)
	assert.Equal(t, "Person: Second", doc.Annotations[0].Annotator)
}

func TestParse_RelationshipTypeFoldsCase(t *testing.T) {
	doc, err := ParseString(minimalDocument + "Relationship: SPDXRef-A describes SPDXRef-B\n")
	require.NoError(t, err)

	require.Len(t, doc.Relationships, 1)
	assert.Equal(t, document.RelationshipDescribes, doc.Relationships[0].Type)
}

func TestParse_RelationshipDuplicatesCollapse(t *testing.T) {
	input := minimalDocument + `Relationship: SPDXRef-A DESCRIBES SPDXRef-B
Relationship: SPDXRef-A DESCRIBES SPDXRef-B
RelationshipComment: attached to the survivor
`
	doc, err := ParseString(input)
	require.NoError(t, err)

	require.Len(t, doc.Relationships, 1)
	assert.Equal(t, "attached to the survivor", doc.Relationships[0].Comment)
}
