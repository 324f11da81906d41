package tagvalue

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// errTrailingText flags content on the same line after a </text>
// closing marker, which the grammar does not allow.
var errTrailingText = errors.New("content after </text> marker")

// record is one logical tag-value pair. Multi-line <text> values are
// already unwrapped; line is where the tag appeared.
type record struct {
	tag   string
	value string
	line  int

	// known reports whether tag is part of the SPDX vocabulary. The
	// scanner keeps unknown tags as written so the error can quote
	// them.
	known bool
}

// tags is the SPDX tag vocabulary in canonical spelling, grouped the
// way sections appear in a document.
var tags = []string{
	// Document creation information.
	"SPDXVersion", "DataLicense", "SPDXID", "DocumentName",
	"DocumentNamespace", "ExternalDocumentRef", "LicenseListVersion",
	"Creator", "Created", "CreatorComment", "DocumentComment",

	// Package information.
	"PackageName", "PackageVersion", "PackageFileName",
	"PackageSupplier", "PackageOriginator", "PackageDownloadLocation",
	"FilesAnalyzed", "PackageVerificationCode", "PackageChecksum",
	"PackageHomePage", "PackageSourceInfo", "PackageLicenseConcluded",
	"PackageLicenseInfoFromFiles", "PackageLicenseDeclared",
	"PackageLicenseComments", "PackageCopyrightText", "PackageSummary",
	"PackageDescription", "PackageComment", "ExternalRef",
	"ExternalRefComment", "PackageAttributionText",
	"PrimaryPackagePurpose", "BuiltDate", "ReleaseDate",
	"ValidUntilDate",

	// File information.
	"FileName", "FileType", "FileChecksum", "LicenseConcluded",
	"LicenseInfoInFile", "LicenseComments", "FileCopyrightText",
	"FileComment", "FileNotice", "FileContributor",
	"FileAttributionText",

	// Snippet information.
	"SnippetSPDXID", "SnippetFromFileSPDXID", "SnippetByteRange",
	"SnippetLineRange", "SnippetLicenseConcluded",
	"LicenseInfoInSnippet", "SnippetLicenseComments",
	"SnippetCopyrightText", "SnippetComment", "SnippetName",
	"SnippetAttributionText",

	// Other licensing information.
	"LicenseID", "ExtractedText", "LicenseName",
	"LicenseCrossReference", "LicenseComment",

	// Relationships.
	"Relationship", "RelationshipComment",

	// Annotations.
	"Annotator", "AnnotationDate", "AnnotationType", "SPDXREF",
	"AnnotationComment",
}

// canonicalTags folds the vocabulary for case-insensitive matching.
var canonicalTags = func() map[string]string {
	m := make(map[string]string, len(tags))
	for _, t := range tags {
		m[strings.ToLower(t)] = t
	}
	return m
}()

const (
	textOpen  = "<text>"
	textClose = "</text>"
)

// scan splits the input into logical records. Blank lines and lines
// starting with # are dropped; tag names are folded to their canonical
// spelling; <text> blocks are collected into a single value with the
// newlines between the markers preserved.
func scan(r io.Reader) ([]record, error) {
	var records []record

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)

	line := 0
	for sc.Scan() {
		line++
		raw := strings.TrimSuffix(sc.Text(), "\r")

		trimmed := strings.TrimSpace(raw)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		sep := strings.Index(trimmed, ":")
		if sep < 0 {
			return nil, &ParseError{Line: line, Value: trimmed, Kind: ErrMalformedValue}
		}

		rawTag := strings.TrimSpace(trimmed[:sep])
		value := strings.TrimSpace(trimmed[sep+1:])

		rec := record{tag: rawTag, line: line}
		if canonical, ok := canonicalTags[strings.ToLower(rawTag)]; ok {
			rec.tag = canonical
			rec.known = true
		}

		if strings.HasPrefix(value, textOpen) {
			text, err := scanText(sc, rec, value[len(textOpen):], &line)
			if err != nil {
				return nil, err
			}
			rec.value = text
		} else {
			rec.value = value
		}

		records = append(records, rec)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read tag-value input: %w", err)
	}
	return records, nil
}

// scanText collects a <text> block. first is the remainder of the
// opening line after the marker; line tracks the scanner position so
// records after the block report correct numbers.
func scanText(sc *bufio.Scanner, rec record, first string, line *int) (string, error) {
	if idx := strings.Index(first, textClose); idx >= 0 {
		if strings.TrimSpace(first[idx+len(textClose):]) != "" {
			return "", &ParseError{
				Line:  *line,
				Tag:   rec.tag,
				Value: first,
				Kind:  ErrMalformedValue,
				Err:   errTrailingText,
			}
		}
		return first[:idx], nil
	}

	var b strings.Builder
	b.WriteString(first)
	for sc.Scan() {
		*line++
		raw := strings.TrimSuffix(sc.Text(), "\r")

		idx := strings.Index(raw, textClose)
		if idx < 0 {
			b.WriteString("\n")
			b.WriteString(raw)
			continue
		}
		if strings.TrimSpace(raw[idx+len(textClose):]) != "" {
			return "", &ParseError{
				Line:  *line,
				Tag:   rec.tag,
				Value: raw,
				Kind:  ErrMalformedValue,
				Err:   errTrailingText,
			}
		}
		b.WriteString("\n")
		b.WriteString(raw[:idx])
		return b.String(), nil
	}

	return "", &ParseError{Line: rec.line, Tag: rec.tag, Kind: ErrUnterminatedText}
}
