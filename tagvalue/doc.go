// Package tagvalue parses the SPDX tag-value format into document
// model values.
//
// The format is line oriented. Each line is a "Tag: value" pair, a
// comment starting with #, or blank. Values spanning several lines are
// wrapped in <text>...</text> markers. Tags are matched
// case-insensitively against the SPDX vocabulary, so "packagename:"
// opens a package just as "PackageName:" does.
//
// # Sections
//
// A document is a sequence of sections. The PackageName, FileName,
// SnippetSPDXID and LicenseID tags each open a new section and close
// the previous one; every other tag applies to the section currently
// open. Relationship and annotation tags are the exception and may
// appear anywhere. A file parsed after a package is implicitly
// CONTAINS-related to that package unless the document records the
// relationship itself.
//
// # Errors
//
// Parse stops at the first problem and reports it as a *ParseError
// carrying the line, the tag and an ErrorKind. A document either
// parses completely or not at all; there are no partial results.
package tagvalue
