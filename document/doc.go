// Package document defines the SPDX document model: the Document root
// plus the packages, files, snippets, extracted licensing information,
// relationships and annotations it carries.
//
// The types mirror the SPDX 2.2 JSON schema field for field, so a
// Document round-trips through encoding/json and yaml.v3 without any
// separate wire types. License-bearing fields hold parsed expressions
// from the license package rather than raw strings; fields the schema
// types as plain strings stay strings here too.
//
// # Construction
//
// New fills in the boilerplate every document needs and generates a
// fresh namespace. Parsers in the tagvalue and format packages produce
// fully populated documents; Validate checks that the mandatory
// creation-information fields are present, which matters for documents
// assembled by hand.
//
// # Queries
//
// The Document methods answer the questions tooling usually asks of an
// SPDX document: which files belong to a package, which licenses were
// concluded across its files, and which relationships mention a given
// element.
package document
