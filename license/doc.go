// Package license parses SPDX license expressions.
//
// An expression such as "(MIT AND Apache-2.0) OR GPL-2.0-or-later"
// parses into a tree of Atom, With, And and Or nodes. Parse handles the
// full grammar; ParseSimple accepts only a single license with an
// optional exception, rejecting compound expressions instead of
// flattening them, which is what fields like the per-file license
// information list require.
//
// # Grammar
//
//	expr      := and_expr ("OR" and_expr)*
//	and_expr  := with_expr ("AND" with_expr)*
//	with_expr := atom ["WITH" exception_id]
//	atom      := "(" expr ")" | license_id ["+"]
//
// The keywords AND, OR and WITH are case-sensitive; "and" is just an
// (invalid) license token. A trailing "+" or an "-or-later" suffix both
// mark an atom as or-later. Identifiers are opaque: whether "MIT" is a
// real SPDX license id is a license-list question, not a parsing one
// (see the licenselist package).
//
// Parsed expressions keep their source text, marshal to plain JSON/YAML
// strings, and re-parse on unmarshal, so malformed expressions are
// rejected at decode time.
//
// All failures are *ParseError values carrying the offending token.
// Parse and ParseSimple never panic on bad input; only the Must
// variants do.
package license
