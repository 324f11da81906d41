package tagvalue

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorKind classifies tag-value parse failures.
type ErrorKind string

const (
	// ErrUnknownTag indicates a tag name that is not part of the SPDX
	// tag vocabulary.
	ErrUnknownTag ErrorKind = "unknown tag"

	// ErrMisplacedTag indicates a known tag that appeared outside the
	// section it belongs to, for example a FileType before any
	// FileName.
	ErrMisplacedTag ErrorKind = "misplaced tag"

	// ErrMissingField indicates a mandatory document tag that never
	// appeared.
	ErrMissingField ErrorKind = "missing field"

	// ErrMalformedValue indicates a value that does not match the
	// shape its tag requires, or a line with no tag separator at all.
	ErrMalformedValue ErrorKind = "malformed value"

	// ErrUnterminatedText indicates a <text> block that was opened
	// but never closed.
	ErrUnterminatedText ErrorKind = "unterminated text block"

	// ErrDuplicateTag indicates a single-valued document tag that
	// appeared twice.
	ErrDuplicateTag ErrorKind = "duplicate tag"
)

// ParseError reports a failure to parse a tag-value document.
type ParseError struct {
	// Line is the 1-based line the failure was detected on, or 0 for
	// failures without a position, such as missing mandatory tags.
	Line int

	// Tag is the canonical tag name involved, when one is known.
	Tag string

	// Value is the offending value, when the failure concerns one.
	Value string

	// Kind classifies the failure.
	Kind ErrorKind

	// Err carries the underlying cause, such as a license expression
	// parse error. May be nil.
	Err error
}

func (e *ParseError) Error() string {
	var b strings.Builder
	b.WriteString("parse tag-value document")
	if e.Line > 0 {
		fmt.Fprintf(&b, ": line %d", e.Line)
	}
	switch e.Kind {
	case ErrUnknownTag:
		fmt.Fprintf(&b, ": unknown tag %q", e.Tag)
	case ErrMisplacedTag:
		fmt.Fprintf(&b, ": misplaced tag %q", e.Tag)
	case ErrMissingField:
		fmt.Fprintf(&b, ": missing mandatory tag %q", e.Tag)
	case ErrDuplicateTag:
		fmt.Fprintf(&b, ": duplicate tag %q", e.Tag)
	case ErrUnterminatedText:
		fmt.Fprintf(&b, ": tag %q: unterminated <text> block", e.Tag)
	case ErrMalformedValue:
		if e.Tag == "" {
			fmt.Fprintf(&b, ": malformed line %q", e.Value)
		} else {
			fmt.Fprintf(&b, ": malformed value %q for tag %q", e.Value, e.Tag)
		}
	default:
		fmt.Fprintf(&b, ": %s", e.Kind)
	}
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	return b.String()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// IsUnknownTag returns true if the error is a ParseError with kind
// ErrUnknownTag.
func IsUnknownTag(err error) bool {
	return hasKind(err, ErrUnknownTag)
}

// IsMisplacedTag returns true if the error is a ParseError with kind
// ErrMisplacedTag.
func IsMisplacedTag(err error) bool {
	return hasKind(err, ErrMisplacedTag)
}

// IsMissingField returns true if the error is a ParseError with kind
// ErrMissingField.
func IsMissingField(err error) bool {
	return hasKind(err, ErrMissingField)
}

// IsMalformedValue returns true if the error is a ParseError with kind
// ErrMalformedValue.
func IsMalformedValue(err error) bool {
	return hasKind(err, ErrMalformedValue)
}

// IsUnterminatedText returns true if the error is a ParseError with
// kind ErrUnterminatedText.
func IsUnterminatedText(err error) bool {
	return hasKind(err, ErrUnterminatedText)
}

// IsDuplicateTag returns true if the error is a ParseError with kind
// ErrDuplicateTag.
func IsDuplicateTag(err error) bool {
	return hasKind(err, ErrDuplicateTag)
}

func hasKind(err error, kind ErrorKind) bool {
	var parseErr *ParseError
	return errors.As(err, &parseErr) && parseErr.Kind == kind
}
