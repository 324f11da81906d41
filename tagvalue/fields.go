package tagvalue

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/c360studio/spdx/document"
)

// The sub-parsers below decode the structured value shapes that some
// tags carry. They return bare errors; the caller wraps them with the
// tag and line they belong to.

func parseChecksum(value string) (document.Checksum, error) {
	sep := strings.Index(value, ":")
	if sep < 0 {
		return document.Checksum{}, errors.New(`expected "ALGORITHM: digest"`)
	}

	name := strings.TrimSpace(value[:sep])
	algorithm, ok := document.ParseChecksumAlgorithm(name)
	if !ok {
		return document.Checksum{}, fmt.Errorf("unknown checksum algorithm %q", name)
	}

	digest := strings.TrimSpace(value[sep+1:])
	if !isHex(digest) {
		return document.Checksum{}, fmt.Errorf("digest %q is not hexadecimal", digest)
	}

	return document.Checksum{
		Algorithm: algorithm,
		Value:     strings.ToLower(digest),
	}, nil
}

func isHex(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}

const excludesMarker = "(excludes:"

func parseVerificationCode(value string) (document.VerificationCode, error) {
	code := value
	var excluded []string

	if idx := strings.Index(value, excludesMarker); idx >= 0 {
		rest := strings.TrimSpace(value[idx+len(excludesMarker):])
		if !strings.HasSuffix(rest, ")") {
			return document.VerificationCode{}, errors.New("unclosed excludes list")
		}
		for _, f := range strings.Split(strings.TrimSuffix(rest, ")"), ",") {
			if f = strings.TrimSpace(f); f != "" {
				excluded = append(excluded, f)
			}
		}
		code = strings.TrimSpace(value[:idx])
	}

	code = strings.TrimSpace(code)
	if !isHex(code) {
		return document.VerificationCode{}, fmt.Errorf("verification code %q is not hexadecimal", code)
	}

	return document.VerificationCode{Value: code, ExcludedFiles: excluded}, nil
}

func parseRange(value string) (start, end int, err error) {
	sep := strings.Index(value, ":")
	if sep < 0 {
		return 0, 0, errors.New(`expected "start:end"`)
	}

	start, err = strconv.Atoi(strings.TrimSpace(value[:sep]))
	if err != nil {
		return 0, 0, fmt.Errorf("range start: %w", err)
	}
	end, err = strconv.Atoi(strings.TrimSpace(value[sep+1:]))
	if err != nil {
		return 0, 0, fmt.Errorf("range end: %w", err)
	}

	if start < 0 || end < 0 {
		return 0, 0, errors.New("range bounds must not be negative")
	}
	if end < start {
		return 0, 0, errors.New("range end precedes range start")
	}
	return start, end, nil
}

func parseExternalDocumentRef(value string) (document.ExternalDocumentRef, error) {
	fields := strings.Fields(value)
	if len(fields) < 4 {
		return document.ExternalDocumentRef{}, errors.New(`expected "DocumentRef-id uri ALGORITHM: digest"`)
	}
	if !strings.HasPrefix(fields[0], "DocumentRef-") {
		return document.ExternalDocumentRef{}, fmt.Errorf("identifier %q does not start with DocumentRef-", fields[0])
	}

	checksum, err := parseChecksum(strings.Join(fields[2:], " "))
	if err != nil {
		return document.ExternalDocumentRef{}, err
	}

	return document.ExternalDocumentRef{
		Identifier: fields[0],
		URI:        fields[1],
		Checksum:   checksum,
	}, nil
}

func parseExternalRef(value string) (document.ExternalRef, error) {
	fields := strings.Fields(value)
	if len(fields) != 3 {
		return document.ExternalRef{}, errors.New(`expected "CATEGORY type locator"`)
	}

	category, ok := document.ParseExternalRefCategory(fields[0])
	if !ok {
		return document.ExternalRef{}, fmt.Errorf("unknown reference category %q", fields[0])
	}

	return document.ExternalRef{
		Category: category,
		Type:     fields[1],
		Locator:  fields[2],
	}, nil
}

func parseRelationship(value string) (document.Relationship, error) {
	fields := strings.Fields(value)
	if len(fields) != 3 {
		return document.Relationship{}, errors.New(`expected "element TYPE related"`)
	}

	relType, ok := document.ParseRelationshipType(fields[1])
	if !ok {
		return document.Relationship{}, fmt.Errorf("unknown relationship type %q", fields[1])
	}

	return document.Relationship{
		Element: fields[0],
		Type:    relType,
		Related: fields[2],
	}, nil
}

func parseDate(value string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("expected an RFC 3339 timestamp: %w", err)
	}
	return t, nil
}

// validateDate checks date tags that the model stores as strings.
func validateDate(value string) error {
	_, err := parseDate(value)
	return err
}

func parseBool(value string) (bool, error) {
	switch value {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}
	return false, fmt.Errorf("expected true or false, got %q", value)
}
