package licenselist

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/c360studio/spdx/license"
)

// License is one entry of the SPDX license list.
type License struct {
	// Reference is the URL of the license's HTML page.
	Reference string `json:"reference"`

	// IsDeprecated reports whether the identifier is deprecated in
	// favor of another spelling, e.g. "GPL-2.0" for "GPL-2.0-only".
	IsDeprecated bool `json:"isDeprecatedLicenseId"`

	// DetailsURL is the URL of the license's JSON detail record.
	DetailsURL string `json:"detailsUrl"`

	// ReferenceNumber is the entry's position in the published list.
	ReferenceNumber int `json:"referenceNumber"`

	// Name is the full license name, e.g. "MIT License".
	Name string `json:"name"`

	// ID is the SPDX license identifier, e.g. "MIT".
	ID string `json:"licenseId"`

	// SeeAlso lists URLs where the license text is published.
	SeeAlso []string `json:"seeAlso"`

	// IsOSIApproved reports whether the OSI approved the license.
	IsOSIApproved bool `json:"isOsiApproved"`

	// IsFSFLibre reports whether the FSF considers the license free.
	IsFSFLibre bool `json:"isFsfLibre,omitempty"`
}

// Exception is one entry of the SPDX license exception list.
type Exception struct {
	// Reference is the URL of the exception's HTML page.
	Reference string `json:"reference"`

	// IsDeprecated reports whether the identifier is deprecated.
	IsDeprecated bool `json:"isDeprecatedLicenseId"`

	// DetailsURL is the URL of the exception's JSON detail record.
	DetailsURL string `json:"detailsUrl"`

	// ReferenceNumber is the entry's position in the published list.
	ReferenceNumber int `json:"referenceNumber"`

	// Name is the full exception name, e.g. "Classpath exception 2.0".
	Name string `json:"name"`

	// ID is the SPDX exception identifier, e.g.
	// "Classpath-exception-2.0".
	ID string `json:"licenseExceptionId"`

	// SeeAlso lists URLs where the exception text is published.
	SeeAlso []string `json:"seeAlso"`
}

// List is one release of the SPDX license list: the known license and
// exception identifiers that expressions may reference.
type List struct {
	// Version is the license list release, e.g. "3.19".
	Version string

	// ReleaseDate is the release date in YYYY-MM-DD form.
	ReleaseDate string

	// Licenses holds the list entries in published order.
	Licenses []License

	// Exceptions holds the exception entries in published order.
	Exceptions []Exception

	licensesByID   map[string]int
	exceptionsByID map[string]int
}

// Parse builds a List from the licenses.json payload published with
// each SPDX license list release, plus the matching exceptions.json
// payload. exceptionsJSON may be nil when exception lookups are not
// needed.
func Parse(licensesJSON, exceptionsJSON []byte) (*List, error) {
	var licenses struct {
		Version     string    `json:"licenseListVersion"`
		ReleaseDate string    `json:"releaseDate"`
		Licenses    []License `json:"licenses"`
	}
	if err := json.Unmarshal(licensesJSON, &licenses); err != nil {
		return nil, fmt.Errorf("parse license list: %w", err)
	}

	list := &List{
		Version:     licenses.Version,
		ReleaseDate: licenses.ReleaseDate,
		Licenses:    licenses.Licenses,
	}

	if exceptionsJSON != nil {
		var exceptions struct {
			Exceptions []Exception `json:"exceptions"`
		}
		if err := json.Unmarshal(exceptionsJSON, &exceptions); err != nil {
			return nil, fmt.Errorf("parse exception list: %w", err)
		}
		list.Exceptions = exceptions.Exceptions
	}

	list.index()
	return list, nil
}

// Identifier matching is case-insensitive, as the expression syntax
// requires, so lookups go through lowercased keys.
func (l *List) index() {
	l.licensesByID = make(map[string]int, len(l.Licenses))
	for i := range l.Licenses {
		l.licensesByID[strings.ToLower(l.Licenses[i].ID)] = i
	}
	l.exceptionsByID = make(map[string]int, len(l.Exceptions))
	for i := range l.Exceptions {
		l.exceptionsByID[strings.ToLower(l.Exceptions[i].ID)] = i
	}
}

// License returns the entry for the given identifier. Matching is
// case-insensitive; the returned entry carries the canonical spelling.
func (l *List) License(id string) (License, bool) {
	i, ok := l.licensesByID[strings.ToLower(id)]
	if !ok {
		return License{}, false
	}
	return l.Licenses[i], true
}

// HasLicense reports whether the identifier is in the license list.
func (l *List) HasLicense(id string) bool {
	_, ok := l.licensesByID[strings.ToLower(id)]
	return ok
}

// Exception returns the entry for the given exception identifier.
// Matching is case-insensitive.
func (l *List) Exception(id string) (Exception, bool) {
	i, ok := l.exceptionsByID[strings.ToLower(id)]
	if !ok {
		return Exception{}, false
	}
	return l.Exceptions[i], true
}

// HasException reports whether the identifier is in the exception
// list.
func (l *List) HasException(id string) bool {
	_, ok := l.exceptionsByID[strings.ToLower(id)]
	return ok
}

// UnknownLicenses returns the license identifiers in expr that the
// list does not know, in expression order. Self-describing
// identifiers are never reported: LicenseRef- and DocumentRef-
// references and the NOASSERTION and NONE markers.
func (l *List) UnknownLicenses(expr *license.Expression) []string {
	var unknown []string
	for _, id := range expr.Licenses() {
		if id == license.NoAssertion || id == license.None {
			continue
		}
		if strings.HasPrefix(id, "LicenseRef-") || strings.HasPrefix(id, "DocumentRef-") {
			continue
		}
		if !l.HasLicense(id) {
			unknown = append(unknown, id)
		}
	}
	return unknown
}

// UnknownExceptions returns the exception identifiers in expr that the
// list does not know, in expression order.
func (l *List) UnknownExceptions(expr *license.Expression) []string {
	var unknown []string
	for _, id := range expr.Exceptions() {
		if !l.HasException(id) {
			unknown = append(unknown, id)
		}
	}
	return unknown
}
