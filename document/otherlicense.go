package document

// OtherLicensingInfo describes licensing observed in the analyzed
// material that has no SPDX license list id, keyed by a LicenseRef-
// identifier that expressions elsewhere in the document can reference.
type OtherLicensingInfo struct {
	// Identifier is the LicenseRef- id, e.g. "LicenseRef-Beerware-4.2".
	Identifier string `json:"licenseId" yaml:"licenseId"`

	// ExtractedText is the verbatim license text found.
	ExtractedText string `json:"extractedText" yaml:"extractedText"`

	// Name is a human-readable license name, "NOASSERTION" when unknown.
	Name string `json:"name" yaml:"name"`

	// CrossReferences are URLs with further information.
	CrossReferences []string `json:"seeAlsos,omitempty" yaml:"seeAlsos,omitempty"`

	// Comment is an optional free-text note.
	Comment string `json:"comment,omitempty" yaml:"comment,omitempty"`
}
