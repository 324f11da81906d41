package document

import "time"

// AnnotationType distinguishes review records from other annotations.
type AnnotationType string

const (
	AnnotationReview AnnotationType = "REVIEW"
	AnnotationOther  AnnotationType = "OTHER"
)

// ParseAnnotationType matches s against the SPDX annotation types.
func ParseAnnotationType(s string) (AnnotationType, bool) {
	switch annType := AnnotationType(s); annType {
	case AnnotationReview, AnnotationOther:
		return annType, true
	default:
		return "", false
	}
}

// Annotation is a dated remark attached to an SPDX element by a person,
// organization or tool.
type Annotation struct {
	// Annotator identifies who made the annotation, in the SPDX
	// "Person: name (email)" / "Organization: ..." / "Tool: ..." form.
	Annotator string `json:"annotator" yaml:"annotator"`

	// Date is when the annotation was made, UTC.
	Date time.Time `json:"annotationDate" yaml:"annotationDate"`

	// Type is the kind of annotation.
	Type AnnotationType `json:"annotationType" yaml:"annotationType"`

	// Reference is the SPDX identifier the annotation applies to.
	Reference string `json:"spdxIdentifierReference,omitempty" yaml:"spdxIdentifierReference,omitempty"`

	// Comment is the annotation text.
	Comment string `json:"comment" yaml:"comment"`
}
