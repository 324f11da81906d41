package document

import "strings"

// RelationshipType is how one SPDX element relates to another, spelled
// as the SPDX schema does.
type RelationshipType string

const (
	RelationshipDescribes                 RelationshipType = "DESCRIBES"
	RelationshipDescribedBy               RelationshipType = "DESCRIBED_BY"
	RelationshipContains                  RelationshipType = "CONTAINS"
	RelationshipContainedBy               RelationshipType = "CONTAINED_BY"
	RelationshipDependsOn                 RelationshipType = "DEPENDS_ON"
	RelationshipDependencyOf              RelationshipType = "DEPENDENCY_OF"
	RelationshipDependencyManifestOf      RelationshipType = "DEPENDENCY_MANIFEST_OF"
	RelationshipBuildDependencyOf         RelationshipType = "BUILD_DEPENDENCY_OF"
	RelationshipDevDependencyOf           RelationshipType = "DEV_DEPENDENCY_OF"
	RelationshipOptionalDependencyOf      RelationshipType = "OPTIONAL_DEPENDENCY_OF"
	RelationshipProvidedDependencyOf      RelationshipType = "PROVIDED_DEPENDENCY_OF"
	RelationshipTestDependencyOf          RelationshipType = "TEST_DEPENDENCY_OF"
	RelationshipRuntimeDependencyOf       RelationshipType = "RUNTIME_DEPENDENCY_OF"
	RelationshipExampleOf                 RelationshipType = "EXAMPLE_OF"
	RelationshipGenerates                 RelationshipType = "GENERATES"
	RelationshipGeneratedFrom             RelationshipType = "GENERATED_FROM"
	RelationshipAncestorOf                RelationshipType = "ANCESTOR_OF"
	RelationshipDescendantOf              RelationshipType = "DESCENDANT_OF"
	RelationshipVariantOf                 RelationshipType = "VARIANT_OF"
	RelationshipDistributionArtifact      RelationshipType = "DISTRIBUTION_ARTIFACT"
	RelationshipPatchFor                  RelationshipType = "PATCH_FOR"
	RelationshipPatchApplied              RelationshipType = "PATCH_APPLIED"
	RelationshipCopyOf                    RelationshipType = "COPY_OF"
	RelationshipFileAdded                 RelationshipType = "FILE_ADDED"
	RelationshipFileDeleted               RelationshipType = "FILE_DELETED"
	RelationshipFileModified              RelationshipType = "FILE_MODIFIED"
	RelationshipExpandedFromArchive       RelationshipType = "EXPANDED_FROM_ARCHIVE"
	RelationshipDynamicLink               RelationshipType = "DYNAMIC_LINK"
	RelationshipStaticLink                RelationshipType = "STATIC_LINK"
	RelationshipDataFileOf                RelationshipType = "DATA_FILE_OF"
	RelationshipTestCaseOf                RelationshipType = "TEST_CASE_OF"
	RelationshipBuildToolOf               RelationshipType = "BUILD_TOOL_OF"
	RelationshipDevToolOf                 RelationshipType = "DEV_TOOL_OF"
	RelationshipTestOf                    RelationshipType = "TEST_OF"
	RelationshipTestToolOf                RelationshipType = "TEST_TOOL_OF"
	RelationshipDocumentationOf           RelationshipType = "DOCUMENTATION_OF"
	RelationshipOptionalComponentOf       RelationshipType = "OPTIONAL_COMPONENT_OF"
	RelationshipMetafileOf                RelationshipType = "METAFILE_OF"
	RelationshipPackageOf                 RelationshipType = "PACKAGE_OF"
	RelationshipAmends                    RelationshipType = "AMENDS"
	RelationshipPrerequisiteFor           RelationshipType = "PREREQUISITE_FOR"
	RelationshipHasPrerequisite           RelationshipType = "HAS_PREREQUISITE"
	RelationshipRequirementDescriptionFor RelationshipType = "REQUIREMENT_DESCRIPTION_FOR"
	RelationshipSpecificationFor          RelationshipType = "SPECIFICATION_FOR"
	RelationshipOther                     RelationshipType = "OTHER"
)

var relationshipTypes = map[RelationshipType]struct{}{
	RelationshipDescribes: {}, RelationshipDescribedBy: {},
	RelationshipContains: {}, RelationshipContainedBy: {},
	RelationshipDependsOn: {}, RelationshipDependencyOf: {},
	RelationshipDependencyManifestOf: {}, RelationshipBuildDependencyOf: {},
	RelationshipDevDependencyOf: {}, RelationshipOptionalDependencyOf: {},
	RelationshipProvidedDependencyOf: {}, RelationshipTestDependencyOf: {},
	RelationshipRuntimeDependencyOf: {}, RelationshipExampleOf: {},
	RelationshipGenerates: {}, RelationshipGeneratedFrom: {},
	RelationshipAncestorOf: {}, RelationshipDescendantOf: {},
	RelationshipVariantOf: {}, RelationshipDistributionArtifact: {},
	RelationshipPatchFor: {}, RelationshipPatchApplied: {},
	RelationshipCopyOf: {}, RelationshipFileAdded: {},
	RelationshipFileDeleted: {}, RelationshipFileModified: {},
	RelationshipExpandedFromArchive: {}, RelationshipDynamicLink: {},
	RelationshipStaticLink: {}, RelationshipDataFileOf: {},
	RelationshipTestCaseOf: {}, RelationshipBuildToolOf: {},
	RelationshipDevToolOf: {}, RelationshipTestOf: {},
	RelationshipTestToolOf: {}, RelationshipDocumentationOf: {},
	RelationshipOptionalComponentOf: {}, RelationshipMetafileOf: {},
	RelationshipPackageOf: {}, RelationshipAmends: {},
	RelationshipPrerequisiteFor: {}, RelationshipHasPrerequisite: {},
	RelationshipRequirementDescriptionFor: {}, RelationshipSpecificationFor: {},
	RelationshipOther: {},
}

// ParseRelationshipType matches s against the SPDX relationship types.
// Matching is case-insensitive because tag-value producers disagree on
// case; the canonical uppercase form is returned.
func ParseRelationshipType(s string) (RelationshipType, bool) {
	relType := RelationshipType(strings.ToUpper(s))
	_, ok := relationshipTypes[relType]
	return relType, ok
}

// Relationship states that one SPDX element relates to another, e.g.
// that a package CONTAINS a file.
type Relationship struct {
	// Element is the SPDX identifier of the relating element.
	Element string `json:"spdxElementId" yaml:"spdxElementId"`

	// Type is the kind of relationship.
	Type RelationshipType `json:"relationshipType" yaml:"relationshipType"`

	// Related is the SPDX identifier of the related element.
	Related string `json:"relatedSpdxElement" yaml:"relatedSpdxElement"`

	// Comment is an optional free-text note.
	Comment string `json:"comment,omitempty" yaml:"comment,omitempty"`
}
