package plan

// Resource represents a countable quota-consuming resource type.
// Per-show variants are distinct resources: the account-level and show-level
// quotas are tracked and checked independently.
type Resource string

// Per-account resources, counted across all of a user's shows.
const (
	ResourceShows         Resource = "shows"
	ResourceArchivedShows Resource = "archived_shows"
	ResourceBoards        Resource = "boards"
	ResourceProps         Resource = "props"
	ResourcePackingBoxes  Resource = "packing_boxes"
	ResourceCollaborators Resource = "collaborators"
)

// Per-show resources, counted within one show.
const (
	ResourceBoardsPerShow        Resource = "boards_per_show"
	ResourcePropsPerShow         Resource = "props_per_show"
	ResourcePackingBoxesPerShow  Resource = "packing_boxes_per_show"
	ResourceCollaboratorsPerShow Resource = "collaborators_per_show"
)

// Unlimited is the canonical sentinel for a resource with no limit.
// Every external representation ("unlimited" strings, oversized provider
// values) is converted to it at the parsing boundary.
const Unlimited int64 = -1

// IsUnlimited reports whether a limit value means "no limit".
func IsUnlimited(v int64) bool {
	return v == Unlimited
}

// IsPerShow reports whether the resource is a per-show quota.
func IsPerShow(res Resource) bool {
	switch res {
	case ResourceBoardsPerShow, ResourcePropsPerShow, ResourcePackingBoxesPerShow, ResourceCollaboratorsPerShow:
		return true
	}
	return false
}

// Feature is a plan-specific boolean feature flag.
type Feature string

const (
	FeatureExport           Feature = "export"
	FeatureAdvancedFeatures Feature = "advanced_features"
	FeatureCustomBranding   Feature = "custom_branding"
	FeaturePrioritySupport  Feature = "priority_support"
)

// Scope tags whether a limit value counts per account or per show.
type Scope string

const (
	ScopePerAccount Scope = "per_account"
	ScopePerShow    Scope = "per_show"
)

// ScopedLimit is a limit value tagged with its counting scope.
// Provider metadata is parsed into this form exactly once at the boundary;
// downstream code never re-parses strings.
type ScopedLimit struct {
	Scope Scope
	Value int64
}
