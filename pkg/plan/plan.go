package plan

import (
	"maps"
	"slices"
)

// Key identifies a subscription tier.
type Key string

const (
	KeyFree     Key = "free"
	KeyStarter  Key = "starter"
	KeyStandard Key = "standard"
	KeyPro      Key = "pro"
)

// ParseKey maps a plan identifier string to a Key.
// Anything unrecognized (including empty) maps to free.
func ParseKey(s string) Key {
	switch Key(s) {
	case KeyFree, KeyStarter, KeyStandard, KeyPro:
		return Key(s)
	}
	return KeyFree
}

// Limits is the full quota record for a plan: per-account and per-show
// numeric quotas plus boolean feature flags.
type Limits struct {
	Quotas   map[Resource]int64
	Features []Feature
}

// Quota returns the limit for a resource. A resource absent from the record
// falls back to the documented per-field default rather than zero, so an
// incomplete record never silently blocks users.
func (l Limits) Quota(res Resource) int64 {
	if v, ok := l.Quotas[res]; ok {
		return v
	}
	return fallbackQuota(res)
}

// HasFeature reports whether the plan enables the feature flag.
func (l Limits) HasFeature(f Feature) bool {
	return slices.Contains(l.Features, f)
}

// Clone returns a deep copy safe for the caller to modify.
func (l Limits) Clone() Limits {
	return Limits{
		Quotas:   maps.Clone(l.Quotas),
		Features: slices.Clone(l.Features),
	}
}

// builtinLimits holds the static defaults per tier, used whenever the billing
// provider's live configuration is unavailable.
var builtinLimits = map[Key]Limits{
	KeyFree: {
		Quotas: map[Resource]int64{
			ResourceShows:                1,
			ResourceArchivedShows:        1,
			ResourceBoards:               3,
			ResourceProps:                25,
			ResourcePackingBoxes:         10,
			ResourceCollaborators:        2,
			ResourceBoardsPerShow:        3,
			ResourcePropsPerShow:         25,
			ResourcePackingBoxesPerShow:  10,
			ResourceCollaboratorsPerShow: 2,
		},
		Features: []Feature{},
	},
	KeyStarter: {
		Quotas: map[Resource]int64{
			ResourceShows:                3,
			ResourceArchivedShows:        5,
			ResourceBoards:               10,
			ResourceProps:                50,
			ResourcePackingBoxes:         50,
			ResourceCollaborators:        5,
			ResourceBoardsPerShow:        5,
			ResourcePropsPerShow:         50,
			ResourcePackingBoxesPerShow:  25,
			ResourceCollaboratorsPerShow: 5,
		},
		Features: []Feature{FeatureExport},
	},
	KeyStandard: {
		Quotas: map[Resource]int64{
			ResourceShows:                10,
			ResourceArchivedShows:        15,
			ResourceBoards:               25,
			ResourceProps:                100,
			ResourcePackingBoxes:         200,
			ResourceCollaborators:        10,
			ResourceBoardsPerShow:        10,
			ResourcePropsPerShow:         100,
			ResourcePackingBoxesPerShow:  50,
			ResourceCollaboratorsPerShow: 10,
		},
		Features: []Feature{FeatureExport, FeatureAdvancedFeatures},
	},
	KeyPro: {
		Quotas: map[Resource]int64{
			ResourceShows:                Unlimited,
			ResourceArchivedShows:        Unlimited,
			ResourceBoards:               Unlimited,
			ResourceProps:                Unlimited,
			ResourcePackingBoxes:         Unlimited,
			ResourceCollaborators:        Unlimited,
			ResourceBoardsPerShow:        Unlimited,
			ResourcePropsPerShow:         Unlimited,
			ResourcePackingBoxesPerShow:  Unlimited,
			ResourceCollaboratorsPerShow: 25,
		},
		Features: []Feature{FeatureExport, FeatureAdvancedFeatures, FeatureCustomBranding, FeaturePrioritySupport},
	},
}

// ForKey returns the built-in default limits for a tier.
// Unknown keys map to the free tier. The result is a copy.
func ForKey(key Key) Limits {
	limits, ok := builtinLimits[key]
	if !ok {
		limits = builtinLimits[KeyFree]
	}
	return limits.Clone()
}
