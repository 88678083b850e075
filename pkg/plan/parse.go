package plan

import (
	"strconv"
	"strings"
)

// perShowMarker is the suffix the billing provider appends to a numeric
// metadata value to mark it as a per-show limit ("25/show"). A bare numeric
// value is a per-account limit.
const perShowMarker = "/show"

// providerUnlimitedThreshold normalizes provider payloads that encode
// "unlimited" as a very large finite number. Anything at or above it becomes
// the canonical Unlimited sentinel.
const providerUnlimitedThreshold int64 = 1_000_000_000

// fallbackQuotas are the documented per-field defaults applied when a
// provider payload omits or mangles a field. They mirror the starter tier:
// deliberately not zero, so an incomplete payload never blocks new users.
var fallbackQuotas = map[Resource]int64{
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
}

func fallbackQuota(res Resource) int64 {
	if v, ok := fallbackQuotas[res]; ok {
		return v
	}
	return 0
}

// perShowVariant maps a per-account resource to its per-show counterpart.
// Shows themselves have no per-show variant.
var perShowVariant = map[Resource]Resource{
	ResourceBoards:        ResourceBoardsPerShow,
	ResourceProps:         ResourcePropsPerShow,
	ResourcePackingBoxes:  ResourcePackingBoxesPerShow,
	ResourceCollaborators: ResourceCollaboratorsPerShow,
}

// featureDefaults records the per-flag parsing asymmetry: export and
// advanced_features are enabled unless the payload says the literal "false";
// custom_branding and priority_support are disabled unless it says "true".
// The asymmetry is intentional and must be preserved per field.
var featureDefaults = map[Feature]bool{
	FeatureExport:           true,
	FeatureAdvancedFeatures: true,
	FeatureCustomBranding:   false,
	FeaturePrioritySupport:  false,
}

// featureOrder keeps parsed feature slices deterministic.
var featureOrder = []Feature{
	FeatureExport,
	FeatureAdvancedFeatures,
	FeatureCustomBranding,
	FeaturePrioritySupport,
}

// ParseScopedLimit parses one provider metadata value into a tagged
// ScopedLimit. It reports ok=false for values that are not a limit at all;
// callers then apply the field default. Parsing happens exactly once here;
// downstream code only ever sees tagged values.
func ParseScopedLimit(raw string) (ScopedLimit, bool) {
	value := strings.TrimSpace(strings.ToLower(raw))
	if value == "" {
		return ScopedLimit{}, false
	}

	scope := ScopePerAccount
	if strings.HasSuffix(value, perShowMarker) {
		scope = ScopePerShow
		value = strings.TrimSpace(strings.TrimSuffix(value, perShowMarker))
	}

	if value == "unlimited" {
		return ScopedLimit{Scope: scope, Value: Unlimited}, true
	}

	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return ScopedLimit{}, false
	}

	switch {
	case n == Unlimited || n >= providerUnlimitedThreshold:
		return ScopedLimit{Scope: scope, Value: Unlimited}, true
	case n < 0:
		return ScopedLimit{}, false
	}

	return ScopedLimit{Scope: scope, Value: n}, true
}

// ParseProviderMetadata converts a billing provider's flat string-keyed
// limits map into a complete Limits record. Absent or malformed fields fall
// back to documented defaults; the function never fails.
func ParseProviderMetadata(meta map[string]string) Limits {
	quotas := make(map[Resource]int64, len(fallbackQuotas))

	for key, raw := range meta {
		res := Resource(strings.TrimSpace(key))
		if _, known := fallbackQuotas[res]; !known {
			continue
		}

		sl, ok := ParseScopedLimit(raw)
		if !ok {
			continue
		}

		target := res
		if sl.Scope == ScopePerShow && !IsPerShow(res) {
			variant, ok := perShowVariant[res]
			if !ok {
				// Shows carry no per-show quota; a stray marker
				// normalizes to the per-account slot.
				variant = res
			}
			target = variant
		}
		quotas[target] = sl.Value
	}

	// Fill the gaps so the record is always complete.
	for res, def := range fallbackQuotas {
		if _, ok := quotas[res]; !ok {
			quotas[res] = def
		}
	}

	features := make([]Feature, 0, len(featureOrder))
	for _, f := range featureOrder {
		enabled := featureDefaults[f]
		if raw, ok := meta[string(f)]; ok {
			switch strings.TrimSpace(strings.ToLower(raw)) {
			case "true":
				enabled = true
			case "false":
				enabled = false
			}
		}
		if enabled {
			features = append(features, f)
		}
	}

	return Limits{Quotas: quotas, Features: features}
}
