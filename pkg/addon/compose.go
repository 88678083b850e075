package addon

import (
	"time"

	"github.com/stagecrew/stagekit/pkg/plan"
)

// Active filters purchased add-ons down to the ones that count at the given
// instant: status active and not past their expiry timestamp. The input is
// never modified.
func Active(addons []UserAddOn, now time.Time) []UserAddOn {
	out := make([]UserAddOn, 0, len(addons))
	for _, a := range addons {
		if a.IsActiveAt(now) {
			out = append(out, a)
		}
	}
	return out
}

// EffectiveLimits composes a base plan's limits with the user's active
// add-ons. Per add-on type, quantities are summed across all matching active
// purchases and added to the corresponding per-account quota. Per-show
// quotas, collaborators, and feature flags pass through unchanged.
//
// An add-on referencing a catalog id that no longer exists contributes zero;
// it neither fails the composition nor blocks the remaining add-ons.
// An Unlimited base quota stays unlimited regardless of add-ons.
func EffectiveLimits(base plan.Limits, active []UserAddOn, catalog *Catalog) plan.Limits {
	out := base.Clone()
	if catalog == nil || len(active) == 0 {
		return out
	}
	if out.Quotas == nil {
		out.Quotas = make(map[plan.Resource]int64)
	}

	sums := make(map[plan.Resource]int64, len(additiveResource))
	for _, a := range active {
		def, ok := catalog.Lookup(a.DefinitionID)
		if !ok {
			continue
		}
		res, ok := additiveResource[def.Type]
		if !ok {
			continue
		}
		sums[res] += def.Quantity
	}

	for res, extra := range sums {
		current := out.Quota(res)
		if plan.IsUnlimited(current) {
			continue
		}
		out.Quotas[res] = current + extra
	}

	return out
}
