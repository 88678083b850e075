package entitlement

import (
	"fmt"

	"github.com/stagecrew/stagekit/pkg/plan"
	"github.com/stagecrew/stagekit/pkg/role"
)

// resourceNouns supplies the words used in user-facing denial messages.
var resourceNouns = map[plan.Resource]struct{ singular, plural string }{
	plan.ResourceShows:                {"show", "shows"},
	plan.ResourceArchivedShows:        {"archived show", "archived shows"},
	plan.ResourceBoards:               {"task board", "task boards"},
	plan.ResourceProps:                {"prop", "props"},
	plan.ResourcePackingBoxes:         {"packing box", "packing boxes"},
	plan.ResourceCollaborators:        {"collaborator", "collaborators"},
	plan.ResourceBoardsPerShow:        {"task board", "task boards"},
	plan.ResourcePropsPerShow:         {"prop", "props"},
	plan.ResourcePackingBoxesPerShow:  {"packing box", "packing boxes"},
	plan.ResourceCollaboratorsPerShow: {"collaborator", "collaborators"},
}

func nouns(res plan.Resource) (string, string) {
	if n, ok := resourceNouns[res]; ok {
		return n.singular, n.plural
	}
	return "item", "items"
}

// LimitMessage renders the user-facing denial message for an exhausted quota.
// It is suitable for direct display next to an upgrade prompt.
func LimitMessage(res plan.Resource, limit int64) string {
	singular, plural := nouns(res)
	if plan.IsPerShow(res) {
		return fmt.Sprintf("This show has reached its %s limit of %d. Upgrade to add more %s.", singular, limit, plural)
	}
	return fmt.Sprintf("You have reached your plan's %s limit of %d. Upgrade to create more %s.", singular, limit, plural)
}

// IsExempt reports whether the context's profile holds an exempt role, for
// which every quota comparison short-circuits to unlimited.
func IsExempt(ctx EvalContext) bool {
	return role.IsExempt(ctx.Profile.EffectiveRole())
}

// CanPerformAction decides whether the profile may perform the named action.
// Unknown actions are denied: an unrecognized capability request is never
// assumed safe. This is deliberately the opposite policy from quota checks,
// which fail open on data-fetch errors.
func CanPerformAction(action Action, ctx EvalContext) Result {
	if IsExempt(ctx) {
		return allow()
	}

	cap, ok := actionCapabilities[action]
	if !ok {
		return deny(fmt.Sprintf("unknown action %q", action))
	}

	if !ctx.Profile.HasCapability(cap) {
		return deny(fmt.Sprintf("role %s is not allowed to %s", role.DisplayName(ctx.Profile.EffectiveRole()), action))
	}

	return allow()
}

// CheckLimit compares a current resource count against the effective limit.
// The limit is an exclusive upper bound: a count equal to it is already over
// quota. Negative counts (defensive case) are treated as zero. Exempt roles
// and the Unlimited sentinel always pass.
func CheckLimit(profile *role.UserProfile, limits plan.Limits, currentCount int64, res plan.Resource) LimitCheckResult {
	if currentCount < 0 {
		currentCount = 0
	}

	perShow := plan.IsPerShow(res)

	if role.IsExempt(profile.EffectiveRole()) {
		return LimitCheckResult{
			WithinLimit:  true,
			CurrentCount: currentCount,
			Limit:        plan.Unlimited,
			PerShow:      perShow,
		}
	}

	limit := limits.Quota(res)
	if plan.IsUnlimited(limit) {
		return LimitCheckResult{
			WithinLimit:  true,
			CurrentCount: currentCount,
			Limit:        plan.Unlimited,
			PerShow:      perShow,
		}
	}

	if currentCount < limit {
		return LimitCheckResult{
			WithinLimit:  true,
			CurrentCount: currentCount,
			Limit:        limit,
			PerShow:      perShow,
		}
	}

	return LimitCheckResult{
		WithinLimit:  false,
		CurrentCount: currentCount,
		Limit:        limit,
		PerShow:      perShow,
		Message:      LimitMessage(res, limit),
	}
}

// CanCreateResource decides whether one more resource of the given type may
// be created, as a Result carrying the denial message when over quota.
func CanCreateResource(profile *role.UserProfile, limits plan.Limits, currentCount int64, res plan.Resource) Result {
	check := CheckLimit(profile, limits, currentCount, res)
	if check.WithinLimit {
		return allow()
	}
	return deny(check.Message)
}
