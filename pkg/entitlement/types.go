package entitlement

import (
	"github.com/stagecrew/stagekit/pkg/plan"
	"github.com/stagecrew/stagekit/pkg/role"
)

// Counts is a fresh snapshot of how many of each resource a user currently
// owns. It is fetched per evaluation, never cached across renders.
type Counts map[plan.Resource]int64

// EvalContext is the single input to every evaluator decision: the acting
// profile, the effective subscription limits, and current resource counts.
// It is constructed fresh per evaluation and never mutated.
type EvalContext struct {
	Profile *role.UserProfile
	Limits  plan.Limits
	Counts  Counts
}

// Result is the outcome of a capability decision. Never partially filled:
// a denied result always carries a human-readable reason.
type Result struct {
	Allowed bool
	Reason  string
}

// LimitCheckResult is the outcome of a quota decision. CurrentCount and
// Limit are always populated, even on the fail-open paths, so screens can
// render usage meters directly from it.
type LimitCheckResult struct {
	WithinLimit  bool
	CurrentCount int64
	Limit        int64
	PerShow      bool
	Message      string
}

func allow() Result {
	return Result{Allowed: true}
}

func deny(reason string) Result {
	return Result{Allowed: false, Reason: reason}
}
