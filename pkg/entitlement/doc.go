// Package entitlement is the core decision engine: pure functions that
// answer, for a given profile, effective limits, and current counts, whether
// an action or resource creation is allowed.
//
// The engine holds no state and performs no I/O. Orchestration - fetching
// counts, resolving limits, fail-open policies - lives in pkg/limitcheck and
// svc/access; this package only compares.
//
// Decision classes:
//
//   - CanPerformAction: capability lookup via a static action table, with
//     explicit per-user overrides winning over role defaults. Unknown
//     actions are denied; an unrecognized request is never assumed safe.
//   - CheckLimit / CanCreateResource: quota comparison with an exclusive
//     upper bound (count == limit is over quota). Exempt roles and the
//     Unlimited sentinel always pass.
//
// Every denial carries a message fit for direct display:
//
//	res := entitlement.CanCreateResource(profile, limits, 100, plan.ResourceProps)
//	// res.Allowed == false
//	// res.Reason == "You have reached your plan's prop limit of 100. ..."
package entitlement
