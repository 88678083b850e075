// Package addon composes purchased add-ons into effective subscription
// limits.
//
// An add-on is a purchasable increment to exactly one additive per-account
// quota (shows, props, packing boxes, archived shows). It references a
// catalog definition by id; the catalog is a static versioned list held
// fully in memory, loadable from YAML for deployments that tweak pricing.
//
// Lifecycle filtering happens at read time: Active keeps purchases whose
// stored status is active and whose expiry, if any, lies in the future. A
// record that still says active but has an expiry in the past is excluded -
// billing webhooks can lag.
//
//	active := addon.Active(purchases, time.Now())
//	limits := addon.EffectiveLimits(plan.ForKey(plan.KeyStandard), active, addon.DefaultCatalog())
//
// Composition is forgiving: an add-on pointing at a removed catalog entry
// contributes zero and never blocks the remaining add-ons. Per-show quotas
// and feature flags are plan-level and pass through untouched.
package addon
