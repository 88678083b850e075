// Package plan models subscription tiers and their resource limits.
//
// A Limits record carries every quota in two forms - per-account (counted
// across all of a user's shows) and per-show (counted within one show) -
// plus boolean feature flags. Limits are derived, never stored per user:
// they come either from built-in tier defaults (ForKey) or from the billing
// provider's live configuration (ParseProviderMetadata).
//
// The canonical "no limit" sentinel is Unlimited (-1). Provider payloads
// that encode unlimited as the string "unlimited" or as a very large number
// are normalized at the parsing boundary; nothing downstream re-parses.
//
// Provider metadata is a flat string-keyed map. A bare numeric value is a
// per-account limit; a value suffixed with "/show" is a per-show limit:
//
//	limits := plan.ParseProviderMetadata(map[string]string{
//	    "shows":  "10",
//	    "props":  "100",
//	    "boards": "5/show",
//	    "export": "false",
//	})
//
// Absent keys fall back to documented per-field defaults (never zero), so an
// incomplete payload cannot silently lock out new users. Feature flags keep
// a deliberate per-field asymmetry: export and advanced_features default to
// enabled unless the payload says "false", custom_branding and
// priority_support default to disabled unless it says "true".
package plan
