// Package limitcheck orchestrates per-resource quota checks against the
// document store.
//
// Each operation resolves the acting profile and effective limits, queries
// the relevant collection with an equality filter, and delegates the
// comparison to pkg/entitlement. Counts are fetched fresh on every call
// so results reflect the latest store state.
//
// The package encodes the store schema contract: props count by userId;
// shows, task boards, and packing boxes by ownerId; per-show variants by
// showId. Archived and live shows share one collection, split by the
// archived flag.
//
// Failure policy is fail-open: an empty id or a store error returns
// withinLimit=true (count 0, configured limit) and logs the event for
// operators. Blocking a legitimate user over a transient outage costs more
// than a transient over-quota state, which out-of-band reconciliation
// corrects. Two near-simultaneous checks can likewise both pass at one
// remaining slot; the engine deliberately takes no lock.
package limitcheck
