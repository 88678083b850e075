// Package viewcache memoizes per-role view configurations so clients do not
// recompute tab layouts and toggle sets on every request.
//
// Entries are keyed by (user, show, role); an empty show ID is normalized to
// the global scope. Two interchangeable backends implement Cache: Memory for
// a single process and Redis for fleets that share warmed entries. Both treat
// expiry and any backend error as a plain miss, because a view configuration
// is always cheap and safe to rebuild.
//
//	cache := viewcache.NewMemory(viewcache.DefaultTTL)
//	key := viewcache.Key{UserID: user.ID, Role: user.EffectiveRole()}
//	cfg, ok := cache.Get(ctx, key)
//	if !ok {
//		cfg = role.ConfigForRole(user.EffectiveRole())
//		cache.Set(ctx, key, cfg)
//	}
//
// Invalidation is coarse on purpose: Clear drops everything. Role changes are
// rare enough that waiting out the TTL, or clearing the whole cache, beats
// tracking per-user dependencies.
package viewcache
