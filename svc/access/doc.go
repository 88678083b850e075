// Package access composes the role, plan, add-on, entitlement, and limit
// packages into the one service application handlers talk to.
//
// Wiring happens in the caller's composition root with explicit options;
// the service holds no global state beyond its own caches:
//
//	store, err := docstore.ConnectMongo(ctx, mongoCfg)
//	if err != nil {
//		return err
//	}
//	provider, err := billing.NewPaddleProvider(paddleCfg)
//	if err != nil {
//		return err
//	}
//	svc, err := access.NewService(store,
//		access.WithBillingProvider(provider),
//		access.WithViewCache(viewcache.NewRedis(redisClient, viewcache.DefaultTTL)),
//		access.WithLogger(log),
//	)
//
// Failure posture is deliberate and asymmetric. Identity fails closed: a
// user the store cannot produce is a viewer. Quotas fail open: a count the
// store cannot produce never blocks a creation. Billing degrades to built-in
// plan defaults. The result is that infrastructure trouble can never lock a
// props supervisor out of their own show, and can never grant a viewer more
// than viewing.
package access
