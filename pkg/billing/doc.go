// Package billing abstracts the billing vendor behind the Provider interface
// and ships a Paddle adapter.
//
// Plan limits are authored as custom data on Paddle products, so the pricing
// team can tune quotas from the dashboard; FetchPlanConfigs pulls them down
// as raw key/value metadata for pkg/plan to parse. The package also reads
// per-user subscription status documents (written by the webhook pipeline,
// which lives outside this module) and maps them to a plan key, defaulting
// to free whenever the record is missing or not in an entitling state.
//
//	provider, err := billing.NewPaddleProvider(cfg)
//	if err != nil {
//		return err
//	}
//	configs, err := provider.FetchPlanConfigs(ctx)
//
// Checkout and customer portal links are thin passthroughs to Paddle's hosted
// surfaces; no card data or payment state touches this code.
package billing
