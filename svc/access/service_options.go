package access

import (
	"log/slog"
	"time"

	"github.com/stagecrew/stagekit/pkg/addon"
	"github.com/stagecrew/stagekit/pkg/billing"
	"github.com/stagecrew/stagekit/pkg/viewcache"
)

// ServiceOption configures a Service instance.
type ServiceOption func(*service)

// WithBillingProvider enables live plan configuration from the billing
// provider. Without it, built-in plan limits are used.
func WithBillingProvider(provider billing.Provider) ServiceOption {
	return func(s *service) {
		if provider != nil {
			s.provider = provider
		}
	}
}

// WithCatalog replaces the built-in add-on catalog.
func WithCatalog(catalog *addon.Catalog) ServiceOption {
	return func(s *service) {
		if catalog != nil {
			s.catalog = catalog
		}
	}
}

// WithViewCache replaces the default in-memory view configuration cache,
// typically with the Redis backend when several instances share load.
func WithViewCache(cache viewcache.Cache) ServiceOption {
	return func(s *service) {
		if cache != nil {
			s.views = cache
		}
	}
}

// WithLogger sets the structured logger.
func WithLogger(log *slog.Logger) ServiceOption {
	return func(s *service) {
		if log != nil {
			s.log = log
		}
	}
}

// WithPlanRefreshTTL sets how long fetched provider plan configurations are
// served before a refresh is attempted.
func WithPlanRefreshTTL(ttl time.Duration) ServiceOption {
	return func(s *service) {
		if ttl > 0 {
			s.planTTL = ttl
		}
	}
}

// WithClock overrides the time source, used by tests exercising add-on
// expiry and plan cache refresh.
func WithClock(now func() time.Time) ServiceOption {
	return func(s *service) {
		if now != nil {
			s.now = now
		}
	}
}
