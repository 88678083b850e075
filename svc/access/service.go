package access

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/stagecrew/stagekit/pkg/addon"
	"github.com/stagecrew/stagekit/pkg/billing"
	"github.com/stagecrew/stagekit/pkg/docstore"
	"github.com/stagecrew/stagekit/pkg/entitlement"
	"github.com/stagecrew/stagekit/pkg/limitcheck"
	"github.com/stagecrew/stagekit/pkg/logger"
	"github.com/stagecrew/stagekit/pkg/plan"
	"github.com/stagecrew/stagekit/pkg/role"
	"github.com/stagecrew/stagekit/pkg/viewcache"
)

const (
	usersCollection  = "users"
	addonsCollection = "user_addons"
)

// Service is the single entry point application handlers use for access
// decisions: who a user is, what their plan allows, whether an action or
// creation may proceed, and which view configuration to render.
type Service interface {
	// ResolveProfile loads a user's profile. It fails closed: any store
	// problem yields a viewer profile with no overrides.
	ResolveProfile(ctx context.Context, userID string) *role.UserProfile

	// EffectiveLimits resolves the user's plan limits with active add-ons
	// composed in. Billing problems degrade to built-in plan defaults.
	EffectiveLimits(ctx context.Context, userID string) plan.Limits

	// CanPerformAction decides a capability-gated action for the user.
	CanPerformAction(ctx context.Context, userID string, action entitlement.Action) entitlement.Result

	// CanCreateResource decides whether the user may create one more
	// resource of the given type, counting live documents.
	CanCreateResource(ctx context.Context, userID string, res plan.Resource) entitlement.Result

	// Limits returns the quota checker bound to the given user, for callers
	// that need the full per-resource result (count, limit, message).
	Limits(userID string) *limitcheck.Checker

	// ViewConfig returns the view configuration for the user's role in the
	// given show scope, cached for the configured TTL. An empty showID is
	// the global scope.
	ViewConfig(ctx context.Context, userID, showID string) role.ViewConfig
}

type service struct {
	store    docstore.Store
	status   *billing.StatusStore
	provider billing.Provider
	catalog  *addon.Catalog
	views    viewcache.Cache
	log      *slog.Logger
	now      func() time.Time

	planTTL   time.Duration
	planMu    sync.Mutex
	planCache map[plan.Key]plan.Limits
	planAt    time.Time
}

// NewService creates the access service. The document store is required;
// everything else has a default: built-in plan limits when no billing
// provider is configured, the default add-on catalog, and an in-memory view
// cache. Panics if store is nil.
func NewService(store docstore.Store, opts ...ServiceOption) (Service, error) {
	if store == nil {
		panic("access: document store is required")
	}

	s := &service{
		store:   store,
		status:  billing.NewStatusStore(store),
		catalog: addon.DefaultCatalog(),
		views:   viewcache.NewMemory(viewcache.DefaultTTL),
		log:     slog.Default(),
		now:     time.Now,
		planTTL: 10 * time.Minute,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

func (s *service) ResolveProfile(ctx context.Context, userID string) *role.UserProfile {
	if userID == "" {
		return viewerProfile("")
	}

	doc, err := s.store.GetDocument(ctx, usersCollection, userID)
	if err != nil {
		level := slog.LevelError
		if errors.Is(err, docstore.ErrNotFound) {
			level = slog.LevelWarn
		}
		s.log.Log(ctx, level, "profile resolution failed, falling back to viewer",
			logger.UserID(userID), logger.Error(err))
		return viewerProfile(userID)
	}

	return profileFromDocument(doc, s.log)
}

func (s *service) EffectiveLimits(ctx context.Context, userID string) plan.Limits {
	key, err := s.status.PlanKeyFor(ctx, userID)
	if err != nil {
		s.log.Error("subscription status lookup failed, assuming free plan",
			logger.UserID(userID), logger.Error(err))
		key = plan.KeyFree
	}

	base := s.baseLimits(ctx, key)

	docs, err := s.store.GetDocuments(ctx, addonsCollection, map[string]any{"userId": userID})
	if err != nil {
		s.log.Error("add-on lookup failed, using plan limits without add-ons",
			logger.UserID(userID), logger.Plan(string(key)), logger.Error(err))
		return base
	}

	addons := make([]addon.UserAddOn, 0, len(docs))
	for _, doc := range docs {
		addons = append(addons, addOnFromDocument(doc))
	}

	return addon.EffectiveLimits(base, addon.Active(addons, s.now()), s.catalog)
}

// baseLimits resolves the plan's limits from the billing provider's live
// configuration, falling back to built-ins when no provider is configured
// or the fetch fails. Fetched configurations are cached for planTTL; a
// failed refresh keeps serving the stale copy.
func (s *service) baseLimits(ctx context.Context, key plan.Key) plan.Limits {
	if s.provider == nil {
		return plan.ForKey(key)
	}

	s.planMu.Lock()
	defer s.planMu.Unlock()

	if s.planCache == nil || s.now().Sub(s.planAt) >= s.planTTL {
		configs, err := s.provider.FetchPlanConfigs(ctx)
		if err != nil {
			s.log.Error("plan config fetch failed", logger.Error(err))
			if s.planCache == nil {
				return plan.ForKey(key)
			}
		} else {
			fresh := make(map[plan.Key]plan.Limits, len(configs))
			for _, cfg := range configs {
				fresh[cfg.PlanKey] = plan.ParseProviderMetadata(cfg.Metadata)
			}
			s.planCache = fresh
			s.planAt = s.now()
		}
	}

	if limits, ok := s.planCache[key]; ok {
		return limits.Clone()
	}
	return plan.ForKey(key)
}

func (s *service) CanPerformAction(ctx context.Context, userID string, action entitlement.Action) entitlement.Result {
	profile := s.ResolveProfile(ctx, userID)
	return entitlement.CanPerformAction(action, entitlement.EvalContext{
		Profile: profile,
		Limits:  s.EffectiveLimits(ctx, userID),
	})
}

func (s *service) CanCreateResource(ctx context.Context, userID string, res plan.Resource) entitlement.Result {
	checker := s.Limits(userID)

	var check entitlement.LimitCheckResult
	switch res {
	case plan.ResourceShows:
		check = checker.CheckShowLimit(ctx, userID)
	case plan.ResourceArchivedShows:
		check = checker.CheckArchivedShowLimit(ctx, userID)
	case plan.ResourceBoards:
		check = checker.CheckBoardLimit(ctx, userID)
	case plan.ResourceProps:
		check = checker.CheckPropLimit(ctx, userID)
	case plan.ResourcePackingBoxes:
		check = checker.CheckPackingBoxLimit(ctx, userID)
	default:
		// Per-show resources need a show ID; reach for Limits directly.
		return entitlement.Result{Allowed: false, Reason: "unknown account resource: " + string(res)}
	}

	if check.WithinLimit {
		return entitlement.Result{Allowed: true}
	}
	return entitlement.Result{Allowed: false, Reason: check.Message}
}

func (s *service) Limits(userID string) *limitcheck.Checker {
	return limitcheck.NewChecker(
		s.store,
		func(ctx context.Context) *role.UserProfile { return s.ResolveProfile(ctx, userID) },
		func(ctx context.Context) plan.Limits { return s.EffectiveLimits(ctx, userID) },
		s.log,
	)
}

func (s *service) ViewConfig(ctx context.Context, userID, showID string) role.ViewConfig {
	profile := s.ResolveProfile(ctx, userID)
	key := viewcache.Key{UserID: userID, ShowID: showID, Role: profile.EffectiveRole()}

	if cfg, ok := s.views.Get(ctx, key); ok {
		return cfg
	}

	cfg := role.ConfigForRole(profile.EffectiveRole())
	s.views.Set(ctx, key, cfg)
	return cfg
}

// viewerProfile is the fail-closed identity: minimum privileges, no overrides.
func viewerProfile(userID string) *role.UserProfile {
	return &role.UserProfile{ID: userID, Role: role.RoleViewer}
}
