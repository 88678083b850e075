package access_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stagecrew/stagekit/pkg/billing"
	"github.com/stagecrew/stagekit/pkg/docstore"
	"github.com/stagecrew/stagekit/pkg/entitlement"
	"github.com/stagecrew/stagekit/pkg/plan"
	"github.com/stagecrew/stagekit/pkg/role"
	"github.com/stagecrew/stagekit/svc/access"
)

// stubProvider is a billing.Provider serving canned plan configs.
type stubProvider struct {
	configs []billing.PlanConfig
	err     error
	calls   int
}

func (p *stubProvider) FetchPlanConfigs(ctx context.Context) ([]billing.PlanConfig, error) {
	p.calls++
	return p.configs, p.err
}

func (p *stubProvider) CreateCheckoutLink(ctx context.Context, req billing.CheckoutRequest) (*billing.CheckoutLink, error) {
	return nil, errors.New("not implemented")
}

func (p *stubProvider) GetCustomerPortalLink(ctx context.Context, customerID, subscriptionID string) (*billing.PortalLink, error) {
	return nil, errors.New("not implemented")
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func seedUser(store *docstore.MemoryStore, id string, r role.Role) {
	store.Add("users", docstore.Document{"_id": id, "email": id + "@stagecrew.test", "role": string(r)})
}

func seedSubscription(store *docstore.MemoryStore, userID string, key plan.Key) {
	store.Add("subscription_status", docstore.Document{
		"userId":  userID,
		"planKey": string(key),
		"status":  "active",
	})
}

func seedProps(store *docstore.MemoryStore, userID string, n int) {
	for i := range n {
		store.Add("props", docstore.Document{"_id": fmt.Sprintf("prop-%d", i), "userId": userID})
	}
}

func newService(t *testing.T, store *docstore.MemoryStore, opts ...access.ServiceOption) access.Service {
	t.Helper()
	opts = append([]access.ServiceOption{access.WithLogger(quietLogger())}, opts...)
	svc, err := access.NewService(store, opts...)
	require.NoError(t, err)
	return svc
}

func TestResolveProfile(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := docstore.NewMemoryStore()
	store.Add("users", docstore.Document{
		"_id":         "user-1",
		"email":       "sup@stagecrew.test",
		"displayName": "Props Supervisor",
		"role":        "props_supervisor",
		"capabilityOverrides": map[string]any{
			"team.manage": true,
		},
	})

	svc := newService(t, store)

	profile := svc.ResolveProfile(ctx, "user-1")
	assert.Equal(t, "user-1", profile.ID)
	assert.Equal(t, role.RolePropsSupervisor, profile.Role)
	assert.True(t, profile.HasCapability(role.CapabilityManageTeam), "override grants beyond role defaults")
}

func TestResolveProfileFailsClosed(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("unknown user", func(t *testing.T) {
		t.Parallel()

		svc := newService(t, docstore.NewMemoryStore())
		profile := svc.ResolveProfile(ctx, "ghost")
		assert.Equal(t, role.RoleViewer, profile.EffectiveRole())
		assert.Empty(t, profile.Overrides)
	})

	t.Run("store down", func(t *testing.T) {
		t.Parallel()

		store := docstore.NewMemoryStore()
		seedUser(store, "user-1", role.RoleAdmin)
		store.FailWith(docstore.ErrUnavailable)

		svc := newService(t, store)
		profile := svc.ResolveProfile(ctx, "user-1")
		assert.Equal(t, role.RoleViewer, profile.EffectiveRole(), "an unresolvable admin is a viewer")
	})

	t.Run("unknown role string", func(t *testing.T) {
		t.Parallel()

		store := docstore.NewMemoryStore()
		seedUser(store, "user-1", role.Role("superuser"))

		svc := newService(t, store)
		assert.Equal(t, role.RoleViewer, svc.ResolveProfile(ctx, "user-1").EffectiveRole())
	})
}

func TestEffectiveLimitsComposesAddOns(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := docstore.NewMemoryStore()
	seedUser(store, "user-1", role.RoleEditor)
	seedSubscription(store, "user-1", plan.KeyStandard)
	store.Add("user_addons", docstore.Document{
		"_id": "purchase-1", "userId": "user-1", "addonId": "addon_props_100", "status": "active",
	})
	store.Add("user_addons", docstore.Document{
		"_id": "purchase-2", "userId": "user-1", "addonId": "addon_props_500", "status": "active",
	})
	store.Add("user_addons", docstore.Document{
		"_id": "purchase-3", "userId": "user-1", "addonId": "addon_shows_5", "status": "cancelled",
	})

	limits := newService(t, store).EffectiveLimits(ctx, "user-1")

	assert.Equal(t, int64(700), limits.Quota(plan.ResourceProps), "standard 100 + add-ons 100 and 500")
	assert.Equal(t, plan.ForKey(plan.KeyStandard).Quota(plan.ResourceShows), limits.Quota(plan.ResourceShows),
		"cancelled show add-on contributes nothing")
}

func TestEffectiveLimitsWithoutSubscription(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := docstore.NewMemoryStore()
	seedUser(store, "user-1", role.RoleEditor)

	limits := newService(t, store).EffectiveLimits(ctx, "user-1")
	assert.Equal(t, plan.ForKey(plan.KeyFree).Quota(plan.ResourceShows), limits.Quota(plan.ResourceShows))
}

func TestEffectiveLimitsProviderConfigs(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := docstore.NewMemoryStore()
	seedUser(store, "user-1", role.RoleEditor)
	seedSubscription(store, "user-1", plan.KeyStandard)

	provider := &stubProvider{configs: []billing.PlanConfig{
		{PlanKey: plan.KeyStandard, Metadata: map[string]string{"props": "200", "shows": "unlimited"}},
	}}

	svc := newService(t, store, access.WithBillingProvider(provider))

	limits := svc.EffectiveLimits(ctx, "user-1")
	assert.Equal(t, int64(200), limits.Quota(plan.ResourceProps), "provider config overrides built-ins")
	assert.Equal(t, plan.Unlimited, limits.Quota(plan.ResourceShows))

	svc.EffectiveLimits(ctx, "user-1")
	assert.Equal(t, 1, provider.calls, "plan configs are cached between calls")
}

func TestEffectiveLimitsProviderFailure(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := docstore.NewMemoryStore()
	seedUser(store, "user-1", role.RoleEditor)
	seedSubscription(store, "user-1", plan.KeyPro)

	provider := &stubProvider{err: billing.ErrProviderUnavailable}
	svc := newService(t, store, access.WithBillingProvider(provider))

	limits := svc.EffectiveLimits(ctx, "user-1")
	assert.Equal(t, plan.Unlimited, limits.Quota(plan.ResourceProps), "built-in pro defaults serve when billing is down")
}

func TestCanCreateResourceAtBoundary(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := docstore.NewMemoryStore()
	seedUser(store, "user-1", role.RoleEditor)
	seedSubscription(store, "user-1", plan.KeyStandard)
	seedProps(store, "user-1", 99)

	svc := newService(t, store)

	res := svc.CanCreateResource(ctx, "user-1", plan.ResourceProps)
	assert.True(t, res.Allowed, "99 of 100 props leaves room for one more")

	store.Add("props", docstore.Document{"_id": "prop-99", "userId": "user-1"})

	res = svc.CanCreateResource(ctx, "user-1", plan.ResourceProps)
	assert.False(t, res.Allowed)
	assert.Equal(t, "You have reached your plan's prop limit of 100. Upgrade to create more props.", res.Reason)
}

func TestCanCreateResourceExemptRole(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := docstore.NewMemoryStore()
	seedUser(store, "admin-1", role.RoleAdmin)
	seedProps(store, "admin-1", 500)

	res := newService(t, store).CanCreateResource(ctx, "admin-1", plan.ResourceProps)
	assert.True(t, res.Allowed, "admins are never limited, even on the free plan")
}

func TestCanPerformAction(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := docstore.NewMemoryStore()
	seedUser(store, "viewer-1", role.RoleViewer)
	seedUser(store, "editor-1", role.RoleEditor)

	svc := newService(t, store)

	assert.True(t, svc.CanPerformAction(ctx, "viewer-1", entitlement.ActionViewProp).Allowed)
	assert.False(t, svc.CanPerformAction(ctx, "viewer-1", entitlement.ActionEditProp).Allowed)
	assert.True(t, svc.CanPerformAction(ctx, "editor-1", entitlement.ActionEditProp).Allowed)
	assert.False(t, svc.CanPerformAction(ctx, "editor-1", entitlement.Action("launch_rocket")).Allowed,
		"unknown actions are denied")
}

func TestLimitsPerShowChecks(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := docstore.NewMemoryStore()
	seedUser(store, "user-1", role.RoleEditor)
	seedSubscription(store, "user-1", plan.KeyStandard)
	for i := range 3 {
		store.Add("show_collaborators", docstore.Document{"_id": fmt.Sprintf("collab-%d", i), "showId": "show-1"})
	}

	checker := newService(t, store).Limits("user-1")

	result := checker.CheckCollaboratorLimit(ctx, "show-1")
	assert.Equal(t, int64(3), result.CurrentCount)
	assert.True(t, result.PerShow)
}

func TestViewConfigCached(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := docstore.NewMemoryStore()
	seedUser(store, "sm-1", role.RoleStageManager)

	svc := newService(t, store)

	cfg := svc.ViewConfig(ctx, "sm-1", "show-1")
	assert.Equal(t, "packing", cfg.DefaultTab)
	assert.Equal(t, cfg, svc.ViewConfig(ctx, "sm-1", "show-1"))

	// Profile changes show up only after the cache entry ages out; the
	// role key changing is what gives the new config a distinct entry.
	global := svc.ViewConfig(ctx, "sm-1", "")
	assert.Equal(t, cfg, global, "same role yields the same configuration in any scope")
}
