package addon_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stagecrew/stagekit/pkg/addon"
	"github.com/stagecrew/stagekit/pkg/plan"
)

func TestDefaultCatalog(t *testing.T) {
	t.Parallel()

	catalog := addon.DefaultCatalog()

	def, ok := catalog.Lookup("addon_props_100")
	require.True(t, ok)
	assert.Equal(t, addon.TypeProps, def.Type)
	assert.Equal(t, int64(100), def.Quantity)

	_, ok = catalog.Lookup("addon_nope")
	assert.False(t, ok)

	assert.NotEmpty(t, catalog.Version())
}

func TestCatalog_AvailableFor(t *testing.T) {
	t.Parallel()

	catalog := addon.DefaultCatalog()

	free := catalog.AvailableFor(plan.KeyFree)
	assert.Empty(t, free)

	starter := catalog.AvailableFor(plan.KeyStarter)
	ids := make([]string, 0, len(starter))
	for _, def := range starter {
		ids = append(ids, def.ID)
	}
	assert.Contains(t, ids, "addon_props_100")
	assert.NotContains(t, ids, "addon_props_500") // standard+ only
}

func TestDefinition_AppliesTo(t *testing.T) {
	t.Parallel()

	anyPlan := addon.Definition{ID: "x", Type: addon.TypeProps, Quantity: 1}
	assert.True(t, anyPlan.AppliesTo(plan.KeyFree))

	scoped := addon.Definition{ID: "y", Type: addon.TypeProps, Quantity: 1, TargetPlans: []plan.Key{plan.KeyPro}}
	assert.True(t, scoped.AppliesTo(plan.KeyPro))
	assert.False(t, scoped.AppliesTo(plan.KeyFree))
}

func TestLoadCatalogFile(t *testing.T) {
	t.Parallel()

	write := func(t *testing.T, content string) string {
		t.Helper()
		path := filepath.Join(t.TempDir(), "catalog.yml")
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
		return path
	}

	t.Run("valid catalog", func(t *testing.T) {
		t.Parallel()

		path := write(t, `
version: "2026-02"
addons:
  - id: addon_props_100
    name: 100 Extra Props
    type: props
    quantity: 100
    target_plans: [starter, standard, pro]
    price_cents: 299
    currency: USD
`)

		catalog, err := addon.LoadCatalogFile(path)
		require.NoError(t, err)
		assert.Equal(t, "2026-02", catalog.Version())

		def, ok := catalog.Lookup("addon_props_100")
		require.True(t, ok)
		assert.Equal(t, int64(299), def.Price.Amount)
		assert.Equal(t, []plan.Key{plan.KeyStarter, plan.KeyStandard, plan.KeyPro}, def.TargetPlans)
	})

	t.Run("unknown type", func(t *testing.T) {
		t.Parallel()

		path := write(t, `
addons:
  - id: addon_seats
    type: seats
    quantity: 5
`)

		_, err := addon.LoadCatalogFile(path)
		assert.ErrorIs(t, err, addon.ErrInvalidCatalogEntry)
	})

	t.Run("non-positive quantity", func(t *testing.T) {
		t.Parallel()

		path := write(t, `
addons:
  - id: addon_zero
    type: props
    quantity: 0
`)

		_, err := addon.LoadCatalogFile(path)
		assert.ErrorIs(t, err, addon.ErrInvalidCatalogEntry)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := addon.LoadCatalogFile("testdata/nope.yml")
		assert.ErrorIs(t, err, addon.ErrFailedToLoadCatalog)
	})
}

func TestNewPurchase(t *testing.T) {
	t.Parallel()

	catalog := addon.DefaultCatalog()
	now := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)

	t.Run("valid purchase", func(t *testing.T) {
		t.Parallel()

		purchase, err := addon.NewPurchase(catalog, "addon_props_100", addon.BillingIntervalMonthly, now)
		require.NoError(t, err)

		assert.NotEmpty(t, purchase.ID)
		assert.Equal(t, "addon_props_100", purchase.DefinitionID)
		assert.Equal(t, addon.StatusActive, purchase.Status)
		assert.Equal(t, now, purchase.CreatedAt)
		assert.Nil(t, purchase.ExpiresAt)
		assert.True(t, purchase.IsActiveAt(now))
	})

	t.Run("unknown definition", func(t *testing.T) {
		t.Parallel()

		_, err := addon.NewPurchase(catalog, "addon_nope", addon.BillingIntervalMonthly, now)
		assert.ErrorIs(t, err, addon.ErrUnknownDefinition)
	})

	t.Run("invalid interval", func(t *testing.T) {
		t.Parallel()

		_, err := addon.NewPurchase(catalog, "addon_props_100", addon.BillingInterval("weekly"), now)
		assert.ErrorIs(t, err, addon.ErrInvalidInterval)
	})

	t.Run("unique ids", func(t *testing.T) {
		t.Parallel()

		p1, err := addon.NewPurchase(catalog, "addon_props_100", addon.BillingIntervalAnnual, now)
		require.NoError(t, err)
		p2, err := addon.NewPurchase(catalog, "addon_props_100", addon.BillingIntervalAnnual, now)
		require.NoError(t, err)

		assert.NotEqual(t, p1.ID, p2.ID)
	})
}
