package plan_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stagecrew/stagekit/pkg/plan"
)

func TestInMemSource_Load(t *testing.T) {
	t.Parallel()

	src := plan.NewInMemSource(map[plan.Key]plan.Limits{
		plan.KeyFree: plan.ForKey(plan.KeyFree),
	})

	plans, err := src.Load(context.Background())
	require.NoError(t, err)
	require.Contains(t, plans, plan.KeyFree)

	// Mutating the loaded copy must not leak back into the source.
	plans[plan.KeyFree].Quotas[plan.ResourceProps] = 9999

	plans2, err := src.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(25), plans2[plan.KeyFree].Quota(plan.ResourceProps))
}

func TestBuiltinSource_Load(t *testing.T) {
	t.Parallel()

	plans, err := plan.NewBuiltinSource().Load(context.Background())
	require.NoError(t, err)

	assert.Len(t, plans, 4)
	assert.Equal(t, int64(100), plans[plan.KeyStandard].Quota(plan.ResourceProps))
}

func writeTempYAML(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "plans.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestFileSource_Load(t *testing.T) {
	t.Parallel()

	t.Run("overrides merge over builtins", func(t *testing.T) {
		t.Parallel()

		path := writeTempYAML(t, `
plans:
  standard:
    quotas:
      props: 150
      props_per_show: 75
    features: [export]
`)

		plans, err := plan.NewFileSource(path).Load(context.Background())
		require.NoError(t, err)

		standard := plans[plan.KeyStandard]
		assert.Equal(t, int64(150), standard.Quota(plan.ResourceProps))
		assert.Equal(t, int64(75), standard.Quota(plan.ResourcePropsPerShow))
		assert.True(t, standard.HasFeature(plan.FeatureExport))
		assert.False(t, standard.HasFeature(plan.FeatureAdvancedFeatures))

		// Untouched fields keep their built-in values.
		assert.Equal(t, int64(10), standard.Quota(plan.ResourceShows))
		// Untouched tiers stay complete.
		assert.Equal(t, int64(25), plans[plan.KeyFree].Quota(plan.ResourceProps))
	})

	t.Run("unlimited override", func(t *testing.T) {
		t.Parallel()

		path := writeTempYAML(t, `
plans:
  starter:
    quotas:
      props: -1
`)

		plans, err := plan.NewFileSource(path).Load(context.Background())
		require.NoError(t, err)
		assert.True(t, plan.IsUnlimited(plans[plan.KeyStarter].Quota(plan.ResourceProps)))
	})

	t.Run("unknown plan is a configuration error", func(t *testing.T) {
		t.Parallel()

		path := writeTempYAML(t, `
plans:
  platinum:
    quotas:
      props: 10
`)

		_, err := plan.NewFileSource(path).Load(context.Background())
		assert.ErrorIs(t, err, plan.ErrInvalidPlanConfiguration)
	})

	t.Run("unknown resource is a configuration error", func(t *testing.T) {
		t.Parallel()

		path := writeTempYAML(t, `
plans:
  free:
    quotas:
      widgets: 10
`)

		_, err := plan.NewFileSource(path).Load(context.Background())
		assert.ErrorIs(t, err, plan.ErrInvalidPlanConfiguration)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := plan.NewFileSource("testdata/nope.yml").Load(context.Background())
		assert.ErrorIs(t, err, plan.ErrFailedToLoadPlans)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		t.Parallel()

		path := writeTempYAML(t, "plans: [not a map")
		_, err := plan.NewFileSource(path).Load(context.Background())
		assert.ErrorIs(t, err, plan.ErrFailedToLoadPlans)
	})
}
