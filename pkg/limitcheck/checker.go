package limitcheck

import (
	"context"
	"log/slog"

	"github.com/stagecrew/stagekit/pkg/docstore"
	"github.com/stagecrew/stagekit/pkg/entitlement"
	"github.com/stagecrew/stagekit/pkg/logger"
	"github.com/stagecrew/stagekit/pkg/plan"
	"github.com/stagecrew/stagekit/pkg/role"
)

// ProfileResolver returns the acting user's profile for the current call.
type ProfileResolver func(ctx context.Context) *role.UserProfile

// LimitsResolver returns the acting user's effective limits for the current call.
type LimitsResolver func(ctx context.Context) plan.Limits

// Checker orchestrates quota checks per resource type: it resolves the
// acting profile and effective limits, counts current documents in the
// store, and hands the comparison to the evaluator.
//
// Every operation fails open. An invalid id or an unreachable store yields
// withinLimit=true with count 0 so a caller bug or a transient outage never
// blocks a legitimate user; such events are logged, not surfaced.
type Checker struct {
	store   docstore.Store
	profile ProfileResolver
	limits  LimitsResolver
	log     *slog.Logger
}

// NewChecker creates a Checker. Panics if store, profile, or limits is nil
// to fail fast during initialization.
func NewChecker(store docstore.Store, profile ProfileResolver, limits LimitsResolver, log *slog.Logger) *Checker {
	if store == nil {
		panic("limitcheck: docstore.Store is required")
	}
	if profile == nil {
		panic("limitcheck: ProfileResolver is required")
	}
	if limits == nil {
		panic("limitcheck: LimitsResolver is required")
	}
	if log == nil {
		log = slog.Default()
	}
	return &Checker{store: store, profile: profile, limits: limits, log: log}
}

// CheckShowLimit checks whether the owner can create one more show.
func (c *Checker) CheckShowLimit(ctx context.Context, ownerID string) entitlement.LimitCheckResult {
	return c.checkAccount(ctx, showsSchema, ownerID)
}

// CheckArchivedShowLimit checks whether the owner can archive one more show.
func (c *Checker) CheckArchivedShowLimit(ctx context.Context, ownerID string) entitlement.LimitCheckResult {
	return c.checkAccount(ctx, archivedShowsSchema, ownerID)
}

// CheckBoardLimit checks the per-account task board quota.
func (c *Checker) CheckBoardLimit(ctx context.Context, ownerID string) entitlement.LimitCheckResult {
	return c.checkAccount(ctx, boardsSchema, ownerID)
}

// CheckBoardLimitForShow checks the task board quota within one show.
func (c *Checker) CheckBoardLimitForShow(ctx context.Context, showID string) entitlement.LimitCheckResult {
	return c.checkShow(ctx, boardsSchema, showID)
}

// CheckPropLimit checks the per-account prop quota.
func (c *Checker) CheckPropLimit(ctx context.Context, userID string) entitlement.LimitCheckResult {
	return c.checkAccount(ctx, propsSchema, userID)
}

// CheckPropLimitForShow checks the prop quota within one show.
func (c *Checker) CheckPropLimitForShow(ctx context.Context, showID string) entitlement.LimitCheckResult {
	return c.checkShow(ctx, propsSchema, showID)
}

// CheckPackingBoxLimit checks the per-account packing box quota.
func (c *Checker) CheckPackingBoxLimit(ctx context.Context, ownerID string) entitlement.LimitCheckResult {
	return c.checkAccount(ctx, packingBoxesSchema, ownerID)
}

// CheckPackingBoxLimitForShow checks the packing box quota within one show.
func (c *Checker) CheckPackingBoxLimitForShow(ctx context.Context, showID string) entitlement.LimitCheckResult {
	return c.checkShow(ctx, packingBoxesSchema, showID)
}

// CheckCollaboratorLimit checks the collaborator quota within one show.
func (c *Checker) CheckCollaboratorLimit(ctx context.Context, showID string) entitlement.LimitCheckResult {
	return c.checkShow(ctx, collaboratorsSchema, showID)
}

func (c *Checker) checkAccount(ctx context.Context, schema resourceSchema, ownerID string) entitlement.LimitCheckResult {
	return c.check(ctx, schema, schema.ownerField, ownerID, schema.accountRes)
}

func (c *Checker) checkShow(ctx context.Context, schema resourceSchema, showID string) entitlement.LimitCheckResult {
	return c.check(ctx, schema, schema.showField, showID, schema.showRes)
}

func (c *Checker) check(ctx context.Context, schema resourceSchema, field, id string, res plan.Resource) entitlement.LimitCheckResult {
	profile := c.profile(ctx)
	limits := c.limits(ctx)

	if id == "" {
		c.log.WarnContext(ctx, "limit check called with empty id, failing open",
			logger.Collection(schema.collection), logger.Resource(res))
		return failOpen(limits, res)
	}

	// Exempt roles never hit the store.
	if role.IsExempt(profile.EffectiveRole()) {
		return entitlement.LimitCheckResult{
			WithinLimit:  true,
			CurrentCount: 0,
			Limit:        plan.Unlimited,
			PerShow:      plan.IsPerShow(res),
		}
	}

	filter := map[string]any{field: id}
	for k, v := range schema.extraFilter {
		filter[k] = v
	}

	docs, err := c.store.GetDocuments(ctx, schema.collection, filter)
	if err != nil {
		c.log.ErrorContext(ctx, "limit check query failed, failing open",
			logger.Error(err), logger.Collection(schema.collection), logger.Resource(res))
		return failOpen(limits, res)
	}

	return entitlement.CheckLimit(profile, limits, int64(len(docs)), res)
}

// failOpen is the deliberate policy for invalid input and data-access
// errors: report the configured limit with count 0 rather than block the
// user during a caller bug or a transient outage.
func failOpen(limits plan.Limits, res plan.Resource) entitlement.LimitCheckResult {
	return entitlement.LimitCheckResult{
		WithinLimit:  true,
		CurrentCount: 0,
		Limit:        limits.Quota(res),
		PerShow:      plan.IsPerShow(res),
	}
}
