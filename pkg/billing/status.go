package billing

import (
	"context"
	"errors"
	"time"

	"github.com/stagecrew/stagekit/pkg/docstore"
	"github.com/stagecrew/stagekit/pkg/plan"
)

// statusCollection holds one document per user describing their current
// subscription, written by the billing webhook pipeline outside this module.
const statusCollection = "subscription_status"

// Status is the subscription lifecycle state as reported by the provider.
type Status string

const (
	StatusActive   Status = "active"
	StatusTrialing Status = "trialing"
	StatusPastDue  Status = "past_due"
	StatusCanceled Status = "canceled"
)

// entitled reports whether the status grants the paid plan's limits.
func (s Status) entitled() bool {
	return s == StatusActive || s == StatusTrialing
}

// SubscriptionStatus is a user's current subscription record.
type SubscriptionStatus struct {
	UserID    string
	PlanKey   plan.Key
	Status    Status
	PeriodEnd time.Time
}

// StatusStore reads subscription status documents. It never fails a caller
// over billing data problems: a missing, malformed, or non-entitled record
// resolves to the free plan.
type StatusStore struct {
	store docstore.Store
}

// NewStatusStore creates a status reader over the given document store.
// Panics if store is nil.
func NewStatusStore(store docstore.Store) *StatusStore {
	if store == nil {
		panic("billing: document store is required")
	}
	return &StatusStore{store: store}
}

// PlanKeyFor resolves the plan a user is entitled to. Users without an
// entitling subscription record are on the free plan; store errors other
// than not-found are returned so the caller can decide how to degrade.
func (s *StatusStore) PlanKeyFor(ctx context.Context, userID string) (plan.Key, error) {
	status, err := s.StatusFor(ctx, userID)
	if err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return plan.KeyFree, nil
		}
		return plan.KeyFree, err
	}
	if !status.Status.entitled() {
		return plan.KeyFree, nil
	}
	return status.PlanKey, nil
}

// StatusFor returns the raw subscription record for a user.
// Returns docstore.ErrNotFound when the user has none.
func (s *StatusStore) StatusFor(ctx context.Context, userID string) (SubscriptionStatus, error) {
	docs, err := s.store.GetDocuments(ctx, statusCollection, map[string]any{"userId": userID})
	if err != nil {
		return SubscriptionStatus{}, err
	}
	if len(docs) == 0 {
		return SubscriptionStatus{}, docstore.ErrNotFound
	}

	doc := docs[0]
	status := SubscriptionStatus{
		UserID:  userID,
		PlanKey: plan.ParseKey(doc.String("planKey")),
		Status:  Status(doc.String("status")),
	}
	if raw := doc.String("periodEnd"); raw != "" {
		if ts, err := time.Parse(time.RFC3339, raw); err == nil {
			status.PeriodEnd = ts
		}
	}
	return status, nil
}
