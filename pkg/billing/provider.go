package billing

import (
	"context"
	"time"

	"github.com/stagecrew/stagekit/pkg/plan"
)

// PlanConfig is one subscription product as the billing provider describes it:
// the plan it maps to plus the raw metadata key/value pairs that carry its
// limits. Parsing metadata into plan.Limits is the caller's concern.
type PlanConfig struct {
	PlanKey  plan.Key
	Metadata map[string]string
}

// CheckoutRequest describes a hosted checkout session to create.
type CheckoutRequest struct {
	PriceID    string
	CustomerID string
	Email      string
	SuccessURL string
}

// CheckoutLink is a hosted checkout session returned by the provider.
type CheckoutLink struct {
	URL       string
	SessionID string
	ExpiresAt time.Time
}

// PortalLink points at the provider's self-service customer portal.
type PortalLink struct {
	URL              string
	CancelURL        string
	UpdatePaymentURL string
	ExpiresAt        time.Time
}

// Provider abstracts the billing vendor. Implementations must be safe for
// concurrent use.
type Provider interface {
	// FetchPlanConfigs returns the provider-side plan catalog. Products that
	// do not map to a known plan are skipped, not errored.
	FetchPlanConfigs(ctx context.Context) ([]PlanConfig, error)

	// CreateCheckoutLink creates a hosted checkout session.
	CreateCheckoutLink(ctx context.Context, req CheckoutRequest) (*CheckoutLink, error)

	// GetCustomerPortalLink returns a customer portal session for the given
	// provider customer and subscription.
	GetCustomerPortalLink(ctx context.Context, customerID, subscriptionID string) (*PortalLink, error)
}
