package addon

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// NewPurchase constructs the UserAddOn record for a fresh purchase of the
// given catalog definition. The record starts active with no expiry; the
// billing provider's lifecycle events flip status and timestamps later.
func NewPurchase(catalog *Catalog, definitionID string, interval BillingInterval, now time.Time) (UserAddOn, error) {
	if catalog == nil {
		return UserAddOn{}, ErrUnknownDefinition
	}
	if _, ok := catalog.Lookup(definitionID); !ok {
		return UserAddOn{}, errors.Join(ErrUnknownDefinition, errors.New("definition "+definitionID))
	}

	switch interval {
	case BillingIntervalMonthly, BillingIntervalAnnual:
	default:
		return UserAddOn{}, ErrInvalidInterval
	}

	return UserAddOn{
		ID:           uuid.NewString(),
		DefinitionID: definitionID,
		Status:       StatusActive,
		Interval:     interval,
		CreatedAt:    now.UTC(),
	}, nil
}
