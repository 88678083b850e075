package addon

import (
	"time"

	"github.com/stagecrew/stagekit/pkg/plan"
)

// Type identifies which additive quota an add-on extends.
// Add-ons only ever extend per-account quotas; per-show limits and feature
// flags are plan-level and cannot be purchased incrementally.
type Type string

const (
	TypeShows         Type = "shows"
	TypeProps         Type = "props"
	TypePackingBoxes  Type = "packing_boxes"
	TypeArchivedShows Type = "archived_shows"
)

// additiveResource maps an add-on type to the per-account resource it extends.
var additiveResource = map[Type]plan.Resource{
	TypeShows:         plan.ResourceShows,
	TypeProps:         plan.ResourceProps,
	TypePackingBoxes:  plan.ResourcePackingBoxes,
	TypeArchivedShows: plan.ResourceArchivedShows,
}

// Status is the billing lifecycle state of a purchased add-on.
type Status string

const (
	StatusActive    Status = "active"
	StatusCancelled Status = "cancelled"
	StatusExpired   Status = "expired"
)

// BillingInterval is the billing frequency of an add-on purchase.
type BillingInterval string

const (
	BillingIntervalMonthly BillingInterval = "monthly"
	BillingIntervalAnnual  BillingInterval = "annual"
)

// Money represents a monetary amount in the smallest currency unit.
type Money struct {
	Amount   int64  // cents for USD
	Currency string // ISO 4217 currency code
}

// Definition is a catalog entry describing a purchasable add-on.
type Definition struct {
	ID          string
	Name        string
	Type        Type
	Quantity    int64      // how much the add-on extends the quota by
	TargetPlans []plan.Key // plans the add-on can be purchased on
	Price       Money
}

// AppliesTo reports whether the add-on can be purchased on the given plan.
// An empty TargetPlans list means any plan.
func (d Definition) AppliesTo(key plan.Key) bool {
	if len(d.TargetPlans) == 0 {
		return true
	}
	for _, target := range d.TargetPlans {
		if target == key {
			return true
		}
	}
	return false
}

// UserAddOn is a purchased add-on with its own billing lifecycle.
// The stored status may lag behind reality: an add-on past its expiry
// timestamp is inactive even if the record still says active.
type UserAddOn struct {
	ID           string
	DefinitionID string
	Status       Status
	Interval     BillingInterval
	CreatedAt    time.Time
	CancelledAt  *time.Time
	ExpiresAt    *time.Time
}

// IsActiveAt reports whether the add-on contributes to effective limits at
// the given instant.
func (a UserAddOn) IsActiveAt(now time.Time) bool {
	if a.Status != StatusActive {
		return false
	}
	if a.ExpiresAt != nil && !a.ExpiresAt.After(now) {
		return false
	}
	return true
}
