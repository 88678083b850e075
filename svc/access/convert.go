package access

import (
	"log/slog"
	"time"

	"github.com/stagecrew/stagekit/pkg/addon"
	"github.com/stagecrew/stagekit/pkg/docstore"
	"github.com/stagecrew/stagekit/pkg/role"
)

// profileFromDocument maps a users document to a profile. An unknown or
// missing role normalizes to viewer with a warning.
func profileFromDocument(doc docstore.Document, log *slog.Logger) *role.UserProfile {
	profile := &role.UserProfile{
		ID:          doc.ID(),
		Email:       doc.String("email"),
		DisplayName: doc.String("displayName"),
		Role:        role.Normalize(role.Role(doc.String("role")), log),
	}

	if raw, ok := doc["capabilityOverrides"].(map[string]any); ok && len(raw) > 0 {
		profile.Overrides = make(map[role.Capability]bool, len(raw))
		for name, v := range raw {
			if b, ok := v.(bool); ok {
				profile.Overrides[role.Capability(name)] = b
			}
		}
	}

	return profile
}

// addOnFromDocument maps a user_addons document to a purchase record.
// Unparseable timestamps read as unset, which errs toward the add-on
// counting rather than silently expiring it.
func addOnFromDocument(doc docstore.Document) addon.UserAddOn {
	a := addon.UserAddOn{
		ID:           doc.ID(),
		DefinitionID: doc.String("addonId"),
		Status:       addon.Status(doc.String("status")),
		Interval:     addon.BillingInterval(doc.String("billingInterval")),
	}
	if ts, ok := parseTime(doc.String("createdAt")); ok {
		a.CreatedAt = ts
	}
	if ts, ok := parseTime(doc.String("cancelledAt")); ok {
		a.CancelledAt = &ts
	}
	if ts, ok := parseTime(doc.String("expiresAt")); ok {
		a.ExpiresAt = &ts
	}
	return a
}

func parseTime(raw string) (time.Time, bool) {
	if raw == "" {
		return time.Time{}, false
	}
	ts, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, false
	}
	return ts, true
}
