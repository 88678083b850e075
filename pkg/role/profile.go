package role

// UserProfile is the identity record this subsystem evaluates against.
// Exactly one role per profile; a missing role reads as viewer.
type UserProfile struct {
	ID          string
	Email       string
	DisplayName string
	Role        Role

	// Overrides are explicit per-user permission flags taking precedence
	// over the role's default capability set.
	Overrides map[Capability]bool
}

// EffectiveRole returns the profile's role, defaulting to viewer when the
// profile is nil or carries no role.
func (p *UserProfile) EffectiveRole() Role {
	if p == nil || p.Role == "" {
		return RoleViewer
	}
	return p.Role
}

// HasCapability reports whether the profile is granted cap: an explicit
// override wins, otherwise the role's static default applies.
func (p *UserProfile) HasCapability(cap Capability) bool {
	if p != nil {
		if allowed, ok := p.Overrides[cap]; ok {
			return allowed
		}
	}
	return HasDefault(p.EffectiveRole(), cap)
}

// HasRole reports whether the profile's role exactly matches r.
func HasRole(p *UserProfile, r Role) bool {
	return p.EffectiveRole() == r
}

// HasMinimumRole reports whether the profile's role ranks at least as high
// as the required role on the generic ladder.
func HasMinimumRole(p *UserProfile, required Role) bool {
	return Rank(p.EffectiveRole()) >= Rank(required)
}
