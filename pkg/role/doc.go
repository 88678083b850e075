// Package role models the production team hierarchy: a totally ordered role
// ladder with per-role default capability sets and display configurations.
//
// The generic ladder runs viewer < editor < assistant_props_supervisor <
// props_supervisor < admin < god. Lateral specialist roles (stage_manager,
// prop_maker, art_director) carry a rank on that ladder but are not ordered
// between themselves.
//
// Key concepts:
//
//   - Role: a named rank; unrecognized role strings always degrade to viewer,
//     never to an error
//   - Capability: a direct permission flag; per-user overrides on UserProfile
//     take precedence over role defaults
//   - Exempt role: admin and god bypass every quota comparison
//   - ViewConfig: the field-visibility configuration a role gets on screens
//
// Basic usage:
//
//	profile := &role.UserProfile{ID: "u1", Role: role.RoleEditor}
//
//	role.HasMinimumRole(profile, role.RoleViewer) // true
//	profile.HasCapability(role.CapabilityEditProps) // true
//
//	// Explicit overrides win over role defaults:
//	profile.Overrides = map[role.Capability]bool{role.CapabilityEditProps: false}
//	profile.HasCapability(role.CapabilityEditProps) // false
//
// Role strings arriving from storage should pass through Normalize once at
// the boundary, which logs a warning for unknown values and returns viewer.
package role
