package role

import "log/slog"

// Role is a named rank in the production team hierarchy.
type Role string

// Generic ladder roles, lowest to highest.
const (
	RoleViewer                   Role = "viewer"
	RoleEditor                   Role = "editor"
	RoleAssistantPropsSupervisor Role = "assistant_props_supervisor"
	RolePropsSupervisor          Role = "props_supervisor"
	RoleAdmin                    Role = "admin"
	RoleGod                      Role = "god"
)

// Lateral specialist roles. They carry a rank on the generic ladder but are
// not ordered between themselves.
const (
	RolePropMaker    Role = "prop_maker"
	RoleArtDirector  Role = "art_director"
	RoleStageManager Role = "stage_manager"
)

// roleRanks positions every role on the generic ladder. Specialists share
// ranks between the editor and supervisor tiers.
var roleRanks = map[Role]int{
	RoleViewer:                   10,
	RoleEditor:                   20,
	RolePropMaker:                30,
	RoleArtDirector:              30,
	RoleStageManager:             30,
	RoleAssistantPropsSupervisor: 40,
	RolePropsSupervisor:          50,
	RoleAdmin:                    60,
	RoleGod:                      70,
}

var displayNames = map[Role]string{
	RoleViewer:                   "Viewer",
	RoleEditor:                   "Editor",
	RolePropMaker:                "Prop Maker",
	RoleArtDirector:              "Art Director",
	RoleStageManager:             "Stage Manager",
	RoleAssistantPropsSupervisor: "Assistant Props Supervisor",
	RolePropsSupervisor:          "Props Supervisor",
	RoleAdmin:                    "Admin",
	RoleGod:                      "God",
}

// exemptRoles bypass every quota comparison.
var exemptRoles = map[Role]bool{
	RoleAdmin: true,
	RoleGod:   true,
}

// IsKnown reports whether r is a recognized role.
func IsKnown(r Role) bool {
	_, ok := roleRanks[r]
	return ok
}

// Rank returns the role's position on the generic ladder.
// Unrecognized roles rank as viewer.
func Rank(r Role) int {
	if rank, ok := roleRanks[r]; ok {
		return rank
	}
	return roleRanks[RoleViewer]
}

// IsExempt reports whether the role bypasses quota checks entirely.
func IsExempt(r Role) bool {
	return exemptRoles[r]
}

// DisplayName returns a human-readable name for the role.
// Unrecognized roles display as viewer.
func DisplayName(r Role) string {
	if name, ok := displayNames[r]; ok {
		return name
	}
	return displayNames[RoleViewer]
}

// Normalize maps an unrecognized or empty role to viewer, surfacing a warning
// through the supplied logger. It is meant to be called once at the boundary
// where role strings enter the system; everything downstream can then assume
// a known role.
func Normalize(r Role, log *slog.Logger) Role {
	if r == "" {
		return RoleViewer
	}
	if IsKnown(r) {
		return r
	}
	if log != nil {
		log.Warn("unrecognized role, treating as viewer", slog.String("role", string(r)))
	}
	return RoleViewer
}
