package role

// Capability is a direct permission flag granted by a role or an explicit
// per-user override.
type Capability string

const (
	CapabilityViewProps           Capability = "props.view"
	CapabilityEditProps           Capability = "props.edit"
	CapabilityDeleteProps         Capability = "props.delete"
	CapabilityManageShows         Capability = "shows.manage"
	CapabilityArchiveShows        Capability = "shows.archive"
	CapabilityManagePacking       Capability = "packing.manage"
	CapabilityAssignTasks         Capability = "tasks.assign"
	CapabilityInviteCollaborators Capability = "collaborators.invite"
	CapabilityManageTeam          Capability = "team.manage"
	CapabilityExportData          Capability = "data.export"
)

// capabilityDefaults holds the static default capability set per role.
// An absent capability means denied by default.
var capabilityDefaults = map[Role]map[Capability]bool{
	RoleViewer: {
		CapabilityViewProps: true,
	},
	RoleEditor: {
		CapabilityViewProps:   true,
		CapabilityEditProps:   true,
		CapabilityAssignTasks: true,
	},
	RolePropMaker: {
		CapabilityViewProps:   true,
		CapabilityEditProps:   true,
		CapabilityAssignTasks: true,
	},
	RoleArtDirector: {
		CapabilityViewProps:   true,
		CapabilityEditProps:   true,
		CapabilityAssignTasks: true,
		CapabilityExportData:  true,
	},
	RoleStageManager: {
		CapabilityViewProps:     true,
		CapabilityEditProps:     true,
		CapabilityAssignTasks:   true,
		CapabilityManagePacking: true,
		CapabilityExportData:    true,
	},
	RoleAssistantPropsSupervisor: {
		CapabilityViewProps:           true,
		CapabilityEditProps:           true,
		CapabilityDeleteProps:         true,
		CapabilityAssignTasks:         true,
		CapabilityManagePacking:       true,
		CapabilityInviteCollaborators: true,
		CapabilityExportData:          true,
	},
	RolePropsSupervisor: {
		CapabilityViewProps:           true,
		CapabilityEditProps:           true,
		CapabilityDeleteProps:         true,
		CapabilityManageShows:         true,
		CapabilityArchiveShows:        true,
		CapabilityAssignTasks:         true,
		CapabilityManagePacking:       true,
		CapabilityInviteCollaborators: true,
		CapabilityManageTeam:          true,
		CapabilityExportData:          true,
	},
	RoleAdmin: {
		CapabilityViewProps:           true,
		CapabilityEditProps:           true,
		CapabilityDeleteProps:         true,
		CapabilityManageShows:         true,
		CapabilityArchiveShows:        true,
		CapabilityAssignTasks:         true,
		CapabilityManagePacking:       true,
		CapabilityInviteCollaborators: true,
		CapabilityManageTeam:          true,
		CapabilityExportData:          true,
	},
	RoleGod: {
		CapabilityViewProps:           true,
		CapabilityEditProps:           true,
		CapabilityDeleteProps:         true,
		CapabilityManageShows:         true,
		CapabilityArchiveShows:        true,
		CapabilityAssignTasks:         true,
		CapabilityManagePacking:       true,
		CapabilityInviteCollaborators: true,
		CapabilityManageTeam:          true,
		CapabilityExportData:          true,
	},
}

// Defaults returns the static default capability set for a role.
// Unrecognized roles get the viewer set. The returned map is a copy and safe
// to modify.
func Defaults(r Role) map[Capability]bool {
	defaults, ok := capabilityDefaults[r]
	if !ok {
		defaults = capabilityDefaults[RoleViewer]
	}

	out := make(map[Capability]bool, len(defaults))
	for cap, allowed := range defaults {
		out[cap] = allowed
	}
	return out
}

// HasDefault reports whether the role's static default capability set grants cap.
func HasDefault(r Role, cap Capability) bool {
	defaults, ok := capabilityDefaults[r]
	if !ok {
		defaults = capabilityDefaults[RoleViewer]
	}
	return defaults[cap]
}
