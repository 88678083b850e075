package entitlement

import "github.com/stagecrew/stagekit/pkg/role"

// Action names a user-attempted operation screens can ask about.
type Action string

const (
	ActionViewProp           Action = "view_prop"
	ActionEditProp           Action = "edit_prop"
	ActionDeleteProp         Action = "delete_prop"
	ActionManageShow         Action = "manage_show"
	ActionArchiveShow        Action = "archive_show"
	ActionManagePacking      Action = "manage_packing"
	ActionAssignTask         Action = "assign_task"
	ActionInviteCollaborator Action = "invite_collaborator"
	ActionManageTeam         Action = "manage_team"
	ActionExportData         Action = "export_data"
)

// actionCapabilities is the static action -> required capability table.
// An action missing from it is denied outright; an unrecognized capability
// request must never be assumed safe.
var actionCapabilities = map[Action]role.Capability{
	ActionViewProp:           role.CapabilityViewProps,
	ActionEditProp:           role.CapabilityEditProps,
	ActionDeleteProp:         role.CapabilityDeleteProps,
	ActionManageShow:         role.CapabilityManageShows,
	ActionArchiveShow:        role.CapabilityArchiveShows,
	ActionManagePacking:      role.CapabilityManagePacking,
	ActionAssignTask:         role.CapabilityAssignTasks,
	ActionInviteCollaborator: role.CapabilityInviteCollaborators,
	ActionManageTeam:         role.CapabilityManageTeam,
	ActionExportData:         role.CapabilityExportData,
}
