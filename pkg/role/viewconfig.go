package role

// ViewConfig describes which prop/show fields a role sees on screens.
// It is a plain value type so it can be cached and sent to clients as-is.
type ViewConfig struct {
	Role             Role   `json:"role"`
	ShowPrices       bool   `json:"showPrices"`
	ShowBudget       bool   `json:"showBudget"`
	ShowMakerNotes   bool   `json:"showMakerNotes"`
	ShowTaskBoards   bool   `json:"showTaskBoards"`
	ShowPackingLists bool   `json:"showPackingLists"`
	ShowTeamTab      bool   `json:"showTeamTab"`
	AllowQuickEdit   bool   `json:"allowQuickEdit"`
	DefaultTab       string `json:"defaultTab"`
}

// ConfigForRole derives the display configuration for a role from its
// capability defaults. Unrecognized roles get the viewer configuration.
func ConfigForRole(r Role) ViewConfig {
	if !IsKnown(r) {
		r = RoleViewer
	}

	cfg := ViewConfig{
		Role:             r,
		ShowPrices:       HasDefault(r, CapabilityExportData),
		ShowBudget:       HasDefault(r, CapabilityManageShows),
		ShowMakerNotes:   HasDefault(r, CapabilityEditProps),
		ShowTaskBoards:   HasDefault(r, CapabilityAssignTasks),
		ShowPackingLists: HasDefault(r, CapabilityManagePacking),
		ShowTeamTab:      HasDefault(r, CapabilityManageTeam),
		AllowQuickEdit:   HasDefault(r, CapabilityEditProps),
		DefaultTab:       "props",
	}

	switch r {
	case RoleStageManager:
		cfg.DefaultTab = "packing"
	case RolePropMaker:
		cfg.DefaultTab = "tasks"
	}

	return cfg
}
