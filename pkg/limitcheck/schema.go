package limitcheck

import "github.com/stagecrew/stagekit/pkg/plan"

// resourceSchema is the contract with the document store for one resource
// type: which collection holds it and which fields scope it. Props key by
// userId while shows, boards, and packing boxes key by ownerId; the split is
// part of the store schema and must be preserved exactly per resource.
type resourceSchema struct {
	collection  string
	ownerField  string
	showField   string
	accountRes  plan.Resource
	showRes     plan.Resource
	extraFilter map[string]any
}

var (
	showsSchema = resourceSchema{
		collection:  "shows",
		ownerField:  "ownerId",
		accountRes:  plan.ResourceShows,
		extraFilter: map[string]any{"archived": false},
	}

	archivedShowsSchema = resourceSchema{
		collection:  "shows",
		ownerField:  "ownerId",
		accountRes:  plan.ResourceArchivedShows,
		extraFilter: map[string]any{"archived": true},
	}

	boardsSchema = resourceSchema{
		collection: "task_boards",
		ownerField: "ownerId",
		showField:  "showId",
		accountRes: plan.ResourceBoards,
		showRes:    plan.ResourceBoardsPerShow,
	}

	propsSchema = resourceSchema{
		collection: "props",
		ownerField: "userId",
		showField:  "showId",
		accountRes: plan.ResourceProps,
		showRes:    plan.ResourcePropsPerShow,
	}

	packingBoxesSchema = resourceSchema{
		collection: "packing_boxes",
		ownerField: "ownerId",
		showField:  "showId",
		accountRes: plan.ResourcePackingBoxes,
		showRes:    plan.ResourcePackingBoxesPerShow,
	}

	collaboratorsSchema = resourceSchema{
		collection: "show_collaborators",
		showField:  "showId",
		showRes:    plan.ResourceCollaboratorsPerShow,
	}
)
