package addon

import "errors"

// Domain errors for add-on catalog and purchase operations. Composition
// itself never fails: stale references simply contribute nothing.
var (
	ErrFailedToLoadCatalog = errors.New("addon.errors.failed_to_load_catalog")
	ErrInvalidCatalogEntry = errors.New("addon.errors.invalid_catalog_entry")
	ErrUnknownDefinition   = errors.New("addon.errors.unknown_definition")
	ErrInvalidInterval     = errors.New("addon.errors.invalid_interval")
)
