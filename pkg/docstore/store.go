package docstore

import "context"

// Document is a schemaless record as the underlying store returns it.
type Document map[string]any

// ID returns the document's identifier, if present.
func (d Document) ID() string {
	for _, key := range []string{"_id", "id"} {
		if v, ok := d[key].(string); ok {
			return v
		}
	}
	return ""
}

// String returns the named field as a string, or empty when absent or of a
// different type. Documents from schemaless stores are never trusted to be
// well-formed.
func (d Document) String(field string) string {
	v, _ := d[field].(string)
	return v
}

// Bool returns the named field as a bool, defaulting to false.
func (d Document) Bool(field string) bool {
	v, _ := d[field].(bool)
	return v
}

// Store is the narrow capability the entitlement engine needs from the
// document database: fetch by id and fetch by equality filter. Platform
// adapters (mobile, web) map their native clients onto it.
type Store interface {
	// GetDocuments returns all documents in the collection matching every
	// equality clause in filter. A nil filter returns the whole collection.
	GetDocuments(ctx context.Context, collection string, filter map[string]any) ([]Document, error)

	// GetDocument returns a single document by id.
	// Returns ErrNotFound if no document exists.
	GetDocument(ctx context.Context, collection, id string) (Document, error)
}
