package docstore

import "errors"

var (
	// ErrNotFound is returned when a document does not exist.
	ErrNotFound = errors.New("docstore.errors.document_not_found")

	// ErrUnavailable wraps transport-level failures reaching the store.
	ErrUnavailable = errors.New("docstore.errors.store_unavailable")

	// ErrFailedToConnect is returned when the initial connection cannot be established.
	ErrFailedToConnect = errors.New("docstore.errors.failed_to_connect")
)
