package rag

import "errors"

var (
	// ErrEmbeddingUnavailable signals that the embedding backend could not
	// produce a vector for a query. Callers are expected to degrade
	// gracefully (continue without retrieved context) rather than fail
	// the user-facing request.
	ErrEmbeddingUnavailable = errors.New("embedding service unavailable")

	// ErrStoreQueryFailed signals a failed nearest-neighbor query.
	ErrStoreQueryFailed = errors.New("vector store query failed")

	// ErrStoreInsertFailed signals that one or more insert batches were
	// rejected by the store. Batches inserted before the failure are not
	// rolled back.
	ErrStoreInsertFailed = errors.New("vector store insert failed")
)
