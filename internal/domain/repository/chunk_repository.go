package repository

import (
	"context"

	"github.com/Kuzay3t/AgriLingua/internal/domain/entity"

	"github.com/pgvector/pgvector-go"
)

// ChunkRepository persists chunks with their embeddings and answers
// nearest-neighbor queries. Append-only: document lifecycle management
// (re-ingestion, dedup) is not part of this contract.
type ChunkRepository interface {
	// InsertBatch writes a batch of chunks and returns how many were
	// inserted. Atomicity is whatever the backing store provides for a
	// single batch; on error the count is 0 for that batch.
	InsertBatch(ctx context.Context, chunks []entity.ChunkWithEmbedding) (int, error)

	// SearchSimilar returns at most limit chunks with cosine similarity
	// >= threshold against the query embedding, ordered by descending
	// similarity. Tie order at equal similarity is store-defined.
	SearchSimilar(ctx context.Context, embedding pgvector.Vector, threshold float64, limit int) ([]entity.SimilarChunk, error)

	// ListDocuments reports the distinct document names present in the
	// store with their chunk counts.
	ListDocuments(ctx context.Context) ([]entity.DocumentSummary, error)
}
