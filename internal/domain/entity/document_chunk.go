package entity

import (
	"encoding/json"
	"time"

	"github.com/pgvector/pgvector-go"
)

// ChunkMetadata is the metadata the ingestion pipeline attaches to chunks it
// produces itself. Chunks arriving pre-chunked may carry arbitrary metadata,
// which is stored and returned verbatim.
type ChunkMetadata struct {
	ChunkIndex  int `json:"chunk_index"`
	TotalChunks int `json:"total_chunks"`
}

// IncomingChunk is a chunk as submitted by a caller, before embedding.
type IncomingChunk struct {
	DocumentName string
	Content      string
	Metadata     json.RawMessage
}

// ChunkWithEmbedding is a chunk ready for storage. The embedding is mandatory:
// a chunk is never written without one.
type ChunkWithEmbedding struct {
	DocumentName string
	Content      string
	Metadata     json.RawMessage
	Embedding    pgvector.Vector
}

type StoredChunk struct {
	ID           string          `db:"id" json:"id"`
	DocumentName string          `db:"document_name" json:"document_name"`
	Content      string          `db:"content" json:"content"`
	Metadata     json.RawMessage `db:"metadata" json:"metadata"`
	CreatedAt    time.Time       `db:"created_at" json:"created_at"`
}

type SimilarChunk struct {
	StoredChunk
	Similarity float64 `db:"similarity" json:"similarity"`
}

// DocumentSummary aggregates a logical document out of its stored chunks.
// Documents are not persisted as rows of their own.
type DocumentSummary struct {
	DocumentName string `db:"document_name" json:"document_name"`
	ChunkCount   int    `db:"chunk_count" json:"chunk_count"`
}

type IngestionReport struct {
	Accepted int `json:"accepted"`
	Rejected int `json:"rejected"`
}
