package postgres

import (
	"context"
	"time"

	"github.com/Kuzay3t/AgriLingua/internal/domain/entity"
	"github.com/Kuzay3t/AgriLingua/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pgvector/pgvector-go"
)

type chunkRepository struct {
	db *sqlx.DB
}

func NewChunkRepository(db *sqlx.DB) repository.ChunkRepository {
	return &chunkRepository{db: db}
}

// InsertBatch writes all chunks in one transaction, so a rejected batch
// inserts nothing and reports a count of 0.
func (r *chunkRepository) InsertBatch(ctx context.Context, chunks []entity.ChunkWithEmbedding) (int, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	query := `
		INSERT INTO document_chunks (id, document_name, content, metadata, embedding, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	for i := range chunks {
		metadata := chunks[i].Metadata
		if len(metadata) == 0 {
			metadata = []byte(`{}`)
		}

		_, err := tx.ExecContext(ctx, query,
			uuid.New().String(),
			chunks[i].DocumentName,
			chunks[i].Content,
			metadata,
			chunks[i].Embedding,
			time.Now(),
		)
		if err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}

	return len(chunks), nil
}

// SearchSimilar searches for similar chunks using vector cosine similarity
func (r *chunkRepository) SearchSimilar(ctx context.Context, embedding pgvector.Vector, threshold float64, limit int) ([]entity.SimilarChunk, error) {
	query := `
		SELECT
			id,
			document_name,
			content,
			metadata,
			created_at,
			1 - (embedding <=> $1) AS similarity
		FROM document_chunks
		WHERE (1 - (embedding <=> $1)) >= $2
		ORDER BY embedding <=> $1
		LIMIT $3
	`

	rows, err := r.db.QueryContext(ctx, query, embedding, threshold, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var chunks []entity.SimilarChunk
	for rows.Next() {
		var chunk entity.SimilarChunk
		err := rows.Scan(
			&chunk.ID,
			&chunk.DocumentName,
			&chunk.Content,
			&chunk.Metadata,
			&chunk.CreatedAt,
			&chunk.Similarity,
		)
		if err != nil {
			return nil, err
		}
		chunks = append(chunks, chunk)
	}

	return chunks, rows.Err()
}

func (r *chunkRepository) ListDocuments(ctx context.Context) ([]entity.DocumentSummary, error) {
	var docs []entity.DocumentSummary
	query := `
		SELECT document_name, COUNT(*) AS chunk_count
		FROM document_chunks
		GROUP BY document_name
		ORDER BY document_name
	`
	if err := r.db.SelectContext(ctx, &docs, query); err != nil {
		return nil, err
	}
	return docs, nil
}
