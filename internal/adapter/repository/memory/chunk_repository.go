package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/Kuzay3t/AgriLingua/internal/domain/entity"
	"github.com/Kuzay3t/AgriLingua/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
)

// ChunkRepository is a brute-force in-memory store. Vectors are assumed
// unit-normalized, so cosine similarity is a plain dot product. Used by
// tests and local development; the Postgres adapter is the production store.
type ChunkRepository struct {
	mu      sync.RWMutex
	chunks  []entity.StoredChunk
	vectors [][]float32
}

func NewChunkRepository() *ChunkRepository {
	return &ChunkRepository{}
}

var _ repository.ChunkRepository = (*ChunkRepository)(nil)

func (r *ChunkRepository) InsertBatch(ctx context.Context, chunks []entity.ChunkWithEmbedding) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, chunk := range chunks {
		metadata := chunk.Metadata
		if len(metadata) == 0 {
			metadata = []byte(`{}`)
		}
		r.chunks = append(r.chunks, entity.StoredChunk{
			ID:           uuid.New().String(),
			DocumentName: chunk.DocumentName,
			Content:      chunk.Content,
			Metadata:     metadata,
			CreatedAt:    time.Now(),
		})
		r.vectors = append(r.vectors, chunk.Embedding.Slice())
	}

	return len(chunks), nil
}

func (r *ChunkRepository) SearchSimilar(ctx context.Context, embedding pgvector.Vector, threshold float64, limit int) ([]entity.SimilarChunk, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	query := embedding.Slice()

	var results []entity.SimilarChunk
	for i := range r.vectors {
		similarity := dot(r.vectors[i], query)
		if similarity >= threshold {
			results = append(results, entity.SimilarChunk{
				StoredChunk: r.chunks[i],
				Similarity:  similarity,
			})
		}
	}

	// stable sort: ties keep insertion order
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Similarity > results[j].Similarity
	})

	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}

	return results, nil
}

func (r *ChunkRepository) ListDocuments(ctx context.Context) ([]entity.DocumentSummary, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	counts := make(map[string]int)
	var order []string
	for _, chunk := range r.chunks {
		if _, seen := counts[chunk.DocumentName]; !seen {
			order = append(order, chunk.DocumentName)
		}
		counts[chunk.DocumentName]++
	}
	sort.Strings(order)

	docs := make([]entity.DocumentSummary, 0, len(order))
	for _, name := range order {
		docs = append(docs, entity.DocumentSummary{
			DocumentName: name,
			ChunkCount:   counts[name],
		})
	}

	return docs, nil
}

func dot(a, b []float32) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	sum := 0.0
	for i := 0; i < n; i++ {
		sum += float64(a[i]) * float64(b[i])
	}
	return sum
}
