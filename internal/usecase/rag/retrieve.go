package rag

import (
	"context"
	"fmt"
	"strings"

	"github.com/Kuzay3t/AgriLingua/internal/domain/entity"
	"github.com/Kuzay3t/AgriLingua/internal/domain/repository"
)

// RetrievalService runs the read path: embed a query and return the most
// similar stored chunks. Stateless; defaults come from configuration at
// construction time.
type RetrievalService struct {
	embedder         Embedder
	chunkRepo        repository.ChunkRepository
	defaultTopK      int
	defaultThreshold float64
}

func NewRetrievalService(
	embedder Embedder,
	chunkRepo repository.ChunkRepository,
	topK int,
	threshold float64,
) *RetrievalService {
	return &RetrievalService{
		embedder:         embedder,
		chunkRepo:        chunkRepo,
		defaultTopK:      topK,
		defaultThreshold: threshold,
	}
}

// Retrieve embeds query and returns the topK most similar chunks with
// similarity >= threshold, ordered by descending similarity. topK <= 0 and
// threshold < 0 fall back to the configured defaults.
func (s *RetrievalService) Retrieve(ctx context.Context, query string, topK int, threshold float64) ([]entity.SimilarChunk, error) {
	if topK <= 0 {
		topK = s.defaultTopK
	}
	if threshold < 0 {
		threshold = s.defaultThreshold
	}

	embedding, err := s.embedder.GenerateEmbedding(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEmbeddingUnavailable, err)
	}

	chunks, err := s.chunkRepo.SearchSimilar(ctx, embedding, threshold, topK)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreQueryFailed, err)
	}

	return chunks, nil
}

// ContextResult is the tagged outcome of a best-effort context lookup.
// Callers switch on Available instead of handling errors: an unavailable
// context is an expected condition, not a failure of the caller's request.
type ContextResult struct {
	Available bool
	Reason    string
	Text      string
	Chunks    []entity.SimilarChunk
}

// Context retrieves chunks for query and joins their contents into a single
// context block. It never returns an error: any failure or empty result
// comes back as an unavailable ContextResult with the reason recorded.
func (s *RetrievalService) Context(ctx context.Context, query string, topK int, threshold float64) ContextResult {
	chunks, err := s.Retrieve(ctx, query, topK, threshold)
	if err != nil {
		return ContextResult{Reason: err.Error()}
	}
	if len(chunks) == 0 {
		return ContextResult{Reason: "no chunks above threshold"}
	}

	contents := make([]string, len(chunks))
	for i, chunk := range chunks {
		contents[i] = chunk.Content
	}

	return ContextResult{
		Available: true,
		Text:      strings.Join(contents, "\n\n"),
		Chunks:    chunks,
	}
}
