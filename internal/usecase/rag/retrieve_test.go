package rag

import (
	"context"
	"errors"
	"testing"

	"github.com/Kuzay3t/AgriLingua/internal/adapter/repository/memory"
	"github.com/Kuzay3t/AgriLingua/internal/domain/entity"

	"github.com/pgvector/pgvector-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingSearchRepo struct {
	recordingRepo
}

func (r *failingSearchRepo) SearchSimilar(ctx context.Context, embedding pgvector.Vector, threshold float64, limit int) ([]entity.SimilarChunk, error) {
	return nil, errors.New("connection refused")
}

func seededStore(t *testing.T) *memory.ChunkRepository {
	t.Helper()

	repo := memory.NewChunkRepository()
	chunks := []entity.ChunkWithEmbedding{
		{
			DocumentName: "Soil Type Handout",
			Content:      "WSU Percolation Test for Drainage: dig a hole 1 foot wide by 1 foot deep, fill with water and observe the drainage rate.",
			Embedding:    pgvector.NewVector([]float32{1, 0, 0}),
		},
		{
			DocumentName: "Soil Type Handout",
			Content:      "Clay soil has poor drainage and excellent nutrient retention; sandy soil drains fast but holds few nutrients.",
			Embedding:    pgvector.NewVector([]float32{0.8, 0.6, 0}),
		},
		{
			DocumentName: "Irrigation Water Management Guide",
			Content:      "Most vegetables are sensitive to water stress two to three weeks before harvest and during the harvest period.",
			Embedding:    pgvector.NewVector([]float32{0, 1, 0}),
		},
	}

	inserted, err := repo.InsertBatch(context.Background(), chunks)
	require.NoError(t, err)
	require.Equal(t, len(chunks), inserted)

	return repo
}

func TestRetrieveFiltersAndOrdersBySimilarity(t *testing.T) {
	svc := NewRetrievalService(&fakeEmbedder{}, seededStore(t), 5, 0.3)

	results, err := svc.Retrieve(context.Background(), "How do I test my soil drainage?", 3, 0.3)
	require.NoError(t, err)

	// the orthogonal irrigation chunk falls below threshold
	require.Len(t, results, 2)
	assert.Contains(t, results[0].Content, "WSU Percolation Test")
	assert.InDelta(t, 1.0, results[0].Similarity, 1e-6)
	assert.InDelta(t, 0.8, results[1].Similarity, 1e-6)

	for i := 1; i < len(results); i++ {
		assert.GreaterOrEqual(t, results[i-1].Similarity, results[i].Similarity)
	}
	for _, result := range results {
		assert.GreaterOrEqual(t, result.Similarity, 0.3)
	}
}

func TestRetrieveRespectsTopK(t *testing.T) {
	svc := NewRetrievalService(&fakeEmbedder{}, seededStore(t), 5, 0.3)

	results, err := svc.Retrieve(context.Background(), "soil drainage", 1, 0.0)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.InDelta(t, 1.0, results[0].Similarity, 1e-6)
}

func TestRetrieveUsesConfiguredDefaults(t *testing.T) {
	svc := NewRetrievalService(&fakeEmbedder{}, seededStore(t), 2, 0.0)

	results, err := svc.Retrieve(context.Background(), "soil drainage", 0, -1)
	require.NoError(t, err)
	assert.Len(t, results, 2)
}

func TestRetrieveEmbeddingFailure(t *testing.T) {
	svc := NewRetrievalService(&fakeEmbedder{failSubstring: "drainage"}, seededStore(t), 5, 0.3)

	_, err := svc.Retrieve(context.Background(), "soil drainage", 3, 0.3)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrEmbeddingUnavailable))
}

func TestRetrieveStoreFailure(t *testing.T) {
	svc := NewRetrievalService(&fakeEmbedder{}, &failingSearchRepo{}, 5, 0.3)

	_, err := svc.Retrieve(context.Background(), "soil drainage", 3, 0.3)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrStoreQueryFailed))
}

func TestContextAvailable(t *testing.T) {
	svc := NewRetrievalService(&fakeEmbedder{}, seededStore(t), 5, 0.3)

	result := svc.Context(context.Background(), "soil drainage", 3, 0.3)
	require.True(t, result.Available)
	assert.Contains(t, result.Text, "WSU Percolation Test")
	assert.Len(t, result.Chunks, 2)
}

func TestContextUnavailableOnEmbeddingFailure(t *testing.T) {
	svc := NewRetrievalService(&fakeEmbedder{failSubstring: "drainage"}, seededStore(t), 5, 0.3)

	result := svc.Context(context.Background(), "soil drainage", 3, 0.3)
	assert.False(t, result.Available)
	assert.NotEmpty(t, result.Reason)
	assert.Empty(t, result.Text)
}

func TestContextUnavailableWhenNothingAboveThreshold(t *testing.T) {
	svc := NewRetrievalService(&fakeEmbedder{}, memory.NewChunkRepository(), 5, 0.3)

	result := svc.Context(context.Background(), "soil drainage", 3, 0.3)
	assert.False(t, result.Available)
	assert.NotEmpty(t, result.Reason)
}
