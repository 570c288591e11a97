package rag

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/Kuzay3t/AgriLingua/internal/domain/entity"
	"github.com/Kuzay3t/AgriLingua/internal/domain/repository"

	"github.com/pgvector/pgvector-go"
)

// Embedder converts text into a fixed-dimension, unit-normalized vector.
type Embedder interface {
	GenerateEmbedding(ctx context.Context, text string) (pgvector.Vector, error)
}

// IngestionService runs the write path: chunk raw text, embed each chunk,
// and persist the results in bounded batches.
type IngestionService struct {
	chunker   *Chunker
	embedder  Embedder
	chunkRepo repository.ChunkRepository
	batchSize int
}

func NewIngestionService(
	chunker *Chunker,
	embedder Embedder,
	chunkRepo repository.ChunkRepository,
	batchSize int,
) *IngestionService {
	return &IngestionService{
		chunker:   chunker,
		embedder:  embedder,
		chunkRepo: chunkRepo,
		batchSize: batchSize,
	}
}

// Ingest chunks rawText, embeds every chunk, and stores the results under
// documentName. A chunk whose embedding fails is counted as rejected and
// skipped; one bad chunk never aborts the document. Re-ingesting the same
// name is strictly additive: no dedup or versioning is attempted.
func (s *IngestionService) Ingest(ctx context.Context, documentName, rawText string) (entity.IngestionReport, error) {
	textChunks := s.chunker.Chunk(rawText)
	if len(textChunks) == 0 {
		return entity.IngestionReport{}, nil
	}
	log.Printf("ingest %s: %d chunks produced", documentName, len(textChunks))

	var report entity.IngestionReport
	prepared := make([]entity.ChunkWithEmbedding, 0, len(textChunks))

	for i, content := range textChunks {
		embedding, err := s.embedder.GenerateEmbedding(ctx, content)
		if err != nil {
			log.Printf("ingest %s: embedding failed for chunk %d: %v", documentName, i, err)
			report.Rejected++
			continue
		}

		metadata, _ := json.Marshal(entity.ChunkMetadata{
			ChunkIndex:  i,
			TotalChunks: len(textChunks),
		})
		prepared = append(prepared, entity.ChunkWithEmbedding{
			DocumentName: documentName,
			Content:      content,
			Metadata:     metadata,
			Embedding:    embedding,
		})
	}

	insertErr := s.insertBatches(ctx, prepared, &report)
	return report, insertErr
}

// IngestChunks is the pre-chunked write path: the caller supplies already
// split chunks with their own metadata, and the service embeds and stores
// them with the same per-chunk failure isolation as Ingest.
func (s *IngestionService) IngestChunks(ctx context.Context, incoming []entity.IncomingChunk) (entity.IngestionReport, error) {
	var report entity.IngestionReport
	prepared := make([]entity.ChunkWithEmbedding, 0, len(incoming))

	for i, chunk := range incoming {
		embedding, err := s.embedder.GenerateEmbedding(ctx, chunk.Content)
		if err != nil {
			log.Printf("ingest %s: embedding failed for chunk %d: %v", chunk.DocumentName, i, err)
			report.Rejected++
			continue
		}

		metadata := chunk.Metadata
		if len(metadata) == 0 {
			metadata = json.RawMessage(`{}`)
		}
		prepared = append(prepared, entity.ChunkWithEmbedding{
			DocumentName: chunk.DocumentName,
			Content:      chunk.Content,
			Metadata:     metadata,
			Embedding:    embedding,
		})
	}

	insertErr := s.insertBatches(ctx, prepared, &report)
	return report, insertErr
}

// insertBatches writes prepared chunks sequentially in batches of batchSize.
// A failed batch counts its chunks as rejected and processing continues with
// the next batch; earlier batches are not rolled back.
func (s *IngestionService) insertBatches(ctx context.Context, prepared []entity.ChunkWithEmbedding, report *entity.IngestionReport) error {
	var failed error

	for start := 0; start < len(prepared); start += s.batchSize {
		end := start + s.batchSize
		if end > len(prepared) {
			end = len(prepared)
		}
		batch := prepared[start:end]

		inserted, err := s.chunkRepo.InsertBatch(ctx, batch)
		if err != nil {
			log.Printf("ingest: batch insert of %d chunks failed: %v", len(batch), err)
			report.Rejected += len(batch)
			failed = fmt.Errorf("%w: %v", ErrStoreInsertFailed, err)
			continue
		}
		report.Accepted += inserted
	}

	return failed
}
