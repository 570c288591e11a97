package handler

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/Kuzay3t/AgriLingua/internal/delivery/http/dto"
	"github.com/Kuzay3t/AgriLingua/internal/domain/entity"
	"github.com/Kuzay3t/AgriLingua/internal/domain/repository"
	"github.com/Kuzay3t/AgriLingua/internal/usecase/rag"

	"github.com/gofiber/fiber/v2"
)

type RAGHandler struct {
	ingestion *rag.IngestionService
	retrieval *rag.RetrievalService
	extractor *rag.TextExtractor
	chunkRepo repository.ChunkRepository
}

func NewRAGHandler(
	ingestion *rag.IngestionService,
	retrieval *rag.RetrievalService,
	extractor *rag.TextExtractor,
	chunkRepo repository.ChunkRepository,
) *RAGHandler {
	return &RAGHandler{
		ingestion: ingestion,
		retrieval: retrieval,
		extractor: extractor,
		chunkRepo: chunkRepo,
	}
}

// StoreChunks godoc
// @Summary      Store pre-chunked document content
// @Description  Embed and store a batch of already-split document chunks
// @Tags         RAG
// @Accept       json
// @Produce      json
// @Param        request  body  dto.StoreChunksRequest  true  "Chunks to store"
// @Success      201  {object}  dto.StoreChunksResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/rag/documents [post]
func (h *RAGHandler) StoreChunks(c *fiber.Ctx) error {
	var req dto.StoreChunksRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Invalid request body"})
	}

	if len(req.Chunks) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Chunks array is required"})
	}
	for _, chunk := range req.Chunks {
		if chunk.DocumentName == "" || chunk.Content == "" {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Each chunk requires document_name and content"})
		}
	}

	incoming := make([]entity.IncomingChunk, 0, len(req.Chunks))
	for _, chunk := range req.Chunks {
		incoming = append(incoming, entity.IncomingChunk{
			DocumentName: chunk.DocumentName,
			Content:      chunk.Content,
			Metadata:     chunk.Metadata,
		})
	}

	report, err := h.ingestion.IngestChunks(c.Context(), incoming)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Error: err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(dto.StoreChunksResponse{
		Success:  true,
		Inserted: report.Accepted,
		Message:  fmt.Sprintf("Successfully stored %d document chunks", report.Accepted),
	})
}

// Ingest godoc
// @Summary      Ingest a raw text document
// @Description  Chunk, embed, and store a document's raw text
// @Tags         RAG
// @Accept       json
// @Produce      json
// @Param        request  body  dto.IngestRequest  true  "Document to ingest"
// @Success      200  {object}  dto.IngestResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/rag/ingest [post]
func (h *RAGHandler) Ingest(c *fiber.Ctx) error {
	var req dto.IngestRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Invalid request body"})
	}

	if req.DocumentName == "" || req.Text == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "document_name and text are required"})
	}

	report, err := h.ingestion.Ingest(c.Context(), req.DocumentName, req.Text)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Error: err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(dto.IngestResponse{
		DocumentName: req.DocumentName,
		Accepted:     report.Accepted,
		Rejected:     report.Rejected,
	})
}

// Upload godoc
// @Summary      Ingest a PDF document
// @Description  Extract text from an uploaded PDF, then chunk, embed, and store it
// @Tags         RAG
// @Accept       multipart/form-data
// @Produce      json
// @Param        file           formData  file    true   "PDF file"
// @Param        document_name  formData  string  false  "Document name (defaults to filename)"
// @Success      200  {object}  dto.IngestResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/rag/ingest/upload [post]
func (h *RAGHandler) Upload(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Failed to get file"})
	}

	documentName := c.FormValue("document_name")
	if documentName == "" {
		documentName = strings.TrimSuffix(file.Filename, filepath.Ext(file.Filename))
	}

	fileData, err := file.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "failed to open file"})
	}
	defer fileData.Close()

	buf, err := io.ReadAll(fileData)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "failed to read file"})
	}

	text, err := h.extractor.ExtractFromPDF(buf)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: err.Error()})
	}

	report, err := h.ingestion.Ingest(c.Context(), documentName, text)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Error: err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(dto.IngestResponse{
		DocumentName: documentName,
		Accepted:     report.Accepted,
		Rejected:     report.Rejected,
	})
}

// Query godoc
// @Summary      Retrieve similar chunks
// @Description  Embed the query and return the most similar stored chunks
// @Tags         RAG
// @Accept       json
// @Produce      json
// @Param        request  body  dto.QueryRequest  true  "Query"
// @Success      200  {object}  dto.QueryResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/rag/query [post]
func (h *RAGHandler) Query(c *fiber.Ctx) error {
	var req dto.QueryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Invalid request body"})
	}

	if req.Query == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Query is required"})
	}

	chunks, err := h.retrieval.Retrieve(c.Context(), req.Query, req.TopK, -1)
	if err != nil {
		status := fiber.StatusInternalServerError
		if errors.Is(err, rag.ErrEmbeddingUnavailable) || errors.Is(err, rag.ErrStoreQueryFailed) {
			status = fiber.StatusBadGateway
		}
		return c.Status(status).JSON(dto.ErrorResponse{Error: err.Error()})
	}

	results := make([]dto.QueryResult, 0, len(chunks))
	for _, chunk := range chunks {
		results = append(results, dto.QueryResult{
			ID:           chunk.ID,
			DocumentName: chunk.DocumentName,
			Content:      chunk.Content,
			Metadata:     chunk.Metadata,
			Similarity:   chunk.Similarity,
		})
	}

	return c.Status(fiber.StatusOK).JSON(dto.QueryResponse{
		Query:   req.Query,
		Results: results,
	})
}

// ListDocuments godoc
// @Summary      List ingested documents
// @Description  Distinct document names with their chunk counts
// @Tags         RAG
// @Produce      json
// @Success      200  {object}  dto.ListDocumentsResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/rag/documents [get]
func (h *RAGHandler) ListDocuments(c *fiber.Ctx) error {
	docs, err := h.chunkRepo.ListDocuments(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}

	summaries := make([]dto.DocumentSummary, 0, len(docs))
	for _, doc := range docs {
		summaries = append(summaries, dto.DocumentSummary{
			DocumentName: doc.DocumentName,
			ChunkCount:   doc.ChunkCount,
		})
	}

	return c.Status(fiber.StatusOK).JSON(dto.ListDocumentsResponse{Documents: summaries})
}
