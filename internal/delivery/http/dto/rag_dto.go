package dto

import "encoding/json"

type IncomingChunk struct {
	DocumentName string          `json:"document_name"`
	Content      string          `json:"content"`
	Metadata     json.RawMessage `json:"metadata,omitempty"`
}

type StoreChunksRequest struct {
	Chunks []IncomingChunk `json:"chunks"`
}

type StoreChunksResponse struct {
	Success  bool   `json:"success"`
	Inserted int    `json:"inserted"`
	Message  string `json:"message"`
}

type IngestRequest struct {
	DocumentName string `json:"document_name"`
	Text         string `json:"text"`
}

type IngestResponse struct {
	DocumentName string `json:"document_name"`
	Accepted     int    `json:"accepted"`
	Rejected     int    `json:"rejected"`
}

type QueryRequest struct {
	Query string `json:"query"`
	TopK  int    `json:"topK"`
}

type QueryResult struct {
	ID           string          `json:"id"`
	DocumentName string          `json:"document_name"`
	Content      string          `json:"content"`
	Metadata     json.RawMessage `json:"metadata"`
	Similarity   float64         `json:"similarity"`
}

type QueryResponse struct {
	Query   string        `json:"query"`
	Results []QueryResult `json:"results"`
}

type DocumentSummary struct {
	DocumentName string `json:"document_name"`
	ChunkCount   int    `json:"chunk_count"`
}

type ListDocumentsResponse struct {
	Documents []DocumentSummary `json:"documents"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
