package handler_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/Kuzay3t/AgriLingua/internal/delivery/http/dto"
	"github.com/Kuzay3t/AgriLingua/internal/delivery/http/handler"
	"github.com/Kuzay3t/AgriLingua/internal/usecase/chat"
	"github.com/Kuzay3t/AgriLingua/internal/usecase/rag"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubContextProvider struct {
	result rag.ContextResult
}

func (s *stubContextProvider) Context(ctx context.Context, query string, topK int, threshold float64) rag.ContextResult {
	return s.result
}

type stubChatService struct {
	answer string
	err    error
}

func (s *stubChatService) GenerateAnswer(ctx context.Context, message, ragContext, language string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return s.answer, nil
}

func newChatApp(retriever chat.ContextProvider, model chat.ChatService) *fiber.App {
	orchestrator := chat.NewOrchestrator(retriever, model, 5, 0.3)
	h := handler.NewChatHandler(orchestrator)

	app := fiber.New()
	app.Post("/api/chat", h.Chat)
	return app
}

func TestChatRejectsMissingMessage(t *testing.T) {
	app := newChatApp(
		&stubContextProvider{result: rag.ContextResult{Reason: "empty"}},
		&stubChatService{answer: "hello"},
	)

	resp := postJSON(t, app, "/api/chat", dto.ChatRequest{Language: "english"})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestChatRespondsWithModelAnswer(t *testing.T) {
	app := newChatApp(
		&stubContextProvider{result: rag.ContextResult{Available: true, Text: "context"}},
		&stubChatService{answer: "Water early in the morning."},
	)

	resp := postJSON(t, app, "/api/chat", dto.ChatRequest{Message: "When should I water?", Language: "english"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decode[dto.ChatResponse](t, resp)
	assert.Equal(t, "Water early in the morning.", body.Response)
	assert.Equal(t, "english", body.Language)
}

func TestChatNeverSurfacesBackendFailure(t *testing.T) {
	app := newChatApp(
		&stubContextProvider{result: rag.ContextResult{Reason: "store down"}},
		&stubChatService{err: errors.New("model down")},
	)

	resp := postJSON(t, app, "/api/chat", dto.ChatRequest{Message: "How do I improve soil health?"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decode[dto.ChatResponse](t, resp)
	assert.NotEmpty(t, body.Response)
	assert.Equal(t, "english", body.Language)
}
