package chat

import (
	"context"
	"log"

	"github.com/Kuzay3t/AgriLingua/internal/usecase/rag"
)

// ContextProvider is the retrieval boundary the orchestrator consumes.
// It never fails: an unavailable context is a tagged result, not an error.
type ContextProvider interface {
	Context(ctx context.Context, query string, topK int, threshold float64) rag.ContextResult
}

// ChatService is the hosted LLM boundary.
type ChatService interface {
	GenerateAnswer(ctx context.Context, message, ragContext, language string) (string, error)
}

// Orchestrator glues retrieval context to the chat model. It owns no state
// and guarantees a best-effort answer: retrieval failure means answering
// without context, LLM failure means a canned per-language response.
// A raw error never reaches the farmer.
type Orchestrator struct {
	retriever ContextProvider
	chat      ChatService
	topK      int
	threshold float64
}

func NewOrchestrator(retriever ContextProvider, chat ChatService, topK int, threshold float64) *Orchestrator {
	return &Orchestrator{
		retriever: retriever,
		chat:      chat,
		topK:      topK,
		threshold: threshold,
	}
}

func (o *Orchestrator) Respond(ctx context.Context, message, language string) string {
	if language == "" {
		language = "english"
	}

	ragContext := ""
	result := o.retriever.Context(ctx, message, o.topK, o.threshold)
	if result.Available {
		ragContext = result.Text
	} else {
		log.Printf("chat: proceeding without retrieved context: %s", result.Reason)
	}

	answer, err := o.chat.GenerateAnswer(ctx, message, ragContext, language)
	if err != nil {
		log.Printf("chat: model unavailable, using fallback response: %v", err)
		return fallbackResponse(message, language)
	}

	return answer
}
