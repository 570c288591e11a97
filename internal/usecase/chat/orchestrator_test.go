package chat

import (
	"context"
	"errors"
	"testing"

	"github.com/Kuzay3t/AgriLingua/internal/usecase/rag"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeContextProvider struct {
	result rag.ContextResult
}

func (f *fakeContextProvider) Context(ctx context.Context, query string, topK int, threshold float64) rag.ContextResult {
	return f.result
}

type fakeChatService struct {
	answer     string
	err        error
	gotContext string
	gotLang    string
}

func (f *fakeChatService) GenerateAnswer(ctx context.Context, message, ragContext, language string) (string, error) {
	f.gotContext = ragContext
	f.gotLang = language
	if f.err != nil {
		return "", f.err
	}
	return f.answer, nil
}

func TestRespondPassesRetrievedContextToModel(t *testing.T) {
	retriever := &fakeContextProvider{result: rag.ContextResult{
		Available: true,
		Text:      "Ideal drainage: 2 inches per hour.",
	}}
	model := &fakeChatService{answer: "Dig a test hole and time the drainage."}

	o := NewOrchestrator(retriever, model, 5, 0.3)
	response := o.Respond(context.Background(), "How do I test soil drainage?", "english")

	assert.Equal(t, "Dig a test hole and time the drainage.", response)
	assert.Equal(t, "Ideal drainage: 2 inches per hour.", model.gotContext)
}

func TestRespondDegradesToEmptyContextOnRetrievalFailure(t *testing.T) {
	retriever := &fakeContextProvider{result: rag.ContextResult{
		Reason: "embedding service unavailable",
	}}
	model := &fakeChatService{answer: "General advice without citations."}

	o := NewOrchestrator(retriever, model, 5, 0.3)
	response := o.Respond(context.Background(), "How do I test soil drainage?", "english")

	assert.Equal(t, "General advice without citations.", response)
	assert.Empty(t, model.gotContext)
}

func TestRespondFallsBackWhenModelUnavailable(t *testing.T) {
	retriever := &fakeContextProvider{result: rag.ContextResult{Reason: "store down"}}
	model := &fakeChatService{err: errors.New("rate limited")}

	o := NewOrchestrator(retriever, model, 5, 0.3)
	response := o.Respond(context.Background(), "How do I improve soil health?", "english")

	require.NotEmpty(t, response)
	assert.Contains(t, response, "Soil health")
}

func TestRespondFallbackIsLocalized(t *testing.T) {
	retriever := &fakeContextProvider{result: rag.ContextResult{Reason: "store down"}}
	model := &fakeChatService{err: errors.New("rate limited")}

	o := NewOrchestrator(retriever, model, 5, 0.3)
	response := o.Respond(context.Background(), "Yaya zan inganta kasa?", "hausa")

	require.NotEmpty(t, response)
	assert.Contains(t, response, "noma")
}

func TestRespondFallbackRegionalCropAdvice(t *testing.T) {
	retriever := &fakeContextProvider{result: rag.ContextResult{Reason: "store down"}}
	model := &fakeChatService{err: errors.New("rate limited")}

	o := NewOrchestrator(retriever, model, 5, 0.3)
	response := o.Respond(context.Background(), "What crops should I plant in Kaduna?", "english")

	assert.Contains(t, response, "Northern Nigeria")
}

func TestRespondDefaultsLanguageToEnglish(t *testing.T) {
	retriever := &fakeContextProvider{result: rag.ContextResult{Reason: "no chunks"}}
	model := &fakeChatService{answer: "ok"}

	o := NewOrchestrator(retriever, model, 5, 0.3)
	o.Respond(context.Background(), "hello", "")

	assert.Equal(t, "english", model.gotLang)
}
