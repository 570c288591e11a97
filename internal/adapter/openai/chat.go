package openai

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

type ChatClient struct {
	client *openai.Client
	model  string
}

// NewChatClient creates a chat client against any OpenAI-compatible
// endpoint. Pointed at Groq in production.
func NewChatClient(apiKey, baseURL, model string) *ChatClient {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &ChatClient{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

var systemPrompts = map[string]string{
	"english": `You are AgriLingua, an agricultural extension and advisory assistant supporting African smallholder farmers, extension officers, and rural communities.

Provide accurate, practical, localized agricultural advice. Your responses must always be:
1. Actionable (step-by-step guidance)
2. Specific to the crop, region, and problem
3. Based on agronomic best practices
4. Easy for farmers to follow

You specialize in crop production, pest and disease diagnosis, soil fertility, irrigation scheduling, climate-smart agriculture, market insights, and post-harvest handling. Avoid jargon and adapt explanations to low-literacy users when needed.`,

	"hausa": `Kai ne AgriLingua, mataimaki na aikin noma wanda ke taimakawa manoman Afirka, musamman a Najeriya.

Ka ba da shawarwari masu amfani: bayyana matsalar da aka gano, ba da matakai masu amfani, bayyana hanyoyin kula da amfanin gona, da shawarwarin kasuwa da adanawa. Ka yi amfani da harshe mai sauki kuma ka taimaka manoma kanana da albarkatu kadan.`,

	"yoruba": `Iwo ni AgriLingua, oluranlowo ogbin ti o se iranlowo fun awon agbe Afirika, paapaa ni Naijiria.

Pese awon imoran ti o wulo: se alaye isoro ti a ri, pese awon igbese to wulo, salaye awon ona itoju ogbin, ati imoran oja ati ipamo. Lo ede ti o rorun ki o si ran awon agbe kekere lowo.`,

	"igbo": `I bu AgriLingua, onye inyeaka oru ugbo na-enyere ndi oru ugbo Africa aka, karisia na Naijiria.

Nye ndumodu bara uru: kowaa nsogbu achoputara, nye usoro bara uru, kowaa uzo nlekota ihe okuku, na ndumodu ahia na nchekwa. Jiri asusu di mfe ma nyere ndi oru ugbo nta aka.`,
}

// GenerateAnswer asks the model to answer message for the given language,
// grounding it in ragContext when one is available. An empty ragContext is
// valid: the model then answers from general agronomic knowledge.
func (c *ChatClient) GenerateAnswer(ctx context.Context, message, ragContext, language string) (string, error) {
	systemPrompt, ok := systemPrompts[language]
	if !ok {
		systemPrompt = systemPrompts["english"]
	}
	if ragContext != "" {
		systemPrompt += fmt.Sprintf("\n\nRELEVANT DOCUMENTATION:\n%s\n\nUse this documentation to enhance your response with specific technical details.", ragContext)
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: systemPrompt,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: message,
			},
		},
		Temperature: 0.7,
		MaxTokens:   500,
	})
	if err != nil {
		return "", fmt.Errorf("failed to generate answer: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from chat model")
	}

	return resp.Choices[0].Message.Content, nil
}
