package handler

import (
	"github.com/Kuzay3t/AgriLingua/internal/delivery/http/dto"
	"github.com/Kuzay3t/AgriLingua/internal/usecase/chat"

	"github.com/gofiber/fiber/v2"
)

type ChatHandler struct {
	orchestrator *chat.Orchestrator
}

func NewChatHandler(orchestrator *chat.Orchestrator) *ChatHandler {
	return &ChatHandler{orchestrator: orchestrator}
}

// Chat godoc
// @Summary      Chat with the agricultural assistant
// @Description  Answer a farmer's question, grounded in retrieved documents when available
// @Tags         Chat
// @Accept       json
// @Produce      json
// @Param        request  body  dto.ChatRequest  true  "Message"
// @Success      200  {object}  dto.ChatResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/chat [post]
func (h *ChatHandler) Chat(c *fiber.Ctx) error {
	var req dto.ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Invalid request body"})
	}

	if req.Message == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Message is required"})
	}

	language := req.Language
	if language == "" {
		language = "english"
	}

	response := h.orchestrator.Respond(c.Context(), req.Message, language)

	return c.Status(fiber.StatusOK).JSON(dto.ChatResponse{
		Response: response,
		Language: language,
	})
}
