package handler

import (
	"errors"
	"net/http"

	"roadways-api/internal/core/logger"
	"roadways-api/internal/features/assistant/domain"
	"roadways-api/internal/features/assistant/ports"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// AssistantHandler handles HTTP requests for the chat assistant.
type AssistantHandler struct {
	assistant ports.AssistantService
}

// NewAssistantHandler creates a new AssistantHandler.
func NewAssistantHandler(assistant ports.AssistantService) *AssistantHandler {
	return &AssistantHandler{
		assistant: assistant,
	}
}

// ChatMessage is one prior conversation turn in the request body.
type ChatMessage struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

// ChatRequest represents the request body for a chat turn.
type ChatRequest struct {
	History []ChatMessage `json:"history"`
	Message string        `json:"message"`
}

// ChatResponse represents the assistant's answer.
type ChatResponse struct {
	Reply string `json:"reply"`
}

// Greeting handles GET /chat/greeting.
// @Summary Get the assistant greeting
// @Tags Assistant
// @Produce json
// @Success 200 {object} ChatResponse
// @Failure 500 {object} map[string]string
// @Router /chat/greeting [get]
func (h *AssistantHandler) Greeting(c *fiber.Ctx) error {
	greeting, err := h.assistant.Greeting(c.Context())
	if err != nil {
		logger.Get().Error("Failed to build greeting", zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}
	return c.Status(http.StatusOK).JSON(ChatResponse{Reply: greeting})
}

// Chat handles POST /chat.
// @Summary Ask the assistant a question
// @Description Answers logistics questions using live company and catalog data.
// @Tags Assistant
// @Accept json
// @Produce json
// @Param chat body ChatRequest true "Conversation so far plus the new question"
// @Success 200 {object} ChatResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /chat [post]
func (h *AssistantHandler) Chat(c *fiber.Ctx) error {
	var req ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	history := make([]domain.Message, 0, len(req.History))
	for _, msg := range req.History {
		role, err := domain.ParseRole(msg.Role)
		if err != nil {
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid message role. Must be user or model",
			})
		}
		history = append(history, domain.Message{Role: role, Text: msg.Text})
	}

	reply, err := h.assistant.Chat(c.Context(), history, req.Message)
	if err != nil {
		if errors.Is(err, domain.ErrEmptyQuestion) {
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{
				"error": "Message must not be empty",
			})
		}
		logger.Get().Error("Chat failed", zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}

	return c.Status(http.StatusOK).JSON(ChatResponse{Reply: reply})
}
