package ports

import (
	"context"

	"roadways-api/internal/features/assistant/domain"
)

// AssistantService defines the primary port for the chat assistant.
type AssistantService interface {
	// Greeting returns the assistant's opening message.
	Greeting(ctx context.Context) (string, error)
	// Chat answers the visitor's question given the prior conversation.
	Chat(ctx context.Context, history []domain.Message, question string) (string, error)
}

// Provider defines the secondary port to the language model backend.
type Provider interface {
	GenerateReply(ctx context.Context, systemInstruction string, history []domain.Message, question string) (string, error)
}
