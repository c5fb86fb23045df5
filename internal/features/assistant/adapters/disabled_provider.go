package adapters

import (
	"context"
	"errors"

	"roadways-api/internal/features/assistant/domain"
)

// ErrAssistantDisabled is returned when no API key is configured.
var ErrAssistantDisabled = errors.New("assistant is not configured")

// DisabledProvider stands in when no Gemini API key is configured. Every
// request fails, which the service turns into its canned fallback reply, so
// the chat widget stays functional without a key.
type DisabledProvider struct{}

// NewDisabledProvider creates a new DisabledProvider.
func NewDisabledProvider() *DisabledProvider {
	return &DisabledProvider{}
}

// GenerateReply always fails with ErrAssistantDisabled.
func (p *DisabledProvider) GenerateReply(ctx context.Context, systemInstruction string, history []domain.Message, question string) (string, error) {
	return "", ErrAssistantDisabled
}
