package service

import (
	"context"
	"fmt"
	"strings"

	"roadways-api/internal/core/logger"
	"roadways-api/internal/features/assistant/domain"
	"roadways-api/internal/features/assistant/ports"
	catalogports "roadways-api/internal/features/catalog/ports"
	companyports "roadways-api/internal/features/company/ports"

	"go.uber.org/zap"
)

// fallbackReply is sent when the model backend is unreachable so the widget
// never surfaces a raw error to the visitor.
const fallbackReply = "Sorry, I encountered an error. Please try again later or contact us directly."

// AssistantServiceImpl implements ports.AssistantService. The system
// instruction is rebuilt per request from live company and catalog data so
// admin edits take effect without a restart.
type AssistantServiceImpl struct {
	provider ports.Provider
	company  companyports.CompanyService
	catalog  catalogports.CatalogService
}

// NewAssistantService creates a new AssistantServiceImpl.
func NewAssistantService(provider ports.Provider, company companyports.CompanyService, catalog catalogports.CatalogService) *AssistantServiceImpl {
	return &AssistantServiceImpl{
		provider: provider,
		company:  company,
		catalog:  catalog,
	}
}

// Greeting returns the assistant's opening message.
func (s *AssistantServiceImpl) Greeting(ctx context.Context) (string, error) {
	details, err := s.company.GetDetails(ctx)
	if err != nil {
		return "", fmt.Errorf("service: failed to load company details: %w", err)
	}
	return fmt.Sprintf("Namaste! I am the %s Assistant. How can I help you with your logistics needs today?", details.Name), nil
}

// Chat answers the visitor's question given the prior conversation. Backend
// failures degrade to a canned apology instead of an error response.
func (s *AssistantServiceImpl) Chat(ctx context.Context, history []domain.Message, question string) (string, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return "", domain.ErrEmptyQuestion
	}

	instruction, err := s.systemInstruction(ctx)
	if err != nil {
		return "", err
	}

	reply, err := s.provider.GenerateReply(ctx, instruction, history, question)
	if err != nil {
		logger.Get().Warn("Assistant backend failed, serving fallback", zap.Error(err))
		return fallbackReply, nil
	}

	return reply, nil
}

func (s *AssistantServiceImpl) systemInstruction(ctx context.Context) (string, error) {
	details, err := s.company.GetDetails(ctx)
	if err != nil {
		return "", fmt.Errorf("service: failed to load company details: %w", err)
	}

	offerings, err := s.catalog.List(ctx)
	if err != nil {
		return "", fmt.Errorf("service: failed to load offerings: %w", err)
	}

	titles := make([]string, 0, len(offerings))
	for _, offering := range offerings {
		titles = append(titles, offering.Title)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "You are the %q AI Assistant.\n", details.Name)
	b.WriteString("Core Knowledge:\n")
	fmt.Fprintf(&b, "- Based in %s.\n", details.Location)
	fmt.Fprintf(&b, "- Established %d as a Proprietor firm.\n", details.Estd)
	fmt.Fprintf(&b, "- Proprietor: %s.\n", details.CEO)
	fmt.Fprintf(&b, "- Company Full Address: %s.\n", details.Address)
	fmt.Fprintf(&b, "- Phone: %s.\n", details.Phone)
	fmt.Fprintf(&b, "- Email: %s.\n", details.Email)
	fmt.Fprintf(&b, "- Services: %s.\n", strings.Join(titles, ", "))
	b.WriteString("- Operations: We specialize in roadways/trucking across India.\n")
	fmt.Fprintf(&b, "- Pickup: Primarily from %s/Haryana; Drop: Pan India.\n", details.Location)
	b.WriteString("- Tone: Professional, authoritative, and helpful.\n")
	b.WriteString("- For all pricing/rate inquiries, direct the user to fill out the inquiry form.\n")

	return b.String(), nil
}
