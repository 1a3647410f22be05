// Package mentor is the AI collaborator: a product-management coach
// for open chat, focused one-shot advice, and mock interviews. It sits
// on top of the llm provider layer and degrades to canned fallback
// text when no provider is configured or a request fails.
package mentor

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/abhisek/pmladder/internal/llm"
)

// ErrNoProvider is returned when the service was built without an LLM
// provider (no API key discovered at startup).
var ErrNoProvider = errors.New("mentor: no LLM provider configured")

// Fallback texts shown in place of a model reply.
const (
	FallbackOffline = "The AI mentor is offline. Set an API key to enable it."
	FallbackError   = "Sorry, I'm having trouble connecting right now. Please try again."
	FallbackEmpty   = "Unable to generate a reply right now."
)

// AdviceContext selects the mentor's area of focus for one-shot advice.
type AdviceContext string

const (
	ContextGeneral      AdviceContext = "general"
	ContextRequirements AdviceContext = "requirements"
	ContextData         AdviceContext = "data"
)

// Turn is one message in a chat transcript.
type Turn struct {
	Role llm.Role
	Text string
}

// Config holds generation parameters for mentor requests.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   1024,
		Temperature: 0.7,
	}
}

// Service is the AI mentor. A nil provider is allowed; every call then
// fails with ErrNoProvider so callers can show FallbackOffline.
type Service struct {
	provider llm.Provider
	cfg      Config
}

// NewService creates a mentor backed by the given provider.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// Available reports whether a provider is wired in.
func (s *Service) Available() bool {
	return s.provider != nil
}

const coachInstruction = "You are a friendly and encouraging product management coach. " +
	"You help users plan their careers, work through concrete product problems, and " +
	"understand concepts like Agile, Scrum, SQL for PMs, and design thinking."

const adviceInstruction = "You are a senior product management mentor. " +
	"Your goal is to teach junior product managers best practices."

// Chat sends one user message with prior history under the default
// coaching persona.
func (s *Service) Chat(ctx context.Context, history []Turn, message string) (string, error) {
	return s.chat(ctx, "mentor_chat", coachInstruction, history, message)
}

// Advise answers a one-shot prompt, with the system instruction
// narrowed by the advice context.
func (s *Service) Advise(ctx context.Context, prompt string, focus AdviceContext) (string, error) {
	instruction := adviceInstruction
	switch focus {
	case ContextRequirements:
		instruction += " Focus on writing clear user stories, acceptance criteria, and PRD structure. Be structured and precise."
	case ContextData:
		instruction += " Focus on metrics (DAU, MAU, retention, LTV), A/B testing methodology, and data-driven decision making."
	}
	return s.chat(ctx, "mentor_advice", instruction, nil, prompt)
}

func (s *Service) chat(ctx context.Context, purpose, instruction string, history []Turn, message string) (string, error) {
	if s.provider == nil {
		return "", ErrNoProvider
	}

	ctx = llm.WithPurpose(ctx, purpose)

	msgs := make([]llm.Message, 0, len(history)+1)
	for _, t := range history {
		msgs = append(msgs, llm.Message{Role: t.Role, Content: t.Text})
	}
	msgs = append(msgs, llm.Message{Role: llm.RoleUser, Content: message})

	resp, err := s.provider.Generate(ctx, llm.Request{
		System:      instruction,
		Messages:    msgs,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	})
	if err != nil {
		return "", fmt.Errorf("mentor request failed: %w", err)
	}

	text := strings.TrimSpace(string(resp.Content))
	if text == "" {
		return FallbackEmpty, nil
	}
	return text, nil
}

// FallbackFor maps a mentor error to the text shown in its place.
func FallbackFor(err error) string {
	if errors.Is(err, ErrNoProvider) {
		return FallbackOffline
	}
	return FallbackError
}
