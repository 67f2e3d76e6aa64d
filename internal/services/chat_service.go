package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/aapchat/gateway/internal/models"
)

// AutomationClient is the slice of the platform client chat commands need.
type AutomationClient interface {
	ListJobTemplates(ctx context.Context) (any, error)
	LaunchJob(ctx context.Context, templateID int, extraVars map[string]any) (any, error)
}

// Generator produces a conversational reply; failures are folded into the text.
type Generator interface {
	Generate(ctx context.Context, prompt string) string
}

// ChatService dispatches chat messages: two literal command prefixes, then the
// conversational fallback. Command failures never escape as errors; every
// message gets a ChatReply.
type ChatService struct {
	aap  AutomationClient
	grok Generator
}

func NewChatService(aap AutomationClient, grok Generator) *ChatService {
	return &ChatService{aap: aap, grok: grok}
}

// Dispatch handles one chat turn. Prefix matching is case-insensitive on the
// trimmed message; first match wins.
func (s *ChatService) Dispatch(ctx context.Context, msg models.ChatMessage) models.ChatReply {
	message := strings.TrimSpace(msg.Message)
	lowered := strings.ToLower(message)

	if strings.HasPrefix(lowered, "list templates") {
		data, err := s.aap.ListJobTemplates(ctx)
		if err != nil {
			return models.ChatReply{Assistant: "error", Message: err.Error()}
		}
		return models.ChatReply{Assistant: "listed_templates", Data: data}
	}

	if strings.HasPrefix(lowered, "launch") {
		return s.launch(ctx, message)
	}

	reply := s.grok.Generate(ctx, fmt.Sprintf("%s: %s", msg.User, message))
	return models.ChatReply{Assistant: reply}
}

// launch parses "launch <template_id>" and starts the job with no extra vars.
func (s *ChatService) launch(ctx context.Context, message string) models.ChatReply {
	parts := strings.Fields(message)
	if len(parts) < 2 {
		return models.ChatReply{Assistant: "error", Message: "usage: launch <template_id>"}
	}

	templateID, err := strconv.Atoi(parts[1])
	if err != nil {
		return models.ChatReply{Assistant: "error", Message: fmt.Sprintf("invalid template id %q: %v", parts[1], err)}
	}

	result, err := s.aap.LaunchJob(ctx, templateID, nil)
	if err != nil {
		return models.ChatReply{Assistant: "error", Message: err.Error()}
	}
	return models.ChatReply{Assistant: "launched", Data: result}
}
