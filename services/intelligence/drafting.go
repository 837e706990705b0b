package ai

import (
	"context"
	"fmt"
	"strings"

	"campushub/models"
)

// TextGenerator is the slice of the Gemini client the drafting service
// needs; tests substitute a canned implementation.
type TextGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// DraftService backs the authoring assistants: announcement drafts and
// document descriptions. It is presentational glue over the generator; no
// conversation state is kept.
type DraftService interface {
	DraftAnnouncement(ctx context.Context, req models.DraftRequest) (string, error)
	DraftDescription(ctx context.Context, req models.DraftRequest) (string, error)
}

type DefaultDraftService struct {
	Generator TextGenerator
}

func (s *DefaultDraftService) DraftAnnouncement(ctx context.Context, req models.DraftRequest) (string, error) {
	prompt := buildPrompt(
		"Write a college announcement about: "+req.Topic+".",
		req,
		"Keep it short, clear, and ready to post. Return only the announcement text.",
	)
	return s.Generator.GenerateContent(ctx, prompt)
}

func (s *DefaultDraftService) DraftDescription(ctx context.Context, req models.DraftRequest) (string, error) {
	prompt := buildPrompt(
		"Write a one-paragraph description for a college document titled: "+req.Topic+".",
		req,
		"Return only the description text.",
	)
	return s.Generator.GenerateContent(ctx, prompt)
}

func buildPrompt(lead string, req models.DraftRequest, trail string) string {
	parts := []string{lead}
	if req.Audience != "" {
		parts = append(parts, fmt.Sprintf("Audience: %s.", req.Audience))
	}
	if req.Tone != "" {
		parts = append(parts, fmt.Sprintf("Tone: %s.", req.Tone))
	}
	if req.Notes != "" {
		parts = append(parts, "Include these points: "+req.Notes)
	}
	parts = append(parts, trail)
	return strings.Join(parts, "\n")
}
