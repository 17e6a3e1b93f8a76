package grievance

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"dbt-portal/internal/model"
)

// ErrAssistUnavailable is the single advisory surfaced for every assist
// failure. The manual submission path is never blocked by it.
var ErrAssistUnavailable = errors.New("Sorry, the AI Assistant couldn't generate a description. Please write it manually.")

const defaultAssistModel = "gemini-2.5-flash"

// DescriptionGenerator drafts a grievance description from the selected issue
// type and whatever the student has typed so far.
type DescriptionGenerator interface {
	GenerateDescription(ctx context.Context, issueType model.IssueType, draftText string) (string, error)
}

// GeminiAssistant generates descriptions through the Gemini API.
type GeminiAssistant struct {
	client *genai.Client
	model  string
	logger *zap.Logger
}

func NewGeminiAssistant(ctx context.Context, apiKey, modelName string, logger *zap.Logger) (*GeminiAssistant, error) {
	if apiKey == "" {
		return nil, errors.New("assist API key is required")
	}
	if modelName == "" {
		modelName = defaultAssistModel
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return &GeminiAssistant{client: client, model: modelName, logger: logger}, nil
}

// GenerateDescription returns drafted text, or ErrAssistUnavailable on any
// failure. The underlying cause goes to the log, never to the student.
func (a *GeminiAssistant) GenerateDescription(ctx context.Context, issueType model.IssueType, draftText string) (string, error) {
	result, err := a.client.Models.GenerateContent(ctx, a.model, genai.Text(assistPrompt(issueType, draftText)), nil)
	if err != nil {
		a.logger.Warn("assist generation failed", zap.Error(err))
		return "", ErrAssistUnavailable
	}

	text := strings.TrimSpace(result.Text())
	if text == "" {
		a.logger.Warn("assist returned empty text")
		return "", ErrAssistUnavailable
	}
	return text, nil
}

func assistPrompt(issueType model.IssueType, draftText string) string {
	return fmt.Sprintf(`You are a helpful assistant for students in India filing a grievance about Direct Benefit Transfer (DBT) payments.
The student has selected the issue type: %q.
Based on this, write a clear, concise, and formal description for their grievance report in English.
Start by stating the problem clearly. If the user has already typed a description, use it as context to improve upon it.
Context from user: %q

Generate only the description text. Do not include any titles or introductory phrases like "Here is the description:".`,
		issueType.DisplayName(), draftText)
}
