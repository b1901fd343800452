package mood

import (
	"context"
	"fmt"
	"strings"

	"serenemind/models"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiInsightGenerator produces weekly mood insights with Gemini.
type GeminiInsightGenerator struct {
	model *genai.GenerativeModel
}

// NewGeminiInsightGenerator builds a generator from an API key.
func NewGeminiInsightGenerator(ctx context.Context, apiKey string) (*GeminiInsightGenerator, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	model := client.GenerativeModel("models/gemini-1.5-flash")
	return &GeminiInsightGenerator{model: model}, nil
}

// GenerateInsight asks the model for a short, supportive observation about
// the week's moods.
func (g *GeminiInsightGenerator) GenerateInsight(ctx context.Context, summary models.MoodSummary) (string, error) {
	var counts strings.Builder
	for moodLabel, n := range summary.Counts {
		fmt.Fprintf(&counts, "%s: %d days. ", moodLabel, n)
	}

	prompt := fmt.Sprintf(
		"You are a gentle wellness companion for teenagers. In two supportive sentences, "+
			"comment on this week's mood log without giving medical advice. Moods from %s to %s: %s",
		summary.From, summary.To, counts.String(),
	)

	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini generate error: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("gemini returned no candidates")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}
	return strings.TrimSpace(sb.String()), nil
}
