package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/justsurfingit/sales-intake/internal/models"
	"github.com/pkg/errors"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
)

const maxAboutRunes = 4000

const digestPrompt = `
You are assisting an HR recruiter in Kyrgyzstan who is screening candidates for a
sales manager position (office, 6/1 schedule, salary + commission).

### INSTRUCTIONS:
1. Read the application below.
2. Write a digest of at most 5 short bullet points, in Russian.
3. Cover: sales experience and direction, availability (schedule, start date),
   salary expectation, languages, and anything notable in the free-text answer.
4. Do not invent facts that are not in the application. Plain text only.

### APPLICATION:
%s
`

// DigestService asks an LLM for a short HR-facing summary of an application.
// A nil *DigestService means the feature is disabled.
type DigestService struct {
	Client llms.Model
}

// NewDigestService returns nil when apiKey is empty.
func NewDigestService(ctx context.Context, apiKey, model string) (*DigestService, error) {
	if apiKey == "" {
		return nil, nil
	}
	llm, err := googleai.New(ctx,
		googleai.WithAPIKey(apiKey),
		googleai.WithDefaultModel(model),
	)
	if err != nil {
		return nil, errors.Wrap(err, "create gemini client")
	}
	return &DigestService{Client: llm}, nil
}

func (s *DigestService) Summarize(ctx context.Context, app models.Application) (string, error) {
	if s == nil || s.Client == nil {
		return "", ErrDigestDisabled
	}
	resp, err := llms.GenerateFromSinglePrompt(ctx, s.Client, fmt.Sprintf(digestPrompt, describe(app)))
	if err != nil {
		return "", errors.Wrap(err, "generate digest")
	}
	return strings.TrimSpace(resp), nil
}

func describe(app models.Application) string {
	about := []rune(app.About)
	if len(about) > maxAboutRunes {
		about = about[:maxAboutRunes]
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Name: %s\n", app.Name)
	fmt.Fprintf(&b, "City: %s\n", app.City)
	fmt.Fprintf(&b, "Schedule: %s\n", app.Schedule)
	fmt.Fprintf(&b, "Sales experience: %s\n", app.Experience)
	fmt.Fprintf(&b, "Sales directions: %s\n", app.SalesType)
	fmt.Fprintf(&b, "Expected salary: %s\n", app.Salary)
	fmt.Fprintf(&b, "Can start: %s\n", app.StartDate)
	fmt.Fprintf(&b, "Languages: %s\n", app.Languages)
	fmt.Fprintf(&b, "About: %s\n", string(about))
	fmt.Fprintf(&b, "Heard about us from: %s\n", app.Source)
	return b.String()
}
