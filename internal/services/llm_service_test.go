package services

import (
	"context"
	"strings"
	"testing"

	"github.com/justsurfingit/sales-intake/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/llms"
)

type fakeModel struct {
	prompt string
	reply  string
}

func (f *fakeModel) GenerateContent(_ context.Context, msgs []llms.MessageContent, _ ...llms.CallOption) (*llms.ContentResponse, error) {
	for _, p := range msgs[0].Parts {
		if text, ok := p.(llms.TextContent); ok {
			f.prompt = text.Text
		}
	}
	return &llms.ContentResponse{Choices: []*llms.ContentChoice{{Content: f.reply}}}, nil
}

func (f *fakeModel) Call(ctx context.Context, prompt string, _ ...llms.CallOption) (string, error) {
	return llms.GenerateFromSinglePrompt(ctx, f, prompt)
}

func TestDigestSummarize(t *testing.T) {
	model := &fakeModel{reply: "  - 3–5 лет в B2B\n"}
	s := &DigestService{Client: model}

	got, err := s.Summarize(context.Background(), models.Application{
		Name:       "Азамат",
		Experience: "3–5 жыл",
		SalesType:  "B2B",
		About:      strings.Repeat("ы", maxAboutRunes+100),
	})
	require.NoError(t, err)
	assert.Equal(t, "- 3–5 лет в B2B", got)
	assert.Contains(t, model.prompt, "Name: Азамат")
	assert.Contains(t, model.prompt, "Sales directions: B2B")
	assert.NotContains(t, model.prompt, strings.Repeat("ы", maxAboutRunes+1))
}

func TestDigestDisabled(t *testing.T) {
	s, err := NewDigestService(context.Background(), "", "gemini-2.5-flash")
	require.NoError(t, err)
	assert.Nil(t, s)

	_, err = s.Summarize(context.Background(), models.Application{})
	assert.ErrorIs(t, err, ErrDigestDisabled)
}
