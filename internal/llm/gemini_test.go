package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

type fakeModels struct {
	model  string
	config *genai.GenerateContentConfig
	prompt string
	res    *genai.GenerateContentResponse
	err    error
}

func (f *fakeModels) GenerateContent(_ context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	f.model = model
	f.config = config
	if len(contents) > 0 && len(contents[0].Parts) > 0 {
		f.prompt = contents[0].Parts[0].Text
	}
	return f.res, f.err
}

func textResponse(parts ...string) *genai.GenerateContentResponse {
	content := &genai.Content{Role: genai.RoleModel}
	for _, p := range parts {
		content.Parts = append(content.Parts, &genai.Part{Text: p})
	}
	return &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{Content: content}}}
}

func TestGemini_CompleteSendsRequest(t *testing.T) {
	fake := &fakeModels{res: textResponse("  I hear you. ")}
	g := newGeminiWithModels(fake, "")

	out, err := g.Complete(context.Background(), Request{
		SystemPrompt: "be kind",
		Prompt:       "User: hi",
		Temperature:  0.7,
		MaxTokens:    500,
	})
	require.NoError(t, err)
	require.Equal(t, "I hear you.", out)
	require.Equal(t, DefaultGeminiModel, fake.model)
	require.Equal(t, "User: hi", fake.prompt)
	require.NotNil(t, fake.config.Temperature)
	require.InDelta(t, 0.7, *fake.config.Temperature, 1e-6)
	require.Equal(t, int32(500), fake.config.MaxOutputTokens)
	require.NotNil(t, fake.config.SystemInstruction)
	require.Equal(t, "be kind", fake.config.SystemInstruction.Parts[0].Text)
}

func TestGemini_NoSystemPrompt(t *testing.T) {
	fake := &fakeModels{res: textResponse("ok")}
	g := newGeminiWithModels(fake, "custom-model")

	_, err := g.Complete(context.Background(), Request{Prompt: "x", MaxTokens: 10})
	require.NoError(t, err)
	require.Equal(t, "custom-model", fake.model)
	require.Nil(t, fake.config.SystemInstruction)
}

func TestGemini_EmptyCandidates(t *testing.T) {
	tests := []struct {
		name string
		res  *genai.GenerateContentResponse
	}{
		{"nil response", nil},
		{"no candidates", &genai.GenerateContentResponse{}},
		{"nil content", &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{}}}},
		{"no parts", textResponse()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newGeminiWithModels(&fakeModels{res: tt.res}, "")
			out, err := g.Complete(context.Background(), Request{Prompt: "x"})
			require.NoError(t, err)
			require.Empty(t, out)
		})
	}
}

func TestGemini_JoinsParts(t *testing.T) {
	g := newGeminiWithModels(&fakeModels{res: textResponse("one ", "two")}, "")
	out, err := g.Complete(context.Background(), Request{Prompt: "x"})
	require.NoError(t, err)
	require.Equal(t, "one two", out)
}

func TestGemini_Error(t *testing.T) {
	g := newGeminiWithModels(&fakeModels{err: errors.New("quota")}, "")
	_, err := g.Complete(context.Background(), Request{Prompt: "x"})
	require.ErrorContains(t, err, "quota")
}

func TestGemini_RejectsEmptyPrompt(t *testing.T) {
	fake := &fakeModels{res: textResponse("ok")}
	g := newGeminiWithModels(fake, "")
	_, err := g.Complete(context.Background(), Request{})
	require.Error(t, err)
	require.Empty(t, fake.model, "no call should be made")
}

func TestNewGemini_MissingKey(t *testing.T) {
	_, err := NewGemini(context.Background(), "", "")
	require.ErrorIs(t, err, ErrNotConfigured)
}
