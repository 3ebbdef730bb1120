package ai

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	usecaseErrors "github.com/johnquangdev/meeting-intelligence/internal/usecase/errors"
)

type fakeGenerator struct {
	response string
	err      error
	prompt   string
}

func (g *fakeGenerator) GenerateText(_ context.Context, prompt string) (string, error) {
	g.prompt = prompt
	return g.response, g.err
}

type transcriberFunc func(ctx context.Context, audio io.Reader, mimeType string) (string, error)

func (f transcriberFunc) Transcribe(ctx context.Context, audio io.Reader, mimeType string) (string, error) {
	return f(ctx, audio, mimeType)
}

func TestSummarizeEmbedsTranscription(t *testing.T) {
	gen := &fakeGenerator{response: "```json\n" + plainSummary + "\n```"}
	svc := NewService(nil, gen, zap.NewNop())

	summary, err := svc.Summarize(context.Background(), "Alex: I'll follow up with design. 100% sure.")
	require.NoError(t, err)

	assert.Contains(t, gen.prompt, "Alex: I'll follow up with design. 100% sure.")
	assert.Contains(t, gen.prompt, `"action_items"`)
	assert.Equal(t, "Weekly Standup", summary.Title)
	require.Len(t, summary.ActionItems, 1)
	assert.Equal(t, "Alex", summary.ActionItems[0].Assignee)
}

func TestSummarizeNeverFailsOnUnparseableOutput(t *testing.T) {
	svc := NewService(nil, &fakeGenerator{response: "not json at all"}, zap.NewNop())

	summary, err := svc.Summarize(context.Background(), "text")
	require.NoError(t, err)
	assert.Equal(t, "Meeting Summary", summary.Title)
	assert.Equal(t, []string{"not json at all"}, summary.KeyPoints)
}

func TestSummarizeProviderError(t *testing.T) {
	svc := NewService(nil, &fakeGenerator{err: errors.New("401 unauthorized")}, zap.NewNop())

	_, err := svc.Summarize(context.Background(), "text")
	assert.ErrorIs(t, err, usecaseErrors.ErrSummarizationFailed)
}

func TestUnconfiguredService(t *testing.T) {
	svc := NewService(nil, nil, zap.NewNop())

	_, err := svc.Transcribe(context.Background(), strings.NewReader("x"), "audio/wav")
	assert.ErrorIs(t, err, usecaseErrors.ErrTranscriptionFailed)
	assert.ErrorIs(t, err, usecaseErrors.ErrAINotConfigured)

	_, err = svc.Summarize(context.Background(), "x")
	assert.ErrorIs(t, err, usecaseErrors.ErrSummarizationFailed)
	assert.ErrorIs(t, err, usecaseErrors.ErrAINotConfigured)
}

func TestTranscribeWrapsForeignErrors(t *testing.T) {
	svc := NewService(transcriberFunc(func(context.Context, io.Reader, string) (string, error) {
		return "", errors.New("assemblyai transcript failed: bad audio")
	}), nil, zap.NewNop())

	_, err := svc.Transcribe(context.Background(), strings.NewReader("x"), "audio/wav")
	assert.ErrorIs(t, err, usecaseErrors.ErrTranscriptionFailed)
}

func TestTranscribeKeepsTimeoutDistinct(t *testing.T) {
	svc := NewService(transcriberFunc(func(context.Context, io.Reader, string) (string, error) {
		return "", usecaseErrors.ErrProcessingTimeout
	}), nil, zap.NewNop())

	_, err := svc.Transcribe(context.Background(), strings.NewReader("x"), "audio/wav")
	assert.ErrorIs(t, err, usecaseErrors.ErrProcessingTimeout)
	assert.NotErrorIs(t, err, usecaseErrors.ErrTranscriptionFailed)
}
