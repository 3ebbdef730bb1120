package ai

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-intelligence/internal/domain/entities"
	usecaseErrors "github.com/johnquangdev/meeting-intelligence/internal/usecase/errors"
)

// Service is the AI adapter used by the meeting workflow
type Service interface {
	// Transcribe converts meeting audio into plain text
	Transcribe(ctx context.Context, audio io.Reader, mimeType string) (string, error)

	// Summarize extracts title, key points, decisions and action items from a transcription
	Summarize(ctx context.Context, transcription string) (*entities.Summary, error)
}

// TextGenerator runs a text prompt and returns the raw model output
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

type service struct {
	transcriber Transcriber
	generator   TextGenerator
	logger      *zap.Logger
}

// NewService wires a transcriber and a summary generator. Either may be nil when the
// provider is not configured; the matching operation then fails with ErrAINotConfigured.
func NewService(transcriber Transcriber, generator TextGenerator, logger *zap.Logger) Service {
	return &service{
		transcriber: transcriber,
		generator:   generator,
		logger:      logger,
	}
}

func (s *service) Transcribe(ctx context.Context, audio io.Reader, mimeType string) (string, error) {
	if s.transcriber == nil {
		return "", fmt.Errorf("%w: %w", usecaseErrors.ErrTranscriptionFailed, usecaseErrors.ErrAINotConfigured)
	}

	text, err := s.transcriber.Transcribe(ctx, audio, mimeType)
	if err != nil {
		s.logger.Error("❌ Transcription failed", zap.Error(err))
		if errors.Is(err, usecaseErrors.ErrTranscriptionFailed) || errors.Is(err, usecaseErrors.ErrProcessingTimeout) {
			return "", err
		}
		return "", fmt.Errorf("%w: %w", usecaseErrors.ErrTranscriptionFailed, err)
	}

	s.logger.Info("✅ Transcription completed", zap.Int("chars", len(text)))
	return text, nil
}

func (s *service) Summarize(ctx context.Context, transcription string) (*entities.Summary, error) {
	if s.generator == nil {
		return nil, fmt.Errorf("%w: %w", usecaseErrors.ErrSummarizationFailed, usecaseErrors.ErrAINotConfigured)
	}

	response, err := s.generator.GenerateText(ctx, fmt.Sprintf(summaryPromptTemplate, transcription))
	if err != nil {
		s.logger.Error("❌ Summary generation failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %w", usecaseErrors.ErrSummarizationFailed, err)
	}

	summary, ok := ParseSummary(response)
	if !ok {
		s.logger.Warn("⚠️ Summary response was not valid JSON, using fallback",
			zap.Int("response_chars", len(response)),
		)
	}
	return summary, nil
}
