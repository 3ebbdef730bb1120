package ai

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	usecaseErrors "github.com/johnquangdev/meeting-intelligence/internal/usecase/errors"
	pkgai "github.com/johnquangdev/meeting-intelligence/pkg/ai"
)

// Transcriber turns an audio stream into text
type Transcriber interface {
	Transcribe(ctx context.Context, audio io.Reader, mimeType string) (string, error)
}

// FileProvider is the provider surface needed to transcribe through an uploaded file
type FileProvider interface {
	UploadFile(ctx context.Context, r io.Reader, mimeType string) (*pkgai.File, error)
	GetFile(ctx context.Context, name string) (*pkgai.File, error)
	GenerateFromFile(ctx context.Context, prompt string, file *pkgai.File) (string, error)
}

var errFileNotActive = errors.New("file not active yet")

// FileTranscriber uploads audio, waits for the provider to mark it ACTIVE, then asks for a transcript
type FileTranscriber struct {
	provider     FileProvider
	pollInterval time.Duration
	pollTimeout  time.Duration
	logger       *zap.Logger
}

// NewFileTranscriber creates a transcriber that polls every pollInterval for at most pollTimeout
func NewFileTranscriber(provider FileProvider, pollInterval, pollTimeout time.Duration, logger *zap.Logger) *FileTranscriber {
	return &FileTranscriber{
		provider:     provider,
		pollInterval: pollInterval,
		pollTimeout:  pollTimeout,
		logger:       logger,
	}
}

func (t *FileTranscriber) Transcribe(ctx context.Context, audio io.Reader, mimeType string) (string, error) {
	file, err := t.provider.UploadFile(ctx, audio, mimeType)
	if err != nil {
		return "", fmt.Errorf("%w: upload: %w", usecaseErrors.ErrTranscriptionFailed, err)
	}
	t.logger.Info("📤 Audio uploaded to provider",
		zap.String("file", file.Name),
		zap.String("state", string(file.State)),
	)

	file, err = t.waitForActive(ctx, file)
	if err != nil {
		return "", err
	}

	t.logger.Info("🎙️ File is ACTIVE, starting transcription", zap.String("file", file.Name))
	text, err := t.provider.GenerateFromFile(ctx, transcriptionPrompt, file)
	if err != nil {
		return "", fmt.Errorf("%w: generate: %w", usecaseErrors.ErrTranscriptionFailed, err)
	}
	return text, nil
}

// waitForActive polls on a fixed schedule. Provider errors end the wait immediately;
// only the not-yet-active state is polled again.
func (t *FileTranscriber) waitForActive(ctx context.Context, file *pkgai.File) (*pkgai.File, error) {
	if file.State == pkgai.FileStateActive {
		return file, nil
	}

	schedule := backoff.NewExponentialBackOff()
	schedule.InitialInterval = t.pollInterval
	schedule.MaxInterval = t.pollInterval
	schedule.Multiplier = 1
	schedule.RandomizationFactor = 0
	schedule.MaxElapsedTime = t.pollTimeout

	current := file
	poll := func() error {
		f, err := t.provider.GetFile(ctx, current.Name)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("%w: get file: %w", usecaseErrors.ErrTranscriptionFailed, err))
		}
		current = f
		switch f.State {
		case pkgai.FileStateActive:
			return nil
		case pkgai.FileStateFailed:
			return backoff.Permanent(fmt.Errorf("%w: provider rejected file %s", usecaseErrors.ErrTranscriptionFailed, f.Name))
		}
		return errFileNotActive
	}
	notify := func(_ error, next time.Duration) {
		t.logger.Debug("⏳ Waiting for file to be ACTIVE",
			zap.String("file", current.Name),
			zap.String("state", string(current.State)),
			zap.Duration("next_poll", next),
		)
	}

	err := backoff.RetryNotify(poll, backoff.WithContext(schedule, ctx), notify)
	switch {
	case err == nil:
		return current, nil
	case errors.Is(err, errFileNotActive):
		return nil, fmt.Errorf("%w: state %s", usecaseErrors.ErrProcessingTimeout, current.State)
	case ctx.Err() != nil:
		return nil, fmt.Errorf("%w: %w", usecaseErrors.ErrTranscriptionFailed, ctx.Err())
	default:
		return nil, err
	}
}
