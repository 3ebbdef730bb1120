package ai

import (
	"context"
	"fmt"
	"io"

	aai "github.com/AssemblyAI/assemblyai-go-sdk"

	"github.com/johnquangdev/meeting-intelligence/pkg/config"
)

// AssemblyAIClient transcribes audio through the AssemblyAI SDK
type AssemblyAIClient struct {
	client *aai.Client
}

// NewAssemblyAIClient creates an AssemblyAI client using the provided config.
func NewAssemblyAIClient(cfg *config.AIConfig) (*AssemblyAIClient, error) {
	if cfg.AssemblyAIAPIKey == "" {
		return nil, fmt.Errorf("assemblyai api key is empty")
	}
	return &AssemblyAIClient{client: aai.NewClient(cfg.AssemblyAIAPIKey)}, nil
}

// Transcribe uploads the audio and blocks until AssemblyAI finishes the transcript.
// The SDK detects the media type itself, so mimeType is unused.
func (c *AssemblyAIClient) Transcribe(ctx context.Context, audio io.Reader, _ string) (string, error) {
	params := &aai.TranscriptOptionalParams{
		LanguageDetection: aai.Bool(true),
	}

	transcript, err := c.client.Transcripts.TranscribeFromReader(ctx, audio, params)
	if err != nil {
		return "", err
	}

	if transcript.Status == aai.TranscriptStatusError {
		msg := "unknown error"
		if transcript.Error != nil {
			msg = *transcript.Error
		}
		return "", fmt.Errorf("assemblyai transcript failed: %s", msg)
	}
	if transcript.Text == nil {
		return "", nil
	}
	return *transcript.Text, nil
}
