package ai

import (
	"context"
	"fmt"
	"io"

	"google.golang.org/genai"

	"github.com/johnquangdev/meeting-intelligence/pkg/config"
)

// FileState is the processing state of a file held by the provider
type FileState string

const (
	FileStateProcessing FileState = "PROCESSING"
	FileStateActive     FileState = "ACTIVE"
	FileStateFailed     FileState = "FAILED"
)

// File is a provider-side handle to uploaded audio
type File struct {
	Name     string
	URI      string
	MIMEType string
	State    FileState
}

// GeminiClient wraps the Gemini API for file upload, file polling and content generation
type GeminiClient struct {
	client *genai.Client
	model  string
}

// NewGeminiClient creates a Gemini client from the AI config
func NewGeminiClient(ctx context.Context, cfg *config.AIConfig) (*GeminiClient, error) {
	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("gemini api key is empty")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	return &GeminiClient{client: client, model: cfg.GeminiModel}, nil
}

// UploadFile sends raw audio bytes to the provider file store
func (g *GeminiClient) UploadFile(ctx context.Context, r io.Reader, mimeType string) (*File, error) {
	f, err := g.client.Files.Upload(ctx, r, &genai.UploadFileConfig{MIMEType: mimeType})
	if err != nil {
		return nil, err
	}
	return toFile(f), nil
}

// GetFile fetches the current state of an uploaded file
func (g *GeminiClient) GetFile(ctx context.Context, name string) (*File, error) {
	f, err := g.client.Files.Get(ctx, name, nil)
	if err != nil {
		return nil, err
	}
	return toFile(f), nil
}

// GenerateFromFile runs a prompt against an uploaded file
func (g *GeminiClient) GenerateFromFile(ctx context.Context, prompt string, file *File) (string, error) {
	parts := []*genai.Part{
		genai.NewPartFromText(prompt),
		genai.NewPartFromURI(file.URI, file.MIMEType),
	}
	return g.generate(ctx, []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)})
}

// GenerateText runs a text-only prompt
func (g *GeminiClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	return g.generate(ctx, genai.Text(prompt))
}

func (g *GeminiClient) generate(ctx context.Context, contents []*genai.Content) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, nil)
	if err != nil {
		return "", err
	}
	return resp.Text(), nil
}

func toFile(f *genai.File) *File {
	return &File{
		Name:     f.Name,
		URI:      f.URI,
		MIMEType: f.MIMEType,
		State:    FileState(f.State),
	}
}
