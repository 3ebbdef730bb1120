package meeting

import (
	"encoding/json"
	"time"
)

// MeetingResponse represents a meeting in responses
type MeetingResponse struct {
	ID            uint            `json:"id"`
	Title         string          `json:"title"`
	AudioFilename *string         `json:"audio_filename"`
	Transcription *string         `json:"transcription"`
	Summary       json.RawMessage `json:"summary" swaggertype:"object"`
	Duration      *int            `json:"duration"`
	Participants  *string         `json:"participants"`
	Status        string          `json:"status"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}
