package meeting

import (
	"context"

	"github.com/johnquangdev/meeting-intelligence/internal/domain/entities"
)

// Service defines the interface for the meeting use case
type Service interface {
	// Upload stores the audio, runs transcription and summarization, and records action items
	Upload(ctx context.Context, input UploadInput) (*entities.Meeting, error)

	// GetMeeting retrieves a meeting by ID
	GetMeeting(ctx context.Context, id uint) (*entities.Meeting, error)

	// ListMeetings retrieves meetings newest first
	ListMeetings(ctx context.Context, skip, limit int) ([]*entities.Meeting, error)

	// DeleteMeeting removes a meeting, its action items and its audio
	DeleteMeeting(ctx context.Context, id uint) error

	// ListActionItems retrieves the action items of one meeting
	ListActionItems(ctx context.Context, meetingID uint) ([]*entities.ActionItem, error)
}

// Ensure MeetingService implements Service interface
var _ Service = (*MeetingService)(nil)
