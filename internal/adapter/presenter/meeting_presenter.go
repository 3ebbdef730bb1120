package presenter

import (
	"encoding/json"

	"github.com/johnquangdev/meeting-intelligence/internal/adapter/dto/meeting"
	"github.com/johnquangdev/meeting-intelligence/internal/domain/entities"
)

// ToMeetingResponse converts a Meeting entity to MeetingResponse DTO
func ToMeetingResponse(m *entities.Meeting) *meeting.MeetingResponse {
	if m == nil {
		return nil
	}

	var summary json.RawMessage
	if len(m.Summary) > 0 {
		summary = json.RawMessage(m.Summary)
	}

	return &meeting.MeetingResponse{
		ID:            m.ID,
		Title:         m.Title,
		AudioFilename: m.AudioFilename,
		Transcription: m.Transcription,
		Summary:       summary,
		Duration:      m.Duration,
		Participants:  m.Participants,
		Status:        string(m.Status),
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// ToMeetingListResponse converts meetings, never returning a nil slice
func ToMeetingListResponse(meetings []*entities.Meeting) []*meeting.MeetingResponse {
	responses := make([]*meeting.MeetingResponse, 0, len(meetings))
	for _, m := range meetings {
		responses = append(responses, ToMeetingResponse(m))
	}
	return responses
}
