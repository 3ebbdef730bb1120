package entities

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

// MeetingStatus represents the processing state of an uploaded meeting
type MeetingStatus string

const (
	MeetingStatusProcessing MeetingStatus = "processing"
	MeetingStatusCompleted  MeetingStatus = "completed"
	MeetingStatusFailed     MeetingStatus = "failed"
)

// Meeting represents one uploaded audio session and its derived artifacts
type Meeting struct {
	ID            uint           `json:"id" gorm:"primaryKey"`
	Title         string         `json:"title" gorm:"type:varchar(255);not null"`
	AudioFilename *string        `json:"audio_filename,omitempty" gorm:"type:varchar(255)"`
	AudioPath     *string        `json:"-" gorm:"type:varchar(500)"`
	Transcription *string        `json:"transcription,omitempty" gorm:"type:text"`
	Summary       datatypes.JSON `json:"summary,omitempty"`
	Duration      *int           `json:"duration,omitempty"`
	Participants  *string        `json:"participants,omitempty" gorm:"type:varchar(500)"`
	Status        MeetingStatus  `json:"status" gorm:"type:varchar(50);not null;default:'processing';index"`
	CreatedAt     time.Time      `json:"created_at" gorm:"autoCreateTime;index"`
	UpdatedAt     time.Time      `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (Meeting) TableName() string {
	return "meetings"
}

// DefaultMeetingTitle builds the title used when the uploader supplies none
func DefaultMeetingTitle(now time.Time) string {
	return "Meeting " + now.Format("2006-01-02 15:04")
}

// IsFinal reports whether the meeting left the processing state
func (m *Meeting) IsFinal() bool {
	return m.Status == MeetingStatusCompleted || m.Status == MeetingStatusFailed
}

// SetSummary stores the structured summary as JSON
func (m *Meeting) SetSummary(summary *Summary) error {
	if len(summary.Raw) > 0 {
		m.Summary = datatypes.JSON(summary.Raw)
		return nil
	}
	raw, err := json.Marshal(summary)
	if err != nil {
		return err
	}
	m.Summary = datatypes.JSON(raw)
	return nil
}

// MarkAsCompleted marks meeting as completed
func (m *Meeting) MarkAsCompleted() error {
	if m.IsFinal() {
		return ErrMeetingStatusFinal
	}
	m.Status = MeetingStatusCompleted
	return nil
}

// MarkAsFailed marks meeting as failed and replaces the summary with the error payload
func (m *Meeting) MarkAsFailed(reason string) error {
	if m.IsFinal() {
		return ErrMeetingStatusFinal
	}
	raw, err := json.Marshal(map[string]string{"error": reason})
	if err != nil {
		return err
	}
	m.Status = MeetingStatusFailed
	m.Summary = datatypes.JSON(raw)
	return nil
}
