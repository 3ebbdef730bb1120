package task

import "time"

// ActionItemResponse represents a task in responses
type ActionItemResponse struct {
	ID          uint      `json:"id"`
	MeetingID   uint      `json:"meeting_id"`
	Description string    `json:"description"`
	Assignee    *string   `json:"assignee"`
	DueDate     *string   `json:"due_date" example:"2024-06-30"`
	Priority    string    `json:"priority"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
