package entities

import "time"

const (
	ActionItemPriorityMedium = "medium"
	ActionItemStatusPending  = "pending"
	DefaultAssignee          = "Unassigned"
)

// ActionItem is a task derived from a meeting summary
type ActionItem struct {
	ID          uint       `json:"id" gorm:"primaryKey"`
	MeetingID   uint       `json:"meeting_id" gorm:"not null;index"`
	Meeting     *Meeting   `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Description string     `json:"description" gorm:"type:text;not null"`
	Assignee    *string    `json:"assignee,omitempty" gorm:"type:varchar(255)"`
	DueDate     *time.Time `json:"due_date,omitempty" gorm:"type:date"`
	Priority    string     `json:"priority" gorm:"type:varchar(50);default:'medium'"`
	Status      string     `json:"status" gorm:"type:varchar(50);default:'pending';index"`
	CreatedAt   time.Time  `json:"created_at" gorm:"autoCreateTime;index"`
	UpdatedAt   time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (ActionItem) TableName() string {
	return "action_items"
}

// NewActionItemFromSummary builds a pending task from one summary entry
func NewActionItemFromSummary(meetingID uint, item SummaryActionItem) ActionItem {
	assignee := item.Assignee
	if assignee == "" {
		assignee = DefaultAssignee
	}
	priority := item.Priority
	if priority == "" {
		priority = ActionItemPriorityMedium
	}
	return ActionItem{
		MeetingID:   meetingID,
		Description: item.Task,
		Assignee:    &assignee,
		Priority:    priority,
		Status:      ActionItemStatusPending,
	}
}
