package presenter

import (
	"github.com/johnquangdev/meeting-intelligence/internal/adapter/dto/task"
	"github.com/johnquangdev/meeting-intelligence/internal/domain/entities"
)

// ToActionItemResponse converts an ActionItem entity to ActionItemResponse DTO
func ToActionItemResponse(item *entities.ActionItem) *task.ActionItemResponse {
	if item == nil {
		return nil
	}

	var dueDate *string
	if item.DueDate != nil {
		formatted := item.DueDate.Format("2006-01-02")
		dueDate = &formatted
	}

	return &task.ActionItemResponse{
		ID:          item.ID,
		MeetingID:   item.MeetingID,
		Description: item.Description,
		Assignee:    item.Assignee,
		DueDate:     dueDate,
		Priority:    item.Priority,
		Status:      item.Status,
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
	}
}

// ToActionItemListResponse converts action items, never returning a nil slice
func ToActionItemListResponse(items []*entities.ActionItem) []*task.ActionItemResponse {
	responses := make([]*task.ActionItemResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, ToActionItemResponse(item))
	}
	return responses
}
