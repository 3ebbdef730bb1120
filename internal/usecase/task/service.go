package task

import (
	"context"

	"github.com/johnquangdev/meeting-intelligence/internal/domain/entities"
	"github.com/johnquangdev/meeting-intelligence/internal/domain/repositories"
	"github.com/johnquangdev/meeting-intelligence/pkg/nullable"
)

// Service defines the interface for the task (action item) use case
type Service interface {
	// ListTasks retrieves tasks newest first, optionally filtered by status
	ListTasks(ctx context.Context, filters repositories.ActionItemFilters) ([]*entities.ActionItem, error)

	// GetTask retrieves a task by ID
	GetTask(ctx context.Context, id uint) (*entities.ActionItem, error)

	// UpdateTask applies only the fields present in the patch
	UpdateTask(ctx context.Context, id uint, patch Patch) (*entities.ActionItem, error)

	// DeleteTask removes a task
	DeleteTask(ctx context.Context, id uint) error
}

// Patch is a partial update; fields with Set=false are left untouched
type Patch struct {
	Description nullable.Value[string]
	Assignee    nullable.Value[string]
	DueDate     nullable.Value[string]
	Priority    nullable.Value[string]
	Status      nullable.Value[string]
}

// Ensure TaskService implements Service interface
var _ Service = (*TaskService)(nil)
