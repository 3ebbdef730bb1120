package task

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-intelligence/internal/domain/entities"
	"github.com/johnquangdev/meeting-intelligence/internal/domain/repositories"
	usecaseErrors "github.com/johnquangdev/meeting-intelligence/internal/usecase/errors"
)

const dueDateLayout = "2006-01-02"

// TaskService handles action item business logic
type TaskService struct {
	actionItemRepo repositories.ActionItemRepository
	logger         *zap.Logger
}

// NewTaskService creates a new task service
func NewTaskService(actionItemRepo repositories.ActionItemRepository, logger *zap.Logger) *TaskService {
	return &TaskService{
		actionItemRepo: actionItemRepo,
		logger:         logger,
	}
}

func (s *TaskService) ListTasks(ctx context.Context, filters repositories.ActionItemFilters) ([]*entities.ActionItem, error) {
	return s.actionItemRepo.List(ctx, filters)
}

func (s *TaskService) GetTask(ctx context.Context, id uint) (*entities.ActionItem, error) {
	return s.actionItemRepo.FindByID(ctx, id)
}

func (s *TaskService) UpdateTask(ctx context.Context, id uint, patch Patch) (*entities.ActionItem, error) {
	item, err := s.actionItemRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := applyPatch(item, patch); err != nil {
		return nil, err
	}

	if err := s.actionItemRepo.Update(ctx, item); err != nil {
		return nil, fmt.Errorf("update task: %w", err)
	}

	s.logger.Info("✏️ Task updated", zap.Uint("task_id", id))
	return item, nil
}

func (s *TaskService) DeleteTask(ctx context.Context, id uint) error {
	if err := s.actionItemRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("🗑️ Task deleted", zap.Uint("task_id", id))
	return nil
}

// applyPatch validates the whole patch before touching item
func applyPatch(item *entities.ActionItem, patch Patch) error {
	for field, v := range map[string]bool{
		"description": patch.Description.IsNull(),
		"priority":    patch.Priority.IsNull(),
		"status":      patch.Status.IsNull(),
	} {
		if v {
			return fmt.Errorf("%w: %s", usecaseErrors.ErrFieldNotNull, field)
		}
	}

	var dueDate *time.Time
	if patch.DueDate.Set && patch.DueDate.Ptr != nil {
		parsed, err := time.Parse(dueDateLayout, *patch.DueDate.Ptr)
		if err != nil {
			return fmt.Errorf("%w: %q", usecaseErrors.ErrInvalidDueDate, *patch.DueDate.Ptr)
		}
		dueDate = &parsed
	}

	if patch.Description.Set {
		item.Description = *patch.Description.Ptr
	}
	if patch.Assignee.Set {
		item.Assignee = patch.Assignee.Ptr
	}
	if patch.DueDate.Set {
		item.DueDate = dueDate
	}
	if patch.Priority.Set {
		item.Priority = *patch.Priority.Ptr
	}
	if patch.Status.Set {
		item.Status = *patch.Status.Ptr
	}
	return nil
}
