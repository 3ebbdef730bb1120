package repositories

import (
	"context"

	"github.com/johnquangdev/meeting-intelligence/internal/domain/entities"
)

// MeetingRepository defines the interface for meeting data access
type MeetingRepository interface {
	// Create inserts a meeting and fills its generated ID
	Create(ctx context.Context, meeting *entities.Meeting) error

	// FindByID retrieves a meeting by its ID
	FindByID(ctx context.Context, id uint) (*entities.Meeting, error)

	// Update persists every column of an existing meeting
	Update(ctx context.Context, meeting *entities.Meeting) error

	// Delete removes a meeting together with its action items in one transaction
	Delete(ctx context.Context, id uint) error

	// List retrieves meetings newest first
	List(ctx context.Context, offset, limit int) ([]*entities.Meeting, error)
}

// ActionItemRepository defines the interface for action item data access
type ActionItemRepository interface {
	// CreateBatch inserts action items in a single statement
	CreateBatch(ctx context.Context, items []*entities.ActionItem) error

	// FindByID retrieves an action item by its ID
	FindByID(ctx context.Context, id uint) (*entities.ActionItem, error)

	// FindByMeetingID retrieves the action items of one meeting ordered by ID
	FindByMeetingID(ctx context.Context, meetingID uint) ([]*entities.ActionItem, error)

	// Update persists every column of an existing action item
	Update(ctx context.Context, item *entities.ActionItem) error

	// Delete removes an action item
	Delete(ctx context.Context, id uint) error

	// List retrieves action items with filters and pagination
	List(ctx context.Context, filters ActionItemFilters) ([]*entities.ActionItem, error)
}

// ActionItemFilters represents filter options for listing action items
type ActionItemFilters struct {
	Status *string
	Offset int
	Limit  int
}
