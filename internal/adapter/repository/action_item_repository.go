package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/johnquangdev/meeting-intelligence/internal/domain/entities"
	"github.com/johnquangdev/meeting-intelligence/internal/domain/repositories"
	usecaseErrors "github.com/johnquangdev/meeting-intelligence/internal/usecase/errors"
)

type actionItemRepository struct {
	db *gorm.DB
}

// NewActionItemRepository creates a new action item repository
func NewActionItemRepository(db *gorm.DB) repositories.ActionItemRepository {
	return &actionItemRepository{db: db}
}

func (r *actionItemRepository) CreateBatch(ctx context.Context, items []*entities.ActionItem) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&items).Error
}

func (r *actionItemRepository) FindByID(ctx context.Context, id uint) (*entities.ActionItem, error) {
	var item entities.ActionItem
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecaseErrors.ErrTaskNotFound
		}
		return nil, err
	}
	return &item, nil
}

func (r *actionItemRepository) FindByMeetingID(ctx context.Context, meetingID uint) ([]*entities.ActionItem, error) {
	var items []*entities.ActionItem
	err := r.db.WithContext(ctx).
		Where("meeting_id = ?", meetingID).
		Order("id ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *actionItemRepository) Update(ctx context.Context, item *entities.ActionItem) error {
	return r.db.WithContext(ctx).Omit("Meeting").Save(item).Error
}

func (r *actionItemRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&entities.ActionItem{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return usecaseErrors.ErrTaskNotFound
	}
	return nil
}

// List retrieves action items newest first
func (r *actionItemRepository) List(ctx context.Context, filters repositories.ActionItemFilters) ([]*entities.ActionItem, error) {
	var items []*entities.ActionItem

	query := r.db.WithContext(ctx).Model(&entities.ActionItem{})
	if filters.Status != nil {
		query = query.Where("status = ?", *filters.Status)
	}

	err := query.
		Order("created_at DESC").
		Order("id DESC").
		Offset(filters.Offset).
		Limit(filters.Limit).
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}
