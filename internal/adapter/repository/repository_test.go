package repository

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/johnquangdev/meeting-intelligence/internal/domain/entities"
	"github.com/johnquangdev/meeting-intelligence/internal/domain/repositories"
	usecaseErrors "github.com/johnquangdev/meeting-intelligence/internal/usecase/errors"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entities.Meeting{}, &entities.ActionItem{}))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })
	return db
}

func strPtr(s string) *string { return &s }

func TestMeetingRepositoryCRUD(t *testing.T) {
	db := newTestDB(t)
	repo := NewMeetingRepository(db)
	ctx := context.Background()

	m := &entities.Meeting{Title: "Standup", AudioFilename: strPtr("sample.wav"), Status: entities.MeetingStatusProcessing}
	require.NoError(t, repo.Create(ctx, m))
	require.NotZero(t, m.ID)

	require.NoError(t, m.SetSummary(&entities.Summary{Title: "Standup", KeyPoints: []string{"ok"}}))
	require.NoError(t, m.MarkAsCompleted())
	require.NoError(t, repo.Update(ctx, m))

	got, err := repo.FindByID(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.MeetingStatusCompleted, got.Status)
	assert.Equal(t, "sample.wav", *got.AudioFilename)
	assert.JSONEq(t, `{"title":"Standup","key_points":["ok"],"decisions":null,"action_items":null}`, string(got.Summary))

	_, err = repo.FindByID(ctx, m.ID+100)
	assert.ErrorIs(t, err, usecaseErrors.ErrMeetingNotFound)
}

func TestMeetingRepositoryListNewestFirst(t *testing.T) {
	db := newTestDB(t)
	repo := NewMeetingRepository(db)
	ctx := context.Background()

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 4; i++ {
		m := &entities.Meeting{Title: fmt.Sprintf("m%d", i), Status: entities.MeetingStatusProcessing, CreatedAt: base.Add(time.Duration(i) * time.Hour)}
		require.NoError(t, repo.Create(ctx, m))
	}

	got, err := repo.List(ctx, 1, 2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "m2", got[0].Title)
	assert.Equal(t, "m1", got[1].Title)
}

func TestMeetingRepositoryDeleteCascades(t *testing.T) {
	db := newTestDB(t)
	meetings := NewMeetingRepository(db)
	items := NewActionItemRepository(db)
	ctx := context.Background()

	keep := &entities.Meeting{Title: "keep", Status: entities.MeetingStatusCompleted}
	drop := &entities.Meeting{Title: "drop", Status: entities.MeetingStatusCompleted}
	require.NoError(t, meetings.Create(ctx, keep))
	require.NoError(t, meetings.Create(ctx, drop))

	a := entities.NewActionItemFromSummary(drop.ID, entities.SummaryActionItem{Task: "one"})
	b := entities.NewActionItemFromSummary(drop.ID, entities.SummaryActionItem{Task: "two"})
	c := entities.NewActionItemFromSummary(keep.ID, entities.SummaryActionItem{Task: "three"})
	require.NoError(t, items.CreateBatch(ctx, []*entities.ActionItem{&a, &b, &c}))

	require.NoError(t, meetings.Delete(ctx, drop.ID))

	_, err := meetings.FindByID(ctx, drop.ID)
	assert.ErrorIs(t, err, usecaseErrors.ErrMeetingNotFound)
	left, err := items.FindByMeetingID(ctx, drop.ID)
	require.NoError(t, err)
	assert.Empty(t, left)
	kept, err := items.FindByMeetingID(ctx, keep.ID)
	require.NoError(t, err)
	assert.Len(t, kept, 1)

	assert.ErrorIs(t, meetings.Delete(ctx, drop.ID), usecaseErrors.ErrMeetingNotFound)
}

func TestActionItemRepositoryFiltersAndDefaults(t *testing.T) {
	db := newTestDB(t)
	meetings := NewMeetingRepository(db)
	items := NewActionItemRepository(db)
	ctx := context.Background()

	m := &entities.Meeting{Title: "planning", Status: entities.MeetingStatusCompleted}
	require.NoError(t, meetings.Create(ctx, m))

	batch := []*entities.ActionItem{}
	for i := 0; i < 5; i++ {
		item := entities.NewActionItemFromSummary(m.ID, entities.SummaryActionItem{Task: fmt.Sprintf("task %d", i)})
		batch = append(batch, &item)
	}
	require.NoError(t, items.CreateBatch(ctx, batch))
	require.NoError(t, items.CreateBatch(ctx, nil))

	done := batch[1]
	done.Status = "completed"
	require.NoError(t, items.Update(ctx, done))

	completed := "completed"
	got, err := items.List(ctx, repositories.ActionItemFilters{Status: &completed, Limit: 50})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "task 1", got[0].Description)

	page, err := items.List(ctx, repositories.ActionItemFilters{Offset: 1, Limit: 2})
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, "task 3", page[0].Description)
	assert.Equal(t, "task 2", page[1].Description)

	one, err := items.FindByID(ctx, batch[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "Unassigned", *one.Assignee)
	assert.Equal(t, "medium", one.Priority)
	assert.Equal(t, "pending", one.Status)

	require.NoError(t, items.Delete(ctx, batch[0].ID))
	_, err = items.FindByID(ctx, batch[0].ID)
	assert.ErrorIs(t, err, usecaseErrors.ErrTaskNotFound)
	assert.ErrorIs(t, items.Delete(ctx, batch[0].ID), usecaseErrors.ErrTaskNotFound)
}
