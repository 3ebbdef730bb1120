package meeting

import (
	"context"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-intelligence/internal/domain/entities"
	"github.com/johnquangdev/meeting-intelligence/internal/domain/repositories"
	"github.com/johnquangdev/meeting-intelligence/internal/infrastructure/storage"
	"github.com/johnquangdev/meeting-intelligence/internal/usecase/ai"
	usecaseErrors "github.com/johnquangdev/meeting-intelligence/internal/usecase/errors"
)

const failureSaveTimeout = 10 * time.Second

// MeetingService handles the upload workflow and meeting reads
type MeetingService struct {
	meetingRepo    repositories.MeetingRepository
	actionItemRepo repositories.ActionItemRepository
	store          storage.AudioStore
	ai             ai.Service
	maxUploadSize  int64
	logger         *zap.Logger
	now            func() time.Time
}

// NewMeetingService creates a new meeting service
func NewMeetingService(
	meetingRepo repositories.MeetingRepository,
	actionItemRepo repositories.ActionItemRepository,
	store storage.AudioStore,
	aiService ai.Service,
	maxUploadSize int64,
	logger *zap.Logger,
) *MeetingService {
	return &MeetingService{
		meetingRepo:    meetingRepo,
		actionItemRepo: actionItemRepo,
		store:          store,
		ai:             aiService,
		maxUploadSize:  maxUploadSize,
		logger:         logger,
		now:            time.Now,
	}
}

// UploadInput represents one uploaded audio file
type UploadInput struct {
	Filename string
	Title    string
	Size     int64
	File     io.Reader
}

// Upload runs the whole pipeline synchronously. Once the meeting row exists, any failure
// is recorded on it (status failed, summary {"error": ...}) and returned wrapped in
// ErrProcessing together with the meeting.
func (s *MeetingService) Upload(ctx context.Context, input UploadInput) (*entities.Meeting, error) {
	ext := fileExtension(input.Filename)
	if !isAllowedExtension(ext) {
		return nil, usecaseErrors.ErrInvalidFileType
	}
	if s.maxUploadSize > 0 && input.Size > s.maxUploadSize {
		return nil, usecaseErrors.ErrFileTooLarge
	}

	title := input.Title
	if title == "" {
		title = entities.DefaultMeetingTitle(s.now())
	}
	filename := input.Filename
	meeting := &entities.Meeting{
		Title:         title,
		AudioFilename: &filename,
		Status:        entities.MeetingStatusProcessing,
	}
	if err := s.meetingRepo.Create(ctx, meeting); err != nil {
		return nil, fmt.Errorf("create meeting: %w", err)
	}

	s.logger.Info("🎬 Meeting created, processing upload",
		zap.Uint("meeting_id", meeting.ID),
		zap.String("filename", filename),
	)

	if err := s.process(ctx, meeting, input, ext); err != nil {
		s.recordFailure(ctx, meeting, err)
		return meeting, fmt.Errorf("%w: %w", usecaseErrors.ErrProcessing, err)
	}

	s.logger.Info("✅ Meeting processed", zap.Uint("meeting_id", meeting.ID))
	return meeting, nil
}

func (s *MeetingService) process(ctx context.Context, meeting *entities.Meeting, input UploadInput, ext string) error {
	mimeType, body, err := sniffMIMEType(input.File, ext)
	if err != nil {
		return fmt.Errorf("read upload: %w", err)
	}

	name := fmt.Sprintf("meeting_%d%s", meeting.ID, ext)
	location, err := s.store.Save(ctx, name, body, input.Size, mimeType)
	if err != nil {
		return fmt.Errorf("%w: save audio: %w", usecaseErrors.ErrStorage, err)
	}
	meeting.AudioPath = &location
	if err := s.meetingRepo.Update(ctx, meeting); err != nil {
		return fmt.Errorf("save audio path: %w", err)
	}

	transcription, err := s.transcribe(ctx, location, mimeType)
	if err != nil {
		return err
	}
	meeting.Transcription = &transcription
	if err := s.meetingRepo.Update(ctx, meeting); err != nil {
		return fmt.Errorf("save transcription: %w", err)
	}

	summary, err := s.ai.Summarize(ctx, transcription)
	if err != nil {
		return err
	}
	if err := meeting.SetSummary(summary); err != nil {
		return fmt.Errorf("encode summary: %w", err)
	}
	if err := s.meetingRepo.Update(ctx, meeting); err != nil {
		return fmt.Errorf("save summary: %w", err)
	}

	items := make([]*entities.ActionItem, 0, len(summary.ActionItems))
	for _, suggested := range summary.ActionItems {
		item := entities.NewActionItemFromSummary(meeting.ID, suggested)
		items = append(items, &item)
	}
	if err := s.actionItemRepo.CreateBatch(ctx, items); err != nil {
		return fmt.Errorf("create action items: %w", err)
	}

	if err := meeting.MarkAsCompleted(); err != nil {
		return err
	}
	if err := s.meetingRepo.Update(ctx, meeting); err != nil {
		// completed was never persisted
		meeting.Status = entities.MeetingStatusProcessing
		return fmt.Errorf("save status: %w", err)
	}
	return nil
}

func (s *MeetingService) transcribe(ctx context.Context, location, mimeType string) (string, error) {
	audio, err := s.store.Open(ctx, location)
	if err != nil {
		return "", fmt.Errorf("%w: open audio: %w", usecaseErrors.ErrStorage, err)
	}
	defer audio.Close()

	return s.ai.Transcribe(ctx, audio, mimeType)
}

// recordFailure persists the failed state even if the request context is already done
func (s *MeetingService) recordFailure(ctx context.Context, meeting *entities.Meeting, cause error) {
	s.logger.Error("❌ Meeting processing failed",
		zap.Uint("meeting_id", meeting.ID),
		zap.Error(cause),
	)

	if err := meeting.MarkAsFailed(cause.Error()); err != nil {
		s.logger.Error("❌ Cannot mark meeting as failed", zap.Uint("meeting_id", meeting.ID), zap.Error(err))
		return
	}

	saveCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), failureSaveTimeout)
	defer cancel()
	if err := s.meetingRepo.Update(saveCtx, meeting); err != nil {
		s.logger.Error("❌ Failed to persist failed status",
			zap.Uint("meeting_id", meeting.ID),
			zap.Error(err),
		)
	}
}

// GetMeeting retrieves a meeting by ID
func (s *MeetingService) GetMeeting(ctx context.Context, id uint) (*entities.Meeting, error) {
	return s.meetingRepo.FindByID(ctx, id)
}

// ListMeetings retrieves meetings newest first
func (s *MeetingService) ListMeetings(ctx context.Context, skip, limit int) ([]*entities.Meeting, error) {
	return s.meetingRepo.List(ctx, skip, limit)
}

// DeleteMeeting removes the audio first, then the action items and the meeting row
func (s *MeetingService) DeleteMeeting(ctx context.Context, id uint) error {
	meeting, err := s.meetingRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if meeting.AudioPath != nil && *meeting.AudioPath != "" {
		if err := s.store.Remove(ctx, *meeting.AudioPath); err != nil {
			return fmt.Errorf("%w: remove audio: %w", usecaseErrors.ErrStorage, err)
		}
	}

	if err := s.meetingRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("🗑️ Meeting deleted", zap.Uint("meeting_id", id))
	return nil
}

// ListActionItems retrieves the action items of one meeting, or ErrMeetingNotFound
func (s *MeetingService) ListActionItems(ctx context.Context, meetingID uint) ([]*entities.ActionItem, error) {
	if _, err := s.meetingRepo.FindByID(ctx, meetingID); err != nil {
		return nil, err
	}
	return s.actionItemRepo.FindByMeetingID(ctx, meetingID)
}
