package handler

import (
	stdErrors "errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-intelligence/errors"
	"github.com/johnquangdev/meeting-intelligence/internal/adapter/dto/common"
	meetingDTO "github.com/johnquangdev/meeting-intelligence/internal/adapter/dto/meeting"
	"github.com/johnquangdev/meeting-intelligence/internal/adapter/presenter"
	usecaseErrors "github.com/johnquangdev/meeting-intelligence/internal/usecase/errors"
	meetingUsecase "github.com/johnquangdev/meeting-intelligence/internal/usecase/meeting"
)

// Meeting handles meeting upload and read HTTP requests
type Meeting struct {
	meetingService meetingUsecase.Service
	maxUploadSize  int64
	logger         *zap.Logger
}

// NewMeetingHandler creates a new meeting handler
func NewMeetingHandler(meetingService meetingUsecase.Service, maxUploadSize int64, logger *zap.Logger) *Meeting {
	return &Meeting{
		meetingService: meetingService,
		maxUploadSize:  maxUploadSize,
		logger:         logger,
	}
}

// UploadMeeting handles POST /api/meetings
// @Summary      Upload meeting audio
// @Description  Stores the audio, transcribes and summarizes it, and extracts action items. Runs synchronously.
// @Tags         Meetings
// @Accept       multipart/form-data
// @Produce      json
// @Param        file   formData  file    true   "Audio file (.mp3 .wav .mp4 .webm .m4a .ogg)"
// @Param        title  formData  string  false  "Meeting title"
// @Success      200    {object}  meeting.MeetingResponse
// @Failure      400    {object}  common.ErrorResponse  "Missing file or invalid file type"
// @Failure      413    {object}  common.ErrorResponse  "File too large"
// @Failure      500    {object}  common.ErrorResponse  "Processing failed"
// @Router       /api/meetings [post]
func (h *Meeting) UploadMeeting(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return HandleError(h.logger, c, errors.ErrMissingFile())
	}

	file, err := fileHeader.Open()
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload(err))
	}
	defer file.Close()

	m, err := h.meetingService.Upload(c.Request().Context(), meetingUsecase.UploadInput{
		Filename: fileHeader.Filename,
		Title:    c.FormValue("title"),
		Size:     fileHeader.Size,
		File:     file,
	})
	if err != nil {
		switch {
		case stdErrors.Is(err, usecaseErrors.ErrFileTooLarge):
			return HandleError(h.logger, c, errors.ErrFileTooLarge(h.maxUploadSize))
		case stdErrors.Is(err, usecaseErrors.ErrProcessing) && m != nil:
			return HandleError(h.logger, c, errors.ErrProcessingFailed(m.ID, err))
		}
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToMeetingResponse(m))
}

// ListMeetings handles GET /api/meetings
// @Summary      List meetings
// @Description  Lists meetings newest first
// @Tags         Meetings
// @Produce      json
// @Param        skip   query     int  false  "Rows to skip"  default(0)
// @Param        limit  query     int  false  "Page size"     default(10)
// @Success      200    {array}   meeting.MeetingResponse
// @Failure      400    {object}  common.ErrorResponse
// @Router       /api/meetings [get]
func (h *Meeting) ListMeetings(c echo.Context) error {
	req := meetingDTO.DefaultListMeetingsRequest()
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload(err))
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(err.Error()))
	}

	meetings, err := h.meetingService.ListMeetings(c.Request().Context(), req.Skip, req.Limit)
	if err != nil {
		return HandleError(h.logger, c, errors.ErrDBQueryFailed("list meetings", err))
	}

	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToMeetingListResponse(meetings))
}

// GetMeeting handles GET /api/meetings/:id
// @Summary      Get meeting
// @Tags         Meetings
// @Produce      json
// @Param        id   path      int  true  "Meeting ID"
// @Success      200  {object}  meeting.MeetingResponse
// @Failure      404  {object}  common.ErrorResponse
// @Router       /api/meetings/{id} [get]
func (h *Meeting) GetMeeting(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	m, err := h.meetingService.GetMeeting(c.Request().Context(), id)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToMeetingResponse(m))
}

// DeleteMeeting handles DELETE /api/meetings/:id
// @Summary      Delete meeting
// @Description  Removes the meeting, its action items and its audio file
// @Tags         Meetings
// @Produce      json
// @Param        id   path      int  true  "Meeting ID"
// @Success      200  {object}  common.MessageResponse
// @Failure      404  {object}  common.ErrorResponse
// @Router       /api/meetings/{id} [delete]
func (h *Meeting) DeleteMeeting(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	if err := h.meetingService.DeleteMeeting(c.Request().Context(), id); err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, http.StatusOK, common.MessageResponse{Message: "Meeting deleted successfully"})
}

// ListMeetingActions handles GET /api/meetings/:id/actions
// @Summary      List meeting action items
// @Tags         Meetings
// @Produce      json
// @Param        id   path      int  true  "Meeting ID"
// @Success      200  {array}   task.ActionItemResponse
// @Failure      404  {object}  common.ErrorResponse
// @Router       /api/meetings/{id}/actions [get]
func (h *Meeting) ListMeetingActions(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	items, err := h.meetingService.ListActionItems(c.Request().Context(), id)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToActionItemListResponse(items))
}
