package handler

import (
	stdErrors "errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-intelligence/errors"
	"github.com/johnquangdev/meeting-intelligence/internal/adapter/dto/common"
	usecaseErrors "github.com/johnquangdev/meeting-intelligence/internal/usecase/errors"
	"github.com/johnquangdev/meeting-intelligence/internal/usecase/meeting"
)

// getRequestID reads the id set by the RequestID middleware
func getRequestID(c echo.Context) string {
	if c == nil || c.Response() == nil {
		return ""
	}
	if id := c.Response().Header().Get(echo.HeaderXRequestID); id != "" {
		return id
	}
	return c.Request().Header.Get(echo.HeaderXRequestID)
}

// HandleSuccess writes the bare representation with the given status
func HandleSuccess(logger *zap.Logger, c echo.Context, status int, data interface{}) error {
	if logger != nil {
		logger.Debug("http.response.success",
			zap.String("request_id", getRequestID(c)),
			zap.String("path", c.Path()),
		)
	}
	return c.JSON(status, data)
}

// HandleError centralizes error mapping and logging
func HandleError(logger *zap.Logger, c echo.Context, err error) error {
	appErr := toAppError(err)

	if logger != nil {
		fields := []zap.Field{
			zap.String("request_id", getRequestID(c)),
			zap.String("path", c.Path()),
			zap.String("app_code", appErr.Code.String()),
			zap.Error(err),
		}
		if appErr.HTTPCode >= http.StatusInternalServerError {
			logger.Error("http.response.error", fields...)
		} else {
			logger.Warn("http.response.error", fields...)
		}
	}

	info := ""
	if appErr.Raw != nil {
		info = appErr.Raw.Error()
	}

	return c.JSON(appErr.HTTPCode, common.ErrorResponse{
		Code:    appErr.Code,
		Message: appErr.Message,
		Info:    info,
		Details: appErr.Details,
	})
}

// toAppError maps usecase sentinels onto the HTTP error catalogue
func toAppError(err error) errors.AppError {
	var appErr errors.AppError
	if stdErrors.As(err, &appErr) {
		return appErr
	}

	var httpErr *echo.HTTPError
	if stdErrors.As(err, &httpErr) {
		if httpErr.Code < http.StatusInternalServerError {
			return errors.ErrInvalidPayload(err)
		}
		return errors.ErrInternal(err)
	}

	switch {
	case stdErrors.Is(err, usecaseErrors.ErrMeetingNotFound):
		return errors.ErrNotFound("Meeting")
	case stdErrors.Is(err, usecaseErrors.ErrTaskNotFound):
		return errors.ErrNotFound("Task")
	case stdErrors.Is(err, usecaseErrors.ErrInvalidFileType):
		return errors.ErrInvalidFileType(meeting.AllowedExtensions())
	case stdErrors.Is(err, usecaseErrors.ErrFieldNotNull),
		stdErrors.Is(err, usecaseErrors.ErrInvalidDueDate):
		return errors.ErrInvalidArgument(err.Error())
	case stdErrors.Is(err, usecaseErrors.ErrTranscriptionFailed):
		return errors.ErrAITranscriptionFailed(err)
	case stdErrors.Is(err, usecaseErrors.ErrSummarizationFailed):
		return errors.ErrAISummaryFailed(err)
	case stdErrors.Is(err, usecaseErrors.ErrProcessingTimeout):
		return errors.ErrAIProcessingTimeout(err)
	case stdErrors.Is(err, usecaseErrors.ErrAINotConfigured):
		return errors.ErrAIServiceUnavailable("ai")
	case stdErrors.Is(err, usecaseErrors.ErrStorage):
		return errors.ErrStorageFailed("audio", err)
	}
	return errors.ErrInternal(err)
}

// parseID reads a numeric path parameter
func parseID(c echo.Context, name string) (uint, error) {
	var id uint
	if err := echo.PathParamsBinder(c).MustUint(name, &id).BindError(); err != nil {
		return 0, errors.ErrInvalidArgument("invalid " + name)
	}
	return id, nil
}
