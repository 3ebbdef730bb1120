package errors

import (
	"fmt"
	"net/http"
	"strings"
	"time"
)

// AppError là custom error type cho application
type AppError struct {
	Raw       error
	HTTPCode  int
	Code      ErrorCode
	Message   string
	Details   map[string]string
	Timestamp time.Time
}

// Error implements error interface
func (e AppError) Error() string {
	if e.Raw != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code.String(), e.Message, e.Raw)
	}
	return fmt.Sprintf("[%s] %s", e.Code.String(), e.Message)
}

// Unwrap exposes the raw cause to errors.Is / errors.As
func (e AppError) Unwrap() error {
	return e.Raw
}

// WithDetail adds a detail to the error
func (e AppError) WithDetail(key, value string) AppError {
	details := make(map[string]string, len(e.Details)+1)
	for k, v := range e.Details {
		details[k] = v
	}
	details[key] = value
	e.Details = details
	return e
}

func newAppError(httpCode int, code ErrorCode, message string, raw error) AppError {
	return AppError{
		Raw:       raw,
		HTTPCode:  httpCode,
		Code:      code,
		Message:   message,
		Timestamp: time.Now().UTC(),
	}
}

// General Errors
func ErrInternal(err error) AppError {
	return newAppError(http.StatusInternalServerError, ErrorCode_INTERNAL, "Internal server error", err)
}

func ErrInvalidArgument(message string) AppError {
	return newAppError(http.StatusBadRequest, ErrorCode_INVALID_ARGUMENT, message, nil)
}

func ErrNotFound(resource string) AppError {
	return newAppError(http.StatusNotFound, ErrorCode_NOT_FOUND, fmt.Sprintf("%s not found", resource), nil)
}

func ErrInvalidPayload(err error) AppError {
	return newAppError(http.StatusBadRequest, ErrorCode_INVALID_PAYLOAD, "Invalid payload", err)
}

// Upload Errors
func ErrInvalidFileType(allowed []string) AppError {
	return newAppError(http.StatusBadRequest, ErrorCode_UPLOAD_INVALID_FILE_TYPE,
		fmt.Sprintf("Invalid file type. Allowed: %s", strings.Join(allowed, ", ")), nil)
}

func ErrFileTooLarge(maxBytes int64) AppError {
	return newAppError(http.StatusRequestEntityTooLarge, ErrorCode_UPLOAD_FILE_TOO_LARGE,
		"File too large", nil).WithDetail("max_bytes", fmt.Sprintf("%d", maxBytes))
}

func ErrMissingFile() AppError {
	return newAppError(http.StatusBadRequest, ErrorCode_UPLOAD_MISSING_FILE, "Missing audio file", nil)
}

// AI Errors
func ErrAITranscriptionFailed(err error) AppError {
	return newAppError(http.StatusBadGateway, ErrorCode_AI_TRANSCRIPTION_FAILED, "Audio transcription failed", err)
}

func ErrAISummaryFailed(err error) AppError {
	return newAppError(http.StatusBadGateway, ErrorCode_AI_SUMMARY_FAILED, "Failed to generate summary", err)
}

func ErrAIProcessingTimeout(err error) AppError {
	return newAppError(http.StatusGatewayTimeout, ErrorCode_AI_PROCESSING_TIMEOUT, "AI file processing timed out", err)
}

func ErrAIServiceUnavailable(service string) AppError {
	return newAppError(http.StatusServiceUnavailable, ErrorCode_AI_SERVICE_UNAVAILABLE,
		"AI service temporarily unavailable", nil).WithDetail("service", service)
}

// Integration Errors
func ErrStorageFailed(operation string, err error) AppError {
	return newAppError(http.StatusInternalServerError, ErrorCode_INTEGRATION_STORAGE_FAILED,
		fmt.Sprintf("Storage operation failed: %s", operation), err)
}

// Database Errors
func ErrDBQueryFailed(query string, err error) AppError {
	return newAppError(http.StatusInternalServerError, ErrorCode_DB_QUERY_FAILED,
		"Database query failed", err).WithDetail("query", query)
}

// ErrProcessingFailed is returned when the upload pipeline fails after the meeting row exists.
func ErrProcessingFailed(meetingID uint, err error) AppError {
	return newAppError(http.StatusInternalServerError, ErrorCode_PROCESSING_FAILED,
		"Processing failed", err).WithDetail("meeting_id", fmt.Sprintf("%d", meetingID))
}
