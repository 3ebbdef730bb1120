package errors

import "errors"

// Meeting errors
var (
	ErrMeetingNotFound = errors.New("meeting not found")
	ErrInvalidFileType = errors.New("invalid file type")
	ErrFileTooLarge    = errors.New("file too large")
	ErrProcessing      = errors.New("meeting processing failed")
)

// Task errors
var (
	ErrTaskNotFound   = errors.New("task not found")
	ErrFieldNotNull   = errors.New("field cannot be null")
	ErrInvalidDueDate = errors.New("due_date must be YYYY-MM-DD")
)

// AI errors
var (
	ErrTranscriptionFailed = errors.New("transcription failed")
	ErrSummarizationFailed = errors.New("summarization failed")
	ErrProcessingTimeout   = errors.New("file processing timeout")
	ErrAINotConfigured     = errors.New("AI provider not configured")
)

// Storage errors
var (
	ErrStorage = errors.New("audio storage failed")
)
