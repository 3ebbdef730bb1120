package entities

import "errors"

// Domain errors
var (
	ErrMeetingStatusFinal = errors.New("meeting status already final")
)
