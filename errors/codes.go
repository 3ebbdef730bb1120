package errors

// ErrorCode identifies an application error independent of its HTTP status.
type ErrorCode int32

const (
	ErrorCode_HTTP_OK ErrorCode = 0

	ErrorCode_INTERNAL         ErrorCode = 1000
	ErrorCode_INVALID_ARGUMENT ErrorCode = 1001
	ErrorCode_NOT_FOUND        ErrorCode = 1002
	ErrorCode_INVALID_PAYLOAD  ErrorCode = 1003

	ErrorCode_UPLOAD_INVALID_FILE_TYPE ErrorCode = 2000
	ErrorCode_UPLOAD_FILE_TOO_LARGE    ErrorCode = 2001
	ErrorCode_UPLOAD_MISSING_FILE      ErrorCode = 2002
	ErrorCode_PROCESSING_FAILED        ErrorCode = 2003

	ErrorCode_AI_TRANSCRIPTION_FAILED ErrorCode = 3000
	ErrorCode_AI_SUMMARY_FAILED       ErrorCode = 3001
	ErrorCode_AI_PROCESSING_TIMEOUT   ErrorCode = 3002
	ErrorCode_AI_SERVICE_UNAVAILABLE  ErrorCode = 3003

	ErrorCode_INTEGRATION_STORAGE_FAILED ErrorCode = 4000

	ErrorCode_DB_QUERY_FAILED ErrorCode = 5000
)

var errorCodeNames = map[ErrorCode]string{
	ErrorCode_HTTP_OK:                    "HTTP_OK",
	ErrorCode_INTERNAL:                   "INTERNAL",
	ErrorCode_INVALID_ARGUMENT:           "INVALID_ARGUMENT",
	ErrorCode_NOT_FOUND:                  "NOT_FOUND",
	ErrorCode_INVALID_PAYLOAD:            "INVALID_PAYLOAD",
	ErrorCode_UPLOAD_INVALID_FILE_TYPE:   "UPLOAD_INVALID_FILE_TYPE",
	ErrorCode_UPLOAD_FILE_TOO_LARGE:      "UPLOAD_FILE_TOO_LARGE",
	ErrorCode_UPLOAD_MISSING_FILE:        "UPLOAD_MISSING_FILE",
	ErrorCode_PROCESSING_FAILED:          "PROCESSING_FAILED",
	ErrorCode_AI_TRANSCRIPTION_FAILED:    "AI_TRANSCRIPTION_FAILED",
	ErrorCode_AI_SUMMARY_FAILED:          "AI_SUMMARY_FAILED",
	ErrorCode_AI_PROCESSING_TIMEOUT:      "AI_PROCESSING_TIMEOUT",
	ErrorCode_AI_SERVICE_UNAVAILABLE:     "AI_SERVICE_UNAVAILABLE",
	ErrorCode_INTEGRATION_STORAGE_FAILED: "INTEGRATION_STORAGE_FAILED",
	ErrorCode_DB_QUERY_FAILED:            "DB_QUERY_FAILED",
}

func (c ErrorCode) String() string {
	if name, ok := errorCodeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}
