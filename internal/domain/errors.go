package domain

type ErrorCode string

const (
	ErrorCodeNotFound         ErrorCode = "NOT_FOUND"
	ErrorCodeNoPRAvailable    ErrorCode = "NO_PR_AVAILABLE"
	ErrorCodeOpenLimit        ErrorCode = "OPEN_ASSIGNMENT_LIMIT"
	ErrorCodeArtifactTooBig   ErrorCode = "ARTIFACT_TOO_LARGE"
	ErrorCodeAudioTooShort    ErrorCode = "AUDIO_TOO_SHORT"
	ErrorCodeAudioTooLong     ErrorCode = "AUDIO_TOO_LONG"
	ErrorCodeAudioFormat      ErrorCode = "AUDIO_FORMAT_UNSUPPORTED"
	ErrorCodeTranscription    ErrorCode = "TRANSCRIPTION_FAILED"
	ErrorCodeStoreUnavailable ErrorCode = "STORE_UNAVAILABLE"
)

type DomainError struct {
	Code    ErrorCode
	Message string
}

func NewDomainError(code ErrorCode, msg string) *DomainError {
	return &DomainError{Code: code, Message: msg}
}

func (e *DomainError) Error() string {
	return e.Message
}
