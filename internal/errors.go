package internal

// ErrorKind tags an AppError so callers can branch on the failure class
// instead of inspecting message text.
type ErrorKind string

const (
	KindValidation   ErrorKind = "VALIDATION_ERROR"
	KindUnauthorized ErrorKind = "UNAUTHORIZED"
	KindNotFound     ErrorKind = "NOT_FOUND"
	KindConflict     ErrorKind = "CONFLICT"
	KindInternal     ErrorKind = "INTERNAL"
)

type AppError struct {
	Kind    ErrorKind         `json:"kind"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

func (e *AppError) Error() string {
	return string(e.Kind) + ": " + e.Message
}

// HTTPStatus maps an error kind to its wire status. CONFLICT stays 400 to
// match the existing client contract.
func (e *AppError) HTTPStatus() int {
	switch e.Kind {
	case KindValidation, KindConflict:
		return 400
	case KindUnauthorized:
		return 401
	case KindNotFound:
		return 404
	default:
		return 500
	}
}

func NewValidationError(fields map[string]string) *AppError {
	return &AppError{Kind: KindValidation, Message: "validation failed", Fields: fields}
}

func NewUnauthorized(msg string) *AppError {
	return &AppError{Kind: KindUnauthorized, Message: msg}
}

func NewNotFound(msg string) *AppError {
	return &AppError{Kind: KindNotFound, Message: msg}
}

func NewConflict(msg string) *AppError {
	return &AppError{Kind: KindConflict, Message: msg}
}

func NewInternal(msg string) *AppError {
	return &AppError{Kind: KindInternal, Message: msg}
}
