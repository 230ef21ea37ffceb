package response

import "github.com/harryhartz/bimoodtracker/internal"

// ErrorBody is the uniform failure payload: a human-readable message, plus a
// machine-readable field map for validation failures.
type ErrorBody struct {
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

func FromError(err *internal.AppError) ErrorBody {
	return ErrorBody{Message: err.Message, Fields: err.Fields}
}

type MessageBody struct {
	Message string `json:"message"`
}

func Message(msg string) MessageBody {
	return MessageBody{Message: msg}
}
