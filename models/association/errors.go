package association

import "fmt"

type ErrorKind string

const (
	ProtocolError     ErrorKind = "ProtocolError"
	RequestShapeError ErrorKind = "RequestShapeError"
	SemanticError     ErrorKind = "SemanticError"
)

// Error is a user-facing request failure; the first one
// encountered short-circuits the pipeline
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func NewProtocolError(format string, a ...interface{}) *Error {
	return &Error{Kind: ProtocolError, Message: fmt.Sprintf(format, a...)}
}

func NewRequestShapeError(format string, a ...interface{}) *Error {
	return &Error{Kind: RequestShapeError, Message: fmt.Sprintf(format, a...)}
}

func NewSemanticError(format string, a ...interface{}) *Error {
	return &Error{Kind: SemanticError, Message: fmt.Sprintf(format, a...)}
}
