package services

// Kind classifies the outcome of an OrderService operation.
type Kind int

const (
	Success Kind = iota
	ValidationFailed
	NotFound
	StateViolation
	OperationFailed
)

func (k Kind) String() string {
	switch k {
	case Success:
		return "SUCCESS"
	case ValidationFailed:
		return "VALIDATION_FAILED"
	case NotFound:
		return "NOT_FOUND"
	case StateViolation:
		return "STATE_VIOLATION"
	case OperationFailed:
		return "OPERATION_FAILED"
	default:
		return "UNKNOWN"
	}
}

// Result is the tagged outcome of an operation. Value is set only when Kind is
// Success. Messages are safe to show to a client; ErrorRef is set only for
// OperationFailed and matches the error_ref attribute of the logged failure.
type Result[T any] struct {
	Kind     Kind
	Value    T
	Messages []string
	ErrorRef string
}

func succeeded[T any](value T) Result[T] {
	return Result[T]{Kind: Success, Value: value}
}

func failed[T any](kind Kind, messages ...string) Result[T] {
	return Result[T]{Kind: kind, Messages: messages}
}

func (r Result[T]) IsSuccess() bool {
	return r.Kind == Success
}

// Message returns the first message, or an empty string.
func (r Result[T]) Message() string {
	if len(r.Messages) == 0 {
		return ""
	}
	return r.Messages[0]
}
