package errors

// DomainError is a failure the caller can act on, identified by a stable code.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}
