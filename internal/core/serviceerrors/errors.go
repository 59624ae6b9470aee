package serviceerrors

import "errors"

type ErrorKind int

const (
	KindValidation ErrorKind = iota
	KindImport
	KindNotFound
	KindPersistence
	KindTransportUnavailable
)

func IsOfKind(err error, kind ErrorKind) bool {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		return svcErr.Kind == kind
	}
	return false
}

type ServiceError struct {
	Kind    ErrorKind
	Message string
}

func (e *ServiceError) Error() string {
	return e.Message
}

// NewValidationError covers bad name/price/quantity input. Always
// recovered locally, never fatal.
func NewValidationError(message string) *ServiceError {
	return &ServiceError{Kind: KindValidation, Message: message}
}

// NewImportError reports a bulk import that produced no valid rows.
// The previous catalog stays in place.
func NewImportError(message string) *ServiceError {
	return &ServiceError{Kind: KindImport, Message: message}
}

func NewNotFoundError(message string) *ServiceError {
	return &ServiceError{Kind: KindNotFound, Message: message}
}

// NewPersistenceError wraps store failures. These are logged and
// swallowed by the services; in-memory state stays authoritative.
func NewPersistenceError(message string) *ServiceError {
	return &ServiceError{Kind: KindPersistence, Message: message}
}

// NewTransportUnavailableError marks the absent-bridge operating mode.
// It is an expected condition, not a failure.
func NewTransportUnavailableError(message string) *ServiceError {
	return &ServiceError{Kind: KindTransportUnavailable, Message: message}
}
