package service

import "fmt"

// Error handling principles:
//  1. Expected conditions are returned as-is: *domain.ValidationError for bad
//     input and store.ErrCardNotFound / store.ErrListNotFound for unknown ids.
//  2. Anything else is wrapped in a ServiceError naming the operation.
//  3. Callers use errors.Is/errors.As; the API layer maps them to HTTP statuses.

// ServiceError is a custom error type for unexpected service failures.
type ServiceError struct {
	Entity    string
	Operation string
	Message   string
	Err       error
}

// Error implements the error interface for ServiceError.
func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s service %s failed: %s: %v", e.Entity, e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("%s service %s failed: %s", e.Entity, e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// NewCardServiceError creates a new ServiceError for the card service.
func NewCardServiceError(operation, message string, err error) *ServiceError {
	return &ServiceError{Entity: "card", Operation: operation, Message: message, Err: err}
}

// NewListServiceError creates a new ServiceError for the list service.
func NewListServiceError(operation, message string, err error) *ServiceError {
	return &ServiceError{Entity: "list", Operation: operation, Message: message, Err: err}
}
