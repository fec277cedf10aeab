package apperrors

import "fmt"

type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

func NewNotFoundError(resource, id string) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

type ServiceUnavailableError struct {
	Message string
	Err     error
}

func (e *ServiceUnavailableError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("service unavailable: %s", e.Message)
	}
	return "service unavailable"
}

func (e *ServiceUnavailableError) Unwrap() error {
	return e.Err
}

func NewServiceUnavailableError(message string, err error) *ServiceUnavailableError {
	return &ServiceUnavailableError{Message: message, Err: err}
}

type TimeoutError struct {
	Operation string
	Err       error
}

func (e *TimeoutError) Error() string {
	if e.Operation != "" {
		return fmt.Sprintf("operation timed out: %s", e.Operation)
	}
	return "operation timed out"
}

func (e *TimeoutError) Unwrap() error {
	return e.Err
}

func NewTimeoutError(operation string, err error) *TimeoutError {
	return &TimeoutError{Operation: operation, Err: err}
}
