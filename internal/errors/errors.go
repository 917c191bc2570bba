// internal/errors/errors.go
package appErrors

import (
	"errors"
	"fmt"
)

// ErrCustomerNotFound is returned by the service when no row matches the id.
type ErrCustomerNotFound struct {
	CustomerID string
}

func (e *ErrCustomerNotFound) Error() string {
	return fmt.Sprintf("No customer found for id %s.", e.CustomerID)
}

// Helper constructor
func NewCustomerNotFound(id string) error {
	return &ErrCustomerNotFound{CustomerID: id}
}

// StatusError is a non-200 answer from the customer API.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("unexpected status %d", e.Code)
	}
	return fmt.Sprintf("unexpected status %d: %s", e.Code, e.Message)
}

// DecodeError means the response body was not a customer object.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return "malformed customer response: " + e.Err.Error()
}

func (e *DecodeError) Unwrap() error { return e.Err }

func IsNotFound(err error) bool {
	var nf *ErrCustomerNotFound
	return errors.As(err, &nf)
}
