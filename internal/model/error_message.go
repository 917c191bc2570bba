// internal/model/error_message.go
package model

// ErrorMessage is the body the customer API sends with every non-2xx response.
type ErrorMessage struct {
	Message string `json:"message"`
}
