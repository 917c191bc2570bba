package lookup

import (
	"context"
	"errors"

	appErrors "github.com/unclebandit/customer-lookup/internal/errors"
	"github.com/unclebandit/customer-lookup/internal/model"
)

// Reason classifies a failed lookup.
type Reason string

const (
	ReasonNone      Reason = ""
	ReasonTransport Reason = "transport"
	ReasonStatus    Reason = "status"
	ReasonDecode    Reason = "decode"
	ReasonCanceled  Reason = "canceled"
)

// Result is the outcome of one lookup: a Customer on success, a Reason and Err otherwise.
type Result struct {
	SubmissionID string
	ID           ID
	Customer     *model.Customer
	Reason       Reason
	Err          error
}

func (r Result) OK() bool { return r.Err == nil && r.Customer != nil }

func classify(err error) Reason {
	if err == nil {
		return ReasonNone
	}
	var statusErr *appErrors.StatusError
	var decodeErr *appErrors.DecodeError
	switch {
	case errors.As(err, &statusErr):
		return ReasonStatus
	case errors.As(err, &decodeErr):
		return ReasonDecode
	case errors.Is(err, context.Canceled):
		return ReasonCanceled
	default:
		return ReasonTransport
	}
}
