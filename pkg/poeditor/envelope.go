package poeditor

import (
	"errors"
	"fmt"
)

// Status is the completion state reported by every POEditor response.
type Status string

const (
	StatusSuccess Status = "success"
	StatusFail    Status = "fail"
)

// ResponseStatus is the "response" object present in every envelope.
type ResponseStatus struct {
	Status  Status `json:"status"`
	Message string `json:"message"`
	Code    string `json:"code"`
}

// Envelope is the wire shape of a POEditor response. Result must not be
// read unless Response.Err() is nil.
type Envelope[T any] struct {
	Response ResponseStatus `json:"response"`
	Result   T              `json:"result"`
}

// Err returns nil for a successful response and an *OperationFailedError
// otherwise.
func (r ResponseStatus) Err() error {
	if r.Status == StatusSuccess {
		return nil
	}
	return &OperationFailedError{Message: r.Message, Code: r.Code}
}

// OperationFailedError is returned when POEditor answered with a non-success
// status. This includes validation failures performed remotely, such as a
// missing project name.
type OperationFailedError struct {
	Message string
	Code    string
}

// Error returns the remote message verbatim.
func (e *OperationFailedError) Error() string {
	return e.Message
}

// TransportError is returned when the call failed before a response envelope
// could be decoded.
type TransportError struct {
	Path string
	Err  error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("poeditor %s: %v", e.Path, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// IsOperationFailed reports whether err carries a remote failure and returns it.
func IsOperationFailed(err error) (*OperationFailedError, bool) {
	var opErr *OperationFailedError
	if errors.As(err, &opErr) {
		return opErr, true
	}
	return nil, false
}
