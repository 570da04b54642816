package apiclient

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	apperrors "github.com/spec-kit/exam-portal/pkg/util"
)

// ErrUnauthorized matches any backend authentication rejection.
var ErrUnauthorized = errors.New("backend rejected credentials")

// APIError is a non-success answer from the backend: either a non-2xx HTTP
// status or an envelope code other than 200.
type APIError struct {
	Status  int
	Code    int
	Message string
	Body    []byte
}

func (e *APIError) Error() string {
	if e.Code != 0 && e.Code != e.Status {
		return fmt.Sprintf("backend error (http %d, code %d): %s", e.Status, e.Code, e.Message)
	}
	return fmt.Sprintf("backend error (http %d): %s", e.Status, e.Message)
}

// Is lets errors.Is(err, ErrUnauthorized) match HTTP 401 answers.
func (e *APIError) Is(target error) bool {
	return target == ErrUnauthorized && e.Status == http.StatusUnauthorized
}

// AsAPIError unwraps err into an *APIError when possible.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// StatusCode is the HTTP status the failure deserves. The backend often
// answers 200 with an error code in the envelope; that code wins then.
func (e *APIError) StatusCode() int {
	if e.Status >= http.StatusBadRequest {
		return e.Status
	}
	if e.Code >= http.StatusBadRequest && e.Code < 600 {
		return e.Code
	}
	return http.StatusBadGateway
}

// ToDomainError converts a client error into the portal's error model.
// Backend answers keep their status; transport failures become 502.
func ToDomainError(err error) error {
	if err == nil {
		return nil
	}
	if apiErr, ok := AsAPIError(err); ok {
		return apperrors.NewUpstreamError(apiErr.StatusCode(), apiErr.Message, err)
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return err
	}
	return apperrors.NewBadGateway("backend unavailable", err)
}
