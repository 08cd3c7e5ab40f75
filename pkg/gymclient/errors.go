package gymclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	ErrUnauthorized = errors.New("unauthorized")
	// ErrSuperseded is returned by SaveDay when a newer save of the same date
	// was issued before this one got its turn. Nothing was sent.
	ErrSuperseded = errors.New("save superseded by a newer save of the same date")
)

// APIError is a non 2xx answer of the server.
type APIError struct {
	StatusCode int
	Message    string
	// Field is set for day validation errors.
	Field string
}

func (e *APIError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("gymlog api %d: %s (field %s)", e.StatusCode, e.Message, e.Field)
	}
	return fmt.Sprintf("gymlog api %d: %s", e.StatusCode, e.Message)
}

func (e *APIError) Is(target error) bool {
	return target == ErrUnauthorized && e.StatusCode == http.StatusUnauthorized
}

func newAPIError(statusCode int, body []byte) *APIError {
	apiErr := &APIError{
		StatusCode: statusCode,
		Message:    strings.TrimSpace(string(body)),
	}

	var fieldErr struct {
		Error string `json:"error"`
		Field string `json:"field"`
	}
	if json.Unmarshal(body, &fieldErr) == nil && fieldErr.Error != "" {
		apiErr.Message = fieldErr.Error
		apiErr.Field = fieldErr.Field
	}
	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(statusCode)
	}

	return apiErr
}
