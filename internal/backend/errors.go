package backend

import (
	"encoding/json"
	"errors"
	"fmt"
)

// SlotError is one entry of the backend's structured slot validation list.
type SlotError struct {
	Time   string `json:"time"`
	Reason string `json:"error"`
}

// APIError carries a non-2xx backend response with its body decoded but
// otherwise unchanged. Callers pick the message they need; the client never
// retries or rewrites a failure.
type APIError struct {
	StatusCode int
	Status     string

	// Optional fields of the backend error body, most specific first.
	ErrorField string
	Detail     string
	Message    string
	SlotErrors []SlotError
}

// errorBody matches the shapes the backend emits. FastAPI wraps structured
// HTTPException payloads one level deep under "detail", so Detail is kept
// raw and unwrapped recursively.
type errorBody struct {
	Error   string          `json:"error"`
	Detail  json.RawMessage `json:"detail"`
	Message string          `json:"message"`
	Errors  struct {
		Slots []SlotError `json:"slots"`
	} `json:"errors"`
}

func decodeAPIError(statusCode int, status string, body []byte) *APIError {
	apiErr := &APIError{StatusCode: statusCode, Status: status}
	fillFromBody(apiErr, body)
	return apiErr
}

func fillFromBody(apiErr *APIError, body []byte) {
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err != nil {
		return
	}
	if apiErr.ErrorField == "" {
		apiErr.ErrorField = eb.Error
	}
	if apiErr.Message == "" {
		apiErr.Message = eb.Message
	}
	if len(apiErr.SlotErrors) == 0 {
		apiErr.SlotErrors = eb.Errors.Slots
	}
	if len(eb.Detail) == 0 {
		return
	}
	var detailStr string
	if err := json.Unmarshal(eb.Detail, &detailStr); err == nil {
		if apiErr.Detail == "" {
			apiErr.Detail = detailStr
		}
		return
	}
	// Nested object under "detail": unwrap it.
	fillFromBody(apiErr, eb.Detail)
}

// Error returns the most specific message available, in the order the
// backend's clients have always probed: error, detail, message, then a
// generic status line.
func (e *APIError) Error() string {
	switch {
	case e.ErrorField != "":
		return e.ErrorField
	case e.Detail != "":
		return e.Detail
	case e.Message != "":
		return e.Message
	default:
		return fmt.Sprintf("request failed: %s", e.Status)
	}
}

// AsAPIError unwraps err into an *APIError if one is in the chain.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
