package supabase

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
)

var ErrMultipleRows = errors.New("JSON object requested, multiple (or no) rows returned")

// APIError is a non-2xx reply of one of the supabase apis.
// Error returns the api's own message.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

func parseAPIError(status int, body []byte) *APIError {
	// gotrue, storage and postgrest use different field names.
	var payload struct {
		Code             json.RawMessage `json:"code"`
		ErrorCode        string          `json:"error_code"`
		Message          string          `json:"message"`
		Msg              string          `json:"msg"`
		ErrorDescription string          `json:"error_description"`
		Error            string          `json:"error"`
	}
	_ = json.Unmarshal(body, &payload)

	apiErr := &APIError{
		Status: status,
		Code:   strings.Trim(string(payload.Code), `"`),
	}
	if apiErr.Code == "" || apiErr.Code == "null" {
		apiErr.Code = payload.ErrorCode
	}
	for _, message := range []string{payload.Message, payload.Msg, payload.ErrorDescription, payload.Error} {
		if message != "" {
			apiErr.Message = message
			return apiErr
		}
	}
	if trimmed := strings.TrimSpace(string(body)); trimmed != "" && !strings.HasPrefix(trimmed, "{") {
		apiErr.Message = trimmed
	} else {
		apiErr.Message = http.StatusText(status)
	}
	return apiErr
}
