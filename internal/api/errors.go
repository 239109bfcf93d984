package api

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Error is a non-2xx response from the API. Message carries the
// server-provided text when the body had one.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("api: unexpected status %d", e.Status)
}

// decodeError reads the failure body. The API reports failures as either
// {"error": "..."} or {"message": "..."} depending on the endpoint.
func decodeError(resp *http.Response) error {
	var body struct {
		ErrorMsg string `json:"error"`
		Message  string `json:"message"`
	}
	json.NewDecoder(resp.Body).Decode(&body)

	msg := body.ErrorMsg
	if msg == "" {
		msg = body.Message
	}
	return &Error{Status: resp.StatusCode, Message: msg}
}
