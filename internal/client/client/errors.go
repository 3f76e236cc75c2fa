package client

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/dmitrijs2005/ipms/internal/common"
)

// NetworkMessage is the banner for any transport failure.
const NetworkMessage = "Network error."

// RequestError is a non-2xx response. Message is the resource's generic
// banner; Detail is whatever explanation the server put in the body.
type RequestError struct {
	Op       Op
	Resource string
	Status   int
	Message  string
	Detail   string
	Err      error
}

func (e *RequestError) Error() string {
	s := fmt.Sprintf("%s %s: status %d", e.Op, e.Resource, e.Status)
	if e.Detail != "" {
		s += ": " + e.Detail
	}
	if e.Err != nil {
		s += ": " + e.Err.Error()
	}
	return s
}

func (e *RequestError) Unwrap() error { return e.Err }

func (e *RequestError) UserMessage() string { return e.Message }

// NetworkError is a transport failure: connection refused, DNS, timeout.
type NetworkError struct {
	Op       Op
	Resource string
	Err      error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s %s: network error: %v", e.Op, e.Resource, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

func (e *NetworkError) UserMessage() string { return NetworkMessage }

type userMessager interface {
	UserMessage() string
}

// UserMessage returns the banner text for err. 4xx and 5xx responses give the
// same generic text.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var um userMessager
	if errors.As(err, &um) {
		return um.UserMessage()
	}
	if errors.Is(err, common.ErrExportInProgress) {
		return "Export already in progress."
	}
	return err.Error()
}

// DetailMessage prefers the server's explanation when there is one, the way
// dialogs and row actions report failures.
func DetailMessage(err error) string {
	var re *RequestError
	if errors.As(err, &re) && re.Detail != "" {
		return re.Detail
	}
	return UserMessage(err)
}

// IsUnauthorized reports whether err means the session is missing or was
// rejected by the backend.
func IsUnauthorized(err error) bool {
	return errors.Is(err, common.ErrNoSession) || errors.Is(err, common.ErrUnauthorized)
}

// parseDetail pulls a human-readable explanation out of an error body:
// {"error": ...}, {"detail": ...}, {"message": ...}, or DRF field errors
// like {"sku": ["already exists."]}.
func parseDetail(body []byte) string {
	body = bytes.TrimSpace(body)
	if len(body) == 0 || body[0] != '{' {
		return ""
	}

	var m map[string]json.RawMessage
	if err := json.Unmarshal(body, &m); err != nil {
		return ""
	}

	for _, k := range []string{"error", "detail", "message"} {
		if raw, ok := m[k]; ok {
			var s string
			if json.Unmarshal(raw, &s) == nil && s != "" {
				return s
			}
		}
	}

	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var parts []string
	for _, k := range keys {
		var msgs []string
		if json.Unmarshal(m[k], &msgs) == nil && len(msgs) > 0 {
			parts = append(parts, k+": "+strings.Join(msgs, " "))
		}
	}
	return strings.Join(parts, "; ")
}
