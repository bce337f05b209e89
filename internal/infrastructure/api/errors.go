package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

var (
	// ErrNoSession is returned by protected calls made without a token. No
	// request is sent.
	ErrNoSession = errors.New("no session token")
	// ErrUnauthorized marks 401 responses: the token is missing, expired or
	// unknown. The *Error carrying the response detail wraps it.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrForbidden marks 403 responses. The session stays valid.
	ErrForbidden = errors.New("forbidden")
)

const GenericMessage = "Something went wrong. Please try again."

// Error is a non-2xx response from the backend.
type Error struct {
	StatusCode int
	Detail     string
}

func (e *Error) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("api error: status=%d detail=%s", e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("api error: status=%d", e.StatusCode)
}

func (e *Error) Unwrap() error {
	switch e.StatusCode {
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusForbidden:
		return ErrForbidden
	}
	return nil
}

// IsUnauthorized reports whether err means the token was rejected or absent.
func IsUnauthorized(err error) bool {
	return errors.Is(err, ErrUnauthorized) || errors.Is(err, ErrNoSession)
}

// Message derives the text shown to the user for a failed call: the
// response's detail when the backend sent one, otherwise fallback.
func Message(err error, fallback string) string {
	if err == nil {
		return ""
	}
	var apiErr *Error
	if errors.As(err, &apiErr) && strings.TrimSpace(apiErr.Detail) != "" {
		return apiErr.Detail
	}
	if fallback == "" {
		return GenericMessage
	}
	return fallback
}

// parseDetail extracts "detail" from an error body. Django-style field
// errors ({"field": ["msg"]}) are flattened into "field: msg".
func parseDetail(body []byte) string {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(body, &obj); err != nil {
		return ""
	}
	if raw, ok := obj["detail"]; ok {
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			return strings.TrimSpace(s)
		}
		return ""
	}
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		var msgs []string
		if err := json.Unmarshal(obj[k], &msgs); err != nil || len(msgs) == 0 {
			continue
		}
		if k == "non_field_errors" {
			return msgs[0]
		}
		return k + ": " + msgs[0]
	}
	return ""
}
