package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
)

// NewRequest creates a new HTTP request for testing. String and []byte bodies
// are sent verbatim; any other non-nil body is JSON encoded.
func NewRequest(method, path string, body any) *http.Request {
	var bodyBytes []byte
	switch b := body.(type) {
	case nil:
	case string:
		bodyBytes = []byte(b)
	case []byte:
		bodyBytes = b
	default:
		bodyBytes, _ = json.Marshal(b)
	}

	if len(bodyBytes) == 0 {
		return httptest.NewRequest(method, path, nil)
	}
	r := httptest.NewRequest(method, path, bytes.NewReader(bodyBytes))
	r.Header.Set("Content-Type", "application/json")
	return r
}

// RecordResponse is a decoded view of a recorded response.
type RecordResponse struct {
	Code   int
	Header http.Header
	Body   map[string]any
}

// RecordHTTPResponse records the HTTP response
func RecordHTTPResponse(w *httptest.ResponseRecorder) RecordResponse {
	result := w.Result()
	defer result.Body.Close()

	bodyBytes, _ := io.ReadAll(result.Body)

	var bodyMap map[string]any
	if len(bodyBytes) > 0 {
		_ = json.Unmarshal(bodyBytes, &bodyMap)
	}

	return RecordResponse{
		Code:   result.StatusCode,
		Header: result.Header,
		Body:   bodyMap,
	}
}

// AssertEnvelope checks the status and message fields of a recorded envelope.
func AssertEnvelope(t interface {
	Helper()
	Errorf(format string, args ...any)
}, resp RecordResponse, wantStatus, wantMessage string) {
	t.Helper()
	if got := resp.Body["status"]; got != wantStatus {
		t.Errorf("got status %v, want %q", got, wantStatus)
	}
	if wantMessage == "" {
		return
	}
	if got := resp.Body["message"]; got != wantMessage {
		t.Errorf("got message %v, want %q", got, wantMessage)
	}
}
