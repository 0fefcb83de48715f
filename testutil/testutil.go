// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/danielhkuo/widgetyy/cliparse"
	"github.com/danielhkuo/widgetyy/progress"
)

// TestNow is the instant every handler test runs at: Oct 20, 2024 10:30 UTC
var TestNow = time.Date(2024, time.October, 20, 10, 30, 0, 0, time.UTC)

// GetTestConfig returns a standard test configuration pinned to UTC
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:            3318,
		BaseURL:         "https://widgets.test",
		Timezone:        "UTC",
		DefaultTitle:    "My Deadline",
		DefaultTime:     "12:00",
		DeadlineRefresh: time.Second,
		PeriodRefresh:   time.Minute,
		Location:        time.UTC,
	}
}

// FixedClock returns a clock stopped at TestNow
func FixedClock() progress.Clock {
	return progress.FixedClock(TestNow)
}

// MustLoadLocation loads an IANA zone or fails the test
func MustLoadLocation(t *testing.T, name string) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation(name)
	if err != nil {
		t.Fatalf("Failed to load location %s: %v", name, err)
	}
	return loc
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, headers map[string]string) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}

// AssertContentType checks the Content-Type header
func AssertContentType(t *testing.T, w *httptest.ResponseRecorder, expected string) {
	t.Helper()
	if got := w.Header().Get("Content-Type"); got != expected {
		t.Errorf("Expected Content-Type '%s', got '%s'", expected, got)
	}
}
