// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielhkuo/widgetyy/testutil"
)

func newWidgetHandler() *WidgetHandler {
	return NewWidgetHandler(testutil.GetTestConfig(), testutil.FixedClock())
}

func TestDayTracker(t *testing.T) {
	handler := newWidgetHandler()

	req := testutil.MakeRequest("GET", "/day_tracker", nil)
	w := httptest.NewRecorder()

	handler.DayTracker(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)
	testutil.AssertContentType(t, w, "text/html; charset=utf-8")

	body := w.Body.String()
	// 10:30 of a 24h day
	for _, want := range []string{"44%", "Today", "Sunday, October 20", "10:30 AM", `http-equiv="refresh" content="60"`} {
		if !strings.Contains(body, want) {
			t.Errorf("Expected body to contain %q", want)
		}
	}
	if got := strings.Count(body, `class="d on"`); got != 11 {
		t.Errorf("Expected 11 filled cells, got %d", got)
	}
}

func TestDayTracker_Timezone(t *testing.T) {
	handler := newWidgetHandler()

	req := testutil.MakeRequest("GET", "/day_tracker?tz=Asia/Tokyo", nil)
	w := httptest.NewRecorder()

	handler.DayTracker(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)
	if !strings.Contains(w.Body.String(), "07:30 PM") {
		t.Error("Expected the clock in Tokyo time")
	}
}

func TestDayTracker_InvalidTimezoneFallsBack(t *testing.T) {
	handler := newWidgetHandler()

	req := testutil.MakeRequest("GET", "/day_tracker?tz=Mars/Olympus", nil)
	w := httptest.NewRecorder()

	handler.DayTracker(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)
	body := w.Body.String()
	if !strings.Contains(body, "10:30 AM") {
		t.Error("Expected fallback to the configured timezone")
	}
	if !strings.Contains(body, "invalid timezone") {
		t.Error("Expected a warning for the ignored timezone")
	}
}

func TestMonthTracker(t *testing.T) {
	handler := newWidgetHandler()

	req := testutil.MakeRequest("GET", "/month_tracker", nil)
	w := httptest.NewRecorder()

	handler.MonthTracker(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)
	body := w.Body.String()
	for _, want := range []string{"October 2024", "This Month", "20 of 31", "63%"} {
		if !strings.Contains(body, want) {
			t.Errorf("Expected body to contain %q", want)
		}
	}
}

func TestYearTracker(t *testing.T) {
	handler := newWidgetHandler()

	req := testutil.MakeRequest("GET", "/year_tracker", nil)
	w := httptest.NewRecorder()

	handler.YearTracker(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)
	body := w.Body.String()
	for _, want := range []string{"This Year", "2024", "294th day, week 42 (Leap Year)"} {
		if !strings.Contains(body, want) {
			t.Errorf("Expected body to contain %q", want)
		}
	}
	if got := strings.Count(body, `class="d`); got != 120 {
		t.Errorf("Expected 120 cells, got %d", got)
	}
}

func TestDeadlineTracker(t *testing.T) {
	handler := newWidgetHandler()

	req := testutil.MakeRequest("GET", "/deadline_tracker?title=Launch&date=2024-10-20&time=22:30&tz=UTC", nil)
	w := httptest.NewRecorder()

	handler.DeadlineTracker(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)
	body := w.Body.String()

	// 10.5h into a 22.5h window
	for _, want := range []string{
		"Launch",
		"47%",
		"12h 0m 0s remaining",
		"Daily Template",
		"Oct 20, 2024",
		"10:30 PM",
		`http-equiv="refresh" content="1"`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("Expected body to contain %q", want)
		}
	}
	if strings.Contains(body, `class="warn"`) {
		t.Error("Expected no warnings for valid parameters")
	}
}

func TestDeadlineTracker_DoubleEncodedTitle(t *testing.T) {
	handler := newWidgetHandler()

	req := testutil.MakeRequest("GET", "/deadline_tracker?title=Thesis%2520Defense&date=2024-10-20&time=22:30", nil)
	w := httptest.NewRecorder()

	handler.DeadlineTracker(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)
	if !strings.Contains(w.Body.String(), "Thesis Defense") {
		t.Error("Expected the decoded title")
	}
}

func TestDeadlineTracker_Expired(t *testing.T) {
	handler := newWidgetHandler()

	req := testutil.MakeRequest("GET", "/deadline_tracker?date=2024-10-19&time=09:00", nil)
	w := httptest.NewRecorder()

	handler.DeadlineTracker(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)
	body := w.Body.String()
	if !strings.Contains(body, "Deadline has passed") {
		t.Error("Expected expired description")
	}
	if !strings.Contains(body, "100%") {
		t.Error("Expected 100%")
	}
	if !strings.Contains(body, "card expired") {
		t.Error("Expected expired styling")
	}
}

func TestDeadlineTracker_InvalidParamsFallBack(t *testing.T) {
	handler := newWidgetHandler()

	req := testutil.MakeRequest("GET", "/deadline_tracker?date=2024-13-45&time=25:99", nil)
	w := httptest.NewRecorder()

	handler.DeadlineTracker(w, req)

	// Pages never fail on bad input
	testutil.AssertStatus(t, w, http.StatusOK)
	body := w.Body.String()
	if !strings.Contains(body, "invalid date") || !strings.Contains(body, "invalid time") {
		t.Error("Expected warnings for both invalid parameters")
	}
	// Defaults: tomorrow at 12:00
	if !strings.Contains(body, "Oct 21, 2024") || !strings.Contains(body, "12:00 PM") {
		t.Error("Expected default deadline of tomorrow noon")
	}
	if !strings.Contains(body, "My Deadline") {
		t.Error("Expected default title")
	}
}

func TestDeadlineTracker_ShareLink(t *testing.T) {
	handler := newWidgetHandler()

	req := testutil.MakeRequest("GET", "/deadline_tracker?title=Exam&date=2024-12-01&time=9:00", nil)
	w := httptest.NewRecorder()

	handler.DeadlineTracker(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)
	want := "https://widgets.test/deadline_tracker?date=2024-12-01&amp;time=09%3a00&amp;title=Exam"
	if !strings.Contains(strings.ToLower(w.Body.String()), strings.ToLower(want)) {
		t.Errorf("Expected normalized share link %q in body", want)
	}
}

func TestSVG(t *testing.T) {
	handler := newWidgetHandler()

	testCases := []struct {
		file  string
		cells int
	}{
		{"day.svg", 24},
		{"month.svg", 30},
		{"year.svg", 120},
		// 12h out uses the day template
		{"deadline.svg", 24},
	}

	for _, tc := range testCases {
		t.Run(tc.file, func(t *testing.T) {
			req := testutil.MakeRequest("GET", "/widgets/"+tc.file+"?date=2024-10-20&time=22:30", nil)
			req.SetPathValue("file", tc.file)
			w := httptest.NewRecorder()

			handler.SVG(w, req)

			testutil.AssertStatus(t, w, http.StatusOK)
			testutil.AssertContentType(t, w, "image/svg+xml")
			if got := strings.Count(w.Body.String(), "<polygon"); got != tc.cells {
				t.Errorf("Expected %d polygons, got %d", tc.cells, got)
			}
		})
	}
}

func TestSVG_ExpiredDeadline(t *testing.T) {
	handler := newWidgetHandler()

	req := testutil.MakeRequest("GET", "/widgets/deadline.svg?date=2020-01-01", nil)
	req.SetPathValue("file", "deadline.svg")
	w := httptest.NewRecorder()

	handler.SVG(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)
	if !strings.Contains(w.Body.String(), "#b91c1c") {
		t.Error("Expected expired color")
	}
}

func TestSVG_UnknownKind(t *testing.T) {
	handler := newWidgetHandler()

	for _, file := range []string{"week.svg", "day.png", "day"} {
		t.Run(file, func(t *testing.T) {
			req := testutil.MakeRequest("GET", "/widgets/"+file, nil)
			req.SetPathValue("file", file)
			w := httptest.NewRecorder()

			handler.SVG(w, req)

			testutil.AssertStatus(t, w, http.StatusNotFound)
		})
	}
}
