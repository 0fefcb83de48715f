package progress

import "time"

// Template is the granularity used to express countdown progress.
type Template string

const (
	TemplateHour  Template = "hour"
	TemplateDay   Template = "day"
	TemplateMonth Template = "month"
	TemplateYear  Template = "year"
)

// Period is a fixed calendar window tracked without a deadline.
type Period string

const (
	PeriodDay   Period = "day"
	PeriodMonth Period = "month"
	PeriodYear  Period = "year"
)

// Window is the [Start, End) span whose traversal defines the percentage.
type Window struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Remaining is a countdown split into display units.
type Remaining struct {
	Days    int `json:"days"`
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
	Seconds int `json:"seconds"`
}

// Result is the output of Compute.
type Result struct {
	Percent   int       `json:"percent"`
	Template  Template  `json:"template"`
	Remaining Remaining `json:"remaining"`
	Expired   bool      `json:"expired"`
	Window    Window    `json:"window"`
}

// PeriodResult is the output of the day, month and year trackers.
type PeriodResult struct {
	Period  Period `json:"period"`
	Percent int    `json:"percent"`
	Window  Window `json:"window"`

	// 1-based index of the current day within the period, and the period length in days.
	DayOfPeriod  int `json:"day_of_period"`
	DaysInPeriod int `json:"days_in_period"`

	// Set by the year tracker; always encoded so every period has the same shape.
	WeekOfYear int  `json:"week_of_year"`
	LeapYear   bool `json:"leap_year"`
}
