package widget

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/widgetyy/progress"
)

// Describe renders the remaining time the way the countdown widget shows it.
func Describe(res progress.Result) string {
	if res.Expired {
		return "Deadline has passed"
	}

	r := res.Remaining
	switch res.Template {
	case progress.TemplateHour:
		// Total minutes, not minutes mod 60: exactly one hour out reads "60m 0s".
		minutes := r.Hours*60 + r.Minutes
		if minutes > 0 {
			return fmt.Sprintf("%dm %ds remaining", minutes, r.Seconds)
		}
		return fmt.Sprintf("%ds remaining", r.Seconds)

	case progress.TemplateDay:
		if r.Days < 1 {
			if r.Hours > 0 {
				return fmt.Sprintf("%dh %dm %ds remaining", r.Hours, r.Minutes, r.Seconds)
			}
			return fmt.Sprintf("%dm %ds remaining", r.Minutes, r.Seconds)
		}
		return fmt.Sprintf("%s %dh remaining", days(r.Days), r.Hours)

	case progress.TemplateMonth:
		if r.Days > 0 {
			return days(r.Days) + " remaining"
		}
		return fmt.Sprintf("%dh %dm remaining", r.Hours, r.Minutes)
	}

	return days(r.Days) + " remaining"
}

// TemplateLabel names a template for display.
func TemplateLabel(t progress.Template) string {
	switch t {
	case progress.TemplateHour:
		return "Hour Template"
	case progress.TemplateDay:
		return "Daily Template"
	case progress.TemplateMonth:
		return "Monthly Template"
	case progress.TemplateYear:
		return "Yearly Template"
	}
	return "Template"
}

// Captions are the text lines around a period tracker's grid.
type Captions struct {
	Heading    string
	Subheading string
	Footer     string
}

// PeriodCaptions builds the labels for a tracker at now.
func PeriodCaptions(res progress.PeriodResult, now time.Time) Captions {
	switch res.Period {
	case progress.PeriodDay:
		return Captions{
			Heading:    "Today",
			Subheading: now.Format("Monday, January 2"),
			Footer:     now.Format("03:04 PM"),
		}
	case progress.PeriodMonth:
		return Captions{
			Heading:    now.Format("January 2006"),
			Subheading: "This Month",
			Footer:     fmt.Sprintf("%d of %d", res.DayOfPeriod, res.DaysInPeriod),
		}
	}

	kind := "Regular Year"
	if res.LeapYear {
		kind = "Leap Year"
	}
	return Captions{
		Heading:    "This Year",
		Subheading: now.Format("2006"),
		Footer:     fmt.Sprintf("%s day, week %d (%s)", humanize.Ordinal(res.DayOfPeriod), res.WeekOfYear, kind),
	}
}

func days(n int) string {
	if n == 1 {
		return "1 day"
	}
	return humanize.Comma(int64(n)) + " days"
}
