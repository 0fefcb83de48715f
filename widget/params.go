// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package widget

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	ErrInvalidDate     = errors.New("invalid date")
	ErrInvalidTime     = errors.New("invalid time")
	ErrInvalidTimezone = errors.New("invalid timezone")
)

const (
	DefaultTitle = "My Deadline"
	DefaultTime  = "12:00"

	dateLayout = "2006-01-02"
)

var clockRegex = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)

// Defaults are substituted for absent or unusable query parameters.
type Defaults struct {
	Title    string
	Time     string
	Location *time.Location
}

// Deadline is a normalized deadline request.
type Deadline struct {
	Title string
	Date  string // YYYY-MM-DD
	Time  string // HH:MM
	TZ    string // IANA name, empty when the default location is used

	Location *time.Location
	At       time.Time
}

// ParseDeadline reads title, date, time and tz from query values.
// The returned Deadline is always usable: each missing or invalid value is
// replaced by its default, and invalid ones are reported in the joined error.
func ParseDeadline(q url.Values, now time.Time, def Defaults) (Deadline, error) {
	def = def.withFallbacks()
	var errs []error

	d := Deadline{
		Title:    def.Title,
		Time:     def.Time,
		Location: def.Location,
	}

	if tz := strings.TrimSpace(q.Get("tz")); tz != "" {
		loc, err := time.LoadLocation(tz)
		if err != nil {
			errs = append(errs, fmt.Errorf("%w %q", ErrInvalidTimezone, tz))
		} else {
			d.Location = loc
			d.TZ = tz
		}
	}

	if title := strings.TrimSpace(q.Get("title")); title != "" {
		d.Title = title
	}

	if clock := strings.TrimSpace(q.Get("time")); clock != "" {
		norm, err := normalizeClock(clock)
		if err != nil {
			errs = append(errs, err)
		} else {
			d.Time = norm
		}
	}

	local := now.In(d.Location)
	d.Date = time.Date(local.Year(), local.Month(), local.Day()+1, 0, 0, 0, 0, d.Location).Format(dateLayout)
	if date := strings.TrimSpace(q.Get("date")); date != "" {
		if _, err := time.ParseInLocation(dateLayout, date, d.Location); err != nil {
			errs = append(errs, fmt.Errorf("%w %q: expected YYYY-MM-DD", ErrInvalidDate, date))
		} else {
			d.Date = date
		}
	}

	at, err := time.ParseInLocation(dateLayout+" 15:04", d.Date+" "+d.Time, d.Location)
	if err != nil {
		// Both parts were validated above.
		return d, fmt.Errorf("combine deadline: %w", err)
	}
	d.At = at

	return d, errors.Join(errs...)
}

// Query encodes the deadline back into query parameters.
func (d Deadline) Query() url.Values {
	q := url.Values{}
	q.Set("title", d.Title)
	q.Set("date", d.Date)
	q.Set("time", d.Time)
	if d.TZ != "" {
		q.Set("tz", d.TZ)
	}
	return q
}

// DisplayDate formats the deadline date like "Oct 19, 2026".
func (d Deadline) DisplayDate() string {
	return d.At.Format("Jan 2, 2006")
}

// DisplayTime formats the deadline time like "9:05 PM".
func (d Deadline) DisplayTime() string {
	return d.At.Format("3:04 PM")
}

// LoadLocation resolves a timezone name; empty means the local zone.
func LoadLocation(name string) (*time.Location, error) {
	if name == "" || name == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrInvalidTimezone, name, err)
	}
	return loc, nil
}

func (def Defaults) withFallbacks() Defaults {
	if def.Title == "" {
		def.Title = DefaultTitle
	}
	if _, err := normalizeClock(def.Time); err != nil {
		def.Time = DefaultTime
	}
	if def.Location == nil {
		def.Location = time.Local
	}
	return def
}

// normalizeClock accepts H:MM or HH:MM and returns HH:MM.
func normalizeClock(s string) (string, error) {
	m := clockRegex.FindStringSubmatch(s)
	if m == nil {
		return "", fmt.Errorf("%w %q: expected HH:MM", ErrInvalidTime, s)
	}
	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])
	if hour > 23 || minute > 59 {
		return "", fmt.Errorf("%w %q", ErrInvalidTime, s)
	}
	return fmt.Sprintf("%02d:%02d", hour, minute), nil
}

// UnescapeTitle returns a copy of q whose title has the extra
// percent-encoding some embed links carry removed. Only query strings from
// a URL need this; titles typed on a command line are taken as is.
func UnescapeTitle(q url.Values) url.Values {
	title := q.Get("title")
	if title == "" {
		return q
	}
	out := make(url.Values, len(q))
	for k, v := range q {
		out[k] = v
	}
	out.Set("title", decodeTitle(title))
	return out
}

func decodeTitle(s string) string {
	if !strings.Contains(s, "%") {
		return s
	}
	if decoded, err := url.PathUnescape(s); err == nil {
		return decoded
	}
	return s
}
