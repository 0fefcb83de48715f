package progress

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDay(t *testing.T) {
	res := Day(at("2024-05-05T12:00:00Z"))

	assert.Equal(t, PeriodDay, res.Period)
	assert.Equal(t, 50, res.Percent)
	assert.Equal(t, at("2024-05-05T00:00:00Z"), res.Window.Start)
	assert.Equal(t, at("2024-05-05T23:59:59Z"), res.Window.End)
	assert.Equal(t, 1, res.DayOfPeriod)
	assert.Equal(t, 1, res.DaysInPeriod)
}

func TestDay_Bounds(t *testing.T) {
	assert.Equal(t, 0, Day(at("2024-05-05T00:00:00Z")).Percent)
	assert.Equal(t, 100, Day(at("2024-05-05T23:59:59Z")).Percent)
}

func TestMonth_LeapFebruary(t *testing.T) {
	res := Month(at("2024-02-15T00:00:00Z"))

	assert.Equal(t, PeriodMonth, res.Period)
	assert.Equal(t, at("2024-02-29T23:59:59Z"), res.Window.End)
	assert.Equal(t, 15, res.DayOfPeriod)
	assert.Equal(t, 29, res.DaysInPeriod)
	assert.Equal(t, 48, res.Percent)
}

func TestMonth_DaysInPeriod(t *testing.T) {
	tests := []struct {
		now  string
		want int
	}{
		{"2023-02-10T08:00:00Z", 28},
		{"2024-04-30T23:00:00Z", 30},
		{"2024-12-01T00:00:00Z", 31},
	}

	for _, tt := range tests {
		t.Run(tt.now, func(t *testing.T) {
			assert.Equal(t, tt.want, Month(at(tt.now)).DaysInPeriod)
		})
	}
}

func TestYear(t *testing.T) {
	first := Year(at("2023-01-01T00:00:00Z"))
	assert.Equal(t, 0, first.Percent)
	assert.Equal(t, 1, first.DayOfPeriod)
	assert.Equal(t, 0, first.WeekOfYear)
	assert.Equal(t, 365, first.DaysInPeriod)
	assert.False(t, first.LeapYear)

	last := Year(at("2024-12-31T23:59:59Z"))
	assert.Equal(t, 100, last.Percent)
	assert.Equal(t, 366, last.DayOfPeriod)
	assert.Equal(t, 366, last.DaysInPeriod)
	assert.Equal(t, 52, last.WeekOfYear)
	assert.True(t, last.LeapYear)
}

func TestYear_KeepsLocation(t *testing.T) {
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)

	res := Year(time.Date(2025, 6, 1, 0, 0, 0, 0, tokyo))
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, tokyo), res.Window.Start)
}

func TestIsLeapYear(t *testing.T) {
	assert.True(t, IsLeapYear(2024))
	assert.True(t, IsLeapYear(2000))
	assert.False(t, IsLeapYear(1900))
	assert.False(t, IsLeapYear(2023))
}

func TestTrack(t *testing.T) {
	now := at("2024-07-04T06:00:00Z")

	for _, p := range []Period{PeriodDay, PeriodMonth, PeriodYear} {
		res, err := Track(p, now)
		require.NoError(t, err)
		assert.Equal(t, p, res.Period)
	}

	_, err := Track("week", now)
	assert.ErrorIs(t, err, ErrUnknownPeriod)
}

func TestParsePeriod(t *testing.T) {
	p, err := ParsePeriod("month")
	require.NoError(t, err)
	assert.Equal(t, PeriodMonth, p)

	_, err = ParsePeriod("decade")
	assert.ErrorIs(t, err, ErrUnknownPeriod)
}

func TestDayCounts_AcrossDST(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// November has the 25h fall-back day.
	nov := Month(time.Date(2024, 11, 15, 12, 0, 0, 0, ny))
	assert.Equal(t, 15, nov.DayOfPeriod)
	assert.Equal(t, 30, nov.DaysInPeriod)

	// March has the 23h spring-forward day.
	mar := Month(time.Date(2024, 3, 31, 0, 30, 0, 0, ny))
	assert.Equal(t, 31, mar.DayOfPeriod)
	assert.Equal(t, 31, mar.DaysInPeriod)

	springForward := Day(time.Date(2024, 3, 10, 12, 0, 0, 0, ny))
	assert.Equal(t, 1, springForward.DayOfPeriod)
	assert.Equal(t, 1, springForward.DaysInPeriod)

	july := Year(time.Date(2024, 7, 1, 0, 30, 0, 0, ny))
	assert.Equal(t, 183, july.DayOfPeriod)
	assert.Equal(t, 366, july.DaysInPeriod)

	last := Year(time.Date(2024, 12, 31, 23, 0, 0, 0, ny))
	assert.Equal(t, 366, last.DayOfPeriod)
}
