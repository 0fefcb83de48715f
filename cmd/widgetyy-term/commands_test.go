package main

import (
	"context"
	"io"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/widgetyy/progress"
	"github.com/danielhkuo/widgetyy/term"
)

var testNow = time.Date(2024, time.October, 20, 10, 30, 0, 0, time.UTC)

// execute runs the CLI and returns the target it would have displayed
func execute(t *testing.T, args ...string) (term.Target, error) {
	t.Helper()

	var got term.Target
	root := newRootCmd(progress.FixedClock(testNow), func(ctx context.Context, target term.Target) error {
		got = target
		return nil
	})
	root.SetArgs(args)
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)

	err := root.ExecuteContext(context.Background())
	return got, err
}

func TestDeadlineCommand(t *testing.T) {
	target, err := execute(t, "deadline", "--title", "Launch", "--date", "2024-12-01", "--time", "9:00", "--tz", "Europe/Paris")
	require.NoError(t, err)

	dt, ok := target.(term.DeadlineTarget)
	require.True(t, ok)
	assert.Equal(t, "Launch", dt.Deadline.Title)
	assert.Equal(t, "09:00", dt.Deadline.Time)
	assert.Equal(t, "Europe/Paris", dt.Deadline.Location.String())
	assert.True(t, dt.Deadline.At.Equal(time.Date(2024, 12, 1, 8, 0, 0, 0, time.UTC)))
}

func TestDeadlineCommand_TitleNotUnescaped(t *testing.T) {
	target, err := execute(t, "deadline", "--title", "100%25", "--tz", "UTC")
	require.NoError(t, err)

	dt := target.(term.DeadlineTarget)
	assert.Equal(t, "100%25", dt.Deadline.Title)
}

func TestDeadlineCommand_Defaults(t *testing.T) {
	target, err := execute(t, "deadline", "--tz", "UTC")
	require.NoError(t, err)

	dt := target.(term.DeadlineTarget)
	assert.Equal(t, "My Deadline", dt.Deadline.Title)
	assert.True(t, dt.Deadline.At.Equal(time.Date(2024, 10, 21, 12, 0, 0, 0, time.UTC)))
}

func TestDeadlineCommand_RejectsInvalidFlags(t *testing.T) {
	testCases := [][]string{
		{"deadline", "--date", "tomorrow"},
		{"deadline", "--time", "25:00"},
		{"deadline", "--tz", "Mars/Olympus"},
		{"deadline", "extra-arg"},
	}

	for _, args := range testCases {
		target, err := execute(t, args...)
		assert.Error(t, err, args)
		assert.Nil(t, target, args)
	}
}

func TestPeriodCommands(t *testing.T) {
	for _, p := range []progress.Period{progress.PeriodDay, progress.PeriodMonth, progress.PeriodYear} {
		t.Run(string(p), func(t *testing.T) {
			target, err := execute(t, string(p), "--tz", "Asia/Tokyo")
			require.NoError(t, err)

			pt, ok := target.(term.PeriodTarget)
			require.True(t, ok)
			assert.Equal(t, p, pt.Period)
			assert.Equal(t, "Asia/Tokyo", pt.Location.String())
		})
	}
}

func TestPeriodCommand_InvalidTimezone(t *testing.T) {
	_, err := execute(t, "year", "--tz", "Nowhere")
	assert.Error(t, err)
}
