package models

import (
	"time"

	"github.com/danielhkuo/widgetyy/progress"
)

// Widget kinds
const (
	KindDay      = "day"
	KindMonth    = "month"
	KindYear     = "year"
	KindDeadline = "deadline"
)

// Response types

type DeadlineResponse struct {
	Title       string          `json:"title"`
	Deadline    time.Time       `json:"deadline"`
	Timezone    string          `json:"timezone"`
	Now         time.Time       `json:"now"`
	Result      progress.Result `json:"result"`
	Description string          `json:"description"`
	Label       string          `json:"label"`
	Grid        progress.Grid   `json:"grid"`
	Filled      int             `json:"filled"`
	ShareURL    string          `json:"share_url"`
}

type PeriodResponse struct {
	Now     time.Time             `json:"now"`
	Result  progress.PeriodResult `json:"result"`
	Grid    progress.Grid         `json:"grid"`
	Filled  int                   `json:"filled"`
	Caption string                `json:"caption"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
