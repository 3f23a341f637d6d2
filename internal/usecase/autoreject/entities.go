package autoreject

import "time"

// RunResult is what one run reports back to its trigger.
type RunResult struct {
	RanOn        string    `json:"ran_on"` // the "today" used, YYYY-MM-DD
	Scanned      int       `json:"scanned"`
	Cancelled    int       `json:"cancelled"`
	CancelledIDs []string  `json:"cancelled_ids"`
	FinishedAt   time.Time `json:"finished_at"`
}
