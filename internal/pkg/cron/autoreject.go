package cron

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"wfh-leave-backend/internal/domain/wfh"
	"wfh-leave-backend/internal/usecase/autoreject"
)

const AutoRejectJobName = "auto_reject_stale_wfh_requests"

// AutoRejecter is satisfied by *autoreject.Usecase.
type AutoRejecter interface {
	Run(ctx context.Context) (*autoreject.RunResult, error)
}

type AutoRejectJobs struct {
	uc AutoRejecter
}

func NewAutoRejectJobs(uc AutoRejecter) *AutoRejectJobs { return &AutoRejectJobs{uc: uc} }

func (j *AutoRejectJobs) RegisterJobs(scheduler *Scheduler, interval time.Duration) error {
	return scheduler.AddJob(AutoRejectJobName, interval, j.AutoRejectStaleRequests)
}

// AutoRejectStaleRequests treats a run held by another replica as success.
func (j *AutoRejectJobs) AutoRejectStaleRequests(ctx context.Context) error {
	res, err := j.uc.Run(ctx)
	if errors.Is(err, wfh.ErrRunInProgress) {
		slog.Info("Cron: auto-reject skipped, another run holds the lock")
		return nil
	}
	if err != nil {
		return err
	}
	if res.Cancelled > 0 {
		slog.Info("Cron: auto-rejected stale requests", "count", res.Cancelled, "ids", res.CancelledIDs)
	}
	return nil
}
