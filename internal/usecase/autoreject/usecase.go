package autoreject

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"wfh-leave-backend/internal/domain/uow"
	"wfh-leave-backend/internal/domain/wfh"
)

const lockKey = "auto-reject"

// RunLock serialises runs across replicas. TryLock must not block.
type RunLock interface {
	TryLock(ctx context.Context, key string, ttl time.Duration) (unlock func(context.Context) error, acquired bool, err error)
}

// Observer is told about every finished run, successful or not.
type Observer interface {
	ObserveAutoReject(res *RunResult, err error, took time.Duration)
}

type Usecase struct {
	uow      uow.UnitOfWork
	now      func() time.Time
	loc      *time.Location
	lock     RunLock
	lockTTL  time.Duration
	observer Observer
}

type Option func(*Usecase)

// WithClock replaces time.Now; tests pin "today" with it.
func WithClock(now func() time.Time) Option { return func(u *Usecase) { u.now = now } }

// WithLocation sets the zone whose calendar decides "today".
func WithLocation(loc *time.Location) Option { return func(u *Usecase) { u.loc = loc } }

func WithRunLock(l RunLock, ttl time.Duration) Option {
	return func(u *Usecase) { u.lock, u.lockTTL = l, ttl }
}

func WithObserver(o Observer) Option { return func(u *Usecase) { u.observer = o } }

func NewUsecase(tx uow.UnitOfWork, opts ...Option) *Usecase {
	u := &Usecase{uow: tx, now: time.Now, loc: time.UTC, lockTTL: 5 * time.Minute}
	for _, o := range opts {
		o(u)
	}
	return u
}

// Today is the current calendar day in the configured zone.
func (u *Usecase) Today() time.Time { return wfh.DateOf(u.now().In(u.loc)) }

// Run scans every pending request and cancels the stale ones in a single
// transaction. On any error nothing is committed and the error is returned as is.
func (u *Usecase) Run(ctx context.Context) (*RunResult, error) {
	start := time.Now()
	res, err := u.run(ctx)
	if u.observer != nil {
		u.observer.ObserveAutoReject(res, err, time.Since(start))
	}
	return res, err
}

func (u *Usecase) run(ctx context.Context) (*RunResult, error) {
	if u.uow == nil {
		return nil, fmt.Errorf("auto-reject: no unit of work configured")
	}

	if u.lock != nil {
		unlock, ok, err := u.lock.TryLock(ctx, lockKey, u.lockTTL)
		if err != nil {
			return nil, fmt.Errorf("auto-reject lock: %w", err)
		}
		if !ok {
			return nil, wfh.ErrRunInProgress
		}
		defer func() {
			// release even if ctx was cancelled mid-run
			if err := unlock(context.WithoutCancel(ctx)); err != nil {
				slog.Warn("auto-reject: release lock", "error", err)
			}
		}()
	}

	today := u.Today()
	res := &RunResult{RanOn: wfh.FormatDate(today), CancelledIDs: []string{}}

	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		pending, err := r.Requests.ListByStatus(ctx, wfh.StatusPending)
		if err != nil {
			return err
		}
		res.Scanned = len(pending)

		for _, t := range wfh.PlanAutoReject(today, pending) {
			changed, err := r.Requests.TransitionStatus(ctx, t.RequestID, t.From, t.To, t.Reason)
			if err != nil {
				return err
			}
			// a concurrent writer moved it out of Pending first
			if !changed {
				continue
			}
			res.CancelledIDs = append(res.CancelledIDs, t.RequestID)
		}
		return nil
	})
	if err != nil {
		slog.Error("auto-reject: rolled back", "today", res.RanOn, "error", err)
		return nil, err
	}

	res.Cancelled = len(res.CancelledIDs)
	res.FinishedAt = u.now().UTC()
	slog.Info("auto-reject: committed", "today", res.RanOn, "scanned", res.Scanned, "cancelled", res.Cancelled)
	return res, nil
}
