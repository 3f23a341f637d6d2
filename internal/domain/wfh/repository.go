package wfh

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, r *WFHRequest) error
	GetByRequestID(ctx context.Context, requestID string) (*WFHRequest, error)

	// ListByStatus returns every request when status is empty.
	ListByStatus(ctx context.Context, status Status) ([]WFHRequest, error)

	// ListByStaffBetween returns the staff's requests with from <= specific_date <= to.
	ListByStaffBetween(ctx context.Context, staffID int64, from, to time.Time) ([]WFHRequest, error)

	// TransitionStatus moves a request from -> to and overwrites its reason, only while it
	// is still in `from`. Reports whether a row changed.
	TransitionStatus(ctx context.Context, requestID string, from, to Status, reason string) (bool, error)
}
