package wfhmock

import (
	"context"
	"time"

	domain "wfh-leave-backend/internal/domain/wfh"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
// Unset reads return context.Canceled; unset writes succeed.
type Repo struct {
	CreateFn             func(ctx context.Context, r *domain.WFHRequest) error
	GetByRequestIDFn     func(ctx context.Context, requestID string) (*domain.WFHRequest, error)
	ListByStatusFn       func(ctx context.Context, status domain.Status) ([]domain.WFHRequest, error)
	ListByStaffBetweenFn func(ctx context.Context, staffID int64, from, to time.Time) ([]domain.WFHRequest, error)
	TransitionStatusFn   func(ctx context.Context, requestID string, from, to domain.Status, reason string) (bool, error)
}

func (m *Repo) Create(ctx context.Context, r *domain.WFHRequest) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, r)
	}
	return nil
}

func (m *Repo) GetByRequestID(ctx context.Context, requestID string) (*domain.WFHRequest, error) {
	if m.GetByRequestIDFn != nil {
		return m.GetByRequestIDFn(ctx, requestID)
	}
	return nil, context.Canceled
}

func (m *Repo) ListByStatus(ctx context.Context, status domain.Status) ([]domain.WFHRequest, error) {
	if m.ListByStatusFn != nil {
		return m.ListByStatusFn(ctx, status)
	}
	return nil, context.Canceled
}

func (m *Repo) ListByStaffBetween(ctx context.Context, staffID int64, from, to time.Time) ([]domain.WFHRequest, error) {
	if m.ListByStaffBetweenFn != nil {
		return m.ListByStaffBetweenFn(ctx, staffID, from, to)
	}
	return nil, context.Canceled
}

func (m *Repo) TransitionStatus(ctx context.Context, requestID string, from, to domain.Status, reason string) (bool, error) {
	if m.TransitionStatusFn != nil {
		return m.TransitionStatusFn(ctx, requestID, from, to, reason)
	}
	return true, nil
}
