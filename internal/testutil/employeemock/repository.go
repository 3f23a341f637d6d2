package employeemock

import (
	"context"

	domain "wfh-leave-backend/internal/domain/employee"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateBatchFn  func(ctx context.Context, rows []domain.Employee) error
	GetByStaffIDFn func(ctx context.Context, staffID int64) (*domain.Employee, error)
}

func (m *Repo) CreateBatch(ctx context.Context, rows []domain.Employee) error {
	if m.CreateBatchFn != nil {
		return m.CreateBatchFn(ctx, rows)
	}
	return nil
}

func (m *Repo) GetByStaffID(ctx context.Context, staffID int64) (*domain.Employee, error) {
	if m.GetByStaffIDFn != nil {
		return m.GetByStaffIDFn(ctx, staffID)
	}
	return nil, domain.ErrNotFound
}
