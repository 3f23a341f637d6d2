package uow

import (
	"context"

	"wfh-leave-backend/internal/domain/employee"
	"wfh-leave-backend/internal/domain/wfh"
)

// Repos are bound to the running transaction; do not keep them past fn.
type Repos struct {
	Employees employee.Repository
	Requests  wfh.Repository
}

type UnitOfWork interface {
	// WithinTx commits when fn returns nil and rolls back on error or panic.
	WithinTx(ctx context.Context, fn func(r Repos) error) error
}
