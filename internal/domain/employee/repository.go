package employee

import "context"

type Repository interface {
	// CreateBatch inserts all rows in one go; constraint violations surface from the store.
	CreateBatch(ctx context.Context, rows []Employee) error
	GetByStaffID(ctx context.Context, staffID int64) (*Employee, error)
}
