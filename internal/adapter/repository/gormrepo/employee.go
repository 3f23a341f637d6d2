package gormrepo

import (
	"context"
	"errors"

	employeeDomain "wfh-leave-backend/internal/domain/employee"

	"gorm.io/gorm"
)

// importBatchSize keeps a single INSERT well under driver placeholder limits.
const importBatchSize = 500

type EmployeeRepository struct{ db *gorm.DB }

func NewEmployeeRepository(db *gorm.DB) *EmployeeRepository { return &EmployeeRepository{db: db} }

func (r *EmployeeRepository) CreateBatch(ctx context.Context, rows []employeeDomain.Employee) error {
	if len(rows) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Omit("Manager").
		CreateInBatches(rows, importBatchSize).Error
}

func (r *EmployeeRepository) GetByStaffID(ctx context.Context, staffID int64) (*employeeDomain.Employee, error) {
	var out employeeDomain.Employee
	res := r.db.WithContext(ctx).Where("staff_id = ?", staffID).First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, employeeDomain.ErrNotFound
	}
	if res.Error != nil {
		return nil, res.Error
	}
	return &out, nil
}
