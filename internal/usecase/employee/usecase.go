package employee

import (
	"context"
	"fmt"
	"log/slog"

	"wfh-leave-backend/internal/domain/employee"
	"wfh-leave-backend/internal/domain/uow"
)

type Usecase struct {
	uow  uow.UnitOfWork
	repo employee.Repository
}

func NewUsecase(tx uow.UnitOfWork, r employee.Repository) *Usecase {
	return &Usecase{uow: tx, repo: r}
}

// Import stores all rows in one transaction. Either every employee is written or none is;
// a dangling reporting_manager fails the whole batch through the foreign key.
func (u *Usecase) Import(ctx context.Context, rows []employee.Employee) (*ImportResult, error) {
	if len(rows) == 0 {
		return &ImportResult{}, nil
	}
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		return r.Employees.CreateBatch(ctx, rows)
	})
	if err != nil {
		return nil, fmt.Errorf("import %d employees: %w", len(rows), err)
	}
	slog.Info("employees imported", "count", len(rows))
	return &ImportResult{Imported: len(rows)}, nil
}

func (u *Usecase) Get(ctx context.Context, staffID int64) (*EmployeeDTO, error) {
	e, err := u.repo.GetByStaffID(ctx, staffID)
	if err != nil {
		return nil, err
	}
	return toDTO(e), nil
}

func toDTO(e *employee.Employee) *EmployeeDTO {
	return &EmployeeDTO{
		StaffID:          e.StaffID,
		StaffFName:       e.StaffFName,
		StaffLName:       e.StaffLName,
		Dept:             e.Dept,
		Position:         e.Position,
		Country:          e.Country,
		Email:            e.Email,
		ReportingManager: e.ReportingManager,
		Role:             e.Role,
	}
}
