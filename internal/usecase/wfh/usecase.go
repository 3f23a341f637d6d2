package wfh

import (
	"context"
	"errors"
	"fmt"
	"time"

	"wfh-leave-backend/internal/domain/employee"
	"wfh-leave-backend/internal/domain/uow"
	domain "wfh-leave-backend/internal/domain/wfh"
	"wfh-leave-backend/pkg/id"
)

type Usecase struct {
	uow       uow.UnitOfWork
	requests  domain.Repository
	employees employee.Repository
	now       func() time.Time
	loc       *time.Location
	newID     func() string
}

type Option func(*Usecase)

func WithClock(now func() time.Time) Option { return func(u *Usecase) { u.now = now } }

func WithLocation(loc *time.Location) Option { return func(u *Usecase) { u.loc = loc } }

func WithIDGenerator(gen func() string) Option { return func(u *Usecase) { u.newID = gen } }

func NewUsecase(tx uow.UnitOfWork, requests domain.Repository, employees employee.Repository, opts ...Option) *Usecase {
	u := &Usecase{
		uow:       tx,
		requests:  requests,
		employees: employees,
		now:       time.Now,
		loc:       time.UTC,
		newID:     id.NewRequestID,
	}
	for _, o := range opts {
		o(u)
	}
	return u
}

// Submit files a new Pending request dated today.
func (u *Usecase) Submit(ctx context.Context, in SubmitInput) (*WFHRequestDTO, error) {
	if in.StaffID <= 0 {
		return nil, fmt.Errorf("%w: staff_id is required", domain.ErrInvalidInput)
	}
	if !in.IsAM && !in.IsPM {
		return nil, fmt.Errorf("%w: at least one of is_am or is_pm must be set", domain.ErrInvalidInput)
	}
	specific, err := domain.ParseDate(in.SpecificDate)
	if err != nil {
		return nil, fmt.Errorf("%w: specific_date must be YYYY-MM-DD", domain.ErrInvalidInput)
	}

	var created *domain.WFHRequest
	err = u.uow.WithinTx(ctx, func(r uow.Repos) error {
		staff, err := r.Employees.GetByStaffID(ctx, in.StaffID)
		if err != nil {
			return err
		}

		managerID := in.ManagerID
		if managerID == nil {
			managerID = staff.ReportingManager
		}
		if managerID == nil {
			return fmt.Errorf("%w: staff %d has no reporting manager", domain.ErrInvalidInput, in.StaffID)
		}
		if *managerID != staff.StaffID {
			if _, err := r.Employees.GetByStaffID(ctx, *managerID); err != nil {
				if errors.Is(err, employee.ErrNotFound) {
					return fmt.Errorf("%w: manager %d does not exist", domain.ErrInvalidInput, *managerID)
				}
				return err
			}
		}

		req := &domain.WFHRequest{
			RequestID:     u.newID(),
			StaffID:       staff.StaffID,
			ManagerID:     *managerID,
			SpecificDate:  specific,
			IsAM:          in.IsAM,
			IsPM:          in.IsPM,
			RequestStatus: domain.StatusPending,
			ApplyDate:     domain.DateOf(u.now().In(u.loc)),
			RequestReason: in.RequestReason,
		}
		if err := r.Requests.Create(ctx, req); err != nil {
			return err
		}
		created = req
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ToDTO(created), nil
}

func (u *Usecase) Get(ctx context.Context, requestID string) (*WFHRequestDTO, error) {
	r, err := u.requests.GetByRequestID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	return ToDTO(r), nil
}

// List returns every request when status is empty.
func (u *Usecase) List(ctx context.Context, status string) ([]WFHRequestDTO, error) {
	s := domain.Status(status)
	if s != "" && !s.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrInvalidInput, status)
	}
	rows, err := u.requests.ListByStatus(ctx, s)
	if err != nil {
		return nil, err
	}
	return toDTOs(rows), nil
}

// StaffSchedule lists the staff's requests whose specific_date lies in [start, end].
func (u *Usecase) StaffSchedule(ctx context.Context, staffID int64, start, end string) ([]WFHRequestDTO, error) {
	from, err := domain.ParseDate(start)
	if err != nil {
		return nil, fmt.Errorf("%w: start_date must be YYYY-MM-DD", domain.ErrInvalidInput)
	}
	to, err := domain.ParseDate(end)
	if err != nil {
		return nil, fmt.Errorf("%w: end_date must be YYYY-MM-DD", domain.ErrInvalidInput)
	}
	if to.Before(from) {
		return nil, fmt.Errorf("%w: end_date is before start_date", domain.ErrInvalidInput)
	}
	if _, err := u.employees.GetByStaffID(ctx, staffID); err != nil {
		return nil, err
	}

	rows, err := u.requests.ListByStaffBetween(ctx, staffID, from, to)
	if err != nil {
		return nil, err
	}
	return toDTOs(rows), nil
}
