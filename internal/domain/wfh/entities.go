package wfh

import (
	"errors"
	"time"

	"wfh-leave-backend/internal/domain/employee"
)

var (
	ErrNotFound      = errors.New("wfh request not found")
	ErrInvalidInput  = errors.New("invalid wfh request")
	ErrRunInProgress = errors.New("auto-reject run already in progress")
)

type Status string

const (
	StatusPending   Status = "Pending"
	StatusApproved  Status = "Approved"
	StatusRejected  Status = "Rejected"
	StatusCancelled Status = "Cancelled"
	StatusWithdrawn Status = "Withdrawn"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusCancelled, StatusWithdrawn:
		return true
	}
	return false
}

// Table: wfh_requests. SpecificDate and ApplyDate are calendar days (time part is zero, UTC).
type WFHRequest struct {
	RequestID     string    `gorm:"column:request_id;primaryKey;size:64"`
	StaffID       int64     `gorm:"column:staff_id;not null;index:idx_wfh_staff_date"`
	ManagerID     int64     `gorm:"column:manager_id;not null;index"`
	SpecificDate  time.Time `gorm:"column:specific_date;type:date;not null;index:idx_wfh_staff_date"`
	IsAM          bool      `gorm:"column:is_am;not null;default:false"`
	IsPM          bool      `gorm:"column:is_pm;not null;default:false"`
	RequestStatus Status    `gorm:"column:request_status;size:20;not null;default:'Pending';index"`
	ApplyDate     time.Time `gorm:"column:apply_date;type:date;not null"`
	RequestReason string    `gorm:"column:request_reason;type:text"`

	Staff   *employee.Employee `gorm:"foreignKey:StaffID;references:StaffID"`
	Manager *employee.Employee `gorm:"foreignKey:ManagerID;references:StaffID"`
}

func (WFHRequest) TableName() string { return "wfh_requests" }
