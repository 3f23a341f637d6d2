package wfh

import (
	domain "wfh-leave-backend/internal/domain/wfh"
)

type SubmitInput struct {
	StaffID int64 `json:"staff_id" validate:"required,gt=0"`
	// ManagerID defaults to the staff's reporting manager.
	ManagerID     *int64 `json:"manager_id,omitempty" validate:"omitempty,gt=0"`
	SpecificDate  string `json:"specific_date" validate:"required,isodate"`
	IsAM          bool   `json:"is_am"`
	IsPM          bool   `json:"is_pm" validate:"halfday"`
	RequestReason string `json:"request_reason" validate:"max=500"`
}

type WFHRequestDTO struct {
	RequestID     string `json:"request_id"`
	StaffID       int64  `json:"staff_id"`
	ManagerID     int64  `json:"manager_id"`
	SpecificDate  string `json:"specific_date"`
	IsAM          bool   `json:"is_am"`
	IsPM          bool   `json:"is_pm"`
	RequestStatus string `json:"request_status"`
	ApplyDate     string `json:"apply_date"`
	RequestReason string `json:"request_reason"`
}

func ToDTO(r *domain.WFHRequest) *WFHRequestDTO {
	return &WFHRequestDTO{
		RequestID:     r.RequestID,
		StaffID:       r.StaffID,
		ManagerID:     r.ManagerID,
		SpecificDate:  domain.FormatDate(r.SpecificDate),
		IsAM:          r.IsAM,
		IsPM:          r.IsPM,
		RequestStatus: string(r.RequestStatus),
		ApplyDate:     domain.FormatDate(r.ApplyDate),
		RequestReason: r.RequestReason,
	}
}

func toDTOs(rows []domain.WFHRequest) []WFHRequestDTO {
	out := make([]WFHRequestDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *ToDTO(&rows[i]))
	}
	return out
}
