package gormrepo

import (
	"context"
	"errors"
	"time"

	wfhDomain "wfh-leave-backend/internal/domain/wfh"

	"gorm.io/gorm"
)

type WFHRequestRepository struct{ db *gorm.DB }

func NewWFHRequestRepository(db *gorm.DB) *WFHRequestRepository {
	return &WFHRequestRepository{db: db}
}

func (r *WFHRequestRepository) Create(ctx context.Context, req *wfhDomain.WFHRequest) error {
	return r.db.WithContext(ctx).Create(req).Error
}

func (r *WFHRequestRepository) GetByRequestID(ctx context.Context, requestID string) (*wfhDomain.WFHRequest, error) {
	var out wfhDomain.WFHRequest
	res := r.db.WithContext(ctx).Where("request_id = ?", requestID).First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, wfhDomain.ErrNotFound
	}
	if res.Error != nil {
		return nil, res.Error
	}
	return &out, nil
}

func (r *WFHRequestRepository) ListByStatus(ctx context.Context, status wfhDomain.Status) ([]wfhDomain.WFHRequest, error) {
	q := r.db.WithContext(ctx).Model(&wfhDomain.WFHRequest{})
	if status != "" {
		q = q.Where("request_status = ?", status)
	}
	var out []wfhDomain.WFHRequest
	if err := q.Order("apply_date ASC, request_id ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *WFHRequestRepository) ListByStaffBetween(ctx context.Context, staffID int64, from, to time.Time) ([]wfhDomain.WFHRequest, error) {
	var out []wfhDomain.WFHRequest
	err := r.db.WithContext(ctx).
		Where("staff_id = ? AND specific_date >= ? AND specific_date <= ?",
			staffID, wfhDomain.DateOf(from), wfhDomain.DateOf(to)).
		Order("specific_date ASC, request_id ASC").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

// TransitionStatus is a conditional UPDATE so overlapping runs cannot both act on one row.
func (r *WFHRequestRepository) TransitionStatus(ctx context.Context, requestID string, from, to wfhDomain.Status, reason string) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&wfhDomain.WFHRequest{}).
		Where("request_id = ? AND request_status = ?", requestID, from).
		Updates(map[string]any{
			"request_status": to,
			"request_reason": reason,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
