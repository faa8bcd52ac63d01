package mysql

import (
	"context"
	"time"

	"gorm.io/gorm"

	timesheetDomain "github.com/asifshaikgit/workforce-sub002/internal/domain/timesheet"
)

type HourEntryRepository struct{ db *gorm.DB }

func NewHourEntryRepository(db *gorm.DB) *HourEntryRepository { return &HourEntryRepository{db: db} }

func (r *HourEntryRepository) Create(ctx context.Context, e *timesheetDomain.HourEntry) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *HourEntryRepository) GetByIDs(ctx context.Context, ids []uint64) ([]timesheetDomain.HourEntry, error) {
	var out []timesheetDomain.HourEntry
	if len(ids) == 0 {
		return out, nil
	}
	res := r.db.WithContext(ctx).Where("id IN ?", ids).Order("date ASC, id ASC").Find(&out)
	return out, res.Error
}

func (r *HourEntryRepository) ListUnbilled(ctx context.Context, placementNumericID uint64, from, to time.Time) ([]timesheetDomain.HourEntry, error) {
	var out []timesheetDomain.HourEntry
	res := r.db.WithContext(ctx).
		Where("placement_id = ? AND invoice_raised = ? AND date >= ? AND date <= ?",
			placementNumericID, false, from, to).
		Order("date ASC, id ASC").
		Find(&out)
	return out, res.Error
}

func (r *HourEntryRepository) SetInvoiceRaised(ctx context.Context, ids []uint64, raised bool) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Model(&timesheetDomain.HourEntry{}).
		Where("id IN ?", ids).
		Update("invoice_raised", raised).Error
}

func (r *HourEntryRepository) CountRaised(ctx context.Context, ids []uint64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	var n int64
	res := r.db.WithContext(ctx).
		Model(&timesheetDomain.HourEntry{}).
		Where("id IN ? AND invoice_raised = ?", ids, true).
		Count(&n)
	return n, res.Error
}
