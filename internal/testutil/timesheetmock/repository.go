package timesheetmock

import (
	"context"
	"time"

	domain "github.com/asifshaikgit/workforce-sub002/internal/domain/timesheet"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn           func(ctx context.Context, e *domain.HourEntry) error
	GetByIDsFn         func(ctx context.Context, ids []uint64) ([]domain.HourEntry, error)
	ListUnbilledFn     func(ctx context.Context, placementNumericID uint64, from, to time.Time) ([]domain.HourEntry, error)
	SetInvoiceRaisedFn func(ctx context.Context, ids []uint64, raised bool) error
	CountRaisedFn      func(ctx context.Context, ids []uint64) (int64, error)
}

func (m *Repo) Create(ctx context.Context, e *domain.HourEntry) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, e)
	}
	return nil
}
func (m *Repo) GetByIDs(ctx context.Context, ids []uint64) ([]domain.HourEntry, error) {
	if m.GetByIDsFn != nil {
		return m.GetByIDsFn(ctx, ids)
	}
	return nil, context.Canceled
}
func (m *Repo) ListUnbilled(ctx context.Context, placementNumericID uint64, from, to time.Time) ([]domain.HourEntry, error) {
	if m.ListUnbilledFn != nil {
		return m.ListUnbilledFn(ctx, placementNumericID, from, to)
	}
	return nil, context.Canceled
}
func (m *Repo) SetInvoiceRaised(ctx context.Context, ids []uint64, raised bool) error {
	if m.SetInvoiceRaisedFn != nil {
		return m.SetInvoiceRaisedFn(ctx, ids, raised)
	}
	return nil
}
func (m *Repo) CountRaised(ctx context.Context, ids []uint64) (int64, error) {
	if m.CountRaisedFn != nil {
		return m.CountRaisedFn(ctx, ids)
	}
	return 0, nil
}
