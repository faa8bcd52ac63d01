package placementmock

import (
	"context"

	domain "github.com/asifshaikgit/workforce-sub002/internal/domain/placement"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
// Only methods you need are included; add more as tests require.
type Repo struct {
	GetByPlacementIDFn func(ctx context.Context, placementID string) (*domain.Placement, error)
	GetByIDFn          func(ctx context.Context, id uint64) (*domain.Placement, error)
	ListRatePeriodsFn  func(ctx context.Context, placementNumericID uint64) ([]domain.BillingRatePeriod, error)
	CreateRatePeriodFn func(ctx context.Context, p *domain.BillingRatePeriod) error
	CreateFn           func(ctx context.Context, p *domain.Placement) error
}

func (m *Repo) GetByPlacementID(ctx context.Context, placementID string) (*domain.Placement, error) {
	if m.GetByPlacementIDFn != nil {
		return m.GetByPlacementIDFn(ctx, placementID)
	}
	return nil, context.Canceled
}
func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.Placement, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, context.Canceled
}
func (m *Repo) ListRatePeriods(ctx context.Context, placementNumericID uint64) ([]domain.BillingRatePeriod, error) {
	if m.ListRatePeriodsFn != nil {
		return m.ListRatePeriodsFn(ctx, placementNumericID)
	}
	return nil, context.Canceled
}
func (m *Repo) CreateRatePeriod(ctx context.Context, p *domain.BillingRatePeriod) error {
	if m.CreateRatePeriodFn != nil {
		return m.CreateRatePeriodFn(ctx, p)
	}
	return nil
}
func (m *Repo) Create(ctx context.Context, p *domain.Placement) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, p)
	}
	return nil
}
