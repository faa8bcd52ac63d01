package placement

import "context"

type Repository interface {
	GetByPlacementID(ctx context.Context, placementID string) (*Placement, error)
	GetByID(ctx context.Context, id uint64) (*Placement, error)
	// ListRatePeriods returns the placement's rate periods ordered by effective_from asc.
	ListRatePeriods(ctx context.Context, placementNumericID uint64) ([]BillingRatePeriod, error)
	CreateRatePeriod(ctx context.Context, p *BillingRatePeriod) error
	Create(ctx context.Context, p *Placement) error
}
