package mysql

import (
	"context"

	"gorm.io/gorm"

	placementDomain "github.com/asifshaikgit/workforce-sub002/internal/domain/placement"
)

type PlacementRepository struct{ db *gorm.DB }

func NewPlacementRepository(db *gorm.DB) *PlacementRepository { return &PlacementRepository{db: db} }

func (r *PlacementRepository) Create(ctx context.Context, p *placementDomain.Placement) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PlacementRepository) GetByPlacementID(ctx context.Context, placementID string) (*placementDomain.Placement, error) {
	var out placementDomain.Placement
	res := r.db.WithContext(ctx).Where("placement_id = ?", placementID).First(&out)
	return &out, res.Error
}

func (r *PlacementRepository) GetByID(ctx context.Context, id uint64) (*placementDomain.Placement, error) {
	var out placementDomain.Placement
	res := r.db.WithContext(ctx).Where("id = ?", id).First(&out)
	return &out, res.Error
}

func (r *PlacementRepository) ListRatePeriods(ctx context.Context, placementNumericID uint64) ([]placementDomain.BillingRatePeriod, error) {
	var out []placementDomain.BillingRatePeriod
	res := r.db.WithContext(ctx).
		Where("placement_id = ?", placementNumericID).
		Order("effective_from ASC, id ASC").
		Find(&out)
	return out, res.Error
}

func (r *PlacementRepository) CreateRatePeriod(ctx context.Context, p *placementDomain.BillingRatePeriod) error {
	return r.db.WithContext(ctx).Create(p).Error
}
