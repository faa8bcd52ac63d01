package mysql

import (
	"context"

	"gorm.io/gorm"

	flowDomain "github.com/asifshaikgit/workforce-sub002/internal/domain/approvalflow"
)

type ApprovalFlowRepository struct{ db *gorm.DB }

func NewApprovalFlowRepository(db *gorm.DB) *ApprovalFlowRepository {
	return &ApprovalFlowRepository{db: db}
}

func (r *ApprovalFlowRepository) ListLevels(ctx context.Context, ownerType flowDomain.OwnerType, ownerID string) ([]flowDomain.Level, error) {
	var out []flowDomain.Level
	res := r.db.WithContext(ctx).
		Where("owner_type = ? AND owner_id = ?", ownerType, ownerID).
		Order("level ASC").
		Find(&out)
	return out, res.Error
}

func (r *ApprovalFlowRepository) CreateLevel(ctx context.Context, l *flowDomain.Level) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *ApprovalFlowRepository) AppendTrack(ctx context.Context, t *flowDomain.Track) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *ApprovalFlowRepository) ListTracks(ctx context.Context, ledgerNumericID uint64) ([]flowDomain.Track, error) {
	var out []flowDomain.Track
	res := r.db.WithContext(ctx).
		Where("ledger_id = ?", ledgerNumericID).
		Order("id ASC").
		Find(&out)
	return out, res.Error
}
