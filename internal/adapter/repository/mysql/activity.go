package mysql

import (
	"context"

	"gorm.io/gorm"

	activityDomain "github.com/asifshaikgit/workforce-sub002/internal/domain/activity"
)

type ActivityRepository struct{ db *gorm.DB }

func NewActivityRepository(db *gorm.DB) *ActivityRepository { return &ActivityRepository{db: db} }

func (r *ActivityRepository) Append(ctx context.Context, l *activityDomain.Log) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *ActivityRepository) ListByEntity(ctx context.Context, entityType, entityID string) ([]activityDomain.Log, error) {
	var out []activityDomain.Log
	res := r.db.WithContext(ctx).
		Where("entity_type = ? AND entity_id = ?", entityType, entityID).
		Order("id ASC").
		Find(&out)
	return out, res.Error
}
