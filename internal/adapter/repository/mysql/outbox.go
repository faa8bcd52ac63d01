package mysql

import (
	"context"
	"time"

	"gorm.io/gorm"

	outboxDomain "github.com/asifshaikgit/workforce-sub002/internal/domain/outbox"
)

type OutboxRepository struct{ db *gorm.DB }

func NewOutboxRepository(db *gorm.DB) *OutboxRepository { return &OutboxRepository{db: db} }

func (r *OutboxRepository) Insert(ctx context.Context, e *outboxDomain.Event) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *OutboxRepository) ListPending(ctx context.Context, limit int) ([]outboxDomain.Event, error) {
	var out []outboxDomain.Event
	res := r.db.WithContext(ctx).
		Where("status = ?", outboxDomain.StatusPending).
		Order("id ASC").
		Limit(limit).
		Find(&out)
	return out, res.Error
}

func (r *OutboxRepository) MarkSent(ctx context.Context, eventID string) error {
	now := time.Now().UTC()
	return r.db.WithContext(ctx).
		Model(&outboxDomain.Event{}).
		Where("event_id = ?", eventID).
		Updates(map[string]any{
			"status":   outboxDomain.StatusSent,
			"sent_at":  &now,
			"attempts": gorm.Expr("attempts + 1"),
		}).Error
}

func (r *OutboxRepository) MarkFailed(ctx context.Context, eventID string, cause string) error {
	return r.db.WithContext(ctx).
		Model(&outboxDomain.Event{}).
		Where("event_id = ?", eventID).
		Updates(map[string]any{
			"status":     outboxDomain.StatusFailed,
			"last_error": cause,
			"attempts":   gorm.Expr("attempts + 1"),
		}).Error
}
