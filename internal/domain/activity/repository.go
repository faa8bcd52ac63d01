package activity

import "context"

type Repository interface {
	Append(ctx context.Context, l *Log) error
	ListByEntity(ctx context.Context, entityType, entityID string) ([]Log, error)
}
