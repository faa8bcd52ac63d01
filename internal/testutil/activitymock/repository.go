package activitymock

import (
	"context"

	domain "github.com/asifshaikgit/workforce-sub002/internal/domain/activity"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	AppendFn       func(ctx context.Context, l *domain.Log) error
	ListByEntityFn func(ctx context.Context, entityType, entityID string) ([]domain.Log, error)
}

func (m *Repo) Append(ctx context.Context, l *domain.Log) error {
	if m.AppendFn != nil {
		return m.AppendFn(ctx, l)
	}
	return nil
}
func (m *Repo) ListByEntity(ctx context.Context, entityType, entityID string) ([]domain.Log, error) {
	if m.ListByEntityFn != nil {
		return m.ListByEntityFn(ctx, entityType, entityID)
	}
	return nil, nil
}
