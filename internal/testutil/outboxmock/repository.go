package outboxmock

import (
	"context"

	domain "github.com/asifshaikgit/workforce-sub002/internal/domain/outbox"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	InsertFn      func(ctx context.Context, e *domain.Event) error
	ListPendingFn func(ctx context.Context, limit int) ([]domain.Event, error)
	MarkSentFn    func(ctx context.Context, eventID string) error
	MarkFailedFn  func(ctx context.Context, eventID string, cause string) error
}

func (m *Repo) Insert(ctx context.Context, e *domain.Event) error {
	if m.InsertFn != nil {
		return m.InsertFn(ctx, e)
	}
	return nil
}
func (m *Repo) ListPending(ctx context.Context, limit int) ([]domain.Event, error) {
	if m.ListPendingFn != nil {
		return m.ListPendingFn(ctx, limit)
	}
	return nil, nil
}
func (m *Repo) MarkSent(ctx context.Context, eventID string) error {
	if m.MarkSentFn != nil {
		return m.MarkSentFn(ctx, eventID)
	}
	return nil
}
func (m *Repo) MarkFailed(ctx context.Context, eventID string, cause string) error {
	if m.MarkFailedFn != nil {
		return m.MarkFailedFn(ctx, eventID, cause)
	}
	return nil
}
