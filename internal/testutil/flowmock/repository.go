package flowmock

import (
	"context"

	domain "github.com/asifshaikgit/workforce-sub002/internal/domain/approvalflow"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	ListLevelsFn  func(ctx context.Context, ownerType domain.OwnerType, ownerID string) ([]domain.Level, error)
	CreateLevelFn func(ctx context.Context, l *domain.Level) error
	AppendTrackFn func(ctx context.Context, t *domain.Track) error
	ListTracksFn  func(ctx context.Context, ledgerNumericID uint64) ([]domain.Track, error)
}

func (m *Repo) ListLevels(ctx context.Context, ownerType domain.OwnerType, ownerID string) ([]domain.Level, error) {
	if m.ListLevelsFn != nil {
		return m.ListLevelsFn(ctx, ownerType, ownerID)
	}
	return nil, nil
}
func (m *Repo) CreateLevel(ctx context.Context, l *domain.Level) error {
	if m.CreateLevelFn != nil {
		return m.CreateLevelFn(ctx, l)
	}
	return nil
}
func (m *Repo) AppendTrack(ctx context.Context, t *domain.Track) error {
	if m.AppendTrackFn != nil {
		return m.AppendTrackFn(ctx, t)
	}
	return nil
}
func (m *Repo) ListTracks(ctx context.Context, ledgerNumericID uint64) ([]domain.Track, error) {
	if m.ListTracksFn != nil {
		return m.ListTracksFn(ctx, ledgerNumericID)
	}
	return nil, nil
}
