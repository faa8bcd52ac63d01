package approvalflow

import "context"

type Repository interface {
	// ListLevels returns the owner's configured levels ordered by level asc.
	ListLevels(ctx context.Context, ownerType OwnerType, ownerID string) ([]Level, error)
	CreateLevel(ctx context.Context, l *Level) error

	AppendTrack(ctx context.Context, t *Track) error
	ListTracks(ctx context.Context, ledgerNumericID uint64) ([]Track, error)
}
