package outbox

import "context"

type Repository interface {
	Insert(ctx context.Context, e *Event) error
	// ListPending returns pending events ordered by id asc, at most limit rows.
	ListPending(ctx context.Context, limit int) ([]Event, error)
	MarkSent(ctx context.Context, eventID string) error
	MarkFailed(ctx context.Context, eventID string, cause string) error
}
