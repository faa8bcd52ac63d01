package activitylog

import (
	"context"

	"github.com/asifshaikgit/workforce-sub002/internal/domain/activity"
)

// Recorder persists computed diffs as append-only activity rows. It is handed
// a transaction-bound repository by the calling usecase so the audit row
// commits with the mutation it describes.
type Recorder struct{}

func NewRecorder() *Recorder { return &Recorder{} }

// Record writes one log row. Empty change sets on actions other than
// "created"/"deleted" are skipped, an edit that changed nothing leaves no row.
func (r *Recorder) Record(ctx context.Context, repo activity.Repository, entityType, entityID, action, actorID string, changes []activity.FieldChange) error {
	if len(changes) == 0 && action == "updated" {
		return nil
	}
	return repo.Append(ctx, &activity.Log{
		EntityType:  entityType,
		EntityID:    entityID,
		Action:      action,
		PerformedBy: actorID,
		ChangeSet: activity.ChangeSet{
			SchemaVersion: activity.ChangeSetSchemaVersion,
			Changes:       changes,
		},
	})
}
