package activitylog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asifshaikgit/workforce-sub002/internal/domain/activity"
	"github.com/asifshaikgit/workforce-sub002/internal/testutil/activitymock"
)

func TestRecord_SkipsEmptyUpdate(t *testing.T) {
	appended := 0
	repo := &activitymock.Repo{
		AppendFn: func(ctx context.Context, l *activity.Log) error { appended++; return nil },
	}
	r := NewRecorder()

	require.NoError(t, r.Record(context.Background(), repo, "ledger", "abc", "updated", "actor", nil))
	assert.Zero(t, appended, "no-op update must not write a row")
}

func TestRecord_WritesRowWithSchemaVersion(t *testing.T) {
	var got *activity.Log
	repo := &activitymock.Repo{
		AppendFn: func(ctx context.Context, l *activity.Log) error { got = l; return nil },
	}
	r := NewRecorder()

	changes := []activity.FieldChange{{FieldName: "notes", OldValue: "a", NewValue: "b"}}
	require.NoError(t, r.Record(context.Background(), repo, "ledger", "abc", "updated", "actor", changes))

	require.NotNil(t, got)
	assert.Equal(t, "ledger", got.EntityType)
	assert.Equal(t, "abc", got.EntityID)
	assert.Equal(t, "updated", got.Action)
	assert.Equal(t, "actor", got.PerformedBy)
	assert.Equal(t, activity.ChangeSetSchemaVersion, got.ChangeSet.SchemaVersion)
	assert.Equal(t, changes, got.ChangeSet.Changes)
}

func TestRecord_CreatedWithNoChangesStillWrites(t *testing.T) {
	appended := 0
	repo := &activitymock.Repo{
		AppendFn: func(ctx context.Context, l *activity.Log) error { appended++; return nil },
	}
	require.NoError(t, NewRecorder().Record(context.Background(), repo, "ledger", "abc", "created", "actor", nil))
	assert.Equal(t, 1, appended)
}
