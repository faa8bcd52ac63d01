package eventing

import (
	"context"
	"encoding/json"
	"reflect"

	"github.com/asifshaikgit/workforce-sub002/internal/domain/outbox"
	"github.com/asifshaikgit/workforce-sub002/pkg/id"
)

const schemaVersion = 1

// TypeName derives the outbox event_type from the event's Go type.
func TypeName(event any) string {
	t := reflect.TypeOf(event)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// Publish serializes the event and inserts it into the outbox through repo,
// which the caller binds to the surrounding transaction. The insert commits or
// rolls back together with the financial mutation.
func Publish(ctx context.Context, repo outbox.Repository, event any) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return repo.Insert(ctx, &outbox.Event{
		EventID:       id.NewID32(),
		EventType:     TypeName(event),
		SchemaVersion: schemaVersion,
		Payload:       payload,
		Status:        outbox.StatusPending,
	})
}
