package eventing

import (
	"encoding/json"
	"errors"
	"reflect"
	"sync"

	"github.com/asifshaikgit/workforce-sub002/internal/domain/outbox"
)

// Registry maps event type names to constructors for decoding outbox payloads.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]func() any
}

func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]func() any)}
}

// Register registers an event type by sample value (value or pointer).
func (r *Registry) Register(sample any) {
	t := reflect.TypeOf(sample)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	r.mu.Lock()
	r.factories[t.Name()] = func() any { return reflect.New(t).Interface() }
	r.mu.Unlock()
}

// Decode decodes the record's payload into its concrete event value.
func (r *Registry) Decode(e outbox.Event) (any, error) {
	r.mu.RLock()
	factory := r.factories[e.EventType]
	r.mu.RUnlock()
	if factory == nil {
		return nil, errors.New("eventing: unknown event type " + e.EventType)
	}
	target := factory()
	if err := json.Unmarshal(e.Payload, target); err != nil {
		return nil, err
	}
	return reflect.ValueOf(target).Elem().Interface(), nil
}

// DefaultRegistry returns a registry preloaded with every core event type.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(LedgerCreated{})
	r.Register(LedgerStatusChanged{})
	r.Register(ApprovalRequested{})
	r.Register(LedgerApproved{})
	return r
}
