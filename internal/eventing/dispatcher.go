package eventing

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/asifshaikgit/workforce-sub002/internal/domain/outbox"
)

// Handler consumes one decoded event. Handlers are best-effort: a failure
// marks the outbox row failed and is logged, never propagated to the
// committed financial transaction.
type Handler func(ctx context.Context, event any) error

// Dispatcher drains pending outbox rows and fans them out to the handlers
// registered per event type.
type Dispatcher struct {
	store    outbox.Repository
	registry *Registry
	handlers map[string][]Handler
	log      *zap.Logger
}

func NewDispatcher(store outbox.Repository, registry *Registry, log *zap.Logger) *Dispatcher {
	return &Dispatcher{
		store:    store,
		registry: registry,
		handlers: make(map[string][]Handler),
		log:      log,
	}
}

// Subscribe registers a handler for the given event sample's type.
func (d *Dispatcher) Subscribe(sample any, h Handler) {
	name := TypeName(sample)
	d.handlers[name] = append(d.handlers[name], h)
}

// DispatchResult captures the outcome of one drain pass.
type DispatchResult struct {
	Claimed int
	Sent    int
	Failed  int
}

// Dispatch pulls up to limit pending rows and delivers them.
func (d *Dispatcher) Dispatch(ctx context.Context, limit int) (DispatchResult, error) {
	if limit <= 0 {
		limit = 50
	}
	var res DispatchResult
	records, err := d.store.ListPending(ctx, limit)
	if err != nil {
		return res, err
	}
	res.Claimed = len(records)
	for _, rec := range records {
		if err := d.deliver(ctx, rec); err != nil {
			res.Failed++
			d.log.Warn("outbox delivery failed",
				zap.String("event_id", rec.EventID),
				zap.String("event_type", rec.EventType),
				zap.Error(err))
			if mErr := d.store.MarkFailed(ctx, rec.EventID, err.Error()); mErr != nil {
				d.log.Error("outbox mark failed", zap.String("event_id", rec.EventID), zap.Error(mErr))
			}
			continue
		}
		if err := d.store.MarkSent(ctx, rec.EventID); err != nil {
			res.Failed++
			d.log.Error("outbox mark sent", zap.String("event_id", rec.EventID), zap.Error(err))
			continue
		}
		res.Sent++
	}
	return res, nil
}

func (d *Dispatcher) deliver(ctx context.Context, rec outbox.Event) error {
	event, err := d.registry.Decode(rec)
	if err != nil {
		return err
	}
	for _, h := range d.handlers[rec.EventType] {
		if err := h(ctx, event); err != nil {
			return err
		}
	}
	return nil
}

// Run drains the outbox on every tick until ctx is cancelled.
func (d *Dispatcher) Run(ctx context.Context, interval time.Duration, batch int) {
	if interval <= 0 {
		interval = 2 * time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := d.Dispatch(ctx, batch); err != nil {
				d.log.Warn("outbox dispatch pass failed", zap.Error(err))
			}
		}
	}
}
