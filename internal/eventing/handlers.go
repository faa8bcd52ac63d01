package eventing

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/asifshaikgit/workforce-sub002/internal/domain/uow"
	"github.com/asifshaikgit/workforce-sub002/internal/infrastructure/notify"
	"github.com/asifshaikgit/workforce-sub002/internal/infrastructure/render"
)

// Handlers wires domain events to the notification and rendering
// collaborators. Everything here runs after commit; failures are retried or
// logged by the dispatcher, never surfaced to the financial transaction.
type Handlers struct {
	uow      uow.UnitOfWork
	notifier notify.Dispatcher
	renderer render.Renderer
	log      *zap.Logger
}

func NewHandlers(tx uow.UnitOfWork, n notify.Dispatcher, r render.Renderer, log *zap.Logger) *Handlers {
	return &Handlers{uow: tx, notifier: n, renderer: r, log: log}
}

// Register subscribes every handler on the dispatcher.
func (h *Handlers) Register(d *Dispatcher) {
	d.Subscribe(ApprovalRequested{}, h.handleApprovalRequested)
	d.Subscribe(LedgerApproved{}, h.handleLedgerApproved)
}

func (h *Handlers) handleApprovalRequested(ctx context.Context, event any) error {
	ev, ok := event.(ApprovalRequested)
	if !ok {
		return fmt.Errorf("unexpected event payload %T", event)
	}
	return h.notifier.Send(ctx, notify.Message{
		Recipients: ev.ApproverIDs,
		Subject:    fmt.Sprintf("Approval required: %s", ev.ReferenceID),
		Body: fmt.Sprintf("Ledger %s (%.2f) is awaiting your approval at level %d.",
			ev.ReferenceID, ev.Amount, ev.Level),
	})
}

func (h *Handlers) handleLedgerApproved(ctx context.Context, event any) error {
	ev, ok := event.(LedgerApproved)
	if !ok {
		return fmt.Errorf("unexpected event payload %T", event)
	}
	display, err := h.buildDisplay(ctx, ev.LedgerID)
	if err != nil {
		return err
	}
	artifact, err := h.renderer.Render(ctx, *display)
	if err != nil {
		return err
	}
	h.log.Info("ledger document rendered",
		zap.String("reference_id", ev.ReferenceID),
		zap.String("artifact", artifact))
	return h.notifier.Send(ctx, notify.Message{
		Recipients:  []string{ev.CompanyID},
		Subject:     fmt.Sprintf("%s approved: %s", ev.Type, ev.ReferenceID),
		Body:        fmt.Sprintf("Ledger %s for %.2f has been fully approved.", ev.ReferenceID, ev.Amount),
		Attachments: []string{artifact},
	})
}

func (h *Handlers) buildDisplay(ctx context.Context, ledgerID string) (*render.LedgerDisplay, error) {
	var display *render.LedgerDisplay
	err := h.uow.WithinTx(ctx, func(r uow.Repos) error {
		l, err := r.Ledgers.GetByLedgerID(ctx, ledgerID)
		if err != nil {
			return err
		}
		items, err := r.Ledgers.ListLineItems(ctx, l.ID)
		if err != nil {
			return err
		}
		display = &render.LedgerDisplay{
			ReferenceID:      l.ReferenceID,
			Type:             string(l.Type),
			CompanyID:        l.CompanyID,
			LedgerDate:       l.LedgerDate,
			SubTotalAmount:   l.SubTotalAmount,
			DiscountAmount:   l.DiscountAmount,
			AdjustmentAmount: l.AdjustmentAmount,
			Amount:           l.Amount,
		}
		for _, li := range items {
			display.Lines = append(display.Lines, render.DisplayLine{
				Description: li.Description,
				Hours:       li.Hours + li.OTHours,
				Rate:        li.Rate,
				Amount:      li.Amount,
			})
		}
		return nil
	})
	return display, err
}
