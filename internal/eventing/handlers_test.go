package eventing

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	ledgerDomain "github.com/asifshaikgit/workforce-sub002/internal/domain/ledger"
	"github.com/asifshaikgit/workforce-sub002/internal/infrastructure/notify"
	"github.com/asifshaikgit/workforce-sub002/internal/infrastructure/render"
	"github.com/asifshaikgit/workforce-sub002/internal/testutil/memstore"
	"github.com/asifshaikgit/workforce-sub002/internal/testutil/outboxmock"
)

type captureNotifier struct {
	sent []notify.Message
	err  error
}

func (n *captureNotifier) Send(_ context.Context, m notify.Message) error {
	if n.err != nil {
		return n.err
	}
	n.sent = append(n.sent, m)
	return nil
}

type fakeRenderer struct {
	got  *render.LedgerDisplay
	path string
	err  error
}

func (r *fakeRenderer) Render(_ context.Context, d render.LedgerDisplay) (string, error) {
	r.got = &d
	return r.path, r.err
}

func seedApprovedLedger(s *memstore.Store) *ledgerDomain.Ledger {
	l := s.SeedLedger(&ledgerDomain.Ledger{
		LedgerID:       "11111111111111111111111111111111",
		ReferenceID:    "INV-1000",
		Type:           ledgerDomain.TypeInvoice,
		Status:         ledgerDomain.StatusApproved,
		CompanyID:      "cccccccccccccccccccccccccccccccc",
		SubTotalAmount: 1000,
		Amount:         950,
	})
	s.SeedLineItem(&ledgerDomain.LineItem{
		LineItemID:  "bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb",
		LedgerID:    l.ID,
		Description: "Timesheet between 2025-01-01 and 2025-01-15 for employee",
		Hours:       10,
		Rate:        100,
		Amount:      1000,
	})
	return l
}

func TestHandleApprovalRequested_NotifiesApprovers(t *testing.T) {
	s := memstore.New()
	notifier := &captureNotifier{}
	h := NewHandlers(s.UoW(), notifier, &fakeRenderer{}, zap.NewNop())

	d := NewDispatcher(&outboxmock.Repo{}, DefaultRegistry(), zap.NewNop())
	h.Register(d)

	err := h.handleApprovalRequested(context.Background(), ApprovalRequested{
		LedgerID:    "11111111111111111111111111111111",
		ReferenceID: "INV-1000",
		Level:       2,
		ApproverIDs: []string{"a1111111111111111111111111111111"},
		Amount:      950,
	})
	if err != nil {
		t.Fatalf("handleApprovalRequested: %v", err)
	}
	if len(notifier.sent) != 1 {
		t.Fatalf("want one notification, got %d", len(notifier.sent))
	}
	m := notifier.sent[0]
	if m.Subject != "Approval required: INV-1000" {
		t.Fatalf("subject = %q", m.Subject)
	}
	if len(m.Recipients) != 1 || m.Recipients[0] != "a1111111111111111111111111111111" {
		t.Fatalf("recipients = %v", m.Recipients)
	}
}

func TestHandleLedgerApproved_RendersAndNotifies(t *testing.T) {
	s := memstore.New()
	l := seedApprovedLedger(s)
	notifier := &captureNotifier{}
	renderer := &fakeRenderer{path: "/var/rendered/INV-1000.pdf"}
	h := NewHandlers(s.UoW(), notifier, renderer, zap.NewNop())

	err := h.handleLedgerApproved(context.Background(), LedgerApproved{
		LedgerID:    l.LedgerID,
		ReferenceID: l.ReferenceID,
		Type:        string(l.Type),
		CompanyID:   l.CompanyID,
		Amount:      l.Amount,
	})
	if err != nil {
		t.Fatalf("handleLedgerApproved: %v", err)
	}

	if renderer.got == nil {
		t.Fatal("renderer not called")
	}
	if renderer.got.ReferenceID != "INV-1000" || len(renderer.got.Lines) != 1 {
		t.Fatalf("display object wrong: %+v", renderer.got)
	}
	if renderer.got.Lines[0].Hours != 10 || renderer.got.Lines[0].Amount != 1000 {
		t.Fatalf("display line wrong: %+v", renderer.got.Lines[0])
	}

	if len(notifier.sent) != 1 {
		t.Fatalf("want one notification, got %d", len(notifier.sent))
	}
	m := notifier.sent[0]
	if len(m.Attachments) != 1 || m.Attachments[0] != "/var/rendered/INV-1000.pdf" {
		t.Fatalf("attachments = %v", m.Attachments)
	}
}

func TestHandleLedgerApproved_RenderFailurePropagates(t *testing.T) {
	s := memstore.New()
	l := seedApprovedLedger(s)
	renderErr := errors.New("font cache corrupt")
	h := NewHandlers(s.UoW(), &captureNotifier{}, &fakeRenderer{err: renderErr}, zap.NewNop())

	err := h.handleLedgerApproved(context.Background(), LedgerApproved{LedgerID: l.LedgerID})
	if !errors.Is(err, renderErr) {
		t.Fatalf("want render error back for retry, got %v", err)
	}
}

func TestHandleLedgerApproved_WrongPayloadType(t *testing.T) {
	h := NewHandlers(memstore.New().UoW(), &captureNotifier{}, &fakeRenderer{}, zap.NewNop())
	if err := h.handleLedgerApproved(context.Background(), LedgerCreated{}); err == nil {
		t.Fatal("want error for unexpected payload type")
	}
}
