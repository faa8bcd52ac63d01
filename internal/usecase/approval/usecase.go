package approval

import (
	"context"
	"time"

	"github.com/asifshaikgit/workforce-sub002/internal/domain/approvalflow"
	"github.com/asifshaikgit/workforce-sub002/internal/domain/fault"
	domainLedger "github.com/asifshaikgit/workforce-sub002/internal/domain/ledger"
	"github.com/asifshaikgit/workforce-sub002/internal/domain/uow"
	"github.com/asifshaikgit/workforce-sub002/internal/eventing"
)

// Usecase drives a ledger through its configured sign-off chain. Every
// transition runs inside one transaction: the status change, the append-only
// track row and the outbox notifications commit or roll back together.
type Usecase struct {
	uow uow.UnitOfWork
}

func NewUsecase(tx uow.UnitOfWork) *Usecase {
	return &Usecase{uow: tx}
}

// Submit finalizes a drafted ledger. When an approval chain is configured the
// ledger enters Approval In Progress at the chain's first level.
func (u *Usecase) Submit(ctx context.Context, in SubmitInput) (*StatusDTO, error) {
	var dto *StatusDTO
	err := u.uow.WithinLedgerTx(ctx, in.LedgerID, func(r uow.Repos, l *domainLedger.Ledger) error {
		if l.Status != domainLedger.StatusDrafted {
			return fault.StateConflict("ledger %s is %s, only drafted ledgers can be submitted", l.LedgerID, l.Status)
		}
		before := l.Status
		l.Status = domainLedger.StatusSubmitted
		l.StatusUpdatedAt = time.Now().UTC()

		levels, err := u.resolveLevels(ctx, r, l)
		if err != nil {
			return err
		}
		if len(levels) > 0 {
			l.Status = domainLedger.StatusApprovalInProgress
			l.ApprovalLevel = levels[0].Level
		}
		if err := r.Ledgers.Save(ctx, l); err != nil {
			return err
		}
		if err := u.track(ctx, r, l, approvalflow.ActionSubmit, in.ActorID, before, "", 0); err != nil {
			return err
		}
		if err := u.publishStatusChange(ctx, r, l, before, in.ActorID); err != nil {
			return err
		}
		if len(levels) > 0 {
			if err := u.requestApproval(ctx, r, l, levels[0]); err != nil {
				return err
			}
		}
		dto = statusDTO(l)
		return nil
	})
	if err != nil {
		return nil, wrapTx("ledger submit", err)
	}
	return dto, nil
}

// Approve records one approver's sign-off at the ledger's current level.
// Intermediate levels advance the chain; the final level yields Approved.
func (u *Usecase) Approve(ctx context.Context, in DecisionInput) (*StatusDTO, error) {
	var dto *StatusDTO
	err := u.uow.WithinLedgerTx(ctx, in.LedgerID, func(r uow.Repos, l *domainLedger.Ledger) error {
		if l.Status.Terminal() {
			return fault.StateConflict("ledger %s is %s, no further transitions", l.LedgerID, l.Status)
		}
		if l.Status != domainLedger.StatusSubmitted && l.Status != domainLedger.StatusApprovalInProgress {
			return fault.StateConflict("ledger %s is %s and cannot be approved", l.LedgerID, l.Status)
		}

		levels, err := u.resolveLevels(ctx, r, l)
		if err != nil {
			return err
		}
		before := l.Status
		actedLevel := 0

		if len(levels) == 0 {
			// No chain configured: a submitted ledger approves directly.
			l.Status = domainLedger.StatusApproved
		} else {
			idx := levelIndex(levels, l)
			current := levels[idx]
			if !current.ApproverIDs.Contains(in.ActorID) {
				return fault.StateConflict("approver %s is not eligible at level %d", in.ActorID, current.Level)
			}
			actedLevel = current.Level
			if idx+1 < len(levels) {
				// First approver action on a Submitted ledger also pulls it
				// into the chain.
				l.Status = domainLedger.StatusApprovalInProgress
				l.ApprovalLevel = levels[idx+1].Level
			} else {
				l.Status = domainLedger.StatusApproved
			}
		}
		l.StatusUpdatedAt = time.Now().UTC()
		if err := r.Ledgers.Save(ctx, l); err != nil {
			return err
		}
		if err := u.track(ctx, r, l, approvalflow.ActionApprove, in.ActorID, before, in.Note, actedLevel); err != nil {
			return err
		}
		if err := u.publishStatusChange(ctx, r, l, before, in.ActorID); err != nil {
			return err
		}
		if l.Status == domainLedger.StatusApproved {
			if err := u.publishApproved(ctx, r, l); err != nil {
				return err
			}
		} else {
			next := levels[levelIndex(levels, l)]
			if err := u.requestApproval(ctx, r, l, next); err != nil {
				return err
			}
		}
		dto = statusDTO(l)
		return nil
	})
	if err != nil {
		return nil, wrapTx("ledger approve", err)
	}
	return dto, nil
}

// Reject moves a submitted or in-progress ledger to the terminal Rejected
// state; no further levels are evaluated.
func (u *Usecase) Reject(ctx context.Context, in DecisionInput) (*StatusDTO, error) {
	var dto *StatusDTO
	err := u.uow.WithinLedgerTx(ctx, in.LedgerID, func(r uow.Repos, l *domainLedger.Ledger) error {
		if l.Status != domainLedger.StatusSubmitted && l.Status != domainLedger.StatusApprovalInProgress {
			return fault.StateConflict("ledger %s is %s and cannot be rejected", l.LedgerID, l.Status)
		}
		levels, err := u.resolveLevels(ctx, r, l)
		if err != nil {
			return err
		}
		actedLevel := 0
		if len(levels) > 0 {
			current := levels[levelIndex(levels, l)]
			if !current.ApproverIDs.Contains(in.ActorID) {
				return fault.StateConflict("approver %s is not eligible at level %d", in.ActorID, current.Level)
			}
			actedLevel = current.Level
		}
		before := l.Status
		l.Status = domainLedger.StatusRejected
		l.StatusUpdatedAt = time.Now().UTC()
		if err := r.Ledgers.Save(ctx, l); err != nil {
			return err
		}
		if err := u.track(ctx, r, l, approvalflow.ActionReject, in.ActorID, before, in.Note, actedLevel); err != nil {
			return err
		}
		if err := u.publishStatusChange(ctx, r, l, before, in.ActorID); err != nil {
			return err
		}
		dto = statusDTO(l)
		return nil
	})
	if err != nil {
		return nil, wrapTx("ledger reject", err)
	}
	return dto, nil
}

// RecordPayment is the payment collaborator's entrypoint: it decrements the
// balance and drives Approved through Partially Paid to Paid.
func (u *Usecase) RecordPayment(ctx context.Context, in PaymentInput) (*StatusDTO, error) {
	if in.Amount <= 0 {
		return nil, fault.Validation("payment amount must be positive")
	}
	var dto *StatusDTO
	err := u.uow.WithinLedgerTx(ctx, in.LedgerID, func(r uow.Repos, l *domainLedger.Ledger) error {
		switch l.Status {
		case domainLedger.StatusApproved, domainLedger.StatusPartiallyPaid:
		default:
			return fault.StateConflict("ledger %s is %s, payments apply to approved ledgers only", l.LedgerID, l.Status)
		}
		if in.Amount > l.BalanceAmount {
			return fault.Validation("payment %.2f exceeds outstanding balance %.2f", in.Amount, l.BalanceAmount)
		}
		before := l.Status
		l.BalanceAmount = domainLedger.Round2(l.BalanceAmount - in.Amount)
		if l.BalanceAmount == 0 {
			l.Status = domainLedger.StatusPaid
		} else {
			l.Status = domainLedger.StatusPartiallyPaid
		}
		l.StatusUpdatedAt = time.Now().UTC()
		if err := r.Ledgers.Save(ctx, l); err != nil {
			return err
		}
		if err := u.track(ctx, r, l, approvalflow.ActionPayment, in.ActorID, before, in.Note, l.ApprovalLevel); err != nil {
			return err
		}
		if err := u.publishStatusChange(ctx, r, l, before, in.ActorID); err != nil {
			return err
		}
		dto = statusDTO(l)
		return nil
	})
	if err != nil {
		return nil, wrapTx("payment record", err)
	}
	return dto, nil
}

// Tracks returns the append-only approval audit trail for a ledger.
func (u *Usecase) Tracks(ctx context.Context, ledgerID string) ([]TrackDTO, error) {
	var out []TrackDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		l, err := r.Ledgers.GetByLedgerID(ctx, ledgerID)
		if err != nil {
			return fault.NotFound("ledger %s not found", ledgerID)
		}
		tracks, err := r.Flows.ListTracks(ctx, l.ID)
		if err != nil {
			return err
		}
		for _, t := range tracks {
			out = append(out, TrackDTO{
				Level:        t.Level,
				ApproverID:   t.ApproverID,
				Action:       string(t.Action),
				StatusBefore: t.StatusBefore,
				StatusAfter:  t.StatusAfter,
				Note:         t.Note,
				CreatedAt:    t.CreatedAt,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (u *Usecase) resolveLevels(ctx context.Context, r uow.Repos, l *domainLedger.Ledger) ([]approvalflow.Level, error) {
	items, err := r.Ledgers.ListLineItems(ctx, l.ID)
	if err != nil {
		return nil, err
	}
	return approvalflow.ResolveLevels(ctx, r.Flows, r.Placements, l.CompanyID, items)
}

// levelIndex locates the ledger's current level in the configured chain. A
// ledger still in Submitted starts at the first level.
func levelIndex(levels []approvalflow.Level, l *domainLedger.Ledger) int {
	if l.Status == domainLedger.StatusSubmitted || l.ApprovalLevel == 0 {
		return 0
	}
	for i, lv := range levels {
		if lv.Level == l.ApprovalLevel {
			return i
		}
	}
	return 0
}

// track appends one audit row. level is the level the actor acted at, not the
// level the chain advanced to.
func (u *Usecase) track(ctx context.Context, r uow.Repos, l *domainLedger.Ledger, action approvalflow.TrackAction, actorID string, before domainLedger.Status, note string, level int) error {
	return r.Flows.AppendTrack(ctx, &approvalflow.Track{
		LedgerID:     l.ID,
		Level:        level,
		ApproverID:   actorID,
		Action:       action,
		StatusBefore: string(before),
		StatusAfter:  string(l.Status),
		Note:         note,
	})
}

func (u *Usecase) publishStatusChange(ctx context.Context, r uow.Repos, l *domainLedger.Ledger, before domainLedger.Status, actorID string) error {
	return eventing.Publish(ctx, r.Outbox, eventing.LedgerStatusChanged{
		LedgerID:     l.LedgerID,
		ReferenceID:  l.ReferenceID,
		StatusBefore: string(before),
		StatusAfter:  string(l.Status),
		Level:        l.ApprovalLevel,
		ActorID:      actorID,
		ChangedAt:    time.Now().UTC(),
	})
}

func (u *Usecase) requestApproval(ctx context.Context, r uow.Repos, l *domainLedger.Ledger, level approvalflow.Level) error {
	return eventing.Publish(ctx, r.Outbox, eventing.ApprovalRequested{
		LedgerID:    l.LedgerID,
		ReferenceID: l.ReferenceID,
		Level:       level.Level,
		ApproverIDs: level.ApproverIDs,
		Amount:      l.Amount,
	})
}

func (u *Usecase) publishApproved(ctx context.Context, r uow.Repos, l *domainLedger.Ledger) error {
	return eventing.Publish(ctx, r.Outbox, eventing.LedgerApproved{
		LedgerID:    l.LedgerID,
		ReferenceID: l.ReferenceID,
		Type:        string(l.Type),
		CompanyID:   l.CompanyID,
		Amount:      l.Amount,
	})
}

func wrapTx(op string, err error) error {
	if err == nil {
		return nil
	}
	if fault.KindOf(err) != fault.KindUnknown {
		return err
	}
	return fault.Persistence(op+" failed", err)
}
