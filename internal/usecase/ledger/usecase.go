package ledger

import (
	"context"
	"time"

	"github.com/asifshaikgit/workforce-sub002/internal/domain/activity"
	"github.com/asifshaikgit/workforce-sub002/internal/domain/approvalflow"
	"github.com/asifshaikgit/workforce-sub002/internal/domain/fault"
	domainLedger "github.com/asifshaikgit/workforce-sub002/internal/domain/ledger"
	"github.com/asifshaikgit/workforce-sub002/internal/domain/uow"
	"github.com/asifshaikgit/workforce-sub002/internal/eventing"
	"github.com/asifshaikgit/workforce-sub002/internal/infrastructure/refgen"
	"github.com/asifshaikgit/workforce-sub002/internal/infrastructure/storage"
	"github.com/asifshaikgit/workforce-sub002/internal/usecase/activitylog"
	"github.com/asifshaikgit/workforce-sub002/pkg/id"
)

const entityType = "ledger"

type Usecase struct {
	uow      uow.UnitOfWork
	refs     refgen.Generator
	files    storage.FileStore
	recorder *activitylog.Recorder
}

func NewUsecase(tx uow.UnitOfWork, refs refgen.Generator) *Usecase {
	return &Usecase{uow: tx, refs: refs, recorder: activitylog.NewRecorder()}
}

// WithFileStore enables attachment handling: incoming attachment paths are
// moved to permanent per-ledger storage before the line item is persisted.
func (u *Usecase) WithFileStore(fs storage.FileStore) *Usecase {
	u.files = fs
	return u
}

func referencePrefix(t domainLedger.Type) string {
	if t == domainLedger.TypeBill {
		return "BILL"
	}
	return "INV"
}

// Create persists a new ledger with its line items and addresses in one
// transaction, reserves the referenced hour entries and derives the header
// totals by summing the persisted items.
func (u *Usecase) Create(ctx context.Context, in CreateInput) (*LedgerDTO, error) {
	t := domainLedger.Type(in.Type)
	if !t.Valid() {
		return nil, fault.Validation("ledger type must be invoice or bill, got %q", in.Type)
	}
	if in.CompanyID == "" {
		return nil, fault.Validation("company_id is required")
	}
	if len(in.LineItems) == 0 {
		return nil, fault.Validation("at least one line item is required")
	}
	for i, li := range in.LineItems {
		if li.PlacementID == "" {
			return nil, fault.Validation("line_items[%d].placement_id is required", i)
		}
		if li.Hours < 0 || li.OTHours < 0 {
			return nil, fault.Validation("line_items[%d] hours must not be negative", i)
		}
	}

	var dto *LedgerDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		ref, err := u.refs.Next(ctx, r.Ledgers, referencePrefix(t))
		if err != nil {
			return err
		}

		l := &domainLedger.Ledger{
			LedgerID:         id.NewID32(),
			ReferenceID:      ref,
			Type:             t,
			Status:           domainLedger.StatusDrafted,
			CompanyID:        in.CompanyID,
			DiscountAmount:   domainLedger.Round2(in.DiscountAmount),
			AdjustmentAmount: domainLedger.Round2(in.AdjustmentAmount),
			LedgerDate:       in.LedgerDate,
			DueDate:          in.DueDate,
			Notes:            in.Notes,
			StatusUpdatedAt:  time.Now().UTC(),
		}
		if in.Submit {
			l.Status = domainLedger.StatusSubmitted
		}
		if err := r.Ledgers.Create(ctx, l); err != nil {
			return err
		}

		for i := range in.LineItems {
			if _, err := u.addLineItem(ctx, r, l, in.LineItems[i]); err != nil {
				return err
			}
		}
		for _, a := range in.Addresses {
			addr := addressFromInput(l.ID, a)
			if err := r.Ledgers.CreateAddress(ctx, addr); err != nil {
				return err
			}
		}

		items, err := u.recalculate(ctx, r, l)
		if err != nil {
			return err
		}
		l.BalanceAmount = l.Amount

		if in.Submit {
			if err := u.enterApprovalFlow(ctx, r, l, items, in.ActorID); err != nil {
				return err
			}
		}
		if err := r.Ledgers.Save(ctx, l); err != nil {
			return err
		}

		if err := u.recorder.Record(ctx, r.Activities, entityType, l.LedgerID, "created", in.ActorID, nil); err != nil {
			return err
		}
		if err := eventing.Publish(ctx, r.Outbox, eventing.LedgerCreated{
			LedgerID:    l.LedgerID,
			ReferenceID: l.ReferenceID,
			Type:        string(l.Type),
			CompanyID:   l.CompanyID,
			Amount:      l.Amount,
			CreatedAt:   time.Now().UTC(),
		}); err != nil {
			return err
		}

		addrs, err := r.Ledgers.ListAddresses(ctx, l.ID)
		if err != nil {
			return err
		}
		dto = toDTO(l, items, addrs)
		return nil
	})
	if err != nil {
		return nil, wrapTx("ledger create", err)
	}
	return dto, nil
}

// Update applies header and line-item changes, then re-derives totals from the
// persisted items rather than applying deltas, so repeated edits cannot drift.
func (u *Usecase) Update(ctx context.Context, in UpdateInput) (*LedgerDTO, error) {
	if in.LedgerID == "" {
		return nil, fault.Validation("ledger_id is required")
	}
	var dto *LedgerDTO
	err := u.uow.WithinLedgerTx(ctx, in.LedgerID, func(r uow.Repos, l *domainLedger.Ledger) error {
		if l.Status.Terminal() {
			return fault.StateConflict("ledger %s is %s and can no longer be edited", l.LedgerID, l.Status)
		}

		beforeHeader := activitylog.LedgerSnapshot(l)
		beforeItems, err := r.Ledgers.ListLineItems(ctx, l.ID)
		if err != nil {
			return err
		}
		beforeAddrs, err := r.Ledgers.ListAddresses(ctx, l.ID)
		if err != nil {
			return err
		}
		paid := domainLedger.Round2(l.Amount - l.BalanceAmount)

		if in.Notes != nil {
			l.Notes = *in.Notes
		}
		if in.DueDate != nil {
			l.DueDate = in.DueDate
		}
		if in.DiscountAmount != nil {
			l.DiscountAmount = domainLedger.Round2(*in.DiscountAmount)
		}
		if in.AdjustmentAmount != nil {
			l.AdjustmentAmount = domainLedger.Round2(*in.AdjustmentAmount)
		}

		for _, upd := range in.UpdateLineItems {
			if err := u.applyLineItemUpdate(ctx, r, l, upd); err != nil {
				return err
			}
		}
		for i := range in.AddLineItems {
			if _, err := u.addLineItem(ctx, r, l, in.AddLineItems[i]); err != nil {
				return err
			}
		}
		for _, a := range in.Addresses {
			if err := u.upsertAddress(ctx, r, l, beforeAddrs, a); err != nil {
				return err
			}
		}

		items, err := u.recalculate(ctx, r, l)
		if err != nil {
			return err
		}
		l.BalanceAmount = domainLedger.Round2(l.Amount - paid)
		if err := r.Ledgers.Save(ctx, l); err != nil {
			return err
		}

		addrs, err := r.Ledgers.ListAddresses(ctx, l.ID)
		if err != nil {
			return err
		}

		changes := activitylog.Diff(beforeHeader, activitylog.LedgerSnapshot(l))
		changes = append(changes, activitylog.DiffLineItems(beforeItems, items)...)
		changes = append(changes, activitylog.DiffAddresses(beforeAddrs, addrs)...)
		if err := u.recorder.Record(ctx, r.Activities, entityType, l.LedgerID, "updated", in.ActorID, changes); err != nil {
			return err
		}
		dto = toDTO(l, items, addrs)
		return nil
	})
	if err != nil {
		return nil, wrapTx("ledger update", err)
	}
	return dto, nil
}

// DeleteLineItem soft-deletes the item, releases its hour entries for a future
// consolidation and re-derives the header totals.
func (u *Usecase) DeleteLineItem(ctx context.Context, ledgerID, lineItemID, actorID string) (*LedgerDTO, error) {
	if ledgerID == "" || lineItemID == "" {
		return nil, fault.Validation("ledger_id and line_item_id are required")
	}
	var dto *LedgerDTO
	err := u.uow.WithinLedgerTx(ctx, ledgerID, func(r uow.Repos, l *domainLedger.Ledger) error {
		if l.Status.Terminal() {
			return fault.StateConflict("ledger %s is %s and can no longer be edited", l.LedgerID, l.Status)
		}
		li, err := r.Ledgers.GetLineItem(ctx, lineItemID)
		if err != nil || li.LedgerID != l.ID {
			return fault.NotFound("line item %s not found on ledger %s", lineItemID, ledgerID)
		}

		beforeHeader := activitylog.LedgerSnapshot(l)
		paid := domainLedger.Round2(l.Amount - l.BalanceAmount)

		if len(li.HourEntryIDs) > 0 {
			if err := r.HourEntries.SetInvoiceRaised(ctx, li.HourEntryIDs, false); err != nil {
				return err
			}
		}
		if err := r.Ledgers.SoftDeleteLineItem(ctx, lineItemID); err != nil {
			return err
		}

		items, err := u.recalculate(ctx, r, l)
		if err != nil {
			return err
		}
		l.BalanceAmount = domainLedger.Round2(l.Amount - paid)
		if err := r.Ledgers.Save(ctx, l); err != nil {
			return err
		}

		changes := activitylog.Diff(beforeHeader, activitylog.LedgerSnapshot(l))
		if err := u.recorder.Record(ctx, r.Activities, entityType, l.LedgerID, "line_item_deleted", actorID, changes); err != nil {
			return err
		}

		addrs, err := r.Ledgers.ListAddresses(ctx, l.ID)
		if err != nil {
			return err
		}
		dto = toDTO(l, items, addrs)
		return nil
	})
	if err != nil {
		return nil, wrapTx("line item delete", err)
	}
	return dto, nil
}

func (u *Usecase) Get(ctx context.Context, ledgerID string) (*LedgerDTO, error) {
	var dto *LedgerDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		l, err := r.Ledgers.GetByLedgerID(ctx, ledgerID)
		if err != nil {
			return fault.NotFound("ledger %s not found", ledgerID)
		}
		items, err := r.Ledgers.ListLineItems(ctx, l.ID)
		if err != nil {
			return err
		}
		addrs, err := r.Ledgers.ListAddresses(ctx, l.ID)
		if err != nil {
			return err
		}
		dto = toDTO(l, items, addrs)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// addLineItem persists one line item and reserves its hour entries. The
// reservation is a predicate check inside the transaction, not a
// cross-transaction lock.
func (u *Usecase) addLineItem(ctx context.Context, r uow.Repos, l *domainLedger.Ledger, in LineItemInput) (*domainLedger.LineItem, error) {
	pl, err := r.Placements.GetByPlacementID(ctx, in.PlacementID)
	if err != nil {
		return nil, fault.NotFound("placement %s not found", in.PlacementID)
	}
	if len(in.HourEntryIDs) > 0 {
		raised, err := r.HourEntries.CountRaised(ctx, in.HourEntryIDs)
		if err != nil {
			return nil, err
		}
		if raised > 0 {
			return nil, fault.StateConflict("%d hour entries are already billed on another ledger", raised)
		}
	}
	attachment := in.Attachment
	if attachment != "" && u.files != nil {
		moved, err := u.files.MoveToPermanent(ctx, attachment, entityType, l.LedgerID)
		if err != nil {
			return nil, fault.Persistence("store line item attachment", err)
		}
		attachment = moved
	}
	li := &domainLedger.LineItem{
		LineItemID:   id.NewID32(),
		LedgerID:     l.ID,
		EmployeeID:   in.EmployeeID,
		PlacementID:  pl.ID,
		RatePeriodID: in.RatePeriodID,
		Description:  in.Description,
		Hours:        domainLedger.Round2(in.Hours),
		OTHours:      domainLedger.Round2(in.OTHours),
		Rate:         in.Rate,
		OTRate:       in.OTRate,
		HourEntryIDs: in.HourEntryIDs,
		Attachment:   attachment,
	}
	li.ComputeAmount()
	if err := r.Ledgers.CreateLineItem(ctx, li); err != nil {
		return nil, err
	}
	if len(in.HourEntryIDs) > 0 {
		if err := r.HourEntries.SetInvoiceRaised(ctx, in.HourEntryIDs, true); err != nil {
			return nil, err
		}
	}
	return li, nil
}

func (u *Usecase) applyLineItemUpdate(ctx context.Context, r uow.Repos, l *domainLedger.Ledger, upd LineItemUpdate) error {
	li, err := r.Ledgers.GetLineItem(ctx, upd.LineItemID)
	if err != nil || li.LedgerID != l.ID {
		return fault.NotFound("line item %s not found on ledger %s", upd.LineItemID, l.LedgerID)
	}
	if upd.Description != nil {
		li.Description = *upd.Description
	}
	if upd.Hours != nil {
		li.Hours = domainLedger.Round2(*upd.Hours)
	}
	if upd.OTHours != nil {
		li.OTHours = domainLedger.Round2(*upd.OTHours)
	}
	if upd.Rate != nil {
		li.Rate = *upd.Rate
	}
	if upd.OTRate != nil {
		li.OTRate = *upd.OTRate
	}
	if upd.Attachment != nil {
		li.Attachment = *upd.Attachment
	}
	li.ComputeAmount()
	return r.Ledgers.SaveLineItem(ctx, li)
}

// recalculate re-sums the persisted, non-deleted line items into the header.
func (u *Usecase) recalculate(ctx context.Context, r uow.Repos, l *domainLedger.Ledger) ([]domainLedger.LineItem, error) {
	items, err := r.Ledgers.ListLineItems(ctx, l.ID)
	if err != nil {
		return nil, err
	}
	l.RecomputeTotals(items)
	return items, nil
}

// enterApprovalFlow moves a freshly submitted ledger straight into the chain
// when one is configured, notifying the first level's approvers via the outbox.
func (u *Usecase) enterApprovalFlow(ctx context.Context, r uow.Repos, l *domainLedger.Ledger, items []domainLedger.LineItem, actorID string) error {
	levels, err := approvalflow.ResolveLevels(ctx, r.Flows, r.Placements, l.CompanyID, items)
	if err != nil {
		return err
	}
	before := l.Status
	if len(levels) > 0 {
		l.Status = domainLedger.StatusApprovalInProgress
		l.ApprovalLevel = levels[0].Level
		l.StatusUpdatedAt = time.Now().UTC()
	}
	// Written after the status advance: the row's after-status is the status
	// that commits.
	if err := r.Flows.AppendTrack(ctx, &approvalflow.Track{
		LedgerID:     l.ID,
		ApproverID:   actorID,
		Action:       approvalflow.ActionSubmit,
		StatusBefore: "",
		StatusAfter:  string(l.Status),
	}); err != nil {
		return err
	}
	if len(levels) == 0 {
		return nil
	}
	if err := eventing.Publish(ctx, r.Outbox, eventing.LedgerStatusChanged{
		LedgerID:     l.LedgerID,
		ReferenceID:  l.ReferenceID,
		StatusBefore: string(before),
		StatusAfter:  string(l.Status),
		Level:        l.ApprovalLevel,
		ActorID:      actorID,
		ChangedAt:    time.Now().UTC(),
	}); err != nil {
		return err
	}
	return eventing.Publish(ctx, r.Outbox, eventing.ApprovalRequested{
		LedgerID:    l.LedgerID,
		ReferenceID: l.ReferenceID,
		Level:       l.ApprovalLevel,
		ApproverIDs: levels[0].ApproverIDs,
		Amount:      l.Amount,
	})
}

// upsertAddress replaces the existing address of the same type or creates a
// new one when the ledger has none.
func (u *Usecase) upsertAddress(ctx context.Context, r uow.Repos, l *domainLedger.Ledger, existing []domainLedger.Address, in AddressInput) error {
	next := addressFromInput(l.ID, in)
	for _, a := range existing {
		if a.AddressType == next.AddressType {
			next.ID = a.ID
			next.CreatedAt = a.CreatedAt
			return r.Ledgers.SaveAddress(ctx, next)
		}
	}
	return r.Ledgers.CreateAddress(ctx, next)
}

func addressFromInput(ledgerNumericID uint64, in AddressInput) *domainLedger.Address {
	return &domainLedger.Address{
		LedgerID:    ledgerNumericID,
		AddressType: domainLedger.AddressType(in.AddressType),
		Name:        in.Name,
		Line1:       in.Line1,
		Line2:       in.Line2,
		City:        in.City,
		State:       in.State,
		Zip:         in.Zip,
		Country:     in.Country,
	}
}

// wrapTx classifies transaction failures that are not already typed.
func wrapTx(op string, err error) error {
	if err == nil {
		return nil
	}
	if fault.KindOf(err) != fault.KindUnknown {
		return err
	}
	return fault.Persistence(op+" failed", err)
}

// ActivityFor returns the recorded audit trail for a ledger.
func (u *Usecase) ActivityFor(ctx context.Context, ledgerID string) ([]activity.Log, error) {
	var logs []activity.Log
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		var err error
		logs, err = r.Activities.ListByEntity(ctx, entityType, ledgerID)
		return err
	})
	return logs, err
}
