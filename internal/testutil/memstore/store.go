// Package memstore is an in-memory uow.Repos implementation for usecase
// tests. It keeps aggregate state across calls inside one test, which the
// function-backed mocks cannot, but provides no transactional rollback; tests
// that need real rollback semantics run against sqlite instead.
package memstore

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/asifshaikgit/workforce-sub002/internal/domain/activity"
	"github.com/asifshaikgit/workforce-sub002/internal/domain/approvalflow"
	"github.com/asifshaikgit/workforce-sub002/internal/domain/ledger"
	"github.com/asifshaikgit/workforce-sub002/internal/domain/outbox"
	"github.com/asifshaikgit/workforce-sub002/internal/domain/placement"
	"github.com/asifshaikgit/workforce-sub002/internal/domain/timesheet"
	"github.com/asifshaikgit/workforce-sub002/internal/domain/uow"
)

var ErrNotFound = errors.New("memstore: not found")

type Store struct {
	nextID uint64

	Placements  map[uint64]*placement.Placement
	RatePeriods map[uint64][]placement.BillingRatePeriod
	Entries     map[uint64]*timesheet.HourEntry
	Ledgers     map[uint64]*ledger.Ledger
	Items       map[uint64]*ledger.LineItem
	ItemDeleted map[uint64]bool
	Addresses   []ledger.Address
	Levels      []approvalflow.Level
	TrackRows   []approvalflow.Track
	Logs        []activity.Log
	Events      []outbox.Event
}

func New() *Store {
	return &Store{
		Placements:  map[uint64]*placement.Placement{},
		RatePeriods: map[uint64][]placement.BillingRatePeriod{},
		Entries:     map[uint64]*timesheet.HourEntry{},
		Ledgers:     map[uint64]*ledger.Ledger{},
		Items:       map[uint64]*ledger.LineItem{},
		ItemDeleted: map[uint64]bool{},
	}
}

func (s *Store) id() uint64 { s.nextID++; return s.nextID }

// Repos returns the full repository set backed by this store.
func (s *Store) Repos() uow.Repos {
	return uow.Repos{
		Placements:  placementRepo{s},
		HourEntries: entryRepo{s},
		Ledgers:     ledgerRepo{s},
		Flows:       flowRepo{s},
		Activities:  activityRepo{s},
		Outbox:      outboxRepo{s},
	}
}

// UoW returns a pass-through unit of work over this store (no rollback).
func (s *Store) UoW() uow.UnitOfWork { return passthrough{s} }

type passthrough struct{ s *Store }

func (p passthrough) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return fn(p.s.Repos())
}

func (p passthrough) WithinLedgerTx(ctx context.Context, ledgerID string, fn func(r uow.Repos, l *ledger.Ledger) error) error {
	l, err := p.s.Repos().Ledgers.GetByLedgerIDForUpdate(ctx, ledgerID)
	if err != nil {
		return err
	}
	return fn(p.s.Repos(), l)
}

// ---- seed helpers ----

func (s *Store) SeedPlacement(p *placement.Placement) *placement.Placement {
	if p.ID == 0 {
		p.ID = s.id()
	}
	s.Placements[p.ID] = p
	return p
}

func (s *Store) SeedRatePeriod(placementNumericID uint64, rp placement.BillingRatePeriod) placement.BillingRatePeriod {
	if rp.ID == 0 {
		rp.ID = s.id()
	}
	rp.PlacementID = placementNumericID
	s.RatePeriods[placementNumericID] = append(s.RatePeriods[placementNumericID], rp)
	return rp
}

func (s *Store) SeedEntry(e *timesheet.HourEntry) *timesheet.HourEntry {
	if e.ID == 0 {
		e.ID = s.id()
	}
	s.Entries[e.ID] = e
	return e
}

func (s *Store) SeedLedger(l *ledger.Ledger) *ledger.Ledger {
	if l.ID == 0 {
		l.ID = s.id()
	}
	s.Ledgers[l.ID] = l
	return l
}

func (s *Store) SeedLineItem(li *ledger.LineItem) *ledger.LineItem {
	if li.ID == 0 {
		li.ID = s.id()
	}
	s.Items[li.ID] = li
	return li
}

func (s *Store) SeedLevel(lv approvalflow.Level) {
	if lv.ID == 0 {
		lv.ID = s.id()
	}
	s.Levels = append(s.Levels, lv)
}

// ---- placement.Repository ----

type placementRepo struct{ s *Store }

func (r placementRepo) GetByPlacementID(ctx context.Context, placementID string) (*placement.Placement, error) {
	for _, p := range r.s.Placements {
		if p.PlacementID == placementID {
			return p, nil
		}
	}
	return nil, ErrNotFound
}
func (r placementRepo) GetByID(ctx context.Context, id uint64) (*placement.Placement, error) {
	p, ok := r.s.Placements[id]
	if !ok {
		return nil, ErrNotFound
	}
	return p, nil
}
func (r placementRepo) ListRatePeriods(ctx context.Context, placementNumericID uint64) ([]placement.BillingRatePeriod, error) {
	out := append([]placement.BillingRatePeriod(nil), r.s.RatePeriods[placementNumericID]...)
	sort.Slice(out, func(i, j int) bool { return out[i].EffectiveFrom.Before(out[j].EffectiveFrom) })
	return out, nil
}
func (r placementRepo) CreateRatePeriod(ctx context.Context, p *placement.BillingRatePeriod) error {
	if p.ID == 0 {
		p.ID = r.s.id()
	}
	r.s.RatePeriods[p.PlacementID] = append(r.s.RatePeriods[p.PlacementID], *p)
	return nil
}
func (r placementRepo) Create(ctx context.Context, p *placement.Placement) error {
	r.s.SeedPlacement(p)
	return nil
}

// ---- timesheet.Repository ----

type entryRepo struct{ s *Store }

func (r entryRepo) Create(ctx context.Context, e *timesheet.HourEntry) error {
	r.s.SeedEntry(e)
	return nil
}
func (r entryRepo) GetByIDs(ctx context.Context, ids []uint64) ([]timesheet.HourEntry, error) {
	var out []timesheet.HourEntry
	for _, id := range ids {
		if e, ok := r.s.Entries[id]; ok {
			out = append(out, *e)
		}
	}
	return out, nil
}
func (r entryRepo) ListUnbilled(ctx context.Context, placementNumericID uint64, from, to time.Time) ([]timesheet.HourEntry, error) {
	var out []timesheet.HourEntry
	for _, e := range r.s.Entries {
		if e.PlacementID != placementNumericID || e.InvoiceRaised {
			continue
		}
		if e.Date.Before(from) || e.Date.After(to) {
			continue
		}
		out = append(out, *e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}
func (r entryRepo) SetInvoiceRaised(ctx context.Context, ids []uint64, raised bool) error {
	for _, id := range ids {
		if e, ok := r.s.Entries[id]; ok {
			e.InvoiceRaised = raised
		}
	}
	return nil
}
func (r entryRepo) CountRaised(ctx context.Context, ids []uint64) (int64, error) {
	var n int64
	for _, id := range ids {
		if e, ok := r.s.Entries[id]; ok && e.InvoiceRaised {
			n++
		}
	}
	return n, nil
}

// ---- ledger.Repository ----

type ledgerRepo struct{ s *Store }

func (r ledgerRepo) Create(ctx context.Context, l *ledger.Ledger) error {
	r.s.SeedLedger(l)
	return nil
}
func (r ledgerRepo) Save(ctx context.Context, l *ledger.Ledger) error {
	r.s.Ledgers[l.ID] = l
	return nil
}
func (r ledgerRepo) GetByLedgerID(ctx context.Context, ledgerID string) (*ledger.Ledger, error) {
	for _, l := range r.s.Ledgers {
		if l.LedgerID == ledgerID {
			return l, nil
		}
	}
	return nil, ErrNotFound
}
func (r ledgerRepo) GetByLedgerIDForUpdate(ctx context.Context, ledgerID string) (*ledger.Ledger, error) {
	return r.GetByLedgerID(ctx, ledgerID)
}

func (r ledgerRepo) CreateLineItem(ctx context.Context, li *ledger.LineItem) error {
	r.s.SeedLineItem(li)
	return nil
}
func (r ledgerRepo) SaveLineItem(ctx context.Context, li *ledger.LineItem) error {
	r.s.Items[li.ID] = li
	return nil
}
func (r ledgerRepo) GetLineItem(ctx context.Context, lineItemID string) (*ledger.LineItem, error) {
	for _, li := range r.s.Items {
		if li.LineItemID == lineItemID && !r.s.ItemDeleted[li.ID] {
			return li, nil
		}
	}
	return nil, ErrNotFound
}
func (r ledgerRepo) ListLineItems(ctx context.Context, ledgerNumericID uint64) ([]ledger.LineItem, error) {
	var out []ledger.LineItem
	for _, li := range r.s.Items {
		if li.LedgerID == ledgerNumericID && !r.s.ItemDeleted[li.ID] {
			out = append(out, *li)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
func (r ledgerRepo) SoftDeleteLineItem(ctx context.Context, lineItemID string) error {
	for _, li := range r.s.Items {
		if li.LineItemID == lineItemID {
			r.s.ItemDeleted[li.ID] = true
			return nil
		}
	}
	return ErrNotFound
}

func (r ledgerRepo) CreateAddress(ctx context.Context, a *ledger.Address) error {
	if a.ID == 0 {
		a.ID = r.s.id()
	}
	r.s.Addresses = append(r.s.Addresses, *a)
	return nil
}
func (r ledgerRepo) SaveAddress(ctx context.Context, a *ledger.Address) error {
	for i := range r.s.Addresses {
		if r.s.Addresses[i].ID == a.ID {
			r.s.Addresses[i] = *a
			return nil
		}
	}
	return ErrNotFound
}
func (r ledgerRepo) ListAddresses(ctx context.Context, ledgerNumericID uint64) ([]ledger.Address, error) {
	var out []ledger.Address
	for _, a := range r.s.Addresses {
		if a.LedgerID == ledgerNumericID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r ledgerRepo) CountByReference(ctx context.Context, referenceID string) (int64, error) {
	var n int64
	for _, l := range r.s.Ledgers {
		if l.ReferenceID == referenceID {
			n++
		}
	}
	return n, nil
}
func (r ledgerRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(r.s.Ledgers)), nil
}

// ---- approvalflow.Repository ----

type flowRepo struct{ s *Store }

func (r flowRepo) ListLevels(ctx context.Context, ownerType approvalflow.OwnerType, ownerID string) ([]approvalflow.Level, error) {
	var out []approvalflow.Level
	for _, lv := range r.s.Levels {
		if lv.OwnerType == ownerType && lv.OwnerID == ownerID {
			out = append(out, lv)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Level < out[j].Level })
	return out, nil
}
func (r flowRepo) CreateLevel(ctx context.Context, l *approvalflow.Level) error {
	r.s.SeedLevel(*l)
	return nil
}
func (r flowRepo) AppendTrack(ctx context.Context, t *approvalflow.Track) error {
	if t.ID == 0 {
		t.ID = r.s.id()
	}
	r.s.TrackRows = append(r.s.TrackRows, *t)
	return nil
}
func (r flowRepo) ListTracks(ctx context.Context, ledgerNumericID uint64) ([]approvalflow.Track, error) {
	var out []approvalflow.Track
	for _, t := range r.s.TrackRows {
		if t.LedgerID == ledgerNumericID {
			out = append(out, t)
		}
	}
	return out, nil
}

// ---- activity.Repository ----

type activityRepo struct{ s *Store }

func (r activityRepo) Append(ctx context.Context, l *activity.Log) error {
	if l.ID == 0 {
		l.ID = r.s.id()
	}
	r.s.Logs = append(r.s.Logs, *l)
	return nil
}
func (r activityRepo) ListByEntity(ctx context.Context, entityType, entityID string) ([]activity.Log, error) {
	var out []activity.Log
	for _, l := range r.s.Logs {
		if l.EntityType == entityType && l.EntityID == entityID {
			out = append(out, l)
		}
	}
	return out, nil
}

// ---- outbox.Repository ----

type outboxRepo struct{ s *Store }

func (r outboxRepo) Insert(ctx context.Context, e *outbox.Event) error {
	if e.ID == 0 {
		e.ID = r.s.id()
	}
	r.s.Events = append(r.s.Events, *e)
	return nil
}
func (r outboxRepo) ListPending(ctx context.Context, limit int) ([]outbox.Event, error) {
	var out []outbox.Event
	for _, e := range r.s.Events {
		if e.Status == outbox.StatusPending {
			out = append(out, e)
		}
		if len(out) == limit {
			break
		}
	}
	return out, nil
}
func (r outboxRepo) MarkSent(ctx context.Context, eventID string) error {
	for i := range r.s.Events {
		if r.s.Events[i].EventID == eventID {
			r.s.Events[i].Status = outbox.StatusSent
			return nil
		}
	}
	return ErrNotFound
}
func (r outboxRepo) MarkFailed(ctx context.Context, eventID string, cause string) error {
	for i := range r.s.Events {
		if r.s.Events[i].EventID == eventID {
			r.s.Events[i].Status = outbox.StatusFailed
			r.s.Events[i].Attempts++
			r.s.Events[i].LastError = cause
			return nil
		}
	}
	return ErrNotFound
}
