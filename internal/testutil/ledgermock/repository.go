package ledgermock

import (
	"context"

	domain "github.com/asifshaikgit/workforce-sub002/internal/domain/ledger"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
// Fill in the function fields each test needs; mutating methods default to a
// no-op, lookups to context.Canceled.
type Repo struct {
	CreateFn                 func(ctx context.Context, l *domain.Ledger) error
	SaveFn                   func(ctx context.Context, l *domain.Ledger) error
	GetByLedgerIDFn          func(ctx context.Context, ledgerID string) (*domain.Ledger, error)
	GetByLedgerIDForUpdateFn func(ctx context.Context, ledgerID string) (*domain.Ledger, error)

	CreateLineItemFn     func(ctx context.Context, li *domain.LineItem) error
	SaveLineItemFn       func(ctx context.Context, li *domain.LineItem) error
	GetLineItemFn        func(ctx context.Context, lineItemID string) (*domain.LineItem, error)
	ListLineItemsFn      func(ctx context.Context, ledgerNumericID uint64) ([]domain.LineItem, error)
	SoftDeleteLineItemFn func(ctx context.Context, lineItemID string) error

	CreateAddressFn func(ctx context.Context, a *domain.Address) error
	SaveAddressFn   func(ctx context.Context, a *domain.Address) error
	ListAddressesFn func(ctx context.Context, ledgerNumericID uint64) ([]domain.Address, error)

	CountByReferenceFn func(ctx context.Context, referenceID string) (int64, error)
	CountFn            func(ctx context.Context) (int64, error)
}

func (m *Repo) Create(ctx context.Context, l *domain.Ledger) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, l)
	}
	return nil
}
func (m *Repo) Save(ctx context.Context, l *domain.Ledger) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, l)
	}
	return nil
}
func (m *Repo) GetByLedgerID(ctx context.Context, ledgerID string) (*domain.Ledger, error) {
	if m.GetByLedgerIDFn != nil {
		return m.GetByLedgerIDFn(ctx, ledgerID)
	}
	return nil, context.Canceled
}
func (m *Repo) GetByLedgerIDForUpdate(ctx context.Context, ledgerID string) (*domain.Ledger, error) {
	if m.GetByLedgerIDForUpdateFn != nil {
		return m.GetByLedgerIDForUpdateFn(ctx, ledgerID)
	}
	return nil, context.Canceled
}

func (m *Repo) CreateLineItem(ctx context.Context, li *domain.LineItem) error {
	if m.CreateLineItemFn != nil {
		return m.CreateLineItemFn(ctx, li)
	}
	return nil
}
func (m *Repo) SaveLineItem(ctx context.Context, li *domain.LineItem) error {
	if m.SaveLineItemFn != nil {
		return m.SaveLineItemFn(ctx, li)
	}
	return nil
}
func (m *Repo) GetLineItem(ctx context.Context, lineItemID string) (*domain.LineItem, error) {
	if m.GetLineItemFn != nil {
		return m.GetLineItemFn(ctx, lineItemID)
	}
	return nil, context.Canceled
}
func (m *Repo) ListLineItems(ctx context.Context, ledgerNumericID uint64) ([]domain.LineItem, error) {
	if m.ListLineItemsFn != nil {
		return m.ListLineItemsFn(ctx, ledgerNumericID)
	}
	return nil, context.Canceled
}
func (m *Repo) SoftDeleteLineItem(ctx context.Context, lineItemID string) error {
	if m.SoftDeleteLineItemFn != nil {
		return m.SoftDeleteLineItemFn(ctx, lineItemID)
	}
	return nil
}

func (m *Repo) CreateAddress(ctx context.Context, a *domain.Address) error {
	if m.CreateAddressFn != nil {
		return m.CreateAddressFn(ctx, a)
	}
	return nil
}
func (m *Repo) SaveAddress(ctx context.Context, a *domain.Address) error {
	if m.SaveAddressFn != nil {
		return m.SaveAddressFn(ctx, a)
	}
	return nil
}
func (m *Repo) ListAddresses(ctx context.Context, ledgerNumericID uint64) ([]domain.Address, error) {
	if m.ListAddressesFn != nil {
		return m.ListAddressesFn(ctx, ledgerNumericID)
	}
	return nil, nil
}

func (m *Repo) CountByReference(ctx context.Context, referenceID string) (int64, error) {
	if m.CountByReferenceFn != nil {
		return m.CountByReferenceFn(ctx, referenceID)
	}
	return 0, nil
}
func (m *Repo) Count(ctx context.Context) (int64, error) {
	if m.CountFn != nil {
		return m.CountFn(ctx)
	}
	return 0, nil
}
