package uowmock

import (
	"context"
	"errors"

	"github.com/asifshaikgit/workforce-sub002/internal/domain/ledger"
	"github.com/asifshaikgit/workforce-sub002/internal/domain/uow"
)

// Ensure compile-time compliance
var _ uow.UnitOfWork = (*UoW)(nil)

var errUnimplemented = errors.New("uowmock: method not implemented")

// UoW is a function-backed mock that satisfies uow.UnitOfWork.
// Fill in the function fields you need in a test; unfilled ones return errUnimplemented.
type UoW struct {
	WithinTxFn       func(ctx context.Context, fn func(r uow.Repos) error) error
	WithinLedgerTxFn func(ctx context.Context, ledgerID string, fn func(r uow.Repos, l *ledger.Ledger) error) error
}

// Convenience fluent setters
func New() *UoW { return &UoW{} }
func (m *UoW) WithWithinTx(fn func(context.Context, func(uow.Repos) error) error) *UoW {
	m.WithinTxFn = fn
	return m
}
func (m *UoW) WithWithinLedgerTx(fn func(context.Context, string, func(uow.Repos, *ledger.Ledger) error) error) *UoW {
	m.WithinLedgerTxFn = fn
	return m
}
func (m *UoW) Reset() { *m = UoW{} }

// Passthrough wires both transaction methods straight to the given repo set
// with no transactional behavior. WithinLedgerTx resolves the ledger through
// Repos.Ledgers before invoking fn, mirroring the real implementation.
func Passthrough(r uow.Repos) *UoW {
	return &UoW{
		WithinTxFn: func(ctx context.Context, fn func(uow.Repos) error) error {
			return fn(r)
		},
		WithinLedgerTxFn: func(ctx context.Context, ledgerID string, fn func(uow.Repos, *ledger.Ledger) error) error {
			l, err := r.Ledgers.GetByLedgerIDForUpdate(ctx, ledgerID)
			if err != nil {
				return err
			}
			return fn(r, l)
		},
	}
}

// Methods implementing UnitOfWork
func (m *UoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	if m.WithinTxFn != nil {
		return m.WithinTxFn(ctx, fn)
	}
	return errUnimplemented
}
func (m *UoW) WithinLedgerTx(ctx context.Context, ledgerID string, fn func(r uow.Repos, l *ledger.Ledger) error) error {
	if m.WithinLedgerTxFn != nil {
		return m.WithinLedgerTxFn(ctx, ledgerID, fn)
	}
	return errUnimplemented
}
