package uow

import (
	"context"

	"github.com/asifshaikgit/workforce-sub002/internal/domain/activity"
	"github.com/asifshaikgit/workforce-sub002/internal/domain/approvalflow"
	"github.com/asifshaikgit/workforce-sub002/internal/domain/ledger"
	"github.com/asifshaikgit/workforce-sub002/internal/domain/outbox"
	"github.com/asifshaikgit/workforce-sub002/internal/domain/placement"
	"github.com/asifshaikgit/workforce-sub002/internal/domain/timesheet"
)

// Repos bundles every repository bound to one transaction.
type Repos struct {
	Placements  placement.Repository
	HourEntries timesheet.Repository
	Ledgers     ledger.Repository
	Flows       approvalflow.Repository
	Activities  activity.Repository
	Outbox      outbox.Repository
}

type UnitOfWork interface {
	// WithinTx runs fn inside one database transaction; any error rolls the
	// whole unit back.
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// WithinLedgerTx locks the ledger row first, then passes it in.
	WithinLedgerTx(ctx context.Context, ledgerID string, fn func(r Repos, l *ledger.Ledger) error) error
}
