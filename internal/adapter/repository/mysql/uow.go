package mysql

import (
	"context"

	"gorm.io/gorm"

	ledgerDomain "github.com/asifshaikgit/workforce-sub002/internal/domain/ledger"
	"github.com/asifshaikgit/workforce-sub002/internal/domain/uow"
)

type GormUoW struct{ db *gorm.DB }

func NewGormUoW(db *gorm.DB) *GormUoW { return &GormUoW{db: db} }

func reposFor(tx *gorm.DB) uow.Repos {
	return uow.Repos{
		Placements:  &PlacementRepository{db: tx},
		HourEntries: &HourEntryRepository{db: tx},
		Ledgers:     &LedgerRepository{db: tx},
		Flows:       &ApprovalFlowRepository{db: tx},
		Activities:  &ActivityRepository{db: tx},
		Outbox:      &OutboxRepository{db: tx},
	}
}

func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(reposFor(tx))
	})
}

func (u *GormUoW) WithinLedgerTx(ctx context.Context, ledgerID string, fn func(r uow.Repos, l *ledgerDomain.Ledger) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := reposFor(tx)
		// lock the ledger row up-front to prevent races
		l, err := r.Ledgers.GetByLedgerIDForUpdate(ctx, ledgerID)
		if err != nil {
			return err
		}
		return fn(r, l)
	})
}
