package mysql

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	ledgerDomain "github.com/asifshaikgit/workforce-sub002/internal/domain/ledger"
)

type LedgerRepository struct{ db *gorm.DB }

func NewLedgerRepository(db *gorm.DB) *LedgerRepository { return &LedgerRepository{db: db} }

func (r *LedgerRepository) Create(ctx context.Context, l *ledgerDomain.Ledger) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *LedgerRepository) Save(ctx context.Context, l *ledgerDomain.Ledger) error {
	return r.db.WithContext(ctx).Save(l).Error
}

func (r *LedgerRepository) GetByLedgerID(ctx context.Context, ledgerID string) (*ledgerDomain.Ledger, error) {
	var out ledgerDomain.Ledger
	res := r.db.WithContext(ctx).Where("ledger_id = ?", ledgerID).First(&out)
	return &out, res.Error
}

// GetByLedgerIDForUpdate takes a row lock held for the rest of the transaction.
func (r *LedgerRepository) GetByLedgerIDForUpdate(ctx context.Context, ledgerID string) (*ledgerDomain.Ledger, error) {
	var out ledgerDomain.Ledger
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("ledger_id = ?", ledgerID).
		First(&out)
	return &out, res.Error
}

func (r *LedgerRepository) CreateLineItem(ctx context.Context, li *ledgerDomain.LineItem) error {
	return r.db.WithContext(ctx).Create(li).Error
}

func (r *LedgerRepository) SaveLineItem(ctx context.Context, li *ledgerDomain.LineItem) error {
	return r.db.WithContext(ctx).Save(li).Error
}

func (r *LedgerRepository) GetLineItem(ctx context.Context, lineItemID string) (*ledgerDomain.LineItem, error) {
	var out ledgerDomain.LineItem
	res := r.db.WithContext(ctx).Where("line_item_id = ?", lineItemID).First(&out)
	return &out, res.Error
}

func (r *LedgerRepository) ListLineItems(ctx context.Context, ledgerNumericID uint64) ([]ledgerDomain.LineItem, error) {
	var out []ledgerDomain.LineItem
	res := r.db.WithContext(ctx).
		Where("ledger_id = ?", ledgerNumericID).
		Order("id ASC").
		Find(&out)
	return out, res.Error
}

func (r *LedgerRepository) SoftDeleteLineItem(ctx context.Context, lineItemID string) error {
	return r.db.WithContext(ctx).
		Where("line_item_id = ?", lineItemID).
		Delete(&ledgerDomain.LineItem{}).Error
}

func (r *LedgerRepository) CreateAddress(ctx context.Context, a *ledgerDomain.Address) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *LedgerRepository) SaveAddress(ctx context.Context, a *ledgerDomain.Address) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *LedgerRepository) ListAddresses(ctx context.Context, ledgerNumericID uint64) ([]ledgerDomain.Address, error) {
	var out []ledgerDomain.Address
	res := r.db.WithContext(ctx).
		Where("ledger_id = ?", ledgerNumericID).
		Order("address_type ASC").
		Find(&out)
	return out, res.Error
}

func (r *LedgerRepository) CountByReference(ctx context.Context, referenceID string) (int64, error) {
	var n int64
	res := r.db.WithContext(ctx).
		Model(&ledgerDomain.Ledger{}).
		Unscoped().
		Where("reference_id = ?", referenceID).
		Count(&n)
	return n, res.Error
}

// Count includes soft-deleted rows so reference numbering never reuses a slot.
func (r *LedgerRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	res := r.db.WithContext(ctx).Model(&ledgerDomain.Ledger{}).Unscoped().Count(&n)
	return n, res.Error
}
