package ledger

import "context"

type Repository interface {
	Create(ctx context.Context, l *Ledger) error
	Save(ctx context.Context, l *Ledger) error
	GetByLedgerID(ctx context.Context, ledgerID string) (*Ledger, error)
	// GetByLedgerIDForUpdate locks the ledger row for the duration of the
	// surrounding transaction.
	GetByLedgerIDForUpdate(ctx context.Context, ledgerID string) (*Ledger, error)

	CreateLineItem(ctx context.Context, li *LineItem) error
	SaveLineItem(ctx context.Context, li *LineItem) error
	GetLineItem(ctx context.Context, lineItemID string) (*LineItem, error)
	// ListLineItems returns the ledger's non-deleted line items ordered by id asc.
	ListLineItems(ctx context.Context, ledgerNumericID uint64) ([]LineItem, error)
	// SoftDeleteLineItem marks the item deleted; the item stops counting toward
	// totals and releases its hour entries.
	SoftDeleteLineItem(ctx context.Context, lineItemID string) error

	CreateAddress(ctx context.Context, a *Address) error
	SaveAddress(ctx context.Context, a *Address) error
	ListAddresses(ctx context.Context, ledgerNumericID uint64) ([]Address, error)

	// CountByReference reports whether a reference id is already taken.
	CountByReference(ctx context.Context, referenceID string) (int64, error)
	// Count returns the total number of ledgers including soft-deleted rows,
	// the base for reference-id generation.
	Count(ctx context.Context) (int64, error)
}
