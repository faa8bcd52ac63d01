package timesheet

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, e *HourEntry) error
	GetByIDs(ctx context.Context, ids []uint64) ([]HourEntry, error)
	// ListUnbilled returns approved entries for the placement with
	// invoice_raised=false inside [from, to], ordered by date asc.
	ListUnbilled(ctx context.Context, placementNumericID uint64, from, to time.Time) ([]HourEntry, error)
	// SetInvoiceRaised flips the reservation flag on the given entries.
	SetInvoiceRaised(ctx context.Context, ids []uint64, raised bool) error
	// CountRaised reports how many of ids already carry invoice_raised=true.
	CountRaised(ctx context.Context, ids []uint64) (int64, error)
}
