package approvalflow

import (
	"context"

	"github.com/asifshaikgit/workforce-sub002/internal/domain/ledger"
	"github.com/asifshaikgit/workforce-sub002/internal/domain/placement"
)

// ResolveLevels picks the approval configuration governing a ledger. When the
// line items reference exactly one placement, that placement's configuration
// applies; items spanning more than one placement escalate to the owning
// company's configuration. An empty result means no approval chain is
// configured and the ledger can be approved without level progression.
func ResolveLevels(ctx context.Context, flows Repository, places placement.Repository, companyID string, items []ledger.LineItem) ([]Level, error) {
	distinct := make(map[uint64]struct{})
	for _, li := range items {
		if li.PlacementID != 0 {
			distinct[li.PlacementID] = struct{}{}
		}
	}
	if len(distinct) == 1 {
		var placementNumericID uint64
		for id := range distinct {
			placementNumericID = id
		}
		pl, err := places.GetByID(ctx, placementNumericID)
		if err != nil {
			return nil, err
		}
		levels, err := flows.ListLevels(ctx, OwnerPlacement, pl.PlacementID)
		if err != nil {
			return nil, err
		}
		if len(levels) > 0 {
			return levels, nil
		}
		// No placement-level chain configured; the company chain applies.
	}
	return flows.ListLevels(ctx, OwnerCompany, companyID)
}
