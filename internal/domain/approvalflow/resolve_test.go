package approvalflow_test

import (
	"context"
	"errors"
	"testing"

	"github.com/asifshaikgit/workforce-sub002/internal/domain/approvalflow"
	"github.com/asifshaikgit/workforce-sub002/internal/domain/ledger"
	"github.com/asifshaikgit/workforce-sub002/internal/domain/placement"
	"github.com/asifshaikgit/workforce-sub002/internal/testutil/flowmock"
	"github.com/asifshaikgit/workforce-sub002/internal/testutil/placementmock"
)

const (
	companyID    = "cccccccccccccccccccccccccccccccc"
	placementHex = "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"
)

func placements() *placementmock.Repo {
	return &placementmock.Repo{
		GetByIDFn: func(ctx context.Context, id uint64) (*placement.Placement, error) {
			return &placement.Placement{ID: id, PlacementID: placementHex, CompanyID: companyID}, nil
		},
	}
}

func TestResolveLevels_SinglePlacementUsesPlacementChain(t *testing.T) {
	flows := &flowmock.Repo{
		ListLevelsFn: func(ctx context.Context, ownerType approvalflow.OwnerType, ownerID string) ([]approvalflow.Level, error) {
			if ownerType != approvalflow.OwnerPlacement || ownerID != placementHex {
				t.Fatalf("unexpected lookup: %s %s", ownerType, ownerID)
			}
			return []approvalflow.Level{{Level: 1}, {Level: 2}}, nil
		},
	}
	items := []ledger.LineItem{{PlacementID: 7}, {PlacementID: 7}}

	levels, err := approvalflow.ResolveLevels(context.Background(), flows, placements(), companyID, items)
	if err != nil {
		t.Fatalf("ResolveLevels: %v", err)
	}
	if len(levels) != 2 {
		t.Fatalf("want placement chain, got %+v", levels)
	}
}

func TestResolveLevels_EmptyPlacementChainFallsBackToCompany(t *testing.T) {
	var lookups []string
	flows := &flowmock.Repo{
		ListLevelsFn: func(ctx context.Context, ownerType approvalflow.OwnerType, ownerID string) ([]approvalflow.Level, error) {
			lookups = append(lookups, string(ownerType))
			if ownerType == approvalflow.OwnerCompany {
				if ownerID != companyID {
					t.Fatalf("wrong company: %s", ownerID)
				}
				return []approvalflow.Level{{Level: 1}}, nil
			}
			return nil, nil
		},
	}
	items := []ledger.LineItem{{PlacementID: 7}}

	levels, err := approvalflow.ResolveLevels(context.Background(), flows, placements(), companyID, items)
	if err != nil {
		t.Fatalf("ResolveLevels: %v", err)
	}
	if len(levels) != 1 {
		t.Fatalf("want company chain, got %+v", levels)
	}
	if len(lookups) != 2 || lookups[0] != "placement" || lookups[1] != "company" {
		t.Fatalf("lookup order: %v", lookups)
	}
}

func TestResolveLevels_MultiPlacementEscalatesToCompany(t *testing.T) {
	flows := &flowmock.Repo{
		ListLevelsFn: func(ctx context.Context, ownerType approvalflow.OwnerType, ownerID string) ([]approvalflow.Level, error) {
			if ownerType != approvalflow.OwnerCompany {
				t.Fatalf("multi-placement ledgers must use the company chain, got %s", ownerType)
			}
			return []approvalflow.Level{{Level: 1}}, nil
		},
	}
	items := []ledger.LineItem{{PlacementID: 7}, {PlacementID: 8}}

	levels, err := approvalflow.ResolveLevels(context.Background(), flows, placements(), companyID, items)
	if err != nil {
		t.Fatalf("ResolveLevels: %v", err)
	}
	if len(levels) != 1 {
		t.Fatalf("want company chain, got %+v", levels)
	}
}

func TestResolveLevels_NoChainConfigured(t *testing.T) {
	flows := &flowmock.Repo{
		ListLevelsFn: func(ctx context.Context, ownerType approvalflow.OwnerType, ownerID string) ([]approvalflow.Level, error) {
			return nil, nil
		},
	}
	levels, err := approvalflow.ResolveLevels(context.Background(), flows, placements(), companyID,
		[]ledger.LineItem{{PlacementID: 7}})
	if err != nil {
		t.Fatalf("ResolveLevels: %v", err)
	}
	if len(levels) != 0 {
		t.Fatalf("want no chain, got %+v", levels)
	}
}

func TestResolveLevels_PlacementLookupError(t *testing.T) {
	dbErr := errors.New("gone")
	places := &placementmock.Repo{
		GetByIDFn: func(ctx context.Context, id uint64) (*placement.Placement, error) { return nil, dbErr },
	}
	_, err := approvalflow.ResolveLevels(context.Background(), &flowmock.Repo{}, places, companyID,
		[]ledger.LineItem{{PlacementID: 7}})
	if !errors.Is(err, dbErr) {
		t.Fatalf("want lookup error back, got %v", err)
	}
}
