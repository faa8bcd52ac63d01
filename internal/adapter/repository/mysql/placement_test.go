package mysql

import (
	"context"
	"errors"
	"testing"
	"time"

	"gorm.io/gorm"

	placementDomain "github.com/asifshaikgit/workforce-sub002/internal/domain/placement"
)

func TestPlacementRepository_CreateAndLookups(t *testing.T) {
	db := openTestDB(t)
	repo := NewPlacementRepository(db)
	ctx := context.Background()

	p := &placementDomain.Placement{
		PlacementID: "pl000000000000000000000000000001",
		EmployeeID:  "ee000000000000000000000000000001",
		CompanyID:   "c0000000000000000000000000000001",
		JobTitle:    "Data Engineer",
		StartDate:   time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
	}
	if err := repo.Create(ctx, p); err != nil {
		t.Fatalf("Create: %v", err)
	}

	byExt, err := repo.GetByPlacementID(ctx, p.PlacementID)
	if err != nil {
		t.Fatalf("GetByPlacementID: %v", err)
	}
	byNum, err := repo.GetByID(ctx, p.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if byExt.ID != byNum.ID || byExt.CompanyID != "c0000000000000000000000000000001" {
		t.Fatalf("lookups disagree: %+v vs %+v", byExt, byNum)
	}

	if _, err := repo.GetByPlacementID(ctx, "pl000000000000000000000000000099"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("want ErrRecordNotFound, got %v", err)
	}
}

func TestPlacementRepository_RatePeriods(t *testing.T) {
	db := openTestDB(t)
	repo := NewPlacementRepository(db)
	ctx := context.Background()

	p := &placementDomain.Placement{
		PlacementID: "pl000000000000000000000000000001",
		EmployeeID:  "ee000000000000000000000000000001",
		CompanyID:   "c0000000000000000000000000000001",
	}
	if err := repo.Create(ctx, p); err != nil {
		t.Fatalf("Create: %v", err)
	}

	febTo := time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC)
	periods := []*placementDomain.BillingRatePeriod{
		{
			PlacementID:   p.ID,
			EffectiveFrom: time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
			EffectiveTo:   &febTo,
			RegularRate:   90,
			OTRate:        135,
			DiscountType:  placementDomain.DiscountPercent,
			DiscountValue: 10,
		},
		{
			PlacementID:   p.ID,
			EffectiveFrom: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
			RegularRate:   80,
			OTRate:        120,
		},
	}
	for _, rp := range periods {
		if err := repo.CreateRatePeriod(ctx, rp); err != nil {
			t.Fatalf("CreateRatePeriod: %v", err)
		}
	}
	// A period for another placement must not leak in.
	other := &placementDomain.Placement{PlacementID: "pl000000000000000000000000000002"}
	if err := repo.Create(ctx, other); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := repo.CreateRatePeriod(ctx, &placementDomain.BillingRatePeriod{
		PlacementID:   other.ID,
		EffectiveFrom: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		RegularRate:   60,
	}); err != nil {
		t.Fatalf("CreateRatePeriod: %v", err)
	}

	got, err := repo.ListRatePeriods(ctx, p.ID)
	if err != nil {
		t.Fatalf("ListRatePeriods: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("want 2 rate periods, got %d", len(got))
	}
	if !got[0].EffectiveFrom.Before(got[1].EffectiveFrom) {
		t.Fatalf("periods not ordered by effective_from: %v, %v", got[0].EffectiveFrom, got[1].EffectiveFrom)
	}
	if got[1].EffectiveTo == nil || !got[1].EffectiveTo.Equal(febTo) {
		t.Fatalf("effective_to did not round-trip: %v", got[1].EffectiveTo)
	}
	if got[1].DiscountType != placementDomain.DiscountPercent || got[1].DiscountValue != 10 {
		t.Fatalf("discount fields lost: %+v", got[1])
	}
}
