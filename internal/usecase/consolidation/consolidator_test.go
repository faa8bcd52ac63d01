package consolidation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asifshaikgit/workforce-sub002/internal/domain/fault"
	"github.com/asifshaikgit/workforce-sub002/internal/domain/placement"
	"github.com/asifshaikgit/workforce-sub002/internal/domain/timesheet"
	"github.com/asifshaikgit/workforce-sub002/internal/testutil/placementmock"
	"github.com/asifshaikgit/workforce-sub002/internal/testutil/timesheetmock"
	"github.com/asifshaikgit/workforce-sub002/internal/usecase/rate"
)

func d(y int, m time.Month, day int) time.Time {
	return time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
}

func dp(y int, m time.Month, day int) *time.Time {
	t := d(y, m, day)
	return &t
}

func newConsolidator(periods []placement.BillingRatePeriod) *Consolidator {
	places := &placementmock.Repo{
		ListRatePeriodsFn: func(ctx context.Context, placementNumericID uint64) ([]placement.BillingRatePeriod, error) {
			return periods, nil
		},
	}
	return NewConsolidator(rate.NewResolver(places), &timesheetmock.Repo{}, places)
}

func entry(id uint64, date time.Time, reg, ot float64) timesheet.HourEntry {
	return timesheet.HourEntry{ID: id, EmployeeID: "emp1", Date: date, RegularHours: reg, OTHours: ot}
}

func TestBuild_SplitsAtRateBoundary(t *testing.T) {
	// 80/120 through Jan 15, 90/135 after: two line items with separate sums
	c := newConsolidator([]placement.BillingRatePeriod{
		{ID: 1, EffectiveFrom: d(2025, 1, 1), EffectiveTo: dp(2025, 1, 15), RegularRate: 80, OTRate: 120},
		{ID: 2, EffectiveFrom: d(2025, 1, 16), RegularRate: 90, OTRate: 135},
	})

	entries := []timesheet.HourEntry{
		entry(1, d(2025, 1, 13), 8, 0),
		entry(2, d(2025, 1, 14), 8, 2),
		entry(3, d(2025, 1, 15), 8, 0),
		entry(4, d(2025, 1, 16), 8, 0),
		entry(5, d(2025, 1, 17), 8, 1),
	}
	got, err := c.Build(context.Background(), 1, entries)
	require.NoError(t, err)
	require.Len(t, got, 2)

	first := got[0]
	assert.Equal(t, uint64(1), first.RatePeriodID)
	assert.Equal(t, 24.0, first.RegularHours)
	assert.Equal(t, 2.0, first.OTHours)
	assert.Equal(t, 80.0, first.RegularRate)
	assert.Equal(t, 2160.0, first.Amount) // 24*80 + 2*120
	assert.Equal(t, []uint64{1, 2, 3}, first.HourEntryIDs)
	assert.Equal(t, "Timesheet between 2025-01-13 and 2025-01-15 for employee", first.Description)

	second := got[1]
	assert.Equal(t, uint64(2), second.RatePeriodID)
	assert.Equal(t, 16.0, second.RegularHours)
	assert.Equal(t, 1.0, second.OTHours)
	assert.Equal(t, 1575.0, second.Amount) // 16*90 + 1*135
	assert.Equal(t, []uint64{4, 5}, second.HourEntryIDs)
}

func TestBuild_OrderIndependent(t *testing.T) {
	c := newConsolidator([]placement.BillingRatePeriod{
		{ID: 1, EffectiveFrom: d(2025, 1, 1), EffectiveTo: dp(2025, 1, 15), RegularRate: 80, OTRate: 120},
		{ID: 2, EffectiveFrom: d(2025, 1, 16), RegularRate: 90, OTRate: 135},
	})

	forward := []timesheet.HourEntry{
		entry(1, d(2025, 1, 13), 8, 0),
		entry(2, d(2025, 1, 16), 8, 0),
		entry(3, d(2025, 1, 14), 4, 1),
	}
	backward := []timesheet.HourEntry{forward[2], forward[1], forward[0]}

	a, err := c.Build(context.Background(), 1, forward)
	require.NoError(t, err)
	b, err := c.Build(context.Background(), 1, backward)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestBuild_NonContiguousSamePeriodMergesIntoOneGroup(t *testing.T) {
	// period 1 covers Jan, period 2 covers only Feb, then period 1 resumes
	// never happens with well-formed data, but grouping is by period id, not by run
	c := newConsolidator([]placement.BillingRatePeriod{
		{ID: 1, EffectiveFrom: d(2025, 1, 1), RegularRate: 80, OTRate: 120},
		{ID: 2, EffectiveFrom: d(2025, 2, 1), EffectiveTo: dp(2025, 2, 28), RegularRate: 90, OTRate: 135},
	})

	entries := []timesheet.HourEntry{
		entry(1, d(2025, 1, 20), 8, 0), // period 1
		entry(2, d(2025, 2, 10), 8, 0), // period 2 (overlap: later from wins)
		entry(3, d(2025, 3, 5), 8, 0),  // period 1 again
	}
	got, err := c.Build(context.Background(), 1, entries)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, uint64(1), got[0].RatePeriodID)
	assert.Equal(t, 16.0, got[0].RegularHours)
	assert.Equal(t, []uint64{1, 3}, got[0].HourEntryIDs)
	// displayed range spans the gap
	assert.Equal(t, d(2025, 1, 20), got[0].FromDate)
	assert.Equal(t, d(2025, 3, 5), got[0].ToDate)

	assert.Equal(t, uint64(2), got[1].RatePeriodID)
	assert.Equal(t, []uint64{2}, got[1].HourEntryIDs)
}

func TestBuild_HoursRoundedToTwoDecimals(t *testing.T) {
	c := newConsolidator([]placement.BillingRatePeriod{
		{ID: 1, EffectiveFrom: d(2025, 1, 1), RegularRate: 100, OTRate: 150},
	})
	entries := []timesheet.HourEntry{
		entry(1, d(2025, 1, 2), 7.333, 0),
		entry(2, d(2025, 1, 3), 7.333, 0),
		entry(3, d(2025, 1, 4), 7.334, 0),
	}
	got, err := c.Build(context.Background(), 1, entries)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 21.99, got[0].RegularHours) // 7.33+7.33+7.33 after per-entry rounding
	assert.Equal(t, 2199.0, got[0].Amount)
}

func TestBuild_EmptyInput(t *testing.T) {
	c := newConsolidator(nil)
	got, err := c.Build(context.Background(), 1, nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestBuild_EntryOutsideAnyPeriodFails(t *testing.T) {
	c := newConsolidator([]placement.BillingRatePeriod{
		{ID: 1, EffectiveFrom: d(2025, 1, 10), RegularRate: 100, OTRate: 150},
	})
	entries := []timesheet.HourEntry{entry(1, d(2025, 1, 5), 8, 0)}
	_, err := c.Build(context.Background(), 1, entries)
	require.Error(t, err)
	assert.Equal(t, fault.KindNotFound, fault.KindOf(err))
}

func TestBuildForPlacement_UnknownPlacement(t *testing.T) {
	places := &placementmock.Repo{
		GetByPlacementIDFn: func(ctx context.Context, placementID string) (*placement.Placement, error) {
			return nil, context.Canceled
		},
	}
	c := NewConsolidator(rate.NewResolver(places), &timesheetmock.Repo{}, places)

	_, err := c.BuildForPlacement(context.Background(), "deadbeef", d(2025, 1, 1), d(2025, 1, 31))
	require.Error(t, err)
	assert.Equal(t, fault.KindNotFound, fault.KindOf(err))
}

func TestBuildForPlacement_UsesUnbilledEntries(t *testing.T) {
	pl := &placement.Placement{ID: 42, PlacementID: "deadbeef", EmployeeID: "emp1"}
	places := &placementmock.Repo{
		GetByPlacementIDFn: func(ctx context.Context, placementID string) (*placement.Placement, error) {
			return pl, nil
		},
		ListRatePeriodsFn: func(ctx context.Context, id uint64) ([]placement.BillingRatePeriod, error) {
			require.Equal(t, uint64(42), id)
			return []placement.BillingRatePeriod{{ID: 1, EffectiveFrom: d(2025, 1, 1), RegularRate: 100, OTRate: 150}}, nil
		},
	}
	entries := &timesheetmock.Repo{
		ListUnbilledFn: func(ctx context.Context, id uint64, from, to time.Time) ([]timesheet.HourEntry, error) {
			require.Equal(t, uint64(42), id)
			return []timesheet.HourEntry{entry(9, d(2025, 1, 7), 8, 0)}, nil
		},
	}
	c := NewConsolidator(rate.NewResolver(places), entries, places)

	got, err := c.BuildForPlacement(context.Background(), "deadbeef", d(2025, 1, 1), d(2025, 1, 31))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, []uint64{9}, got[0].HourEntryIDs)
	assert.Equal(t, 800.0, got[0].Amount)
}
