package consolidation

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/asifshaikgit/workforce-sub002/internal/domain/fault"
	"github.com/asifshaikgit/workforce-sub002/internal/domain/ledger"
	"github.com/asifshaikgit/workforce-sub002/internal/domain/placement"
	"github.com/asifshaikgit/workforce-sub002/internal/domain/timesheet"
	"github.com/asifshaikgit/workforce-sub002/internal/usecase/rate"
)

// Candidate is one rate-consistent draft line item produced from approved
// hour entries, carrying the source entry ids for the invoice_raised flip.
type Candidate struct {
	PlacementID  uint64    `json:"-"`
	EmployeeID   string    `json:"employee_id"`
	RatePeriodID uint64    `json:"rate_period_id"`
	Description  string    `json:"description"`
	RegularHours float64   `json:"hours"`
	OTHours      float64   `json:"ot_hours"`
	RegularRate  float64   `json:"rate"`
	OTRate       float64   `json:"ot_rate"`
	Amount       float64   `json:"amount"`
	HourEntryIDs []uint64  `json:"hour_entry_ids"`
	FromDate     time.Time `json:"from_date"`
	ToDate       time.Time `json:"to_date"`
}

type Consolidator struct {
	rates   *rate.Resolver
	entries timesheet.Repository
	places  placement.Repository
}

func NewConsolidator(r *rate.Resolver, e timesheet.Repository, p placement.Repository) *Consolidator {
	return &Consolidator{rates: r, entries: e, places: p}
}

// BuildForPlacement loads unbilled approved entries in [from, to] and groups them.
func (c *Consolidator) BuildForPlacement(ctx context.Context, placementID string, from, to time.Time) ([]Candidate, error) {
	pl, err := c.places.GetByPlacementID(ctx, placementID)
	if err != nil {
		return nil, fault.NotFound("placement %s not found", placementID)
	}
	entries, err := c.entries.ListUnbilled(ctx, pl.ID, from, to)
	if err != nil {
		return nil, err
	}
	return c.Build(ctx, pl.ID, entries)
}

// Build groups entries by the rate period in force on each entry's date. The
// key is the rate-period id, not a contiguous date range: a period that recurs
// non-contiguously in the input still accumulates into a single group. Hours
// are kept at two-decimal precision. Groupings and amounts are independent of
// input order; only the description's displayed date range follows the
// earliest/latest entry dates.
func (c *Consolidator) Build(ctx context.Context, placementNumericID uint64, entries []timesheet.HourEntry) ([]Candidate, error) {
	if len(entries) == 0 {
		return nil, nil
	}
	schedule, err := c.rates.ScheduleFor(ctx, placementNumericID)
	if err != nil {
		return nil, err
	}

	groups := make(map[uint64]*Candidate)
	for _, e := range entries {
		eff, err := schedule.EffectiveFor(e.Date)
		if err != nil {
			return nil, err
		}
		g, ok := groups[eff.RatePeriodID]
		if !ok {
			g = &Candidate{
				PlacementID:  placementNumericID,
				EmployeeID:   e.EmployeeID,
				RatePeriodID: eff.RatePeriodID,
				RegularRate:  eff.RegularRate,
				OTRate:       eff.OTRate,
				FromDate:     e.Date,
				ToDate:       e.Date,
			}
			groups[eff.RatePeriodID] = g
		}
		g.RegularHours = ledger.Round2(g.RegularHours + ledger.Round2(e.RegularHours))
		g.OTHours = ledger.Round2(g.OTHours + ledger.Round2(e.OTHours))
		g.HourEntryIDs = append(g.HourEntryIDs, e.ID)
		if e.Date.Before(g.FromDate) {
			g.FromDate = e.Date
		}
		if e.Date.After(g.ToDate) {
			g.ToDate = e.Date
		}
	}

	out := make([]Candidate, 0, len(groups))
	for _, g := range groups {
		g.Amount = ledger.Round2(g.RegularHours*g.RegularRate + g.OTHours*g.OTRate)
		g.Description = fmt.Sprintf("Timesheet between %s and %s for employee",
			g.FromDate.Format("2006-01-02"), g.ToDate.Format("2006-01-02"))
		sort.Slice(g.HourEntryIDs, func(i, j int) bool { return g.HourEntryIDs[i] < g.HourEntryIDs[j] })
		out = append(out, *g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].RatePeriodID < out[j].RatePeriodID })
	return out, nil
}
