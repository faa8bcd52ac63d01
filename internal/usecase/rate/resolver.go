package rate

import (
	"context"
	"time"

	"github.com/asifshaikgit/workforce-sub002/internal/domain/fault"
	"github.com/asifshaikgit/workforce-sub002/internal/domain/ledger"
	"github.com/asifshaikgit/workforce-sub002/internal/domain/placement"
)

// Effective is the discounted rate pair in force for a placement on a date.
type Effective struct {
	RatePeriodID uint64
	RegularRate  float64
	OTRate       float64
}

// Schedule is a placement's rate periods loaded once, resolvable per date
// without further queries.
type Schedule struct {
	periods []placement.BillingRatePeriod
}

type Resolver struct{ repo placement.Repository }

func NewResolver(r placement.Repository) *Resolver { return &Resolver{repo: r} }

// ScheduleFor loads the placement's schedule. Consolidation resolves many
// dates against one schedule instead of querying per hour entry.
func (r *Resolver) ScheduleFor(ctx context.Context, placementNumericID uint64) (*Schedule, error) {
	periods, err := r.repo.ListRatePeriods(ctx, placementNumericID)
	if err != nil {
		return nil, err
	}
	return &Schedule{periods: periods}, nil
}

// Resolve returns the effective rates for the placement on the given date.
func (r *Resolver) Resolve(ctx context.Context, placementNumericID uint64, date time.Time) (Effective, error) {
	s, err := r.ScheduleFor(ctx, placementNumericID)
	if err != nil {
		return Effective{}, err
	}
	return s.EffectiveFor(date)
}

// EffectiveFor selects the period covering date and applies its discount.
// Overlapping periods are a data anomaly; the period with the latest
// effective_from wins, deterministically.
func (s *Schedule) EffectiveFor(date time.Time) (Effective, error) {
	var best *placement.BillingRatePeriod
	for i := range s.periods {
		p := &s.periods[i]
		if !p.Covers(date) {
			continue
		}
		if best == nil || p.EffectiveFrom.After(best.EffectiveFrom) {
			best = p
		}
	}
	if best == nil {
		return Effective{}, fault.NotFound("no billing rate period covers %s", date.Format("2006-01-02"))
	}
	return Effective{
		RatePeriodID: best.ID,
		RegularRate:  applyDiscount(best.RegularRate, best.DiscountType, best.DiscountValue),
		OTRate:       applyDiscount(best.OTRate, best.DiscountType, best.DiscountValue),
	}, nil
}

// applyDiscount does not clamp at zero; a fixed discount larger than the rate
// yields a negative effective rate, matching upstream behavior.
func applyDiscount(rate float64, dt placement.DiscountType, value float64) float64 {
	switch dt {
	case placement.DiscountPercent:
		return ledger.Round2(rate * (1 - value/100))
	case placement.DiscountFixed:
		return ledger.Round2(rate - value)
	}
	return rate
}
