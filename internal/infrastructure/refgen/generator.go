package refgen

import (
	"context"
	"fmt"

	"github.com/asifshaikgit/workforce-sub002/internal/domain/fault"
	"github.com/asifshaikgit/workforce-sub002/internal/domain/ledger"
)

const (
	separator  = "-"
	offset     = 1000
	maxRetries = 25
)

// Generator hands out human-readable document reference ids such as INV-1042.
type Generator interface {
	Next(ctx context.Context, repo ledger.Repository, prefix string) (string, error)
}

// CountingGenerator derives the next id from the table row count plus a fixed
// offset, then probes for collisions (soft-deleted rows keep their reference,
// so the count alone is not collision-free) and walks forward until free.
type CountingGenerator struct{}

func NewCountingGenerator() *CountingGenerator { return &CountingGenerator{} }

func (g *CountingGenerator) Next(ctx context.Context, repo ledger.Repository, prefix string) (string, error) {
	count, err := repo.Count(ctx)
	if err != nil {
		return "", fault.Persistence("reference id base count", err)
	}
	for i := 0; i < maxRetries; i++ {
		candidate := fmt.Sprintf("%s%s%d", prefix, separator, count+offset+int64(i))
		taken, err := repo.CountByReference(ctx, candidate)
		if err != nil {
			return "", fault.Persistence("reference id collision probe", err)
		}
		if taken == 0 {
			return candidate, nil
		}
	}
	return "", fault.Persistence("reference id space exhausted after retries", nil)
}
