package repository

import (
	"context"
	"sort"

	"court-booking/internal/infra"
	"court-booking/internal/infra/db"
)

//go:generate mockgen -source=lock.go -destination=../../../tests/mock/repository/lock.go -package=repositorymock

type LockQueries interface {
	AcquireXactLock(ctx context.Context, db db.DBTX, key string) error
}

// AdvisoryLocker takes transaction-scoped advisory locks. It must run on a transaction.
type AdvisoryLocker struct {
	queries LockQueries
	db      db.DBTX
}

func NewAdvisoryLocker(queries LockQueries, db db.DBTX) *AdvisoryLocker {
	return &AdvisoryLocker{
		queries: queries,
		db:      db,
	}
}

// Acquire locks keys in sorted order so concurrent callers cannot deadlock each other.
func (l *AdvisoryLocker) Acquire(ctx context.Context, keys ...string) error {
	for _, key := range sortedUnique(keys) {
		if err := l.queries.AcquireXactLock(ctx, l.db, key); err != nil {
			return infra.WrapRepoErr("failed to acquire lock "+key, err)
		}
	}
	return nil
}

func sortedUnique(keys []string) []string {
	out := make([]string, 0, len(keys))
	seen := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
