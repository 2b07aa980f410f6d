package pgquery

import (
	"context"

	"court-booking/internal/infra/db"
)

// hashtextextended maps the textual key onto the bigint advisory lock space.
const acquireXactLock = `SELECT pg_advisory_xact_lock(hashtextextended($1, 0))`

func (q *Queries) AcquireXactLock(ctx context.Context, db db.DBTX, key string) error {
	_, err := db.Exec(ctx, acquireXactLock, key)
	return err
}
