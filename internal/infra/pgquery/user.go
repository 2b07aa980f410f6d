package pgquery

import (
	"context"

	"court-booking/internal/infra/db"

	"github.com/jackc/pgx/v5/pgtype"
)

const getUserByID = `
SELECT id, email, booking_quota, created_at
FROM users
WHERE id = $1`

func (q *Queries) GetUserByID(ctx context.Context, db db.DBTX, id pgtype.UUID) (User, error) {
	row := db.QueryRow(ctx, getUserByID, id)
	var i User
	err := row.Scan(&i.ID, &i.Email, &i.BookingQuota, &i.CreatedAt)
	return i, err
}
