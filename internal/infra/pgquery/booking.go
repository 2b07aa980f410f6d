package pgquery

import (
	"context"

	"court-booking/internal/infra/db"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const createBooking = `
INSERT INTO bookings (id, user_id, start_time, end_time, created_at)
VALUES ($1, $2, $3, $4, $5)`

type CreateBookingParams struct {
	ID        pgtype.UUID
	UserID    pgtype.UUID
	StartTime pgtype.Timestamptz
	EndTime   pgtype.Timestamptz
	CreatedAt pgtype.Timestamptz
}

func (q *Queries) CreateBooking(ctx context.Context, db db.DBTX, arg CreateBookingParams) error {
	_, err := db.Exec(ctx, createBooking, arg.ID, arg.UserID, arg.StartTime, arg.EndTime, arg.CreatedAt)
	return err
}

const listBookingsBetween = `
SELECT id, user_id, start_time, end_time, created_at
FROM bookings
WHERE start_time >= $1 AND start_time < $2
ORDER BY start_time, id`

func (q *Queries) ListBookingsBetween(ctx context.Context, db db.DBTX, from, to pgtype.Timestamptz) ([]Booking, error) {
	rows, err := db.Query(ctx, listBookingsBetween, from, to)
	if err != nil {
		return nil, err
	}
	return scanBookings(rows)
}

const listBookingsByUserBetween = `
SELECT id, user_id, start_time, end_time, created_at
FROM bookings
WHERE user_id = $1 AND start_time >= $2 AND start_time < $3
ORDER BY start_time, id`

func (q *Queries) ListBookingsByUserBetween(ctx context.Context, db db.DBTX, userID pgtype.UUID, from, to pgtype.Timestamptz) ([]Booking, error) {
	rows, err := db.Query(ctx, listBookingsByUserBetween, userID, from, to)
	if err != nil {
		return nil, err
	}
	return scanBookings(rows)
}

const listUpcomingBookingsByUser = `
SELECT id, user_id, start_time, end_time, created_at
FROM bookings
WHERE user_id = $1 AND end_time > $2
ORDER BY start_time, id
LIMIT $3`

func (q *Queries) ListUpcomingBookingsByUser(ctx context.Context, db db.DBTX, userID pgtype.UUID, from pgtype.Timestamptz, limit int32) ([]Booking, error) {
	rows, err := db.Query(ctx, listUpcomingBookingsByUser, userID, from, limit)
	if err != nil {
		return nil, err
	}
	return scanBookings(rows)
}

func scanBookings(rows pgx.Rows) ([]Booking, error) {
	defer rows.Close()
	var items []Booking
	for rows.Next() {
		var i Booking
		if err := rows.Scan(&i.ID, &i.UserID, &i.StartTime, &i.EndTime, &i.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
