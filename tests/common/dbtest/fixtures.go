//go:build unit || e2e

package dbtest

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// CreateTestUser returns the id of the member with email, inserting it with quota when absent.
func CreateTestUser(t *testing.T, db DBLike, email string, quota int) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, "INSERT INTO users (id, email, booking_quota) VALUES ($1, $2, $3) ON CONFLICT (email) DO NOTHING",
		userID, email, quota)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		err = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
		require.NoError(t, err)
	}

	return userID
}

// CreateTestBooking inserts a booking directly, bypassing every booking rule.
func CreateTestBooking(t *testing.T, db DBLike, userID uuid.UUID, start, end time.Time) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO bookings (id, user_id, start_time, end_time) VALUES ($1, $2, $3, $4)",
		id, userID, start, end)
	require.NoError(t, err)
	return id
}

func CountBookings(t *testing.T, db DBLike) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM bookings").Scan(&n)
	require.NoError(t, err)
	return n
}

// ResetDB empties every booking table between subtests. Users go too since fixtures recreate them.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := pool.Exec(ctx, "TRUNCATE bookings, users CASCADE")
	return err
}
