package readstore

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	"court-booking/internal/domain/booking"
	"court-booking/internal/infra"
	"court-booking/internal/infra/db"
	"court-booking/internal/infra/pgquery"
	"court-booking/internal/pkg/pgconv"
	"court-booking/internal/usecase/queries"
)

type BookingReadQueries interface {
	ListBookingsBetween(ctx context.Context, db db.DBTX, from, to pgtype.Timestamptz) ([]pgquery.Booking, error)
	ListBookingsByUserBetween(ctx context.Context, db db.DBTX, userID pgtype.UUID, from, to pgtype.Timestamptz) ([]pgquery.Booking, error)
	ListUpcomingBookingsByUser(ctx context.Context, db db.DBTX, userID pgtype.UUID, from pgtype.Timestamptz, limit int32) ([]pgquery.Booking, error)
}

type BookingReadStore struct {
	queries BookingReadQueries
	db      db.DBTX
}

func NewBookingReadStore(queries BookingReadQueries, db db.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BookingReadStore) FindBetween(ctx context.Context, from, to time.Time) ([]*queries.BookingView, error) {
	rows, err := r.queries.ListBookingsBetween(ctx, r.db, pgconv.TimeToPgtype(from), pgconv.TimeToPgtype(to))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	return toBookingViews(rows), nil
}

func (r *BookingReadStore) FindByUserBetween(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]*queries.BookingView, error) {
	rows, err := r.queries.ListBookingsByUserBetween(ctx, r.db, pgconv.UUIDToPgtype(userID), pgconv.TimeToPgtype(from), pgconv.TimeToPgtype(to))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list user bookings", err)
	}
	return toBookingViews(rows), nil
}

func (r *BookingReadStore) FindUpcomingByUser(ctx context.Context, userID uuid.UUID, from time.Time, limit int) ([]*queries.BookingView, error) {
	// #nosec G115 -- limit is a small constant owned by the caller
	rows, err := r.queries.ListUpcomingBookingsByUser(ctx, r.db, pgconv.UUIDToPgtype(userID), pgconv.TimeToPgtype(from), int32(limit))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list upcoming bookings", err)
	}
	return toBookingViews(rows), nil
}

func toBookingViews(rows []pgquery.Booking) []*queries.BookingView {
	views := make([]*queries.BookingView, len(rows))
	for i, row := range rows {
		views[i] = queries.NewBookingView(toBookingDomain(row))
	}
	return views
}

func toBookingDomain(row pgquery.Booking) *booking.Booking {
	return booking.ReconstructBooking(
		pgconv.UUIDFromPgtype(row.ID),
		pgconv.UUIDFromPgtype(row.UserID),
		booking.NewTimeSlot(pgconv.TimeFromPgtype(row.StartTime), pgconv.TimeFromPgtype(row.EndTime)),
		pgconv.TimeFromPgtype(row.CreatedAt),
	)
}
