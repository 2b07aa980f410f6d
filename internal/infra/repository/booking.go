package repository

import (
	"context"

	"court-booking/internal/domain/booking"
	"court-booking/internal/infra"
	"court-booking/internal/infra/db"
	"court-booking/internal/infra/pgquery"
	"court-booking/internal/pkg/pgconv"
)

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/repository/booking.go -package=repositorymock

type BookingWriteQueries interface {
	CreateBooking(ctx context.Context, db db.DBTX, arg pgquery.CreateBookingParams) error
}

type BookingRepository struct {
	queries BookingWriteQueries
	db      db.DBTX
}

func NewBookingRepository(queries BookingWriteQueries, db db.DBTX) *BookingRepository {
	return &BookingRepository{
		queries: queries,
		db:      db,
	}
}

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) error {
	err := r.queries.CreateBooking(ctx, r.db, bookingToParams(b))
	if err != nil {
		switch {
		case pgconv.IsExclusionViolation(err), pgconv.IsUniqueViolation(err):
			return infra.WrapRepoErr("booking slot already taken", err, infra.KindConflict)
		case pgconv.IsForeignKeyViolation(err):
			return infra.WrapRepoErr("booking owner not found", err, infra.KindNotFound)
		default:
			return infra.WrapRepoErr("failed to create booking", err)
		}
	}
	return nil
}

func bookingToParams(b *booking.Booking) pgquery.CreateBookingParams {
	return pgquery.CreateBookingParams{
		ID:        pgconv.UUIDToPgtype(b.ID()),
		UserID:    pgconv.UUIDToPgtype(b.UserID()),
		StartTime: pgconv.TimeToPgtype(b.Slot().Start()),
		EndTime:   pgconv.TimeToPgtype(b.Slot().End()),
		CreatedAt: pgconv.TimeToPgtype(b.CreatedAt()),
	}
}
