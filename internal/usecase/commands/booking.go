package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"court-booking/internal/domain/booking"
	"court-booking/internal/infra"
	"court-booking/internal/pkg/clock"
	"court-booking/internal/pkg/errs"
	"court-booking/internal/usecase/queries"
	"court-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var (
	ErrUserNotFound            = errs.New("user not found")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type CreateBookingsResult struct {
	Bookings []*queries.BookingView
}

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/commands/booking.go -package=commandsmock

type BookingCommands interface {
	// CreateBookings validates and commits every slot or none of them.
	CreateBookings(ctx context.Context, userID uuid.UUID, slots []booking.TimeSlot) (*CreateBookingsResult, error)
}

type bookingUseCaseImpl struct {
	uow    shared.UnitOfWork
	rules  *booking.Rules
	clock  clock.Clock
	logger *slog.Logger
	tracer trace.Tracer
}

func NewBookingCommands(uow shared.UnitOfWork, rules *booking.Rules, clk clock.Clock, logger *slog.Logger) BookingCommands {
	if logger == nil {
		logger = slog.Default()
	}
	return &bookingUseCaseImpl{
		uow:    uow,
		rules:  rules,
		clock:  clk,
		logger: logger,
		tracer: otel.Tracer("court-booking/usecase/commands"),
	}
}

func (uc *bookingUseCaseImpl) CreateBookings(ctx context.Context, userID uuid.UUID, slots []booking.TimeSlot) (*CreateBookingsResult, error) {
	ctx, span := uc.tracer.Start(ctx, "BookingCommands.CreateBookings", trace.WithAttributes(
		attribute.String("booking.user_id", userID.String()),
		attribute.Int("booking.slot_count", len(slots)),
	))
	defer span.End()

	created, err := uc.createBookings(ctx, userID, slots)
	if err != nil {
		var ruleErr *booking.RuleError
		if errors.As(err, &ruleErr) {
			span.SetAttributes(attribute.String("booking.rejection", ruleErr.Code))
			uc.logger.InfoContext(ctx, "booking request rejected",
				"user_id", userID.String(),
				"code", ruleErr.Code,
				"slots", len(slots))
		} else {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		return nil, err
	}

	views := make([]*queries.BookingView, len(created))
	for i, b := range created {
		views[i] = queries.NewBookingView(b)
	}
	uc.logger.InfoContext(ctx, "bookings created", "user_id", userID.String(), "count", len(views))
	return &CreateBookingsResult{Bookings: views}, nil
}

func (uc *bookingUseCaseImpl) createBookings(ctx context.Context, userID uuid.UUID, slots []booking.TimeSlot) ([]*booking.Booking, error) {
	now := uc.clock.Now()

	if err := uc.rules.CheckWindow(now); err != nil {
		return nil, err
	}
	if err := uc.rules.ValidateRequest(now, slots); err != nil {
		return nil, err
	}

	cal := uc.rules.Calendar
	weeks := booking.GroupByWeek(cal, slots)
	days := booking.AffectedDays(cal, slots)

	var created []*booking.Booking
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		created = make([]*booking.Booking, 0, len(slots))

		if err := tx.Locks().Acquire(ctx, lockKeys(userID, days)...); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		member, err := tx.Reads().UserByID(ctx, userID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrUserNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if err = uc.checkQuota(ctx, tx, userID, member.BookingQuota().Hours(), weeks); err != nil {
			return err
		}
		if err = uc.checkConflicts(ctx, tx, slots, days); err != nil {
			return err
		}

		for _, s := range slots {
			b := booking.NewBooking(userID, s, now)
			if err = tx.Bookings().Create(ctx, b); err != nil {
				if infra.IsKind(err, infra.KindConflict) {
					return booking.ErrOverlapsExisting
				}
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
			created = append(created, b)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (uc *bookingUseCaseImpl) checkQuota(ctx context.Context, tx shared.Tx, userID uuid.UUID, quota int, weeks []booking.WeekDemand) error {
	for _, w := range weeks {
		existing, err := tx.Reads().BookingsByUserBetween(ctx, userID, w.WeekStart, w.WeekEnd)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		used := booking.UsedHours(booking.SlotsOf(existing), w.WeekStart, w.WeekEnd)
		if err = booking.CheckQuota(quota, w, used); err != nil {
			return err
		}
	}
	return nil
}

func (uc *bookingUseCaseImpl) checkConflicts(ctx context.Context, tx shared.Tx, slots []booking.TimeSlot, days []time.Time) error {
	var sameDay []booking.TimeSlot
	for _, day := range days {
		from, to := uc.rules.Calendar.DayBounds(day)
		existing, err := tx.Reads().BookingsBetween(ctx, from, to)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		sameDay = append(sameDay, booking.SlotsOf(existing)...)
	}
	return booking.CheckConflicts(uc.rules.Calendar, slots, sameDay)
}

// lockKeys covers the member (quota) and every day touched (overlap).
func lockKeys(userID uuid.UUID, days []time.Time) []string {
	keys := make([]string, 0, len(days)+1)
	keys = append(keys, shared.UserLockKey(userID))
	for _, d := range days {
		keys = append(keys, shared.DayLockKey(d))
	}
	return keys
}
