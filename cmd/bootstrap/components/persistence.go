package components

import (
	"context"
	"log/slog"
	"time"

	"court-booking/internal/infra/db"
	"court-booking/internal/infra/memory"
	"court-booking/internal/infra/pgquery"
	"court-booking/internal/infra/readstore"
	"court-booking/internal/infra/uow"
	"court-booking/internal/pkg/config"
	"court-booking/internal/pkg/errs"
	"court-booking/internal/usecase/queries"
	"court-booking/internal/usecase/shared"

	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewPersistence,
	),
)

// Persistence exposes the write and read sides of whichever store STORE_DRIVER selects.
type Persistence struct {
	fx.Out

	UnitOfWork   shared.UnitOfWork
	BookingReads queries.BookingReadStore
	UserReads    queries.UserReadStore
}

func NewPersistence(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (Persistence, error) {
	switch cfg.Store.Driver {
	case config.StoreDriverMemory:
		return newMemoryPersistence(cfg, logger)
	default:
		return newPostgresPersistence(lc, cfg, logger)
	}
}

func newPostgresPersistence(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (Persistence, error) {
	pool, cleanup, err := db.Connect(cfg.DB)
	if err != nil {
		return Persistence{}, err
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			cleanup()
			return nil
		},
	})
	logger.Info("connected to postgres", "host", cfg.DB.Host, "db", cfg.DB.DBName)

	q := pgquery.New()
	return Persistence{
		UnitOfWork:   uow.NewPostgresUoW(pool, q),
		BookingReads: readstore.NewBookingReadStore(q, pool),
		UserReads:    readstore.NewUserReadStore(q, pool),
	}, nil
}

func newMemoryPersistence(cfg config.Config, logger *slog.Logger) (Persistence, error) {
	store := memory.NewStore()
	if err := memory.Seed(store, cfg.Store.SeedUsers, cfg.Booking.DefaultQuota, time.Now()); err != nil {
		return Persistence{}, errs.Wrap(err, "failed to seed memory store")
	}
	logger.Warn("using in-memory store, bookings are lost on restart", "seed_users", len(cfg.Store.SeedUsers))

	return Persistence{
		UnitOfWork:   store,
		BookingReads: memory.NewBookingReadStore(store),
		UserReads:    memory.NewUserReadStore(store),
	}, nil
}
