package readstore

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	"court-booking/internal/infra"
	"court-booking/internal/infra/db"
	"court-booking/internal/infra/pgquery"
	"court-booking/internal/pkg/pgconv"
	"court-booking/internal/usecase/queries"
)

type UserReadQueries interface {
	GetUserByID(ctx context.Context, db db.DBTX, id pgtype.UUID) (pgquery.User, error)
}

type UserReadStore struct {
	queries UserReadQueries
	db      db.DBTX
}

func NewUserReadStore(queries UserReadQueries, db db.DBTX) *UserReadStore {
	return &UserReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.UserView, error) {
	row, err := r.queries.GetUserByID(ctx, r.db, pgconv.UUIDToPgtype(id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}

	return &queries.UserView{
		ID:           pgconv.UUIDFromPgtype(row.ID),
		Email:        pgconv.StringFromPgtype(row.Email),
		BookingQuota: int(row.BookingQuota),
		CreatedAt:    pgconv.TimeFromPgtype(row.CreatedAt),
	}, nil
}
