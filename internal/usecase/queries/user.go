package queries

import (
	"context"

	"github.com/google/uuid"

	"court-booking/internal/infra"
	"court-booking/internal/pkg/errs"
)

var (
	ErrUserNotFound = errs.New("user not found")
)

//go:generate mockgen -source=user.go -destination=../../../tests/mock/queries/user.go -package=queriesmock

type UserQueries interface {
	GetQuota(ctx context.Context, userID uuid.UUID) (*UserQuotaView, error)
}

type UserReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*UserView, error)
}

type userQueriesImpl struct {
	readStore UserReadStore
}

func NewUserQueries(readStore UserReadStore) UserQueries {
	return &userQueriesImpl{
		readStore: readStore,
	}
}

func (q *userQueriesImpl) GetQuota(ctx context.Context, userID uuid.UUID) (*UserQuotaView, error) {
	u, err := findUser(ctx, q.readStore, userID)
	if err != nil {
		return nil, err
	}
	return &UserQuotaView{ID: u.ID, BookingQuota: u.BookingQuota}, nil
}

func findUser(ctx context.Context, store UserReadStore, userID uuid.UUID) (*UserView, error) {
	u, err := store.FindByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, errs.Wrap(err, "failed to load user")
	}
	return u, nil
}
