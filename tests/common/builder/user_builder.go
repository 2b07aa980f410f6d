//go:build unit || e2e

package builder

import (
	"time"

	"court-booking/internal/domain/user"
	"court-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserBuilder struct {
	ID        uuid.UUID
	Email     string
	Quota     int
	CreatedAt time.Time
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:        uuid.New(),
		Email:     "member@example.com",
		Quota:     user.DefaultQuotaHours,
		CreatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

// Build methods
func (u *UserBuilder) BuildDomain() (*user.User, error) {
	email, err := user.NewEmail(u.Email)
	if err != nil {
		return nil, err
	}
	quota, err := user.NewQuota(u.Quota)
	if err != nil {
		return nil, err
	}
	return user.ReconstructUser(u.ID, email, quota, u.CreatedAt), nil
}

// MustBuildDomain panics on invalid input; use it for fixtures only.
func (u *UserBuilder) MustBuildDomain() *user.User {
	built, err := u.BuildDomain()
	if err != nil {
		panic(err)
	}
	return built
}

func (u *UserBuilder) BuildView() *queries.UserView {
	return &queries.UserView{
		ID:           u.ID,
		Email:        u.Email,
		BookingQuota: u.Quota,
		CreatedAt:    u.CreatedAt,
	}
}

// Fluent builder methods
func (u *UserBuilder) WithID(id uuid.UUID) *UserBuilder {
	u.ID = id
	return u
}

func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) WithQuota(hours int) *UserBuilder {
	u.Quota = hours
	return u
}
