package user

import (
	"time"

	"github.com/google/uuid"
)

// User is a club member. Only the booking quota matters to the booking engine;
// accounts are created elsewhere.
type User struct {
	id           uuid.UUID
	email        Email
	bookingQuota Quota
	createdAt    time.Time
}

func NewUser(email Email, quota Quota, now time.Time) *User {
	return &User{
		id:           uuid.New(),
		email:        email,
		bookingQuota: quota,
		createdAt:    now,
	}
}

func ReconstructUser(id uuid.UUID, email Email, quota Quota, createdAt time.Time) *User {
	return &User{
		id:           id,
		email:        email,
		bookingQuota: quota,
		createdAt:    createdAt,
	}
}

func (u *User) ID() uuid.UUID        { return u.id }
func (u *User) Email() Email         { return u.email }
func (u *User) BookingQuota() Quota  { return u.bookingQuota }
func (u *User) CreatedAt() time.Time { return u.createdAt }
