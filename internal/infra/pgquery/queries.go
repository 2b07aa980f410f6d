// Package pgquery holds the SQL used by the PostgreSQL repositories and read stores.
// Every method takes the DBTX to run on so the same Queries value serves pools and transactions.
package pgquery

import (
	"github.com/jackc/pgx/v5/pgtype"
)

type Queries struct{}

func New() *Queries {
	return &Queries{}
}

type Booking struct {
	ID        pgtype.UUID
	UserID    pgtype.UUID
	StartTime pgtype.Timestamptz
	EndTime   pgtype.Timestamptz
	CreatedAt pgtype.Timestamptz
}

type User struct {
	ID           pgtype.UUID
	Email        pgtype.Text
	BookingQuota int32
	CreatedAt    pgtype.Timestamptz
}
