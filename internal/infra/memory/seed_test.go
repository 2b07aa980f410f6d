//go:build unit

package memory_test

import (
	"context"
	"testing"
	"time"

	"court-booking/internal/domain/user"
	"court-booking/internal/infra/memory"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeed(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	a, b := uuid.New(), uuid.New()

	t.Run("explicit and default quota", func(t *testing.T) {
		s := memory.NewStore()
		err := memory.Seed(s, []string{
			a.String() + "|a@example.com|5",
			" " + b.String() + " | b@example.com ",
			"",
		}, 3, now)
		require.NoError(t, err)

		ua, err := s.CommandReads().UserByID(ctx, a)
		require.NoError(t, err)
		assert.Equal(t, 5, ua.BookingQuota().Hours())
		assert.Equal(t, now, ua.CreatedAt())

		ub, err := s.CommandReads().UserByID(ctx, b)
		require.NoError(t, err)
		assert.Equal(t, 3, ub.BookingQuota().Hours())
		assert.Equal(t, "b@example.com", ub.Email().Value())
	})

	t.Run("invalid entries", func(t *testing.T) {
		cases := map[string]string{
			"missing email":  a.String(),
			"too many parts": a.String() + "|a@example.com|1|2",
			"bad id":         "nope|a@example.com",
			"bad quota":      a.String() + "|a@example.com|lots",
			"bad email":      a.String() + "|not-an-email",
		}
		for name, entry := range cases {
			t.Run(name, func(t *testing.T) {
				err := memory.Seed(memory.NewStore(), []string{entry}, 3, now)
				require.Error(t, err)
				assert.Contains(t, err.Error(), "invalid seed user")
			})
		}
	})

	t.Run("negative quota", func(t *testing.T) {
		err := memory.Seed(memory.NewStore(), []string{a.String() + "|a@example.com|-1"}, 3, now)
		assert.ErrorIs(t, err, user.ErrInvalidQuota)
	})
}
