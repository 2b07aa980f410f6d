package memory

import (
	"strconv"
	"strings"
	"time"

	"court-booking/internal/domain/user"
	"court-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

// Seed loads members described as "id|email|quota". The quota part may be
// omitted, in which case defaultQuota applies.
func Seed(s *Store, entries []string, defaultQuota int, now time.Time) error {
	for _, entry := range entries {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		u, err := parseSeedUser(entry, defaultQuota, now)
		if err != nil {
			return errs.Wrapf(err, "invalid seed user %q", entry)
		}
		s.AddUser(u)
	}
	return nil
}

func parseSeedUser(entry string, defaultQuota int, now time.Time) (*user.User, error) {
	parts := strings.Split(entry, "|")
	if len(parts) < 2 || len(parts) > 3 {
		return nil, errs.New("expected id|email|quota")
	}

	id, err := uuid.Parse(strings.TrimSpace(parts[0]))
	if err != nil {
		return nil, errs.Wrap(err, "bad id")
	}
	email, err := user.NewEmail(strings.TrimSpace(parts[1]))
	if err != nil {
		return nil, err
	}

	hours := defaultQuota
	if len(parts) == 3 {
		if hours, err = strconv.Atoi(strings.TrimSpace(parts[2])); err != nil {
			return nil, errs.Wrap(err, "bad quota")
		}
	}
	quota, err := user.NewQuota(hours)
	if err != nil {
		return nil, err
	}

	return user.ReconstructUser(id, email, quota, now), nil
}
