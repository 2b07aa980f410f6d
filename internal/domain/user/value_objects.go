package user

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidEmail = errors.New("invalid email format")
	ErrInvalidQuota = errors.New("booking quota must not be negative")
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	s = strings.TrimSpace(s)
	if !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) Value() string {
	return e.value
}

// Quota is the number of court hours a member may book per Sunday-Saturday week.
type Quota struct {
	hours int
}

const DefaultQuotaHours = 3

func NewQuota(hours int) (Quota, error) {
	if hours < 0 {
		return Quota{}, ErrInvalidQuota
	}
	return Quota{hours: hours}, nil
}

func DefaultQuota() Quota {
	return Quota{hours: DefaultQuotaHours}
}

func (q Quota) Hours() int {
	return q.hours
}
