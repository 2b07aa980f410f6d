package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
)

// Claims carry the member identity issued by the account service.
type Claims struct {
	UserID uuid.UUID `json:"user_id"`
	Email  string    `json:"email,omitempty"`
	jwt.RegisteredClaims
}

type Service struct {
	key    []byte
	ttl    time.Duration
	now    func() time.Time
	method jwt.SigningMethod
}

func NewService(secretKey string, tokenDuration time.Duration) *Service {
	return &Service{
		key:    []byte(secretKey),
		ttl:    tokenDuration,
		now:    time.Now,
		method: jwt.SigningMethodHS256,
	}
}

// GenerateToken signs a member token. Production tokens come from the account service;
// this exists for tooling and tests.
func (s *Service) GenerateToken(userID uuid.UUID, email string) (string, error) {
	issued := s.now()
	return jwt.NewWithClaims(s.method, Claims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(issued),
			ExpiresAt: jwt.NewNumericDate(issued.Add(s.ttl)),
		},
	}).SignedString(s.key)
}

func (s *Service) ValidateToken(raw string) (*Claims, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{s.method.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)

	claims := &Claims{}
	_, err := parser.ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) {
		return s.key, nil
	})
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return nil, ErrExpiredToken
	case err != nil:
		return nil, ErrInvalidToken
	}

	// tokens minted before user_id existed only carry the subject
	if claims.UserID == uuid.Nil {
		id, parseErr := uuid.Parse(claims.Subject)
		if parseErr != nil || id == uuid.Nil {
			return nil, ErrInvalidToken
		}
		claims.UserID = id
	}
	return claims, nil
}
