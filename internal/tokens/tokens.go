package tokens

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrMalformed    = errors.New("token malformed")
	ErrBadSignature = errors.New("token signature invalid")
	ErrExpired      = errors.New("token expired")
)

const DefaultTTL = 365 * 24 * time.Hour

type IdentityClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Service issues and verifies the self-contained identity tokens. A token is
// valid iff its HS256 signature matches Secret and the expiry is in the future.
type Service struct {
	Secret []byte
	TTL    time.Duration
}

func (s *Service) ttl() time.Duration {
	if s.TTL > 0 {
		return s.TTL
	}
	return DefaultTTL
}

func (s *Service) Issue(email string) (string, error) {
	now := time.Now()
	claims := IdentityClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl())),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.Secret)
}

func (s *Service) Verify(raw string) (string, error) {
	var claims IdentityClaims
	tkn, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.Secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return "", ErrExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return "", ErrBadSignature
		default:
			return "", ErrMalformed
		}
	}
	if !tkn.Valid || claims.Email == "" {
		return "", ErrMalformed
	}

	return claims.Email, nil
}
