package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTTL bounds the lifetime of request tokens.
const DefaultTTL = 5 * time.Minute

var ErrEmptySecret = errors.New("jwt: empty signing secret")

// Signer mints short-lived HS256 bearer tokens for calls to the message API.
type Signer struct {
	secret  []byte
	subject string
	ttl     time.Duration
	now     func() time.Time
}

// NewSigner returns nil when secret is empty, meaning requests go unsigned.
func NewSigner(secret, subject string, ttl time.Duration) *Signer {
	if secret == "" {
		return nil
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Signer{secret: []byte(secret), subject: subject, ttl: ttl, now: time.Now}
}

// GenerateToken creates a new JWT for the configured subject.
func (s *Signer) GenerateToken() (string, error) {
	if s == nil || len(s.secret) == 0 {
		return "", ErrEmptySecret
	}
	now := s.now()
	claims := jwt.MapClaims{
		"sub": s.subject,
		"exp": now.Add(s.ttl).Unix(),
		"iat": now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString(s.secret)
}

// ParseToken validates a token issued with secret and returns its subject.
func ParseToken(tokenString, secret string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", err
	}
	return token.Claims.GetSubject()
}
