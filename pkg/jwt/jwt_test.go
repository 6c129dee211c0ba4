package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSigner_RoundTrip(t *testing.T) {
	req := require.New(t)
	s := NewSigner("s3cret", "messageboard", time.Minute)

	token, err := s.GenerateToken()
	req.NoError(err)

	sub, err := ParseToken(token, "s3cret")
	req.NoError(err)
	req.Equal("messageboard", sub)

	_, err = ParseToken(token, "other")
	req.Error(err)
}

func TestSigner_ExpiredTokenIsRejected(t *testing.T) {
	req := require.New(t)
	s := NewSigner("s3cret", "messageboard", time.Minute)
	s.now = func() time.Time { return time.Now().Add(-time.Hour) }

	token, err := s.GenerateToken()
	req.NoError(err)

	_, err = ParseToken(token, "s3cret")
	req.Error(err)
}

func TestNewSigner_EmptySecretDisablesSigning(t *testing.T) {
	req := require.New(t)
	s := NewSigner("", "messageboard", 0)

	req.Nil(s)
	_, err := s.GenerateToken()
	req.ErrorIs(err, ErrEmptySecret)
}
