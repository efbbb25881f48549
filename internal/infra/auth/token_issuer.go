package auth

import (
	"crypto/rand"
	"encoding/base64"

	"marvel/config"
	"marvel/internal/domain/service"
	"marvel/internal/errors"
)

type randomTokenIssuer struct {
	size int
}

// NewTokenIssuer returns a TokenIssuer producing base64url tokens of
// auth.tokenBytes random bytes.
func NewTokenIssuer(cfg *config.Config) service.TokenIssuer {
	return &randomTokenIssuer{size: cfg.Auth.TokenBytes}
}

func (i *randomTokenIssuer) Issue() (string, error) {
	if i.size <= 0 {
		return "", errors.Errorf("token size must be positive, got %d", i.size)
	}

	buf := make([]byte, i.size)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "failed to generate token")
	}

	return base64.RawURLEncoding.EncodeToString(buf), nil
}
