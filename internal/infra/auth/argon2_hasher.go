// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"

	"marvel/config"
	"marvel/internal/domain/service"
	"marvel/internal/errors"

	"golang.org/x/crypto/argon2"
)

// argon2Hasher implements service.PasswordHasher with argon2id.
// Salts and hashes are stored base64 encoded, without padding.
type argon2Hasher struct {
	memory      uint32
	iterations  uint32
	parallelism uint8
	keyLength   uint32
	saltBytes   int
}

// NewArgon2Hasher builds a hasher from the auth configuration.
func NewArgon2Hasher(cfg *config.Config) service.PasswordHasher {
	return newArgon2Hasher(cfg.Auth.Argon2, cfg.Auth.SaltBytes)
}

func newArgon2Hasher(params config.Argon2Config, saltBytes int) *argon2Hasher {
	return &argon2Hasher{
		memory:      params.Memory,
		iterations:  params.Iterations,
		parallelism: params.Parallelism,
		keyLength:   params.KeyLength,
		saltBytes:   saltBytes,
	}
}

// NewSalt returns saltBytes of crypto/rand output, base64 encoded.
func (h *argon2Hasher) NewSalt() (string, error) {
	salt := make([]byte, h.saltBytes)
	if _, err := rand.Read(salt); err != nil {
		return "", errors.Wrap(err, "failed to generate salt")
	}

	return base64.RawStdEncoding.EncodeToString(salt), nil
}

// Hash derives the argon2id key of password with salt.
func (h *argon2Hasher) Hash(password, salt string) string {
	key := argon2.IDKey([]byte(password), []byte(salt), h.iterations, h.memory, h.parallelism, h.keyLength)

	return base64.RawStdEncoding.EncodeToString(key)
}

// Compare recomputes the hash and checks it in constant time.
func (h *argon2Hasher) Compare(password, salt, hash string) bool {
	computed := h.Hash(password, salt)

	return subtle.ConstantTimeCompare([]byte(computed), []byte(hash)) == 1
}
