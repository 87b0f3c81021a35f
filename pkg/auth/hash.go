package auth

import (
	"crypto/rand"
	"encoding/hex"
	"errors"

	"golang.org/x/crypto/bcrypt"
)

type TokenHasherInterface interface {
	NewToken() (string, error)
	HashToken(token string) (string, error)
	CompareToken(hashedToken, token string) bool
}

// TokenHasher generates and verifies the shared-secret tokens embedded in
// pending payment transactions. Only the bcrypt hash is persisted; the plain
// token travels to the gateway and comes back on the callback.
type TokenHasher struct{}

func (h *TokenHasher) NewToken() (string, error) {
	buf := make([]byte, 24)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

func (h *TokenHasher) HashToken(token string) (string, error) {
	if token == "" {
		return "", errors.New("token cannot be empty")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(token), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (h *TokenHasher) CompareToken(hashedToken, token string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashedToken), []byte(token))
	return err == nil
}
