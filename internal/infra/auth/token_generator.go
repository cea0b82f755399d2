// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/rand"
	"math/big"

	"clinica/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	// tokenAlphabet has 62 symbols; 64 draws give ~381 bits of entropy,
	// far beyond what is guessable within any token TTL.
	tokenAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	tokenLength   = 64
)

// randomTokenGenerator draws token values from crypto/rand, uniform over the alphabet.
type randomTokenGenerator struct{}

// NewTokenGenerator is the constructor for randomTokenGenerator.
func NewTokenGenerator() service.TokenGenerator {
	return &randomTokenGenerator{}
}

// Generate returns a fresh 64-character token value.
func (g *randomTokenGenerator) Generate() (string, error) {
	max := big.NewInt(int64(len(tokenAlphabet)))
	value := make([]byte, tokenLength)

	for i := range value {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", errors.Wrap(err, "failed to read from crypto/rand")
		}
		value[i] = tokenAlphabet[idx.Int64()]
	}

	return string(value), nil
}
