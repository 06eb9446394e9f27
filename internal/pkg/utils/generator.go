package utils

import (
	"crypto/rand"
	"math/big"

	"github.com/google/uuid"
)

// shortCodeAlphabet has 36 symbols; at 6 characters that is ~2.2e9
// combinations, comfortably collision-safe for the insert-time
// uniqueness check with retry used by the stores.
const shortCodeAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

func GenerateShortCode(length int) (string, error) {
	max := big.NewInt(int64(len(shortCodeAlphabet)))

	code := make([]byte, length)
	for i := range code {
		num, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		code[i] = shortCodeAlphabet[num.Int64()]
	}

	return string(code), nil
}

func GenerateSessionID() string {
	return uuid.NewString()
}

func GenerateRequestID() string {
	return uuid.NewString()
}
