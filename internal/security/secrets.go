package security

import (
	"crypto/rand"
	"errors"
	"math/big"
)

const (
	digitAlphabet     = "0123456789"
	secretKeyAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz23456789"

	SecretKeyLength = 48
)

var (
	ErrInvalidLength = errors.New("length must be positive")
	ErrEmptyAlphabet = errors.New("alphabet must not be empty")
)

// Draw picks length characters from alphabet uniformly at random.
func Draw(length int, alphabet string) (string, error) {
	if length <= 0 {
		return "", ErrInvalidLength
	}
	if alphabet == "" {
		return "", ErrEmptyAlphabet
	}

	limit := big.NewInt(int64(len(alphabet)))
	out := make([]byte, length)
	for i := range out {
		position, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", err
		}
		out[i] = alphabet[position.Int64()]
	}
	return string(out), nil
}

// NewSecretKey returns a session signing key for installs that did not configure one.
func NewSecretKey() (string, error) {
	return Draw(SecretKeyLength, secretKeyAlphabet)
}

// NewPasscode returns a numeric caregiver passcode.
func NewPasscode(digits int) (string, error) {
	return Draw(digits, digitAlphabet)
}
