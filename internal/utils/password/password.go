package password

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

const (
	// DefaultCost стоимость хеширования по умолчанию
	DefaultCost = bcrypt.DefaultCost
)

// Hasher интерфейс для хеширования пасскодов
type Hasher interface {
	Hash(passcode string) (string, error)
	Check(hash, passcode string) error
}

// BCryptHasher реализация хеширования через bcrypt
type BCryptHasher struct {
	cost int
}

// NewBCryptHasher создает новый hasher с заданной стоимостью
func NewBCryptHasher(cost int) *BCryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultCost
	}
	return &BCryptHasher{
		cost: cost,
	}
}

// Hash хеширует пасскод
func (h *BCryptHasher) Hash(passcode string) (string, error) {
	if passcode == "" {
		return "", fmt.Errorf("passcode cannot be empty")
	}

	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(passcode), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash passcode: %w", err)
	}

	return string(hashedBytes), nil
}

// Check проверяет соответствие пасскода хешу
func (h *BCryptHasher) Check(hash, passcode string) error {
	if hash == "" || passcode == "" {
		return fmt.Errorf("hash and passcode cannot be empty")
	}

	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(passcode))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return fmt.Errorf("passcode does not match")
		}
		return fmt.Errorf("failed to check passcode: %w", err)
	}

	return nil
}
