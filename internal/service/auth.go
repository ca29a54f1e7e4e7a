package service

import (
	"fmt"

	"github.com/mtw/paperstore/internal/utils/jwt"
	"github.com/mtw/paperstore/internal/utils/password"
)

// AuthService реализует domain.AuthService: доступ к дашборду по общему
// пасскоду. Пасскод хранится только в виде bcrypt-хеша и проверяется на
// сервере; успешный вход выдает JWT сессии.
type AuthService struct {
	passcodeHash string
	hasher       password.Hasher
	jwtManager   *jwt.Manager
}

// NewAuthService создает новый AuthService
func NewAuthService(passcodeHash string, hasher password.Hasher, jwtManager *jwt.Manager) *AuthService {
	return &AuthService{
		passcodeHash: passcodeHash,
		hasher:       hasher,
		jwtManager:   jwtManager,
	}
}

// Login проверяет пасскод и возвращает токен сессии дашборда
func (s *AuthService) Login(passcode string) (string, error) {
	if err := s.hasher.Check(s.passcodeHash, passcode); err != nil {
		return "", ErrInvalidPasscode
	}

	token, err := s.jwtManager.Generate()
	if err != nil {
		return "", fmt.Errorf("auth service: failed to generate token: %w", err)
	}

	return token, nil
}
