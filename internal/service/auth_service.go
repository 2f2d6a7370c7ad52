package service

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/yourusername/devoyage-api/internal/domain/entity"
	"github.com/yourusername/devoyage-api/internal/domain/repository"
	apperrors "github.com/yourusername/devoyage-api/internal/pkg/errors"
)

// MinPasswordLength минимальная длина пароля при создании пользователя
const MinPasswordLength = 8

// TokenIssuer выпускает токен доступа для пользователя
type TokenIssuer interface {
	GenerateToken(user *entity.User) (string, error)
}

// AuthService отвечает за вход сотрудников и создание учетных записей
type AuthService struct {
	userRepo repository.UserRepository
	tokens   TokenIssuer
}

// NewAuthService создает новый сервис аутентификации
func NewAuthService(userRepo repository.UserRepository, tokens TokenIssuer) *AuthService {
	return &AuthService{userRepo: userRepo, tokens: tokens}
}

// Login проверяет имя и пароль и возвращает токен доступа
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *entity.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return "", nil, apperrors.NewValidationError("username", msgBlank)
	}
	if password == "" {
		return "", nil, apperrors.NewValidationError("password", msgBlank)
	}

	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			log.Printf("[AuthService] Вход отклонен: пользователь %q не найден", username)
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}
	if !user.CheckPassword(password) {
		log.Printf("[AuthService] Вход отклонен: неверный пароль для пользователя ID=%d", user.ID)
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateToken(user)
	if err != nil {
		return "", nil, err
	}
	log.Printf("[AuthService] Успешный вход пользователя ID=%d", user.ID)
	return token, user, nil
}

// CreateUser создает пользователя; пароль хешируется при сохранении
func (s *AuthService) CreateUser(ctx context.Context, username, password string, isStaff bool) (*entity.User, error) {
	username = strings.TrimSpace(username)
	if err := checkText("username", username, 150); err != nil {
		return nil, err
	}
	if len(password) < MinPasswordLength {
		return nil, apperrors.NewValidationError("password", "This password is too short. It must contain at least 8 characters.")
	}
	user := &entity.User{Username: username, Password: password, IsStaff: isStaff}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
