package identity

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/AlekSi/pointer"
	"golang.org/x/crypto/bcrypt"
	"swiftship/internal/entities"
)

type Identity struct {
	repository  Repository
	tokenIssuer TokenIssuer
}

func New(repository Repository, tokenIssuer TokenIssuer) *Identity {
	return &Identity{
		repository:  repository,
		tokenIssuer: tokenIssuer,
	}
}

// Register создаёт пользователя и сразу выдаёт токен,
// отдельный логин после регистрации не требуется.
func (s *Identity) Register(ctx context.Context, name, email, password string, role *entities.UserRole) (*entities.User, string, error) {
	if name == "" || email == "" || password == "" {
		return nil, "", ErrMissingRequiredFields
	}
	if !isValidName(name) {
		return nil, "", ErrInvalidName
	}
	if !isValidEmail(email) {
		return nil, "", ErrInvalidEmail
	}
	if !isValidPassword(password) {
		return nil, "", ErrInvalidPassword
	}
	if role != nil && !isValidRole(*role) {
		return nil, "", ErrInvalidRole
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	userModify := entities.UserModify{
		Name:  pointer.To(strings.TrimSpace(name)),
		Email: pointer.To(strings.ToLower(strings.TrimSpace(email))),
		Role:  role,
	}

	id, err := s.repository.Create(ctx, userModify, string(hash))
	if err != nil {
		return nil, "", fmt.Errorf("create user: %w", err)
	}

	user, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, "", fmt.Errorf("get created user: %w", err)
	}

	token, err := s.tokenIssuer.Issue(user.ID, user.Role)
	if err != nil {
		return nil, "", fmt.Errorf("issue token: %w", err)
	}

	return user, token, nil
}

func (s *Identity) Login(ctx context.Context, email, password string) (*entities.User, string, error) {
	if email == "" || password == "" {
		return nil, "", ErrMissingRequiredFields
	}

	user, hash, err := s.repository.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		// не выдаём наружу, существует ли такой email
		if errors.Is(err, ErrUserNotFound) {
			return nil, "", ErrInvalidCredentials
		}

		return nil, "", fmt.Errorf("get user by email: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.tokenIssuer.Issue(user.ID, user.Role)
	if err != nil {
		return nil, "", fmt.Errorf("issue token: %w", err)
	}

	return user, token, nil
}

func (s *Identity) GetUser(ctx context.Context, id int64) (*entities.User, error) {
	if id <= 0 {
		return nil, ErrUserNotFound
	}

	user, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get user by id: %w", err)
	}

	return user, nil
}
