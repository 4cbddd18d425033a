package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"swiftship/internal/entities"
	"swiftship/internal/repository"
	"swiftship/internal/service/identity"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, userModifyEntity entities.UserModify, passwordHash string) (int64, error) {
	query := `INSERT INTO users (name, email, password, role)
		VALUES ($1, $2, $3, COALESCE($4, 'customer'))
		RETURNING id`

	var role *string
	if userModifyEntity.Role != nil {
		roleStr := userModifyEntity.Role.String()
		role = &roleStr
	}

	var id int64
	err := r.querier.QueryRow(
		ctx,
		query,
		userModifyEntity.Name,
		userModifyEntity.Email,
		passwordHash,
		role,
	).Scan(&id)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return 0, identity.ErrEmailTaken
		}
		return 0, fmt.Errorf("unexpected user repository create error: %w", err)
	}

	return id, nil
}

// GetByEmail возвращает пользователя вместе с bcrypt-хэшем пароля,
// хэш нужен только identity-сервису для логина.
func (r *Repository) GetByEmail(ctx context.Context, email string) (*entities.User, string, error) {
	query := `SELECT id, name, email, password, role, created_at
		FROM users
		WHERE email = $1`

	var userModel UserDB
	err := r.querier.QueryRow(ctx, query, email).
		Scan(
			&userModel.ID,
			&userModel.Name,
			&userModel.Email,
			&userModel.PasswordHash,
			&userModel.Role,
			&userModel.CreatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", identity.ErrUserNotFound
		}

		return nil, "", fmt.Errorf("unexpected user repository getbyemail error: %w", err)
	}

	return ToDomain(&userModel), userModel.PasswordHash, nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.User, error) {
	query := `SELECT id, name, email, password, role, created_at
		FROM users
		WHERE id = $1`

	var userModel UserDB
	err := r.querier.QueryRow(ctx, query, id).
		Scan(
			&userModel.ID,
			&userModel.Name,
			&userModel.Email,
			&userModel.PasswordHash,
			&userModel.Role,
			&userModel.CreatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, identity.ErrUserNotFound
		}

		return nil, fmt.Errorf("unexpected user repository getbyid error: %w", err)
	}

	return ToDomain(&userModel), nil
}
