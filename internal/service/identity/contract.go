package identity

//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=identity_test

import (
	"context"

	"swiftship/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, userModifyEntity entities.UserModify, passwordHash string) (int64, error)
	GetByEmail(ctx context.Context, email string) (*entities.User, string, error)
	GetByID(ctx context.Context, id int64) (*entities.User, error)
}

type TokenIssuer interface {
	Issue(userID int64, role entities.UserRole) (string, error)
}
