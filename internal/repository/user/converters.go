package user

import "swiftship/internal/entities"

func ToDomain(u *UserDB) *entities.User {
	if u == nil {
		return nil
	}
	return &entities.User{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      entities.UserRole(u.Role),
		CreatedAt: u.CreatedAt,
	}
}
