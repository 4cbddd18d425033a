package identity

import (
	"strings"

	"swiftship/internal/entities"
)

const minPasswordLength = 6

func isValidName(name string) bool {
	return strings.TrimSpace(name) != ""
}

func isValidEmail(email string) bool {
	trimmed := strings.TrimSpace(email)
	if trimmed == "" {
		return false
	}

	at := strings.Index(trimmed, "@")
	if at <= 0 || at == len(trimmed)-1 {
		return false
	}

	return strings.Contains(trimmed[at+1:], ".")
}

func isValidPassword(password string) bool {
	return len(password) >= minPasswordLength
}

func isValidRole(role entities.UserRole) bool {
	switch role {
	case entities.RoleCustomer, entities.RoleCourier, entities.RoleAdmin:
		return true
	default:
		return false
	}
}
