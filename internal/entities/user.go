package entities

import "time"

type User struct {
	ID        int64
	Name      string
	Email     string
	Role      UserRole
	CreatedAt time.Time
}

type UserRole string

const (
	RoleCustomer UserRole = "customer"
	RoleCourier  UserRole = "courier"
	RoleAdmin    UserRole = "admin"
)

const DefaultUserRole = RoleCustomer

func (r UserRole) String() string {
	return string(r)
}

type UserModify struct {
	ID    *int64
	Name  *string
	Email *string
	Role  *UserRole
}
