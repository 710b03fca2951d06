package models

import (
	"time"
)

// Role is the closed set of user roles. There are exactly two: admins
// review and oversee, members upload on behalf of their department.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleMember Role = "member"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleMember
}

type User struct {
	ID                 string    `json:"id" db:"id"`
	Username           string    `json:"username" db:"username"`
	Email              string    `json:"email" db:"email"`
	PasswordCredential string    `json:"-" db:"password_credential"` // opaque, hashing is the caller's concern
	Role               Role      `json:"role" db:"role"`
	DepartmentID       string    `json:"department_id" db:"department_id"`
	CreatedAt          time.Time `json:"created_at" db:"created_at"`
}

type Department struct {
	ID          string    `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}
