package models

import "time"

// Role is a lookup entity naming a set of permissions.
type Role struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

// IsAdministrator reports whether the role bypasses permission checks.
func (r *Role) IsAdministrator() bool {
	return r != nil && r.Name == AdministratorRole
}

// Page is a lookup entity identifying a permissioned screen by its URL path.
type Page struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
	Path string `json:"path" db:"path"`
}

// User is a back-office account.
type User struct {
	ID           int64     `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	FullName     string    `json:"full_name" db:"full_name"`
	RoleID       int64     `json:"role_id" db:"role_id"`
	Role         *Role     `json:"role,omitempty" db:"-"`
	IsActive     bool      `json:"is_active" db:"is_active"`
	CreatedOn    time.Time `json:"created_on" db:"created_on"`
}

// RoleName returns the name of the user's role, or empty when not loaded.
func (u *User) RoleName() string {
	if u.Role == nil {
		return ""
	}
	return u.Role.Name
}
