package models

// UserRole mirrors domain.UserRole.
type UserRole string

const (
	RoleManager    UserRole = "manager"
	RoleAccountant UserRole = "accountant"
)

// User is the DB representation of an application user.
type User struct {
	UserID       string   `db:"user_id"`
	Username     string   `db:"username"`
	PasswordHash string   `db:"password_hash"`
	Role         UserRole `db:"role"`
	IsActive     bool     `db:"is_active"`
	AuditFields
}
