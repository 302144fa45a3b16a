package domain

// UserRole defines what a user may do with journal entries.
type UserRole string

const (
	// RoleManager holds posting authority: may approve, reject, and auto-post.
	RoleManager UserRole = "manager"
	// RoleAccountant may create entries; they always start pending.
	RoleAccountant UserRole = "accountant"
)

// HasPostingAuthority reports whether the role may approve/reject entries.
func (r UserRole) HasPostingAuthority() bool {
	return r == RoleManager
}

// User represents an application user.
type User struct {
	UserID       string   `json:"userID"` // Primary key (UUID)
	Username     string   `json:"username"`
	PasswordHash string   `json:"-"`
	Role         UserRole `json:"role"`
	IsActive     bool     `json:"isActive"`
	AuditFields
}
