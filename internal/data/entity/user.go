package entity

type UserRole string

const (
	RoleUser      UserRole = "user"
	RoleModerator UserRole = "moderator"
	RoleAdmin     UserRole = "admin"
)

// IsStaff reports whether the role may edit or delete other users' content.
func (r UserRole) IsStaff() bool {
	return r == RoleModerator || r == RoleAdmin
}

func (r UserRole) Valid() bool {
	return r == RoleUser || r == RoleModerator || r == RoleAdmin
}

type User struct {
	Base
	Username string   `db:"username"`
	Email    string   `db:"email"`
	// PasswordHash is an unusable placeholder; accounts authenticate with a
	// confirmation code, never a password.
	PasswordHash     string   `db:"password"`
	Bio              *string  `db:"bio"`
	Role             UserRole `db:"role"`
	ConfirmationCode *int     `db:"confirmation_code"`
	IsSuperuser      bool     `db:"is_superuser"`
}
