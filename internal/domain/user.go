package domain

import "time"

// User is an office user. Assigned users receive renewal reminders.
type User struct {
	ID        int64
	Username  string
	Email     string
	FullName  string
	Role      UserRole
	CreatedAt time.Time
}

// IsAdmin reports whether the user has the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == UserRoleAdmin
}

// Client owns renewables.
type Client struct {
	ID        int64
	Name      string
	Email     string
	Phone     *string
	Address   *string
	Notes     *string
	CreatedAt time.Time
}
