package auth

import "github.com/heartmarshall/renewal-manager/internal/domain"

// Identity is the caller described by a validated access token.
type Identity struct {
	UserID int64
	Role   domain.UserRole
}

// IsAdmin reports whether the caller may use admin endpoints.
func (i Identity) IsAdmin() bool {
	return i.Role == domain.UserRoleAdmin
}
