package identity

import (
	"time"

	"github.com/google/uuid"
	"github.com/invoicing/backend/internal/domain/identity"
)

// LoginInput contains credentials for a login attempt
type LoginInput struct {
	Username string
	Password string
}

// LoginResult contains the result of a successful login
type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	TokenType string
	User      UserInfo
}

// UserInfo contains basic user information returned after login
type UserInfo struct {
	ID          uuid.UUID
	Username    string
	DisplayName string
	LastLoginAt *time.Time
}

// ToUserInfo converts a domain User to UserInfo
func ToUserInfo(user *identity.User) UserInfo {
	return UserInfo{
		ID:          user.ID,
		Username:    user.Username,
		DisplayName: user.DisplayName,
		LastLoginAt: user.LastLoginAt,
	}
}
