package dto

import "github.com/davidmtz/escolar/internal/app/models"

// LoginRequest represents the OAuth2-style password login form.
type LoginRequest struct {
	Username string `form:"username" json:"username" binding:"required"`
	Password string `form:"password" json:"password" binding:"required"`
}

// TokenResponse is the wire format of a successful login.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type" example:"bearer"`
	Role        string `json:"role" example:"USER"`
}

// RegisterRequest represents a self-registration request. A role field is
// accepted for wire compatibility but ignored: self-registered accounts are
// always regular users.
type RegisterRequest struct {
	Email    string `form:"email" json:"email" binding:"required,email"`
	Password string `form:"password" json:"password" binding:"required,min=6"`
	Role     string `form:"role" json:"role"`
}

// UserResponse represents user account information without credentials.
type UserResponse struct {
	ID       int64       `json:"id"`
	Email    string      `json:"email"`
	Role     models.Role `json:"role"`
	IsActive bool        `json:"isActive"`
}

// FromUser converts a user model to its response representation.
func FromUser(user *models.User) UserResponse {
	return UserResponse{
		ID:       user.ID,
		Email:    user.Email,
		Role:     user.Role,
		IsActive: user.IsActive,
	}
}
