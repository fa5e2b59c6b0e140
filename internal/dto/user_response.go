package dto

import "github.com/alimikegami/velvet-storefront/internal/domain"

type UserResponse struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	Email     string      `json:"email"`
	Role      domain.Role `json:"role"`
	CreatedAt int64       `json:"created_at"`
}

func NewUserResponse(u domain.User) UserResponse {
	return UserResponse{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role, CreatedAt: u.CreatedAt}
}

type LoginResponse struct {
	Token       string       `json:"token"`
	User        UserResponse `json:"user"`
	AllowedTabs []domain.Tab `json:"allowed_tabs"`
}

// RegisterResponse carries a session, or a pending id when the email must be verified first.
type RegisterResponse struct {
	VerificationRequired bool           `json:"verification_required"`
	PendingID            string         `json:"pending_id,omitempty"`
	ExpiresAt            int64          `json:"expires_at,omitempty"`
	Session              *LoginResponse `json:"session,omitempty"`
}
