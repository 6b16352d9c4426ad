package dto

import (
	"time"

	"github.com/guptaji1008/book-hotel/internal/auth/domain"
)

// SessionView is the per-request materialization of a session token: the
// account snapshot that was embedded at mint time. Like AccountOutput it can
// never carry the password hash.
type SessionView struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

func NewSessionView(a *domain.Account) SessionView {
	return SessionView{
		ID:        a.ID,
		Name:      a.Name,
		Email:     a.Email,
		Role:      a.Role,
		AvatarURL: a.AvatarURL,
	}
}

type LoginOutput struct {
	User      SessionView `json:"user"`
	Token     string      `json:"token"`
	TokenType string      `json:"token_type"`
	ExpiresAt time.Time   `json:"expires_at"`
}
