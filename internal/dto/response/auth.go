package response

import (
	"time"

	"moviebuzz/internal/data/entity"
)

type AuthResponse struct {
	UserID    string          `json:"user_id"`
	Token     string          `json:"token"`
	ExpiresAt time.Time       `json:"expires_at"`
	Username  string          `json:"username"`
	Role      entity.UserRole `json:"role"`
	Balance   int64           `json:"balance"`
}

func AuthToResponse(user *entity.User, session *entity.Session) *AuthResponse {
	resp := &AuthResponse{
		UserID:   user.ID.String(),
		Username: user.Username,
		Role:     user.Role,
		Balance:  user.Balance,
	}

	if session != nil {
		resp.Token = session.Token.String()
		resp.ExpiresAt = session.ExpiresAt
	}

	return resp
}
