package dto

import (
	"time"

	"animehub/internal/models"
)

// UpdateAvatarRequest: payload for changing the profile avatar URL
type UpdateAvatarRequest struct {
	AvatarURL string `json:"avatar_url" binding:"required,url"`
}

// ProfileResponse: the caller's own account data
type ProfileResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Avatar    *string   `json:"avatar,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// FromModelToProfileResponse converts a User model to ProfileResponse
func FromModelToProfileResponse(user *models.User) *ProfileResponse {
	return &ProfileResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		Role:      user.Role,
		Avatar:    user.Avatar,
		CreatedAt: user.CreatedAt,
	}
}
