package response

import (
	"time"

	"stayhub/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserResponse struct {
	ID             uuid.UUID `json:"id"`
	Email          string    `json:"email"`
	Name           string    `json:"name"`
	ProfilePicture string    `json:"profilePicture"`
	Role           string    `json:"role"`
	CreatedAt      time.Time `json:"createdAt"`
}

type LoginResponse struct {
	AccessToken string        `json:"access_token"`
	User        *UserResponse `json:"user"`
}

func FromUserView(v *queries.UserView) *UserResponse {
	return &UserResponse{
		ID:             v.ID,
		Email:          v.Email,
		Name:           v.Name,
		ProfilePicture: v.ProfilePicture,
		Role:           v.Role,
		CreatedAt:      v.CreatedAt,
	}
}
