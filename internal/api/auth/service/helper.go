package authService

import (
	"BlogGolang/internal/api/auth"
	"BlogGolang/internal/entity"
)

func MakeUserData(user entity.User) map[string]interface{} {
	return map[string]interface{}{
		"id":       user.ID,
		"email":    user.Email,
		"username": user.Username,
	}
}

func MakeUserResponse(user entity.User) auth.UserResponse {
	return auth.UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		Role:      user.Role,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Website:   user.Website,
		Facebook:  user.Facebook,
		Instagram: user.Instagram,
		X:         user.X,
		Youtube:   user.Youtube,
		LinkedIn:  user.LinkedIn,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}
