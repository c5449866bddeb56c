package converter

import (
	"healthcare-management/internal/delivery/dto"
	"healthcare-management/internal/domain/entity"
)

// UserToResponse converts a User entity to UserResponse DTO. The password
// hash is never copied.
func UserToResponse(user *entity.User) *dto.UserResponse {
	if user == nil {
		return nil
	}

	return &dto.UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}
}

func UserToAuthResponse(user *entity.User, token, sessionID string) *dto.AuthResponse {
	if user == nil {
		return nil
	}

	return &dto.AuthResponse{
		UserResponse: *UserToResponse(user),
		Token:        token,
		SessionID:    sessionID,
	}
}
