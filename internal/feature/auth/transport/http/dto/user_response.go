package dto

import "github.com/KoheiTanihara/Gado-back/internal/feature/auth/domain/entity"

// UserResponse is the public projection of a user.
// It never contains the password hash.
type UserResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	IsActive bool   `json:"is_active"`
}

// UserResponseFromEntity converts a domain entity to its public projection.
func UserResponseFromEntity(u *entity.User) UserResponse {
	return UserResponse{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		IsActive: u.IsActive,
	}
}
