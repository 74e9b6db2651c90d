package handler

import "github.com/Naimul9/sufiza-backend-render/internal/core/domain"

// --- Request types ---

type registerRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Phone    string `json:"phone"    validate:"required,e164"`
	Avatar   string `json:"avatar"   validate:"omitempty,startswith=https://"`
	Password string `json:"password" validate:"required,password"`
	Role     string `json:"role"     validate:"omitempty,oneof=user admin"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type updateUserRequest struct {
	Name   *string `json:"name"   validate:"omitempty,min=1"`
	Phone  *string `json:"phone"  validate:"omitempty,e164"`
	Avatar *string `json:"avatar" validate:"omitempty,startswith=https://"`
	Role   *string `json:"role"   validate:"omitempty,oneof=user admin"`
}

// --- Response types ---

// profileResponse is the identity shape returned by login and profile reads.
// The password digest has no representation here at all.
type profileResponse struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
	Avatar string `json:"avatar"`
	Role   string `json:"role"`
}

func toProfileResponse(u *domain.User) profileResponse {
	return profileResponse{
		Name:   u.Name,
		Email:  u.Email,
		Phone:  u.Phone,
		Avatar: u.Avatar,
		Role:   u.Role,
	}
}
