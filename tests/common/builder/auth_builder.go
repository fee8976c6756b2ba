//go:build unit || e2e

package builder

import (
	reqdto "moveit-backend/internal/handler/dto/request"
)

type AuthBuilder struct {
	Email    string
	Name     string
	Password string
}

func NewAuthBuilder() *AuthBuilder {
	return &AuthBuilder{
		Email:    "test@example.com",
		Name:     "Test Customer",
		Password: "password123",
	}
}

func (a *AuthBuilder) BuildLoginDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Email:    a.Email,
		Password: a.Password,
	}
}

func (a *AuthBuilder) BuildRegisterDTO() reqdto.RegisterRequest {
	return reqdto.RegisterRequest{
		Email:    a.Email,
		Name:     a.Name,
		Password: a.Password,
	}
}
