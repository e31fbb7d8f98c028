package dto

import (
	"github.com/google/uuid"
)

/* ===================== REQUESTS ===================== */

type LoginRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=6"`
}

/* ===================== RESPONSES ===================== */

type LoginResponse struct {
	AccessToken string     `json:"access_token"`
	TokenType   string     `json:"token_type"`
	ExpiresIn   int64      `json:"expires_in"` // detik
	UserID      uuid.UUID  `json:"user_id"`
	Username    string     `json:"username"`
	Role        string     `json:"role"`
	UserType    *string    `json:"user_type,omitempty"`
	PersonID    *uuid.UUID `json:"person_id,omitempty"`
}
