package domain

import "time"

// User is the stored account record. Password holds the bcrypt hash (never
// plaintext at rest) and RefreshToken the single currently-valid rotation
// token; both are cleared before a User leaves the service layer.
type User struct {
	ID           string    `json:"id"`
	UserName     string    `json:"userName" validate:"required,min=3,max=30,alphanum"`
	Email        string    `json:"email" validate:"required,email"`
	FullName     string    `json:"fullName" validate:"required"`
	Avatar       string    `json:"avatar"`
	CoverImage   string    `json:"coverImage,omitempty"`
	Password     string    `json:"password,omitempty"`
	RefreshToken string    `json:"refreshToken,omitempty"`
	WatchHistory []string  `json:"watchHistory,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type RegisterRequest struct {
	UserName string `json:"userName" validate:"required,min=3,max=30,alphanum"`
	FullName string `json:"fullName" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginRequest accepts either identifier; the service rejects the request
// when both are blank.
type LoginRequest struct {
	UserName string `json:"userName"`
	Email    string `json:"email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	User         *User  `json:"user"`
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// TokenPair is the result of a rotation: both tokens are replaced and the
// previous refresh token is no longer accepted.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required"`
}

type UpdateAccountRequest struct {
	FullName string `json:"fullName" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
}
