package models

import "time"

// Role gates which endpoints an account may call.
type Role string

const (
	RoleUser   Role = "User" // patient accounts
	RoleDoctor Role = "Doctor"
	RoleAdmin  Role = "Admin"
)

// User represents the 'users' table.
type User struct {
	ID           uint64    `gorm:"primaryKey" json:"id"`
	Email        string    `gorm:"uniqueIndex;size:100;not null" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"` // never serialized back to clients
	Role         Role      `gorm:"size:20;not null" json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
}

// RegisterInput is the body of POST /auth/register.
type RegisterInput struct {
	Email    string `json:"email" binding:"required,email,max=100"`
	Password string `json:"password" binding:"required,min=6,max=72"`
}

// LoginInput is the body of POST /auth/login.
type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the bearer credential.
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	UserID    uint64    `json:"userId"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
}

// UserView is what ResolveUser exposes about an account.
type UserView struct {
	ID    uint64 `json:"id"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}
