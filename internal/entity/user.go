package entity

import (
	"time"

	"github.com/gofrs/uuid/v5"
	jwt "github.com/golang-jwt/jwt/v5"
)

// Roles form a closed set; every user carries exactly one.
const (
	RoleAdmin       = "admin"
	RoleCoordinador = "coordinador"
	RoleLider       = "lider"
)

func IsValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleCoordinador, RoleLider:
		return true
	default:
		return false
	}
}

type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	FullName     string    `json:"fullName"`
	Phone        string    `json:"phone"`
	Role         string    `json:"role"`
	Active       bool      `json:"active"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type UserJwtInfo struct {
	ID   uuid.UUID `json:"id"`
	Role string    `json:"role"`
}

type UserJwtClaims struct {
	User UserJwtInfo
	jwt.RegisteredClaims
}

type UserTokens struct {
	AccessToken string    `json:"accessToken"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

type UsersFilter struct {
	Page    uint64
	Limit   uint64
	Role    string
	SortBy  SortBy
	OrderBy OrderBy
}
