package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/Juana-Valentina/logi-tofos-sub001/internal/entity"
)

// TokenIssuer signs access tokens at login and verifies them on every
// protected request. HS256 with a shared secret; expiry is fixed at
// issuance from configuration.
type TokenIssuer struct {
	secret []byte
	expiry time.Duration
}

func NewTokenIssuer(secret string, expiry time.Duration) *TokenIssuer {
	return &TokenIssuer{
		secret: []byte(secret),
		expiry: expiry,
	}
}

func (t *TokenIssuer) Issue(user entity.User) (entity.UserTokens, error) {
	now := time.Now()
	expiresAt := now.Add(t.expiry)

	claims := entity.UserJwtClaims{
		User: entity.UserJwtInfo{
			ID:   user.ID,
			Role: user.Role,
		},
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.Must(uuid.NewV4()).String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	accessToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
	if err != nil {
		return entity.UserTokens{}, fmt.Errorf("sign access token: %w", err)
	}

	return entity.UserTokens{
		AccessToken: accessToken,
		ExpiresAt:   expiresAt,
	}, nil
}

// Verify parses and validates an access token, returning the principal
// carried in its claims. Failures are classified: expired tokens yield
// entity.ErrTokenExpired, everything else entity.ErrTokenInvalid.
func (t *TokenIssuer) Verify(accessToken string) (entity.User, error) {
	var claims entity.UserJwtClaims

	token, err := jwt.ParseWithClaims(accessToken, &claims, func(token *jwt.Token) (any, error) {
		_, ok := token.Method.(*jwt.SigningMethodHMAC)
		if !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}

		return t.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return entity.User{}, fmt.Errorf("parse access token: %w", entity.ErrTokenExpired)
		}

		return entity.User{}, fmt.Errorf("parse access token: %w", entity.ErrTokenInvalid)
	}

	if !token.Valid {
		return entity.User{}, fmt.Errorf("invalid access token: %w", entity.ErrTokenInvalid)
	}

	// A token without identity or with a role outside the closed set
	// must never pass: the gate fails closed.
	if claims.User.ID.IsNil() || !entity.IsValidRole(claims.User.Role) {
		return entity.User{}, fmt.Errorf("missing identity claims: %w", entity.ErrTokenInvalid)
	}

	return entity.User{
		ID:     claims.User.ID,
		Role:   claims.User.Role,
		Active: true,
	}, nil
}
