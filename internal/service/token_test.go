package service_test

import (
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/Juana-Valentina/logi-tofos-sub001/internal/entity"
	"github.com/Juana-Valentina/logi-tofos-sub001/internal/service"
)

const testSecret = "test-secret-test-secret-test-secret"

func TestTokenIssuer_RoundTrip(t *testing.T) {
	t.Parallel()

	issuer := service.NewTokenIssuer(testSecret, time.Hour)

	user := entity.User{
		ID:   uuid.Must(uuid.NewV4()),
		Role: entity.RoleCoordinador,
	}

	tokens, err := issuer.Issue(user)
	require.NoError(t, err)
	require.NotEmpty(t, tokens.AccessToken)
	require.WithinDuration(t, time.Now().Add(time.Hour), tokens.ExpiresAt, time.Minute)

	got, err := issuer.Verify(tokens.AccessToken)
	require.NoError(t, err)
	require.Equal(t, user.ID, got.ID)
	require.Equal(t, user.Role, got.Role)
	require.True(t, got.Active)
}

func TestTokenIssuer_Expired(t *testing.T) {
	t.Parallel()

	issuer := service.NewTokenIssuer(testSecret, time.Millisecond)

	tokens, err := issuer.Issue(entity.User{
		ID:   uuid.Must(uuid.NewV4()),
		Role: entity.RoleAdmin,
	})
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	_, err = issuer.Verify(tokens.AccessToken)
	require.ErrorIs(t, err, entity.ErrTokenExpired)
}

func TestTokenIssuer_WrongSecret(t *testing.T) {
	t.Parallel()

	issuer := service.NewTokenIssuer(testSecret, time.Hour)
	other := service.NewTokenIssuer("another-secret-another-secret", time.Hour)

	tokens, err := other.Issue(entity.User{
		ID:   uuid.Must(uuid.NewV4()),
		Role: entity.RoleAdmin,
	})
	require.NoError(t, err)

	_, err = issuer.Verify(tokens.AccessToken)
	require.ErrorIs(t, err, entity.ErrTokenInvalid)
}

func TestTokenIssuer_Garbage(t *testing.T) {
	t.Parallel()

	issuer := service.NewTokenIssuer(testSecret, time.Hour)

	_, err := issuer.Verify("not-a-token")
	require.ErrorIs(t, err, entity.ErrTokenInvalid)
}

func TestTokenIssuer_MissingIdentityClaims(t *testing.T) {
	t.Parallel()

	issuer := service.NewTokenIssuer(testSecret, time.Hour)

	tests := map[string]entity.UserJwtInfo{
		"nil user id":  {Role: entity.RoleAdmin},
		"unknown role": {ID: uuid.Must(uuid.NewV4()), Role: "superadmin"},
		"empty role":   {ID: uuid.Must(uuid.NewV4())},
	}

	for name, info := range tests {
		info := info

		t.Run(name, func(t *testing.T) {
			t.Parallel()

			claims := entity.UserJwtClaims{
				User: info,
				RegisteredClaims: jwt.RegisteredClaims{
					IssuedAt:  jwt.NewNumericDate(time.Now()),
					ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
				},
			}

			accessToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
			require.NoError(t, err)

			_, err = issuer.Verify(accessToken)
			require.ErrorIs(t, err, entity.ErrTokenInvalid)
		})
	}
}

func TestTokenIssuer_RejectsNoneAlgorithm(t *testing.T) {
	t.Parallel()

	issuer := service.NewTokenIssuer(testSecret, time.Hour)

	claims := entity.UserJwtClaims{
		User: entity.UserJwtInfo{
			ID:   uuid.Must(uuid.NewV4()),
			Role: entity.RoleAdmin,
		},
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}

	accessToken, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = issuer.Verify(accessToken)
	require.ErrorIs(t, err, entity.ErrTokenInvalid)
}
