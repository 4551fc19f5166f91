package api_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Juana-Valentina/logi-tofos-sub001/internal/api"
	"github.com/Juana-Valentina/logi-tofos-sub001/internal/authz"
	"github.com/Juana-Valentina/logi-tofos-sub001/internal/entity"
	"github.com/Juana-Valentina/logi-tofos-sub001/internal/mocks"
)

type TestMiddleware struct {
	verifier *mocks.MockTokenVerifier
	users    *mocks.MockUserStore
	auditor  *mocks.MockAuditor
	mw       *api.Middleware
}

func NewTestMiddleware(t *testing.T) *TestMiddleware {
	t.Helper()

	ctrl := gomock.NewController(t)
	verifier := mocks.NewMockTokenVerifier(ctrl)
	users := mocks.NewMockUserStore(ctrl)
	auditor := mocks.NewMockAuditor(ctrl)

	return &TestMiddleware{
		verifier: verifier,
		users:    users,
		auditor:  auditor,
		mw:       api.NewMiddleware(verifier, users, auditor),
	}
}

func okHandler(called *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*called = true
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthenticate_MissingToken(t *testing.T) {
	t.Parallel()

	tm := NewTestMiddleware(t)

	called := false
	handler := tm.mw.Authenticate(okHandler(&called))

	req := httptest.NewRequest(http.MethodGet, "/api/events", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.False(t, called)
}

func TestAuthenticate_BearerTakesPrecedence(t *testing.T) {
	t.Parallel()

	tm := NewTestMiddleware(t)

	user := entity.User{ID: uuid.Must(uuid.NewV4()), Role: entity.RoleAdmin, Active: true}
	tm.verifier.EXPECT().Verify("from-bearer").Return(user, nil)

	var gotUser entity.User

	handler := tm.mw.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		u, err := entity.UserFromContext(r.Context())
		require.NoError(t, err)
		gotUser = u
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/events", nil)
	req.Header.Set("Authorization", "Bearer from-bearer")
	req.Header.Set("x-access-token", "from-legacy-header")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, user.ID, gotUser.ID)
}

func TestAuthenticate_LegacyHeaderFallback(t *testing.T) {
	t.Parallel()

	tm := NewTestMiddleware(t)

	user := entity.User{ID: uuid.Must(uuid.NewV4()), Role: entity.RoleLider, Active: true}
	tm.verifier.EXPECT().Verify("from-legacy-header").Return(user, nil)

	called := false
	handler := tm.mw.Authenticate(okHandler(&called))

	req := httptest.NewRequest(http.MethodGet, "/api/events", nil)
	req.Header.Set("x-access-token", "from-legacy-header")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, called)
}

func TestAuthenticate_ExpiredToken(t *testing.T) {
	t.Parallel()

	tm := NewTestMiddleware(t)

	tm.verifier.EXPECT().Verify("expired").
		Return(entity.User{}, fmt.Errorf("parse access token: %w", entity.ErrTokenExpired))

	called := false
	handler := tm.mw.Authenticate(okHandler(&called))

	req := httptest.NewRequest(http.MethodGet, "/api/events", nil)
	req.Header.Set("Authorization", "Bearer expired")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.False(t, called)

	var resp api.ResponseError

	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Equal(t, "El token ha expirado", resp.Message)
}

func TestAuthenticate_InvalidToken(t *testing.T) {
	t.Parallel()

	tm := NewTestMiddleware(t)

	tm.verifier.EXPECT().Verify("garbage").
		Return(entity.User{}, fmt.Errorf("parse access token: %w", entity.ErrTokenInvalid))

	called := false
	handler := tm.mw.Authenticate(okHandler(&called))

	req := httptest.NewRequest(http.MethodGet, "/api/events", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.False(t, called)
}

func TestResolveUser_Inactive(t *testing.T) {
	t.Parallel()

	tm := NewTestMiddleware(t)

	user := entity.User{ID: uuid.Must(uuid.NewV4()), Role: entity.RoleAdmin, Active: true}

	tm.users.EXPECT().ResolveUser(gomock.Any(), user.ID).
		Return(entity.User{}, fmt.Errorf("user %s: %w", user.ID, entity.ErrUserInactive))

	called := false
	handler := tm.mw.ResolveUser(okHandler(&called))

	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	req = req.WithContext(entity.SetUserToContext(req.Context(), user))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.False(t, called)
}

func TestResolveUser_StorageFault(t *testing.T) {
	t.Parallel()

	tm := NewTestMiddleware(t)

	user := entity.User{ID: uuid.Must(uuid.NewV4()), Role: entity.RoleAdmin, Active: true}

	tm.users.EXPECT().ResolveUser(gomock.Any(), user.ID).
		Return(entity.User{}, errors.New("connection refused"))

	called := false
	handler := tm.mw.ResolveUser(okHandler(&called))

	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	req = req.WithContext(entity.SetUserToContext(req.Context(), user))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	// A storage fault must never grant access.
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.False(t, called)
}

func TestPermit_CoordinadorCannotDelete(t *testing.T) {
	t.Parallel()

	tm := NewTestMiddleware(t)

	user := entity.User{ID: uuid.Must(uuid.NewV4()), Role: entity.RoleCoordinador, Active: true}

	var denied entity.AccessDenied

	tm.auditor.EXPECT().SendAccessDenied(gomock.Any(), gomock.Any()).
		Do(func(_ any, d entity.AccessDenied) {
			denied = d
		})

	called := false
	handler := tm.mw.Permit(authz.ClassEvent)(okHandler(&called))

	req := httptest.NewRequest(http.MethodDelete, "/api/events/123", nil)
	req = req.WithContext(entity.SetUserToContext(req.Context(), user))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusForbidden, rec.Code)
	require.False(t, called)

	require.Equal(t, user.ID, denied.UserID)
	require.Equal(t, entity.RoleCoordinador, denied.Role)
	require.Equal(t, "event", denied.Resource)
	require.Equal(t, "delete", denied.Action)

	var resp api.ResponseError

	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Equal(t, []string{entity.RoleAdmin}, resp.RequiredRoles)
	require.Equal(t, entity.RoleCoordinador, resp.CurrentRole)
}

func TestPermit_UnmappedMethodIsAudited(t *testing.T) {
	t.Parallel()

	tm := NewTestMiddleware(t)

	user := entity.User{ID: uuid.Must(uuid.NewV4()), Role: entity.RoleAdmin, Active: true}

	var denied entity.AccessDenied

	tm.auditor.EXPECT().SendAccessDenied(gomock.Any(), gomock.Any()).
		Do(func(_ any, d entity.AccessDenied) {
			denied = d
		})

	called := false
	handler := tm.mw.Permit(authz.ClassEvent)(okHandler(&called))

	req := httptest.NewRequest(http.MethodTrace, "/api/events", nil)
	req = req.WithContext(entity.SetUserToContext(req.Context(), user))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusForbidden, rec.Code)
	require.False(t, called)

	require.Equal(t, user.ID, denied.UserID)
	require.Equal(t, "event", denied.Resource)
	require.Equal(t, "trace", denied.Action)
	require.Equal(t, "/api/events", denied.Path)
}

func TestPermit_LiderIsReadOnly(t *testing.T) {
	t.Parallel()

	tm := NewTestMiddleware(t)

	user := entity.User{ID: uuid.Must(uuid.NewV4()), Role: entity.RoleLider, Active: true}

	tm.auditor.EXPECT().SendAccessDenied(gomock.Any(), gomock.Any())

	called := false
	handler := tm.mw.Permit(authz.ClassEvent)(okHandler(&called))

	req := httptest.NewRequest(http.MethodPost, "/api/events", nil)
	req = req.WithContext(entity.SetUserToContext(req.Context(), user))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusForbidden, rec.Code)
	require.False(t, called)
}

func TestPermit_AllowedRequestPasses(t *testing.T) {
	t.Parallel()

	tm := NewTestMiddleware(t)

	user := entity.User{ID: uuid.Must(uuid.NewV4()), Role: entity.RoleLider, Active: true}

	called := false
	handler := tm.mw.Permit(authz.ClassEvent)(okHandler(&called))

	req := httptest.NewRequest(http.MethodGet, "/api/events", nil)
	req = req.WithContext(entity.SetUserToContext(req.Context(), user))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, called)
}

func TestPermit_MissingPrincipal(t *testing.T) {
	t.Parallel()

	tm := NewTestMiddleware(t)

	called := false
	handler := tm.mw.Permit(authz.ClassEvent)(okHandler(&called))

	req := httptest.NewRequest(http.MethodGet, "/api/events", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.False(t, called)
}
