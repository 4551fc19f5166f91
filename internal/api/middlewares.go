package api

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"runtime/debug"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/golang-jwt/jwt/v5/request"

	"github.com/Juana-Valentina/logi-tofos-sub001/internal/authz"
	"github.com/Juana-Valentina/logi-tofos-sub001/internal/entity"
	"github.com/Juana-Valentina/logi-tofos-sub001/pkg/logger"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=middlewares.go -destination=../mocks/middlewares.go -package=mocks

type TokenVerifier interface {
	Verify(accessToken string) (entity.User, error)
}

type UserStore interface {
	ResolveUser(ctx context.Context, id uuid.UUID) (entity.User, error)
}

type Auditor interface {
	SendAccessDenied(ctx context.Context, denied entity.AccessDenied)
}

type Middleware struct {
	verifier TokenVerifier
	users    UserStore
	auditor  Auditor
}

func NewMiddleware(verifier TokenVerifier, users UserStore, auditor Auditor) *Middleware {
	return &Middleware{
		verifier: verifier,
		users:    users,
		auditor:  auditor,
	}
}

func (m *Middleware) Log(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		ctx := logger.WithRequestID(r.Context(), uuid.Must(uuid.NewV4()).String())

		slog.InfoContext(ctx, "incoming request", "method", r.Method, "url", r.URL.Path, "user_ip", entity.IPFromContext(ctx))

		next.ServeHTTP(w, r.WithContext(ctx))

		slog.InfoContext(ctx, "request completed", "duration_ms", time.Since(start).Milliseconds())
	})
}

func (m *Middleware) Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func(ctx context.Context) {
			err := recover()
			if err != nil {
				slog.ErrorContext(ctx, "panic", "error", err, "stack", string(debug.Stack()))
			}
		}(r.Context())
		next.ServeHTTP(w, r)
	})
}

func (m *Middleware) Cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin != "" {
			w.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			w.Header().Set("Access-Control-Allow-Origin", "*")
		}

		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, Origin, Accept, User-Agent, Cache-Control, x-access-token")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (m *Middleware) WithIP(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := removePort(r.RemoteAddr)

		if xForwardedFor := r.Header.Get("X-Forwarded-For"); xForwardedFor != "" {
			for _, part := range strings.Split(xForwardedFor, ",") {
				part = removePort(strings.TrimSpace(part))
				if net.ParseIP(part) != nil {
					ip = part
					break
				}
			}
		}

		ctx := context.WithValue(r.Context(), entity.CtxKeyIP{}, ip)
		ctx = logger.WithIP(ctx, ip)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// tokenExtractor looks in the Authorization header first; the legacy
// x-access-token header is only consulted when no bearer token is set.
var tokenExtractor = request.MultiExtractor{
	request.BearerExtractor{},
	request.HeaderExtractor{"x-access-token"},
}

// Authenticate verifies the access token and puts the principal from
// its claims into the request context. Any credential failure answers
// 401 without touching storage.
func (m *Middleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		accessToken, err := tokenExtractor.ExtractToken(r)
		if err != nil {
			SendErr(ctx, w, http.StatusUnauthorized, entity.ErrTokenMissing, "Token de acceso requerido")
			return
		}

		user, err := m.verifier.Verify(accessToken)
		if err != nil {
			if errors.Is(err, entity.ErrTokenExpired) {
				SendErr(ctx, w, http.StatusUnauthorized, err, "El token ha expirado")
				return
			}

			SendErr(ctx, w, http.StatusUnauthorized, err, "Token inválido")

			return
		}

		ctx = logger.WithUserID(ctx, user.ID.String())
		ctx = entity.SetUserToContext(ctx, user)
		ctx = entity.SetTokenToContext(ctx, accessToken)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ResolveUser swaps the token principal for the persisted record, so
// accounts deactivated or deleted after issuance are rejected. Mounted
// on routes where stale claims are not acceptable.
func (m *Middleware) ResolveUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		user, err := entity.UserFromContext(ctx)
		if err != nil {
			SendErr(ctx, w, http.StatusUnauthorized, err, "Token de acceso requerido")
			return
		}

		resolved, err := m.users.ResolveUser(ctx, user.ID)
		if err != nil {
			if errors.Is(err, entity.ErrUserNotFound) {
				SendErr(ctx, w, http.StatusUnauthorized, err, "El usuario ya no existe")
				return
			}

			if errors.Is(err, entity.ErrUserInactive) {
				SendErr(ctx, w, http.StatusUnauthorized, err, "El usuario está inactivo")
				return
			}

			SendErr(ctx, w, http.StatusInternalServerError, err, errInternalText)

			return
		}

		ctx = entity.SetUserToContext(ctx, resolved)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Permit gates every route of a resource group behind the role policy
// table. The action is derived from the HTTP method; denials are pushed
// to the audit stream before answering.
func (m *Middleware) Permit(class authz.Class) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			user, err := entity.UserFromContext(ctx)
			if err != nil {
				SendErr(ctx, w, http.StatusUnauthorized, err, "Token de acceso requerido")
				return
			}

			action, ok := authz.ActionFromMethod(r.Method)
			if !ok {
				m.auditor.SendAccessDenied(ctx, entity.AccessDenied{
					Kind:     "access_denied",
					UserID:   user.ID,
					Role:     user.Role,
					Resource: string(class),
					Action:   strings.ToLower(r.Method),
					Path:     r.URL.Path,
				})

				SendErr(ctx, w, http.StatusForbidden, entity.ErrForbidden, errForbiddenText)

				return
			}

			if !authz.IsPermitted(user.Role, class, action) {
				m.auditor.SendAccessDenied(ctx, entity.AccessDenied{
					Kind:     "access_denied",
					UserID:   user.ID,
					Role:     user.Role,
					Resource: string(class),
					Action:   string(action),
					Path:     r.URL.Path,
				})

				SendForbidden(ctx, w, authz.AllowedRoles(class, action), user.Role)

				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func removePort(addr string) string {
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		return addr
	}

	return host
}
