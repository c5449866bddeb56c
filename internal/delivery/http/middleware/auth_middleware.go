package middleware

import (
	"context"
	"net/http"
	"strings"

	"healthcare-management/pkg/apperror"
	"healthcare-management/pkg/jwt"
	"healthcare-management/pkg/response"
	"healthcare-management/pkg/session"

	"github.com/sirupsen/logrus"
)

type contextKey string

const (
	CallerKey contextKey = "caller"
)

// CallerSource records which credential identified the caller.
type CallerSource int

const (
	Unresolved CallerSource = iota
	ViaToken
	ViaSession
)

func (s CallerSource) String() string {
	switch s {
	case ViaToken:
		return "token"
	case ViaSession:
		return "session"
	default:
		return "unresolved"
	}
}

type Caller struct {
	UserID    uint
	Email     string
	SessionID string
}

// CallerResolution is the outcome of authenticating a request. Err is set
// exactly when Source is Unresolved.
type CallerResolution struct {
	Source CallerSource
	Caller Caller
	Err    error
}

var (
	errMissingCredentials = apperror.New(apperror.KindUnauthorized, "Not authenticated")
	errMalformedHeader    = apperror.New(apperror.KindUnauthorized, "Invalid authorization header format")
	errInvalidToken       = apperror.New(apperror.KindUnauthorized, "Invalid or expired token")
	errInvalidSession     = apperror.New(apperror.KindUnauthorized, "Session expired or invalid")
)

type AuthMiddleware struct {
	log        *logrus.Logger
	jwtService *jwt.JWTService
	sessions   session.Store
	cookieName string
}

func NewAuthMiddleware(log *logrus.Logger, jwtService *jwt.JWTService, sessions session.Store, cookieName string) *AuthMiddleware {
	return &AuthMiddleware{
		log:        log,
		jwtService: jwtService,
		sessions:   sessions,
		cookieName: cookieName,
	}
}

// Resolve applies the token-first policy. A request carrying an
// Authorization header is judged by that header alone; only requests
// without one fall back to the session cookie.
func (m *AuthMiddleware) Resolve(r *http.Request) CallerResolution {
	if authHeader := r.Header.Get("Authorization"); authHeader != "" {
		return m.resolveToken(authHeader)
	}
	return m.resolveSession(r)
}

func (m *AuthMiddleware) resolveToken(authHeader string) CallerResolution {
	// Extract token from "Bearer <token>"
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return CallerResolution{Source: Unresolved, Err: errMalformedHeader}
	}

	claims, err := m.jwtService.ValidateToken(parts[1])
	if err != nil {
		return CallerResolution{Source: Unresolved, Err: errInvalidToken}
	}

	return CallerResolution{
		Source: ViaToken,
		Caller: Caller{UserID: claims.UserID, Email: claims.Email},
	}
}

func (m *AuthMiddleware) resolveSession(r *http.Request) CallerResolution {
	cookie, err := r.Cookie(m.cookieName)
	if err != nil || cookie.Value == "" {
		return CallerResolution{Source: Unresolved, Err: errMissingCredentials}
	}

	sess, err := m.sessions.Get(r.Context(), cookie.Value)
	if err != nil {
		m.log.Warnf("Failed to load session: %+v", err)
		return CallerResolution{
			Source: Unresolved,
			Err:    apperror.Wrap(apperror.KindUnavailable, "Session store unavailable", err),
		}
	}
	if sess == nil {
		return CallerResolution{Source: Unresolved, Err: errInvalidSession}
	}

	return CallerResolution{
		Source: ViaSession,
		Caller: Caller{UserID: sess.UserID, Email: sess.Email, SessionID: sess.ID},
	}
}

func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resolution := m.Resolve(r)
		if resolution.Source == Unresolved {
			response.FromError(w, resolution.Err, "Failed to authenticate")
			return
		}

		ctx := context.WithValue(r.Context(), CallerKey, resolution.Caller)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetCallerFromContext extracts the authenticated caller from context
func GetCallerFromContext(ctx context.Context) (Caller, bool) {
	caller, ok := ctx.Value(CallerKey).(Caller)
	return caller, ok
}

// GetUserIDFromContext extracts user ID from context
func GetUserIDFromContext(ctx context.Context) (uint, bool) {
	caller, ok := GetCallerFromContext(ctx)
	return caller.UserID, ok
}
