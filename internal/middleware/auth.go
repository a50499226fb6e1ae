package middleware

import (
	"strings"

	"github.com/deppfellow/jobly/internal/errs"
	"github.com/deppfellow/jobly/internal/lib/token"
	"github.com/deppfellow/jobly/internal/server"
	"github.com/labstack/echo/v4"
)

const (
	ClaimsKey = "claims"

	RoleAdmin = "admin"
	RoleUser  = "user"
)

type AuthMiddleware struct {
	server *server.Server
	tokens *token.Manager
}

func NewAuthMiddleware(s *server.Server) *AuthMiddleware {
	return &AuthMiddleware{
		server: s,
		tokens: token.NewManager(s.Config.Auth),
	}
}

// Authenticate reads an optional "Authorization: Bearer <token>" header and,
// when the token verifies, stores its claims on the context. A missing or
// invalid token is not an error here; the request continues anonymously and
// the Require* middlewares decide.
func (auth *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		raw, ok := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
		if !ok {
			return next(c)
		}

		claims, err := auth.tokens.Parse(raw)
		if err != nil {
			auth.server.Logger.Debug().
				Err(err).
				Str("request_id", GetRequestID(c)).
				Msg("ignoring invalid bearer token")
			return next(c)
		}

		role := RoleUser
		if claims.IsAdmin {
			role = RoleAdmin
		}

		c.Set(ClaimsKey, claims)
		c.Set(UserIDKey, claims.Username)
		c.Set(UserRoleKey, role)

		return next(c)
	}
}

func bearerToken(header string) (string, bool) {
	scheme, raw, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	raw = strings.TrimSpace(raw)
	return raw, raw != ""
}

// GetClaims returns the verified token claims, or nil for anonymous
// requests.
func GetClaims(c echo.Context) *token.Claims {
	if claims, ok := c.Get(ClaimsKey).(*token.Claims); ok {
		return claims
	}
	return nil
}

func unauthorized() error {
	return errs.NewUnauthorizedError("Unauthorized", false)
}

func (auth *AuthMiddleware) RequireLoggedIn(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if GetClaims(c) == nil {
			return unauthorized()
		}
		return next(c)
	}
}

func (auth *AuthMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims := GetClaims(c)
		if claims == nil || !claims.IsAdmin {
			return unauthorized()
		}
		return next(c)
	}
}

// RequireCorrectUserOrAdmin lets admins through, and other users only when
// the :username path parameter names themselves.
func (auth *AuthMiddleware) RequireCorrectUserOrAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims := GetClaims(c)
		if claims == nil {
			return unauthorized()
		}
		if !claims.IsAdmin && claims.Username != c.Param("username") {
			return unauthorized()
		}
		return next(c)
	}
}
