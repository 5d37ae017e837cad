package middlewares

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/manudev/course-catalog-api/internal/jwt"
	"github.com/manudev/course-catalog-api/internal/logger"
)

// RolePrefix is prepended, with the role name upper-cased, when mapping
// role names to authorities.
const RolePrefix = "ROLE_"

// Principal is the authenticated identity attached to a request after
// successful token verification.
type Principal struct {
	Subject     string   // User id as a string, the token subject
	Email       string   // Email claim
	Authorities []string // Role names mapped to ROLE_* tags
}

type principalKey struct{}

// WithPrincipal stores the principal in the context.
func WithPrincipal(ctx context.Context, p *Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// GetPrincipal retrieves the request principal. Returns nil if the request
// was not authenticated.
func GetPrincipal(ctx context.Context) *Principal {
	p, _ := ctx.Value(principalKey{}).(*Principal)
	return p
}

// TokenParser defines the minimal token operations the middleware needs.
type TokenParser interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	Parse(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// AuthMiddleware verifies a bearer token when one is present and attaches
// the resulting principal to the request context.
//
// Requests without an Authorization header (or with a non-bearer scheme)
// pass through unauthenticated; route-level policy decides whether that is
// acceptable. A bearer token that fails verification short-circuits the
// request with 401 and a JSON error body.
func AuthMiddleware(parser TokenParser) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := parser.GetTokenFromRequest(ctx, r)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := parser.Parse(ctx, tokenString)
			if err != nil {
				logger.Log.Errorw("token verification failed", "err", err)
				writeUnauthorized(w, "invalid token")
				return
			}

			principal := &Principal{
				Subject:     strconv.FormatInt(claims.UserID, 10),
				Email:       claims.Email,
				Authorities: mapAuthorities(claims.Roles),
			}

			next.ServeHTTP(w, r.WithContext(WithPrincipal(ctx, principal)))
		})
	}
}

// RequireAuthenticated rejects any request that reached it without a
// previously established principal.
func RequireAuthenticated() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if GetPrincipal(r.Context()) == nil {
				writeUnauthorized(w, "authentication required")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func mapAuthorities(roles []string) []string {
	authorities := make([]string, 0, len(roles))
	for _, role := range roles {
		authorities = append(authorities, RolePrefix+strings.ToUpper(role))
	}
	return authorities
}

func writeUnauthorized(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
