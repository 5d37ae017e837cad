package jwt

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Error variables
var (
	// ErrNoBearerToken is returned when the Authorization header is absent
	// or does not use the bearer scheme.
	ErrNoBearerToken = errors.New("no bearer token in request")

	// ErrInvalidToken is returned when a token fails verification.
	ErrInvalidToken = errors.New("invalid token")
)

// Claims carries the verified payload of an issued token.
type Claims struct {
	UserID int64    // Token subject, the user's id
	Email  string   // User email
	Roles  []string // Attached role names, empty when the claim is absent
}

// JWT issues and verifies signed, time-limited tokens.
type JWT struct {
	SecretKey string        // Secret key for signing tokens
	Exp       time.Duration // Token expiration duration
}

// New creates a new JWT instance
func New(secretKey string, expiration time.Duration) *JWT {
	return &JWT{
		SecretKey: secretKey,
		Exp:       expiration,
	}
}

// Generate creates a token for a user. The subject is the user id rendered
// as a string; id, email, and role names travel as custom claims.
func (j *JWT) Generate(ctx context.Context, userID int64, email string, roles []string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   strconv.FormatInt(userID, 10),
		"id":    userID,
		"email": email,
		"roles": roles,
		"exp":   now.Add(j.Exp).Unix(),
		"iat":   now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.SecretKey))
}

// Parse verifies a token string and returns its claims.
func (j *JWT) Parse(ctx context.Context, tokenString string) (*Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(j.SecretKey), nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	sub, err := mapClaims.GetSubject()
	if err != nil || sub == "" {
		return nil, fmt.Errorf("%w: missing subject", ErrInvalidToken)
	}
	userID, err := strconv.ParseInt(sub, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: malformed subject", ErrInvalidToken)
	}

	email, _ := mapClaims["email"].(string)

	return &Claims{
		UserID: userID,
		Email:  email,
		Roles:  normalizeRoles(mapClaims["roles"]),
	}, nil
}

// normalizeRoles accepts the roles claim in any of the shapes an untyped
// payload can decode to: a sequence, a single scalar, or absent.
// Non-string members are stringified rather than rejected.
func normalizeRoles(raw any) []string {
	switch v := raw.(type) {
	case nil:
		return []string{}
	case []string:
		return v
	case []any:
		roles := make([]string, 0, len(v))
		for _, item := range v {
			roles = append(roles, stringify(item))
		}
		return roles
	default:
		return []string{stringify(v)}
	}
}

func stringify(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	// JSON numbers decode as float64; render integers without a fraction.
	if f, ok := v.(float64); ok && f == float64(int64(f)) {
		return strconv.FormatInt(int64(f), 10)
	}
	return fmt.Sprint(v)
}

// GetTokenFromRequest extracts the bearer token from the Authorization header.
// Returns ErrNoBearerToken when the header is absent or uses another scheme.
func (j *JWT) GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", ErrNoBearerToken
	}

	parts := strings.Fields(authHeader)
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return "", ErrNoBearerToken
	}

	return parts[1], nil
}
