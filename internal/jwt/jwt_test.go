package jwt

import (
	"context"
	"net/http"
	"testing"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

func TestJWT_GenerateAndParse(t *testing.T) {
	j := New("test-secret", time.Minute)
	ctx := context.Background()

	token, err := j.Generate(ctx, 42, "alice@example.com", []string{"admin", "student"})
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := j.Parse(ctx, token)
	assert.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "alice@example.com", claims.Email)
	assert.Equal(t, []string{"admin", "student"}, claims.Roles)
}

func TestJWT_ExpiredToken(t *testing.T) {
	j := New("test-secret", -time.Minute) // already expired
	ctx := context.Background()

	token, err := j.Generate(ctx, 42, "alice@example.com", nil)
	assert.NoError(t, err)

	claims, err := j.Parse(ctx, token)
	assert.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.Nil(t, claims)
}

func TestJWT_WrongSecret(t *testing.T) {
	ctx := context.Background()

	token, err := New("secret-a", time.Minute).Generate(ctx, 1, "a@example.com", nil)
	assert.NoError(t, err)

	_, err = New("secret-b", time.Minute).Parse(ctx, token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

// signRaw builds a token with an arbitrary claim set, bypassing Generate,
// to exercise the shape-tolerant roles decode.
func signRaw(t *testing.T, secret string, claims jwtlib.MapClaims) string {
	t.Helper()
	if _, ok := claims["exp"]; !ok {
		claims["exp"] = time.Now().Add(time.Minute).Unix()
	}
	token, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims).SignedString([]byte(secret))
	assert.NoError(t, err)
	return token
}

func TestJWT_RolesClaimShapes(t *testing.T) {
	j := New("test-secret", time.Minute)
	ctx := context.Background()

	tests := []struct {
		name      string
		roles     any
		wantRoles []string
	}{
		{name: "sequence", roles: []string{"admin", "student"}, wantRoles: []string{"admin", "student"}},
		{name: "single scalar", roles: "admin", wantRoles: []string{"admin"}},
		{name: "absent", roles: nil, wantRoles: []string{}},
		{name: "numeric members stringified", roles: []any{"admin", 7}, wantRoles: []string{"admin", "7"}},
		{name: "numeric scalar stringified", roles: 7, wantRoles: []string{"7"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims := jwtlib.MapClaims{"sub": "42", "email": "a@example.com"}
			if tt.roles != nil {
				claims["roles"] = tt.roles
			}

			parsed, err := j.Parse(ctx, signRaw(t, "test-secret", claims))
			assert.NoError(t, err)
			assert.Equal(t, tt.wantRoles, parsed.Roles)
		})
	}
}

func TestJWT_MissingOrMalformedSubject(t *testing.T) {
	j := New("test-secret", time.Minute)
	ctx := context.Background()

	_, err := j.Parse(ctx, signRaw(t, "test-secret", jwtlib.MapClaims{"email": "a@example.com"}))
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = j.Parse(ctx, signRaw(t, "test-secret", jwtlib.MapClaims{"sub": "not-a-number"}))
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWT_GetTokenFromRequest(t *testing.T) {
	j := New("test-secret", time.Minute)
	ctx := context.Background()

	tests := []struct {
		name      string
		header    string
		wantToken string
		wantErr   error
	}{
		{name: "valid bearer", header: "Bearer abc.def.ghi", wantToken: "abc.def.ghi"},
		{name: "lowercase scheme", header: "bearer abc.def.ghi", wantToken: "abc.def.ghi"},
		{name: "missing header", header: "", wantErr: ErrNoBearerToken},
		{name: "wrong scheme", header: "Basic dXNlcjpwYXNz", wantErr: ErrNoBearerToken},
		{name: "scheme without token", header: "Bearer", wantErr: ErrNoBearerToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _ := http.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				r.Header.Set("Authorization", tt.header)
			}

			token, err := j.GetTokenFromRequest(ctx, r)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantToken, token)
			}
		})
	}
}
