package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/manudev/course-catalog-api/internal/logger"
	"github.com/manudev/course-catalog-api/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// Error variables
var (
	// ErrInvalidCredentials covers both unknown email and wrong password,
	// so a caller cannot enumerate registered emails.
	ErrInvalidCredentials = errors.New("invalid email or password")

	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrRoleNotFound           = errors.New("role not found")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, name, email, passwordHash string, roleIDs []int64) (*models.UserDB, error)
}

// RoleReader looks up reference role records by name.
type RoleReader interface {
	GetByName(ctx context.Context, name string) (*models.RoleDB, error)
}

// TokenIssuer defines an interface for issuing signed tokens.
type TokenIssuer interface {
	Generate(ctx context.Context, userID int64, email string, roles []string) (string, error)
}

// AuthService handles registration and login.
type AuthService struct {
	users  UserReader
	writer UserWriter
	roles  RoleReader
	jwt    TokenIssuer
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(users UserReader, writer UserWriter, roles RoleReader, jwt TokenIssuer) *AuthService {
	return &AuthService{
		users:  users,
		writer: writer,
		roles:  roles,
		jwt:    jwt,
	}
}

// Login verifies credentials and returns a signed token whose claims carry
// the user's id, email, and role names. Unknown email and wrong password
// fail with the same error.
func (svc *AuthService) Login(ctx context.Context, email, rawPassword string) (string, error) {
	user, err := svc.users.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", err
	}
	if user == nil {
		logger.Log.Errorw("login for unknown email", "email", email)
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(rawPassword)); err != nil {
		logger.Log.Errorw("invalid credentials", "email", email)
		return "", ErrInvalidCredentials
	}

	token, err := svc.jwt.Generate(ctx, user.UserID, user.Email, user.Roles)
	if err != nil {
		logger.Log.Errorw("failed to generate token", "err", err)
		return "", err
	}

	return token, nil
}

// Register creates a user with the given role names. Every role must
// already exist; roles are attached at creation time and never mutated
// afterwards.
func (svc *AuthService) Register(ctx context.Context, email, password, name string, roleNames []string) (*models.UserDB, error) {
	existing, err := svc.users.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return nil, err
	}
	if existing != nil {
		logger.Log.Errorw("email already registered", "email", email)
		return nil, ErrEmailAlreadyRegistered
	}

	roleIDs := make([]int64, 0, len(roleNames))
	for _, roleName := range roleNames {
		role, err := svc.roles.GetByName(ctx, roleName)
		if err != nil {
			logger.Log.Errorw("failed to look up role", "role", roleName, "err", err)
			return nil, err
		}
		if role == nil {
			logger.Log.Errorw("unknown role at registration", "role", roleName)
			return nil, fmt.Errorf("%w: %s", ErrRoleNotFound, roleName)
		}
		roleIDs = append(roleIDs, role.RoleID)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, err
	}

	user, err := svc.writer.Save(ctx, name, email, string(hashedPassword), roleIDs)
	if err != nil {
		logger.Log.Errorw("failed to save user", "err", err)
		return nil, err
	}
	user.Roles = roleNames

	return user, nil
}
