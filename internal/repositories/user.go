package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/manudev/course-catalog-api/internal/logger"
	"github.com/manudev/course-catalog-api/internal/models"
)

// UserReadRepository reads user records and their attached role names.
type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// GetByEmail returns the user with the given email, roles included,
// or (nil, nil) when no such user exists.
func (r *UserReadRepository) GetByEmail(ctx context.Context, email string) (*models.UserDB, error) {
	const query = `
		SELECT user_id, name, email, password_hash, created_at, updated_at
		FROM users
		WHERE email = $1
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, email)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{email},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	roles, err := r.rolesByUserID(ctx, user.UserID)
	if err != nil {
		return nil, err
	}
	user.Roles = roles

	return &user, nil
}

func (r *UserReadRepository) rolesByUserID(ctx context.Context, userID int64) ([]string, error) {
	const query = `
		SELECT r.name
		FROM roles r
		JOIN user_roles ur ON ur.role_id = r.role_id
		WHERE ur.user_id = $1
		ORDER BY r.name
	`

	roles := []string{}
	err := r.db.SelectContext(ctx, &roles, query, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", roles,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return roles, nil
}

// UserWriteRepository persists new users and their role links.
type UserWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewUserWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *UserWriteRepository {
	return &UserWriteRepository{db: db, txGetter: txGetter}
}

func (r *UserWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts a user and links the given role ids. Timestamps are set by
// the store. The returned record does not carry role names; the caller
// already knows them.
func (r *UserWriteRepository) Save(ctx context.Context, name, email, passwordHash string, roleIDs []int64) (*models.UserDB, error) {
	const query = `
		INSERT INTO users (name, email, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING user_id, name, email, password_hash, created_at, updated_at
	`

	executor := r.executor(ctx)

	var user models.UserDB
	err := sqlx.GetContext(ctx, executor, &user, query, name, email, passwordHash)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{name, email},
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	const linkQuery = `INSERT INTO user_roles (user_id, role_id) VALUES ($1, $2)`
	for _, roleID := range roleIDs {
		if _, err := executor.ExecContext(ctx, linkQuery, user.UserID, roleID); err != nil {
			logger.Log.Infow(
				"query", linkQuery,
				"args", []any{user.UserID, roleID},
				"error", err,
			)
			return nil, err
		}
	}

	return &user, nil
}
