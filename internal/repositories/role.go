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

// RoleReadRepository looks up reference role records.
type RoleReadRepository struct {
	db *sqlx.DB
}

func NewRoleReadRepository(db *sqlx.DB) *RoleReadRepository {
	return &RoleReadRepository{db: db}
}

// GetByName returns the role with the given name, or (nil, nil) when absent.
func (r *RoleReadRepository) GetByName(ctx context.Context, name string) (*models.RoleDB, error) {
	const query = `
		SELECT role_id, name
		FROM roles
		WHERE name = $1
	`

	var role models.RoleDB
	err := r.db.GetContext(ctx, &role, query, name)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{name},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &role, nil
}
