package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/manudev/course-catalog-api/internal/logger"
	"github.com/manudev/course-catalog-api/internal/models"
)

const badgeColumns = `badge_id, code, title, description, image_url, created_at`

// BadgeReadRepository reads awarded badges.
type BadgeReadRepository struct {
	db *sqlx.DB
}

func NewBadgeReadRepository(db *sqlx.DB) *BadgeReadRepository {
	return &BadgeReadRepository{db: db}
}

// ListByUserEmail returns the badges awarded to a user. The badge code
// column stores the owning user's id as text.
func (r *BadgeReadRepository) ListByUserEmail(ctx context.Context, email string) ([]models.BadgeDB, error) {
	const query = `
		SELECT b.badge_id, b.code, b.title, b.description, b.image_url, b.created_at
		FROM badges b
		JOIN users u ON b.code = u.user_id::TEXT
		WHERE u.email = $1
		ORDER BY b.created_at
	`

	badges := []models.BadgeDB{}
	err := r.db.SelectContext(ctx, &badges, query, email)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{email},
		"result", len(badges),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return badges, nil
}

// BadgeWriteRepository persists awarded badges.
type BadgeWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewBadgeWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *BadgeWriteRepository {
	return &BadgeWriteRepository{db: db, txGetter: txGetter}
}

func (r *BadgeWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts a badge and returns the stored representation.
func (r *BadgeWriteRepository) Save(ctx context.Context, code, title, description, imageURL string) (*models.BadgeDB, error) {
	const query = `
		INSERT INTO badges (code, title, description, image_url, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING ` + badgeColumns + `
	`

	var badge models.BadgeDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &badge, query, code, title, description, imageURL)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{code, title},
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &badge, nil
}
