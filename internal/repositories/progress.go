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

const progressColumns = `progress_id, user_id, course_id, status, started_at, completed_at, updated_at`

// ProgressReadRepository reads user progress records.
type ProgressReadRepository struct {
	db *sqlx.DB
}

func NewProgressReadRepository(db *sqlx.DB) *ProgressReadRepository {
	return &ProgressReadRepository{db: db}
}

// GetByUserAndCourse returns the progress of a user on a course, or
// (nil, nil) when the user never started it.
func (r *ProgressReadRepository) GetByUserAndCourse(ctx context.Context, userID, courseID int64) (*models.UserProgressDB, error) {
	const query = `
		SELECT ` + progressColumns + `
		FROM user_progress
		WHERE user_id = $1 AND course_id = $2
	`

	var progress models.UserProgressDB
	err := r.db.GetContext(ctx, &progress, query, userID, courseID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, courseID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &progress, nil
}

// ListByUserEmail returns progress rows joined with user and course data
// for every course the user has started.
func (r *ProgressReadRepository) ListByUserEmail(ctx context.Context, email string) ([]models.ProgressEntry, error) {
	const query = `
		SELECT u.name AS user_name, c.course_id, c.title AS course_title,
		       p.status, p.started_at, p.completed_at
		FROM user_progress p
		JOIN users u ON u.user_id = p.user_id
		JOIN courses c ON c.course_id = p.course_id
		WHERE u.email = $1
		ORDER BY p.started_at
	`

	entries := []models.ProgressEntry{}
	err := r.db.SelectContext(ctx, &entries, query, email)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{email},
		"result", len(entries),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return entries, nil
}

// ProgressWriteRepository persists progress mutations.
type ProgressWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewProgressWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *ProgressWriteRepository {
	return &ProgressWriteRepository{db: db, txGetter: txGetter}
}

func (r *ProgressWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts a progress row with store-assigned timestamps.
func (r *ProgressWriteRepository) Save(ctx context.Context, userID, courseID int64, status string) (*models.UserProgressDB, error) {
	const query = `
		INSERT INTO user_progress (user_id, course_id, status, started_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING ` + progressColumns + `
	`

	var progress models.UserProgressDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &progress, query, userID, courseID, status)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, courseID, status},
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &progress, nil
}

// Complete marks a progress row completed and stamps completed_at.
func (r *ProgressWriteRepository) Complete(ctx context.Context, progressID int64) (*models.UserProgressDB, error) {
	const query = `
		UPDATE user_progress
		SET status = $2, completed_at = NOW(), updated_at = NOW()
		WHERE progress_id = $1
		RETURNING ` + progressColumns + `
	`

	var progress models.UserProgressDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &progress, query, progressID, models.ProgressCompleted)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{progressID},
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &progress, nil
}
