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

const courseColumns = `course_id, title, description, module, duration_hours, badge_image, created_at, updated_at`

// CourseReadRepository reads course records.
type CourseReadRepository struct {
	db *sqlx.DB
}

func NewCourseReadRepository(db *sqlx.DB) *CourseReadRepository {
	return &CourseReadRepository{db: db}
}

// List returns one page of courses plus the total match count. A nil module
// filter disables filtering; a non-nil one matches the module column as a
// case-insensitive, unanchored substring.
func (r *CourseReadRepository) List(ctx context.Context, module *string, limit, offset int) ([]models.CourseDB, int64, error) {
	const query = `
		SELECT ` + courseColumns + `
		FROM courses
		WHERE ($1::TEXT IS NULL OR module ILIKE '%' || $1 || '%')
		ORDER BY course_id
		LIMIT $2 OFFSET $3
	`
	const countQuery = `
		SELECT COUNT(*)
		FROM courses
		WHERE ($1::TEXT IS NULL OR module ILIKE '%' || $1 || '%')
	`

	courses := []models.CourseDB{}
	err := r.db.SelectContext(ctx, &courses, query, module, limit, offset)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{module, limit, offset},
		"result", len(courses),
		"error", err,
	)

	if err != nil {
		return nil, 0, err
	}

	var total int64
	if err := r.db.GetContext(ctx, &total, countQuery, module); err != nil {
		logger.Log.Infow(
			"query", strings.Join(strings.Fields(countQuery), " "),
			"args", []any{module},
			"error", err,
		)
		return nil, 0, err
	}

	return courses, total, nil
}

// DistinctModules returns the distinct module values currently in the catalog.
func (r *CourseReadRepository) DistinctModules(ctx context.Context) ([]string, error) {
	const query = `SELECT DISTINCT module FROM courses`

	modules := []string{}
	err := r.db.SelectContext(ctx, &modules, query)

	logger.Log.Infow(
		"query", query,
		"result", modules,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return modules, nil
}

// GetByID returns the course with the given id, or (nil, nil) when absent.
func (r *CourseReadRepository) GetByID(ctx context.Context, id int64) (*models.CourseDB, error) {
	const query = `
		SELECT ` + courseColumns + `
		FROM courses
		WHERE course_id = $1
	`

	var course models.CourseDB
	err := r.db.GetContext(ctx, &course, query, id)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &course, nil
}

// CourseWriteRepository persists course mutations.
type CourseWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewCourseWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *CourseWriteRepository {
	return &CourseWriteRepository{db: db, txGetter: txGetter}
}

func (r *CourseWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Create inserts a course with store-assigned id and timestamps and returns
// the stored representation.
func (r *CourseWriteRepository) Create(ctx context.Context, title, description, module, durationHours, badgeImage string) (*models.CourseDB, error) {
	const query = `
		INSERT INTO courses (title, description, module, duration_hours, badge_image, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING ` + courseColumns + `
	`

	var course models.CourseDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &course, query, title, description, module, durationHours, badgeImage)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{title, module},
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &course, nil
}

// Update overwrites the mutable columns of a course and refreshes
// updated_at. The title column is not part of the update path.
func (r *CourseWriteRepository) Update(ctx context.Context, course models.CourseDB) (*models.CourseDB, error) {
	const query = `
		UPDATE courses
		SET description = $2, module = $3, duration_hours = $4, badge_image = $5, updated_at = NOW()
		WHERE course_id = $1
		RETURNING ` + courseColumns + `
	`

	var updated models.CourseDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &updated, query,
		course.CourseID, course.Description, course.Module, course.DurationHours, course.BadgeImage)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{course.CourseID},
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes the course with the given id. Returns false, without an
// error, when nothing matched.
func (r *CourseWriteRepository) Delete(ctx context.Context, id int64) (bool, error) {
	const query = `DELETE FROM courses WHERE course_id = $1`

	res, err := r.executor(ctx).ExecContext(ctx, query, id)

	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", query,
		"args", []any{id},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}
