package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupCoursePostgresContainer(t *testing.T) (*sqlx.DB, func()) {
	t.Helper()

	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}

	container, err := tc.GenericContainer(context.Background(), tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)

	host, _ := container.Host(context.Background())
	port, _ := container.MappedPort(context.Background(), "5432")

	dsn := fmt.Sprintf("postgres://postgres:password@%s:%d/testdb?sslmode=disable", host, port.Int())

	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = sqlx.Connect("pgx", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	assert.NoError(t, err)

	schema := `
	CREATE TABLE IF NOT EXISTS courses (
		course_id BIGSERIAL PRIMARY KEY,
		title VARCHAR(255) NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		module VARCHAR(100) NOT NULL DEFAULT '',
		duration_hours VARCHAR(50) NOT NULL DEFAULT '',
		badge_image TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMP NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMP NOT NULL DEFAULT NOW()
	);
	`
	_, err = db.Exec(schema)
	assert.NoError(t, err)

	teardown := func() {
		db.Close()
		container.Terminate(context.Background())
	}

	return db, teardown
}

func TestCourseWriteRepository_CreateAndGet(t *testing.T) {
	db, teardown := setupCoursePostgresContainer(t)
	defer teardown()

	writeRepo := NewCourseWriteRepository(db, nil)
	readRepo := NewCourseReadRepository(db)
	ctx := context.Background()

	created, err := writeRepo.Create(ctx, "Go Basics", "An introduction to Go", "Backend", "8", "badge.png")
	assert.NoError(t, err)
	assert.NotZero(t, created.CourseID)
	assert.Equal(t, "Go Basics", created.Title)
	assert.False(t, created.CreatedAt.IsZero())

	got, err := readRepo.GetByID(ctx, created.CourseID)
	assert.NoError(t, err)
	assert.NotNil(t, got)
	assert.Equal(t, created.CourseID, got.CourseID)
	assert.Equal(t, "Backend", got.Module)

	t.Run("NotFound", func(t *testing.T) {
		got, err := readRepo.GetByID(ctx, 9999)
		assert.NoError(t, err)
		assert.Nil(t, got)
	})
}

func TestCourseReadRepository_List(t *testing.T) {
	db, teardown := setupCoursePostgresContainer(t)
	defer teardown()

	writeRepo := NewCourseWriteRepository(db, nil)
	readRepo := NewCourseReadRepository(db)
	ctx := context.Background()

	writeRepo.Create(ctx, "Go Basics", "", "Backend", "8", "")
	writeRepo.Create(ctx, "Advanced Go", "", "Backend", "16", "")
	writeRepo.Create(ctx, "React 101", "", "Frontend", "12", "")

	t.Run("Unfiltered", func(t *testing.T) {
		courses, total, err := readRepo.List(ctx, nil, 20, 0)
		assert.NoError(t, err)
		assert.Equal(t, int64(3), total)
		assert.Len(t, courses, 3)
	})

	t.Run("CaseInsensitiveSubstringFilter", func(t *testing.T) {
		filter := "back"
		courses, total, err := readRepo.List(ctx, &filter, 20, 0)
		assert.NoError(t, err)
		assert.Equal(t, int64(2), total)
		for _, c := range courses {
			assert.Equal(t, "Backend", c.Module)
		}
	})

	t.Run("Paging", func(t *testing.T) {
		courses, total, err := readRepo.List(ctx, nil, 2, 2)
		assert.NoError(t, err)
		assert.Equal(t, int64(3), total)
		assert.Len(t, courses, 1)
	})

	t.Run("NoMatches", func(t *testing.T) {
		filter := "devops"
		courses, total, err := readRepo.List(ctx, &filter, 20, 0)
		assert.NoError(t, err)
		assert.Equal(t, int64(0), total)
		assert.Empty(t, courses)
	})
}

func TestCourseReadRepository_DistinctModules(t *testing.T) {
	db, teardown := setupCoursePostgresContainer(t)
	defer teardown()

	writeRepo := NewCourseWriteRepository(db, nil)
	readRepo := NewCourseReadRepository(db)
	ctx := context.Background()

	writeRepo.Create(ctx, "Go Basics", "", "Backend", "8", "")
	writeRepo.Create(ctx, "Advanced Go", "", "Backend", "16", "")
	writeRepo.Create(ctx, "React 101", "", "Frontend", "12", "")

	modules, err := readRepo.DistinctModules(ctx)
	assert.NoError(t, err)
	assert.ElementsMatch(t, []string{"Backend", "Frontend"}, modules)
}

func TestCourseWriteRepository_Update(t *testing.T) {
	db, teardown := setupCoursePostgresContainer(t)
	defer teardown()

	writeRepo := NewCourseWriteRepository(db, nil)
	ctx := context.Background()

	created, err := writeRepo.Create(ctx, "Go Basics", "old", "Backend", "8", "old.png")
	assert.NoError(t, err)

	created.Description = "new"
	created.DurationHours = "10"

	updated, err := writeRepo.Update(ctx, *created)
	assert.NoError(t, err)
	assert.Equal(t, "new", updated.Description)
	assert.Equal(t, "10", updated.DurationHours)
	assert.Equal(t, "Go Basics", updated.Title)
	assert.True(t, !updated.UpdatedAt.Before(created.UpdatedAt))
}

func TestCourseWriteRepository_Delete(t *testing.T) {
	db, teardown := setupCoursePostgresContainer(t)
	defer teardown()

	writeRepo := NewCourseWriteRepository(db, nil)
	readRepo := NewCourseReadRepository(db)
	ctx := context.Background()

	created, err := writeRepo.Create(ctx, "Go Basics", "", "Backend", "8", "")
	assert.NoError(t, err)

	deleted, err := writeRepo.Delete(ctx, created.CourseID)
	assert.NoError(t, err)
	assert.True(t, deleted)

	got, err := readRepo.GetByID(ctx, created.CourseID)
	assert.NoError(t, err)
	assert.Nil(t, got)

	// Second delete of the same id reports nothing matched
	deleted, err = writeRepo.Delete(ctx, created.CourseID)
	assert.NoError(t, err)
	assert.False(t, deleted)
}
