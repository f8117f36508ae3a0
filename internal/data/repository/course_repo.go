package repository

import (
	"context"
	"fmt"

	"studio-booking/internal/data/entity"
	"studio-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type CourseRepository interface {
	Create(ctx context.Context, course *entity.Course) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Course, error)
	FindAll(ctx context.Context) ([]*entity.Course, error)
	Update(ctx context.Context, course *entity.Course) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type courseRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewCourseRepository(db database.PgxIface, log *zap.Logger) CourseRepository {
	return &courseRepository{
		db:  db,
		log: log.With(zap.String("repository", "course")),
	}
}

func (r *courseRepository) Create(ctx context.Context, course *entity.Course) error {
	query := `
		INSERT INTO courses (id, title, description, price, duration, capacity, level,
		                     created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.Exec(ctx, query,
		course.ID,
		course.Title,
		course.Description,
		course.Price,
		course.Duration,
		course.Capacity,
		course.Level,
		course.CreatedAt,
		course.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create course",
			zap.Error(err),
			zap.String("title", course.Title),
		)
		return fmt.Errorf("create course %s: %w", course.Title, err)
	}

	return nil
}

func (r *courseRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Course, error) {
	query := `
		SELECT id, title, description, price, duration, capacity, level,
		       created_at, updated_at, deleted_at
		FROM courses
		WHERE id = $1 AND deleted_at IS NULL
	`

	var course entity.Course
	err := r.db.QueryRow(ctx, query, id).Scan(
		&course.ID,
		&course.Title,
		&course.Description,
		&course.Price,
		&course.Duration,
		&course.Capacity,
		&course.Level,
		&course.CreatedAt,
		&course.UpdatedAt,
		&course.DeletedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find course by ID",
			zap.Error(err),
			zap.String("course_id", id.String()),
		)
		return nil, fmt.Errorf("find course by ID %s: %w", id.String(), err)
	}

	return &course, nil
}

func (r *courseRepository) FindAll(ctx context.Context) ([]*entity.Course, error) {
	query := `
		SELECT id, title, description, price, duration, capacity, level,
		       created_at, updated_at
		FROM courses
		WHERE deleted_at IS NULL
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find all courses", zap.Error(err))
		return nil, fmt.Errorf("find courses: %w", err)
	}
	defer rows.Close()

	var courses []*entity.Course
	for rows.Next() {
		var course entity.Course
		err := rows.Scan(
			&course.ID,
			&course.Title,
			&course.Description,
			&course.Price,
			&course.Duration,
			&course.Capacity,
			&course.Level,
			&course.CreatedAt,
			&course.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan course row", zap.Error(err))
			return nil, fmt.Errorf("scan course row: %w", err)
		}
		courses = append(courses, &course)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate course rows: %w", err)
	}

	return courses, nil
}

func (r *courseRepository) Update(ctx context.Context, course *entity.Course) error {
	query := `
		UPDATE courses
		SET title = $2, description = $3, price = $4, duration = $5,
		    capacity = $6, level = $7, updated_at = $8
		WHERE id = $1 AND deleted_at IS NULL
	`

	result, err := r.db.Exec(ctx, query,
		course.ID,
		course.Title,
		course.Description,
		course.Price,
		course.Duration,
		course.Capacity,
		course.Level,
		course.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update course",
			zap.Error(err),
			zap.String("course_id", course.ID.String()),
		)
		return fmt.Errorf("update course %s: %w", course.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("course %s: %w", course.ID.String(), entity.ErrCourseNotFound)
	}

	return nil
}

func (r *courseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE courses SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete course",
			zap.Error(err),
			zap.String("course_id", id.String()),
		)
		return fmt.Errorf("delete course %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("course %s: %w", id.String(), entity.ErrCourseNotFound)
	}

	r.log.Info("Course deleted", zap.String("course_id", id.String()))
	return nil
}
