package usecase

import (
	"context"
	"fmt"
	"time"

	"studio-booking/internal/data/entity"
	"studio-booking/internal/data/repository"
	"studio-booking/internal/dto/request"
	"studio-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CourseService interface {
	List(ctx context.Context) ([]*entity.Course, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Course, error)
	Create(ctx context.Context, req *request.CourseRequest) (*entity.Course, error)
	Update(ctx context.Context, id uuid.UUID, req *request.CourseUpdateRequest) (*entity.Course, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type courseService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewCourseService(repo *repository.Repository, log *zap.Logger) CourseService {
	return &courseService{
		repo: repo,
		log:  log.With(zap.String("service", "course")),
	}
}

func (s *courseService) List(ctx context.Context) ([]*entity.Course, error) {
	return s.repo.Course.FindAll(ctx)
}

func (s *courseService) GetByID(ctx context.Context, id uuid.UUID) (*entity.Course, error) {
	course, err := s.repo.Course.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if course == nil {
		return nil, fmt.Errorf("course %s: %w", id.String(), entity.ErrCourseNotFound)
	}
	return course, nil
}

func (s *courseService) Create(ctx context.Context, req *request.CourseRequest) (*entity.Course, error) {
	if errs := utils.ValidateStruct(req); errs != nil {
		return nil, fmt.Errorf("%w: %s", entity.ErrInvalidInput, utils.FormatValidationErrors(errs))
	}

	now := time.Now()
	course := &entity.Course{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Duration:    req.Duration,
		Capacity:    req.Capacity,
		Level:       entity.CourseLevel(req.Level),
	}

	if err := s.repo.Course.Create(ctx, course); err != nil {
		return nil, err
	}

	s.log.Info("Course created",
		zap.String("course_id", course.ID.String()),
		zap.String("title", course.Title),
	)

	return course, nil
}

func (s *courseService) Update(ctx context.Context, id uuid.UUID, req *request.CourseUpdateRequest) (*entity.Course, error) {
	if errs := utils.ValidateStruct(req); errs != nil {
		return nil, fmt.Errorf("%w: %s", entity.ErrInvalidInput, utils.FormatValidationErrors(errs))
	}

	course, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		course.Title = *req.Title
	}
	if req.Description != nil {
		course.Description = *req.Description
	}
	if req.Price != nil {
		course.Price = *req.Price
	}
	if req.Duration != nil {
		course.Duration = *req.Duration
	}
	if req.Capacity != nil {
		course.Capacity = *req.Capacity
	}
	if req.Level != nil {
		course.Level = entity.CourseLevel(*req.Level)
	}
	course.UpdatedAt = time.Now()

	if err := s.repo.Course.Update(ctx, course); err != nil {
		return nil, err
	}

	s.log.Info("Course updated", zap.String("course_id", id.String()))

	return course, nil
}

func (s *courseService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Course.Delete(ctx, id)
}
