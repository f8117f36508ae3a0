package response

import (
	"time"

	"studio-booking/internal/data/entity"
)

type CourseResponse struct {
	ID          string             `json:"id"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Price       float64            `json:"price"`
	Duration    int                `json:"duration"`
	Capacity    int                `json:"capacity"`
	Level       entity.CourseLevel `json:"level"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

type AvailabilityResponse struct {
	Available bool           `json:"available"`
	Course    CourseResponse `json:"course"`
}

// Helper converter
func CourseToResponse(course *entity.Course) CourseResponse {
	return CourseResponse{
		ID:          course.ID.String(),
		Title:       course.Title,
		Description: course.Description,
		Price:       course.Price,
		Duration:    course.Duration,
		Capacity:    course.Capacity,
		Level:       course.Level,
		CreatedAt:   course.CreatedAt,
		UpdatedAt:   course.UpdatedAt,
	}
}
