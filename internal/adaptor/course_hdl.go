package adaptor

import (
	"encoding/json"
	"net/http"

	"studio-booking/internal/dto/request"
	"studio-booking/internal/dto/response"
	"studio-booking/internal/usecase"
	"studio-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CourseHandler struct {
	service      usecase.CourseService
	availability usecase.AvailabilityService
	log          *zap.Logger
}

func NewCourseHandler(service usecase.CourseService, availability usecase.AvailabilityService, log *zap.Logger) *CourseHandler {
	return &CourseHandler{
		service:      service,
		availability: availability,
		log:          log.With(zap.String("handler", "course")),
	}
}

// List handles GET /api/courses
func (h *CourseHandler) List(w http.ResponseWriter, r *http.Request) {
	courses, err := h.service.List(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list courses")
		return
	}

	results := make([]response.CourseResponse, 0, len(courses))
	for _, course := range courses {
		results = append(results, response.CourseToResponse(course))
	}

	utils.ResponseSuccess(w, "Courses retrieved", results)
}

// Get handles GET /api/courses/{id}
func (h *CourseHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid course ID", nil)
		return
	}

	course, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.log, err, "get course")
		return
	}

	utils.ResponseSuccess(w, "Course retrieved", response.CourseToResponse(course))
}

// Availability handles GET /api/availability?courseId=...&date=...
func (h *CourseHandler) Availability(w http.ResponseWriter, r *http.Request) {
	courseID := r.URL.Query().Get("courseId")
	date := r.URL.Query().Get("date")

	if courseID == "" || date == "" {
		utils.ResponseBadRequest(w, "courseId and date query parameters are required", nil)
		return
	}

	result, err := h.availability.Check(r.Context(), courseID, date)
	if err != nil {
		handleServiceError(w, h.log, err, "check availability")
		return
	}

	utils.ResponseSuccess(w, "Availability checked", response.AvailabilityResponse{
		Available: result.Available,
		Course:    response.CourseToResponse(result.Course),
	})
}

// Create handles POST /api/admin/courses
func (h *CourseHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CourseRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	course, err := h.service.Create(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create course")
		return
	}

	utils.ResponseCreated(w, "Course created", response.CourseToResponse(course))
}

// Update handles PUT /api/admin/courses/{id}
func (h *CourseHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid course ID", nil)
		return
	}

	var req request.CourseUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	course, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update course")
		return
	}

	utils.ResponseSuccess(w, "Course updated", response.CourseToResponse(course))
}

// Delete handles DELETE /api/admin/courses/{id}
func (h *CourseHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid course ID", nil)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		handleServiceError(w, h.log, err, "delete course")
		return
	}

	utils.ResponseSuccess(w, "Course deleted", nil)
}
