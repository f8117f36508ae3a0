package adaptor

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"studio-booking/internal/data/entity"
	"studio-booking/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeAvailabilityService struct {
	result *usecase.AvailabilityResult
	err    error
}

func (f *fakeAvailabilityService) Check(ctx context.Context, courseID, date string) (*usecase.AvailabilityResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

func availabilityRecorder(t *testing.T, svc usecase.AvailabilityService, target string) *httptest.ResponseRecorder {
	t.Helper()
	h := NewCourseHandler(nil, svc, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	h.Availability(rec, req)
	return rec
}

func TestCourseHandler_Availability_Success(t *testing.T) {
	course := &entity.Course{
		Base:     entity.Base{ID: uuid.New()},
		Title:    "Yin Yoga",
		Capacity: 8,
		Level:    entity.LevelBeginner,
	}
	svc := &fakeAvailabilityService{result: &usecase.AvailabilityResult{Available: true, Course: course}}

	rec := availabilityRecorder(t, svc, "/api/availability?courseId="+course.ID.String()+"&date=2026-09-15")

	require.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Status bool `json:"status"`
		Data   struct {
			Available bool `json:"available"`
			Course    struct {
				ID    string `json:"id"`
				Title string `json:"title"`
			} `json:"course"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&envelope))
	assert.True(t, envelope.Data.Available)
	assert.Equal(t, course.ID.String(), envelope.Data.Course.ID)
	assert.Equal(t, "Yin Yoga", envelope.Data.Course.Title)
}

func TestCourseHandler_Availability_MissingParams(t *testing.T) {
	rec := availabilityRecorder(t, &fakeAvailabilityService{}, "/api/availability?courseId=abc")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCourseHandler_Availability_CourseNotFound(t *testing.T) {
	svc := &fakeAvailabilityService{err: fmt.Errorf("course: %w", entity.ErrCourseNotFound)}

	rec := availabilityRecorder(t, svc, "/api/availability?courseId="+uuid.NewString()+"&date=2026-09-15")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCourseHandler_Availability_InvalidDate(t *testing.T) {
	svc := &fakeAvailabilityService{err: fmt.Errorf("date: %w", entity.ErrInvalidDate)}

	rec := availabilityRecorder(t, svc, "/api/availability?courseId="+uuid.NewString()+"&date=junk")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
