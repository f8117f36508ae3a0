package request

type CreateCheckoutSessionRequest struct {
	CourseID string `json:"courseId" validate:"required,uuid4"`
	Date     string `json:"date" validate:"required"`
	UserID   string `json:"userId" validate:"required,uuid4"`
}
