package request

type CourseRequest struct {
	Title       string  `json:"title" validate:"required,min=2,max=200"`
	Description string  `json:"description" validate:"required,min=10"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	Duration    int     `json:"duration" validate:"required,min=1,max=480"`
	Capacity    int     `json:"capacity" validate:"required,min=1"`
	Level       string  `json:"level" validate:"required,oneof=BEGINNER INTERMEDIATE ADVANCED ALL_LEVELS"`
}

type CourseUpdateRequest struct {
	Title       *string  `json:"title,omitempty" validate:"omitempty,min=2,max=200"`
	Description *string  `json:"description,omitempty" validate:"omitempty,min=10"`
	Price       *float64 `json:"price,omitempty" validate:"omitempty,gt=0"`
	Duration    *int     `json:"duration,omitempty" validate:"omitempty,min=1,max=480"`
	Capacity    *int     `json:"capacity,omitempty" validate:"omitempty,min=1"`
	Level       *string  `json:"level,omitempty" validate:"omitempty,oneof=BEGINNER INTERMEDIATE ADVANCED ALL_LEVELS"`
}
