package entity

type CourseLevel string

const (
	LevelBeginner     CourseLevel = "BEGINNER"
	LevelIntermediate CourseLevel = "INTERMEDIATE"
	LevelAdvanced     CourseLevel = "ADVANCED"
	LevelAllLevels    CourseLevel = "ALL_LEVELS"
)

type Course struct {
	Base
	Title       string      `db:"title"`
	Description string      `db:"description"`
	Price       float64     `db:"price"`
	Duration    int         `db:"duration"`
	Capacity    int         `db:"capacity"`
	Level       CourseLevel `db:"level"`
}
