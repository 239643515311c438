package domain

import (
	"time"

	"github.com/google/uuid"
)

type UserCourseProgress struct {
	UserID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	CourseID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProgressPercent int       `gorm:"not null;default:0"`
	StartedAt       time.Time
	CompletedAt     *time.Time
}

func (UserCourseProgress) TableName() string {
	return "user_course_progress"
}

type UserLessonProgress struct {
	UserID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	LessonID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Completed   bool      `gorm:"not null;default:false"`
	CompletedAt *time.Time
}

func (UserLessonProgress) TableName() string {
	return "user_lesson_progress"
}

// CourseProgress is the per-course view: the progress row joined with
// the course title and cover.
type CourseProgress struct {
	ProgressPercent int
	StartedAt       time.Time
	CompletedAt     *time.Time
	CourseTitle     string
	CoverImage      string
}

// ProgressEntry is one row of a user's in-progress course list.
type ProgressEntry struct {
	CourseID        uuid.UUID
	Title           string
	CoverImage      string
	ProgressPercent int
	StartedAt       time.Time
}

// ProgressPercent is floor(100 * completed / total), 0 for a course
// with no lessons.
func ProgressPercent(completed, total int64) int {
	if total <= 0 {
		return 0
	}
	return int(completed * 100 / total)
}
