package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

var (
	ErrCourseNotFound = errors.New("course not found")
	ErrLessonNotFound = errors.New("lesson not found")
	ErrNoUpdates      = errors.New("no updates provided")
)

type Course struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Title         string    `gorm:"not null"`
	Description   string
	CoverImage    string
	DurationHours int
	IsPublished   bool       `gorm:"not null;default:false"`
	CreatedBy     *uuid.UUID `gorm:"type:uuid"`

	Lessons []Lesson `gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE;"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

type Lesson struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CourseID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Title       string    `gorm:"not null"`
	ContentType string    `gorm:"not null"`
	// Opaque structured payload, stored and returned verbatim.
	ContentData     datatypes.JSON `gorm:"type:jsonb"`
	OrderIndex      int            `gorm:"not null;default:0"`
	DurationMinutes int

	CreatedAt time.Time
}

// CourseSummary is a catalog row: a course plus its lesson count.
type CourseSummary struct {
	ID            uuid.UUID
	Title         string
	Description   string
	CoverImage    string
	DurationHours int
	IsPublished   bool
	LessonsCount  int64
}

// CourseDetail carries the course, its creator's display name and
// lessons ordered for display.
type CourseDetail struct {
	Course      Course
	CreatorName string
	Lessons     []Lesson
}

// CoursePatch is a partial update: nil means "leave unchanged".
type CoursePatch struct {
	Title         *string
	Description   *string
	CoverImage    *string
	DurationHours *int
	IsPublished   *bool
}

func (p CoursePatch) Changes() map[string]interface{} {
	changes := map[string]interface{}{}
	if p.Title != nil {
		changes["title"] = *p.Title
	}
	if p.Description != nil {
		changes["description"] = *p.Description
	}
	if p.CoverImage != nil {
		changes["cover_image"] = *p.CoverImage
	}
	if p.DurationHours != nil {
		changes["duration_hours"] = *p.DurationHours
	}
	if p.IsPublished != nil {
		changes["is_published"] = *p.IsPublished
	}
	return changes
}

// LessonPatch mirrors CoursePatch for lessons.
type LessonPatch struct {
	Title           *string
	ContentType     *string
	ContentData     datatypes.JSON
	OrderIndex      *int
	DurationMinutes *int
}

func (p LessonPatch) Changes() map[string]interface{} {
	changes := map[string]interface{}{}
	if p.Title != nil {
		changes["title"] = *p.Title
	}
	if p.ContentType != nil {
		changes["content_type"] = *p.ContentType
	}
	if p.ContentData != nil {
		changes["content_data"] = p.ContentData
	}
	if p.OrderIndex != nil {
		changes["order_index"] = *p.OrderIndex
	}
	if p.DurationMinutes != nil {
		changes["duration_minutes"] = *p.DurationMinutes
	}
	return changes
}
