package usecase

import (
	"context"

	"learnplatform/internal/domain"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type LessonStore interface {
	Create(ctx context.Context, lesson *domain.Lesson) error
	Update(ctx context.Context, id uuid.UUID, changes map[string]interface{}) (*domain.Lesson, error)
}

// AdminUseCase holds the admin-only course and lesson authoring
// operations. Authorization happens before any of these run.
type AdminUseCase struct {
	courses CourseStore
	lessons LessonStore
}

func NewAdminUseCase(courses CourseStore, lessons LessonStore) *AdminUseCase {
	return &AdminUseCase{courses: courses, lessons: lessons}
}

func (uc *AdminUseCase) ListCourses(ctx context.Context) ([]domain.CourseSummary, error) {
	return uc.courses.ListAll(ctx)
}

// CreateCourse always starts a draft owned by the caller.
func (uc *AdminUseCase) CreateCourse(ctx context.Context, createdBy uuid.UUID, title, description, coverImage string, durationHours int) (*domain.Course, error) {
	course := &domain.Course{
		Title:         title,
		Description:   description,
		CoverImage:    coverImage,
		DurationHours: durationHours,
		IsPublished:   false,
		CreatedBy:     &createdBy,
	}

	if err := uc.courses.Create(ctx, course); err != nil {
		return nil, err
	}
	return course, nil
}

func (uc *AdminUseCase) UpdateCourse(ctx context.Context, id uuid.UUID, patch domain.CoursePatch) (*domain.Course, error) {
	changes := patch.Changes()
	if len(changes) == 0 {
		return nil, domain.ErrNoUpdates
	}
	return uc.courses.Update(ctx, id, changes)
}

func (uc *AdminUseCase) CreateLesson(ctx context.Context, courseID uuid.UUID, title, contentType string, contentData datatypes.JSON, orderIndex, durationMinutes int) (*domain.Lesson, error) {
	if contentData == nil {
		contentData = datatypes.JSON([]byte("{}"))
	}

	lesson := &domain.Lesson{
		CourseID:        courseID,
		Title:           title,
		ContentType:     contentType,
		ContentData:     contentData,
		OrderIndex:      orderIndex,
		DurationMinutes: durationMinutes,
	}

	if err := uc.lessons.Create(ctx, lesson); err != nil {
		return nil, err
	}
	return lesson, nil
}

func (uc *AdminUseCase) UpdateLesson(ctx context.Context, id uuid.UUID, patch domain.LessonPatch) (*domain.Lesson, error) {
	changes := patch.Changes()
	if len(changes) == 0 {
		return nil, domain.ErrNoUpdates
	}
	return uc.lessons.Update(ctx, id, changes)
}
