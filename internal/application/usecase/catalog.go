package usecase

import (
	"context"

	"learnplatform/internal/domain"

	"github.com/google/uuid"
)

type CourseStore interface {
	ListPublished(ctx context.Context) ([]domain.CourseSummary, error)
	ListAll(ctx context.Context) ([]domain.CourseSummary, error)
	GetDetail(ctx context.Context, id uuid.UUID) (*domain.CourseDetail, error)
	Create(ctx context.Context, course *domain.Course) error
	Update(ctx context.Context, id uuid.UUID, changes map[string]interface{}) (*domain.Course, error)
}

// CatalogUseCase serves the public course catalog.
type CatalogUseCase struct {
	courses CourseStore
}

func NewCatalogUseCase(courses CourseStore) *CatalogUseCase {
	return &CatalogUseCase{courses: courses}
}

func (uc *CatalogUseCase) ListPublished(ctx context.Context) ([]domain.CourseSummary, error) {
	return uc.courses.ListPublished(ctx)
}

// GetCourse does not filter on publish state; drafts stay reachable by
// direct id, only the listing hides them.
func (uc *CatalogUseCase) GetCourse(ctx context.Context, id uuid.UUID) (*domain.CourseDetail, error) {
	return uc.courses.GetDetail(ctx, id)
}
