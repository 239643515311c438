package usecase

import (
	"context"

	"learnplatform/internal/domain"

	"github.com/google/uuid"
)

type ProgressStore interface {
	GetForCourse(ctx context.Context, userID, courseID uuid.UUID) (*domain.CourseProgress, error)
	ListForUser(ctx context.Context, userID uuid.UUID) ([]domain.ProgressEntry, error)
	Submit(ctx context.Context, userID, courseID, lessonID uuid.UUID, completed bool) (int, error)
}

type ProgressUseCase struct {
	progress ProgressStore
}

func NewProgressUseCase(progress ProgressStore) *ProgressUseCase {
	return &ProgressUseCase{progress: progress}
}

// GetForCourse returns nil when no progress exists yet; callers render
// that as the zero state.
func (uc *ProgressUseCase) GetForCourse(ctx context.Context, userID, courseID uuid.UUID) (*domain.CourseProgress, error) {
	return uc.progress.GetForCourse(ctx, userID, courseID)
}

func (uc *ProgressUseCase) ListForUser(ctx context.Context, userID uuid.UUID) ([]domain.ProgressEntry, error) {
	return uc.progress.ListForUser(ctx, userID)
}

// Submit records a lesson completion and returns the recomputed course
// percentage. completed=false still ensures the course row exists but
// never reverts an earlier completion.
func (uc *ProgressUseCase) Submit(ctx context.Context, userID, courseID, lessonID uuid.UUID, completed bool) (int, error) {
	return uc.progress.Submit(ctx, userID, courseID, lessonID, completed)
}
