package repository

import (
	"context"
	"time"

	"learnplatform/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProgressRepository struct {
	db *gorm.DB
}

func NewProgressRepository(db *gorm.DB) *ProgressRepository {
	return &ProgressRepository{db: db}
}

// GetForCourse returns nil without error when the user has no progress
// row yet; that is a valid zero state, not a lookup failure.
func (r *ProgressRepository) GetForCourse(ctx context.Context, userID, courseID uuid.UUID) (*domain.CourseProgress, error) {
	var view domain.CourseProgress
	result := r.db.WithContext(ctx).Model(&domain.UserCourseProgress{}).
		Select("user_course_progress.progress_percent, user_course_progress.started_at, user_course_progress.completed_at, courses.title AS course_title, courses.cover_image").
		Joins("JOIN courses ON courses.id = user_course_progress.course_id").
		Where("user_course_progress.user_id = ? AND user_course_progress.course_id = ?", userID, courseID).
		Scan(&view)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return &view, nil
}

func (r *ProgressRepository) ListForUser(ctx context.Context, userID uuid.UUID) ([]domain.ProgressEntry, error) {
	entries := []domain.ProgressEntry{}
	err := r.db.WithContext(ctx).Model(&domain.UserCourseProgress{}).
		Select("courses.id AS course_id, courses.title, courses.cover_image, user_course_progress.progress_percent, user_course_progress.started_at").
		Joins("JOIN courses ON courses.id = user_course_progress.course_id").
		Where("user_course_progress.user_id = ?", userID).
		Order("user_course_progress.started_at DESC").
		Scan(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// Submit runs the whole upsert-then-recompute sequence in one
// transaction so readers never observe a completed lesson without the
// matching percentage.
func (r *ProgressRepository) Submit(ctx context.Context, userID, courseID, lessonID uuid.UUID, completed bool) (int, error) {
	percent := 0

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		courseRow := domain.UserCourseProgress{
			UserID:    userID,
			CourseID:  courseID,
			StartedAt: time.Now(),
		}
		err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "course_id"}},
			DoNothing: true,
		}).Create(&courseRow).Error
		if err != nil {
			return err
		}

		if completed {
			now := time.Now()
			lessonRow := domain.UserLessonProgress{
				UserID:      userID,
				LessonID:    lessonID,
				Completed:   true,
				CompletedAt: &now,
			}
			err = tx.Clauses(clause.OnConflict{
				Columns: []clause.Column{{Name: "user_id"}, {Name: "lesson_id"}},
				DoUpdates: clause.Assignments(map[string]interface{}{
					"completed":    true,
					"completed_at": now,
				}),
			}).Create(&lessonRow).Error
			if err != nil {
				return err
			}
		}

		var total int64
		if err := tx.Model(&domain.Lesson{}).Where("course_id = ?", courseID).Count(&total).Error; err != nil {
			return err
		}

		var done int64
		err = tx.Model(&domain.UserLessonProgress{}).
			Where("user_id = ? AND completed = ?", userID, true).
			Where("lesson_id IN (?)", tx.Model(&domain.Lesson{}).Select("id").Where("course_id = ?", courseID)).
			Count(&done).Error
		if err != nil {
			return err
		}

		percent = domain.ProgressPercent(done, total)

		changes := map[string]interface{}{"progress_percent": percent}
		if percent >= 100 {
			// keep the original completion time on re-submissions
			changes["completed_at"] = gorm.Expr("COALESCE(completed_at, ?)", time.Now())
		}

		return tx.Model(&domain.UserCourseProgress{}).
			Where("user_id = ? AND course_id = ?", userID, courseID).
			Updates(changes).Error
	})

	return percent, err
}
