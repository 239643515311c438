package repository

import (
	"context"
	"errors"
	"time"

	"learnplatform/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CourseRepository struct {
	db *gorm.DB
}

func NewCourseRepository(db *gorm.DB) *CourseRepository {
	return &CourseRepository{db: db}
}

func (r *CourseRepository) summaries(ctx context.Context, publishedOnly bool) ([]domain.CourseSummary, error) {
	query := r.db.WithContext(ctx).Model(&domain.Course{}).
		Select("courses.id, courses.title, courses.description, courses.cover_image, courses.duration_hours, courses.is_published, COUNT(lessons.id) AS lessons_count").
		Joins("LEFT JOIN lessons ON lessons.course_id = courses.id").
		Group("courses.id").
		Order("courses.created_at DESC")

	if publishedOnly {
		query = query.Where("courses.is_published = ?", true)
	}

	summaries := []domain.CourseSummary{}
	if err := query.Scan(&summaries).Error; err != nil {
		return nil, err
	}
	return summaries, nil
}

func (r *CourseRepository) ListPublished(ctx context.Context) ([]domain.CourseSummary, error) {
	return r.summaries(ctx, true)
}

func (r *CourseRepository) ListAll(ctx context.Context) ([]domain.CourseSummary, error) {
	return r.summaries(ctx, false)
}

// GetDetail returns a course regardless of publish state, its lessons
// ordered for display and the creator's display name.
func (r *CourseRepository) GetDetail(ctx context.Context, id uuid.UUID) (*domain.CourseDetail, error) {
	var course domain.Course
	err := r.db.WithContext(ctx).First(&course, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCourseNotFound
		}
		return nil, err
	}

	lessons := []domain.Lesson{}
	err = r.db.WithContext(ctx).
		Where("course_id = ?", id).
		Order("order_index ASC, created_at ASC").
		Find(&lessons).Error
	if err != nil {
		return nil, err
	}

	detail := &domain.CourseDetail{Course: course, Lessons: lessons}

	if course.CreatedBy != nil {
		var creator domain.User
		if err := r.db.WithContext(ctx).First(&creator, "id = ?", *course.CreatedBy).Error; err == nil {
			detail.CreatorName = creator.FullName
		}
	}

	return detail, nil
}

func (r *CourseRepository) Create(ctx context.Context, course *domain.Course) error {
	return r.db.WithContext(ctx).Create(course).Error
}

// Update applies the supplied column changes and stamps updated_at.
func (r *CourseRepository) Update(ctx context.Context, id uuid.UUID, changes map[string]interface{}) (*domain.Course, error) {
	changes["updated_at"] = time.Now()

	result := r.db.WithContext(ctx).Model(&domain.Course{}).
		Where("id = ?", id).
		Updates(changes)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, domain.ErrCourseNotFound
	}

	var course domain.Course
	if err := r.db.WithContext(ctx).First(&course, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &course, nil
}
