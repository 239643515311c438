package handlers

import (
	"errors"
	"net/http"

	"learnplatform/internal/application/usecase"
	"learnplatform/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type CourseHandler struct {
	catalog *usecase.CatalogUseCase
}

func NewCourseHandler(catalog *usecase.CatalogUseCase) *CourseHandler {
	return &CourseHandler{catalog: catalog}
}

type courseSummaryResponse struct {
	ID            uuid.UUID `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	CoverImage    string    `json:"coverImage"`
	DurationHours int       `json:"durationHours"`
	LessonsCount  int64     `json:"lessonsCount"`
}

type lessonResponse struct {
	ID              uuid.UUID      `json:"id"`
	Title           string         `json:"title"`
	ContentType     string         `json:"contentType"`
	ContentData     datatypes.JSON `json:"contentData"`
	OrderIndex      int            `json:"orderIndex"`
	DurationMinutes int            `json:"durationMinutes"`
}

type courseDetailResponse struct {
	ID            uuid.UUID        `json:"id"`
	Title         string           `json:"title"`
	Description   string           `json:"description"`
	CoverImage    string           `json:"coverImage"`
	DurationHours int              `json:"durationHours"`
	IsPublished   bool             `json:"isPublished"`
	CreatorName   string           `json:"creatorName"`
	Lessons       []lessonResponse `json:"lessons"`
}

// GET /api/v1/courses
func (h *CourseHandler) List(c *gin.Context) {
	summaries, err := h.catalog.ListPublished(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	result := make([]courseSummaryResponse, 0, len(summaries))
	for _, s := range summaries {
		result = append(result, courseSummaryResponse{
			ID:            s.ID,
			Title:         s.Title,
			Description:   s.Description,
			CoverImage:    s.CoverImage,
			DurationHours: s.DurationHours,
			LessonsCount:  s.LessonsCount,
		})
	}

	c.JSON(http.StatusOK, result)
}

// GET /api/v1/courses/:id
func (h *CourseHandler) GetOne(c *gin.Context) {
	courseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Course not found"})
		return
	}

	detail, err := h.catalog.GetCourse(c.Request.Context(), courseID)
	if err != nil {
		if errors.Is(err, domain.ErrCourseNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Course not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	lessons := make([]lessonResponse, 0, len(detail.Lessons))
	for _, l := range detail.Lessons {
		lessons = append(lessons, lessonResponse{
			ID:              l.ID,
			Title:           l.Title,
			ContentType:     l.ContentType,
			ContentData:     l.ContentData,
			OrderIndex:      l.OrderIndex,
			DurationMinutes: l.DurationMinutes,
		})
	}

	c.JSON(http.StatusOK, courseDetailResponse{
		ID:            detail.Course.ID,
		Title:         detail.Course.Title,
		Description:   detail.Course.Description,
		CoverImage:    detail.Course.CoverImage,
		DurationHours: detail.Course.DurationHours,
		IsPublished:   detail.Course.IsPublished,
		CreatorName:   detail.CreatorName,
		Lessons:       lessons,
	})
}
