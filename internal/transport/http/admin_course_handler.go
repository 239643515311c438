package handlers

import (
	"errors"
	"net/http"

	"learnplatform/internal/application/usecase"
	"learnplatform/internal/domain"
	"learnplatform/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AdminCourseHandler struct {
	admin *usecase.AdminUseCase
}

func NewAdminCourseHandler(admin *usecase.AdminUseCase) *AdminCourseHandler {
	return &AdminCourseHandler{admin: admin}
}

type adminCourseSummaryResponse struct {
	ID            uuid.UUID `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	CoverImage    string    `json:"coverImage"`
	DurationHours int       `json:"durationHours"`
	IsPublished   bool      `json:"isPublished"`
	LessonsCount  int64     `json:"lessonsCount"`
}

type createCourseReq struct {
	Title         string `json:"title"`
	Description   string `json:"description"`
	CoverImage    string `json:"coverImage"`
	DurationHours int    `json:"durationHours"`
}

type updateCourseReq struct {
	Title         *string `json:"title"`
	Description   *string `json:"description"`
	CoverImage    *string `json:"coverImage"`
	DurationHours *int    `json:"durationHours"`
	IsPublished   *bool   `json:"isPublished"`
}

// GET /api/v1/admin/courses
func (h *AdminCourseHandler) List(c *gin.Context) {
	summaries, err := h.admin.ListCourses(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	result := make([]adminCourseSummaryResponse, 0, len(summaries))
	for _, s := range summaries {
		result = append(result, adminCourseSummaryResponse{
			ID:            s.ID,
			Title:         s.Title,
			Description:   s.Description,
			CoverImage:    s.CoverImage,
			DurationHours: s.DurationHours,
			IsPublished:   s.IsPublished,
			LessonsCount:  s.LessonsCount,
		})
	}

	c.JSON(http.StatusOK, result)
}

// POST /api/v1/admin/courses
func (h *AdminCourseHandler) Create(c *gin.Context) {
	var req createCourseReq
	_ = c.ShouldBindJSON(&req)

	if req.Title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title required"})
		return
	}

	course, err := h.admin.CreateCourse(c.Request.Context(), middleware.UserID(c),
		req.Title, req.Description, req.CoverImage, req.DurationHours)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":            course.ID,
		"title":         course.Title,
		"description":   course.Description,
		"coverImage":    course.CoverImage,
		"durationHours": course.DurationHours,
		"isPublished":   course.IsPublished,
	})
}

// PUT /api/v1/admin/courses/:id
func (h *AdminCourseHandler) Update(c *gin.Context) {
	courseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Course ID required"})
		return
	}

	var req updateCourseReq
	_ = c.ShouldBindJSON(&req)

	patch := domain.CoursePatch{
		Title:         req.Title,
		Description:   req.Description,
		CoverImage:    req.CoverImage,
		DurationHours: req.DurationHours,
		IsPublished:   req.IsPublished,
	}

	course, err := h.admin.UpdateCourse(c.Request.Context(), courseID, patch)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNoUpdates):
			c.JSON(http.StatusOK, gin.H{"message": "No updates provided"})
		case errors.Is(err, domain.ErrCourseNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Course not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":          course.ID,
		"title":       course.Title,
		"isPublished": course.IsPublished,
	})
}
