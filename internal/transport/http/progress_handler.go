package handlers

import (
	"net/http"
	"time"

	"learnplatform/internal/application/usecase"
	"learnplatform/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ProgressHandler struct {
	progress *usecase.ProgressUseCase
}

func NewProgressHandler(progress *usecase.ProgressUseCase) *ProgressHandler {
	return &ProgressHandler{progress: progress}
}

type courseProgressResponse struct {
	ProgressPercent int        `json:"progressPercent"`
	StartedAt       time.Time  `json:"startedAt"`
	CompletedAt     *time.Time `json:"completedAt"`
	CourseTitle     string     `json:"courseTitle"`
	CoverImage      string     `json:"coverImage"`
}

type progressEntryResponse struct {
	CourseID        uuid.UUID `json:"courseId"`
	Title           string    `json:"title"`
	CoverImage      string    `json:"coverImage"`
	ProgressPercent int       `json:"progressPercent"`
	StartedAt       time.Time `json:"startedAt"`
}

type submitProgressReq struct {
	CourseID  string `json:"courseId"`
	LessonID  string `json:"lessonId"`
	Completed bool   `json:"completed"`
}

// GET /api/v1/progress
func (h *ProgressHandler) Get(c *gin.Context) {
	userID := middleware.UserID(c)

	if raw := c.Query("courseId"); raw != "" {
		courseID, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid course ID"})
			return
		}

		view, err := h.progress.GetForCourse(c.Request.Context(), userID, courseID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		// no row yet is a valid zero state
		if view == nil {
			c.JSON(http.StatusOK, gin.H{"progressPercent": 0})
			return
		}

		c.JSON(http.StatusOK, courseProgressResponse{
			ProgressPercent: view.ProgressPercent,
			StartedAt:       view.StartedAt,
			CompletedAt:     view.CompletedAt,
			CourseTitle:     view.CourseTitle,
			CoverImage:      view.CoverImage,
		})
		return
	}

	entries, err := h.progress.ListForUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	result := make([]progressEntryResponse, 0, len(entries))
	for _, e := range entries {
		result = append(result, progressEntryResponse{
			CourseID:        e.CourseID,
			Title:           e.Title,
			CoverImage:      e.CoverImage,
			ProgressPercent: e.ProgressPercent,
			StartedAt:       e.StartedAt,
		})
	}

	c.JSON(http.StatusOK, result)
}

// POST /api/v1/progress
func (h *ProgressHandler) Submit(c *gin.Context) {
	var req submitProgressReq
	_ = c.ShouldBindJSON(&req)

	if req.CourseID == "" || req.LessonID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "courseId and lessonId required"})
		return
	}

	courseID, err := uuid.Parse(req.CourseID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid course ID"})
		return
	}
	lessonID, err := uuid.Parse(req.LessonID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid lesson ID"})
		return
	}

	percent, err := h.progress.Submit(c.Request.Context(), middleware.UserID(c), courseID, lessonID, req.Completed)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"progressPercent": percent})
}
