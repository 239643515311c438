package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"

	"learnplatform/internal/application/usecase"
	"learnplatform/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type AdminLessonHandler struct {
	admin *usecase.AdminUseCase
}

func NewAdminLessonHandler(admin *usecase.AdminUseCase) *AdminLessonHandler {
	return &AdminLessonHandler{admin: admin}
}

type createLessonReq struct {
	CourseID        string          `json:"courseId"`
	Title           string          `json:"title"`
	ContentType     string          `json:"contentType"`
	ContentData     json.RawMessage `json:"contentData"`
	OrderIndex      int             `json:"orderIndex"`
	DurationMinutes int             `json:"durationMinutes"`
}

type updateLessonReq struct {
	Title           *string         `json:"title"`
	ContentType     *string         `json:"contentType"`
	ContentData     json.RawMessage `json:"contentData"`
	OrderIndex      *int            `json:"orderIndex"`
	DurationMinutes *int            `json:"durationMinutes"`
}

// contentJSON treats an absent or explicit-null contentData as "leave
// unchanged", keeping absence distinguishable from an empty document.
func contentJSON(raw json.RawMessage) datatypes.JSON {
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil
	}
	return datatypes.JSON(raw)
}

// POST /api/v1/admin/lessons
func (h *AdminLessonHandler) Create(c *gin.Context) {
	var req createLessonReq
	_ = c.ShouldBindJSON(&req)

	if req.CourseID == "" || req.Title == "" || req.ContentType == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "courseId, title and contentType required"})
		return
	}

	courseID, err := uuid.Parse(req.CourseID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid course ID"})
		return
	}

	lesson, err := h.admin.CreateLesson(c.Request.Context(), courseID,
		req.Title, req.ContentType, contentJSON(req.ContentData), req.OrderIndex, req.DurationMinutes)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":              lesson.ID,
		"courseId":        lesson.CourseID,
		"title":           lesson.Title,
		"contentType":     lesson.ContentType,
		"contentData":     lesson.ContentData,
		"orderIndex":      lesson.OrderIndex,
		"durationMinutes": lesson.DurationMinutes,
	})
}

// PUT /api/v1/admin/lessons/:id
func (h *AdminLessonHandler) Update(c *gin.Context) {
	lessonID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Lesson ID required"})
		return
	}

	var req updateLessonReq
	_ = c.ShouldBindJSON(&req)

	patch := domain.LessonPatch{
		Title:           req.Title,
		ContentType:     req.ContentType,
		ContentData:     contentJSON(req.ContentData),
		OrderIndex:      req.OrderIndex,
		DurationMinutes: req.DurationMinutes,
	}

	lesson, err := h.admin.UpdateLesson(c.Request.Context(), lessonID, patch)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNoUpdates):
			c.JSON(http.StatusOK, gin.H{"message": "No updates provided"})
		case errors.Is(err, domain.ErrLessonNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Lesson not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":    lesson.ID,
		"title": lesson.Title,
	})
}
