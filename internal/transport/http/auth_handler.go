package handlers

import (
	"errors"
	"net/http"

	"learnplatform/internal/application/usecase"
	"learnplatform/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuthHandler struct {
	auth *usecase.AuthUseCase
}

func NewAuthHandler(auth *usecase.AuthUseCase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

type loginReq struct {
	Phone string `json:"phone"`
}

type registerReq struct {
	Phone    string `json:"phone"`
	FullName string `json:"fullName"`
}

type userProfileResponse struct {
	UserID   uuid.UUID `json:"userId"`
	Phone    string    `json:"phone"`
	FullName string    `json:"fullName"`
	Role     string    `json:"role"`
}

func toProfileResponse(u *domain.User) userProfileResponse {
	return userProfileResponse{
		UserID:   u.ID,
		Phone:    u.Phone,
		FullName: u.FullName,
		Role:     u.Role,
	}
}

// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginReq
	_ = c.ShouldBindJSON(&req)

	if req.Phone == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Phone required"})
		return
	}

	user, err := h.auth.Login(c.Request.Context(), req.Phone)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, toProfileResponse(user))
}

// POST /api/v1/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerReq
	_ = c.ShouldBindJSON(&req)

	if req.Phone == "" || req.FullName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Phone and fullName required"})
		return
	}

	user, err := h.auth.Register(c.Request.Context(), req.Phone, req.FullName)
	if err != nil {
		if errors.Is(err, domain.ErrUserAlreadyExists) {
			c.JSON(http.StatusConflict, gin.H{"error": "User already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, toProfileResponse(user))
}
