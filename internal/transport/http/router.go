package handlers

import (
	"net/http"
	"time"

	"learnplatform/internal/application/usecase"
	"learnplatform/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

func NewRouter(
	log zerolog.Logger,
	authHandler *AuthHandler,
	courseHandler *CourseHandler,
	progressHandler *ProgressHandler,
	adminCourseHandler *AdminCourseHandler,
	adminLessonHandler *AdminLessonHandler,
	guard *usecase.Guard,
) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestLogger(log), gin.Recovery())

	config := cors.DefaultConfig()
	config.AllowAllOrigins = true
	config.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "X-User-Id"}
	config.AllowMethods = []string{"GET", "POST", "PUT", "OPTIONS"}
	config.MaxAge = 24 * time.Hour
	r.Use(cors.New(config))

	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Method not allowed"})
	})

	api := r.Group("/api/v1")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/login", authHandler.Login)
			auth.POST("/register", authHandler.Register)
		}

		api.GET("/courses", courseHandler.List)
		api.GET("/courses/:id", courseHandler.GetOne)

		progress := api.Group("/progress")
		progress.Use(middleware.Identity())
		{
			progress.GET("", progressHandler.Get)
			progress.POST("", progressHandler.Submit)
		}

		admin := api.Group("/admin")
		admin.Use(middleware.Identity(), middleware.AdminOnly(guard))
		{
			admin.GET("/courses", adminCourseHandler.List)
			admin.POST("/courses", adminCourseHandler.Create)
			admin.PUT("/courses/:id", adminCourseHandler.Update)
			admin.POST("/lessons", adminLessonHandler.Create)
			admin.PUT("/lessons/:id", adminLessonHandler.Update)
		}
	}

	return r
}
