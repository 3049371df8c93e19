package handler

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"jobhub/pkg/logger"
	"jobhub/pkg/metrics"
)

// SetupRoutes настраивает все маршруты приложения с использованием Gin
func SetupRoutes(reviewHandler *ReviewHandler, authMiddleware *AuthMiddleware) *gin.Engine {
	router := gin.New()

	// Recovery middleware для обработки panic
	router.Use(gin.Recovery())

	// JSON logging middleware для HTTP-запросов (ELK Stack)
	router.Use(logger.GinLoggerMiddleware())

	// Prometheus metrics middleware
	router.Use(metrics.GinPrometheusMiddleware("reviews-service"))

	// CORS настройки
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"https://*", "http://*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposeHeaders:    []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "reviews-service",
		})
	})

	// Prometheus metrics endpoint
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Все маршруты отзывов требуют аутентификации,
	// создание - дополнительно роль рекрутера или администратора
	reviews := router.Group("/api/v1/review")
	reviews.Use(authMiddleware.Authenticate())
	{
		reviews.GET("/", reviewHandler.GetReviews)
		reviews.GET("/:id", reviewHandler.GetReviewByID)
		reviews.POST("/",
			authMiddleware.RequireAnyRole("client_recruiter", "client_admin"),
			reviewHandler.CreateReview)
		reviews.PATCH("/:id", reviewHandler.UpdateReview)
		reviews.PATCH("/add/response/:id", reviewHandler.AddResponseToReview)
		reviews.PUT("/modify/response/:id", reviewHandler.ModifyResponseOfReview)
		reviews.DELETE("/delete/response/:id", reviewHandler.DeleteResponseOfReview)
		reviews.DELETE("/:id", reviewHandler.DeleteReview)

		reviews.GET("/detailed/:id", reviewHandler.GetDetailedReviewByID)
		reviews.GET("/detailed/sender/:sender_id", reviewHandler.GetDetailedReviewsBySender)
	}

	return router
}
