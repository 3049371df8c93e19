package handler

import (
	"context"
	"errors"
	"net/http"

	"jobhub/internal/app/reviews/entity"
	upstream "jobhub/internal/app/reviews/infrastructure/http"
	"jobhub/internal/app/reviews/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type ReviewServiceInterface interface {
	GetReviews(ctx context.Context) ([]entity.Review, error)
	GetReviewByID(ctx context.Context, id string) (*entity.Review, error)
	CreateReview(ctx context.Context, req *entity.CreateReviewRequest) (*entity.Review, error)
	UpdateReview(ctx context.Context, id string, req *entity.PatchReviewRequest) (*entity.Review, error)
	AddResponseToReview(ctx context.Context, id string, req *entity.AddResponseRequest) (*entity.Review, error)
	ModifyResponseOfReview(ctx context.Context, id string, response entity.Response) (*entity.Review, error)
	DeleteResponseOfReview(ctx context.Context, id string, responseID string) (*entity.Review, error)
	DeleteReview(ctx context.Context, id string) error
	GetDetailedReviewByID(ctx context.Context, id string, bearerToken string) (*entity.DetailedReview, error)
	GetDetailedReviewsBySender(ctx context.Context, senderID string, bearerToken string) ([]entity.DetailedReview, error)
	CheckSender(claimedID string, bearerToken string) bool
}

type ReviewHandler struct {
	reviewService ReviewServiceInterface
	validator     *validator.Validate
}

func NewReviewHandler(reviewService ReviewServiceInterface) *ReviewHandler {
	return &ReviewHandler{
		reviewService: reviewService,
		validator:     validator.New(),
	}
}

// GetReviews возвращает все отзывы
func (h *ReviewHandler) GetReviews(c *gin.Context) {
	reviews, err := h.reviewService.GetReviews(c.Request.Context())
	if err != nil {
		h.respondError(c, err, "Failed to get reviews")
		return
	}

	c.JSON(http.StatusOK, reviews)
}

// GetReviewByID возвращает отзыв по id
func (h *ReviewHandler) GetReviewByID(c *gin.Context) {
	id := c.Param("id")

	review, err := h.reviewService.GetReviewByID(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err, "Failed to get review")
		return
	}

	c.JSON(http.StatusOK, review)
}

// CreateReview создает отзыв
// Роль проверена middleware'ом, здесь дополнительно проверяется,
// что автор в запросе совпадает с subject токена
func (h *ReviewHandler) CreateReview(c *gin.Context) {
	var req entity.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, entity.ErrorResponse{Error: "Invalid request body"})
		return
	}

	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, entity.ErrorResponse{Error: formatValidationError(err)})
		return
	}

	if !h.reviewService.CheckSender(req.SenderID, c.GetHeader("Authorization")) {
		c.JSON(http.StatusForbidden, entity.ErrorResponse{Error: "Sender does not match token subject"})
		return
	}

	review, err := h.reviewService.CreateReview(c.Request.Context(), &req)
	if err != nil {
		h.respondError(c, err, "Failed to create review")
		return
	}

	c.JSON(http.StatusCreated, review)
}

// UpdateReview обновляет оценку и текст отзыва
func (h *ReviewHandler) UpdateReview(c *gin.Context) {
	id := c.Param("id")

	var req entity.PatchReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, entity.ErrorResponse{Error: "Invalid request body"})
		return
	}

	review, err := h.reviewService.UpdateReview(c.Request.Context(), id, &req)
	if err != nil {
		h.respondError(c, err, "Failed to update review")
		return
	}

	c.JSON(http.StatusOK, review)
}

// AddResponseToReview добавляет ответ к отзыву
func (h *ReviewHandler) AddResponseToReview(c *gin.Context) {
	id := c.Param("id")

	var req entity.AddResponseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, entity.ErrorResponse{Error: "Invalid request body"})
		return
	}

	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, entity.ErrorResponse{Error: formatValidationError(err)})
		return
	}

	review, err := h.reviewService.AddResponseToReview(c.Request.Context(), id, &req)
	if err != nil {
		h.respondError(c, err, "Failed to add response to review")
		return
	}

	c.JSON(http.StatusOK, review)
}

// ModifyResponseOfReview заменяет ответ с совпадающим id
func (h *ReviewHandler) ModifyResponseOfReview(c *gin.Context) {
	id := c.Param("id")

	var response entity.Response
	if err := c.ShouldBindJSON(&response); err != nil {
		c.JSON(http.StatusBadRequest, entity.ErrorResponse{Error: "Invalid request body"})
		return
	}

	review, err := h.reviewService.ModifyResponseOfReview(c.Request.Context(), id, response)
	if err != nil {
		h.respondError(c, err, "Failed to modify response of review")
		return
	}

	c.JSON(http.StatusOK, review)
}

// DeleteResponseOfReview удаляет ответ отзыва
// Ответ передается в теле запроса, удаление идет по его id
func (h *ReviewHandler) DeleteResponseOfReview(c *gin.Context) {
	id := c.Param("id")

	var response entity.Response
	if err := c.ShouldBindJSON(&response); err != nil {
		c.JSON(http.StatusBadRequest, entity.ErrorResponse{Error: "Invalid request body"})
		return
	}

	review, err := h.reviewService.DeleteResponseOfReview(c.Request.Context(), id, response.ID)
	if err != nil {
		h.respondError(c, err, "Failed to delete response of review")
		return
	}

	c.JSON(http.StatusOK, review)
}

// DeleteReview удаляет отзыв, в ответе - флаг успеха
func (h *ReviewHandler) DeleteReview(c *gin.Context) {
	id := c.Param("id")

	if err := h.reviewService.DeleteReview(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrReviewNotFound) {
			c.JSON(http.StatusNotFound, false)
			return
		}
		c.JSON(http.StatusInternalServerError, false)
		return
	}

	c.JSON(http.StatusOK, true)
}

// GetDetailedReviewByID возвращает отзыв, обогащенный данными
// об авторе, рекрутере и оффере
func (h *ReviewHandler) GetDetailedReviewByID(c *gin.Context) {
	id := c.Param("id")

	detailed, err := h.reviewService.GetDetailedReviewByID(c.Request.Context(), id, c.GetHeader("Authorization"))
	if err != nil {
		h.respondError(c, err, "Failed to get detailed review")
		return
	}

	c.JSON(http.StatusOK, detailed)
}

// GetDetailedReviewsBySender возвращает детальные отзывы автора
func (h *ReviewHandler) GetDetailedReviewsBySender(c *gin.Context) {
	senderID := c.Param("sender_id")

	detailed, err := h.reviewService.GetDetailedReviewsBySender(c.Request.Context(), senderID, c.GetHeader("Authorization"))
	if err != nil {
		h.respondError(c, err, "Failed to get detailed reviews by sender")
		return
	}

	c.JSON(http.StatusOK, detailed)
}

// respondError - единственное место, где виды ошибок сервиса
// переводятся в HTTP статусы. Статус внешнего сервиса поднимается как есть,
// все нераспознанное становится 500
func (h *ReviewHandler) respondError(c *gin.Context, err error, message string) {
	var upstreamErr *upstream.UpstreamError

	switch {
	case errors.Is(err, service.ErrReviewNotFound):
		c.JSON(http.StatusNotFound, entity.ErrorResponse{Error: "Review not found"})
	case errors.Is(err, service.ErrInvalidGrade):
		c.JSON(http.StatusBadRequest, entity.ErrorResponse{Error: service.ErrInvalidGrade.Error()})
	case errors.Is(err, upstream.ErrMissingToken):
		c.JSON(http.StatusUnauthorized, entity.ErrorResponse{Error: "Missing or malformed bearer token"})
	case errors.As(err, &upstreamErr):
		c.JSON(upstreamErr.StatusCode, entity.ErrorResponse{Error: message, Message: upstreamErr.Error()})
	default:
		c.JSON(http.StatusInternalServerError, entity.ErrorResponse{Error: message})
	}
}

func formatValidationError(err error) string {
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, fieldError := range validationErrors {
			return fieldError.Field() + " is " + fieldError.Tag()
		}
	}
	return "Validation failed"
}
