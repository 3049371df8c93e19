package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"jobhub/internal/app/reviews/entity"
	"jobhub/internal/app/reviews/infrastructure"
	"jobhub/internal/app/reviews/repository"
	"jobhub/pkg/logger"
	"jobhub/pkg/metrics"

	"github.com/google/uuid"
)

var (
	// Ошибки бизнес-логики для обработки в handlers
	ErrReviewNotFound = errors.New("review not found")
	ErrInvalidGrade   = errors.New("the grade must be between 0 and 5")
)

// ReviewService обрабатывает бизнес-логику отзывов:
// CRUD, мутации списка ответов и сборку детального отзыва
// из локального документа и двух внешних сервисов
type ReviewService struct {
	reviewRepo         repository.ReviewRepository
	users              infrastructure.UserLookup
	offers             infrastructure.OfferLookup
	publisher          infrastructure.MessagePublisher
	principleAttribute string
}

// NewReviewService создает новый сервис отзывов с внедрением зависимостей
func NewReviewService(
	reviewRepo repository.ReviewRepository,
	users infrastructure.UserLookup,
	offers infrastructure.OfferLookup,
	publisher infrastructure.MessagePublisher,
	principleAttribute string,
) *ReviewService {
	return &ReviewService{
		reviewRepo:         reviewRepo,
		users:              users,
		offers:             offers,
		publisher:          publisher,
		principleAttribute: principleAttribute,
	}
}

// GetReviews получает все отзывы
func (s *ReviewService) GetReviews(ctx context.Context) ([]entity.Review, error) {
	reviews, err := s.reviewRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get reviews: %w", err)
	}

	return reviews, nil
}

// GetReviewByID получает отзыв по ID
func (s *ReviewService) GetReviewByID(ctx context.Context, id string) (*entity.Review, error) {
	review, err := s.reviewRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrReviewNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, fmt.Errorf("failed to get review: %w", err)
	}

	return review, nil
}

// CreateReview создает новый отзыв
// Оценка проверяется до любых записей, id и дата назначаются сервисом
func (s *ReviewService) CreateReview(ctx context.Context, req *entity.CreateReviewRequest) (*entity.Review, error) {
	if err := s.ValidateGrade(req.Grade); err != nil {
		return nil, err
	}

	review := &entity.Review{
		ID:           uuid.NewString(),
		Grade:        req.Grade,
		Message:      req.Message,
		SenderID:     req.SenderID,
		UserID:       req.UserID,
		OfferID:      req.OfferID,
		ResponseList: []entity.Response{},
		Date:         time.Now(),
	}

	if err := s.reviewRepo.Save(ctx, review); err != nil {
		return nil, fmt.Errorf("failed to create review: %w", err)
	}

	metrics.ReviewsCreated.Inc()
	metrics.ReviewsGrade.Observe(float64(review.Grade))

	s.publishReviewEvent(ctx, "REVIEW_CREATED", review)

	return review, nil
}

// UpdateReview обновляет отзыв: меняются только оценка и текст,
// автор, оффер, дата и список ответов остаются как есть
func (s *ReviewService) UpdateReview(ctx context.Context, id string, req *entity.PatchReviewRequest) (*entity.Review, error) {
	if err := s.ValidateGrade(req.Grade); err != nil {
		return nil, err
	}

	review, err := s.GetReviewByID(ctx, id)
	if err != nil {
		return nil, err
	}

	review.Grade = req.Grade
	review.Message = req.Message

	if err := s.reviewRepo.Save(ctx, review); err != nil {
		return nil, fmt.Errorf("failed to update review: %w", err)
	}

	s.publishReviewEvent(ctx, "REVIEW_UPDATED", review)

	return review, nil
}

// AddResponseToReview добавляет ответ в конец списка ответов отзыва
// Ответ получает свежий id и текущую дату
func (s *ReviewService) AddResponseToReview(ctx context.Context, id string, req *entity.AddResponseRequest) (*entity.Review, error) {
	review, err := s.GetReviewByID(ctx, id)
	if err != nil {
		return nil, err
	}

	response := entity.Response{
		ID:       uuid.NewString(),
		Date:     time.Now(),
		Message:  req.Message,
		SenderID: req.SenderID,
	}
	review.ResponseList = append(review.ResponseList, response)

	if err := s.reviewRepo.Save(ctx, review); err != nil {
		return nil, fmt.Errorf("failed to add response to review: %w", err)
	}

	metrics.ResponsesAdded.Inc()

	s.publishReviewEvent(ctx, "RESPONSE_ADDED", review)

	return review, nil
}

// ModifyResponseOfReview заменяет элемент списка с совпадающим id,
// сохраняя его позицию. Если совпадений нет - список не меняется,
// это не ошибка
func (s *ReviewService) ModifyResponseOfReview(ctx context.Context, id string, response entity.Response) (*entity.Review, error) {
	review, err := s.GetReviewByID(ctx, id)
	if err != nil {
		return nil, err
	}

	for i := range review.ResponseList {
		if review.ResponseList[i].ID == response.ID {
			review.ResponseList[i] = response
			break
		}
	}

	if err := s.reviewRepo.Save(ctx, review); err != nil {
		return nil, fmt.Errorf("failed to modify response of review: %w", err)
	}

	return review, nil
}

// DeleteResponseOfReview удаляет из списка все ответы с данным id,
// порядок оставшихся элементов сохраняется
func (s *ReviewService) DeleteResponseOfReview(ctx context.Context, id string, responseID string) (*entity.Review, error) {
	review, err := s.GetReviewByID(ctx, id)
	if err != nil {
		return nil, err
	}

	filtered := make([]entity.Response, 0, len(review.ResponseList))
	for _, r := range review.ResponseList {
		if r.ID != responseID {
			filtered = append(filtered, r)
		}
	}
	review.ResponseList = filtered

	if err := s.reviewRepo.Save(ctx, review); err != nil {
		return nil, fmt.Errorf("failed to delete response of review: %w", err)
	}

	return review, nil
}

// DeleteReview удаляет отзыв. Ответы встроены в документ,
// каскадного удаления не требуется
func (s *ReviewService) DeleteReview(ctx context.Context, id string) error {
	review, err := s.GetReviewByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.reviewRepo.Delete(ctx, review.ID); err != nil {
		if errors.Is(err, repository.ErrReviewNotFound) {
			return ErrReviewNotFound
		}
		return fmt.Errorf("failed to delete review: %w", err)
	}

	s.publishReviewEvent(ctx, "REVIEW_DELETED", review)

	return nil
}

// ValidateGrade проверяет, что оценка лежит в диапазоне [0, 5]
// Вызывается до любой записи в хранилище
func (s *ReviewService) ValidateGrade(grade int) error {
	if grade < 0 || grade > 5 {
		return ErrInvalidGrade
	}
	return nil
}

// GetDetailedReviewByID собирает детальный отзыв: документ из MongoDB
// плюс автор, рекрутер и оффер из внешних сервисов
// Три вызова выполняются последовательно, первая же ошибка прерывает сборку -
// частичных результатов не бывает
func (s *ReviewService) GetDetailedReviewByID(ctx context.Context, id string, bearerToken string) (*entity.DetailedReview, error) {
	review, err := s.GetReviewByID(ctx, id)
	if err != nil {
		return nil, err
	}

	sender, err := s.users.GetUserByID(ctx, review.SenderID, bearerToken)
	if err != nil {
		return nil, fmt.Errorf("failed to get sender %s: %w", review.SenderID, err)
	}

	subject, err := s.users.GetUserByID(ctx, review.UserID, bearerToken)
	if err != nil {
		return nil, fmt.Errorf("failed to get user %s: %w", review.UserID, err)
	}

	offer, err := s.offers.GetOfferByID(ctx, review.OfferID, bearerToken)
	if err != nil {
		return nil, fmt.Errorf("failed to get offer %s: %w", review.OfferID, err)
	}

	return &entity.DetailedReview{
		ID:           review.ID,
		Grade:        review.Grade,
		Message:      review.Message,
		Sender:       sender,
		User:         subject,
		ResponseList: review.ResponseList,
		Date:         review.Date,
		Offer:        offer,
	}, nil
}

// GetDetailedReviewsBySender собирает детальные отзывы автора
// Любая неудачная сборка прерывает весь список
func (s *ReviewService) GetDetailedReviewsBySender(ctx context.Context, senderID string, bearerToken string) ([]entity.DetailedReview, error) {
	reviews, err := s.reviewRepo.GetBySenderID(ctx, senderID)
	if err != nil {
		return nil, fmt.Errorf("failed to get reviews by sender: %w", err)
	}

	detailed := make([]entity.DetailedReview, 0, len(reviews))
	for _, review := range reviews {
		d, err := s.GetDetailedReviewByID(ctx, review.ID, bearerToken)
		if err != nil {
			return nil, err
		}
		detailed = append(detailed, *d)
	}

	return detailed, nil
}

// publishReviewEvent отправляет событие жизненного цикла отзыва в Kafka
// Отзыв уже сохранен, поэтому ошибка отправки только логируется
func (s *ReviewService) publishReviewEvent(ctx context.Context, eventType string, review *entity.Review) {
	event := entity.ReviewEvent{
		EventType: eventType,
		ReviewID:  review.ID,
		SenderID:  review.SenderID,
		OfferID:   review.OfferID,
		Grade:     review.Grade,
		Timestamp: time.Now(),
	}

	eventData, err := json.Marshal(event)
	if err != nil {
		logger.Warn().Err(err).Str("review_id", review.ID).Msg("Failed to marshal review event")
		return
	}

	if err := s.publisher.PublishMessage(ctx, event.ReviewID, eventData); err != nil {
		logger.Warn().Err(err).Str("review_id", review.ID).Str("event_type", eventType).Msg("Failed to publish review event")
	}
}
