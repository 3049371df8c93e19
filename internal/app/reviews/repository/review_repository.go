package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"jobhub/internal/app/reviews/entity"
	"jobhub/pkg/metrics"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	// Стандартные ошибки репозитория для обработки в service layer
	ErrReviewNotFound = errors.New("review not found")
)

const serviceName = "reviews-service"

type reviewRepository struct {
	collection *mongo.Collection
}

// NewReviewRepository создает новый репозиторий отзывов
// Автоматически создает индекс по sender_id для выборки отзывов автора
func NewReviewRepository(db *mongo.Database) ReviewRepository {
	collection := db.Collection("reviews")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModel := mongo.IndexModel{
		Keys: bson.D{
			{Key: "sender_id", Value: 1},
		},
		Options: options.Index().SetName("sender_id_idx"),
	}

	_, err := collection.Indexes().CreateOne(ctx, indexModel)
	if err != nil {
		// Логируем ошибку, но не прерываем работу - индекс может уже существовать
		fmt.Printf("Warning: failed to create index on sender_id: %v\n", err)
	}

	return &reviewRepository{
		collection: collection,
	}
}

// FindAll получает все отзывы, отсортированные от новых к старым
func (r *reviewRepository) FindAll(ctx context.Context) ([]entity.Review, error) {
	timer := metrics.NewMongoTimer(serviceName, metrics.MongoOpFind, "reviews")
	defer timer.ObserveDuration()

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		metrics.RecordMongoError(serviceName, metrics.MongoOpFind)
		return nil, fmt.Errorf("failed to find reviews: %w", err)
	}
	defer cursor.Close(ctx)

	var reviews []entity.Review
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, fmt.Errorf("failed to decode reviews: %w", err)
	}

	normalizeAll(reviews)
	return reviews, nil
}

// GetByID получает отзыв по ID
func (r *reviewRepository) GetByID(ctx context.Context, id string) (*entity.Review, error) {
	timer := metrics.NewMongoTimer(serviceName, metrics.MongoOpFind, "reviews")
	defer timer.ObserveDuration()

	filter := bson.M{"_id": id}

	var review entity.Review
	err := r.collection.FindOne(ctx, filter).Decode(&review)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrReviewNotFound
		}
		metrics.RecordMongoError(serviceName, metrics.MongoOpFind)
		return nil, fmt.Errorf("failed to get review: %w", err)
	}

	normalize(&review)
	return &review, nil
}

// GetBySenderID получает все отзывы автора
// Использует индекс sender_id_idx
func (r *reviewRepository) GetBySenderID(ctx context.Context, senderID string) ([]entity.Review, error) {
	timer := metrics.NewMongoTimer(serviceName, metrics.MongoOpFind, "reviews")
	defer timer.ObserveDuration()

	filter := bson.M{"sender_id": senderID}
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		metrics.RecordMongoError(serviceName, metrics.MongoOpFind)
		return nil, fmt.Errorf("failed to find reviews: %w", err)
	}
	defer cursor.Close(ctx)

	var reviews []entity.Review
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, fmt.Errorf("failed to decode reviews: %w", err)
	}

	normalizeAll(reviews)
	return reviews, nil
}

// Save сохраняет отзыв целиком: создает документ, если id ещё нет,
// иначе заменяет существующий (last-write-wins)
func (r *reviewRepository) Save(ctx context.Context, review *entity.Review) error {
	timer := metrics.NewMongoTimer(serviceName, metrics.MongoOpReplace, "reviews")
	defer timer.ObserveDuration()

	filter := bson.M{"_id": review.ID}
	opts := options.Replace().SetUpsert(true)

	_, err := r.collection.ReplaceOne(ctx, filter, review, opts)
	if err != nil {
		metrics.RecordMongoError(serviceName, metrics.MongoOpReplace)
		return fmt.Errorf("failed to save review: %w", err)
	}

	return nil
}

// Delete удаляет отзыв из MongoDB
func (r *reviewRepository) Delete(ctx context.Context, id string) error {
	timer := metrics.NewMongoTimer(serviceName, metrics.MongoOpDelete, "reviews")
	defer timer.ObserveDuration()

	filter := bson.M{"_id": id}

	result, err := r.collection.DeleteOne(ctx, filter)
	if err != nil {
		metrics.RecordMongoError(serviceName, metrics.MongoOpDelete)
		return fmt.Errorf("failed to delete review: %w", err)
	}

	if result.DeletedCount == 0 {
		return ErrReviewNotFound
	}

	return nil
}

// normalize приводит response_list к непустому слайсу:
// отсутствие списка и пустой список - одно и то же состояние
func normalize(review *entity.Review) {
	if review.ResponseList == nil {
		review.ResponseList = []entity.Response{}
	}
}

func normalizeAll(reviews []entity.Review) {
	for i := range reviews {
		normalize(&reviews[i])
	}
}
