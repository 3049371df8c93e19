package infrastructure

import (
	"context"

	"jobhub/internal/app/reviews/entity"
)

// MessagePublisher интерфейс для отправки сообщений в очередь (Kafka)
// Используется для dependency injection и упрощения тестирования
type MessagePublisher interface {
	PublishMessage(ctx context.Context, key string, value []byte) error
	Close() error
}

// UserLookup получает пользователя из User API по id с токеном вызывающего
type UserLookup interface {
	GetUserByID(ctx context.Context, id string, bearerToken string) (*entity.User, error)
}

// OfferLookup получает оффер из Offer API по id с токеном вызывающего
type OfferLookup interface {
	GetOfferByID(ctx context.Context, id string, bearerToken string) (*entity.Offer, error)
}
