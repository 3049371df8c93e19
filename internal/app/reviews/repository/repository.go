package repository

import (
	"context"

	"jobhub/internal/app/reviews/entity"
)

// ReviewRepository определяет методы для работы с отзывами в MongoDB
// Save выполняет upsert целого документа: конкурирующие записи по одному id
// применяются по принципу last-write-wins, версионного поля нет
type ReviewRepository interface {
	FindAll(ctx context.Context) ([]entity.Review, error)
	GetByID(ctx context.Context, id string) (*entity.Review, error)
	GetBySenderID(ctx context.Context, senderID string) ([]entity.Review, error)
	Save(ctx context.Context, review *entity.Review) error
	Delete(ctx context.Context, id string) error
}
