package http

import (
	"context"

	"jobhub/internal/app/reviews/entity"
)

// UserClient клиент для взаимодействия с User Service
// Используется при сборке детального отзыва (автор и рекрутер)
type UserClient struct {
	api     *APIClient
	baseURI string
}

// NewUserClient создает новый клиент User API
func NewUserClient(api *APIClient, baseURI string) *UserClient {
	return &UserClient{
		api:     api,
		baseURI: baseURI,
	}
}

// GetUserByID получает пользователя по id
// Каждый вызов - свежий запрос к User API, кеширования нет
func (c *UserClient) GetUserByID(ctx context.Context, id string, bearerToken string) (*entity.User, error) {
	var user entity.User
	if err := c.api.FetchResource(ctx, "user-api", c.baseURI, id, bearerToken, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
