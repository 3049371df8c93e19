package http

import (
	"context"

	"jobhub/internal/app/reviews/entity"
)

// OfferClient клиент для взаимодействия с Offer Service
type OfferClient struct {
	api     *APIClient
	baseURI string
}

// NewOfferClient создает новый клиент Offer API
func NewOfferClient(api *APIClient, baseURI string) *OfferClient {
	return &OfferClient{
		api:     api,
		baseURI: baseURI,
	}
}

// GetOfferByID получает оффер по id
func (c *OfferClient) GetOfferByID(ctx context.Context, id string, bearerToken string) (*entity.Offer, error) {
	var offer entity.Offer
	if err := c.api.FetchResource(ctx, "offer-api", c.baseURI, id, bearerToken, &offer); err != nil {
		return nil, err
	}
	return &offer, nil
}
