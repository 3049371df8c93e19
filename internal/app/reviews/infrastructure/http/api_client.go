package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"jobhub/pkg/metrics"
)

var (
	// ErrMissingToken - токен отсутствует или не начинается с "Bearer "
	ErrMissingToken = errors.New("missing or malformed bearer token")
)

const serviceName = "reviews-service"

// UpstreamError - внешний сервис ответил не-2xx статусом
// Код статуса сохраняется и поднимается до HTTP surface без изменений
type UpstreamError struct {
	StatusCode int
	URL        string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream returned status %d for %s", e.StatusCode, e.URL)
}

// APIClient - общий клиент для аутентифицированных GET-запросов
// к внешним сервисам платформы. Один синхронный запрос, без ретраев
type APIClient struct {
	httpClient *http.Client
}

// NewAPIClient создает новый клиент с таймаутом из конфигурации
func NewAPIClient(timeoutSec int) *APIClient {
	return &APIClient{
		httpClient: &http.Client{
			Timeout: time.Duration(timeoutSec) * time.Second,
		},
	}
}

// FetchResource выполняет GET baseURI/id с заголовком Authorization
// Токен передается как пришел от вызывающего ("Bearer <jwt>") и
// переустанавливается в заголовок без префикса-дубля
func (c *APIClient) FetchResource(ctx context.Context, target, baseURI, id, bearerToken string, out interface{}) error {
	if bearerToken == "" || !strings.HasPrefix(bearerToken, "Bearer ") {
		return ErrMissingToken
	}
	token := strings.TrimPrefix(bearerToken, "Bearer ")

	url := fmt.Sprintf("%s/%s", baseURI, id)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.RecordUpstreamError(serviceName, target, "transport")
		return fmt.Errorf("failed to call %s: %w", url, err)
	}
	defer resp.Body.Close()
	metrics.ObserveUpstream(serviceName, target, start)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		metrics.RecordUpstreamError(serviceName, target, "status")
		return &UpstreamError{StatusCode: resp.StatusCode, URL: url}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", url, err)
	}

	return nil
}
