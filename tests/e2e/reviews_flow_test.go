//go:build e2e

package e2e

import (
	"bytes"
	"encoding/json"
	"net/http"
	"os"
	"testing"
	"time"

	"jobhub/internal/app/reviews/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const BaseURL = "http://localhost:8084"

// Токен должен быть выписан тем же секретом, что и у запущенного сервиса,
// с claim sub, равным E2E_SENDER_ID
var (
	AuthToken = getEnv("E2E_AUTH_TOKEN", "test-jwt-token")
	SenderID  = getEnv("E2E_SENDER_ID", uuid.NewString())
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getAuthHeaders() http.Header {
	headers := make(http.Header)
	headers.Set("Content-Type", "application/json")
	headers.Set("Authorization", "Bearer "+AuthToken)
	return headers
}

func TestFullReviewFlow(t *testing.T) {
	client := &http.Client{Timeout: 10 * time.Second}

	// Create
	createReq := entity.CreateReviewRequest{
		Grade:    4,
		Message:  "Good recruiter, fast replies.",
		SenderID: SenderID,
		UserID:   uuid.NewString(),
		OfferID:  uuid.NewString(),
	}
	body, _ := json.Marshal(createReq)

	req, _ := http.NewRequest(http.MethodPost, BaseURL+"/api/v1/review/", bytes.NewBuffer(body))
	req.Header = getAuthHeaders()

	resp, err := client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created entity.Review
	json.NewDecoder(resp.Body).Decode(&created)
	require.NotEmpty(t, created.ID)

	defer func() {
		req, _ := http.NewRequest(http.MethodDelete, BaseURL+"/api/v1/review/"+created.ID, nil)
		req.Header = getAuthHeaders()
		resp, _ := client.Do(req)
		if resp != nil {
			resp.Body.Close()
		}
	}()

	// Get
	req, _ = http.NewRequest(http.MethodGet, BaseURL+"/api/v1/review/"+created.ID, nil)
	req.Header = getAuthHeaders()
	resp, err = client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var fetched entity.Review
	json.NewDecoder(resp.Body).Decode(&fetched)
	assert.Equal(t, created.ID, fetched.ID)
	assert.Equal(t, 4, fetched.Grade)
	assert.NotNil(t, fetched.ResponseList)

	// Update
	updateReq := entity.PatchReviewRequest{Grade: 5, Message: "Updated: excellent recruiter!"}
	body, _ = json.Marshal(updateReq)

	req, _ = http.NewRequest(http.MethodPatch, BaseURL+"/api/v1/review/"+created.ID, bytes.NewBuffer(body))
	req.Header = getAuthHeaders()

	resp, err = client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var updated entity.Review
	json.NewDecoder(resp.Body).Decode(&updated)
	assert.Equal(t, 5, updated.Grade)
}

func TestResponseFlow(t *testing.T) {
	client := &http.Client{Timeout: 10 * time.Second}

	createReq := entity.CreateReviewRequest{
		Grade:    3,
		Message:  "Review with responses.",
		SenderID: SenderID,
		UserID:   uuid.NewString(),
		OfferID:  uuid.NewString(),
	}
	body, _ := json.Marshal(createReq)

	req, _ := http.NewRequest(http.MethodPost, BaseURL+"/api/v1/review/", bytes.NewBuffer(body))
	req.Header = getAuthHeaders()

	resp, err := client.Do(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created entity.Review
	json.NewDecoder(resp.Body).Decode(&created)
	resp.Body.Close()

	defer func() {
		req, _ := http.NewRequest(http.MethodDelete, BaseURL+"/api/v1/review/"+created.ID, nil)
		req.Header = getAuthHeaders()
		resp, _ := client.Do(req)
		if resp != nil {
			resp.Body.Close()
		}
	}()

	// Добавляем ответ
	addReq := entity.AddResponseRequest{Message: "Thanks for the feedback!", SenderID: uuid.NewString()}
	body, _ = json.Marshal(addReq)

	req, _ = http.NewRequest(http.MethodPatch, BaseURL+"/api/v1/review/add/response/"+created.ID, bytes.NewBuffer(body))
	req.Header = getAuthHeaders()

	resp, err = client.Do(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var withResponse entity.Review
	json.NewDecoder(resp.Body).Decode(&withResponse)
	resp.Body.Close()
	require.Len(t, withResponse.ResponseList, 1)

	response := withResponse.ResponseList[0]

	// Меняем текст ответа
	response.Message = "Thanks, we appreciate it!"
	body, _ = json.Marshal(response)

	req, _ = http.NewRequest(http.MethodPut, BaseURL+"/api/v1/review/modify/response/"+created.ID, bytes.NewBuffer(body))
	req.Header = getAuthHeaders()

	resp, err = client.Do(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var modified entity.Review
	json.NewDecoder(resp.Body).Decode(&modified)
	resp.Body.Close()
	require.Len(t, modified.ResponseList, 1)
	assert.Equal(t, "Thanks, we appreciate it!", modified.ResponseList[0].Message)

	// Удаляем ответ
	body, _ = json.Marshal(response)

	req, _ = http.NewRequest(http.MethodDelete, BaseURL+"/api/v1/review/delete/response/"+created.ID, bytes.NewBuffer(body))
	req.Header = getAuthHeaders()

	resp, err = client.Do(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var emptied entity.Review
	json.NewDecoder(resp.Body).Decode(&emptied)
	resp.Body.Close()
	assert.Empty(t, emptied.ResponseList)
}

func TestGetNonExistentReview(t *testing.T) {
	client := &http.Client{Timeout: 10 * time.Second}

	req, _ := http.NewRequest(http.MethodGet, BaseURL+"/api/v1/review/"+uuid.NewString(), nil)
	req.Header = getAuthHeaders()

	resp, err := client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestDeleteNonExistentReview(t *testing.T) {
	client := &http.Client{Timeout: 10 * time.Second}

	req, _ := http.NewRequest(http.MethodDelete, BaseURL+"/api/v1/review/"+uuid.NewString(), nil)
	req.Header = getAuthHeaders()

	resp, err := client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestUnauthorizedAccess(t *testing.T) {
	client := &http.Client{Timeout: 10 * time.Second}

	req, _ := http.NewRequest(http.MethodGet, BaseURL+"/api/v1/review/", nil)

	resp, err := client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestHealthCheck(t *testing.T) {
	client := &http.Client{Timeout: 10 * time.Second}

	resp, err := client.Get(BaseURL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// TestCreateReview_ValidationErrors тестирует валидацию
func TestCreateReview_ValidationErrors(t *testing.T) {
	client := &http.Client{Timeout: 10 * time.Second}

	testCases := []struct {
		name    string
		request map[string]interface{}
	}{
		{
			name: "Grade too low",
			request: map[string]interface{}{
				"grade":    -1,
				"message":  "Оценка ниже допустимой.",
				"senderId": SenderID,
				"userId":   uuid.NewString(),
				"offerId":  uuid.NewString(),
			},
		},
		{
			name: "Grade too high",
			request: map[string]interface{}{
				"grade":    6,
				"message":  "Оценка выше допустимой.",
				"senderId": SenderID,
				"userId":   uuid.NewString(),
				"offerId":  uuid.NewString(),
			},
		},
		{
			name: "Sender not a UUID",
			request: map[string]interface{}{
				"grade":    5,
				"message":  "Невалидный идентификатор автора.",
				"senderId": "not-a-uuid",
				"userId":   uuid.NewString(),
				"offerId":  uuid.NewString(),
			},
		},
		{
			name: "Missing message",
			request: map[string]interface{}{
				"grade":    5,
				"senderId": SenderID,
				"userId":   uuid.NewString(),
				"offerId":  uuid.NewString(),
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			body, _ := json.Marshal(tc.request)

			req, _ := http.NewRequest(http.MethodPost, BaseURL+"/api/v1/review/", bytes.NewBuffer(body))
			req.Header = getAuthHeaders()

			resp, err := client.Do(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		})
	}
}

// TestAllGrades тестирует все допустимые значения оценки
func TestAllGrades(t *testing.T) {
	client := &http.Client{Timeout: 10 * time.Second}

	for grade := 0; grade <= 5; grade++ {
		t.Run("grade_"+string(rune('0'+grade)), func(t *testing.T) {
			createReq := entity.CreateReviewRequest{
				Grade:    grade,
				Message:  "Тестовый отзыв с оценкой.",
				SenderID: SenderID,
				UserID:   uuid.NewString(),
				OfferID:  uuid.NewString(),
			}
			body, _ := json.Marshal(createReq)

			req, _ := http.NewRequest(http.MethodPost, BaseURL+"/api/v1/review/", bytes.NewBuffer(body))
			req.Header = getAuthHeaders()

			resp, err := client.Do(req)
			require.NoError(t, err)

			assert.Equal(t, http.StatusCreated, resp.StatusCode)

			var review entity.Review
			json.NewDecoder(resp.Body).Decode(&review)
			resp.Body.Close()

			assert.Equal(t, grade, review.Grade)

			// Cleanup
			if review.ID != "" {
				req, _ := http.NewRequest(http.MethodDelete, BaseURL+"/api/v1/review/"+review.ID, nil)
				req.Header = getAuthHeaders()
				resp, _ := client.Do(req)
				if resp != nil {
					resp.Body.Close()
				}
			}
		})
	}
}
