package entity

// CreateReviewRequest - запрос на создание отзыва
// Границы оценки продублированы в тегах, авторитетная проверка - в service
type CreateReviewRequest struct {
	Grade    int    `json:"grade" validate:"min=0,max=5"`
	Message  string `json:"message" validate:"required"`
	SenderID string `json:"senderId" validate:"required,uuid4"`
	UserID   string `json:"userId" validate:"required,uuid4"`
	OfferID  string `json:"offerId" validate:"required,uuid4"`
}

// PatchReviewRequest - частичное обновление: меняются только оценка и текст
type PatchReviewRequest struct {
	Grade   int    `json:"grade" validate:"min=0,max=5"`
	Message string `json:"message" validate:"required"`
}

// AddResponseRequest - запрос на добавление ответа к отзыву
type AddResponseRequest struct {
	Message  string `json:"message" validate:"required"`
	SenderID string `json:"senderId" validate:"required,uuid4"`
}

// ErrorResponse - стандартный ответ об ошибке
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
