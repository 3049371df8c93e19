package entity

import (
	"time"
)

// Review - отзыв о рекрутере, привязанный к офферу
// Идентификаторы генерируются сервисом (UUID), ответы встроены в документ
type Review struct {
	ID           string     `json:"id" bson:"_id"`
	Grade        int        `json:"grade" bson:"grade"`                // Оценка от 0 до 5
	Message      string     `json:"message" bson:"message"`            // Текст отзыва
	SenderID     string     `json:"senderId" bson:"sender_id"`         // UUID автора отзыва
	UserID       string     `json:"userId" bson:"user_id"`             // UUID рекрутера, о котором отзыв
	OfferID      string     `json:"offerId" bson:"offer_id"`           // UUID оффера, задаётся при создании
	ResponseList []Response `json:"responseList" bson:"response_list"` // Ответы в порядке добавления
	Date         time.Time  `json:"date" bson:"date"`                  // Время создания, неизменяемое
}

// Response - ответ на отзыв, живёт только внутри родительского Review
type Response struct {
	ID       string    `json:"id" bson:"id"` // Уникален в пределах response_list
	Date     time.Time `json:"date" bson:"date"`
	Message  string    `json:"message" bson:"message"`
	SenderID string    `json:"senderId" bson:"sender_id"`
}

// DetailedReview - отзыв, обогащённый данными из User API и Offer API
// Собирается на лету, никогда не сохраняется
type DetailedReview struct {
	ID           string     `json:"id"`
	Grade        int        `json:"grade"`
	Message      string     `json:"message"`
	Sender       *User      `json:"sender"` // Автор отзыва
	User         *User      `json:"user"`   // Рекрутер, о котором отзыв
	ResponseList []Response `json:"responseList"`
	Date         time.Time  `json:"date"`
	Offer        *Offer     `json:"offer"`
}

// User - представление пользователя из User API
// Поля рекрутера заполняются только для роли recruiter
type User struct {
	ID                string    `json:"id"`
	Email             string    `json:"email"`
	FirstName         string    `json:"firstName"`
	LastName          string    `json:"lastName"`
	Username          string    `json:"username"`
	Role              string    `json:"role"`
	IsRegistered      bool      `json:"isRegistered"`
	Gender            int       `json:"gender,omitempty"`
	Birthdate         time.Time `json:"birthdate,omitempty"`
	Citizenship       string    `json:"citizenship,omitempty"`
	Phone             string    `json:"phone,omitempty"`
	AddressID         string    `json:"addressId,omitempty"`
	ProfilePictureURL string    `json:"profilePictureUrl,omitempty"`
	ToBeRemoved       bool      `json:"toBeRemoved,omitempty"`
	CompanyID         string    `json:"companyId,omitempty"`
	PlanID            string    `json:"planId,omitempty"`
	OfferIDList       []string  `json:"offerIdList,omitempty"`
	PaymentIDList     []string  `json:"paymentIdList,omitempty"`
}

// Offer - представление оффера из Offer API, используется как непрозрачный DTO
type Offer struct {
	ID                 string    `json:"id"`
	JobTitle           string    `json:"job_title"`
	JobDescription     string    `json:"job_description"`
	ContractType       string    `json:"contract_type"`
	CompanyID          string    `json:"companyId"`
	Salary             float64   `json:"salary"`
	AddressID          string    `json:"addressId"`
	HoursPerWeek       float32   `json:"hours_per_week"`
	Benefits           []string  `json:"benefits"`
	OfferLanguage      string    `json:"offer_language"`
	PublicationDate    time.Time `json:"publication_date"`
	OfferStatus        string    `json:"offer_status"`
	ContactInformation string    `json:"contact_information"`
	RequiredDegree     string    `json:"required_degree"`
	RequiredExperience string    `json:"required_experience"`
	RequiredSkills     []string  `json:"required_skills"`
	JobCategoryID      string    `json:"jobCategoryId"`
	CreatorID          string    `json:"creatorId"`
	RecruitedID        string    `json:"recruitedId"`
	StartDate          time.Time `json:"startDate"`
	EndDate            time.Time `json:"endDate"`
}

// ReviewEvent - событие жизненного цикла отзыва для Kafka
type ReviewEvent struct {
	EventType string    `json:"event_type"` // REVIEW_CREATED, REVIEW_UPDATED, REVIEW_DELETED, RESPONSE_ADDED
	ReviewID  string    `json:"review_id"`
	SenderID  string    `json:"sender_id"`
	OfferID   string    `json:"offer_id"`
	Grade     int       `json:"grade"`
	Timestamp time.Time `json:"timestamp"`
}
